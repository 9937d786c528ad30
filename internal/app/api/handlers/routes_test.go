package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRoutesRegistered(t *testing.T) {
	env := newTestEnv(t)

	routes := env.router.Routes()
	contains := func(target string) bool {
		for _, rt := range routes {
			if rt.Method+" "+rt.Path == target {
				return true
			}
		}
		return false
	}

	for _, target := range []string{
		"POST /api/auth/register",
		"POST /api/auth/login",
		"GET /api/auth/verify",
		"GET /api/member-card-plans",
		"GET /api/member-card-plans/admin",
		"POST /api/member-card-plans/admin",
		"PUT /api/member-card-plans/admin/:id",
		"DELETE /api/member-card-plans/admin/:id",
		"GET /api/member-cards/admin",
		"POST /api/member-cards/admin",
		"GET /api/timeslots/admin",
		"POST /api/timeslots/admin",
		"POST /api/orders",
		"GET /api/orders",
		"GET /api/orders/:id",
		"POST /api/orders/:id/complete",
		"POST /api/bookings/batch",
	} {
		require.True(t, contains(target), target)
	}
}

func TestInvalidIDParam(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodPut, "/api/member-card-plans/admin/abc", gin.H{}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "invalid_request", decode(t, w)["error"])
}
