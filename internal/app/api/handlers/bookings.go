package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lingoport/portal/internal/app/api/middleware"
	bookingsvc "github.com/lingoport/portal/internal/app/service/booking"
	"github.com/lingoport/portal/pkg/logctx"
	"github.com/lingoport/portal/pkg/response"
)

type batchBookingRequest struct {
	TimeslotIDs []int64 `json:"timeslot_ids" binding:"required"`
}

// @Summary      Batch booking
// @Description  Books each requested timeslot independently; failed items
// @Description  are reported per id and never abort the rest.
// @Tags         Bookings
// @Accept       json
// @Produce      json
// @Param        request body handlers.batchBookingRequest true "Timeslot ids"
// @Success      200  {object}  response.Envelope[bookingsvc.BatchResult]
// @Router       /api/bookings/batch [post]
func ApiBatchBooking(svc *bookingsvc.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.CurrentClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, response.Err(response.CodeInvalidToken))
			return
		}

		var req batchBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Err(response.CodeInvalidRequest))
			return
		}

		result, err := svc.BookBatch(c.Request.Context(), claims.UserID, req.TimeslotIDs)
		if err != nil {
			if errors.Is(err, bookingsvc.ErrEmptyBatch) {
				c.JSON(http.StatusBadRequest, response.Err(response.CodeInvalidRequest))
				return
			}
			logctx.FromGin(c, log).Errorw("batch booking failed", "user_id", claims.UserID, "err", err)
			c.JSON(http.StatusInternalServerError, response.Err(response.CodeInternal))
			return
		}
		c.JSON(http.StatusOK, response.OK(result))
	}
}

func RegisterBookingRoutes(r gin.IRouter, svc *bookingsvc.Service, log *zap.SugaredLogger) {
	r.POST("/batch", ApiBatchBooking(svc, log))
}
