package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authsvc "github.com/lingoport/portal/internal/app/service/auth"
	"github.com/lingoport/portal/internal/models"
	"github.com/lingoport/portal/pkg/logctx"
	"github.com/lingoport/portal/pkg/response"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// tokenResponse keeps the flat shape existing portal clients parse.
type tokenResponse struct {
	Success bool   `json:"success"`
	UserID  int64  `json:"user_id"`
	JWT     string `json:"jwt"`
}

type verifyResponse struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
}

// @Summary      Register
// @Description  Creates a portal account and returns an auth token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body handlers.registerRequest true "Registration request"
// @Success      200  {object}  handlers.tokenResponse
// @Router       /api/auth/register [post]
func ApiRegister(svc *authsvc.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Err(response.CodeInvalidRequest))
			return
		}

		user, token, err := svc.Register(c.Request.Context(), authsvc.RegisterRequest{
			Email:    req.Email,
			Password: req.Password,
			Name:     req.Name,
			Phone:    req.Phone,
		})
		if err != nil {
			if errors.Is(err, authsvc.ErrEmailTaken) {
				c.JSON(http.StatusConflict, response.Err(response.CodeEmailExists))
				return
			}
			logctx.FromGin(c, log).Errorw("register failed", "err", err)
			c.JSON(http.StatusInternalServerError, response.Err(response.CodeInternal))
			return
		}
		c.JSON(http.StatusOK, tokenResponse{Success: true, UserID: user.ID, JWT: token})
	}
}

// @Summary      Login
// @Description  Exchanges credentials for an auth token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body handlers.loginRequest true "Login request"
// @Success      200  {object}  handlers.tokenResponse
// @Router       /api/auth/login [post]
func ApiLogin(svc *authsvc.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Err(response.CodeInvalidRequest))
			return
		}

		user, token, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, authsvc.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, response.Err(response.CodeInvalidCredentials))
				return
			}
			logctx.FromGin(c, log).Errorw("login failed", "err", err)
			c.JSON(http.StatusInternalServerError, response.Err(response.CodeInternal))
			return
		}
		c.JSON(http.StatusOK, tokenResponse{Success: true, UserID: user.ID, JWT: token})
	}
}

// @Summary      Verify token
// @Description  Resolves the bearer token to the current user.
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  handlers.verifyResponse
// @Router       /api/auth/verify [get]
func ApiVerify(svc *authsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(raw, prefix) {
			c.JSON(http.StatusUnauthorized, response.Err(response.CodeInvalidToken))
			return
		}

		user, _, err := svc.Verify(c.Request.Context(), strings.TrimSpace(raw[len(prefix):]))
		if err != nil {
			c.JSON(http.StatusUnauthorized, response.Err(response.CodeInvalidToken))
			return
		}
		c.JSON(http.StatusOK, verifyResponse{Success: true, User: user})
	}
}

func RegisterAuthRoutes(r gin.IRouter, svc *authsvc.Service, log *zap.SugaredLogger) {
	r.POST("/register", ApiRegister(svc, log))
	r.POST("/login", ApiLogin(svc, log))
	r.GET("/verify", ApiVerify(svc))
}
