package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ordersvc "github.com/lingoport/portal/internal/app/service/order"
	"github.com/lingoport/portal/pkg/logctx"
	"github.com/lingoport/portal/pkg/response"
)

type createOrderRequest struct {
	PlanID    int64  `json:"plan_id" binding:"required"`
	UserID    *int64 `json:"user_id"`
	UserEmail string `json:"user_email" binding:"omitempty,email"`
	UserName  string `json:"user_name"`
}

// @Summary      Create order
// @Description  Places an order for a published member-card plan. The order
// @Description  is canceled automatically if not completed in time.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        request body handlers.createOrderRequest true "Order request"
// @Success      200  {object}  response.Envelope[models.Order]
// @Router       /api/orders [post]
func ApiCreateOrder(svc *ordersvc.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Err(response.CodeInvalidRequest))
			return
		}

		order, err := svc.Create(c.Request.Context(), ordersvc.CreateRequest{
			PlanID:    req.PlanID,
			UserID:    req.UserID,
			UserEmail: req.UserEmail,
			UserName:  req.UserName,
		})
		if err != nil {
			switch {
			case errors.Is(err, ordersvc.ErrPlanNotFound):
				c.JSON(http.StatusNotFound, response.Err(response.CodePlanNotFound))
			case errors.Is(err, ordersvc.ErrPlanNotPublished):
				c.JSON(http.StatusBadRequest, response.Err(response.CodePlanNotPublished))
			default:
				logctx.FromGin(c, log).Errorw("create order failed", "err", err)
				c.JSON(http.StatusInternalServerError, response.Err(response.CodeInternal))
			}
			return
		}
		c.JSON(http.StatusOK, response.OK(order))
	}
}

// @Summary      List orders (admin)
// @Description  Expired orders are swept to CANCELED before listing.
// @Tags         Orders
// @Produce      json
// @Success      200  {object}  response.Envelope[[]models.Order]
// @Router       /api/orders [get]
func ApiListOrders(svc *ordersvc.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.List(c.Request.Context())
		if err != nil {
			logctx.FromGin(c, log).Errorw("list orders failed", "err", err)
			c.JSON(http.StatusInternalServerError, response.Err(response.CodeInternal))
			return
		}
		c.JSON(http.StatusOK, response.OK(orders))
	}
}

// @Summary      Get order (admin)
// @Tags         Orders
// @Produce      json
// @Param        id path int true "Order id"
// @Success      200  {object}  response.Envelope[models.Order]
// @Router       /api/orders/{id} [get]
func ApiGetOrder(svc *ordersvc.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		order, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, ordersvc.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, response.Err(response.CodeOrderNotFound))
				return
			}
			logctx.FromGin(c, log).Errorw("get order failed", "order_id", id, "err", err)
			c.JSON(http.StatusInternalServerError, response.Err(response.CodeInternal))
			return
		}
		c.JSON(http.StatusOK, response.OK(order))
	}
}

// @Summary      Complete order (admin)
// @Description  Marks a pending order paid. Fails when the order already
// @Description  lapsed or was completed.
// @Tags         Orders
// @Produce      json
// @Param        id path int true "Order id"
// @Success      200  {object}  response.Envelope[models.Order]
// @Router       /api/orders/{id}/complete [post]
func ApiCompleteOrder(svc *ordersvc.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		order, err := svc.Complete(c.Request.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, ordersvc.ErrOrderNotFound):
				c.JSON(http.StatusNotFound, response.Err(response.CodeOrderNotFound))
			case errors.Is(err, ordersvc.ErrOrderNotPending):
				c.JSON(http.StatusBadRequest, response.Err(response.CodeOrderNotPending))
			default:
				logctx.FromGin(c, log).Errorw("complete order failed", "order_id", id, "err", err)
				c.JSON(http.StatusInternalServerError, response.Err(response.CodeInternal))
			}
			return
		}
		c.JSON(http.StatusOK, response.OK(order))
	}
}

func RegisterOrderRoutes(r gin.IRouter, svc *ordersvc.Service, log *zap.SugaredLogger) {
	r.POST("", ApiCreateOrder(svc, log))
	r.GET("", ApiListOrders(svc, log))
	r.GET("/:id", ApiGetOrder(svc, log))
	r.POST("/:id/complete", ApiCompleteOrder(svc, log))
}
