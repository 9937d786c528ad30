package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lingoport/portal/internal/app/service/catalog"
	"github.com/lingoport/portal/internal/models"
	"github.com/lingoport/portal/pkg/logctx"
	"github.com/lingoport/portal/pkg/response"
)

type createPlanRequest struct {
	Title         string            `json:"title" binding:"required"`
	UserType      models.Role       `json:"user_type" binding:"required"`
	DurationType  string            `json:"duration_type"`
	DurationDays  int               `json:"duration_days"`
	OriginalPrice int64             `json:"original_price"`
	SalePrice     int64             `json:"sale_price" binding:"required"`
	Features      []string          `json:"features"`
	Status        models.PlanStatus `json:"status"`
	Popular       bool              `json:"popular"`
	Description   string            `json:"description"`
	MemberCardID  int64             `json:"member_card_id"`
}

// @Summary      List published plans
// @Description  Public listing of plans available for purchase.
// @Tags         Plans
// @Produce      json
// @Success      200  {object}  response.Envelope[[]models.MemberCardPlan]
// @Router       /api/member-card-plans [get]
func ApiListPublishedPlans(svc *catalog.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		plans, err := svc.ListPublishedPlans(c.Request.Context())
		if err != nil {
			logctx.FromGin(c, log).Errorw("list published plans failed", "err", err)
			c.JSON(http.StatusInternalServerError, response.Err(response.CodeInternal))
			return
		}
		c.JSON(http.StatusOK, response.OK(plans))
	}
}

// @Summary      List all plans (admin)
// @Tags         Plans
// @Produce      json
// @Success      200  {object}  response.Envelope[[]models.MemberCardPlan]
// @Router       /api/member-card-plans/admin [get]
func ApiListPlans(svc *catalog.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		plans, err := svc.ListPlans(c.Request.Context())
		if err != nil {
			logctx.FromGin(c, log).Errorw("list plans failed", "err", err)
			c.JSON(http.StatusInternalServerError, response.Err(response.CodeInternal))
			return
		}
		c.JSON(http.StatusOK, response.OK(plans))
	}
}

// @Summary      Create plan (admin)
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        request body handlers.createPlanRequest true "Plan fields"
// @Success      200  {object}  response.Envelope[models.MemberCardPlan]
// @Router       /api/member-card-plans/admin [post]
func ApiCreatePlan(svc *catalog.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createPlanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Err(response.CodeInvalidRequest))
			return
		}

		plan, err := svc.CreatePlan(c.Request.Context(), &models.MemberCardPlan{
			Title:         req.Title,
			UserType:      req.UserType,
			DurationType:  req.DurationType,
			DurationDays:  req.DurationDays,
			OriginalPrice: req.OriginalPrice,
			SalePrice:     req.SalePrice,
			Features:      req.Features,
			Status:        req.Status,
			Popular:       req.Popular,
			Description:   req.Description,
			MemberCardID:  req.MemberCardID,
		})
		if err != nil {
			logctx.FromGin(c, log).Errorw("create plan failed", "err", err)
			c.JSON(http.StatusInternalServerError, response.Err(response.CodeInternal))
			return
		}
		c.JSON(http.StatusOK, response.OK(plan))
	}
}

// @Summary      Update plan (admin)
// @Description  Applies a partial update; omitted fields keep their value.
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        id path int true "Plan id"
// @Success      200  {object}  response.Envelope[models.MemberCardPlan]
// @Router       /api/member-card-plans/admin/{id} [put]
func ApiUpdatePlan(svc *catalog.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var patch catalog.PlanPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, response.Err(response.CodeInvalidRequest))
			return
		}

		plan, err := svc.UpdatePlan(c.Request.Context(), id, patch)
		if err != nil {
			if errors.Is(err, catalog.ErrPlanNotFound) {
				c.JSON(http.StatusNotFound, response.Err(response.CodePlanNotFound))
				return
			}
			logctx.FromGin(c, log).Errorw("update plan failed", "plan_id", id, "err", err)
			c.JSON(http.StatusInternalServerError, response.Err(response.CodeInternal))
			return
		}
		c.JSON(http.StatusOK, response.OK(plan))
	}
}

// @Summary      Delete plan (admin)
// @Tags         Plans
// @Produce      json
// @Param        id path int true "Plan id"
// @Success      200  {object}  response.Envelope[map[string]string]
// @Router       /api/member-card-plans/admin/{id} [delete]
func ApiDeletePlan(svc *catalog.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := svc.DeletePlan(c.Request.Context(), id); err != nil {
			if errors.Is(err, catalog.ErrPlanNotFound) {
				c.JSON(http.StatusNotFound, response.Err(response.CodePlanNotFound))
				return
			}
			logctx.FromGin(c, log).Errorw("delete plan failed", "plan_id", id, "err", err)
			c.JSON(http.StatusInternalServerError, response.Err(response.CodeInternal))
			return
		}
		c.JSON(http.StatusOK, response.OK(map[string]string{"message": "plan deleted"}))
	}
}

func RegisterPlanRoutes(public gin.IRouter, admin gin.IRouter, svc *catalog.Service, log *zap.SugaredLogger) {
	public.GET("/member-card-plans", ApiListPublishedPlans(svc, log))
	admin.GET("", ApiListPlans(svc, log))
	admin.POST("", ApiCreatePlan(svc, log))
	admin.PUT("/:id", ApiUpdatePlan(svc, log))
	admin.DELETE("/:id", ApiDeletePlan(svc, log))
}
