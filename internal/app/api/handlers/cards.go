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

type createCardRequest struct {
	Name               string  `json:"name" binding:"required"`
	AvailableCourseIDs []int64 `json:"available_course_ids"`
}

// @Summary      List member cards (admin)
// @Tags         MemberCards
// @Produce      json
// @Success      200  {object}  response.Envelope[[]models.MemberCard]
// @Router       /api/member-cards/admin [get]
func ApiListCards(svc *catalog.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cards, err := svc.ListCards(c.Request.Context())
		if err != nil {
			logctx.FromGin(c, log).Errorw("list member cards failed", "err", err)
			c.JSON(http.StatusInternalServerError, response.Err(response.CodeInternal))
			return
		}
		c.JSON(http.StatusOK, response.OK(cards))
	}
}

// @Summary      Create member card (admin)
// @Tags         MemberCards
// @Accept       json
// @Produce      json
// @Param        request body handlers.createCardRequest true "Card fields"
// @Success      200  {object}  response.Envelope[models.MemberCard]
// @Router       /api/member-cards/admin [post]
func ApiCreateCard(svc *catalog.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createCardRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Err(response.CodeInvalidRequest))
			return
		}

		card, err := svc.CreateCard(c.Request.Context(), &models.MemberCard{
			Name:               req.Name,
			AvailableCourseIDs: req.AvailableCourseIDs,
		})
		if err != nil {
			logctx.FromGin(c, log).Errorw("create member card failed", "err", err)
			c.JSON(http.StatusInternalServerError, response.Err(response.CodeInternal))
			return
		}
		c.JSON(http.StatusOK, response.OK(card))
	}
}

// @Summary      Update member card (admin)
// @Tags         MemberCards
// @Accept       json
// @Produce      json
// @Param        id path int true "Card id"
// @Success      200  {object}  response.Envelope[models.MemberCard]
// @Router       /api/member-cards/admin/{id} [put]
func ApiUpdateCard(svc *catalog.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var patch catalog.CardPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, response.Err(response.CodeInvalidRequest))
			return
		}

		card, err := svc.UpdateCard(c.Request.Context(), id, patch)
		if err != nil {
			if errors.Is(err, catalog.ErrCardNotFound) {
				c.JSON(http.StatusNotFound, response.Err(response.CodeCardNotFound))
				return
			}
			logctx.FromGin(c, log).Errorw("update member card failed", "card_id", id, "err", err)
			c.JSON(http.StatusInternalServerError, response.Err(response.CodeInternal))
			return
		}
		c.JSON(http.StatusOK, response.OK(card))
	}
}

// @Summary      Delete member card (admin)
// @Tags         MemberCards
// @Produce      json
// @Param        id path int true "Card id"
// @Success      200  {object}  response.Envelope[map[string]string]
// @Router       /api/member-cards/admin/{id} [delete]
func ApiDeleteCard(svc *catalog.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := svc.DeleteCard(c.Request.Context(), id); err != nil {
			if errors.Is(err, catalog.ErrCardNotFound) {
				c.JSON(http.StatusNotFound, response.Err(response.CodeCardNotFound))
				return
			}
			logctx.FromGin(c, log).Errorw("delete member card failed", "card_id", id, "err", err)
			c.JSON(http.StatusInternalServerError, response.Err(response.CodeInternal))
			return
		}
		c.JSON(http.StatusOK, response.OK(map[string]string{"message": "member card deleted"}))
	}
}

func RegisterCardRoutes(admin gin.IRouter, svc *catalog.Service, log *zap.SugaredLogger) {
	admin.GET("", ApiListCards(svc, log))
	admin.POST("", ApiCreateCard(svc, log))
	admin.PUT("/:id", ApiUpdateCard(svc, log))
	admin.DELETE("/:id", ApiDeleteCard(svc, log))
}
