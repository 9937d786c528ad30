package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookingsvc "github.com/lingoport/portal/internal/app/service/booking"
	"github.com/lingoport/portal/internal/models"
	"github.com/lingoport/portal/pkg/logctx"
	"github.com/lingoport/portal/pkg/response"
)

type createTimeslotRequest struct {
	CourseID    int64     `json:"course_id" binding:"required"`
	TeacherName string    `json:"teacher_name"`
	StartAt     time.Time `json:"start_at" binding:"required"`
	EndAt       time.Time `json:"end_at" binding:"required"`
	Capacity    int       `json:"capacity"`
}

// @Summary      Create timeslot (admin)
// @Tags         Timeslots
// @Accept       json
// @Produce      json
// @Param        request body handlers.createTimeslotRequest true "Timeslot fields"
// @Success      200  {object}  response.Envelope[models.Timeslot]
// @Router       /api/timeslots/admin [post]
func ApiCreateTimeslot(svc *bookingsvc.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createTimeslotRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Err(response.CodeInvalidRequest))
			return
		}
		if !req.EndAt.After(req.StartAt) {
			c.JSON(http.StatusBadRequest, response.Err(response.CodeInvalidRequest))
			return
		}

		slot, err := svc.CreateTimeslot(c.Request.Context(), &models.Timeslot{
			CourseID:    req.CourseID,
			TeacherName: req.TeacherName,
			StartAt:     req.StartAt,
			EndAt:       req.EndAt,
			Capacity:    req.Capacity,
		})
		if err != nil {
			logctx.FromGin(c, log).Errorw("create timeslot failed", "err", err)
			c.JSON(http.StatusInternalServerError, response.Err(response.CodeInternal))
			return
		}
		c.JSON(http.StatusOK, response.OK(slot))
	}
}

// @Summary      List timeslots (admin)
// @Tags         Timeslots
// @Produce      json
// @Success      200  {object}  response.Envelope[[]models.Timeslot]
// @Router       /api/timeslots/admin [get]
func ApiListTimeslots(svc *bookingsvc.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		slots, err := svc.ListTimeslots(c.Request.Context())
		if err != nil {
			logctx.FromGin(c, log).Errorw("list timeslots failed", "err", err)
			c.JSON(http.StatusInternalServerError, response.Err(response.CodeInternal))
			return
		}
		c.JSON(http.StatusOK, response.OK(slots))
	}
}

func RegisterTimeslotRoutes(admin gin.IRouter, svc *bookingsvc.Service, log *zap.SugaredLogger) {
	admin.GET("", ApiListTimeslots(svc, log))
	admin.POST("", ApiCreateTimeslot(svc, log))
}
