package analytics

import (
	"net/http"

	"go-skills/internal/shared/apperror"
	"go-skills/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("analytics.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("analytics.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("analytics request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetDashboardStats(c *gin.Context) {
	stats, err := h.service.DashboardStats(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) GetSkillsMatrix(c *gin.Context) {
	rows, err := h.service.SkillsMatrix(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if rows == nil {
		rows = []MatrixRow{}
	}

	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) GetSkillGaps(c *gin.Context) {
	gaps, err := h.service.SkillGaps(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if gaps == nil {
		gaps = []SkillGap{}
	}

	response.Success(c, http.StatusOK, gaps)
}
