package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rahul04022004/wellbeing/backend/internal/apierror"
	"github.com/Rahul04022004/wellbeing/backend/internal/logger"
	"github.com/Rahul04022004/wellbeing/backend/internal/models"
	"github.com/Rahul04022004/wellbeing/backend/internal/service"
)

// HealthLogHandler exposes daily log intake.
type HealthLogHandler struct {
	logService service.HealthLogService
}

// NewHealthLogHandler creates a new health-log handler
func NewHealthLogHandler(logService service.HealthLogService) *HealthLogHandler {
	return &HealthLogHandler{logService: logService}
}

// Create handles POST /api/v1/logs
func (h *HealthLogHandler) Create(c *gin.Context) {
	var req models.LogHealthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(apierror.GetRequestID(c),
			err.Error(), "Invalid health log payload"))
		return
	}

	result, err := h.logService.LogDaily(c.Request.Context(), &req)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("log intake failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewStoreUnavailableError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, result)
}
