package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rahul04022004/wellbeing/backend/internal/apierror"
	"github.com/Rahul04022004/wellbeing/backend/internal/logger"
	"github.com/Rahul04022004/wellbeing/backend/internal/service"
)

// AnalysisHandler exposes the analytics read side. It binds parameters,
// runs the one requested analysis, and renders the tagged result; all
// analytical outcomes, sentinels included, are 200 responses.
type AnalysisHandler struct {
	analysisService service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// Run handles GET /api/v1/analyses/:name?username=
func (h *AnalysisHandler) Run(c *gin.Context) {
	name := c.Param("name")
	username := c.Query("username")

	if username == "" {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: "username", Message: "username is required", Code: "required"},
		}))
		return
	}

	result, err := h.analysisService.RunAnalysis(c.Request.Context(), name, username)
	if err != nil {
		if errors.Is(err, service.ErrUnknownAnalysis) {
			apierror.WriteProblem(c, apierror.NewBadRequestError(apierror.GetRequestID(c),
				err.Error(), "Unknown analysis name"))
			return
		}
		// A store fault is infrastructure, not an analytical outcome.
		logger.Ctx(c.Request.Context()).Error("analysis failed",
			logger.String("analysis", name), logger.Err(err))
		apierror.WriteProblem(c, apierror.NewStoreUnavailableError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, result)
}
