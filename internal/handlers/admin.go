package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rahul04022004/wellbeing/backend/internal/apierror"
	"github.com/Rahul04022004/wellbeing/backend/internal/logger"
	"github.com/Rahul04022004/wellbeing/backend/internal/service"
)

// AdminHandler exposes cross-user reporting.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// AllUserData handles GET /api/v1/admin/users
func (h *AdminHandler) AllUserData(c *gin.Context) {
	data, err := h.adminService.AllUserData(c.Request.Context())
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("admin export failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewStoreUnavailableError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}

// UserStats handles GET /api/v1/admin/user-stats
func (h *AdminHandler) UserStats(c *gin.Context) {
	stats, err := h.adminService.UserStats(c.Request.Context())
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("admin stats failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewStoreUnavailableError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, stats)
}
