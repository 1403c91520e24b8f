package handlers

import (
	"net/http"

	serviceRepo "urbanhelp/database/repository/service"
	workerRepo "urbanhelp/database/repository/worker"
	"urbanhelp/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public service catalog and the admin worker
// directory.
type CatalogHandler struct {
	Services serviceRepo.Repository
	Workers  workerRepo.Repository
}

func NewCatalogHandler(services serviceRepo.Repository, workers workerRepo.Repository) *CatalogHandler {
	return &CatalogHandler{Services: services, Workers: workers}
}

// ListServices handles GET /api/services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Services.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch services.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "services": services})
}

// ListWorkers handles GET /api/workers (admin).
func (h *CatalogHandler) ListWorkers(c *gin.Context) {
	workers, err := h.Workers.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch workers.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "workers": workers})
}
