package scan

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Check serves POST /check-ingredients. All processing failures map to
// one generic error verdict; the underlying cause stays in the server
// log (keyed by a scan id) and never reaches the caller.
func (h *Handler) Check(c *gin.Context) {
	scanID := uuid.NewString()

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("scan %s: bad request body: %v", scanID, err)
		c.JSON(http.StatusOK, errorResult("Failed to process request."))
		return
	}

	result, err := h.service.Check(req)
	if err != nil {
		log.Printf("scan %s: %v", scanID, err)
		c.JSON(http.StatusOK, errorResult("Failed to process request."))
		return
	}

	c.JSON(http.StatusOK, result)
}
