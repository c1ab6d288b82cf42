package catalogue

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// Get reports the loaded dictionary counts so an admin can confirm
// which revision the process is serving.
func (h *Handler) Get(c *gin.Context) {
	cat := h.store.Catalogue()
	c.JSON(http.StatusOK, gin.H{
		"haram_entries":    len(cat.Haram),
		"mushbooh_entries": len(cat.Mushbooh),
	})
}

// Reload re-reads the dictionary from its source and swaps the
// snapshot, so curation changes land without a restart.
func (h *Handler) Reload(c *gin.Context) {
	if err := h.store.Reload(c.Request.Context()); err != nil {
		log.Printf("catalogue reload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reload failed"})
		return
	}

	cat := h.store.Catalogue()
	c.JSON(http.StatusOK, gin.H{
		"message":          "catalogue reloaded",
		"haram_entries":    len(cat.Haram),
		"mushbooh_entries": len(cat.Mushbooh),
	})
}
