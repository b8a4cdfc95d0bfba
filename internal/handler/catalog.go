package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/damian-dev1/Ecommerce-Manager/internal/service"
)

// CatalogHandler serves the denormalized catalog projection.
type CatalogHandler struct{ svc service.CatalogService }

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// Project recomputes the catalog record from current source state on every
// call — it is a view, never a snapshot.
func (h *CatalogHandler) Project(c *gin.Context) {
	resp, err := h.svc.Project(c.Request.Context(), c.Param("part"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
