package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/damian-dev1/Ecommerce-Manager/internal/dto"
	"github.com/damian-dev1/Ecommerce-Manager/internal/service"
)

// VariantsHandler exposes the variant hierarchy.
type VariantsHandler struct{ svc service.VariantService }

func NewVariantsHandler(svc service.VariantService) *VariantsHandler {
	return &VariantsHandler{svc: svc}
}

func (h *VariantsHandler) Link(c *gin.Context) {
	var req dto.VariantLinkRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Link(c.Request.Context(), c.Param("part"), req.ParentPartNumber)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *VariantsHandler) Unlink(c *gin.Context) {
	if err := h.svc.Unlink(c.Request.Context(), c.Param("part")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *VariantsHandler) Children(c *gin.Context) {
	resp, err := h.svc.ChildrenOf(c.Request.Context(), c.Param("part"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VariantsHandler) Parent(c *gin.Context) {
	resp, err := h.svc.ParentOf(c.Request.Context(), c.Param("part"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
