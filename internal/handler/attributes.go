package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/damian-dev1/Ecommerce-Manager/internal/apierror"
	"github.com/damian-dev1/Ecommerce-Manager/internal/dto"
	"github.com/damian-dev1/Ecommerce-Manager/internal/service"
)

// AttributesHandler exposes the attribute schema registry.
type AttributesHandler struct{ svc service.SchemaService }

func NewAttributesHandler(svc service.SchemaService) *AttributesHandler {
	return &AttributesHandler{svc: svc}
}

func (h *AttributesHandler) Define(c *gin.Context) {
	var req dto.DefineAttributeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.DefineAttribute(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AttributesHandler) List(c *gin.Context) {
	resp, err := h.svc.ListAttributes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AttributesHandler) DefineGroup(c *gin.Context) {
	var req dto.DefineGroupRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.DefineGroup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AttributesHandler) DefineOption(c *gin.Context) {
	code := c.Param("code")
	var req dto.DefineOptionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.DefineOption(c.Request.Context(), code, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AttributesHandler) ListOptions(c *gin.Context) {
	resp, err := h.svc.ListOptions(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AttributesHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteAttribute(c.Request.Context(), c.Param("code")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AttributesHandler) AssignToCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid category id"))
		return
	}
	var req dto.AssignAttributeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AssignToCategory(c.Request.Context(), categoryID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AttributesHandler) CategoryAttributes(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid category id"))
		return
	}
	resp, err := h.svc.CategoryAttributes(c.Request.Context(), categoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
