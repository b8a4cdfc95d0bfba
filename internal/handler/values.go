package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/damian-dev1/Ecommerce-Manager/internal/dto"
	"github.com/damian-dev1/Ecommerce-Manager/internal/service"
)

// ValuesHandler exposes the per-product typed attribute store.
type ValuesHandler struct{ svc service.AttributeValueService }

func NewValuesHandler(svc service.AttributeValueService) *ValuesHandler {
	return &ValuesHandler{svc: svc}
}

func (h *ValuesHandler) Set(c *gin.Context) {
	var req dto.SetValueRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.SetValue(c.Request.Context(), c.Param("part"), c.Param("code"), req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ValuesHandler) Get(c *gin.Context) {
	resp, err := h.svc.GetValue(c.Request.Context(), c.Param("part"), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ValuesHandler) List(c *gin.Context) {
	resp, err := h.svc.ListValues(c.Request.Context(), c.Param("part"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RequiredMissing reports which required attributes of the category have no
// stored value for the product — used by catalog completeness checks.
func (h *ValuesHandler) RequiredMissing(c *gin.Context) {
	resp, err := h.svc.RequiredMissing(c.Request.Context(), c.Param("part"), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
