package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/damian-dev1/Ecommerce-Manager/internal/apierror"
	"github.com/damian-dev1/Ecommerce-Manager/internal/dto"
	"github.com/damian-dev1/Ecommerce-Manager/internal/service"
)

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProductsHandler) Get(c *gin.Context) {
	resp, err := h.svc.GetByPartNumber(c.Request.Context(), c.Param("part"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) List(c *gin.Context) {
	var filter dto.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) Update(c *gin.Context) {
	var req dto.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), c.Param("part"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("part")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductsHandler) AddMedia(c *gin.Context) {
	var req dto.AddMediaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddMedia(c.Request.Context(), c.Param("part"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProductsHandler) ListMedia(c *gin.Context) {
	resp, err := h.svc.ListMedia(c.Request.Context(), c.Param("part"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) DeleteMedia(c *gin.Context) {
	mediaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid media id"))
		return
	}
	if err := h.svc.DeleteMedia(c.Request.Context(), c.Param("part"), mediaID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
