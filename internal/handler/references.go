package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/damian-dev1/Ecommerce-Manager/internal/apierror"
	"github.com/damian-dev1/Ecommerce-Manager/internal/dto"
	"github.com/damian-dev1/Ecommerce-Manager/internal/model"
	"github.com/damian-dev1/Ecommerce-Manager/internal/repository"
)

// ReferencesHandler serves the plain reference registries (brand, vendor,
// warranty, dimensions). These carry no business logic, so the handler talks
// to the repository directly.
type ReferencesHandler struct {
	repo repository.ReferenceRepository
}

func NewReferencesHandler(repo repository.ReferenceRepository) *ReferencesHandler {
	return &ReferencesHandler{repo: repo}
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return uuid.Nil, false
	}
	return id, true
}

func notFoundOr500(c *gin.Context, err error, what string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, apierror.New(what+" not found"))
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, apierror.New("internal server error"))
}

// ── Brands ───────────────────────────────────────────────────────────────────

func (h *ReferencesHandler) CreateBrand(c *gin.Context) {
	var req dto.CreateBrandRequest
	if !bindAndValidate(c, &req) {
		return
	}
	b := &model.Brand{Name: req.Name}
	if err := h.repo.CreateBrand(c.Request.Context(), b); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, apierror.New("brand already exists"))
			return
		}
		notFoundOr500(c, err, "brand")
		return
	}
	c.JSON(http.StatusCreated, dto.BrandResponse{ID: b.ID.String(), Name: b.Name})
}

func (h *ReferencesHandler) GetBrand(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	b, err := h.repo.GetBrand(c.Request.Context(), id)
	if err != nil {
		notFoundOr500(c, err, "brand")
		return
	}
	c.JSON(http.StatusOK, dto.BrandResponse{ID: b.ID.String(), Name: b.Name})
}

func (h *ReferencesHandler) ListBrands(c *gin.Context) {
	brands, err := h.repo.ListBrands(c.Request.Context())
	if err != nil {
		notFoundOr500(c, err, "brands")
		return
	}
	result := make([]dto.BrandResponse, 0, len(brands))
	for _, b := range brands {
		result = append(result, dto.BrandResponse{ID: b.ID.String(), Name: b.Name})
	}
	c.JSON(http.StatusOK, result)
}

// ── Vendors ──────────────────────────────────────────────────────────────────

func (h *ReferencesHandler) CreateVendor(c *gin.Context) {
	var req dto.CreateVendorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	v := &model.Vendor{Name: req.Name, Country: req.Country}
	if err := h.repo.CreateVendor(c.Request.Context(), v); err != nil {
		notFoundOr500(c, err, "vendor")
		return
	}
	c.JSON(http.StatusCreated, dto.VendorResponse{ID: v.ID.String(), Name: v.Name, Country: v.Country})
}

func (h *ReferencesHandler) GetVendor(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	v, err := h.repo.GetVendor(c.Request.Context(), id)
	if err != nil {
		notFoundOr500(c, err, "vendor")
		return
	}
	c.JSON(http.StatusOK, dto.VendorResponse{ID: v.ID.String(), Name: v.Name, Country: v.Country})
}

// ── Warranties ───────────────────────────────────────────────────────────────

func (h *ReferencesHandler) CreateWarranty(c *gin.Context) {
	var req dto.CreateWarrantyRequest
	if !bindAndValidate(c, &req) {
		return
	}
	w := &model.Warranty{TypeCode: req.TypeCode, DurationMonths: req.DurationMonths}
	if err := h.repo.CreateWarranty(c.Request.Context(), w); err != nil {
		notFoundOr500(c, err, "warranty")
		return
	}
	c.JSON(http.StatusCreated, dto.WarrantyResponse{
		ID: w.ID.String(), TypeCode: w.TypeCode, DurationMonths: w.DurationMonths,
	})
}

func (h *ReferencesHandler) GetWarranty(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	w, err := h.repo.GetWarranty(c.Request.Context(), id)
	if err != nil {
		notFoundOr500(c, err, "warranty")
		return
	}
	c.JSON(http.StatusOK, dto.WarrantyResponse{
		ID: w.ID.String(), TypeCode: w.TypeCode, DurationMonths: w.DurationMonths,
	})
}

// ── Dimensions ───────────────────────────────────────────────────────────────

func mapDimensions(d model.Dimensions) dto.DimensionsResponse {
	return dto.DimensionsResponse{
		ID:            d.ID.String(),
		LengthMm:      d.LengthMm,
		WidthMm:       d.WidthMm,
		HeightMm:      d.HeightMm,
		WeightKg:      d.WeightKg,
		GrossWeightKg: d.GrossWeightKg,
		VolumeM3:      d.VolumeM3,
		PackQty:       d.PackQty,
	}
}

func (h *ReferencesHandler) CreateDimensions(c *gin.Context) {
	var req dto.CreateDimensionsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	d := &model.Dimensions{
		LengthMm:      req.LengthMm,
		WidthMm:       req.WidthMm,
		HeightMm:      req.HeightMm,
		WeightKg:      req.WeightKg,
		GrossWeightKg: req.GrossWeightKg,
		VolumeM3:      req.VolumeM3,
		PackQty:       req.PackQty,
	}
	if err := h.repo.CreateDimensions(c.Request.Context(), d); err != nil {
		notFoundOr500(c, err, "dimensions")
		return
	}
	c.JSON(http.StatusCreated, mapDimensions(*d))
}

func (h *ReferencesHandler) GetDimensions(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	d, err := h.repo.GetDimensions(c.Request.Context(), id)
	if err != nil {
		notFoundOr500(c, err, "dimensions")
		return
	}
	c.JSON(http.StatusOK, mapDimensions(*d))
}
