package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/damian-dev1/Ecommerce-Manager/internal/apierror"
	"github.com/damian-dev1/Ecommerce-Manager/internal/dto"
	"github.com/damian-dev1/Ecommerce-Manager/internal/service"
)

const currentPriceCacheTTL = 15 * time.Minute

// PricesHandler exposes price history writes and temporal resolution.
type PricesHandler struct {
	svc service.PriceService
	rdb *redis.Client
}

func NewPricesHandler(svc service.PriceService, rdb *redis.Client) *PricesHandler {
	return &PricesHandler{svc: svc, rdb: rdb}
}

func (h *PricesHandler) Add(c *gin.Context) {
	var req dto.AddPriceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddPrice(c.Request.Context(), c.Param("part"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PricesHandler) Series(c *gin.Context) {
	resp, err := h.svc.ResolveSeries(c.Request.Context(), c.Param("part"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Current resolves the effective price. An optional as_of=YYYY-MM-DD query
// bounds resolution; without it the greatest effective date wins, future
// dates included.
func (h *PricesHandler) Current(c *gin.Context) {
	part := c.Param("part")

	var asOf *time.Time
	if raw := c.Query("as_of"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("as_of must be YYYY-MM-DD"))
			return
		}
		asOf = &t
	}

	price, err := h.svc.ResolveCurrent(c.Request.Context(), part, asOf)
	if err != nil {
		respondError(c, err)
		return
	}
	if price == nil {
		c.JSON(http.StatusNotFound, apierror.New("no price recorded for "+part))
		return
	}
	c.JSON(http.StatusOK, dto.PriceResponse{
		ID:             price.ID,
		PartNumber:     price.PartNumber,
		EffectiveDate:  price.EffectiveDate,
		CurrencyCode:   price.CurrencyCode,
		Msrp:           price.Msrp,
		Rrp:            price.Rrp,
		RetailPrice:    price.RetailPrice,
		DiscountPrice:  price.DiscountPrice,
		CostPriceExTax: price.CostPriceExTax,
	})
}

// PublicCurrent is the unauthenticated price check endpoint with a cache-aside
// Redis layer. Only the unbounded "now" resolution is cached — an as_of query
// is not supported here.
func (h *PricesHandler) PublicCurrent(c *gin.Context) {
	part := c.Param("part")
	ctx := c.Request.Context()
	cacheKey := "price:current:" + part

	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.CurrentPriceResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	price, err := h.svc.ResolveCurrent(ctx, part, nil)
	if err != nil {
		respondError(c, err)
		return
	}
	if price == nil {
		c.JSON(http.StatusNotFound, apierror.New("no price recorded for "+part))
		return
	}

	resp := dto.CurrentPriceResponse{
		PartNumber:    part,
		CurrencyCode:  price.CurrencyCode,
		RetailPrice:   price.RetailPrice,
		DiscountPrice: price.DiscountPrice,
		EffectiveDate: price.EffectiveDate,
	}

	// Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, currentPriceCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}
