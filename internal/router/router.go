package router

import (
	"time"

	"github.com/damian-dev1/Ecommerce-Manager/internal/config"
	"github.com/damian-dev1/Ecommerce-Manager/internal/handler"
	"github.com/damian-dev1/Ecommerce-Manager/internal/middleware"
	"github.com/damian-dev1/Ecommerce-Manager/internal/repository"
	"github.com/damian-dev1/Ecommerce-Manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	attrRepo := repository.NewAttributeRepository(db)
	valueRepo := repository.NewValueRepository(db)
	productRepo := repository.NewProductRepository(db)
	priceRepo := repository.NewPriceRepository(db)
	variantRepo := repository.NewVariantRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	referenceRepo := repository.NewReferenceRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	schemaSvc := service.NewSchemaService(attrRepo, categoryRepo, valueRepo)
	valueSvc := service.NewAttributeValueService(attrRepo, valueRepo, productRepo, categoryRepo)
	priceSvc := service.NewPriceService(priceRepo, productRepo)
	variantSvc := service.NewVariantService(variantRepo, productRepo)
	productSvc := service.NewProductService(productRepo, valueRepo, mediaRepo, priceRepo, variantRepo, referenceRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	catalogSvc := service.NewCatalogService(productRepo, mediaRepo, priceSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	attributesH := handler.NewAttributesHandler(schemaSvc)
	valuesH := handler.NewValuesHandler(valueSvc)
	pricesH := handler.NewPricesHandler(priceSvc, rdb)
	variantsH := handler.NewVariantsHandler(variantSvc)
	productsH := handler.NewProductsHandler(productSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	catalogH := handler.NewCatalogHandler(catalogSvc)
	referencesH := handler.NewReferencesHandler(referenceRepo)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Price check — no auth required, cached in Redis
	r.GET("/v1/price/:part", pricesH.PublicCurrent)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Roles: reader, editor, admin — declared per-endpoint

		// Attribute schema — admin writes, all authenticated can read
		v1.GET("/attributes", middleware.RequireRole("reader", "editor", "admin"), attributesH.List)
		v1.GET("/attributes/:code/options", middleware.RequireRole("reader", "editor", "admin"), attributesH.ListOptions)
		attrs := v1.Group("/attributes", middleware.RequireRole("admin"))
		{
			attrs.POST("", attributesH.Define)
			attrs.POST("/:code/options", attributesH.DefineOption)
			attrs.DELETE("/:code", attributesH.Delete)
		}
		v1.POST("/attribute-groups", middleware.RequireRole("admin"), attributesH.DefineGroup)

		// Categories — editor/admin can write, all authenticated can read
		v1.GET("/categories", middleware.RequireRole("reader", "editor", "admin"), categoriesH.List)
		v1.GET("/categories/:id/ancestors", middleware.RequireRole("reader", "editor", "admin"), categoriesH.Ancestors)
		v1.GET("/categories/:id/attributes", middleware.RequireRole("reader", "editor", "admin"), attributesH.CategoryAttributes)
		cats := v1.Group("/categories", middleware.RequireRole("editor", "admin"))
		{
			cats.POST("", categoriesH.Create)
			cats.PUT("/:id", categoriesH.Update)
			cats.POST("/:id/attributes", middleware.RequireRole("admin"), attributesH.AssignToCategory)
		}

		// Products — roles declared per-endpoint
		read := middleware.RequireRole("reader", "editor", "admin")
		write := middleware.RequireRole("editor", "admin")
		prods := v1.Group("/products")
		{
			prods.GET("", read, productsH.List)
			prods.GET("/:part", read, productsH.Get)
			prods.POST("", write, productsH.Create)
			prods.PUT("/:part", write, productsH.Update)
			prods.DELETE("/:part", middleware.RequireRole("admin"), productsH.Delete)

			// Attribute values
			prods.PUT("/:part/values/:code", write, valuesH.Set)
			prods.GET("/:part/values/:code", read, valuesH.Get)
			prods.GET("/:part/values", read, valuesH.List)
			prods.GET("/:part/values-missing", read, valuesH.RequiredMissing)

			// Price history
			prods.POST("/:part/prices", write, pricesH.Add)
			prods.GET("/:part/prices", read, pricesH.Series)
			prods.GET("/:part/prices/current", read, pricesH.Current)

			// Variant hierarchy
			prods.PUT("/:part/parent", write, variantsH.Link)
			prods.DELETE("/:part/parent", write, variantsH.Unlink)
			prods.GET("/:part/parent", read, variantsH.Parent)
			prods.GET("/:part/variants", read, variantsH.Children)

			// Media
			prods.POST("/:part/media", write, productsH.AddMedia)
			prods.GET("/:part/media", read, productsH.ListMedia)
			prods.DELETE("/:part/media/:id", write, productsH.DeleteMedia)

			// Catalog projection
			prods.GET("/:part/catalog", read, catalogH.Project)
		}

		// Reference registries — editor/admin can write, all authenticated can read
		v1.GET("/brands", middleware.RequireRole("reader", "editor", "admin"), referencesH.ListBrands)
		v1.GET("/brands/:id", middleware.RequireRole("reader", "editor", "admin"), referencesH.GetBrand)
		v1.GET("/vendors/:id", middleware.RequireRole("reader", "editor", "admin"), referencesH.GetVendor)
		v1.GET("/warranties/:id", middleware.RequireRole("reader", "editor", "admin"), referencesH.GetWarranty)
		v1.GET("/dimensions/:id", middleware.RequireRole("reader", "editor", "admin"), referencesH.GetDimensions)
		refs := v1.Group("", middleware.RequireRole("editor", "admin"))
		{
			refs.POST("/brands", referencesH.CreateBrand)
			refs.POST("/vendors", referencesH.CreateVendor)
			refs.POST("/warranties", referencesH.CreateWarranty)
			refs.POST("/dimensions", referencesH.CreateDimensions)
		}
	}

	return r
}
