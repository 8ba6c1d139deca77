package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	handler "biztime-backend/internal/handlers"
	"biztime-backend/internal/middleware"
	"biztime-backend/internal/repository"
)

type Options struct {
	CORSOrigins []string
	// Quiet drops the per-request log line.
	Quiet bool
}

// NewRouter builds the engine with the middleware chain and every route.
func NewRouter(db *gorm.DB, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	if !opts.Quiet {
		r.Use(middleware.RequestLogger())
	}
	r.Use(middleware.Recovery(), middleware.ErrorResponder())

	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	RegisterRoutes(r, db)
	r.NoRoute(middleware.NotFound)
	return r
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	handler.RegisterValidation()

	companyRepo := repository.NewCompanyRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	industryRepo := repository.NewIndustryRepository(db)

	companyHandler := handler.NewCompanyHandler(companyRepo, industryRepo)
	invoiceHandler := handler.NewInvoiceHandler(invoiceRepo, companyRepo)
	industryHandler := handler.NewIndustryHandler(industryRepo)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	companies := r.Group("/companies")
	{
		companies.GET("", companyHandler.List)
		companies.POST("", companyHandler.Create)
		companies.GET("/:code", companyHandler.Get)
		companies.PUT("/:code", companyHandler.Update)
		companies.DELETE("/:code", companyHandler.Delete)
		companies.GET("/:code/industries", companyHandler.ListIndustries)
		companies.POST("/:code/industries", companyHandler.AddIndustry)
	}

	invoices := r.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.List)
		invoices.POST("", invoiceHandler.Create)
		invoices.GET("/:id", invoiceHandler.Get)
		invoices.PUT("/:id", invoiceHandler.Update)
		invoices.DELETE("/:id", invoiceHandler.Delete)
	}

	industries := r.Group("/industries")
	{
		industries.GET("", industryHandler.List)
		industries.POST("", industryHandler.Create)
	}
}
