// Package server assembles the gin engine and the HTTP server around it.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "carteira/internal/docs" // Import swagger docs
	"carteira/internal/handlers"
	"carteira/internal/metrics"
	"carteira/internal/middleware"
	"carteira/internal/services"
	"carteira/internal/validator"
)

// Deps holds what the router needs from the outside world.
type Deps struct {
	DB *gorm.DB

	// Metrics is optional; a fresh registry is created when nil.
	Metrics *metrics.Metrics

	// Audit is optional; the zap-backed audit log is used when nil.
	Audit services.AuditServicer
}

// NewRouter builds the gin engine with every route and middleware wired.
func NewRouter(deps Deps) (*gin.Engine, error) {
	validator.Register()

	sqlDB, err := deps.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}

	m := deps.Metrics
	if m == nil {
		m = metrics.New()
	}
	audit := deps.Audit
	if audit == nil {
		audit = services.NewAuditService()
	}

	// Initialize services
	clienteService := services.NewClienteService(deps.DB)
	acaoService := services.NewAcaoService(deps.DB)
	alocacaoService := services.NewAlocacaoService(deps.DB)

	// Initialize handlers
	clienteHandler := handlers.NewClienteHandler(clienteService, audit)
	acaoHandler := handlers.NewAcaoHandler(acaoService, audit)
	alocacaoHandler := handlers.NewAlocacaoHandler(alocacaoService, audit)
	healthHandler := handlers.NewHealthHandler(sqlDB)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(middleware.RequestLogging())
	router.Use(middleware.Recovery())
	router.Use(m.Middleware())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	router.NoRoute(middleware.NotFound)
	router.NoMethod(middleware.MethodNotAllowed)

	// Operational endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(m.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Customer routes
	clientes := router.Group("/clientes")
	clientes.POST("", clienteHandler.CreateCliente)
	clientes.GET("", clienteHandler.ListClientes)
	clientes.GET("/buscar", clienteHandler.SearchCliente)
	clientes.GET("/:id", clienteHandler.GetCliente)
	clientes.PUT("/:id", clienteHandler.UpdateCliente)
	clientes.DELETE("/:id", clienteHandler.DeleteCliente)
	clientes.POST("/:id/alocacoes", alocacaoHandler.AddAlocacao)
	clientes.GET("/:id/alocacoes", alocacaoHandler.ListClienteAlocacoes)

	// Asset routes
	acoes := router.Group("/acoes")
	acoes.POST("", acaoHandler.CreateAcao)
	acoes.GET("", acaoHandler.ListAcoes)
	acoes.GET("/:id", acaoHandler.GetAcao)
	acoes.PUT("/:id", acaoHandler.UpdateAcao)
	acoes.DELETE("/:id", acaoHandler.DeleteAcao)

	// Allocation routes
	alocacoes := router.Group("/alocacoes")
	alocacoes.GET("/:id", alocacaoHandler.GetAlocacao)
	alocacoes.PUT("/:id", alocacaoHandler.UpdateAlocacao)
	alocacoes.DELETE("/:id", alocacaoHandler.DeleteAlocacao)

	return router, nil
}

// New wraps handler in an http.Server listening on addr.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// cors allows any origin; the API carries no credentials.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
