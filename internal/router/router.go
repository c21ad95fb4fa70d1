package router

import (
	"time"

	"barclube/internal/config"
	"barclube/internal/handler"
	"barclube/internal/middleware"
	"barclube/internal/service"
	"barclube/internal/store"

	"github.com/gin-gonic/gin"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Store. Every engine operation
// serializes on the store's single mutex; the HTTP layer is stateless.
func New(cfg *config.Config, st *store.Store) *gin.Engine {
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
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(st)
	mesaSvc := service.NewMesaService(st)
	produtoSvc := service.NewProdutoService(st)
	caixaSvc := service.NewCaixaService(st)
	comandaSvc := service.NewComandaService(st)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	mesasH := handler.NewMesasHandler(mesaSvc)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	caixaH := handler.NewCaixaHandler(caixaSvc)
	comandasH := handler.NewComandasHandler(comandaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	api := r.Group("/api", middleware.NoStore())

	// Public
	api.GET("/health", handler.Health())
	api.POST("/auth/login", middleware.LoginRateLimiter(), authH.Login)

	// Protected
	protected := api.Group("", middleware.BearerAuth(authSvc))
	{
		protected.GET("/tables", mesasH.Listar)
		protected.POST("/tables", mesasH.Criar)

		protected.GET("/products", produtosH.Listar)
		protected.POST("/products", produtosH.Criar)

		protected.GET("/cash/open", caixaH.Aberto)
		protected.POST("/cash/open", caixaH.Abrir)
		protected.POST("/cash/adjust", caixaH.RegistrarMovimento)
		protected.POST("/cash/close", caixaH.Fechar)

		protected.GET("/orders", comandasH.Listar)
		protected.POST("/orders", comandasH.Abrir)
		protected.GET("/orders/:id", comandasH.Obter)
		protected.POST("/orders/:id/items", comandasH.AdicionarItem)
		protected.POST("/orders/:id/payments", comandasH.RegistrarPagamento)
		protected.POST("/orders/:id/close", comandasH.Fechar)
	}

	// Everything else is the static frontend.
	r.NoRoute(handler.Static(cfg.StaticDir))

	return r
}
