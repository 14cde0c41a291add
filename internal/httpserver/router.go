package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps bundles the services the router depends on.
type Deps struct {
	AccountSvc accountService
	CatalogSvc catalogService
	Tokens     tokenVerifier
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(corsOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	api.POST("/register", registerHandler(deps.AccountSvc))
	api.POST("/login", loginHandler(deps.AccountSvc))
	api.GET("/profile", bearerAuth(deps.Tokens), profileHandler(deps.AccountSvc))
	api.GET("/products", productsHandler(deps.CatalogSvc))
	api.GET("/products/:category", productsHandler(deps.CatalogSvc))
	api.POST("/seed-products", seedProductsHandler(deps.CatalogSvc))

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	return cfg
}
