package httpserver

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"phonestore/internal/i18n"
)

const maxBodyBytes = 1 << 20

// buildRouter wires routes for the API and the storefront page.
func buildRouter(logger *log.Logger, deps Deps) (*gin.Engine, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if deps.ProductSvc == nil || deps.OrderSvc == nil || deps.UserSvc == nil {
		return nil, errors.New("httpserver: product, order and user services are required")
	}
	if deps.Translator == nil {
		deps.Translator = i18n.New("")
	}
	spa, err := newSPAHandler(deps.Assets)
	if err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())
	router.Use(limitBody(maxBodyBytes), localeMiddleware(deps.Translator))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Store))

	h := &handlers{
		products:   deps.ProductSvc,
		orders:     deps.OrderSvc,
		users:      deps.UserSvc,
		translator: deps.Translator,
		logger:     logger,
	}
	api := router.Group("/api")
	api.GET("/products", h.listProducts)
	api.GET("/products/:id", h.getProduct)
	api.GET("/orders", h.listOrders)
	api.POST("/orders", h.createOrder)
	api.POST("/users", h.createUser)

	router.NoRoute(spa.serve)

	return router, nil
}

func limitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}
