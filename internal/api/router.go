package api

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"max.ks1230/expense-splitter/internal/entity/expense"
)

type recordSource interface {
	GetAll(ctx context.Context) ([]expense.Record, error)
	Create(ctx context.Context, draft expense.Draft) (expense.Record, error)
}

type config interface {
	AllowedOrigins() []string
}

// NewRouter exposes the record source over REST for the expense clients.
func NewRouter(source recordSource, config config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), tracing(), requestLogger())

	if origins := config.AllowedOrigins(); len(origins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	h := &itemsHandler{source: source, today: expense.Today}

	router.GET("/healthz", health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/items", h.list)
	router.POST("/items", h.create)

	return router
}
