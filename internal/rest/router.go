package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/birdcall/birdcall/api/docs" // nolint: revive
	"github.com/birdcall/birdcall/internal/metrics"
	"github.com/birdcall/birdcall/internal/rest/api"
	"github.com/birdcall/birdcall/internal/rest/middleware"
)

func NewRouter(
	a *api.API,
	collector *metrics.Collector,
	clock clockwork.Clock,
	logger *zerolog.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(clock, logger),
		middleware.Metrics(clock, collector),
	)
	router.GET("/status", a.Status)
	router.GET("/status/:prefix", a.StatusByPrefix)
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router
}
