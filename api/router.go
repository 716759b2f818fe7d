package api

import (
	"net/http"

	"github.com/farkinca1971/office-management-sub003/config"
	"github.com/farkinca1971/office-management-sub003/pkg/logger"
	"github.com/farkinca1971/office-management-sub003/storage"

	"github.com/gin-gonic/gin"
)

// SetUpRouter wires the dynamic object routes. Every table is served by the
// same pair of handlers; the table name is just a path parameter that flows
// into the statement compiler.
func SetUpRouter(cfg config.Config, log logger.LoggerI, strg storage.StorageI) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	handler := NewHandler(cfg, log, strg)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": cfg.ServiceName,
			"version": cfg.Version,
		})
	})

	v1 := router.Group("/v1")
	{
		v1.Any("/objects/:table", handler.HandleObject)
		v1.Any("/objects/:table/:id", handler.HandleObject)
	}

	return router
}
