package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the poem API onto a fresh engine.
func NewRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger())

	api := r.Group("/api")
	{
		api.GET("/poems", ListPoems)
		api.GET("/poems/:index", GetPoem)
		api.GET("/search", SearchPoems)
		api.GET("/random", RandomPoem)
		api.GET("/sources", ListSources)
		api.POST("/reshape", HandleReshape)
	}

	return r
}

// RequestLogger logs one line per request through Logger.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		Logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
