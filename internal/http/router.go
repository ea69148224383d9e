package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	aiH *AIHandler,
	dataH *DataHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery, CORS y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), corsMiddleware(), jsonContentTypeMiddleware())

	ai := r.Group("/ai")
	ai.POST("/chat", aiH.Chat)

	data := r.Group("/data")
	data.POST("/responses", dataH.WriteResponse)
	data.GET("/responses", dataH.ReadResponse)
	data.PUT("/responses", dataH.UpdateResponse)
	data.DELETE("/responses", dataH.DeleteResponse)
	data.GET("/emails", dataH.ListEmails)
	data.POST("/personal-info", dataH.AddPersonalInfo)
	data.GET("/personal-info", dataH.GetPersonalInfo)
	data.GET("/chats", dataH.ListChats)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// corsMiddleware habilita CORS permisivo para el frontend del cuestionario.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Email-Id")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
