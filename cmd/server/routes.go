package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"contract-hub.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	recordHandler *handlers.RecordHandler
	configHandler *handlers.RegistryConfigHandler
	adminHandler  *handlers.AdminHandler
	callerAuth    gin.HandlerFunc
	adminAuth     gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Record routes (public read, signed write)
		records := v1.Group("/records")
		{
			records.GET("", d.recordHandler.ListRecords)
			records.GET("/:id", d.recordHandler.GetRecord)
			records.GET("/:id/events", d.recordHandler.GetRecordEvents)

			records.POST("", d.callerAuth, d.recordHandler.CreateRecord)
			records.PUT("/:id", d.callerAuth, d.recordHandler.UpdateRecord)
		}

		// Registry config (public)
		v1.GET("/registry/config", d.configHandler.GetConfig)

		// Admin routes (operator only)
		admin := v1.Group("/admin")
		admin.Use(d.adminAuth)
		{
			admin.PUT("/registry/config", d.adminHandler.UpdateRegistryConfig)
			admin.GET("/ledger/:address", d.adminHandler.GetLedgerAccount)
			admin.POST("/ledger/:address/deposit", d.adminHandler.DepositLedger)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers",
			"Origin, Content-Type, Authorization, X-Api-Key, X-Request-ID, X-Caller-Address, X-Caller-Signature, X-Caller-Timestamp")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
