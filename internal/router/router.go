package router

import (
	"github.com/MCalenda/FundMeNow/internal/event"
	"github.com/MCalenda/FundMeNow/internal/handler"
	"github.com/MCalenda/FundMeNow/internal/ledger"
	"github.com/gin-gonic/gin"
)

func Setup(l *ledger.Ledger, outbox *event.Outbox) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "fundmenow",
		})
	})

	// API版本组
	v1 := r.Group("/api/v1")
	{
		projectHandler := handler.NewProjectHandler(l)
		fundingHandler := handler.NewFundingHandler(l)
		settlementHandler := handler.NewSettlementHandler(l)

		projects := v1.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.GetProjects)
			projects.GET("/count", projectHandler.GetProjectCount)
			projects.GET("/:id", projectHandler.GetProject)
			projects.GET("/:id/stats", projectHandler.GetProjectStats)
			projects.GET("/:id/contribution", fundingHandler.GetContribution)
			projects.POST("/:id/fund", fundingHandler.FundProject)
			projects.POST("/:id/close", settlementHandler.CloseProject)
			projects.POST("/:id/withdraw", settlementHandler.Withdraw)
		}

		eventHandler := handler.NewEventHandler(outbox)
		events := v1.Group("/events")
		{
			events.GET("", eventHandler.GetEvents)
			events.POST("/ack", eventHandler.AckEvents)
		}
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Caller-Address")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
