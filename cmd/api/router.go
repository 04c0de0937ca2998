package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-backend/internal/shared/middleware"
	"library-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))
		v1.GET("/db-test", databaseTestHandler(c))

		setupCategoryRoutes(v1, c)
		setupBookRoutes(v1, c)
		setupMemberRoutes(v1, c)
		setupBorrowingRoutes(v1, c)
		setupDashboardRoutes(v1, c)
	}

	return router
}

func setupCategoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	categories := v1.Group("/categories")
	{
		categories.POST("", c.CategoryHandler.Create)
		categories.GET("", c.CategoryHandler.List)
		categories.GET("/:id", c.CategoryHandler.GetByID)
		categories.PUT("/:id", c.CategoryHandler.Update)
		categories.DELETE("/:id", c.CategoryHandler.Delete)
	}
}

func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.POST("", c.BookHandler.Create)
		books.GET("", c.BookHandler.List)
		books.GET("/:id", c.BookHandler.GetByID)
		books.PUT("/:id", c.BookHandler.Update)
		books.DELETE("/:id", c.BookHandler.Delete)
	}
}

func setupMemberRoutes(v1 *gin.RouterGroup, c *container.Container) {
	members := v1.Group("/members")
	{
		members.POST("", c.MemberHandler.Create)
		members.GET("", c.MemberHandler.List)
		members.GET("/:id", c.MemberHandler.GetByID)
		members.PUT("/:id", c.MemberHandler.Update)
		members.DELETE("/:id", c.MemberHandler.Delete)
		members.GET("/:id/borrowings", c.BorrowingHandler.ListByMember)
	}
}

func setupBorrowingRoutes(v1 *gin.RouterGroup, c *container.Container) {
	borrowings := v1.Group("/borrowings")
	{
		borrowings.POST("", c.BorrowingHandler.Create)
		borrowings.GET("", c.BorrowingHandler.List)
		borrowings.GET("/:id", c.BorrowingHandler.GetByID)
		borrowings.POST("/:id/return", c.BorrowingHandler.Return)
	}
}

func setupDashboardRoutes(v1 *gin.RouterGroup, c *container.Container) {
	dashboard := v1.Group("/dashboard")
	{
		dashboard.GET("", c.DashboardHandler.Get)
		dashboard.POST("/refresh", c.DashboardHandler.Refresh)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Redis going down degrades the dashboard cache only, so it does
		// not flip the overall status.
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		status := http.StatusOK
		if health["status"] != "ok" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, health)
	}
}

func databaseTestHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "database not connected",
			})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		var now time.Time
		if err := appCtx.DB.Pool.QueryRow(ctx, "SELECT NOW()").Scan(&now); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("query failed: %v", err),
			})
			return
		}

		stats := appCtx.DB.Pool.Stat()
		c.JSON(http.StatusOK, gin.H{
			"database_time": now,
			"pool": gin.H{
				"total_conns":    stats.TotalConns(),
				"idle_conns":     stats.IdleConns(),
				"acquired_conns": stats.AcquiredConns(),
			},
		})
	}
}
