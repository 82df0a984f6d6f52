package router

import (
	"io/fs"
	"net/http"
	"time"

	"laundry/api"
	"laundry/config"
	_ "laundry/docs"
	"laundry/middleware"
	"laundry/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// 嵌入的静态文件 - 后台管理页面
	staticFS, _ := fs.Sub(web.StaticFS, ".")
	r.GET("/", func(c *gin.Context) {
		content, err := fs.ReadFile(staticFS, "index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "加载页面失败")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	})

	// 后台管理 API
	adminHandler := api.NewAdminHandler()
	reportHandler := api.NewReportHandler()
	admin := r.Group("/admin")
	{
		admin.POST("/login", middleware.LoginRateLimit(5, time.Minute), adminHandler.AdminLogin)
		admin.POST("/logout", adminHandler.AdminLogout)

		// 需要 Cookie 认证的后台接口
		adminAuth := admin.Group("")
		adminAuth.Use(AdminAuthMiddleware())
		{
			adminAuth.GET("/current-user", adminHandler.GetCurrentUserInfo)

			// 订单管理
			adminAuth.GET("/orders", adminHandler.GetAllOrders)
			adminAuth.POST("/orders", adminHandler.CreateOrder)
			adminAuth.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
			adminAuth.PUT("/orders/:id/pay", adminHandler.MarkOrderPaid)
			adminAuth.DELETE("/orders/:id", adminHandler.DeleteOrder)

			// 用户管理
			adminAuth.GET("/users", adminHandler.GetAllUsers)
			adminAuth.DELETE("/users/:id", adminHandler.DeleteUser)

			// 营收报表
			adminAuth.GET("/reports/daily", reportHandler.Daily)
			adminAuth.GET("/reports/weekly", reportHandler.Weekly)
			adminAuth.GET("/reports/monthly", reportHandler.Monthly)
			adminAuth.GET("/reports/summary", reportHandler.Summary)
			adminAuth.DELETE("/reports/months/:month", reportHandler.DeleteMonth)

			// 导出
			adminAuth.GET("/export/excel", adminHandler.ExportExcel)
		}
	}

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 路由组（供顾客 App 使用）
	v1 := r.Group("/api/v1")
	{
		// 认证相关路由（无需登录）
		authHandler := api.NewAuthHandler(cfg)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", middleware.LoginRateLimit(5, time.Minute), authHandler.Login)
		}

		// 需要 JWT 认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			// 用户相关
			authorized.GET("/auth/profile", authHandler.GetProfile)
			authorized.PUT("/auth/password", authHandler.ChangePassword)

			// 订单相关
			orderHandler := api.NewOrderHandler()
			orders := authorized.Group("/orders")
			{
				orders.POST("", orderHandler.Create)
				orders.GET("", orderHandler.List)
				orders.GET("/:id", orderHandler.Get)
			}

			// 导出相关
			exportHandler := api.NewExportHandler()
			export := authorized.Group("/export")
			{
				export.GET("/csv", exportHandler.ExportCSV)
				export.GET("/json", exportHandler.ExportJSON)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// AdminAuthMiddleware 后台管理 Cookie 认证中间件
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := c.Cookie("admin_user_id")
		if err != nil || userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "请先登录",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
