package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"heath-crm-backend/config"
	"heath-crm-backend/controllers"
	"heath-crm-backend/services"
	"heath-crm-backend/store"
	"heath-crm-backend/utils"
)

func SetupRouter(db *gorm.DB, facade *store.Facade) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5500",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	identity := services.NewIdentityService(db)

	authController := &controllers.AuthController{DB: db, Store: facade, Identity: identity}
	customerController := &controllers.CustomerController{Store: facade, Identity: identity}
	scheduleController := &controllers.ScheduleController{Store: facade, Identity: identity}
	orderController := &controllers.OrderController{Store: facade, Identity: identity}

	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", authController.Me)
		auth.POST("/logout", authController.Logout)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", customerController.CreateCustomer)
			customers.GET("", customerController.GetCustomers)
			customers.GET("/:id", customerController.GetCustomer)
			customers.PUT("/:id", customerController.UpdateCustomer)
			customers.DELETE("/:id", customerController.DeleteCustomer)
		}

		// Schedule routes
		schedules := api.Group("/schedules")
		{
			schedules.POST("", scheduleController.CreateSchedule)
			schedules.GET("", scheduleController.GetSchedules)
			schedules.DELETE("/:id", scheduleController.DeleteSchedule)
		}

		// Order routes
		orders := api.Group("/orders")
		{
			orders.POST("", orderController.CreateOrder)
			orders.GET("", orderController.GetOrders)
			orders.PUT("/:id", orderController.UpdateOrder)
			orders.DELETE("/:id", orderController.DeleteOrder)
		}
	}

	return r
}
