package main

import (
	"os"

	"stayhub/config"
	_ "stayhub/docs"
	"stayhub/models"
	"stayhub/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title StayHub API
// @version 1.0
// @description Backend đặt phòng: listing, booking, đánh giá và đăng ký chủ nhà.
// @BasePath /api/v1
func main() {
	router := gin.Default()

	err := config.LoadEnv()
	if err != nil {
		panic("Failed to load .env file")
	}

	if os.Getenv("JWT_SECRET") == "" {
		panic("JWT_SECRET is not set")
	}

	config.ConnectDB()

	if err := config.DB.AutoMigrate(&models.User{}, &models.Listing{}, &models.Booking{}, &models.Review{}); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}

	redisCli, err := config.ConnectRedis()
	if err != nil {
		panic("Failed to connect to Redis!")
	}

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}

	router.Use(cors.New(configCors))

	routes.SetupRoutes(router, config.DB, redisCli)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.Run(":8083")
}
