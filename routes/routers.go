package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"stayhub/controllers"
	middlewares "stayhub/middleware"
	"stayhub/models"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client) {

	userController := controllers.NewUserController(db, redisCli)

	anyRole := []int{models.RoleUser, models.RoleHost, models.RoleAdmin}

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)

	v1.GET("/users", middlewares.AuthMiddleware(db, models.RoleAdmin), userController.GetUsers)
	v1.GET("/users/:id", userController.GetUserByID)
	v1.PUT("/users", middlewares.AuthMiddleware(db, anyRole...), userController.UpdateUser)
	v1.DELETE("/users/:id", middlewares.AuthMiddleware(db, anyRole...), userController.DeleteUser)

	v1.POST("/host/apply", middlewares.AuthMiddleware(db, anyRole...), controllers.ApplyHost)
	v1.GET("/host/status", middlewares.AuthMiddleware(db, anyRole...), controllers.GetHostStatus)
	v1.GET("/host/applications", middlewares.AuthMiddleware(db, models.RoleAdmin), controllers.GetHostApplications)
	v1.PUT("/host/applications", middlewares.AuthMiddleware(db, models.RoleAdmin), controllers.ProcessHostApplication)
	v1.GET("/host/listings", middlewares.AuthMiddleware(db, models.RoleHost, models.RoleAdmin), controllers.GetHostListings)

	v1.GET("/listings", controllers.GetAllListings)
	v1.GET("/listings/featured", controllers.GetFeaturedListings)
	v1.GET("/listings/:id", controllers.GetListingDetail)
	v1.POST("/listings", middlewares.AuthMiddleware(db, models.RoleHost, models.RoleAdmin), controllers.CreateListing)
	v1.PUT("/listingUpdate", middlewares.AuthMiddleware(db, models.RoleHost, models.RoleAdmin), controllers.UpdateListing)
	v1.DELETE("/listings/:id", middlewares.AuthMiddleware(db, models.RoleHost, models.RoleAdmin), controllers.DeleteListing)
	v1.PUT("/listingFeatured", middlewares.AuthMiddleware(db, models.RoleAdmin), controllers.SetListingFeatured)

	v1.POST("/bookings", middlewares.AuthMiddleware(db, anyRole...), controllers.CreateBooking)
	v1.GET("/bookings/:id", middlewares.AuthMiddleware(db, anyRole...), controllers.GetBookingDetail)
	v1.GET("/bookingHistory", middlewares.AuthMiddleware(db, anyRole...), controllers.GetBookingHistory)
	v1.PUT("/bookingCancel", middlewares.AuthMiddleware(db, anyRole...), controllers.CancelBooking)
	v1.PUT("/bookingStatus", middlewares.AuthMiddleware(db, models.RoleAdmin), controllers.ChangeBookingStatus)

	v1.GET("/reviews", controllers.GetAllReviews)
	v1.GET("/reviews/:id", controllers.GetReviewDetail)
	v1.POST("/reviews", middlewares.AuthMiddleware(db, anyRole...), controllers.CreateReview)
	v1.PUT("/reviewUpdate", middlewares.AuthMiddleware(db, anyRole...), controllers.UpdateReview)
	v1.DELETE("/reviews/:id", middlewares.AuthMiddleware(db, anyRole...), controllers.DeleteReview)

	v1.GET("/admin/dashboard", middlewares.AuthMiddleware(db, models.RoleAdmin), controllers.GetDashboardStats)
}
