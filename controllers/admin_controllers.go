package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub/config"
	"stayhub/models"
)

// GetDashboardStats godoc
// @Summary Thống kê tổng quan cho admin
// @Tags admin
// @Produce json
// @Success 200 {object} gin.H
// @Router /admin/dashboard [get]
func GetDashboardStats(c *gin.Context) {
	var totalUsers, totalHosts, totalListings, totalBookings, pendingBookings, cancelledBookings int64

	if err := config.DB.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Lỗi khi thống kê người dùng"})
		return
	}
	config.DB.Model(&models.User{}).Where("role = ?", models.RoleHost).Count(&totalHosts)
	config.DB.Model(&models.Listing{}).Count(&totalListings)
	config.DB.Model(&models.Booking{}).Count(&totalBookings)
	config.DB.Model(&models.Booking{}).Where("status = ?", models.BookingStatusPending).Count(&pendingBookings)
	config.DB.Model(&models.Booking{}).Where("status = ?", models.BookingStatusCancelled).Count(&cancelledBookings)

	var totalRevenue float64
	config.DB.Model(&models.Booking{}).
		Where("payment_status = ?", models.PaymentStatusPaid).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&totalRevenue)

	c.JSON(http.StatusOK, gin.H{"code": 1, "data": gin.H{
		"userStats": gin.H{
			"total": totalUsers,
			"hosts": totalHosts,
		},
		"listingStats": gin.H{
			"total": totalListings,
		},
		"bookingStats": gin.H{
			"total":     totalBookings,
			"pending":   pendingBookings,
			"cancelled": cancelledBookings,
		},
		"revenue": gin.H{
			"total": totalRevenue,
		},
	}})
}
