package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"stayhub/config"
	"stayhub/models"
	"stayhub/services"
)

type CreateBookingRequest struct {
	ListingID    uint   `json:"listingId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	Guests       int    `json:"guests" binding:"required"`
}

type BookingListingResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Price   int    `json:"price"`
	Avatar  string `json:"avatar"`
}

type BookingResponse struct {
	ID            uint                   `json:"id"`
	User          Actor                  `json:"user"`
	Listing       BookingListingResponse `json:"listing"`
	CheckInDate   string                 `json:"checkInDate"`
	CheckOutDate  string                 `json:"checkOutDate"`
	Guests        int                    `json:"guests"`
	Status        int                    `json:"status"`
	PaymentStatus int                    `json:"paymentStatus"`
	TotalPrice    float64                `json:"totalPrice"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

func convertToBookingResponse(booking models.Booking) BookingResponse {
	return BookingResponse{
		ID: booking.ID,
		User: Actor{
			Name:        booking.User.Name,
			Email:       booking.User.Email,
			PhoneNumber: booking.User.PhoneNumber,
		},
		Listing: BookingListingResponse{
			ID:      booking.Listing.ID,
			Name:    booking.Listing.Name,
			Address: booking.Listing.Address,
			City:    booking.Listing.City,
			Price:   booking.Listing.Price,
			Avatar:  booking.Listing.Avatar,
		},
		CheckInDate:   booking.CheckInDate,
		CheckOutDate:  booking.CheckOutDate,
		Guests:        booking.Guests,
		Status:        booking.Status,
		PaymentStatus: booking.PaymentStatus,
		TotalPrice:    booking.TotalPrice,
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}
}

// Chuyển chuỗi ngày string thành dạng timestamp
func ConvertDateToISOFormat(dateStr string) (time.Time, error) {
	parsedDate, err := time.Parse("02/01/2006", dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return parsedDate, nil
}

func invalidateBookingCache(userID uint) {
	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil {
		_ = services.DeleteFromRedis(config.Ctx, rdb, "bookings:all")
		_ = services.DeleteFromRedis(config.Ctx, rdb, fmt.Sprintf("bookings:user:%d", userID))
	}
}

// CreateBooking godoc
// @Summary Tạo booking
// @Description Giá được tính phía server: giá mỗi đêm x số đêm. Booking tạo ra ở trạng thái đã xác nhận.
// @Tags bookings
// @Accept json
// @Produce json
// @Param createBookingRequest body CreateBookingRequest true "Thông tin booking"
// @Success 201 {object} gin.H
// @Router /bookings [post]
func CreateBooking(c *gin.Context) {
	currentUserID := c.GetUint("currentUserID")

	var request CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Dữ liệu không hợp lệ"})
		return
	}

	checkInDate, err := ConvertDateToISOFormat(request.CheckInDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Ngày nhận phòng không hợp lệ"})
		return
	}

	checkOutDate, err := ConvertDateToISOFormat(request.CheckOutDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Ngày trả phòng không hợp lệ"})
		return
	}

	numDays := int(checkOutDate.Sub(checkInDate).Hours() / 24)
	if numDays <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Ngày trả phòng phải sau ngày nhận phòng"})
		return
	}

	if request.Guests < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Số khách phải ít nhất là 1"})
		return
	}

	var listing models.Listing
	if err := config.DB.First(&listing, request.ListingID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Listing không tồn tại"})
		return
	}

	if !listing.IsAvailable {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Listing hiện không nhận đặt phòng"})
		return
	}

	if request.Guests > listing.People {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Số khách vượt quá sức chứa của listing"})
		return
	}

	booking := models.Booking{
		UserID:        currentUserID,
		ListingID:     request.ListingID,
		CheckInDate:   request.CheckInDate,
		CheckOutDate:  request.CheckOutDate,
		Guests:        request.Guests,
		TotalPrice:    float64(listing.Price * numDays),
		Status:        models.BookingStatusConfirmed,
		PaymentStatus: models.PaymentStatusPaid,
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Không thể tạo booking", "error": err.Error()})
		return
	}

	if err := config.DB.Preload("User").Preload("Listing").First(&booking, booking.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Không thể tải dữ liệu booking sau khi tạo"})
		return
	}

	invalidateBookingCache(currentUserID)

	c.JSON(http.StatusCreated, gin.H{"code": 1, "mess": "Tạo booking thành công", "data": convertToBookingResponse(booking)})
}

func GetBookingDetail(c *gin.Context) {
	currentUserID := c.GetUint("currentUserID")
	currentUserRole := c.GetInt("currentUserRole")

	id := c.Param("id")

	var booking models.Booking
	if err := config.DB.Preload("User").Preload("Listing").First(&booking, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Booking không tồn tại"})
		return
	}

	// Chỉ chủ booking hoặc admin được xem
	if booking.UserID != currentUserID && currentUserRole != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"code": 0, "mess": "Bạn không có quyền xem booking này"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "data": convertToBookingResponse(booking)})
}

// GetBookingHistory trả về các booking của người dùng hiện tại.
func GetBookingHistory(c *gin.Context) {
	currentUserID := c.GetUint("currentUserID")

	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	var totalBookings int64
	if err := config.DB.Model(&models.Booking{}).Where("user_id = ?", currentUserID).Count(&totalBookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Lỗi khi đếm booking"})
		return
	}

	var bookings []models.Booking
	result := config.DB.Preload("User").
		Preload("Listing").
		Where("user_id = ?", currentUserID).
		Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&bookings)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Lỗi khi lấy thông tin booking!"})
		return
	}

	bookingResponses := make([]BookingResponse, 0)
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Lấy danh sách booking thành công", "data": bookingResponses,
		"page":  page,
		"limit": limit,
		"total": totalBookings,
	})
}

// CancelBooking godoc
// @Summary Hủy booking (chủ booking hoặc admin)
// @Tags bookings
// @Accept json
// @Produce json
// @Success 200 {object} gin.H
// @Router /bookingCancel [put]
func CancelBooking(c *gin.Context) {
	currentUserID := c.GetUint("currentUserID")
	currentUserRole := c.GetInt("currentUserRole")

	var request struct {
		ID uint `json:"id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Dữ liệu không hợp lệ"})
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Listing").First(&booking, request.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Booking không tồn tại"})
		return
	}

	if booking.UserID != currentUserID && currentUserRole != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"code": 0, "mess": "Bạn không có quyền hủy booking này"})
		return
	}

	if booking.Status == models.BookingStatusCancelled {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Booking đã bị hủy trước đó"})
		return
	}

	if !booking.Listing.IsCancelable && currentUserRole != models.RoleAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Listing này không cho phép hủy, liên hệ admin để được hỗ trợ"})
		return
	}

	booking.Status = models.BookingStatusCancelled
	if err := config.DB.Save(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Không thể hủy booking"})
		return
	}

	invalidateBookingCache(booking.UserID)

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Hủy booking thành công", "data": convertToBookingResponse(booking)})
}

// ChangeBookingStatus godoc
// @Summary Chuyển trạng thái booking (admin)
// @Tags bookings
// @Accept json
// @Produce json
// @Success 200 {object} gin.H
// @Router /bookingStatus [put]
func ChangeBookingStatus(c *gin.Context) {
	var request struct {
		ID            uint `json:"id" binding:"required"`
		Status        *int `json:"status" binding:"required"`
		PaymentStatus *int `json:"paymentStatus"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Dữ liệu không hợp lệ"})
		return
	}

	if *request.Status < models.BookingStatusPending || *request.Status > models.BookingStatusCancelled {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Trạng thái booking không hợp lệ"})
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, request.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Booking không tồn tại"})
		return
	}

	booking.Status = *request.Status
	if request.PaymentStatus != nil {
		booking.PaymentStatus = *request.PaymentStatus
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Không thể chuyển trạng thái booking"})
		return
	}

	invalidateBookingCache(booking.UserID)

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Trạng thái booking đã được cập nhật"})
}
