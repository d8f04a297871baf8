package models

import (
	"time"
)

// Booking status constants
const (
	BookingStatusPending   = 0
	BookingStatusConfirmed = 1
	BookingStatusCompleted = 2
	BookingStatusCancelled = 3
)

// Payment status constants
const (
	PaymentStatusPending  = 0
	PaymentStatusPaid     = 1
	PaymentStatusRefunded = 2
	PaymentStatusFailed   = 3
)

type Booking struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"userId"`
	User          User      `json:"user" gorm:"foreignKey:UserID"`
	ListingID     uint      `json:"listingId"`
	Listing       Listing   `json:"listing" gorm:"foreignKey:ListingID"`
	CheckInDate   string    `json:"checkInDate"`  // Định dạng 02/01/2006
	CheckOutDate  string    `json:"checkOutDate"` // Định dạng 02/01/2006
	Guests        int       `json:"guests"`
	TotalPrice    float64   `json:"totalPrice"`
	Status        int       `json:"status"`        // 0: chờ xử lý - 1: đã xác nhận - 2: hoàn thành - 3: đã hủy
	PaymentStatus int       `json:"paymentStatus"` // 0: chờ thanh toán - 1: đã thanh toán - 2: hoàn tiền - 3: thất bại
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
