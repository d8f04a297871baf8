package services

import (
	"math"

	"gorm.io/gorm"

	"stayhub/models"
)

// AverageRating làm tròn đến 1 chữ số thập phân. Trả về 0 nếu không có đánh giá.
func AverageRating(stars []int) float64 {
	if len(stars) == 0 {
		return 0
	}

	total := 0
	for _, star := range stars {
		total += star
	}

	return math.Round(float64(total)/float64(len(stars))*10) / 10
}

// UpdateListingRating đọc toàn bộ đánh giá rồi ghi lại điểm trung bình.
// Không có transaction: hai lần ghi đồng thời thì lần sau thắng.
func UpdateListingRating(db *gorm.DB, listingID uint) error {
	var stars []int
	if err := db.Model(&models.Review{}).Where("listing_id = ?", listingID).Pluck("star", &stars).Error; err != nil {
		return err
	}

	return db.Model(&models.Listing{}).Where("id = ?", listingID).Update("rating", AverageRating(stars)).Error
}

// CanReview: người dùng phải có booking đã xác nhận hoặc đã hoàn thành.
func CanReview(db *gorm.DB, userID uint, listingID uint) bool {
	var count int64
	db.Model(&models.Booking{}).
		Where("user_id = ? AND listing_id = ? AND status IN ?", userID, listingID,
			[]int{models.BookingStatusConfirmed, models.BookingStatusCompleted}).
		Count(&count)
	return count > 0
}
