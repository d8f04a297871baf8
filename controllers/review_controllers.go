package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"stayhub/config"
	"stayhub/models"
	"stayhub/services"
)

type ReviewResponse struct {
	ID        uint      `json:"id"`
	ListingID uint      `json:"listingId"`
	Comment   string    `json:"comment"`
	Star      int       `json:"star"`
	CreateAt  time.Time `json:"createAt"`
	UpdateAt  time.Time `json:"updateAt"`
	User      UserInfo  `json:"user"`
}

type UserInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type CreateReviewRequest struct {
	ListingID uint   `json:"listingId" binding:"required"`
	Star      int    `json:"star" binding:"required"`
	Comment   string `json:"comment" binding:"required"`
}

func convertToReviewResponse(review models.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		ListingID: review.ListingID,
		Comment:   review.Comment,
		Star:      review.Star,
		CreateAt:  review.CreateAt,
		UpdateAt:  review.UpdateAt,
		User: UserInfo{
			ID:       review.UserID,
			Username: review.Username,
			Avatar:   review.User.Avatar,
		},
	}
}

func invalidateReviewCache(listingID uint) {
	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil {
		_ = services.DeleteFromRedis(config.Ctx, rdb, "reviews:all")
		_ = services.DeleteFromRedis(config.Ctx, rdb, fmt.Sprintf("reviews:listing:%d", listingID))
		_ = services.DeleteFromRedis(config.Ctx, rdb, "listings:all")
		_ = services.DeleteFromRedis(config.Ctx, rdb, "listings:featured")
	}
}

// GetAllReviews godoc
// @Summary Lấy danh sách đánh giá
// @Tags reviews
// @Produce json
// @Param listingId query int false "Lọc theo listing"
// @Success 200 {object} gin.H
// @Router /reviews [get]
func GetAllReviews(c *gin.Context) {
	listingIDFilter := c.DefaultQuery("listingId", "")

	cacheKey := "reviews:all"
	if listingIDFilter != "" {
		cacheKey = fmt.Sprintf("reviews:listing:%s", listingIDFilter)
	}

	rdb, err := config.ConnectRedis()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Không thể kết nối Redis", "error": err.Error()})
		return
	}

	var reviews []models.Review

	if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &reviews); err != nil || len(reviews) == 0 {
		tx := config.DB.Preload("User")
		if listingIDFilter != "" {
			if parsedListingID, err := strconv.Atoi(listingIDFilter); err == nil {
				tx = tx.Where("listing_id = ?", parsedListingID)
			}
		}

		if err := tx.Order("create_at DESC").Limit(20).Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Lỗi khi lấy danh sách đánh giá", "error": err.Error()})
			return
		}

		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, reviews, time.Hour); err != nil {
			log.Printf("Lỗi khi lưu danh sách đánh giá vào Redis: %v", err)
		}
	}

	reviewResponses := make([]ReviewResponse, 0)
	for _, review := range reviews {
		reviewResponses = append(reviewResponses, convertToReviewResponse(review))
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Lấy danh sách đánh giá thành công", "data": reviewResponses})
}

func GetReviewDetail(c *gin.Context) {
	id := c.Param("id")

	var review models.Review
	if err := config.DB.Preload("User").First(&review, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Đánh giá không tồn tại", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Lấy thông tin đánh giá thành công", "data": convertToReviewResponse(review)})
}

// CreateReview godoc
// @Summary Tạo đánh giá
// @Description Người dùng phải có booking đã xác nhận hoặc hoàn thành trên listing;
// @Description mỗi người chỉ đánh giá một listing một lần. Admin không bị ràng buộc booking.
// @Tags reviews
// @Accept json
// @Produce json
// @Param createReviewRequest body CreateReviewRequest true "Nội dung đánh giá"
// @Success 201 {object} gin.H
// @Router /reviews [post]
func CreateReview(c *gin.Context) {
	currentUserID := c.GetUint("currentUserID")
	currentUserRole := c.GetInt("currentUserRole")

	var request CreateReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Dữ liệu không hợp lệ", "error": err.Error()})
		return
	}

	if request.Star < 1 || request.Star > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Số sao phải từ 1 đến 5"})
		return
	}

	if strings.TrimSpace(request.Comment) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Bình luận không được để trống"})
		return
	}

	var listing models.Listing
	if err := config.DB.First(&listing, request.ListingID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Listing không tồn tại"})
		return
	}

	if currentUserRole != models.RoleAdmin && !services.CanReview(config.DB, currentUserID, request.ListingID) {
		c.JSON(http.StatusForbidden, gin.H{"code": 0, "mess": "Bạn phải đặt và lưu trú tại đây trước khi đánh giá"})
		return
	}

	var existingReview models.Review
	if err := config.DB.Where("user_id = ? AND listing_id = ?", currentUserID, request.ListingID).First(&existingReview).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"code": 0, "mess": "Bạn đã đánh giá listing này trước đó"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, currentUserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Người dùng không tồn tại"})
		return
	}

	review := models.Review{
		UserID:    currentUserID,
		ListingID: request.ListingID,
		Username:  user.Name, // Chụp lại tên tại thời điểm tạo
		Comment:   request.Comment,
		Star:      request.Star,
	}

	if err := config.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Lỗi khi tạo đánh giá", "error": err.Error()})
		return
	}

	if err := services.UpdateListingRating(config.DB, review.ListingID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Lỗi khi cập nhật điểm đánh giá listing"})
		return
	}

	invalidateReviewCache(review.ListingID)

	c.JSON(http.StatusCreated, gin.H{"code": 1, "mess": "Tạo đánh giá thành công", "data": review})
}

// UpdateReview godoc
// @Summary Cập nhật đánh giá (tác giả hoặc admin)
// @Tags reviews
// @Accept json
// @Produce json
// @Success 200 {object} gin.H
// @Router /reviewUpdate [put]
func UpdateReview(c *gin.Context) {
	currentUserID := c.GetUint("currentUserID")
	currentUserRole := c.GetInt("currentUserRole")

	var reviewInput struct {
		ID      uint   `json:"id" binding:"required"`
		Comment string `json:"comment"`
		Star    int    `json:"star"`
	}

	if err := c.ShouldBindJSON(&reviewInput); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Dữ liệu không hợp lệ", "error": err.Error()})
		return
	}

	if reviewInput.Star != 0 && (reviewInput.Star < 1 || reviewInput.Star > 5) {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Số sao phải từ 1 đến 5"})
		return
	}

	var review models.Review
	if err := config.DB.First(&review, reviewInput.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Đánh giá không tồn tại", "error": err.Error()})
		return
	}

	if review.UserID != currentUserID && currentUserRole != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"code": 0, "mess": "Bạn không có quyền cập nhật đánh giá này"})
		return
	}

	starChanged := reviewInput.Star != 0 && reviewInput.Star != review.Star

	if reviewInput.Comment != "" {
		review.Comment = reviewInput.Comment
	}
	if reviewInput.Star != 0 {
		review.Star = reviewInput.Star
	}

	if err := config.DB.Save(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Lỗi khi cập nhật đánh giá", "error": err.Error()})
		return
	}

	if starChanged {
		if err := services.UpdateListingRating(config.DB, review.ListingID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Lỗi khi cập nhật điểm đánh giá listing"})
			return
		}
	}

	invalidateReviewCache(review.ListingID)

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Cập nhật đánh giá thành công", "data": review})
}

// DeleteReview godoc
// @Summary Xóa đánh giá (tác giả hoặc admin)
// @Tags reviews
// @Produce json
// @Param id path int true "ID đánh giá"
// @Success 200 {object} gin.H
// @Router /reviews/{id} [delete]
func DeleteReview(c *gin.Context) {
	currentUserID := c.GetUint("currentUserID")
	currentUserRole := c.GetInt("currentUserRole")

	id := c.Param("id")

	var review models.Review
	if err := config.DB.First(&review, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Đánh giá không tồn tại"})
		return
	}

	if review.UserID != currentUserID && currentUserRole != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"code": 0, "mess": "Bạn không có quyền xóa đánh giá này"})
		return
	}

	listingID := review.ListingID

	if err := config.DB.Delete(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Lỗi khi xóa đánh giá", "error": err.Error()})
		return
	}

	// Hết đánh giá thì điểm trung bình về 0
	if err := services.UpdateListingRating(config.DB, listingID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Lỗi khi cập nhật điểm đánh giá listing"})
		return
	}

	invalidateReviewCache(listingID)

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Xóa đánh giá thành công"})
}
