package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"stayhub/config"
	"stayhub/models"
	"stayhub/services"
)

type ListingRequest struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Address      string          `json:"address"`
	City         string          `json:"city"`
	State        string          `json:"state"`
	Country      string          `json:"country"`
	Type         *int            `json:"type"`
	Price        int             `json:"price"`
	NumBed       int             `json:"numBed"`
	NumTolet     int             `json:"numTolet"`
	People       int             `json:"people"`
	Amenities    []string        `json:"amenities"`
	Avatar       string          `json:"avatar"`
	Img          json.RawMessage `json:"img"`
	IsAvailable  *bool           `json:"isAvailable"`
	IsCancelable *bool           `json:"isCancelable"`
}

type Actor struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type ListingResponse struct {
	ID           uint           `json:"id"`
	UserID       uint           `json:"userId"`
	Name         string         `json:"name"`
	Address      string         `json:"address"`
	City         string         `json:"city"`
	State        string         `json:"state"`
	Country      string         `json:"country"`
	Type         int            `json:"type"`
	Price        int            `json:"price"`
	NumBed       int            `json:"numBed"`
	NumTolet     int            `json:"numTolet"`
	People       int            `json:"people"`
	Amenities    pq.StringArray `json:"amenities"`
	Avatar       string         `json:"avatar"`
	Rating       float64        `json:"rating"`
	IsAvailable  bool           `json:"isAvailable"`
	IsCancelable bool           `json:"isCancelable"`
	Featured     bool           `json:"featured"`
	CreateAt     time.Time      `json:"createAt"`
	UpdateAt     time.Time      `json:"updateAt"`
}

type ListingDetailResponse struct {
	ListingResponse
	Description string           `json:"description"`
	Img         json.RawMessage  `json:"img"`
	Host        Actor            `json:"host"`
	Reviews     []ReviewResponse `json:"reviews"`
}

func convertToListingResponse(listing models.Listing) ListingResponse {
	return ListingResponse{
		ID:           listing.ID,
		UserID:       listing.UserID,
		Name:         listing.Name,
		Address:      listing.Address,
		City:         listing.City,
		State:        listing.State,
		Country:      listing.Country,
		Type:         listing.Type,
		Price:        listing.Price,
		NumBed:       listing.NumBed,
		NumTolet:     listing.NumTolet,
		People:       listing.People,
		Amenities:    listing.Amenities,
		Avatar:       listing.Avatar,
		Rating:       listing.Rating,
		IsAvailable:  listing.IsAvailable,
		IsCancelable: listing.IsCancelable,
		Featured:     listing.Featured,
		CreateAt:     listing.CreatedAt,
		UpdateAt:     listing.UpdatedAt,
	}
}

func invalidateListingCache() {
	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil {
		_ = services.DeleteFromRedis(config.Ctx, rdb, "listings:all")
		_ = services.DeleteFromRedis(config.Ctx, rdb, "listings:featured")
	}
}

// GetAllListings godoc
// @Summary Lấy danh sách listing công khai
// @Tags listings
// @Produce json
// @Success 200 {object} gin.H
// @Router /listings [get]
func GetAllListings(c *gin.Context) {
	cacheKey := "listings:all"

	rdb, err := config.ConnectRedis()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Không thể kết nối Redis"})
		return
	}

	var allListings []models.Listing

	if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &allListings); err != nil || len(allListings) == 0 {
		if err := config.DB.Find(&allListings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Không thể lấy danh sách listing"})
			return
		}

		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, allListings, time.Hour); err != nil {
			log.Printf("Lỗi khi lưu danh sách listing vào Redis: %v", err)
		}
	}

	typeFilter := c.Query("type")
	nameFilter := c.Query("name")
	cityFilter := c.Query("city")
	numBedFilter := c.Query("numBed")
	peopleFilter := c.Query("people")
	maxPriceFilter := c.Query("maxPrice")

	filteredListings := make([]models.Listing, 0)
	for _, listing := range allListings {
		if !listing.IsAvailable {
			continue
		}
		if typeFilter != "" {
			parsedType, err := strconv.Atoi(typeFilter)
			if err == nil && listing.Type != parsedType {
				continue
			}
		}
		if nameFilter != "" {
			decodedName, _ := url.QueryUnescape(nameFilter)
			if !strings.Contains(strings.ToLower(listing.Name), strings.ToLower(decodedName)) {
				continue
			}
		}
		if cityFilter != "" {
			decodedCity, _ := url.QueryUnescape(cityFilter)
			if !strings.Contains(strings.ToLower(listing.City), strings.ToLower(decodedCity)) {
				continue
			}
		}
		if numBedFilter != "" {
			parsedNumBed, err := strconv.Atoi(numBedFilter)
			if err == nil && listing.NumBed < parsedNumBed {
				continue
			}
		}
		if peopleFilter != "" {
			parsedPeople, err := strconv.Atoi(peopleFilter)
			if err == nil && listing.People < parsedPeople {
				continue
			}
		}
		if maxPriceFilter != "" {
			parsedMaxPrice, err := strconv.Atoi(maxPriceFilter)
			if err == nil && listing.Price > parsedMaxPrice {
				continue
			}
		}
		filteredListings = append(filteredListings, listing)
	}

	totalFiltered := len(filteredListings)

	sort.Slice(filteredListings, func(i, j int) bool {
		return filteredListings[i].UpdatedAt.After(filteredListings[j].UpdatedAt)
	})

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

	start := page * limit
	end := start + limit
	if start >= totalFiltered {
		filteredListings = []models.Listing{}
	} else if end > totalFiltered {
		filteredListings = filteredListings[start:]
	} else {
		filteredListings = filteredListings[start:end]
	}

	listingResponses := make([]ListingResponse, 0)
	for _, listing := range filteredListings {
		listingResponses = append(listingResponses, convertToListingResponse(listing))
	}

	c.JSON(http.StatusOK, gin.H{
		"code":       1,
		"mess":       "Lấy danh sách listing thành công",
		"data":       listingResponses,
		"pagination": gin.H{"page": page, "limit": limit, "total": totalFiltered},
	})
}

func GetFeaturedListings(c *gin.Context) {
	cacheKey := "listings:featured"

	rdb, err := config.ConnectRedis()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Không thể kết nối Redis"})
		return
	}

	var listings []models.Listing

	if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &listings); err != nil || len(listings) == 0 {
		if err := config.DB.Where("featured = ? AND is_available = ?", true, true).Find(&listings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Không thể lấy danh sách listing nổi bật"})
			return
		}

		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, listings, time.Hour); err != nil {
			log.Printf("Lỗi khi lưu danh sách listing nổi bật vào Redis: %v", err)
		}
	}

	listingResponses := make([]ListingResponse, 0)
	for _, listing := range listings {
		listingResponses = append(listingResponses, convertToListingResponse(listing))
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Lấy danh sách listing nổi bật thành công", "data": listingResponses})
}

func GetListingDetail(c *gin.Context) {
	id := c.Param("id")

	var listing models.Listing
	if err := config.DB.Preload("User").Preload("Reviews").Preload("Reviews.User").First(&listing, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Listing không tồn tại"})
		return
	}

	reviewResponses := make([]ReviewResponse, 0)
	for _, review := range listing.Reviews {
		reviewResponses = append(reviewResponses, convertToReviewResponse(review))
	}

	detail := ListingDetailResponse{
		ListingResponse: convertToListingResponse(listing),
		Description:     listing.Description,
		Img:             listing.Img,
		Host: Actor{
			Name:        listing.User.Name,
			Email:       listing.User.Email,
			PhoneNumber: listing.User.PhoneNumber,
		},
		Reviews: reviewResponses,
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Lấy thông tin listing thành công", "data": detail})
}

// CreateListing godoc
// @Summary Tạo listing mới (chủ nhà hoặc admin)
// @Tags listings
// @Accept json
// @Produce json
// @Param listingRequest body ListingRequest true "Thông tin listing"
// @Success 201 {object} gin.H
// @Router /listings [post]
func CreateListing(c *gin.Context) {
	currentUserID := c.GetUint("currentUserID")

	var request ListingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Dữ liệu không hợp lệ", "error": err.Error()})
		return
	}

	listing := models.Listing{
		UserID:      currentUserID,
		Name:        request.Name,
		Description: request.Description,
		Address:     request.Address,
		City:        request.City,
		State:       request.State,
		Country:     request.Country,
		Price:       request.Price,
		NumBed:      request.NumBed,
		NumTolet:    request.NumTolet,
		People:      request.People,
		Amenities:   request.Amenities,
		Avatar:      request.Avatar,
		Img:         request.Img,
	}
	if request.Type != nil {
		listing.Type = *request.Type
	}
	if listing.People == 0 {
		listing.People = 1
	}
	if request.IsAvailable != nil {
		listing.IsAvailable = *request.IsAvailable
	} else {
		listing.IsAvailable = true
	}
	if request.IsCancelable != nil {
		listing.IsCancelable = *request.IsCancelable
	} else {
		listing.IsCancelable = true
	}

	if err := listing.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Dữ liệu không hợp lệ", "error": err.Error()})
		return
	}

	if err := config.DB.Create(&listing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Lỗi khi tạo listing", "error": err.Error()})
		return
	}

	invalidateListingCache()

	c.JSON(http.StatusCreated, gin.H{"code": 1, "mess": "Tạo listing thành công", "data": convertToListingResponse(listing)})
}

// UpdateListing godoc
// @Summary Cập nhật listing (chủ sở hữu hoặc admin)
// @Tags listings
// @Accept json
// @Produce json
// @Param listingRequest body ListingRequest true "Thông tin listing cần cập nhật"
// @Success 200 {object} gin.H
// @Router /listingUpdate [put]
func UpdateListing(c *gin.Context) {
	currentUserID := c.GetUint("currentUserID")
	currentUserRole := c.GetInt("currentUserRole")

	var request ListingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Dữ liệu không hợp lệ", "error": err.Error()})
		return
	}

	var listing models.Listing
	if err := config.DB.First(&listing, request.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Listing không tồn tại"})
		return
	}

	// Chỉ chủ sở hữu hoặc admin được sửa
	if listing.UserID != currentUserID && currentUserRole != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"code": 0, "mess": "Bạn không có quyền cập nhật listing này"})
		return
	}

	if request.Name != "" {
		listing.Name = request.Name
	}
	if request.Description != "" {
		listing.Description = request.Description
	}
	if request.Address != "" {
		listing.Address = request.Address
	}
	if request.City != "" {
		listing.City = request.City
	}
	if request.State != "" {
		listing.State = request.State
	}
	if request.Country != "" {
		listing.Country = request.Country
	}
	if request.Price > 0 {
		listing.Price = request.Price
	}
	if request.NumBed > 0 {
		listing.NumBed = request.NumBed
	}
	if request.NumTolet > 0 {
		listing.NumTolet = request.NumTolet
	}
	if request.People > 0 {
		listing.People = request.People
	}
	if request.Amenities != nil {
		listing.Amenities = request.Amenities
	}
	if request.Avatar != "" {
		listing.Avatar = request.Avatar
	}
	if request.Img != nil {
		listing.Img = request.Img
	}
	if request.IsAvailable != nil {
		listing.IsAvailable = *request.IsAvailable
	}
	if request.IsCancelable != nil {
		listing.IsCancelable = *request.IsCancelable
	}
	if request.Type != nil {
		listing.Type = *request.Type
	}

	if err := config.DB.Save(&listing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Lỗi khi cập nhật listing", "error": err.Error()})
		return
	}

	invalidateListingCache()

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Cập nhật listing thành công", "data": convertToListingResponse(listing)})
}

func DeleteListing(c *gin.Context) {
	currentUserID := c.GetUint("currentUserID")
	currentUserRole := c.GetInt("currentUserRole")

	id := c.Param("id")

	var listing models.Listing
	if err := config.DB.First(&listing, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Listing không tồn tại"})
		return
	}

	if listing.UserID != currentUserID && currentUserRole != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"code": 0, "mess": "Bạn không có quyền xóa listing này"})
		return
	}

	if err := config.DB.Delete(&listing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Lỗi khi xóa listing", "error": err.Error()})
		return
	}

	invalidateListingCache()

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Xóa listing thành công"})
}

// SetListingFeatured godoc
// @Summary Bật/tắt listing nổi bật (admin)
// @Tags listings
// @Accept json
// @Produce json
// @Success 200 {object} gin.H
// @Router /listingFeatured [put]
func SetListingFeatured(c *gin.Context) {
	var request struct {
		ID       uint `json:"id" binding:"required"`
		Featured bool `json:"featured"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Dữ liệu không hợp lệ", "error": err.Error()})
		return
	}

	var listing models.Listing
	if err := config.DB.First(&listing, request.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Listing không tồn tại"})
		return
	}

	listing.Featured = request.Featured
	if err := config.DB.Save(&listing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Lỗi khi cập nhật listing", "error": err.Error()})
		return
	}

	invalidateListingCache()

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Cập nhật listing nổi bật thành công", "data": convertToListingResponse(listing)})
}

// GetHostListings trả về các listing thuộc chủ nhà hiện tại.
func GetHostListings(c *gin.Context) {
	currentUserID := c.GetUint("currentUserID")

	var listings []models.Listing
	if err := config.DB.Where("user_id = ?", currentUserID).Order("updated_at DESC").Find(&listings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Không thể lấy danh sách listing của bạn"})
		return
	}

	listingResponses := make([]ListingResponse, 0)
	for _, listing := range listings {
		listingResponses = append(listingResponses, convertToListingResponse(listing))
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Lấy danh sách listing thành công", "data": listingResponses})
}
