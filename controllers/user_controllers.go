package controllers

import (
	"log"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"stayhub/config"
	"stayhub/models"
	"stayhub/services"
)

type UserController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewUserController(db *gorm.DB, redisCli *redis.Client) UserController {
	return UserController{
		DB:    db,
		Redis: redisCli,
	}
}

type UpdateUserInput struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Avatar      string `json:"avatar"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      int    `json:"gender"`
}

// GetUsers godoc
// @Summary Lấy danh sách người dùng (admin)
// @Tags users
// @Produce json
// @Success 200 {object} gin.H
// @Router /users [get]
func (u UserController) GetUsers(c *gin.Context) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	name := c.Query("name")
	roleStr := c.Query("role")

	page := 0
	limit := 10

	if pageStr != "" {
		page, _ = strconv.Atoi(pageStr)
	}
	if limitStr != "" {
		limit, _ = strconv.Atoi(limitStr)
	}

	cacheKey := "users:all"

	var allUsers []models.User

	if err := services.GetFromRedis(config.Ctx, u.Redis, cacheKey, &allUsers); err != nil || len(allUsers) == 0 {
		query := u.DB.Where("name LIKE ? OR email LIKE ? OR phone_number LIKE ?", "%"+name+"%", "%"+name+"%", "%"+name+"%")

		if roleStr != "" {
			userRole, err := strconv.Atoi(roleStr)
			if err == nil {
				query = query.Where("role = ?", userRole)
			}
		}

		if err := query.Find(&allUsers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Lỗi khi lấy danh sách người dùng"})
			return
		}

		if err := services.SetToRedis(config.Ctx, u.Redis, cacheKey, allUsers, time.Hour); err != nil {
			log.Printf("Lỗi khi lưu danh sách người dùng vào Redis: %v", err)
		}
	}

	var userResponses []UserResponse
	for _, user := range allUsers {
		userResponses = append(userResponses, convertToUserResponse(user))
	}

	sort.Slice(userResponses, func(i, j int) bool {
		return userResponses[i].UserID < userResponses[j].UserID
	})

	start := page * limit
	end := start + limit
	if start > len(userResponses) {
		start = len(userResponses)
	}
	if end > len(userResponses) {
		end = len(userResponses)
	}

	paginatedUsers := userResponses[start:end]

	c.JSON(http.StatusOK, gin.H{
		"code": 1,
		"mess": "Lấy danh sách người dùng thành công",
		"data": paginatedUsers,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": len(userResponses),
		},
	})
}

func (u UserController) GetUserByID(c *gin.Context) {
	var user models.User
	id := c.Param("id")

	if err := u.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Người dùng không tồn tại"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Lấy người dùng thành công", "data": convertToUserResponse(user)})
}

// UpdateUser godoc
// @Summary Cập nhật thông tin cá nhân
// @Tags users
// @Accept json
// @Produce json
// @Param updateUserInput body UpdateUserInput true "Thông tin cần cập nhật"
// @Success 200 {object} gin.H
// @Router /users [put]
func (u UserController) UpdateUser(c *gin.Context) {
	currentUserID := c.GetUint("currentUserID")

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	var user models.User
	if err := u.DB.First(&user, currentUserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Người dùng không tồn tại"})
		return
	}

	if input.Name != "" && input.Name != " " {
		user.Name = input.Name
	}
	if input.PhoneNumber != "" && input.PhoneNumber != " " {
		user.PhoneNumber = input.PhoneNumber
	}
	if input.Avatar != "" && input.Avatar != " " {
		user.Avatar = input.Avatar
	}
	if input.DateOfBirth != "" && input.DateOfBirth != " " {
		user.DateOfBirth = input.DateOfBirth
	}

	user.Gender = input.Gender

	if err := u.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, u.Redis, "users:all")

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Cập nhật người dùng thành công", "data": convertToUserResponse(user)})
}

// DeleteUser godoc
// @Summary Xóa tài khoản (chính chủ hoặc admin)
// @Description Chỉ xóa bản ghi người dùng; booking và đánh giá cũ giữ nguyên.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} gin.H
// @Router /users/{id} [delete]
func (u UserController) DeleteUser(c *gin.Context) {
	currentUserID := c.GetUint("currentUserID")
	currentUserRole := c.GetInt("currentUserRole")

	id := c.Param("id")
	targetID, err := strconv.Atoi(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "ID không hợp lệ"})
		return
	}

	if uint(targetID) != currentUserID && currentUserRole != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"code": 0, "mess": "Bạn không có quyền xóa tài khoản này"})
		return
	}

	var user models.User
	if err := u.DB.First(&user, targetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Người dùng không tồn tại"})
		return
	}

	if err := u.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Lỗi khi xóa người dùng", "error": err.Error()})
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, u.Redis, "users:all")

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Xóa người dùng thành công"})
}
