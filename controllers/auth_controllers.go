package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"stayhub/config"
	"stayhub/models"
	"stayhub/services"
)

type RegisterInput struct {
	Username    string `json:"username"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type UserResponse struct {
	UserID                uint            `json:"id"`
	UserName              string          `json:"name"`
	UserEmail             string          `json:"email"`
	UserPhone             string          `json:"phone"`
	UserRole              int             `json:"role"`
	UserAvatar            string          `json:"avatar"`
	HostApplicationStatus int             `json:"hostApplicationStatus"`
	HostApplicationDate   *time.Time      `json:"hostApplicationDate,omitempty"`
	HostInfo              models.HostInfo `json:"hostInfo"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
	Gender                int             `json:"gender"`
	DateOfBirth           string          `json:"dateOfBirth"`
}

func convertToUserResponse(user models.User) UserResponse {
	return UserResponse{
		UserID:                user.ID,
		UserName:              user.Name,
		UserEmail:             user.Email,
		UserPhone:             user.PhoneNumber,
		UserRole:              user.Role,
		UserAvatar:            user.Avatar,
		HostApplicationStatus: user.HostApplicationStatus,
		HostApplicationDate:   user.HostApplicationDate,
		HostInfo:              user.HostInfo,
		CreatedAt:             user.CreatedAt,
		UpdatedAt:             user.UpdatedAt,
		Gender:                user.Gender,
		DateOfBirth:           user.DateOfBirth,
	}
}

// RegisterUser godoc
// @Summary Đăng ký tài khoản
// @Tags auth
// @Accept json
// @Produce json
// @Param registerInput body RegisterInput true "Thông tin đăng ký"
// @Success 200 {object} gin.H
// @Router /auth/register [post]
func RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	userValues := models.User{
		Name:        input.Username,
		Email:       input.Email,
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
	}

	user, err := services.CreateUser(config.DB, userValues)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Đăng ký thành công!", "data": convertToUserResponse(user)})
}

// Login godoc
// @Summary Đăng nhập bằng email hoặc số điện thoại
// @Tags auth
// @Accept json
// @Produce json
// @Param loginInput body LoginInput true "Thông tin đăng nhập"
// @Success 200 {object} gin.H
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).First(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Email hoặc mật khẩu không hợp lệ"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Email hoặc mật khẩu không hợp lệ"})
		return
	}

	accessToken, err := services.GenerateToken(user.ID, 60*24*3)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Đăng nhập thành công", "data": gin.H{
		"user_info":   convertToUserResponse(user),
		"accessToken": accessToken,
	}})
}

func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Đăng xuất thành công"})
}
