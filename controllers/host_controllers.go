package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stayhub/config"
	"stayhub/models"
	"stayhub/services"
)

type HostApplicationInput struct {
	About      string `json:"about"`
	Location   string `json:"location"`
	Experience string `json:"experience"`
}

type ProcessApplicationInput struct {
	UserID uint `json:"userId" binding:"required"`
	Status int  `json:"status"` // 2: duyệt - 3: từ chối
}

type HostApplicationResponse struct {
	UserID            uint            `json:"userId"`
	Username          string          `json:"username"`
	Email             string          `json:"email"`
	Role              int             `json:"role"`
	HostInfo          models.HostInfo `json:"hostInfo"`
	ApplicationStatus int             `json:"applicationStatus"`
	ApplicationDate   *time.Time      `json:"applicationDate,omitempty"`
}

// ApplyHost godoc
// @Summary Đăng ký làm chủ nhà
// @Description Đăng ký được duyệt tự động, người dùng thành chủ nhà ngay.
// @Tags host
// @Accept json
// @Produce json
// @Param hostApplicationInput body HostApplicationInput true "Thông tin chủ nhà"
// @Success 200 {object} gin.H
// @Router /host/apply [post]
func ApplyHost(c *gin.Context) {
	currentUserID := c.GetUint("currentUserID")

	var input HostApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Dữ liệu không hợp lệ", "error": err.Error()})
		return
	}

	user, err := services.ApplyHost(config.DB, currentUserID, models.HostInfo{
		About:      input.About,
		Location:   input.Location,
		Experience: input.Experience,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": err.Error()})
		case errors.Is(err, services.ErrAlreadyHost):
			c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Lỗi khi đăng ký làm chủ nhà", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Bạn đã trở thành chủ nhà! Có thể bắt đầu đăng tin.", "data": gin.H{
		"applicationStatus": user.HostApplicationStatus,
		"applicationDate":   user.HostApplicationDate,
		"role":              user.Role,
	}})
}

func GetHostStatus(c *gin.Context) {
	currentUserID := c.GetUint("currentUserID")

	var user models.User
	if err := config.DB.First(&user, currentUserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Người dùng không tồn tại"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "data": gin.H{
		"applicationStatus": user.HostApplicationStatus,
		"applicationDate":   user.HostApplicationDate,
		"role":              user.Role,
		"hostInfo":          user.HostInfo,
	}})
}

// GetHostApplications godoc
// @Summary Danh sách đơn đăng ký làm chủ nhà (admin)
// @Tags host
// @Produce json
// @Success 200 {object} gin.H
// @Router /host/applications [get]
func GetHostApplications(c *gin.Context) {
	users, err := services.ListHostApplications(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Lỗi khi lấy danh sách đơn đăng ký", "error": err.Error()})
		return
	}

	applications := make([]HostApplicationResponse, 0)
	for _, user := range users {
		applications = append(applications, HostApplicationResponse{
			UserID:            user.ID,
			Username:          user.Name,
			Email:             user.Email,
			Role:              user.Role,
			HostInfo:          user.HostInfo,
			ApplicationStatus: user.HostApplicationStatus,
			ApplicationDate:   user.HostApplicationDate,
		})
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Lấy danh sách đơn đăng ký thành công", "data": gin.H{"applications": applications}})
}

// ProcessHostApplication godoc
// @Summary Duyệt hoặc từ chối đơn đăng ký làm chủ nhà (admin)
// @Tags host
// @Accept json
// @Produce json
// @Param processApplicationInput body ProcessApplicationInput true "Quyết định duyệt"
// @Success 200 {object} gin.H
// @Router /host/applications [put]
func ProcessHostApplication(c *gin.Context) {
	var input ProcessApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Cần userId và status", "error": err.Error()})
		return
	}

	user, err := services.ProcessHostApplication(config.DB, input.UserID, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDecision), errors.Is(err, services.ErrNoPendingApplication):
			c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Lỗi khi xử lý đơn đăng ký", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Xử lý đơn đăng ký thành công", "data": gin.H{
		"userId":                user.ID,
		"username":              user.Name,
		"role":                  user.Role,
		"hostApplicationStatus": user.HostApplicationStatus,
	}})
}
