package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"stayhub/models"
)

var (
	ErrUserNotFound         = errors.New("người dùng không tồn tại")
	ErrAlreadyHost          = errors.New("bạn đã là chủ nhà")
	ErrInvalidDecision      = errors.New("trạng thái duyệt không hợp lệ")
	ErrNoPendingApplication = errors.New("không có đơn đăng ký nào đang chờ duyệt")
)

// ApplyHost duyệt tự động: người dùng đăng ký là thành chủ nhà ngay,
// không qua bước chờ admin.
func ApplyHost(db *gorm.DB, userID uint, info models.HostInfo) (models.User, error) {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	if user.Role == models.RoleHost {
		return models.User{}, ErrAlreadyHost
	}

	now := time.Now()
	user.HostInfo = info
	user.HostApplicationDate = &now
	user.HostApplicationStatus = models.HostApplicationApproved
	user.Role = models.RoleHost

	if err := db.Save(&user).Error; err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ProcessHostApplication chỉ xử lý đơn đang ở trạng thái chờ duyệt.
func ProcessHostApplication(db *gorm.DB, targetUserID uint, decision int) (models.User, error) {
	if decision != models.HostApplicationApproved && decision != models.HostApplicationRejected {
		return models.User{}, ErrInvalidDecision
	}

	var user models.User
	if err := db.First(&user, targetUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	if user.HostApplicationStatus != models.HostApplicationPending {
		return models.User{}, ErrNoPendingApplication
	}

	user.HostApplicationStatus = decision
	if decision == models.HostApplicationApproved {
		user.Role = models.RoleHost
	}

	if err := db.Save(&user).Error; err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ListHostApplications trả về mọi user đã từng nộp đơn.
func ListHostApplications(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Where("host_application_status <> ?", models.HostApplicationNone).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
