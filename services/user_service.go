package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"stayhub/models"
)

func CreateUser(db *gorm.DB, input models.User) (models.User, error) {
	if input.Email == "" || input.Password == "" || input.PhoneNumber == "" {
		return models.User{}, errors.New("thiếu email, mật khẩu hoặc số điện thoại")
	}

	var existing models.User
	if err := db.Where("email = ? OR phone_number = ?", input.Email, input.PhoneNumber).First(&existing).Error; err == nil {
		return models.User{}, errors.New("email hoặc số điện thoại đã được sử dụng")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	input.Password = string(hashed)
	input.Role = models.RoleUser

	if err := db.Create(&input).Error; err != nil {
		return models.User{}, err
	}

	return input, nil
}
