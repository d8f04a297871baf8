package models

import (
	"time"
)

const (
	RoleUser  = 0
	RoleHost  = 1
	RoleAdmin = 2
)

// Trạng thái đơn đăng ký làm chủ nhà
const (
	HostApplicationNone     = 0
	HostApplicationPending  = 1
	HostApplicationApproved = 2
	HostApplicationRejected = 3
)

type HostInfo struct {
	About      string `json:"about"`
	Location   string `json:"location"`
	Experience string `json:"experience"`
}

type User struct {
	ID                    uint       `gorm:"primaryKey" json:"id"`
	CreatedAt             time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	Name                  string     `gorm:"default:New User" json:"name"`
	Email                 string     `gorm:"unique" json:"email"`
	Password              string     `json:"password"`
	PhoneNumber           string     `gorm:"unique;type:varchar(11);not null" json:"phoneNumber"`
	Avatar                string     `gorm:"default:'https://res.cloudinary.com/dqipg0or3/image/upload/v1728746922/uploads/oigc5k6e91shemck15uz.jpg'" json:"avatar"`
	Role                  int        `gorm:"default:0" json:"role"`                  // 0: User - 1: Host - 2: Admin
	HostApplicationStatus int        `gorm:"default:0" json:"hostApplicationStatus"` // 0: chưa đăng ký - 1: chờ duyệt - 2: đã duyệt - 3: từ chối
	HostApplicationDate   *time.Time `json:"hostApplicationDate,omitempty"`
	HostInfo              HostInfo   `gorm:"embedded;embeddedPrefix:host_" json:"hostInfo"`
	Gender                int        `json:"gender"` // 0: Male, 1: Female, 2: Other
	DateOfBirth           string     `gorm:"default:'01/01/2000'" json:"dateOfBirth"`
}
