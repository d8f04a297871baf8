package models

import "time"

type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId"`
	ListingID uint      `json:"listingId"`
	Username  string    `json:"username"` // Tên người đánh giá tại thời điểm tạo
	Comment   string    `json:"comment"`
	Star      int       `json:"star"` // Số sao (1-5)
	CreateAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdateAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	User      User      `json:"user" gorm:"foreignKey:UserID"`
}
