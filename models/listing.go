package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
)

type Listing struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	UserID       uint            `json:"userId"` // Chủ nhà sở hữu listing
	User         User            `json:"user" gorm:"foreignKey:UserID"`
	Name         string          `json:"name" gorm:"not null" validate:"required"`
	Description  string          `json:"description"`
	Address      string          `json:"address"`
	City         string          `json:"city"`
	State        string          `json:"state"`
	Country      string          `gorm:"default:'Việt Nam'" json:"country"`
	Type         int             `json:"type"` // 0: Phòng - 1: Căn hộ - 2: Nhà nguyên căn
	Price        int             `json:"price" validate:"required,gt=0"`
	NumBed       int             `json:"numBed" validate:"gte=0"`
	NumTolet     int             `json:"numTolet" validate:"gte=0"`
	People       int             `json:"people" validate:"gte=1"` // Số khách tối đa
	Amenities    pq.StringArray  `json:"amenities" gorm:"type:text[]"`
	Avatar       string          `json:"avatar"`
	Img          json.RawMessage `json:"img" gorm:"type:json"`
	Rating       float64         `gorm:"default:0" json:"rating"` // Trung bình đánh giá, chỉ cập nhật qua recompute
	IsAvailable  bool            `gorm:"default:true" json:"isAvailable"`
	IsCancelable bool            `gorm:"default:true" json:"isCancelable"`
	Featured     bool            `gorm:"default:false" json:"featured"` // Admin quản lý
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Reviews      []Review        `json:"reviews,omitempty" gorm:"foreignKey:ListingID"`
}

func (l *Listing) Validate() error {
	validate := validator.New()

	if err := validate.Struct(l); err != nil {
		return err
	}

	if l.Img != nil {
		var imgs []string
		if err := json.Unmarshal(l.Img, &imgs); err != nil {
			return fmt.Errorf("định dạng danh sách ảnh không hợp lệ: %v", err)
		}
	}

	return nil
}
