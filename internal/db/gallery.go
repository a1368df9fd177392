package db

import "time"

// DefaultGallerySource 是未指定来源时图片的默认来源。
const DefaultGallerySource = "NASA"

// GalleryImage 定义图库中的一张图片
type GalleryImage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:200;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	ImageURL     string    `gorm:"size:500;not null" json:"image_url"`
	ThumbnailURL string    `gorm:"size:500" json:"thumbnail_url"`
	Source       string    `gorm:"size:100;default:NASA" json:"source"`
	Category     string    `gorm:"size:50;index" json:"category"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
