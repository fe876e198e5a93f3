package course

import "gorm.io/gorm"

// Course represents a purchasable learning course
type Course struct {
	gorm.Model
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Author       string  `json:"author"`
	ThumbnailURL string  `json:"thumbnail_url"`
	Price        float64 `json:"price" gorm:"default:0"`
}
