package course

import "gorm.io/gorm"

// Video represents a lecture video within a module
type Video struct {
	gorm.Model
	ModuleID    uint   `json:"module_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url"`
	Duration    int64  `json:"duration" gorm:"default:0"` // seconds
}
