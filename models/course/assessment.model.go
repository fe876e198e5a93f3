package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Assessment represents a quiz attached to a module
type Assessment struct {
	gorm.Model
	ModuleID    uint   `json:"module_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	TotalMarks  int    `json:"total_marks" gorm:"default:0"`
	PassMarks   int    `json:"pass_marks" gorm:"default:0"`
}

// Question represents a multiple choice question of an assessment
type Question struct {
	gorm.Model
	AssessmentID  uint           `json:"assessment_id" gorm:"index;not null"`
	QuestionText  string         `json:"question_text" gorm:"type:text"`
	Options       datatypes.JSON `json:"options"` // JSON array of option strings
	CorrectAnswer string         `json:"correct_answer"`
	Marks         int            `json:"marks" gorm:"default:1"`
}
