package models

import "time"

// Difficulty levels
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

var (
	Levels = []string{LevelBeginner, LevelIntermediate, LevelAdvanced}

	Categories = []string{
		"Programming",
		"Web Development",
		"Data Science",
		"Design",
		"Business",
		"Marketing",
		"Personal Development",
		"Technology",
	}
)

// Course represents a learning course. LessonCount and QuizCount are
// denormalized counters maintained on lesson/quiz creation.
type Course struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description" gorm:"type:text;not null"`
	ImageURL     string    `json:"imageUrl"`
	Category     string    `json:"category" gorm:"size:64;index;not null"`
	Level        string    `json:"level" gorm:"size:20;not null"`
	LessonCount  int       `json:"lessonCount" gorm:"not null;default:0"`
	QuizCount    int       `json:"quizCount" gorm:"not null;default:0"`
	Published    bool      `json:"published" gorm:"not null;default:false"`
	InstructorID *uint     `json:"instructorId" gorm:"index"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CourseListItem is a Course annotated for the caller.
type CourseListItem struct {
	Course
	IsEnrolled bool `json:"isEnrolled"`
}
