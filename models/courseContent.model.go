package models

import "time"

// Lesson is a video lesson owned by a course. Order is unique within the
// course and defines next/previous navigation.
type Lesson struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CourseID    uint      `json:"courseId" gorm:"not null;uniqueIndex:idx_lessons_course_order"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	VideoURL    string    `json:"videoUrl" gorm:"not null"`
	Order       int       `json:"order" gorm:"column:lesson_order;not null;uniqueIndex:idx_lessons_course_order"`
	Duration    *int      `json:"duration"` // seconds
	Content     string    `json:"content" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UserProgress is the per-user, per-lesson viewing and completion state.
type UserProgress struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	UserID     uint       `json:"userId" gorm:"not null;uniqueIndex:idx_progress_user_lesson;index:idx_progress_user_course"`
	CourseID   uint       `json:"courseId" gorm:"not null;index:idx_progress_user_course"`
	LessonID   uint       `json:"lessonId" gorm:"not null;uniqueIndex:idx_progress_user_lesson"`
	Completed  bool       `json:"completed" gorm:"not null;default:false"`
	Progress   int        `json:"progress" gorm:"not null;default:0"` // 0-100
	LastViewed *time.Time `json:"lastViewed"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// RecentLesson is a lesson joined with the caller's latest viewing state.
type RecentLesson struct {
	ID          uint       `json:"id"`
	CourseID    uint       `json:"courseId"`
	Title       string     `json:"title"`
	VideoURL    string     `json:"videoUrl"`
	Order       int        `json:"order" gorm:"column:lesson_order"`
	CourseTitle string     `json:"courseTitle"`
	LastViewed  *time.Time `json:"lastViewed"`
	Progress    int        `json:"progress"`
}
