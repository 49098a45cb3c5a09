package repository

import (
	"context"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"coursetrack/models"
)

const (
	DefaultRecentLimit = 5
	MaxRecentLimit     = 50
)

// ProgressUpdate is a viewing or completion event for one lesson. Nil fields
// keep their stored value, or the zero value on first write.
type ProgressUpdate struct {
	UserID    uint
	CourseID  uint
	LessonID  uint
	Completed *bool
	Progress  *int
}

// Completion is the derived completion state of a course for one user.
type Completion struct {
	CourseID         uint `json:"courseId"`
	CompletedLessons int  `json:"completedLessons"`
	TotalLessons     int  `json:"totalLessons"`
	Percentage       int  `json:"percentage"`
	IsComplete       bool `json:"isComplete"`
}

// ComputeCompletion derives the completion percentage. A course with no
// lessons is never complete.
func ComputeCompletion(completed, total int) (percentage int, complete bool) {
	if total <= 0 {
		return 0, false
	}
	percentage = int(math.Round(100 * float64(completed) / float64(total)))
	return percentage, completed > 0 && completed == total
}

// UpsertProgress is the single write path for progress records. A completed
// record always carries 100%.
func (r *Repository) UpsertProgress(ctx context.Context, upd ProgressUpdate) (models.UserProgress, error) {
	var record models.UserProgress
	err := r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		lesson, err := getLesson(tx, upd.LessonID)
		if err != nil {
			return err
		}
		if upd.CourseID == 0 {
			upd.CourseID = lesson.CourseID
		} else if lesson.CourseID != upd.CourseID {
			return ErrLessonCourseMismatch
		}

		now := r.now()
		err = tx.Where("user_id = ? AND lesson_id = ?", upd.UserID, upd.LessonID).First(&record).Error
		switch {
		case err == nil:
		case isNotFound(err):
			record = models.UserProgress{UserID: upd.UserID, CourseID: upd.CourseID, LessonID: upd.LessonID}
			applyProgress(&record, upd, now)
			// savepoint so a lost insert race can fall through to the update
			err = tx.Transaction(func(sp *gorm.DB) error {
				return sp.Create(&record).Error
			})
			if err == nil {
				return recomputeEnrollment(tx, upd.UserID, upd.CourseID, now)
			}
			if !isDuplicate(err) {
				return fmt.Errorf("repository.UpsertProgress: %w", err)
			}
			if err := tx.Where("user_id = ? AND lesson_id = ?", upd.UserID, upd.LessonID).First(&record).Error; err != nil {
				return fmt.Errorf("repository.UpsertProgress: %w", err)
			}
		default:
			return fmt.Errorf("repository.UpsertProgress: %w", err)
		}

		applyProgress(&record, upd, now)
		err = tx.Model(&record).Updates(map[string]interface{}{
			"completed":   record.Completed,
			"progress":    record.Progress,
			"last_viewed": record.LastViewed,
		}).Error
		if err != nil {
			return fmt.Errorf("repository.UpsertProgress: %w", err)
		}
		if err := tx.First(&record, record.ID).Error; err != nil {
			return fmt.Errorf("repository.UpsertProgress: %w", err)
		}
		return recomputeEnrollment(tx, upd.UserID, upd.CourseID, now)
	})
	if err != nil {
		return models.UserProgress{}, err
	}
	return record, nil
}

func applyProgress(record *models.UserProgress, upd ProgressUpdate, now time.Time) {
	if upd.Progress != nil {
		record.Progress = clampPercent(*upd.Progress)
	}
	if upd.Completed != nil {
		record.Completed = *upd.Completed
	} else if upd.Progress != nil && record.Progress == 100 {
		record.Completed = true
	}
	if record.Completed {
		record.Progress = 100
	}
	record.LastViewed = &now
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// recomputeEnrollment refreshes the enrollment's completion percentage and
// completion timestamp. Progress without an enrollment is left alone.
func recomputeEnrollment(tx *gorm.DB, userID, courseID uint, now time.Time) error {
	var enrollment models.Enrollment
	err := tx.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	if isNotFound(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("repository.recomputeEnrollment: %w", err)
	}

	c, err := courseCompletion(tx, userID, courseID)
	if err != nil {
		return err
	}
	completedAt := enrollment.CompletedAt
	if c.IsComplete && completedAt == nil {
		completedAt = &now
	} else if !c.IsComplete {
		completedAt = nil
	}
	return tx.Model(&enrollment).Updates(map[string]interface{}{
		"progress":     c.Percentage,
		"completed_at": completedAt,
	}).Error
}

// MarkComplete records full completion of a lesson.
func (r *Repository) MarkComplete(ctx context.Context, userID, lessonID uint) (models.UserProgress, error) {
	completed, progress := true, 100
	return r.UpsertProgress(ctx, ProgressUpdate{
		UserID:    userID,
		LessonID:  lessonID,
		Completed: &completed,
		Progress:  &progress,
	})
}

func (r *Repository) CourseProgress(ctx context.Context, userID, courseID uint) ([]models.UserProgress, error) {
	var records []models.UserProgress
	if err := r.conn(ctx).Where("user_id = ? AND course_id = ?", userID, courseID).Order("id asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("repository.CourseProgress: %w", err)
	}
	return records, nil
}

// UserProgress returns every progress record belonging to the user.
func (r *Repository) UserProgress(ctx context.Context, userID uint) ([]models.UserProgress, error) {
	var records []models.UserProgress
	if err := r.conn(ctx).Where("user_id = ?", userID).Order("id asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("repository.UserProgress: %w", err)
	}
	return records, nil
}

func (r *Repository) LessonProgress(ctx context.Context, userID, lessonID uint) (models.UserProgress, error) {
	var record models.UserProgress
	if err := r.conn(ctx).Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&record).Error; err != nil {
		if isNotFound(err) {
			return models.UserProgress{}, ErrProgressNotFound
		}
		return models.UserProgress{}, fmt.Errorf("repository.LessonProgress: %w", err)
	}
	return record, nil
}

// RecentlyViewed returns the user's most recently viewed lessons, newest
// first. limit is clamped to [1, MaxRecentLimit]; zero means the default.
func (r *Repository) RecentlyViewed(ctx context.Context, userID uint, limit int) ([]models.RecentLesson, error) {
	if limit == 0 {
		limit = DefaultRecentLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	var lessons []models.RecentLesson
	err := r.conn(ctx).Table("user_progress").
		Select(`lessons.id, lessons.course_id, lessons.title, lessons.video_url, lessons.lesson_order,
			courses.title AS course_title, user_progress.last_viewed, user_progress.progress`).
		Joins("JOIN lessons ON lessons.id = user_progress.lesson_id").
		Joins("JOIN courses ON courses.id = lessons.course_id").
		Where("user_progress.user_id = ? AND user_progress.last_viewed IS NOT NULL", userID).
		Order("user_progress.last_viewed desc, user_progress.id desc").
		Limit(limit).
		Scan(&lessons).Error
	if err != nil {
		return nil, fmt.Errorf("repository.RecentlyViewed: %w", err)
	}
	return lessons, nil
}

// CourseCompletion counts completed lessons against the lessons the course
// actually has.
func (r *Repository) CourseCompletion(ctx context.Context, userID, courseID uint) (Completion, error) {
	db := r.conn(ctx)
	if _, err := getCourse(db, courseID); err != nil {
		return Completion{}, err
	}
	return courseCompletion(db, userID, courseID)
}

func courseCompletion(db *gorm.DB, userID, courseID uint) (Completion, error) {
	var total, completed int64
	if err := db.Model(&models.Lesson{}).Where("course_id = ?", courseID).Count(&total).Error; err != nil {
		return Completion{}, fmt.Errorf("repository.courseCompletion: %w", err)
	}
	err := db.Model(&models.UserProgress{}).
		Where("user_id = ? AND course_id = ? AND completed = ?", userID, courseID, true).
		Where("lesson_id IN (?)", db.Model(&models.Lesson{}).Select("id").Where("course_id = ?", courseID)).
		Count(&completed).Error
	if err != nil {
		return Completion{}, fmt.Errorf("repository.courseCompletion: %w", err)
	}

	pct, done := ComputeCompletion(int(completed), int(total))
	return Completion{
		CourseID:         courseID,
		CompletedLessons: int(completed),
		TotalLessons:     int(total),
		Percentage:       pct,
		IsComplete:       done,
	}, nil
}
