package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"coursetrack/models"
)

// ListCourses returns published courses, optionally filtered by category.
func (r *Repository) ListCourses(ctx context.Context, category string) ([]models.Course, error) {
	q := r.conn(ctx).Where("published = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var courses []models.Course
	if err := q.Order("id asc").Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("repository.ListCourses: %w", err)
	}
	return courses, nil
}

func (r *Repository) GetCourse(ctx context.Context, id uint) (models.Course, error) {
	return getCourse(r.conn(ctx), id)
}

func getCourse(db *gorm.DB, id uint) (models.Course, error) {
	var course models.Course
	if err := db.First(&course, id).Error; err != nil {
		if isNotFound(err) {
			return models.Course{}, ErrCourseNotFound
		}
		return models.Course{}, fmt.Errorf("repository.getCourse: %w", err)
	}
	return course, nil
}

// CreateCourse stores a new course. Counters always start at zero.
func (r *Repository) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	course.ID = 0
	course.LessonCount = 0
	course.QuizCount = 0
	if err := r.conn(ctx).Create(&course).Error; err != nil {
		return models.Course{}, fmt.Errorf("repository.CreateCourse: %w", err)
	}
	return course, nil
}

// DeleteCourse removes a course together with everything that hangs off it.
func (r *Repository) DeleteCourse(ctx context.Context, id uint) error {
	return r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := getCourse(tx, id); err != nil {
			return err
		}

		quizIDs := tx.Model(&models.Quiz{}).Select("id").Where("course_id = ?", id)
		attemptIDs := tx.Model(&models.QuizAttempt{}).Select("id").Where("quiz_id IN (?)", quizIDs)

		steps := []struct {
			model interface{}
			query string
			arg   interface{}
		}{
			{&models.QuizAnswer{}, "attempt_id IN (?)", attemptIDs},
			{&models.QuizAttempt{}, "quiz_id IN (?)", quizIDs},
			{&models.QuizQuestion{}, "quiz_id IN (?)", quizIDs},
			{&models.Quiz{}, "course_id = ?", id},
			{&models.UserProgress{}, "course_id = ?", id},
			{&models.Certificate{}, "course_id = ?", id},
			{&models.Enrollment{}, "course_id = ?", id},
			{&models.Lesson{}, "course_id = ?", id},
		}
		for _, step := range steps {
			if err := tx.Where(step.query, step.arg).Delete(step.model).Error; err != nil {
				return fmt.Errorf("repository.DeleteCourse: %w", err)
			}
		}
		if err := tx.Delete(&models.Course{}, id).Error; err != nil {
			return fmt.Errorf("repository.DeleteCourse: %w", err)
		}
		return nil
	})
}

// ListLessons returns a course's lessons in navigation order.
func (r *Repository) ListLessons(ctx context.Context, courseID uint) ([]models.Lesson, error) {
	var lessons []models.Lesson
	if err := r.conn(ctx).Where("course_id = ?", courseID).Order("lesson_order asc").Find(&lessons).Error; err != nil {
		return nil, fmt.Errorf("repository.ListLessons: %w", err)
	}
	return lessons, nil
}

func (r *Repository) GetLesson(ctx context.Context, id uint) (models.Lesson, error) {
	return getLesson(r.conn(ctx), id)
}

func getLesson(db *gorm.DB, id uint) (models.Lesson, error) {
	var lesson models.Lesson
	if err := db.First(&lesson, id).Error; err != nil {
		if isNotFound(err) {
			return models.Lesson{}, ErrLessonNotFound
		}
		return models.Lesson{}, fmt.Errorf("repository.getLesson: %w", err)
	}
	return lesson, nil
}

// CreateLesson adds a lesson to its course and bumps the course lesson count.
func (r *Repository) CreateLesson(ctx context.Context, lesson models.Lesson) (models.Lesson, error) {
	lesson.ID = 0
	err := r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := getCourse(tx, lesson.CourseID); err != nil {
			return err
		}
		if err := tx.Create(&lesson).Error; err != nil {
			if isDuplicate(err) {
				return ErrDuplicateLessonOrder
			}
			return fmt.Errorf("repository.CreateLesson: %w", err)
		}
		return tx.Model(&models.Course{}).Where("id = ?", lesson.CourseID).
			Update("lesson_count", gorm.Expr("lesson_count + ?", 1)).Error
	})
	if err != nil {
		return models.Lesson{}, err
	}
	return lesson, nil
}

// EnrolledCourseIDs returns the set of course ids the user is enrolled in.
func (r *Repository) EnrolledCourseIDs(ctx context.Context, userID uint) (map[uint]bool, error) {
	var ids []uint
	if err := r.conn(ctx).Model(&models.Enrollment{}).Where("user_id = ?", userID).Pluck("course_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("repository.EnrolledCourseIDs: %w", err)
	}
	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// ReconcileCourseCounters recomputes the denormalized lesson and quiz counts
// from the actual rows and returns how many courses were corrected.
func (r *Repository) ReconcileCourseCounters(ctx context.Context) (int, error) {
	db := r.conn(ctx)

	type counts struct {
		ID          uint
		LessonCount int
		QuizCount   int
		Lessons     int
		Quizzes     int
	}
	var rows []counts
	err := db.Model(&models.Course{}).
		Select(`courses.id, courses.lesson_count, courses.quiz_count,
			(SELECT COUNT(*) FROM lessons WHERE lessons.course_id = courses.id) AS lessons,
			(SELECT COUNT(*) FROM quizzes WHERE quizzes.course_id = courses.id) AS quizzes`).
		Scan(&rows).Error
	if err != nil {
		return 0, fmt.Errorf("repository.ReconcileCourseCounters: %w", err)
	}

	fixed := 0
	for _, row := range rows {
		if row.LessonCount == row.Lessons && row.QuizCount == row.Quizzes {
			continue
		}
		err := db.Model(&models.Course{}).Where("id = ?", row.ID).
			Updates(map[string]interface{}{"lesson_count": row.Lessons, "quiz_count": row.Quizzes}).Error
		if err != nil {
			return fixed, fmt.Errorf("repository.ReconcileCourseCounters: %w", err)
		}
		fixed++
	}
	return fixed, nil
}
