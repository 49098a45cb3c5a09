package repository

import (
	"context"
	"fmt"

	"coursetrack/models"
)

// Enroll registers the user in a published course. A second enrollment for
// the same pair fails with ErrAlreadyEnrolled, whether caught by the lookup
// or by the unique index.
func (r *Repository) Enroll(ctx context.Context, userID, courseID uint) (models.Enrollment, error) {
	db := r.conn(ctx)

	course, err := getCourse(db, courseID)
	if err != nil {
		return models.Enrollment{}, err
	}
	if !course.Published {
		return models.Enrollment{}, ErrCourseNotFound
	}

	enrolled, err := exists(db.Model(&models.Enrollment{}).Where("user_id = ? AND course_id = ?", userID, courseID))
	if err != nil {
		return models.Enrollment{}, fmt.Errorf("repository.Enroll: %w", err)
	}
	if enrolled {
		return models.Enrollment{}, ErrAlreadyEnrolled
	}

	enrollment := models.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: r.now(),
	}
	if err := db.Create(&enrollment).Error; err != nil {
		if isDuplicate(err) {
			return models.Enrollment{}, ErrAlreadyEnrolled
		}
		return models.Enrollment{}, fmt.Errorf("repository.Enroll: %w", err)
	}
	return enrollment, nil
}

// ListEnrollments returns the user's enrollments with their courses, newest
// first.
func (r *Repository) ListEnrollments(ctx context.Context, userID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := r.conn(ctx).Preload("Course").
		Where("user_id = ?", userID).
		Order("enrolled_at desc, id desc").
		Find(&enrollments).Error
	if err != nil {
		return nil, fmt.Errorf("repository.ListEnrollments: %w", err)
	}
	return enrollments, nil
}

func (r *Repository) GetEnrollment(ctx context.Context, userID, courseID uint) (models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.conn(ctx).Preload("Course").
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error
	if err != nil {
		if isNotFound(err) {
			return models.Enrollment{}, ErrEnrollmentNotFound
		}
		return models.Enrollment{}, fmt.Errorf("repository.GetEnrollment: %w", err)
	}
	return enrollment, nil
}
