package repository

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"gorm.io/gorm"

	"coursetrack/models"
)

// IssueCertificate creates the user's certificate for a course and flags the
// enrollment. When RequireCompletion is set every lesson must be completed
// first.
func (r *Repository) IssueCertificate(ctx context.Context, userID, courseID uint) (models.Certificate, error) {
	var cert models.Certificate
	err := r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var enrollment models.Enrollment
		err := tx.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
		if isNotFound(err) {
			return ErrNotEnrolled
		}
		if err != nil {
			return fmt.Errorf("repository.IssueCertificate: %w", err)
		}

		issued, err := exists(tx.Model(&models.Certificate{}).Where("user_id = ? AND course_id = ?", userID, courseID))
		if err != nil {
			return fmt.Errorf("repository.IssueCertificate: %w", err)
		}
		if issued {
			return ErrAlreadyIssued
		}

		if r.opts.RequireCompletion {
			c, err := courseCompletion(tx, userID, courseID)
			if err != nil {
				return err
			}
			if !c.IsComplete {
				return ErrCourseIncomplete
			}
		}

		code, err := newCertificateCode()
		if err != nil {
			return fmt.Errorf("repository.IssueCertificate: %w", err)
		}
		cert = models.Certificate{
			UserID:          userID,
			CourseID:        courseID,
			CertificateCode: code,
			IssueDate:       r.now(),
		}
		if err := tx.Create(&cert).Error; err != nil {
			if isDuplicate(err) {
				return ErrAlreadyIssued
			}
			return fmt.Errorf("repository.IssueCertificate: %w", err)
		}
		return tx.Model(&enrollment).Update("certificate_issued", true).Error
	})
	if err != nil {
		return models.Certificate{}, err
	}
	return cert, nil
}

// newCertificateCode returns 128 random bits, hex encoded.
func newCertificateCode() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// ListCertificates returns the user's certificates, newest first.
func (r *Repository) ListCertificates(ctx context.Context, userID uint) ([]models.CertificateWithCourse, error) {
	var certs []models.CertificateWithCourse
	err := r.conn(ctx).Model(&models.Certificate{}).
		Select("certificates.*, courses.title AS course_title").
		Joins("JOIN courses ON courses.id = certificates.course_id").
		Where("certificates.user_id = ?", userID).
		Order("certificates.issue_date desc, certificates.id desc").
		Scan(&certs).Error
	if err != nil {
		return nil, fmt.Errorf("repository.ListCertificates: %w", err)
	}
	return certs, nil
}

// VerifyCertificate looks a certificate up by its public code. The holder is
// returned as a public view only.
func (r *Repository) VerifyCertificate(ctx context.Context, code string) (models.CertificateView, error) {
	db := r.conn(ctx)

	var cert models.Certificate
	if err := db.Where("certificate_code = ?", code).First(&cert).Error; err != nil {
		if isNotFound(err) {
			return models.CertificateView{}, ErrCertificateNotFound
		}
		return models.CertificateView{}, fmt.Errorf("repository.VerifyCertificate: %w", err)
	}

	var usr models.User
	if err := db.First(&usr, cert.UserID).Error; err != nil {
		if isNotFound(err) {
			return models.CertificateView{}, ErrCertificateNotFound
		}
		return models.CertificateView{}, fmt.Errorf("repository.VerifyCertificate: %w", err)
	}
	course, err := getCourse(db, cert.CourseID)
	if err == ErrCourseNotFound {
		return models.CertificateView{}, ErrCertificateNotFound
	}
	if err != nil {
		return models.CertificateView{}, err
	}

	return models.CertificateView{Certificate: cert, User: usr.Public(), Course: course}, nil
}
