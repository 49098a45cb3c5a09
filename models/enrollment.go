package models

import "time"

// Enrollment links one user to one course.
type Enrollment struct {
	ID                uint       `json:"id" gorm:"primaryKey"`
	UserID            uint       `json:"userId" gorm:"not null;uniqueIndex:idx_enrollments_user_course"`
	CourseID          uint       `json:"courseId" gorm:"not null;uniqueIndex:idx_enrollments_user_course"`
	EnrolledAt        time.Time  `json:"enrolledAt" gorm:"not null"`
	Progress          int        `json:"progress" gorm:"not null;default:0"` // completion percentage 0-100
	CompletedAt       *time.Time `json:"completedAt"`
	CertificateIssued bool       `json:"certificateIssued" gorm:"not null;default:false"`
	Course            *Course    `json:"course,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
