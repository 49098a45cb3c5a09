package models

import "time"

// Certificate is issued once per (user, course). CertificateCode is the
// public verification key.
type Certificate struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"userId" gorm:"not null;uniqueIndex:idx_certificates_user_course"`
	CourseID        uint      `json:"courseId" gorm:"not null;uniqueIndex:idx_certificates_user_course"`
	CertificateCode string    `json:"certificateCode" gorm:"size:64;uniqueIndex;not null"`
	IssueDate       time.Time `json:"issueDate" gorm:"not null"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CertificateView is the public verification result.
type CertificateView struct {
	Certificate Certificate `json:"certificate"`
	User        PublicUser  `json:"user"`
	Course      Course      `json:"course"`
}

// CertificateWithCourse is a caller's certificate with its course title.
type CertificateWithCourse struct {
	Certificate
	CourseTitle string `json:"courseTitle"`
}
