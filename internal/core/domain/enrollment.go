package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EnrollmentStatus is the lifecycle state of a child's enrollment.
type EnrollmentStatus string

const (
	EnrollmentPending   EnrollmentStatus = "PENDING"
	EnrollmentActive    EnrollmentStatus = "ACTIVE"
	EnrollmentCompleted EnrollmentStatus = "COMPLETED"
	EnrollmentCancelled EnrollmentStatus = "CANCELLED"
)

// Enrollment binds a child to a course package at a location.
type Enrollment struct {
	EnrollmentID string           `json:"enrollmentID"`
	ClientID     string           `json:"clientID"`
	ChildName    string           `json:"childName"`
	LocationID   *string          `json:"locationID,omitempty"`
	Status       EnrollmentStatus `json:"status"`
	TotalPrice   decimal.Decimal  `json:"totalPrice"`
	StartDate    time.Time        `json:"startDate"`
	EndDate      time.Time        `json:"endDate"`
	AuditFields
}
