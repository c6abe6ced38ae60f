package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Enrollment represents a row of the enrollments table.
type Enrollment struct {
	EnrollmentID string          `db:"enrollment_id"`
	ClientID     string          `db:"client_id"`
	ChildName    string          `db:"child_name"`
	LocationID   *string         `db:"location_id"`
	Status       string          `db:"status"`
	TotalPrice   decimal.Decimal `db:"total_price"`
	StartDate    time.Time       `db:"start_date"`
	EndDate      time.Time       `db:"end_date"`
	AuditFields
}
