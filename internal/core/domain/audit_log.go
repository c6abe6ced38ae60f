package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditAction names a recorded financial operation.
type AuditAction string

const (
	AuditPaymentRecorded AuditAction = "PAYMENT_RECORDED"
	AuditPaymentFailed   AuditAction = "PAYMENT_FAILED"
	AuditGhostPromoted   AuditAction = "GHOST_PROMOTED"
	AuditYearClosed      AuditAction = "FISCAL_YEAR_CLOSED"
	AuditYearReopened    AuditAction = "FISCAL_YEAR_REOPENED"
	AuditGapFilled       AuditAction = "SEQUENCE_GAP_FILLED"
	AuditGapRenumbered   AuditAction = "SEQUENCE_RENUMBERED"
	AuditGapVoided       AuditAction = "SEQUENCE_GAP_VOIDED"
	AuditInvoiceDeleted  AuditAction = "INVOICE_DELETED"
)

// AuditLog is an append-only record of who did what to which entity.
type AuditLog struct {
	LogID      string           `json:"logID"`
	Action     AuditAction      `json:"action"`
	EntityType string           `json:"entityType"`
	EntityID   string           `json:"entityID"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Details    string           `json:"details"`
	ActorID    string           `json:"actorID"`
	CreatedAt  time.Time        `json:"createdAt"`
}
