package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditLog represents a row of the append-only audit_logs table.
type AuditLog struct {
	LogID      string           `db:"log_id"`
	Action     string           `db:"action"`
	EntityType string           `db:"entity_type"`
	EntityID   string           `db:"entity_id"`
	Amount     *decimal.Decimal `db:"amount"`
	Details    string           `db:"details"`
	ActorID    string           `db:"actor_id"`
	CreatedAt  time.Time        `db:"created_at"`
}
