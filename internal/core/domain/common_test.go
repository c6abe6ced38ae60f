package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuditFields_Touch(t *testing.T) {
	created := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	fields := NewAuditFields("alice", created)
	assert.Equal(t, created, fields.LastUpdatedAt)
	assert.Equal(t, "alice", fields.LastUpdatedBy)

	later := created.Add(time.Hour)
	fields.Touch("bob", later)
	assert.Equal(t, created, fields.CreatedAt)
	assert.Equal(t, "alice", fields.CreatedBy)
	assert.Equal(t, later, fields.LastUpdatedAt)
	assert.Equal(t, "bob", fields.LastUpdatedBy)
}
