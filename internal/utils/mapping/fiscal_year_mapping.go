package mapping

import (
	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	"github.com/SscSPs/kidsclub_backend/internal/models"
)

// ToModelFiscalYear converts a domain FiscalYear to a model FiscalYear
func ToModelFiscalYear(d domain.FiscalYear) models.FiscalYear {
	m := models.FiscalYear{
		Year:       d.Year,
		Status:     string(d.Status),
		ClosedAt:   d.ClosedAt,
		ClosedBy:   d.ClosedBy,
		ReopenedAt: d.ReopenedAt,
		ReopenedBy: d.ReopenedBy,
	}
	if d.Snapshot != nil {
		m.Snapshot = &models.FiscalSnapshot{
			TotalRevenue:  d.Snapshot.TotalRevenue,
			TotalExpenses: d.Snapshot.TotalExpenses,
			NetProfit:     d.Snapshot.NetProfit,
			Taxes:         d.Snapshot.Taxes,
		}
	}
	return m
}

// ToDomainFiscalYear converts a model FiscalYear to a domain FiscalYear
func ToDomainFiscalYear(m models.FiscalYear) domain.FiscalYear {
	d := domain.FiscalYear{
		Year:       m.Year,
		Status:     domain.FiscalYearStatus(m.Status),
		ClosedAt:   m.ClosedAt,
		ClosedBy:   m.ClosedBy,
		ReopenedAt: m.ReopenedAt,
		ReopenedBy: m.ReopenedBy,
	}
	if m.Snapshot != nil {
		d.Snapshot = &domain.FiscalSnapshot{
			TotalRevenue:  m.Snapshot.TotalRevenue,
			TotalExpenses: m.Snapshot.TotalExpenses,
			NetProfit:     m.Snapshot.NetProfit,
			Taxes:         m.Snapshot.Taxes,
		}
	}
	return d
}
