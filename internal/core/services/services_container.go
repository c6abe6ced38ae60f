package services

import (
	portsrepo "github.com/SscSPs/kidsclub_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/kidsclub_backend/internal/core/ports/services"
	"github.com/SscSPs/kidsclub_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, statusCache portsrepo.YearStatusCache) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	audit := NewAuditService(repos.AuditLogRepo)
	container.Audit = audit

	container.Sequence = NewSequenceService(repos.SequenceRepo, WithScanLimit(cfg.SequenceScanLimit))

	// The fiscal year service guards every other writer, so it is built first
	fiscal := NewFiscalYearService(
		repos.FiscalYearRepo,
		repos.InvoiceRepo,
		repos.TransactionRepo,
		WithYearStatusCache(statusCache),
		WithFiscalAudit(audit),
		WithForfettarioRates(cfg.ForfettarioCoefficient, cfg.ForfettarioTaxRate),
	)
	container.FiscalYear = fiscal

	container.Integrity = NewIntegrityService(repos.InvoiceRepo, repos.UnitOfWork, fiscal, container.Sequence, WithIntegrityAudit(audit))
	container.Payment = NewPaymentService(repos.EnrollmentRepo, repos.InvoiceRepo, repos.UnitOfWork, container.Sequence, fiscal, audit)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, container.Sequence, fiscal, WithInvoiceAudit(audit))
	container.Quote = NewQuoteService(repos.QuoteRepo, container.Sequence, fiscal)
	container.Transaction = NewTransactionService(repos.TransactionRepo, fiscal)

	return container
}
