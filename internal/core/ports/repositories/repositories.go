package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	InvoiceRepo     InvoiceRepositoryFacade
	QuoteRepo       QuoteRepositoryFacade
	TransactionRepo CashTransactionRepositoryFacade
	FiscalYearRepo  FiscalYearRepositoryFacade
	EnrollmentRepo  EnrollmentReader
	AuditLogRepo    AuditLogWriter
	SequenceRepo    SequenceRepository
	UnitOfWork      UnitOfWork
}
