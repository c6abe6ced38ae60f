package services_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/kidsclub_backend/internal/apperrors"
	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/kidsclub_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// fakeLedger is an in-memory stand-in for the invoice, enrollment, sequence and audit tables,
// with a unit of work that rolls back every change when the callback fails.
type fakeLedger struct {
	mu           sync.Mutex
	invoices     map[string]domain.Invoice
	transactions []domain.CashTransaction
	enrollments  map[string]domain.Enrollment
	counters     map[string]int
	audit        []domain.AuditLog

	saveTxnErr        error
	listByEnrollErr   error
	updateInvoiceErr  error
	updateNumberCalls []string
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		invoices:    map[string]domain.Invoice{},
		enrollments: map[string]domain.Enrollment{},
		counters:    map[string]int{},
	}
}

var (
	_ portsrepo.InvoiceRepositoryFacade = (*fakeLedger)(nil)
	_ portsrepo.EnrollmentReader        = (*fakeLedger)(nil)
	_ portsrepo.SequenceRepository      = (*fakeLedger)(nil)
	_ portsrepo.UnitOfWork              = (*fakeLedger)(nil)
	_ portsrepo.FinanceTxStore          = (*fakeLedger)(nil)
	_ portsrepo.AuditLogWriter          = (*fakeLedger)(nil)
)

func counterKey(family domain.DocumentFamily, year int) string {
	return fmt.Sprintf("%s:%d", family, year)
}

// --- UnitOfWork ---

func (f *fakeLedger) RunInTx(ctx context.Context, fn func(ctx context.Context, store portsrepo.FinanceTxStore) error) error {
	f.mu.Lock()
	invoices := make(map[string]domain.Invoice, len(f.invoices))
	for k, v := range f.invoices {
		invoices[k] = v
	}
	enrollments := make(map[string]domain.Enrollment, len(f.enrollments))
	for k, v := range f.enrollments {
		enrollments[k] = v
	}
	counters := make(map[string]int, len(f.counters))
	for k, v := range f.counters {
		counters[k] = v
	}
	txns := append([]domain.CashTransaction(nil), f.transactions...)
	f.mu.Unlock()

	if err := fn(ctx, f); err != nil {
		f.mu.Lock()
		f.invoices, f.enrollments, f.counters, f.transactions = invoices, enrollments, counters, txns
		f.mu.Unlock()
		return err
	}
	return nil
}

// --- Invoices ---

func (f *fakeLedger) FindInvoiceByID(_ context.Context, invoiceID string) (*domain.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, ok := f.invoices[invoiceID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &inv, nil
}

func (f *fakeLedger) FindInvoiceByIDForUpdate(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return f.FindInvoiceByID(ctx, invoiceID)
}

func (f *fakeLedger) ListInvoicesByYear(_ context.Context, year int, includeGhosts bool, limit int, _ *string) ([]domain.Invoice, *string, error) {
	var out []domain.Invoice
	for _, inv := range f.sortedInvoices() {
		if inv.IsDeleted || inv.IssueDate.Year() != year || (inv.IsGhost && !includeGhosts) {
			continue
		}
		out = append(out, inv)
		if len(out) == limit {
			break
		}
	}
	return out, nil, nil
}

func (f *fakeLedger) ListRealInvoicesForYear(_ context.Context, year int) ([]domain.Invoice, error) {
	var out []domain.Invoice
	for _, inv := range f.sortedInvoices() {
		if !inv.IsDeleted && !inv.IsGhost && domain.HasYearPrefix(inv.Number, "FT", year) {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (f *fakeLedger) ListInvoicesByEnrollment(_ context.Context, enrollmentID string) ([]domain.Invoice, error) {
	if f.listByEnrollErr != nil {
		return nil, f.listByEnrollErr
	}
	var out []domain.Invoice
	for _, inv := range f.sortedInvoices() {
		if !inv.IsDeleted && inv.EnrollmentID != nil && *inv.EnrollmentID == enrollmentID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (f *fakeLedger) SaveInvoice(_ context.Context, invoice domain.Invoice) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.invoices {
		if !existing.IsDeleted && existing.Number == invoice.Number {
			return fmt.Errorf("%w: invoice number %s", apperrors.ErrDuplicate, invoice.Number)
		}
	}
	f.invoices[invoice.InvoiceID] = invoice
	return nil
}

func (f *fakeLedger) UpdateInvoice(_ context.Context, invoice domain.Invoice) error {
	if f.updateInvoiceErr != nil {
		return f.updateInvoiceErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.invoices[invoice.InvoiceID]; !ok {
		return apperrors.ErrNotFound
	}
	f.invoices[invoice.InvoiceID] = invoice
	return nil
}

func (f *fakeLedger) UpdateInvoiceNumber(_ context.Context, invoiceID string, number string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, ok := f.invoices[invoiceID]
	if !ok {
		return apperrors.ErrNotFound
	}
	for id, existing := range f.invoices {
		if id != invoiceID && !existing.IsDeleted && existing.Number == number {
			return fmt.Errorf("%w: invoice number %s", apperrors.ErrDuplicate, number)
		}
	}
	inv.Number = number
	f.invoices[invoiceID] = inv
	f.updateNumberCalls = append(f.updateNumberCalls, number)
	return nil
}

func (f *fakeLedger) MarkInvoiceDeleted(_ context.Context, invoiceID string, userID string, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, ok := f.invoices[invoiceID]
	if !ok {
		return apperrors.ErrNotFound
	}
	inv.IsDeleted = true
	inv.LastUpdatedAt = now
	inv.LastUpdatedBy = userID
	f.invoices[invoiceID] = inv
	return nil
}

// --- Cash transactions and enrollments ---

func (f *fakeLedger) SaveCashTransaction(_ context.Context, txn domain.CashTransaction) error {
	if f.saveTxnErr != nil {
		return f.saveTxnErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transactions = append(f.transactions, txn)
	return nil
}

func (f *fakeLedger) FindEnrollmentByID(_ context.Context, enrollmentID string) (*domain.Enrollment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.enrollments[enrollmentID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &e, nil
}

func (f *fakeLedger) UpdateEnrollmentStatus(_ context.Context, enrollmentID string, from, to domain.EnrollmentStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.enrollments[enrollmentID]
	if !ok {
		return false, apperrors.ErrNotFound
	}
	if e.Status != from {
		return false, nil
	}
	e.Status = to
	f.enrollments[enrollmentID] = e
	return true, nil
}

// --- Sequences ---

func (f *fakeLedger) ListRecentNumbers(_ context.Context, family domain.DocumentFamily, limit int) ([]string, error) {
	format, _ := domain.FormatOf(family)
	var numbers []string
	for _, inv := range f.sortedInvoices() {
		if strings.HasPrefix(inv.Number, format.Prefix+"-") {
			numbers = append(numbers, inv.Number)
		}
		if len(numbers) == limit {
			break
		}
	}
	return numbers, nil
}

func (f *fakeLedger) NextSequenceValue(_ context.Context, family domain.DocumentFamily, year int, floor int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := counterKey(family, year)
	next := f.counters[key]
	if floor > next {
		next = floor
	}
	next++
	f.counters[key] = next
	return next, nil
}

func (f *fakeLedger) SetSequenceValue(_ context.Context, family domain.DocumentFamily, year int, value int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counters[counterKey(family, year)] = value
	return nil
}

// --- Audit ---

func (f *fakeLedger) SaveAuditLog(_ context.Context, entry domain.AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.audit = append(f.audit, entry)
	return nil
}

// --- helpers ---

// sortedInvoices returns invoices by issue date descending, then number descending.
func (f *fakeLedger) sortedInvoices() []domain.Invoice {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Invoice, 0, len(f.invoices))
	for _, inv := range f.invoices {
		out = append(out, inv)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].IssueDate.Equal(out[j].IssueDate) {
			return out[i].IssueDate.After(out[j].IssueDate)
		}
		return out[i].Number > out[j].Number
	})
	return out
}

func (f *fakeLedger) openGhosts(enrollmentID string) []domain.Invoice {
	var out []domain.Invoice
	for _, inv := range f.sortedInvoices() {
		if inv.IsOpenGhost() && inv.EnrollmentID != nil && *inv.EnrollmentID == enrollmentID {
			out = append(out, inv)
		}
	}
	return out
}

func (f *fakeLedger) incomeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, t := range f.transactions {
		if t.Type == domain.Income {
			total = total.Add(t.Amount)
		}
	}
	return total
}

func (f *fakeLedger) auditActions() []domain.AuditAction {
	var out []domain.AuditAction
	for _, a := range f.audit {
		out = append(out, a.Action)
	}
	return out
}

func (f *fakeLedger) addInvoice(inv domain.Invoice) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invoices[inv.InvoiceID] = inv
}

// stubGuard rejects writes dated in the listed years.
type stubGuard struct {
	closed map[int]bool
}

func (g stubGuard) AssertMutable(_ context.Context, date time.Time) error {
	if g.closed[date.Year()] {
		return &apperrors.FiscalLockError{Year: date.Year()}
	}
	return nil
}

func strPtr(s string) *string { return &s }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
