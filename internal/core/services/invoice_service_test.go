package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/kidsclub_backend/internal/apperrors"
	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	"github.com/SscSPs/kidsclub_backend/internal/core/services"
	"github.com/SscSPs/kidsclub_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockInvoiceRepository
	mockSequence *MockSequenceSvc
	mockFiscal   *MockFiscalGuard
	mockAudit    *MockAuditRecorder
	service      *services.InvoiceService
	now          time.Time
	ctx          context.Context
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInvoiceRepository)
	suite.mockSequence = new(MockSequenceSvc)
	suite.mockFiscal = new(MockFiscalGuard)
	suite.mockAudit = new(MockAuditRecorder)
	suite.now = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	suite.ctx = context.Background()
	suite.service = services.NewInvoiceService(suite.mockRepo, suite.mockSequence, suite.mockFiscal,
		services.WithInvoiceAudit(suite.mockAudit))
	suite.service.SetClock(func() time.Time { return suite.now })
}

func (suite *InvoiceServiceTestSuite) createRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		ClientID:  "client-1",
		ChildName: "Sofia",
		IssueDate: day(2025, 9, 30),
		DueDate:   day(2025, 10, 30),
		Items: []dto.LineItemRequest{
			{Description: "Corso di nuoto", Quantity: dec("2"), Price: dec("45")},
			{Description: "Materiale", Quantity: dec("1"), Price: dec("10"), Discount: dec("50")},
		},
	}
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	req := suite.createRequest()
	suite.mockFiscal.On("AssertMutable", suite.ctx, req.IssueDate).Return(nil).Once()
	suite.mockSequence.On("NextNumber", suite.ctx, domain.FamilyInvoice, 2025).Return("FT-2025-012", nil).Once()
	suite.mockRepo.On("SaveInvoice", suite.ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Number == "FT-2025-012" && inv.Status == domain.InvoiceDraft
	})).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(suite.ctx, req, "operator-1")

	suite.Require().NoError(err)
	suite.Equal("FT-2025-012", invoice.Number)
	suite.NotEmpty(invoice.InvoiceID)
	// 90 + 5 taxable, above the threshold, so the €2 stamp duty applies
	suite.True(invoice.HasStampDuty)
	suite.True(invoice.TotalAmount.Equal(dec("97")), "got %s", invoice.TotalAmount)
	suite.Equal("operator-1", invoice.CreatedBy)
	suite.Equal(suite.now, invoice.CreatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockSequence.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ExplicitStampDutyWins() {
	req := suite.createRequest()
	off := false
	req.HasStampDuty = &off
	suite.mockFiscal.On("AssertMutable", suite.ctx, req.IssueDate).Return(nil).Once()
	suite.mockSequence.On("NextNumber", suite.ctx, domain.FamilyInvoice, 2025).Return("FT-2025-013", nil).Once()
	suite.mockRepo.On("SaveInvoice", suite.ctx, mock.Anything).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(suite.ctx, req, "operator-1")

	suite.Require().NoError(err)
	suite.False(invoice.HasStampDuty)
	suite.True(invoice.TotalAmount.Equal(dec("95")))
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ClosedYearDrawsNoNumber() {
	req := suite.createRequest()
	suite.mockFiscal.On("AssertMutable", suite.ctx, req.IssueDate).Return(&apperrors.FiscalLockError{Year: 2025}).Once()

	invoice, err := suite.service.CreateInvoice(suite.ctx, req, "operator-1")

	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrFiscalYearLocked)
	suite.mockSequence.AssertNotCalled(suite.T(), "NextNumber", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DuplicateNumber() {
	req := suite.createRequest()
	suite.mockFiscal.On("AssertMutable", suite.ctx, req.IssueDate).Return(nil).Once()
	suite.mockSequence.On("NextNumber", suite.ctx, domain.FamilyInvoice, 2025).Return("FT-2025-014", nil).Once()
	suite.mockRepo.On("SaveInvoice", suite.ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateInvoice(suite.ctx, req, "operator-1")

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *InvoiceServiceTestSuite) existing(status domain.InvoiceStatus) *domain.Invoice {
	return &domain.Invoice{
		InvoiceID:   "inv-1",
		Number:      "FT-2025-003",
		ClientID:    "client-1",
		IssueDate:   day(2025, 3, 1),
		DueDate:     day(2025, 3, 31),
		Status:      status,
		Items:       []domain.LineItem{{Description: "Corso", Quantity: dec("1"), Price: dec("50")}},
		TotalAmount: dec("50"),
	}
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceByID_DeletedIsNotFound() {
	inv := suite.existing(domain.InvoiceDraft)
	inv.IsDeleted = true
	suite.mockRepo.On("FindInvoiceByID", suite.ctx, "inv-1").Return(inv, nil).Once()

	_, err := suite.service.GetInvoiceByID(suite.ctx, "inv-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_RecalculatesTotals() {
	inv := suite.existing(domain.InvoiceDraft)
	suite.mockRepo.On("FindInvoiceByID", suite.ctx, "inv-1").Return(inv, nil).Once()
	suite.mockFiscal.On("AssertMutable", suite.ctx, inv.IssueDate).Return(nil).Once()
	suite.mockRepo.On("UpdateInvoice", suite.ctx, mock.MatchedBy(func(i domain.Invoice) bool {
		return i.Number == "FT-2025-003"
	})).Return(nil).Once()

	req := dto.UpdateInvoiceRequest{
		Items: []dto.LineItemRequest{{Description: "Corso annuale", Quantity: dec("1"), Price: dec("100")}},
	}
	updated, err := suite.service.UpdateInvoice(suite.ctx, "inv-1", req, "operator-2")

	suite.Require().NoError(err)
	suite.True(updated.HasStampDuty)
	suite.True(updated.TotalAmount.Equal(dec("102")))
	suite.Equal("operator-2", updated.LastUpdatedBy)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_NotesOnlyKeepsStoredTotal() {
	inv := suite.existing(domain.InvoicePendingSDI)
	inv.HasStampDuty = true
	inv.TotalAmount = dec("52")
	suite.mockRepo.On("FindInvoiceByID", suite.ctx, "inv-1").Return(inv, nil).Once()
	suite.mockFiscal.On("AssertMutable", suite.ctx, inv.IssueDate).Return(nil).Once()
	suite.mockRepo.On("UpdateInvoice", suite.ctx, mock.MatchedBy(func(i domain.Invoice) bool {
		return i.TotalAmount.Equal(dec("52")) && i.Notes == "consegnata a mano"
	})).Return(nil).Once()

	notes := "consegnata a mano"
	updated, err := suite.service.UpdateInvoice(suite.ctx, "inv-1", dto.UpdateInvoiceRequest{Notes: &notes}, "operator-2")

	suite.Require().NoError(err)
	suite.True(updated.TotalAmount.Equal(dec("52")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_SentInvoiceOnlyAcceptsStatusAndNotes() {
	inv := suite.existing(domain.InvoiceSent)
	suite.mockRepo.On("FindInvoiceByID", suite.ctx, "inv-1").Return(inv, nil)
	suite.mockFiscal.On("AssertMutable", suite.ctx, inv.IssueDate).Return(nil)

	name := "Luca"
	_, err := suite.service.UpdateInvoice(suite.ctx, "inv-1", dto.UpdateInvoiceRequest{ChildName: &name}, "operator-1")
	suite.ErrorIs(err, apperrors.ErrConflict)

	paid := domain.InvoicePaid
	suite.mockRepo.On("UpdateInvoice", suite.ctx, mock.Anything).Return(nil).Once()
	updated, err := suite.service.UpdateInvoice(suite.ctx, "inv-1", dto.UpdateInvoiceRequest{Status: &paid}, "operator-1")
	suite.Require().NoError(err)
	suite.Equal(domain.InvoicePaid, updated.Status)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_IssueDateCannotChangeYear() {
	inv := suite.existing(domain.InvoiceDraft)
	suite.mockRepo.On("FindInvoiceByID", suite.ctx, "inv-1").Return(inv, nil).Once()
	suite.mockFiscal.On("AssertMutable", suite.ctx, inv.IssueDate).Return(nil).Once()

	next := day(2026, 1, 2)
	_, err := suite.service.UpdateInvoice(suite.ctx, "inv-1", dto.UpdateInvoiceRequest{IssueDate: &next}, "operator-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_SoftDeletesAndAudits() {
	inv := suite.existing(domain.InvoiceDraft)
	suite.mockRepo.On("FindInvoiceByID", suite.ctx, "inv-1").Return(inv, nil).Once()
	suite.mockFiscal.On("AssertMutable", suite.ctx, inv.IssueDate).Return(nil).Once()
	suite.mockRepo.On("MarkInvoiceDeleted", suite.ctx, "inv-1", "operator-1", suite.now).Return(nil).Once()
	suite.mockAudit.On("Record", suite.ctx, mock.MatchedBy(func(e domain.AuditLog) bool {
		return e.Action == domain.AuditInvoiceDeleted && e.EntityID == "inv-1"
	})).Once()

	err := suite.service.DeleteInvoice(suite.ctx, "inv-1", "operator-1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_SealedIsRefused() {
	inv := suite.existing(domain.InvoiceSealedSDI)
	suite.mockRepo.On("FindInvoiceByID", suite.ctx, "inv-1").Return(inv, nil).Once()
	suite.mockFiscal.On("AssertMutable", suite.ctx, inv.IssueDate).Return(nil).Once()

	err := suite.service.DeleteInvoice(suite.ctx, "inv-1", "operator-1")

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkInvoiceDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_DefaultPageSize() {
	token := "next-page"
	suite.mockRepo.On("ListInvoicesByYear", suite.ctx, 2025, true, 20, (*string)(nil)).
		Return([]domain.Invoice{*suite.existing(domain.InvoiceDraft)}, &token, nil).Once()

	resp, err := suite.service.ListInvoices(suite.ctx, dto.ListInvoicesParams{Year: 2025, IncludeGhosts: true})

	suite.Require().NoError(err)
	suite.Len(resp.Invoices, 1)
	suite.Equal("FT-2025-003", resp.Invoices[0].Number)
	suite.Equal(&token, resp.NextToken)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_RepositoryError() {
	suite.mockRepo.On("ListInvoicesByYear", suite.ctx, 2025, false, 5, (*string)(nil)).
		Return(nil, nil, errors.New("db down")).Once()

	_, err := suite.service.ListInvoices(suite.ctx, dto.ListInvoicesParams{Year: 2025, Limit: 5})

	suite.Require().Error(err)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
