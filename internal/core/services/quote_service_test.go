package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/kidsclub_backend/internal/apperrors"
	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	"github.com/SscSPs/kidsclub_backend/internal/core/services"
	"github.com/SscSPs/kidsclub_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type QuoteServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockQuoteRepository
	mockSequence *MockSequenceSvc
	mockFiscal   *MockFiscalGuard
	service      *services.QuoteService
	ctx          context.Context
}

func (suite *QuoteServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockQuoteRepository)
	suite.mockSequence = new(MockSequenceSvc)
	suite.mockFiscal = new(MockFiscalGuard)
	suite.ctx = context.Background()
	suite.service = services.NewQuoteService(suite.mockRepo, suite.mockSequence, suite.mockFiscal)
	suite.service.SetClock(func() time.Time { return time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC) })
}

func (suite *QuoteServiceTestSuite) createRequest(installments ...dto.InstallmentRequest) dto.CreateQuoteRequest {
	return dto.CreateQuoteRequest{
		ClientID:   "client-1",
		ChildName:  "Tommaso",
		IssueDate:  day(2025, 8, 20),
		ExpiryDate: day(2025, 9, 20),
		Items: []dto.LineItemRequest{
			{Description: "Pacchetto annuale", Quantity: dec("1"), Price: dec("300")},
		},
		Installments: installments,
	}
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_BalancedInstallments() {
	due := day(2025, 9, 1)
	req := suite.createRequest(
		dto.InstallmentRequest{Description: "Prima rata", DueDate: &due, Amount: dec("151"), TriggerType: domain.TriggerFixedDate, PaymentTermDays: 10},
		dto.InstallmentRequest{Description: "Seconda rata", Amount: dec("151"), TriggerType: domain.TriggerLessonN, TriggerLesson: 8},
	)
	suite.mockFiscal.On("AssertMutable", suite.ctx, req.IssueDate).Return(nil).Once()
	suite.mockSequence.On("NextNumber", suite.ctx, domain.FamilyQuote, 2025).Return("PR-2025-0007", nil).Once()
	suite.mockRepo.On("SaveQuote", suite.ctx, mock.Anything).Return(nil).Once()

	quote, warnings, err := suite.service.CreateQuote(suite.ctx, req, "operator-1")

	suite.Require().NoError(err)
	suite.Empty(warnings)
	suite.Equal("PR-2025-0007", quote.Number)
	suite.Equal(domain.QuoteDraft, quote.Status)
	suite.True(quote.TotalAmount.Equal(dec("302")))
	suite.Require().NotNil(quote.Installments[0].CollectionDate)
	suite.Equal(day(2025, 9, 11), *quote.Installments[0].CollectionDate)
	suite.Nil(quote.Installments[1].CollectionDate)
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_MismatchIsAWarningNotAnError() {
	req := suite.createRequest(
		dto.InstallmentRequest{Description: "Unica rata", Amount: dec("250"), TriggerType: domain.TriggerFixedDate},
	)
	suite.mockFiscal.On("AssertMutable", suite.ctx, req.IssueDate).Return(nil).Once()
	suite.mockSequence.On("NextNumber", suite.ctx, domain.FamilyQuote, 2025).Return("PR-2025-0008", nil).Once()
	suite.mockRepo.On("SaveQuote", suite.ctx, mock.Anything).Return(nil).Once()

	quote, warnings, err := suite.service.CreateQuote(suite.ctx, req, "operator-1")

	suite.Require().NoError(err)
	suite.NotNil(quote)
	suite.Require().Len(warnings, 1)
	suite.Equal(domain.WarningInstallmentMismatch, warnings[0].Code)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_ClosedYear() {
	req := suite.createRequest()
	suite.mockFiscal.On("AssertMutable", suite.ctx, req.IssueDate).Return(&apperrors.FiscalLockError{Year: 2025}).Once()

	_, _, err := suite.service.CreateQuote(suite.ctx, req, "operator-1")

	suite.ErrorIs(err, apperrors.ErrFiscalYearLocked)
	suite.mockSequence.AssertNotCalled(suite.T(), "NextNumber", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QuoteServiceTestSuite) TestUpdateQuote_StatusChange() {
	existing := &domain.Quote{
		QuoteID:     "q-1",
		Number:      "PR-2025-0003",
		IssueDate:   day(2025, 5, 1),
		Status:      domain.QuoteSent,
		Items:       []domain.LineItem{{Description: "Corso", Quantity: dec("1"), Price: dec("40")}},
		TotalAmount: dec("40"),
	}
	suite.mockRepo.On("FindQuoteByID", suite.ctx, "q-1").Return(existing, nil).Once()
	suite.mockFiscal.On("AssertMutable", suite.ctx, existing.IssueDate).Return(nil).Once()
	suite.mockRepo.On("UpdateQuote", suite.ctx, mock.MatchedBy(func(q domain.Quote) bool {
		return q.Status == domain.QuoteAccepted && q.Number == "PR-2025-0003"
	})).Return(nil).Once()

	accepted := domain.QuoteAccepted
	quote, warnings, err := suite.service.UpdateQuote(suite.ctx, "q-1", dto.UpdateQuoteRequest{Status: &accepted}, "operator-1")

	suite.Require().NoError(err)
	suite.Empty(warnings)
	suite.Equal(domain.QuoteAccepted, quote.Status)
}

func (suite *QuoteServiceTestSuite) TestGetQuoteByID_NotFound() {
	suite.mockRepo.On("FindQuoteByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.GetQuoteByID(suite.ctx, "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestQuoteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteServiceTestSuite))
}
