package dto_test

import (
	"testing"
	"time"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	"github.com/SscSPs/kidsclub_backend/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, dto.RegisterValidators(v))
	return v
}

func validInvoiceRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		ClientID:  "client-1",
		ChildName: "Giulia",
		IssueDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		Items: []dto.LineItemRequest{
			{Description: "Corso nuoto", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(120)},
		},
	}
}

func TestRegisterValidators_CreateInvoiceRequest(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name    string
		mutate  func(r *dto.CreateInvoiceRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *dto.CreateInvoiceRequest) {}},
		{name: "negative price", mutate: func(r *dto.CreateInvoiceRequest) { r.Items[0].Price = decimal.NewFromInt(-1) }, wantErr: true},
		{name: "zero quantity", mutate: func(r *dto.CreateInvoiceRequest) { r.Items[0].Quantity = decimal.Zero }, wantErr: true},
		{name: "discount above 100", mutate: func(r *dto.CreateInvoiceRequest) { r.GlobalDiscount = decimal.NewFromInt(101) }, wantErr: true},
		{name: "unknown status", mutate: func(r *dto.CreateInvoiceRequest) { r.Status = "LOST" }, wantErr: true},
		{name: "known status", mutate: func(r *dto.CreateInvoiceRequest) { r.Status = domain.InvoiceSent }},
		{name: "no items", mutate: func(r *dto.CreateInvoiceRequest) { r.Items = nil }, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validInvoiceRequest()
			tc.mutate(&req)
			err := v.Struct(req)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegisterValidators_RecordPaymentRequest(t *testing.T) {
	v := newValidator(t)
	date := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, v.Struct(dto.RecordPaymentRequest{Amount: decimal.Zero, PaymentMethod: "CASH", Date: date}))
	assert.Error(t, v.Struct(dto.RecordPaymentRequest{Amount: decimal.NewFromInt(-5), PaymentMethod: "CASH", Date: date}))
	assert.Error(t, v.Struct(dto.RecordPaymentRequest{Amount: decimal.NewFromInt(5), Date: date}))
}
