package dto

import (
	"reflect"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RegisterValidators installs the custom tags used by the request DTOs:
//
//	decimal_gte0   amount >= 0
//	decimal_gt0    amount > 0
//	percent        0 <= value <= 100
//	invoice_status a known invoice status
//	quote_status   a known quote status
//
// decimal.Decimal fields are exposed to validator as their string form.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	rules := map[string]validator.Func{
		"decimal_gte0": func(fl validator.FieldLevel) bool {
			d, ok := fieldDecimal(fl)
			return ok && !d.IsNegative()
		},
		"decimal_gt0": func(fl validator.FieldLevel) bool {
			d, ok := fieldDecimal(fl)
			return ok && d.IsPositive()
		},
		"percent": func(fl validator.FieldLevel) bool {
			d, ok := fieldDecimal(fl)
			return ok && !d.IsNegative() && d.LessThanOrEqual(hundred)
		},
		"invoice_status": func(fl validator.FieldLevel) bool {
			return domain.InvoiceStatus(fl.Field().String()).IsValid()
		},
		"quote_status": func(fl validator.FieldLevel) bool {
			return domain.QuoteStatus(fl.Field().String()).IsValid()
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func fieldDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
