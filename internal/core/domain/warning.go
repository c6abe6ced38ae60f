package domain

// WarningCode classifies a non-blocking validation finding.
type WarningCode string

const (
	WarningInstallmentMismatch WarningCode = "INSTALLMENT_SUM_MISMATCH"
	WarningDateOutOfSequence   WarningCode = "DATE_OUT_OF_SEQUENCE"
)

// ValidationWarning is surfaced to the operator for confirmation; it never blocks a save.
type ValidationWarning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
