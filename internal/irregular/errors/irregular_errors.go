package errors

import (
	"net/http"

	"go-bizledger/internal/shared/apperror"
)

var (
	ErrIrregularPaymentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Irregular payment not found",
		http.StatusNotFound,
	)

	ErrAmountNotPositive = apperror.New(
		apperror.CodeInvalidInput,
		"Amount must be greater than zero",
		http.StatusBadRequest,
	)

	ErrEmployeeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"An employee must be selected for person type EMPLOYEE",
		http.StatusBadRequest,
	)

	ErrAlreadyApplied = apperror.New(
		apperror.CodeInvalidState,
		"Irregular payment has already been applied in a payroll run",
		http.StatusConflict,
	)

	ErrDeleteAppliedNeedsForce = apperror.New(
		apperror.CodeConflict,
		"Irregular payment was already applied in a payroll run; pass force=true to delete it anyway",
		http.StatusConflict,
	)
)
