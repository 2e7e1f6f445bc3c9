package errors

import (
	"net/http"

	"go-bizledger/internal/shared/apperror"
)

var (
	ErrPayrollRunNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll run not found",
		http.StatusNotFound,
	)

	ErrIrregularNotPending = apperror.New(
		apperror.CodeConflict,
		"One or more irregular payments are not pending for this employee",
		http.StatusConflict,
	)

	ErrRowAmountNotPositive = apperror.New(
		apperror.CodeInvalidInput,
		"Every performance row and deduction needs a positive amount",
		http.StatusBadRequest,
	)
)
