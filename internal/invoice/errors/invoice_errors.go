package errors

import (
	"net/http"

	"go-bizledger/internal/shared/apperror"
)

var (
	ErrInvoiceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Invoice not found",
		http.StatusNotFound,
	)

	ErrInvoiceNumberAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Invoice number already exists",
		http.StatusConflict,
	)
)
