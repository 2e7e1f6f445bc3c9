package errors

import (
	"net/http"

	"go-bizledger/internal/shared/apperror"
)

var (
	ErrCompanyProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company profile not set up yet",
		http.StatusNotFound,
	)

	ErrInvalidGSTIN = apperror.New(
		apperror.CodeInvalidInput,
		"GSTIN is not valid",
		http.StatusBadRequest,
	)
)
