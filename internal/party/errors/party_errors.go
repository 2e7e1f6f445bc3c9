package errors

import (
	"net/http"

	"go-bizledger/internal/shared/apperror"
)

var (
	ErrPartyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Party not found",
		http.StatusNotFound,
	)

	ErrInvalidGSTIN = apperror.New(
		apperror.CodeInvalidInput,
		"GSTIN is not valid",
		http.StatusBadRequest,
	)
)
