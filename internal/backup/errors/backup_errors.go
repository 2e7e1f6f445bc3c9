package errors

import (
	"net/http"

	"go-bizledger/internal/shared/apperror"
)

var (
	ErrArchiveCompanyMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"Archive belongs to a different company",
		http.StatusBadRequest,
	)

	ErrUnsupportedFormatVersion = apperror.New(
		apperror.CodeInvalidInput,
		"Archive format version is not supported",
		http.StatusBadRequest,
	)

	ErrMalformedDocument = apperror.New(
		apperror.CodeInvalidInput,
		"Archive contains a malformed document",
		http.StatusBadRequest,
	)
)
