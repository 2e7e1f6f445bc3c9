package errors

import (
	"net/http"

	"go-bizledger/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrEmployeeNumberAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee number already exists",
		http.StatusConflict,
	)

	ErrInvalidGSTIN = apperror.New(
		apperror.CodeInvalidInput,
		"GSTIN is not valid",
		http.StatusBadRequest,
	)
)
