package errors

import (
	"net/http"

	"go-bizledger/internal/shared/apperror"
)

var ErrExpenseNotFound = apperror.New(
	apperror.CodeNotFound,
	"Expense not found",
	http.StatusNotFound,
)
