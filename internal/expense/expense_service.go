package expense

import (
	"context"
	"errors"
	"time"

	"go-bizledger/internal/shared/apperror"

	expenseerrors "go-bizledger/internal/expense/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=expense_service.go -destination=mock/expense_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateExpenseRequest) (ExpenseResponse, error)
	GetAll(ctx context.Context, companyID string, from, to string) ([]ExpenseResponse, error)
	GetByID(ctx context.Context, companyID, id string) (ExpenseResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateExpenseRequest) (ExpenseResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("expense.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("expense.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateExpenseRequest) (ExpenseResponse, error) {
	expenseDate, err := time.Parse("2006-01-02", req.ExpenseDate)
	if err != nil {
		return ExpenseResponse{}, apperror.InvalidField("Expense Date")
	}

	exp := &Expense{
		ID:          uuid.New(),
		CompanyID:   uuid.MustParse(companyID),
		ExpenseDate: expenseDate,
		Head:        req.Head,
		Category:    req.Category,
		Amount:      req.Amount,
		PaymentMode: req.PaymentMode,
		Description: req.Description,
		ReceiptRef:  req.ReceiptRef,
	}
	if err := s.repo.Create(ctx, exp); err != nil {
		s.logger.Error("create expense failed", zap.Error(err))
		return ExpenseResponse{}, err
	}

	return mapToResponse(*exp), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, from, to string) ([]ExpenseResponse, error) {
	var fromDate, toDate *time.Time
	if from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			return nil, apperror.InvalidField("From")
		}
		fromDate = &parsed
	}
	if to != "" {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			return nil, apperror.InvalidField("To")
		}
		toDate = &parsed
	}

	expenses, err := s.repo.FindAllByCompany(ctx, companyID, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	resp := make([]ExpenseResponse, len(expenses))
	for i, exp := range expenses {
		resp[i] = mapToResponse(exp)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (ExpenseResponse, error) {
	exp, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return ExpenseResponse{}, mapNotFound(err)
	}
	return mapToResponse(*exp), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateExpenseRequest) (ExpenseResponse, error) {
	exp, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return ExpenseResponse{}, mapNotFound(err)
	}

	expenseDate, err := time.Parse("2006-01-02", req.ExpenseDate)
	if err != nil {
		return ExpenseResponse{}, apperror.InvalidField("Expense Date")
	}

	exp.ExpenseDate = expenseDate
	exp.Head = req.Head
	exp.Category = req.Category
	exp.Amount = req.Amount
	exp.PaymentMode = req.PaymentMode
	exp.Description = req.Description
	exp.ReceiptRef = req.ReceiptRef

	if err := s.repo.Update(ctx, exp); err != nil {
		return ExpenseResponse{}, err
	}

	return mapToResponse(*exp), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := s.repo.FindByIDAndCompany(ctx, companyID, id); err != nil {
		return mapNotFound(err)
	}
	return s.repo.Delete(ctx, companyID, id)
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return expenseerrors.ErrExpenseNotFound
	}
	return err
}

func mapToResponse(exp Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          exp.ID.String(),
		CompanyID:   exp.CompanyID.String(),
		ExpenseDate: exp.ExpenseDate.Format("2006-01-02"),
		Head:        exp.Head,
		Category:    exp.Category,
		Amount:      exp.Amount,
		PaymentMode: exp.PaymentMode,
		Description: exp.Description,
		ReceiptRef:  exp.ReceiptRef,
	}
}
