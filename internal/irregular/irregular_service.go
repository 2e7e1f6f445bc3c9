package irregular

import (
	"context"
	"database/sql"
	"errors"
	"time"

	irregularerrors "go-bizledger/internal/irregular/errors"
	"go-bizledger/internal/shared/apperror"
	"go-bizledger/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=irregular_service.go -destination=mock/irregular_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, companyID string, req RecordIrregularPaymentRequest) (IrregularPaymentResponse, error)
	GetAll(ctx context.Context, companyID string) ([]IrregularPaymentResponse, error)
	ListPending(ctx context.Context, companyID, employeeID string) ([]IrregularPaymentResponse, error)
	Delete(ctx context.Context, companyID, id string, force bool) (DeleteIrregularPaymentResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("irregular.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("irregular.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Record(
	ctx context.Context,
	companyID string,
	req RecordIrregularPaymentRequest,
) (IrregularPaymentResponse, error) {
	if req.Amount <= 0 {
		return IrregularPaymentResponse{}, irregularerrors.ErrAmountNotPositive
	}
	if req.PersonType == "EMPLOYEE" && (req.EmployeeID == nil || *req.EmployeeID == "") {
		return IrregularPaymentResponse{}, irregularerrors.ErrEmployeeRequired
	}

	payDate, err := time.Parse("2006-01-02", req.PayDate)
	if err != nil {
		return IrregularPaymentResponse{}, apperror.InvalidField("Pay Date")
	}

	entry := &IrregularPayment{
		ID:          uuid.New(),
		CompanyID:   uuid.MustParse(companyID),
		PayDate:     payDate,
		PersonName:  req.PersonName,
		PersonType:  req.PersonType,
		PaymentType: req.PaymentType,
		Amount:      req.Amount,
		Remark:      req.Remark,
		PaymentMode: req.PaymentMode,
	}
	if req.EmployeeID != nil && *req.EmployeeID != "" {
		emplID, err := uuid.Parse(*req.EmployeeID)
		if err != nil {
			return IrregularPaymentResponse{}, apperror.InvalidField("Employee Id")
		}
		entry.EmployeeID = &emplID
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Error("record irregular payment failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		return IrregularPaymentResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*entry), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]IrregularPaymentResponse, error) {
	entries, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(entries), nil
}

// ListPending only ever returns entries with applied = false: an applied
// entry is never offered to a payroll run again.
func (s *service) ListPending(ctx context.Context, companyID, employeeID string) ([]IrregularPaymentResponse, error) {
	entries, err := s.repo.ListPendingByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(entries), nil
}

// Delete is irreversible. An applied entry is linked to a historical payroll
// run, so deleting it needs force=true and comes back with a warning about
// the orphaned linkage.
func (s *service) Delete(ctx context.Context, companyID, id string, force bool) (DeleteIrregularPaymentResponse, error) {
	entry, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return DeleteIrregularPaymentResponse{}, mapRepositoryError(err)
	}

	warning := ""
	if entry.Applied {
		if !force {
			return DeleteIrregularPaymentResponse{}, irregularerrors.ErrDeleteAppliedNeedsForce
		}
		warning = "Entry was already applied in a payroll run; the run keeps its totals but the ledger linkage is now orphaned"
		s.logger.Warn("deleting applied irregular payment",
			zap.String("company_id", companyID),
			zap.String("irregular_payment_id", id),
		)
	}

	if err := s.repo.Delete(ctx, companyID, id); err != nil {
		return DeleteIrregularPaymentResponse{}, mapRepositoryError(err)
	}

	return DeleteIrregularPaymentResponse{Deleted: true, Warning: warning}, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return irregularerrors.ErrIrregularPaymentNotFound
	}
	if errors.Is(err, ErrStaleEntries) {
		return irregularerrors.ErrAlreadyApplied
	}
	return err
}

func mapToResponse(entry IrregularPayment) IrregularPaymentResponse {
	resp := IrregularPaymentResponse{
		ID:             entry.ID.String(),
		CompanyID:      entry.CompanyID.String(),
		PayDate:        entry.PayDate.Format("2006-01-02"),
		PersonName:     entry.PersonName,
		PersonType:     entry.PersonType,
		PaymentType:    entry.PaymentType,
		Amount:         entry.Amount,
		Remark:         entry.Remark,
		PaymentMode:    entry.PaymentMode,
		Applied:        entry.Applied,
		AppliedAs:      entry.AppliedAs,
		AppliedInMonth: entry.AppliedInMonth,
	}

	if entry.EmployeeID != nil {
		v := entry.EmployeeID.String()
		resp.EmployeeID = &v
	}
	if entry.AppliedOn != nil {
		v := entry.AppliedOn.Format("2006-01-02")
		resp.AppliedOn = &v
	}

	return resp
}

func mapToListResponse(entries []IrregularPayment) []IrregularPaymentResponse {
	resp := make([]IrregularPaymentResponse, len(entries))
	for i, entry := range entries {
		resp[i] = mapToResponse(entry)
	}
	return resp
}
