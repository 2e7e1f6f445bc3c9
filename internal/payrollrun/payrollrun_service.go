package payrollrun

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-bizledger/internal/employee"
	"go-bizledger/internal/events"
	"go-bizledger/internal/irregular"
	"go-bizledger/internal/messaging/kafka"
	"go-bizledger/internal/shared/apperror"
	"go-bizledger/internal/shared/contextutil"

	employeeerrors "go-bizledger/internal/employee/errors"
	payrollrunerrors "go-bizledger/internal/payrollrun/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payrollrun_service.go -destination=mock/payrollrun_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreatePayrollRunRequest) (PayrollRunResponse, error)
	GetAll(ctx context.Context, companyID string) ([]PayrollRunResponse, error)
	GetByID(ctx context.Context, companyID, id string) (PayrollRunResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdatePayrollRunRequest) (PayrollRunResponse, error)
	Delete(ctx context.Context, companyID, id string) (DeletePayrollRunResponse, error)
}

type service struct {
	db            *sql.DB
	repo          Repository
	employeeRepo  employee.Repository
	irregularRepo irregular.Repository
	outbox        kafka.OutboxRepository
	logger        *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	irregularRepo irregular.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payrollrun.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payrollrun.service")
	}
	return &service{
		db:            db,
		repo:          repo,
		employeeRepo:  employeeRepo,
		irregularRepo: irregularRepo,
		outbox:        outboxRepo,
		logger:        l,
	}
}

// Create commits one payroll run as a single transaction: the run insert,
// the applied flips on the consumed irregular payments, and the outbox row
// all land together or not at all.
func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreatePayrollRunRequest,
) (PayrollRunResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	payDate, err := time.Parse("2006-01-02", req.PayDate)
	if err != nil {
		return PayrollRunResponse{}, apperror.InvalidField("Pay Date")
	}

	empl, err := s.employeeRepo.FindByIDAndCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollRunResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return PayrollRunResponse{}, err
	}

	performance, deductions, err := buildCompositionRows(req.PerformanceRows, req.Deductions)
	if err != nil {
		return PayrollRunResponse{}, err
	}

	applied, earningIDs, deductionIDs, err := s.resolveDecisions(ctx, companyID, req.EmployeeID, req.IrregularDecisions)
	if err != nil {
		return PayrollRunResponse{}, err
	}

	run := &PayrollRun{
		ID:               uuid.New(),
		CompanyID:        uuid.MustParse(companyID),
		EmployeeID:       empl.ID,
		EmployeeName:     empl.FullName,
		EmployeePost:     empl.Designation,
		PayDate:          payDate,
		Month:            req.Month,
		PaymentMode:      req.PaymentMode,
		FixedRows:        fixedRowsFromEmployee(empl),
		PerformanceRows:  performance,
		Deductions:       deductions,
		IrregularApplied: applied,
	}
	if err := run.RecomputeTotals(); err != nil {
		return PayrollRunResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create payroll run begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return PayrollRunResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, run); err != nil {
		s.logger.Error("create payroll run insert failed", zap.String("request_id", rid), zap.Error(err))
		return PayrollRunResponse{}, err
	}

	qIrregular := s.irregularRepo.WithTx(tx)
	if len(earningIDs) > 0 {
		if err := qIrregular.MarkApplied(ctx, companyID, earningIDs, irregular.DirectionEarning, req.Month, payDate); err != nil {
			return PayrollRunResponse{}, mapMarkAppliedError(err)
		}
	}
	if len(deductionIDs) > 0 {
		if err := qIrregular.MarkApplied(ctx, companyID, deductionIDs, irregular.DirectionDeduction, req.Month, payDate); err != nil {
			return PayrollRunResponse{}, mapMarkAppliedError(err)
		}
	}

	if s.outbox != nil {
		event := events.PayrollRunRecordedEvent{
			EventType:        "payroll_run.recorded",
			RequestID:        rid,
			PayrollRunID:     run.ID.String(),
			EmployeeID:       run.EmployeeID.String(),
			CompanyID:        companyID,
			Month:            run.Month,
			NetAmount:        run.NetAmount,
			IrregularApplied: len(applied),
			OccurredAt:       time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return PayrollRunResponse{}, err
		}
		outboxEvent := kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "payroll_run",
			AggregateID:   run.ID.String(),
			EventType:     event.EventType,
			Topic:         events.PayrollRunRecordedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}
		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			s.logger.Error("create payroll run outbox insert failed", zap.String("request_id", rid), zap.Error(err))
			return PayrollRunResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create payroll run commit failed", zap.String("request_id", rid), zap.Error(err))
		return PayrollRunResponse{}, err
	}

	s.logger.Info("payroll run recorded",
		zap.String("request_id", rid),
		zap.String("payroll_run_id", run.ID.String()),
		zap.String("month", run.Month),
		zap.Float64("net_amount", run.NetAmount),
		zap.Int("irregular_applied", len(applied)),
	)

	return mapToResponse(*run), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]PayrollRunResponse, error) {
	runs, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	resp := make([]PayrollRunResponse, len(runs))
	for i, run := range runs {
		resp[i] = mapToResponse(run)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (PayrollRunResponse, error) {
	run, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayrollRunResponse{}, mapNotFound(err)
	}
	return mapToResponse(*run), nil
}

// Update re-saves the run's composition and recomputes totals. The applied
// irregular payments are frozen: the linkage set from the original commit is
// carried over untouched.
func (s *service) Update(
	ctx context.Context,
	companyID, id string,
	req UpdatePayrollRunRequest,
) (PayrollRunResponse, error) {
	run, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayrollRunResponse{}, mapNotFound(err)
	}

	payDate, err := time.Parse("2006-01-02", req.PayDate)
	if err != nil {
		return PayrollRunResponse{}, apperror.InvalidField("Pay Date")
	}

	performance, deductions, err := buildCompositionRows(req.PerformanceRows, req.Deductions)
	if err != nil {
		return PayrollRunResponse{}, err
	}

	run.PayDate = payDate
	run.Month = req.Month
	run.PaymentMode = req.PaymentMode
	run.PerformanceRows = performance
	run.Deductions = deductions
	if err := run.RecomputeTotals(); err != nil {
		return PayrollRunResponse{}, err
	}

	if err := s.repo.Update(ctx, run); err != nil {
		return PayrollRunResponse{}, err
	}

	return mapToResponse(*run), nil
}

// Delete removes the run without reverting the applied flags on the
// irregular payments it consumed. Those stay marked applied forever; the
// response lists them so the caller can see what got orphaned.
func (s *service) Delete(ctx context.Context, companyID, id string) (DeletePayrollRunResponse, error) {
	run, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return DeletePayrollRunResponse{}, mapNotFound(err)
	}

	orphaned := make([]string, 0, len(run.IrregularApplied))
	for _, row := range run.IrregularApplied {
		orphaned = append(orphaned, row.IrregularPaymentID)
	}

	if err := s.repo.Delete(ctx, companyID, id); err != nil {
		return DeletePayrollRunResponse{}, err
	}

	if len(orphaned) > 0 {
		s.logger.Warn("payroll run deleted with applied irregular payments left orphaned",
			zap.String("company_id", companyID),
			zap.String("payroll_run_id", id),
			zap.Strings("irregular_payment_ids", orphaned),
		)
	}

	return DeletePayrollRunResponse{
		Deleted:                     true,
		OrphanedIrregularPaymentIDs: orphaned,
	}, nil
}

// resolveDecisions checks every non-ignored decision against the employee's
// actual pending ledger. A decision for an entry that is missing, already
// applied, or belongs to someone else fails the whole submission.
func (s *service) resolveDecisions(
	ctx context.Context,
	companyID, employeeID string,
	decisions []IrregularDecisionRequest,
) (AppliedIrregularRowList, []string, []string, error) {
	if len(decisions) == 0 {
		return nil, nil, nil, nil
	}

	pending, err := s.irregularRepo.ListPendingByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, nil, nil, err
	}
	pendingByID := make(map[string]irregular.IrregularPayment, len(pending))
	for _, entry := range pending {
		pendingByID[entry.ID.String()] = entry
	}

	var (
		applied      AppliedIrregularRowList
		earningIDs   []string
		deductionIDs []string
	)
	for _, decision := range decisions {
		if decision.Direction == DirectionIgnore {
			continue
		}
		entry, ok := pendingByID[decision.IrregularPaymentID]
		if !ok {
			return nil, nil, nil, payrollrunerrors.ErrIrregularNotPending
		}

		applied = append(applied, AppliedIrregularRow{
			IrregularPaymentID: entry.ID.String(),
			PaymentType:        entry.PaymentType,
			Direction:          decision.Direction,
			Amount:             entry.Amount,
		})
		switch decision.Direction {
		case DirectionEarning:
			earningIDs = append(earningIDs, entry.ID.String())
		case DirectionDeduction:
			deductionIDs = append(deductionIDs, entry.ID.String())
		}
	}

	return applied, earningIDs, deductionIDs, nil
}

func buildCompositionRows(
	performanceReqs []PerformanceRowRequest,
	deductionReqs []DeductionRowRequest,
) (PerformanceRowList, DeductionRowList, error) {
	var performance PerformanceRowList
	for _, row := range performanceReqs {
		if row.Amount <= 0 {
			return nil, nil, payrollrunerrors.ErrRowAmountNotPositive
		}
		performance = append(performance, PerformanceRow{
			Type:   row.Type,
			Label:  row.Label,
			Amount: row.Amount,
			Remark: row.Remark,
		})
	}

	var deductions DeductionRowList
	for _, row := range deductionReqs {
		if row.Amount <= 0 {
			return nil, nil, payrollrunerrors.ErrRowAmountNotPositive
		}
		deductions = append(deductions, DeductionRow{
			Reason: row.Reason,
			Label:  row.Label,
			Amount: row.Amount,
			Remark: row.Remark,
		})
	}

	return performance, deductions, nil
}

func fixedRowsFromEmployee(empl *employee.Employee) FixedRowList {
	monthly := empl.MonthlyFixedRows()
	rows := make(FixedRowList, len(monthly))
	for i, row := range monthly {
		rows[i] = FixedRow{
			Component: row.Component,
			Amount:    row.Amount,
			Remark:    row.Remark,
		}
	}
	return rows
}

func mapMarkAppliedError(err error) error {
	if errors.Is(err, irregular.ErrStaleEntries) {
		return payrollrunerrors.ErrIrregularNotPending
	}
	return err
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollrunerrors.ErrPayrollRunNotFound
	}
	return err
}

func mapToResponse(run PayrollRun) PayrollRunResponse {
	return PayrollRunResponse{
		ID:               run.ID.String(),
		CompanyID:        run.CompanyID.String(),
		EmployeeID:       run.EmployeeID.String(),
		EmployeeName:     run.EmployeeName,
		EmployeePost:     run.EmployeePost,
		PayDate:          run.PayDate.Format("2006-01-02"),
		Month:            run.Month,
		PaymentMode:      run.PaymentMode,
		FixedRows:        run.FixedRows,
		PerformanceRows:  run.PerformanceRows,
		Deductions:       run.Deductions,
		IrregularApplied: run.IrregularApplied,
		TotalEarnings:    run.TotalEarnings,
		TotalDeductions:  run.TotalDeductions,
		NetAmount:        run.NetAmount,
	}
}
