package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go-bizledger/internal/events"
	"go-bizledger/internal/messaging/kafka"
	"go-bizledger/internal/shared/contextutil"
	"go-bizledger/internal/shared/counter"
	"go-bizledger/internal/shared/gstin"

	employeeerrors "go-bizledger/internal/employee/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const optionsCacheKeyPrefix = "employees:options:"
const optionsCacheTTL = 10 * time.Minute

func OptionsCacheKey(companyID string) string {
	return optionsCacheKeyPrefix + companyID
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, companyID string) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context, companyID string) ([]EmployeeOption, error)
	GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counter, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("full_name", req.FullName),
	)

	if req.GSTIN != "" && !gstin.Valid(req.GSTIN) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidGSTIN
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	nextVal, err := s.counter.GetNextValue(ctx, companyID, "employee_number")
	if err != nil {
		s.logger.Error("create employee generate number failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	employeeNumber := fmt.Sprintf("EMP%03d", nextVal)

	empl := &Employee{
		ID:               uuid.New(),
		CompanyID:        uuid.MustParse(companyID),
		EmployeeNumber:   employeeNumber,
		FullName:         req.FullName,
		Designation:      req.Designation,
		PersonType:       req.PersonType,
		Phone:            req.Phone,
		Email:            req.Email,
		PAN:              req.PAN,
		GSTIN:            req.GSTIN,
		BasicAnnual:      req.BasicAnnual,
		HRA:              toSalaryInput(req.HRA),
		Conveyance:       toSalaryInput(req.Conveyance),
		EmployerPF:       toSalaryInput(req.EmployerPF),
		Gratuity:         toSalaryInput(req.Gratuity),
		SpecialAllowance: toSalaryInput(req.SpecialAllowance),
	}
	empl.RecomputeSalary()

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:      "employee_created",
			RequestID:      rid,
			EmployeeID:     empl.ID.String(),
			EmployeeNumber: empl.EmployeeNumber,
			CompanyID:      companyID,
			OccurredAt:     time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx, companyID)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]EmployeeResponse, len(empls))
	for i, empl := range empls {
		resp[i] = mapToResponse(empl)
	}
	return resp, nil
}

func (s *service) GetOptions(ctx context.Context, companyID string) ([]EmployeeOption, error) {
	key := OptionsCacheKey(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var opts []EmployeeOption
			if err := json.Unmarshal([]byte(cached), &opts); err == nil {
				return opts, nil
			}
		}
	}

	// singleflight keeps a cold cache from stampeding the database
	v, err, _ := s.sf.Do(key, func() (any, error) {
		empls, err := s.repo.FindAllByCompany(ctx, companyID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		opts := make([]EmployeeOption, len(empls))
		for i, empl := range empls {
			opts[i] = EmployeeOption{
				ID:             empl.ID.String(),
				EmployeeNumber: empl.EmployeeNumber,
				FullName:       empl.FullName,
			}
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(opts); err == nil {
				if err := s.rdb.Set(ctx, key, payload, optionsCacheTTL).Err(); err != nil {
					s.logger.Warn("cache employee options failed", zap.Error(err))
				}
			}
		}

		return opts, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOption), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(
	ctx context.Context,
	companyID, id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	if req.GSTIN != "" && !gstin.Valid(req.GSTIN) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidGSTIN
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.FullName = req.FullName
	empl.Designation = req.Designation
	empl.PersonType = req.PersonType
	empl.Phone = req.Phone
	empl.Email = req.Email
	empl.PAN = req.PAN
	empl.GSTIN = req.GSTIN
	empl.BasicAnnual = req.BasicAnnual
	empl.HRA = toSalaryInput(req.HRA)
	empl.Conveyance = toSalaryInput(req.Conveyance)
	empl.EmployerPF = toSalaryInput(req.EmployerPF)
	empl.Gratuity = toSalaryInput(req.Gratuity)
	empl.SpecialAllowance = toSalaryInput(req.SpecialAllowance)
	empl.RecomputeSalary()

	if err := qtx.Update(ctx, empl); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx, companyID)

	return mapToResponse(*empl), nil
}

// Delete is irreversible and does not cascade: payroll runs that reference
// this employee keep their own frozen snapshots.
func (s *service) Delete(ctx context.Context, companyID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByIDAndCompany(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateOptionsCache(ctx, companyID)

	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey(companyID)).Err(); err != nil {
		s.logger.Warn("invalidate employee options cache failed",
			zap.String("company_id", companyID),
			zap.Error(err),
		)
	}
}

func toSalaryInput(req SalaryInputRequest) SalaryInput {
	mode := req.Mode
	if mode == "" {
		mode = ModeFixed
	}
	return SalaryInput{Value: req.Value, Mode: mode}
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             empl.ID.String(),
		CompanyID:      empl.CompanyID.String(),
		EmployeeNumber: empl.EmployeeNumber,
		FullName:       empl.FullName,
		Designation:    empl.Designation,
		PersonType:     empl.PersonType,
		Phone:          empl.Phone,
		Email:          empl.Email,
		PAN:            empl.PAN,
		GSTIN:          empl.GSTIN,

		BasicAnnual:      empl.BasicAnnual,
		HRA:              empl.HRA,
		Conveyance:       empl.Conveyance,
		EmployerPF:       empl.EmployerPF,
		Gratuity:         empl.Gratuity,
		SpecialAllowance: empl.SpecialAllowance,

		BasicAmount:            empl.BasicAmount,
		HRAAmount:              empl.HRAAmount,
		ConveyanceAmount:       empl.ConveyanceAmount,
		EmployerPFAmount:       empl.EmployerPFAmount,
		GratuityAmount:         empl.GratuityAmount,
		SpecialAllowanceAmount: empl.SpecialAllowanceAmount,
		TotalCTC:               empl.TotalCTC,
		MonthlyCTC:             empl.MonthlyCTC(),
	}
}
