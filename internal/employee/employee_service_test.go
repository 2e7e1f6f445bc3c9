package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-bizledger/internal/employee"
	employeeerrors "go-bizledger/internal/employee/errors"
	"go-bizledger/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	withTxFn             func(tx *sql.Tx) employee.Repository
	createFn             func(ctx context.Context, empl *employee.Employee) error
	findAllByCompanyFn   func(ctx context.Context, companyID string) ([]employee.Employee, error)
	findByIDAndCompanyFn func(ctx context.Context, companyID, id string) (*employee.Employee, error)
	updateFn             func(ctx context.Context, empl *employee.Employee) error
	deleteFn             func(ctx context.Context, companyID, id string) error
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, empl *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, empl)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindAllByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*employee.Employee, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return &employee.Employee{}, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, empl *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, empl)
	}
	return nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, companyID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, companyID, id)
	}
	return nil
}

type fakeCounterRepository struct {
	next int64
	err  error
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, companyID, counterType string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.next++
	return f.next, nil
}

type fakeOutboxRepository struct {
	created []kafka.OutboxEvent
	err     error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, event)
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type employeeServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *fakeEmployeeRepository
	counter *fakeCounterRepository
	outbox  *fakeOutboxRepository
	service employee.Service
}

func setupEmployeeServiceTest(t *testing.T) *employeeServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := &fakeEmployeeRepository{}
	counterRepo := &fakeCounterRepository{}
	outbox := &fakeOutboxRepository{}
	svc := employee.NewServiceWithOutbox(db, repo, counterRepo, outbox, nil)

	return &employeeServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		repo:    repo,
		counter: counterRepo,
		outbox:  outbox,
		service: svc,
	}
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FullName:         "Asha Verma",
		Designation:      "Accountant",
		PersonType:       employee.PersonTypeEmployee,
		BasicAnnual:      240000,
		HRA:              employee.SalaryInputRequest{Value: 40, Mode: employee.ModePercent},
		Conveyance:       employee.SalaryInputRequest{Value: 19200, Mode: employee.ModeFixed},
		EmployerPF:       employee.SalaryInputRequest{Value: 12, Mode: employee.ModePercent},
		Gratuity:         employee.SalaryInputRequest{Value: 4.81, Mode: employee.ModePercent},
		SpecialAllowance: employee.SalaryInputRequest{Value: 0, Mode: employee.ModeFixed},
	}
}

func TestEmployeeServiceCreate(t *testing.T) {
	companyID := uuid.NewString()

	t.Run("persists resolved amounts and total ctc", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		var persisted *employee.Employee
		deps.repo.createFn = func(ctx context.Context, empl *employee.Employee) error {
			persisted = empl
			return nil
		}

		resp, err := deps.service.Create(context.Background(), companyID, validCreateRequest())
		assert.NoError(t, err)
		assert.NotNil(t, persisted)
		assert.Equal(t, "EMP001", persisted.EmployeeNumber)
		assert.Equal(t, int64(395544), persisted.TotalCTC)
		assert.Equal(t, int64(96000), persisted.HRAAmount)
		assert.Equal(t, int64(395544), resp.TotalCTC)
	})

	t.Run("writes employee created event to outbox in the same tx", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		_, err := deps.service.Create(context.Background(), companyID, validCreateRequest())
		assert.NoError(t, err)
		assert.Len(t, deps.outbox.created, 1)
		assert.Equal(t, "employee_created", deps.outbox.created[0].EventType)

		var event map[string]any
		assert.NoError(t, json.Unmarshal(deps.outbox.created[0].Payload, &event))
		assert.Equal(t, companyID, event["company_id"])
	})

	t.Run("rejects an invalid gstin before touching the db", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)

		req := validCreateRequest()
		req.GSTIN = "27AAPFU0939F1ZW" // bad check digit

		_, err := deps.service.Create(context.Background(), companyID, req)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidGSTIN)
	})

	t.Run("rolls back when outbox write fails", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.outbox.err = errors.New("outbox down")

		_, err := deps.service.Create(context.Background(), companyID, validCreateRequest())
		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeServiceUpdate(t *testing.T) {
	companyID := uuid.NewString()
	emplID := uuid.New()

	t.Run("recomputes cached amounts on edit", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		stored := &employee.Employee{
			ID:          emplID,
			CompanyID:   uuid.MustParse(companyID),
			FullName:    "Asha Verma",
			BasicAnnual: 120000,
		}
		stored.RecomputeSalary()

		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*employee.Employee, error) {
			return stored, nil
		}

		var saved *employee.Employee
		deps.repo.updateFn = func(ctx context.Context, empl *employee.Employee) error {
			saved = empl
			return nil
		}

		req := employee.UpdateEmployeeRequest{
			FullName:    "Asha Verma",
			PersonType:  employee.PersonTypeEmployee,
			BasicAnnual: 240000,
			HRA:         employee.SalaryInputRequest{Value: 40, Mode: employee.ModePercent},
		}

		resp, err := deps.service.Update(context.Background(), companyID, emplID.String(), req)
		assert.NoError(t, err)
		assert.Equal(t, int64(240000), saved.BasicAmount)
		assert.Equal(t, int64(96000), saved.HRAAmount)
		assert.Equal(t, int64(336000), resp.TotalCTC)
	})

	t.Run("maps missing employee to not found", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*employee.Employee, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.Update(context.Background(), companyID, emplID.String(), employee.UpdateEmployeeRequest{
			FullName:   "Ghost",
			PersonType: employee.PersonTypeEmployee,
		})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeServiceGetOptions(t *testing.T) {
	companyID := uuid.NewString()

	t.Run("serves cached options without hitting the repo", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		t.Cleanup(func() { db.Close() })
		_ = sqlMock

		rdb, redisMock := redismock.NewClientMock()

		opts := []employee.EmployeeOption{{ID: uuid.NewString(), EmployeeNumber: "EMP001", FullName: "Asha Verma"}}
		payload, _ := json.Marshal(opts)
		redisMock.ExpectGet(employee.OptionsCacheKey(companyID)).SetVal(string(payload))

		repoCalled := false
		repo := &fakeEmployeeRepository{
			findAllByCompanyFn: func(ctx context.Context, cid string) ([]employee.Employee, error) {
				repoCalled = true
				return nil, nil
			},
		}

		svc := employee.NewService(db, repo, &fakeCounterRepository{}, rdb)

		got, err := svc.GetOptions(context.Background(), companyID)
		assert.NoError(t, err)
		assert.Equal(t, opts, got)
		assert.False(t, repoCalled)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("falls back to the repo and caches on miss", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		t.Cleanup(func() { db.Close() })

		rdb, redisMock := redismock.NewClientMock()

		emplID := uuid.New()
		repo := &fakeEmployeeRepository{
			findAllByCompanyFn: func(ctx context.Context, cid string) ([]employee.Employee, error) {
				return []employee.Employee{{ID: emplID, EmployeeNumber: "EMP002", FullName: "Ravi Kumar"}}, nil
			},
		}

		expected := []employee.EmployeeOption{{ID: emplID.String(), EmployeeNumber: "EMP002", FullName: "Ravi Kumar"}}
		payload, _ := json.Marshal(expected)

		redisMock.ExpectGet(employee.OptionsCacheKey(companyID)).RedisNil()
		redisMock.ExpectSet(employee.OptionsCacheKey(companyID), payload, 10*time.Minute).SetVal("OK")

		svc := employee.NewService(db, repo, &fakeCounterRepository{}, rdb)

		got, err := svc.GetOptions(context.Background(), companyID)
		assert.NoError(t, err)
		assert.Equal(t, expected, got)
	})
}
