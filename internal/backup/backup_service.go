package backup

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-bizledger/internal/company"
	"go-bizledger/internal/employee"
	"go-bizledger/internal/expense"
	"go-bizledger/internal/invoice"
	"go-bizledger/internal/irregular"
	"go-bizledger/internal/party"
	"go-bizledger/internal/payrollrun"

	backuperrors "go-bizledger/internal/backup/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=backup_service.go -destination=mock/backup_service_mock.go -package=mock
type Service interface {
	Export(ctx context.Context, companyID string) (Archive, error)
	Restore(ctx context.Context, companyID string, archive Archive) (RestoreSummary, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("backup.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("backup.service")
	}
	return &service{repo: repo, logger: l}
}

func toDocuments[T any](records []T, id func(T) uuid.UUID) ([]Document, error) {
	docs := make([]Document, len(records))
	for i, record := range records {
		data, err := json.Marshal(record)
		if err != nil {
			return nil, err
		}
		docs[i] = Document{ID: id(record).String(), Data: data}
	}
	return docs, nil
}

func (s *service) Export(ctx context.Context, companyID string) (Archive, error) {
	archive := Archive{
		Meta: Meta{
			AppID:         archiveAppID,
			CompanyID:     companyID,
			CreatedAt:     time.Now().UTC(),
			FormatVersion: formatVersion,
		},
		Collections: map[string][]Document{},
	}

	employees, err := s.repo.Employees(ctx, companyID)
	if err != nil {
		return Archive{}, err
	}
	if archive.Collections[CollectionEmployees], err = toDocuments(employees,
		func(e employee.Employee) uuid.UUID { return e.ID }); err != nil {
		return Archive{}, err
	}

	irregulars, err := s.repo.IrregularPayments(ctx, companyID)
	if err != nil {
		return Archive{}, err
	}
	if archive.Collections[CollectionIrregularPayments], err = toDocuments(irregulars,
		func(e irregular.IrregularPayment) uuid.UUID { return e.ID }); err != nil {
		return Archive{}, err
	}

	runs, err := s.repo.PayrollRuns(ctx, companyID)
	if err != nil {
		return Archive{}, err
	}
	if archive.Collections[CollectionPayrollRuns], err = toDocuments(runs,
		func(e payrollrun.PayrollRun) uuid.UUID { return e.ID }); err != nil {
		return Archive{}, err
	}

	expenses, err := s.repo.Expenses(ctx, companyID)
	if err != nil {
		return Archive{}, err
	}
	if archive.Collections[CollectionExpenses], err = toDocuments(expenses,
		func(e expense.Expense) uuid.UUID { return e.ID }); err != nil {
		return Archive{}, err
	}

	parties, err := s.repo.Parties(ctx, companyID)
	if err != nil {
		return Archive{}, err
	}
	if archive.Collections[CollectionParties], err = toDocuments(parties,
		func(e party.Party) uuid.UUID { return e.ID }); err != nil {
		return Archive{}, err
	}

	invoices, err := s.repo.Invoices(ctx, companyID)
	if err != nil {
		return Archive{}, err
	}
	if archive.Collections[CollectionInvoices], err = toDocuments(invoices,
		func(e invoice.Invoice) uuid.UUID { return e.ID }); err != nil {
		return Archive{}, err
	}

	details, err := s.repo.CompanyDetails(ctx, companyID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return Archive{}, err
	}
	if details != nil {
		data, err := json.Marshal(details)
		if err != nil {
			return Archive{}, err
		}
		archive.CompanyDetails = &Document{ID: details.ID.String(), Data: data}
	}

	s.logger.Info("backup exported",
		zap.String("company_id", companyID),
		zap.Int("employees", len(employees)),
		zap.Int("payroll_runs", len(runs)),
	)

	return archive, nil
}

// Restore writes every archived document back under its original id. Runs
// restored this way still reference the same employee ids, so a payroll
// run's employee link resolves after the round trip.
func (s *service) Restore(ctx context.Context, companyID string, archive Archive) (RestoreSummary, error) {
	if archive.Meta.FormatVersion != formatVersion {
		return RestoreSummary{}, backuperrors.ErrUnsupportedFormatVersion
	}
	if archive.Meta.CompanyID != companyID {
		return RestoreSummary{}, backuperrors.ErrArchiveCompanyMismatch
	}

	summary := RestoreSummary{Restored: map[string]int{}}

	n, err := restoreCollection(ctx, archive.Collections[CollectionEmployees],
		func(e *employee.Employee, id uuid.UUID) { e.ID = id },
		s.repo.SaveEmployee)
	if err != nil {
		return RestoreSummary{}, err
	}
	summary.Restored[CollectionEmployees] = n

	n, err = restoreCollection(ctx, archive.Collections[CollectionIrregularPayments],
		func(e *irregular.IrregularPayment, id uuid.UUID) { e.ID = id },
		s.repo.SaveIrregularPayment)
	if err != nil {
		return RestoreSummary{}, err
	}
	summary.Restored[CollectionIrregularPayments] = n

	n, err = restoreCollection(ctx, archive.Collections[CollectionPayrollRuns],
		func(e *payrollrun.PayrollRun, id uuid.UUID) { e.ID = id },
		s.repo.SavePayrollRun)
	if err != nil {
		return RestoreSummary{}, err
	}
	summary.Restored[CollectionPayrollRuns] = n

	n, err = restoreCollection(ctx, archive.Collections[CollectionExpenses],
		func(e *expense.Expense, id uuid.UUID) { e.ID = id },
		s.repo.SaveExpense)
	if err != nil {
		return RestoreSummary{}, err
	}
	summary.Restored[CollectionExpenses] = n

	n, err = restoreCollection(ctx, archive.Collections[CollectionParties],
		func(e *party.Party, id uuid.UUID) { e.ID = id },
		s.repo.SaveParty)
	if err != nil {
		return RestoreSummary{}, err
	}
	summary.Restored[CollectionParties] = n

	n, err = restoreCollection(ctx, archive.Collections[CollectionInvoices],
		func(e *invoice.Invoice, id uuid.UUID) { e.ID = id },
		s.repo.SaveInvoice)
	if err != nil {
		return RestoreSummary{}, err
	}
	summary.Restored[CollectionInvoices] = n

	if archive.CompanyDetails != nil {
		var details company.Company
		if err := json.Unmarshal(archive.CompanyDetails.Data, &details); err != nil {
			return RestoreSummary{}, backuperrors.ErrMalformedDocument
		}
		id, err := uuid.Parse(archive.CompanyDetails.ID)
		if err != nil {
			return RestoreSummary{}, backuperrors.ErrMalformedDocument
		}
		details.ID = id
		if err := s.repo.SaveCompanyDetails(ctx, &details); err != nil {
			return RestoreSummary{}, err
		}
	}

	s.logger.Info("backup restored",
		zap.String("company_id", companyID),
		zap.Int("employees", summary.Restored[CollectionEmployees]),
		zap.Int("payroll_runs", summary.Restored[CollectionPayrollRuns]),
	)

	return summary, nil
}

func restoreCollection[T any](
	ctx context.Context,
	docs []Document,
	setID func(*T, uuid.UUID),
	save func(context.Context, *T) error,
) (int, error) {
	for _, doc := range docs {
		var record T
		if err := json.Unmarshal(doc.Data, &record); err != nil {
			return 0, backuperrors.ErrMalformedDocument
		}
		id, err := uuid.Parse(doc.ID)
		if err != nil {
			return 0, backuperrors.ErrMalformedDocument
		}
		// the document id wins over whatever the body carries
		setID(&record, id)

		if err := save(ctx, &record); err != nil {
			return 0, err
		}
	}
	return len(docs), nil
}
