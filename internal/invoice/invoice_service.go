package invoice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-bizledger/internal/party"
	"go-bizledger/internal/shared/apperror"
	"go-bizledger/internal/shared/contextutil"
	"go-bizledger/internal/shared/counter"

	invoiceerrors "go-bizledger/internal/invoice/errors"
	partyerrors "go-bizledger/internal/party/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=invoice_service.go -destination=mock/invoice_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateInvoiceRequest) (InvoiceResponse, error)
	GetAll(ctx context.Context, companyID string, status string) ([]InvoiceResponse, error)
	GetByID(ctx context.Context, companyID, id string) (InvoiceResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateInvoiceRequest) (InvoiceResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	partyRepo party.Repository
	counter   counter.Repository
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	partyRepo party.Repository,
	counterRepo counter.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("invoice.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("invoice.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		partyRepo: partyRepo,
		counter:   counterRepo,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateInvoiceRequest) (InvoiceResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	invoiceDate, err := time.Parse("2006-01-02", req.InvoiceDate)
	if err != nil {
		return InvoiceResponse{}, apperror.InvalidField("Invoice Date")
	}

	p, err := s.partyRepo.FindByIDAndCompany(ctx, companyID, req.PartyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InvoiceResponse{}, partyerrors.ErrPartyNotFound
		}
		return InvoiceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create invoice begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return InvoiceResponse{}, err
	}
	defer tx.Rollback()

	nextVal, err := s.counter.GetNextValue(ctx, companyID, "invoice_number")
	if err != nil {
		s.logger.Error("create invoice generate number failed", zap.Error(err))
		return InvoiceResponse{}, err
	}

	inv := &Invoice{
		ID:            uuid.New(),
		CompanyID:     uuid.MustParse(companyID),
		InvoiceNumber: fmt.Sprintf("INV-%06d", nextVal),
		PartyID:       p.ID,
		PartyName:     p.Name,
		InvoiceDate:   invoiceDate,
		Status:        StatusDraft,
		Items:         itemsFromRequests(req.Items),
		Notes:         req.Notes,
	}
	inv.RecomputeTotals()

	if err := s.repo.WithTx(tx).Create(ctx, inv); err != nil {
		s.logger.Error("create invoice insert failed", zap.String("request_id", rid), zap.Error(err))
		return InvoiceResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create invoice commit failed", zap.String("request_id", rid), zap.Error(err))
		return InvoiceResponse{}, err
	}

	s.logger.Info("invoice created",
		zap.String("request_id", rid),
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.Float64("grand_total", inv.GrandTotal),
	)

	return mapToResponse(*inv), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, status string) ([]InvoiceResponse, error) {
	invoices, err := s.repo.FindAllByCompany(ctx, companyID, status)
	if err != nil {
		return nil, err
	}

	resp := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		resp[i] = mapToResponse(inv)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (InvoiceResponse, error) {
	inv, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return InvoiceResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*inv), nil
}

// Update re-saves the invoice. The invoice number and party are frozen at
// create time.
func (s *service) Update(ctx context.Context, companyID, id string, req UpdateInvoiceRequest) (InvoiceResponse, error) {
	inv, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return InvoiceResponse{}, mapRepositoryError(err)
	}

	invoiceDate, err := time.Parse("2006-01-02", req.InvoiceDate)
	if err != nil {
		return InvoiceResponse{}, apperror.InvalidField("Invoice Date")
	}

	inv.InvoiceDate = invoiceDate
	inv.Status = req.Status
	inv.Items = itemsFromRequests(req.Items)
	inv.Notes = req.Notes
	inv.RecomputeTotals()

	if err := s.repo.Update(ctx, inv); err != nil {
		return InvoiceResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*inv), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := s.repo.FindByIDAndCompany(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}
	return s.repo.Delete(ctx, companyID, id)
}

func itemsFromRequests(reqs []LineItemRequest) LineItemList {
	items := make(LineItemList, len(reqs))
	for i, req := range reqs {
		items[i] = LineItem{
			Description: req.Description,
			Quantity:    req.Quantity,
			UnitPrice:   req.UnitPrice,
			GSTRate:     req.GSTRate,
		}
	}
	return items
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return invoiceerrors.ErrInvoiceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_invoice_number" {
			return invoiceerrors.ErrInvoiceNumberAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_invoice_number") {
		return invoiceerrors.ErrInvoiceNumberAlreadyExists
	}

	return err
}

func mapToResponse(inv Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.ID.String(),
		CompanyID:     inv.CompanyID.String(),
		InvoiceNumber: inv.InvoiceNumber,
		PartyID:       inv.PartyID.String(),
		PartyName:     inv.PartyName,
		InvoiceDate:   inv.InvoiceDate.Format("2006-01-02"),
		Status:        inv.Status,
		Items:         inv.Items,
		Subtotal:      inv.Subtotal,
		TaxTotal:      inv.TaxTotal,
		GrandTotal:    inv.GrandTotal,
		Notes:         inv.Notes,
	}
}
