package company

import (
	"context"
	"errors"

	"go-bizledger/internal/shared/gstin"

	companyerrors "go-bizledger/internal/company/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, companyID string) (CompanyResponse, error)
	Upsert(ctx context.Context, companyID string, req UpsertCompanyRequest) (CompanyResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Get(ctx context.Context, companyID string) (CompanyResponse, error) {
	c, err := s.repo.FindByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompanyResponse{}, companyerrors.ErrCompanyProfileNotFound
		}
		return CompanyResponse{}, err
	}
	return mapToResponse(*c), nil
}

// Upsert creates the profile on first save and overwrites it afterwards.
func (s *service) Upsert(ctx context.Context, companyID string, req UpsertCompanyRequest) (CompanyResponse, error) {
	if req.GSTIN != "" && !gstin.Valid(req.GSTIN) {
		return CompanyResponse{}, companyerrors.ErrInvalidGSTIN
	}

	c, err := s.repo.FindByCompany(ctx, companyID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return CompanyResponse{}, err
		}
		c = &Company{
			ID:        uuid.New(),
			CompanyID: uuid.MustParse(companyID),
		}
	}

	c.Name = req.Name
	c.Address = req.Address
	c.Phone = req.Phone
	c.Email = req.Email
	c.GSTIN = req.GSTIN
	c.PAN = req.PAN

	if err := s.repo.Save(ctx, c); err != nil {
		s.logger.Error("save company profile failed", zap.Error(err))
		return CompanyResponse{}, err
	}

	return mapToResponse(*c), nil
}

func mapToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID.String(),
		CompanyID: c.CompanyID.String(),
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		GSTIN:     c.GSTIN,
		PAN:       c.PAN,
	}
}
