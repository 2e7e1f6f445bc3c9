package party

import (
	"context"
	"errors"

	"go-bizledger/internal/shared/gstin"

	partyerrors "go-bizledger/internal/party/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=party_service.go -destination=mock/party_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreatePartyRequest) (PartyResponse, error)
	GetAll(ctx context.Context, companyID string, partyType string) ([]PartyResponse, error)
	GetOptions(ctx context.Context, companyID string) ([]PartyOption, error)
	GetByID(ctx context.Context, companyID, id string) (PartyResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdatePartyRequest) (PartyResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("party.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("party.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, companyID string, req CreatePartyRequest) (PartyResponse, error) {
	if req.GSTIN != "" && !gstin.Valid(req.GSTIN) {
		return PartyResponse{}, partyerrors.ErrInvalidGSTIN
	}

	p := &Party{
		ID:        uuid.New(),
		CompanyID: uuid.MustParse(companyID),
		Name:      req.Name,
		PartyType: req.PartyType,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		GSTIN:     req.GSTIN,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("create party failed", zap.Error(err))
		return PartyResponse{}, err
	}

	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, partyType string) ([]PartyResponse, error) {
	parties, err := s.repo.FindAllByCompany(ctx, companyID, partyType)
	if err != nil {
		return nil, err
	}

	resp := make([]PartyResponse, len(parties))
	for i, p := range parties {
		resp[i] = mapToResponse(p)
	}
	return resp, nil
}

func (s *service) GetOptions(ctx context.Context, companyID string) ([]PartyOption, error) {
	parties, err := s.repo.FindAllByCompany(ctx, companyID, "")
	if err != nil {
		return nil, err
	}

	options := make([]PartyOption, len(parties))
	for i, p := range parties {
		options[i] = PartyOption{
			ID:        p.ID.String(),
			Name:      p.Name,
			PartyType: p.PartyType,
		}
	}
	return options, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (PartyResponse, error) {
	p, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PartyResponse{}, mapNotFound(err)
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdatePartyRequest) (PartyResponse, error) {
	p, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PartyResponse{}, mapNotFound(err)
	}

	if req.GSTIN != "" && !gstin.Valid(req.GSTIN) {
		return PartyResponse{}, partyerrors.ErrInvalidGSTIN
	}

	p.Name = req.Name
	p.PartyType = req.PartyType
	p.Phone = req.Phone
	p.Email = req.Email
	p.Address = req.Address
	p.GSTIN = req.GSTIN

	if err := s.repo.Update(ctx, p); err != nil {
		return PartyResponse{}, err
	}

	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := s.repo.FindByIDAndCompany(ctx, companyID, id); err != nil {
		return mapNotFound(err)
	}
	return s.repo.Delete(ctx, companyID, id)
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return partyerrors.ErrPartyNotFound
	}
	return err
}

func mapToResponse(p Party) PartyResponse {
	return PartyResponse{
		ID:        p.ID.String(),
		CompanyID: p.CompanyID.String(),
		Name:      p.Name,
		PartyType: p.PartyType,
		Phone:     p.Phone,
		Email:     p.Email,
		Address:   p.Address,
		GSTIN:     p.GSTIN,
	}
}
