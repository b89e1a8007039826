package business

import (
	"context"
	"errors"

	"github.com/demobistro/ordering/internal/adapter/logger"
	"github.com/demobistro/ordering/internal/domain"
	"github.com/demobistro/ordering/internal/interfaces"
)

type Service struct {
	repo   interfaces.BusinessRepository
	logger logger.Logger
}

func NewService(repo interfaces.BusinessRepository, lgr logger.Logger) *Service {
	return &Service{repo: repo, logger: lgr}
}

// Get returns the venue profile, creating the default one on first read.
func (s *Service) Get(ctx context.Context) (*domain.BusinessInfo, error) {
	info, err := s.repo.Get(ctx)
	if errors.Is(err, domain.ErrBusinessInfoNotFound) {
		info = domain.DefaultBusinessInfo()
		if err := s.repo.Upsert(ctx, info); err != nil {
			return nil, err
		}
		s.logger.Info("business_info_created", "Created default business info", "", nil)
		return info, nil
	}
	if err != nil {
		return nil, err
	}
	return info, nil
}

func (s *Service) Update(ctx context.Context, cmd interfaces.UpdateBusinessCommand) (*domain.BusinessInfo, error) {
	info, err := s.repo.Get(ctx)
	if errors.Is(err, domain.ErrBusinessInfoNotFound) {
		info = &domain.BusinessInfo{}
	} else if err != nil {
		return nil, err
	}

	info.Name = cmd.Name
	info.Address = cmd.Address
	info.Phone = cmd.Phone
	info.Hours = cmd.Hours
	info.LogoURL = cmd.LogoURL

	if err := s.repo.Upsert(ctx, info); err != nil {
		return nil, err
	}
	return info, nil
}
