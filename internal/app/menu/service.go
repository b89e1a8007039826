package menu

import (
	"context"
	"encoding/json"

	"github.com/demobistro/ordering/internal/adapter/logger"
	"github.com/demobistro/ordering/internal/domain"
	"github.com/demobistro/ordering/internal/interfaces"
)

// Service serves catalog reads. The categories listing, the hottest path, is
// cache-aside through the optional MenuCache; cache failures fall back to
// the repository.
type Service struct {
	repo   interfaces.MenuRepository
	cache  interfaces.MenuCache
	logger logger.Logger
}

func NewService(repo interfaces.MenuRepository, cache interfaces.MenuCache, lgr logger.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: lgr,
	}
}

func (s *Service) ListCategories(ctx context.Context) ([]*domain.MenuCategory, error) {
	if s.cache != nil {
		if payload, err := s.cache.GetCategories(ctx); err == nil && payload != nil {
			var categories []*domain.MenuCategory
			if err := json.Unmarshal(payload, &categories); err == nil {
				return categories, nil
			}
		}
	}

	categories, err := s.repo.ListCategories(ctx, true)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(categories); err == nil {
			if err := s.cache.SetCategories(ctx, payload); err != nil {
				s.logger.Debug("cache_set_failed", "Failed to cache menu categories", "", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}

	return categories, nil
}

func (s *Service) ListItems(ctx context.Context, categoryID *int64, search string) ([]*domain.MenuItem, error) {
	return s.repo.ListItems(ctx, categoryID, search)
}

func (s *Service) GetItem(ctx context.Context, id int64) (*domain.MenuItem, error) {
	return s.repo.GetItemByID(ctx, id)
}
