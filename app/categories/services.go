package categories

import (
	"context"

	"github.com/joefazee/directory-admin/internal/formatter"
	"github.com/joefazee/directory-admin/internal/i18n"
	"github.com/joefazee/directory-admin/internal/logger"
	"github.com/joefazee/directory-admin/internal/query"
	"github.com/joefazee/directory-admin/internal/sanitizer"
	"github.com/joefazee/directory-admin/internal/validator"
	"github.com/joefazee/directory-admin/models"
)

type service struct {
	repo      Repository
	store     *query.Store[[]models.MainCategory]
	registry  *query.Registry
	sanitizer sanitizer.HTMLStripperer
	messages  i18n.Translator
	log       logger.Logger
}

// NewService creates a new category service
func NewService(
	repo Repository,
	store *query.Store[[]models.MainCategory],
	registry *query.Registry,
	s sanitizer.HTMLStripperer,
	messages i18n.Translator,
	l logger.Logger,
) Service {
	if l == nil {
		l = &logger.NullLogger{}
	}
	return &service{
		repo:      repo,
		store:     store,
		registry:  registry,
		sanitizer: s,
		messages:  messages,
		log:       l,
	}
}

func (s *service) ListCategories(ctx context.Context, search string) ([]CategoryResponse, error) {
	all, err := s.store.Fetch(ctx, "", s.repo.List)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.MainCategory, 0, len(all))
	for _, c := range all {
		if formatter.Contains(search, c.EnglishName, c.ArabicName) {
			filtered = append(filtered, c)
		}
	}
	return ToCategoryResponseList(filtered), nil
}

func (s *service) CreateCategory(ctx context.Context, req CategoryRequest) (*CategoryResponse, error) {
	names, err := ValidateNames(s.messages, s.sanitizer, req.names())
	if err != nil {
		return nil, err
	}

	category, err := s.repo.Create(ctx, names)
	if err != nil {
		return nil, err
	}

	s.log.Info("category created", logger.Fields{"id": category.ID})
	s.invalidate(ctx, query.CategoriesKey())
	return ToCategoryResponse(category), nil
}

func (s *service) UpdateCategory(ctx context.Context, id string, req CategoryRequest) (*CategoryResponse, error) {
	if !validator.IsObjectID(id) {
		return nil, models.ErrInvalidObjectID
	}
	names, err := ValidateNames(s.messages, s.sanitizer, req.names())
	if err != nil {
		return nil, err
	}

	category, err := s.repo.Update(ctx, id, names)
	if err != nil {
		return nil, err
	}

	s.log.Info("category updated", logger.Fields{"id": id})
	s.invalidate(ctx, query.CategoriesKey())
	return ToCategoryResponse(category), nil
}

func (s *service) DeleteCategory(ctx context.Context, id string) error {
	if !validator.IsObjectID(id) {
		return models.ErrInvalidObjectID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("category deleted", logger.Fields{"id": id})
	s.invalidate(ctx, query.CategoriesKey(), query.SubCategoriesKey(id))
	return nil
}

// invalidate never fails the mutation that triggered it; the write already
// happened upstream.
func (s *service) invalidate(ctx context.Context, keys ...query.Key) {
	if err := s.registry.Invalidate(ctx, keys...); err != nil {
		s.log.Error(err, logger.Fields{"op": "invalidate"})
	}
}
