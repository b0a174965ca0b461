package subcategories

import (
	"context"

	"github.com/joefazee/directory-admin/app/categories"
	"github.com/joefazee/directory-admin/internal/formatter"
	"github.com/joefazee/directory-admin/internal/i18n"
	"github.com/joefazee/directory-admin/internal/logger"
	"github.com/joefazee/directory-admin/internal/query"
	"github.com/joefazee/directory-admin/internal/sanitizer"
	"github.com/joefazee/directory-admin/internal/validator"
	"github.com/joefazee/directory-admin/models"
)

type service struct {
	repo       Repository
	store      *query.Store[[]models.SubCategory]
	categories *query.Store[[]models.MainCategory]
	registry   *query.Registry
	sanitizer  sanitizer.HTMLStripperer
	messages   i18n.Translator
	log        logger.Logger
}

// NewService creates a sub-category service. categoriesStore is consulted,
// never fetched, to check that a parent was loaded in this session. A later
// invalidation of the category list does not undo that load.
func NewService(
	repo Repository,
	store *query.Store[[]models.SubCategory],
	categoriesStore *query.Store[[]models.MainCategory],
	registry *query.Registry,
	s sanitizer.HTMLStripperer,
	messages i18n.Translator,
	l logger.Logger,
) Service {
	if l == nil {
		l = logger.NewNullLogger()
	}
	return &service{
		repo:       repo,
		store:      store,
		categories: categoriesStore,
		registry:   registry,
		sanitizer:  s,
		messages:   messages,
		log:        l,
	}
}

func (s *service) ListSubCategories(ctx context.Context, mainCategoryID, search string) ([]SubCategoryResponse, error) {
	if !validator.IsObjectID(mainCategoryID) {
		return nil, models.ErrInvalidObjectID
	}

	all, err := s.store.Fetch(ctx, mainCategoryID, func(ctx context.Context) ([]models.SubCategory, error) {
		return s.repo.List(ctx, mainCategoryID)
	})
	if err != nil {
		return nil, err
	}

	filtered := make([]models.SubCategory, 0, len(all))
	for _, sub := range all {
		if formatter.Contains(search, sub.EnglishName, sub.ArabicName) {
			filtered = append(filtered, sub)
		}
	}
	return ToSubCategoryResponseList(mainCategoryID, filtered), nil
}

func (s *service) CreateSubCategory(ctx context.Context, mainCategoryID string, req SubCategoryRequest) (*SubCategoryResponse, error) {
	if !validator.IsObjectID(mainCategoryID) {
		return nil, models.ErrInvalidObjectID
	}
	if !s.mainCategoryLoaded(ctx, mainCategoryID) {
		return nil, models.ErrUnknownMainCategory
	}
	names, err := categories.ValidateNames(s.messages, s.sanitizer, models.CategoryNames(req))
	if err != nil {
		return nil, err
	}

	sub, err := s.repo.Create(ctx, mainCategoryID, names)
	if err != nil {
		return nil, err
	}

	s.log.Info("sub-category created", logger.Fields{"id": sub.ID, "main_category_id": mainCategoryID})
	s.invalidate(ctx, mainCategoryID)
	return ToSubCategoryResponse(mainCategoryID, sub), nil
}

func (s *service) UpdateSubCategory(ctx context.Context, mainCategoryID, id string, req SubCategoryRequest) (*SubCategoryResponse, error) {
	if !validator.IsObjectID(mainCategoryID) || !validator.IsObjectID(id) {
		return nil, models.ErrInvalidObjectID
	}
	names, err := categories.ValidateNames(s.messages, s.sanitizer, models.CategoryNames(req))
	if err != nil {
		return nil, err
	}

	sub, err := s.repo.Update(ctx, id, names)
	if err != nil {
		return nil, err
	}

	s.log.Info("sub-category updated", logger.Fields{"id": id, "main_category_id": mainCategoryID})
	s.invalidate(ctx, mainCategoryID)
	return ToSubCategoryResponse(mainCategoryID, sub), nil
}

func (s *service) DeleteSubCategory(ctx context.Context, mainCategoryID, id string) error {
	if !validator.IsObjectID(mainCategoryID) || !validator.IsObjectID(id) {
		return models.ErrInvalidObjectID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("sub-category deleted", logger.Fields{"id": id, "main_category_id": mainCategoryID})
	s.invalidate(ctx, mainCategoryID)
	return nil
}

func (s *service) mainCategoryLoaded(ctx context.Context, mainCategoryID string) bool {
	loaded, ok := s.categories.Last(ctx, "")
	if !ok {
		return false
	}
	for _, c := range loaded {
		if c.ID == mainCategoryID {
			return true
		}
	}
	return false
}

// invalidate drops the parent's sub-category list and the category list,
// whose counts include this parent.
func (s *service) invalidate(ctx context.Context, mainCategoryID string) {
	err := s.registry.Invalidate(ctx, query.SubCategoriesKey(mainCategoryID), query.CategoriesKey())
	if err != nil {
		s.log.Error(err, logger.Fields{"op": "invalidate"})
	}
}
