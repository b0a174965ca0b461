package providers

import (
	"context"

	"github.com/joefazee/directory-admin/internal/formatter"
	"github.com/joefazee/directory-admin/internal/imaging"
	"github.com/joefazee/directory-admin/internal/logger"
	"github.com/joefazee/directory-admin/internal/media"
	"github.com/joefazee/directory-admin/internal/query"
	"github.com/joefazee/directory-admin/internal/validator"
	"github.com/joefazee/directory-admin/models"
)

// Config carries what the service needs beyond its collaborators.
type Config struct {
	PhoneRegion  string
	ImageWorkers int
}

type service struct {
	repo       Repository
	store      *query.Store[[]models.ServiceProvider]
	registry   *query.Registry
	schema     *Schema
	compressor imaging.Compressor
	uploader   media.Uploader
	cfg        Config
	log        logger.Logger
}

func NewService(
	repo Repository,
	store *query.Store[[]models.ServiceProvider],
	registry *query.Registry,
	schema *Schema,
	compressor imaging.Compressor,
	uploader media.Uploader,
	cfg Config,
	l logger.Logger,
) Service {
	if l == nil {
		l = logger.NewNullLogger()
	}
	return &service{
		repo:       repo,
		store:      store,
		registry:   registry,
		schema:     schema,
		compressor: compressor,
		uploader:   uploader,
		cfg:        cfg,
		log:        l,
	}
}

func (s *service) ListProviders(ctx context.Context, subCategoryID, search string) ([]ProviderResponse, error) {
	all, err := s.list(ctx, subCategoryID)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.ServiceProvider, 0, len(all))
	for _, p := range all {
		if formatter.Contains(search, p.Name) {
			filtered = append(filtered, p)
		}
	}
	return ToProviderResponseList(subCategoryID, filtered, s.cfg.PhoneRegion), nil
}

func (s *service) NewCreateForm() *Form {
	return NewCreateForm(s.schema, s.pipeline(nil))
}

func (s *service) NewUpdateForm(ctx context.Context, subCategoryID, id string) (*Form, error) {
	if !validator.IsObjectID(id) {
		return nil, models.ErrInvalidObjectID
	}
	all, err := s.list(ctx, subCategoryID)
	if err != nil {
		return nil, err
	}
	for _, p := range all {
		if p.ID == id {
			return NewUpdateForm(s.schema, p, s.pipeline(p.Images)), nil
		}
	}
	return nil, models.ErrRecordNotFound
}

func (s *service) CreateProvider(ctx context.Context, subCategoryID string, form *Form) (*ProviderResponse, error) {
	if !validator.IsObjectID(subCategoryID) {
		return nil, models.ErrInvalidObjectID
	}

	var created *models.ServiceProvider
	err := form.Submit(ctx, func(ctx context.Context, sub *Submission) error {
		body, err := EncodeCreate(sub)
		if err != nil {
			return err
		}
		created, err = s.repo.Create(ctx, subCategoryID, body)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("service provider created", logger.Fields{"id": created.ID, "sub_category_id": subCategoryID})
	s.invalidate(ctx, subCategoryID)
	return ToProviderResponse(subCategoryID, created, s.cfg.PhoneRegion), nil
}

func (s *service) UpdateProvider(ctx context.Context, subCategoryID, id string, form *Form) (*ProviderResponse, error) {
	if !validator.IsObjectID(subCategoryID) || !validator.IsObjectID(id) {
		return nil, models.ErrInvalidObjectID
	}

	var updated *models.ServiceProvider
	err := form.Submit(ctx, func(ctx context.Context, sub *Submission) error {
		body, err := EncodeUpdate(sub)
		if err != nil {
			return err
		}
		updated, err = s.repo.Update(ctx, id, body)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("service provider updated", logger.Fields{"id": id, "sub_category_id": subCategoryID})
	s.invalidate(ctx, subCategoryID)
	return ToProviderResponse(subCategoryID, updated, s.cfg.PhoneRegion), nil
}

func (s *service) DeleteProvider(ctx context.Context, subCategoryID, id string) error {
	if !validator.IsObjectID(subCategoryID) || !validator.IsObjectID(id) {
		return models.ErrInvalidObjectID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("service provider deleted", logger.Fields{"id": id, "sub_category_id": subCategoryID})
	s.invalidate(ctx, subCategoryID)
	return nil
}

func (s *service) UploadOfferImage(ctx context.Context, f imaging.File) (string, error) {
	compressed, err := s.compressor.Compress(ctx, f)
	if err != nil {
		s.log.Debug("offer image sent uncompressed", logger.Fields{"file": f.Name, "error": err.Error()})
		compressed = f
	}
	return s.uploader.Upload(ctx, compressed)
}

func (s *service) list(ctx context.Context, subCategoryID string) ([]models.ServiceProvider, error) {
	if !validator.IsObjectID(subCategoryID) {
		return nil, models.ErrInvalidObjectID
	}
	return s.store.Fetch(ctx, subCategoryID, func(ctx context.Context) ([]models.ServiceProvider, error) {
		return s.repo.List(ctx, subCategoryID)
	})
}

func (s *service) pipeline(existing []models.Image) *imaging.Pipeline {
	return imaging.NewPipeline(s.compressor, existing, s.cfg.ImageWorkers, s.log)
}

func (s *service) invalidate(ctx context.Context, subCategoryID string) {
	if err := s.registry.Invalidate(ctx, query.ProvidersKey(subCategoryID)); err != nil {
		s.log.Error(err, logger.Fields{"op": "invalidate"})
	}
}
