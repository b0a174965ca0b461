package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/joefazee/directory-admin/internal/imaging"
	"github.com/joefazee/directory-admin/internal/logger"
	"github.com/joefazee/directory-admin/models"
)

type Config struct {
	CloudinaryURL string `env:"CLOUDINARY_URL"`
	Folder        string `env:"CLOUDINARY_FOLDER" env-default:"offers"`
}

// Uploader hosts an image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, f imaging.File) (string, error)
}

// New returns a Cloudinary uploader, or one that always fails with
// models.ErrUploaderDisabled when no Cloudinary URL is configured.
func New(cfg Config, l logger.Logger) (Uploader, error) {
	if cfg.CloudinaryURL == "" {
		return DisabledUploader{}, nil
	}
	return NewCloudinaryUploader(cfg, l)
}

type DisabledUploader struct{}

func (DisabledUploader) Upload(context.Context, imaging.File) (string, error) {
	return "", models.ErrUploaderDisabled
}

type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
	log    logger.Logger
}

func NewCloudinaryUploader(cfg Config, l logger.Logger) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cfg.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("media: cloudinary init: %w", err)
	}
	if l == nil {
		l = logger.NewNullLogger()
	}
	return &CloudinaryUploader{cld: cld, folder: cfg.Folder, log: l}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, f imaging.File) (string, error) {
	if len(f.Data) == 0 {
		return "", errors.New("media: empty file")
	}
	unique := true
	res, err := u.cld.Upload.Upload(ctx, bytes.NewReader(f.Data), uploader.UploadParams{
		Folder:         u.folder,
		PublicID:       strings.TrimSuffix(filepath.Base(f.Name), filepath.Ext(f.Name)),
		UniqueFilename: &unique,
	})
	if err != nil {
		return "", fmt.Errorf("media: upload %s: %w", f.Name, err)
	}
	if res.SecureURL == "" {
		msg := res.Error.Message
		if msg == "" {
			msg = "no url returned"
		}
		return "", fmt.Errorf("media: upload %s: %s", f.Name, msg)
	}

	u.log.Info("offer image hosted", map[string]interface{}{"file": f.Name, "public_id": res.PublicID})
	return res.SecureURL, nil
}
