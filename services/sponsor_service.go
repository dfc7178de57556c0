package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/praiaclube/beachtennis-system/models"
	"github.com/praiaclube/beachtennis-system/repositories"
	"github.com/praiaclube/beachtennis-system/storage"
)

var (
	ErrSponsorNameRequired     = errors.New("sponsor name is required")
	ErrUnsupportedLogoType     = errors.New("unsupported logo content type")
	ErrLogoUploadNotConfigured = errors.New("logo uploads are not configured")
)

type SponsorService interface {
	CreateSponsor(ctx context.Context, input SponsorInput) (*models.Sponsor, error)
	GetSponsorByID(ctx context.Context, id int) (*models.Sponsor, error)
	ListSponsors(ctx context.Context, onlyActive bool) ([]models.Sponsor, error)
	UpdateSponsor(ctx context.Context, id int, input SponsorInput) (*models.Sponsor, error)
	UploadLogo(ctx context.Context, id int, contentType string, file io.Reader) (*models.Sponsor, error)
	DeleteSponsor(ctx context.Context, id int) error
}

type SponsorInput struct {
	Name     string  `json:"name"`
	Website  *string `json:"website"`
	IsActive *bool   `json:"is_active"`
}

type sponsorService struct {
	sponsorRepo repositories.SponsorRepository
	uploader    storage.FileUploader
	logger      *slog.Logger
}

func NewSponsorService(sponsorRepo repositories.SponsorRepository, uploader storage.FileUploader, logger *slog.Logger) SponsorService {
	return &sponsorService{
		sponsorRepo: sponsorRepo,
		uploader:    uploader,
		logger:      logger,
	}
}

func (s *sponsorService) populateLogoURL(sponsor *models.Sponsor) {
	if sponsor == nil || sponsor.LogoKey == nil || *sponsor.LogoKey == "" || s.uploader == nil {
		return
	}
	if url := s.uploader.GetPublicURL(*sponsor.LogoKey); url != "" {
		sponsor.LogoURL = &url
	}
}

func (s *sponsorService) CreateSponsor(ctx context.Context, input SponsorInput) (*models.Sponsor, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrSponsorNameRequired
	}

	sponsor := &models.Sponsor{
		Name:     name,
		Website:  input.Website,
		IsActive: true,
	}
	if input.IsActive != nil {
		sponsor.IsActive = *input.IsActive
	}

	if err := s.sponsorRepo.Create(ctx, sponsor); err != nil {
		if errors.Is(err, repositories.ErrSponsorNameConflict) {
			return nil, ErrSponsorNameConflict
		}
		return nil, fmt.Errorf("failed to create sponsor: %w", err)
	}
	return sponsor, nil
}

func (s *sponsorService) GetSponsorByID(ctx context.Context, id int) (*models.Sponsor, error) {
	sponsor, err := s.sponsorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSponsorNotFound) {
			return nil, ErrSponsorNotFound
		}
		return nil, fmt.Errorf("failed to get sponsor by id %d: %w", id, err)
	}
	s.populateLogoURL(sponsor)
	return sponsor, nil
}

func (s *sponsorService) ListSponsors(ctx context.Context, onlyActive bool) ([]models.Sponsor, error) {
	sponsors, err := s.sponsorRepo.List(ctx, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list sponsors: %w", err)
	}
	for i := range sponsors {
		s.populateLogoURL(&sponsors[i])
	}
	return sponsors, nil
}

func (s *sponsorService) UpdateSponsor(ctx context.Context, id int, input SponsorInput) (*models.Sponsor, error) {
	sponsor, err := s.GetSponsorByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		sponsor.Name = name
	}
	if input.Website != nil {
		sponsor.Website = input.Website
	}
	if input.IsActive != nil {
		sponsor.IsActive = *input.IsActive
	}

	if err := s.sponsorRepo.Update(ctx, sponsor); err != nil {
		switch {
		case errors.Is(err, repositories.ErrSponsorNotFound):
			return nil, ErrSponsorNotFound
		case errors.Is(err, repositories.ErrSponsorNameConflict):
			return nil, ErrSponsorNameConflict
		default:
			return nil, fmt.Errorf("failed to update sponsor %d: %w", id, err)
		}
	}
	return sponsor, nil
}

// UploadLogo stores a new logo and removes the replaced object. A failed
// delete of the old logo only leaves an orphan in the bucket, so it is
// logged and swallowed.
func (s *sponsorService) UploadLogo(ctx context.Context, id int, contentType string, file io.Reader) (*models.Sponsor, error) {
	if s.uploader == nil {
		return nil, ErrLogoUploadNotConfigured
	}

	sponsor, err := s.GetSponsorByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ext, err := extensionFromContentType(contentType)
	if err != nil {
		return nil, ErrUnsupportedLogoType
	}

	oldKey := sponsor.LogoKey
	key := fmt.Sprintf("sponsors/%d/logo%s", id, ext)

	if _, err := s.uploader.Upload(ctx, key, contentType, file); err != nil {
		return nil, fmt.Errorf("failed to upload sponsor logo: %w", err)
	}
	if err := s.sponsorRepo.UpdateLogoKey(ctx, id, &key); err != nil {
		return nil, err
	}

	if oldKey != nil && *oldKey != "" && *oldKey != key {
		if err := s.uploader.Delete(ctx, *oldKey); err != nil {
			s.logger.WarnContext(ctx, "failed to delete replaced sponsor logo",
				slog.Int("sponsor_id", id), slog.String("key", *oldKey), slog.Any("error", err))
		}
	}

	sponsor.LogoKey = &key
	sponsor.LogoURL = nil
	s.populateLogoURL(sponsor)
	return sponsor, nil
}

func (s *sponsorService) DeleteSponsor(ctx context.Context, id int) error {
	sponsor, err := s.GetSponsorByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.sponsorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrSponsorNotFound) {
			return ErrSponsorNotFound
		}
		return fmt.Errorf("failed to delete sponsor %d: %w", id, err)
	}

	if sponsor.LogoKey != nil && *sponsor.LogoKey != "" && s.uploader != nil {
		if err := s.uploader.Delete(ctx, *sponsor.LogoKey); err != nil {
			s.logger.WarnContext(ctx, "failed to delete sponsor logo",
				slog.Int("sponsor_id", id), slog.String("key", *sponsor.LogoKey), slog.Any("error", err))
		}
	}
	return nil
}

func extensionFromContentType(contentType string) (string, error) {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	case "image/gif":
		return ".gif", nil
	case "image/webp":
		return ".webp", nil
	case "image/svg+xml":
		return ".svg", nil
	default:
		return "", fmt.Errorf("could not determine file extension from content type %q", contentType)
	}
}
