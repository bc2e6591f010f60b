package upload

import (
	"context"
	"fmt"
	"strings"

	"picdrop/internal/hosting"
	"picdrop/internal/processor"
)

// MaxFileSize caps the raw upload before any decoding happens.
const MaxFileSize = 10 * 1024 * 1024 // 10 MB

// publisher is the outbound half of the pipeline: it pushes encoded bytes to
// the hosting API and returns the public URL.
type publisher interface {
	Upload(ctx context.Context, in hosting.UploadInput) (string, error)
}

// Service runs the upload pipeline: transform -> publish -> record.
// It holds no state across requests; everything shared lives in the database.
type Service struct {
	repo      Repository
	publisher publisher
}

func NewService(repo Repository, p publisher) *Service {
	return &Service{repo: repo, publisher: p}
}

// UploadInput is one client submission.
type UploadInput struct {
	Data         []byte
	OriginalName string
	Format       string // "webp" | "png" | "jpeg" | "jpg"; anything else means webp
	CustomName   string // optional title override
}

// Upload transforms the image, publishes it, and records the result.
// Exactly one row is created, and only after the hosting API accepted the
// upload; every failure before that point leaves storage untouched.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*Image, error) {
	if len(in.Data) == 0 {
		return nil, ErrEmptyFile
	}
	if len(in.Data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	result, err := processor.Process(in.Data, processor.ParseFormat(in.Format))
	if err != nil {
		return nil, err
	}

	title := deriveTitle(in.CustomName, in.OriginalName)
	url, err := s.publisher.Upload(ctx, hosting.UploadInput{
		Data:     result.Data,
		MIME:     result.MIME,
		Filename: title + "." + result.Ext,
		Title:    title,
	})
	if err != nil {
		return nil, err
	}

	// The client may have gone away while the publish was in flight. Once the
	// request is aborted the failure has already been reported, so no row may
	// be created for it.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img := &Image{OriginalName: in.OriginalName, URL: url}
	if err := s.repo.Create(ctx, img); err != nil {
		return nil, fmt.Errorf("failed to save upload record: %w", err)
	}
	return img, nil
}

// List returns the full history, most recent first.
func (s *Service) List(ctx context.Context) ([]Image, error) {
	return s.repo.List(ctx)
}

// Delete removes one record by id. Deleting an id that is already gone
// succeeds: the end state is the same either way.
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// deriveTitle picks the uploaded image's title: a non-empty custom name wins
// verbatim; otherwise the original filename with its trailing extension
// stripped, or the full name when it has no extension.
func deriveTitle(custom, original string) string {
	if custom != "" {
		return custom
	}
	if idx := strings.LastIndex(original, "."); idx >= 0 {
		return original[:idx]
	}
	return original
}
