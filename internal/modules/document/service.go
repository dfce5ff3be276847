// README: Driver document uploads: size/type checks, storage, profile record.
package document

import (
	"context"
	"errors"
	"fmt"

	"drivehire/internal/modules/profile"
	"drivehire/internal/types"
)

// MaxUploadBytes is the ceiling for a single document file.
const MaxUploadBytes = 5 * 1024 * 1024

var (
	ErrTooLarge        = errors.New("document: file exceeds 5 MB limit")
	ErrBadRequest      = errors.New("document: bad request")
	ErrUnsupportedType = errors.New("document: unsupported content type")
)

// allowedContentTypes covers scans and photos of identity documents.
var allowedContentTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"application/pdf": ".pdf",
}

// Uploader stores a file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// ProfileRecorder is the slice of the profile service uploads need.
type ProfileRecorder interface {
	RecordDocument(ctx context.Context, id types.ID, doc profile.DocType, url string) error
}

type Service struct {
	uploader Uploader
	profiles ProfileRecorder
}

func NewService(uploader Uploader, profiles ProfileRecorder) *Service {
	return &Service{uploader: uploader, profiles: profiles}
}

type UploadCommand struct {
	UserID      types.ID
	DocType     profile.DocType
	ContentType string
	Data        []byte
}

// Upload validates, stores the file, and records the URL on the profile.
// The size check runs before anything touches the network.
func (s *Service) Upload(ctx context.Context, cmd UploadCommand) (string, error) {
	if cmd.UserID == "" || !cmd.DocType.Valid() || len(cmd.Data) == 0 {
		return "", ErrBadRequest
	}
	if len(cmd.Data) > MaxUploadBytes {
		return "", ErrTooLarge
	}
	ext, ok := allowedContentTypes[cmd.ContentType]
	if !ok {
		return "", ErrUnsupportedType
	}

	key := fmt.Sprintf("documents/%s/%s-%s%s", cmd.UserID, cmd.DocType, newObjectID(), ext)
	url, err := s.uploader.Upload(ctx, key, cmd.ContentType, cmd.Data)
	if err != nil {
		return "", err
	}
	if err := s.profiles.RecordDocument(ctx, cmd.UserID, cmd.DocType, url); err != nil {
		return "", err
	}
	return url, nil
}
