package services

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"screamy/internal/repository"
	screamy_errors "screamy/pkg/errors"

	"github.com/google/uuid"
)

// ObjectStorage is the slice of the blob store the upload pipeline needs.
type ObjectStorage interface {
	UploadFile(ctx context.Context, key, filePath, contentType string) error
	FileURL(key string) string
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

type UploadService struct {
	userRepo repository.UserRepository
	storage  ObjectStorage
}

func NewUploadService(userRepo repository.UserRepository, storage ObjectStorage) *UploadService {
	return &UploadService{userRepo: userRepo, storage: storage}
}

// UploadProfileImage runs the upload pipeline: validate the MIME type
// before any byte is buffered, stream the file to a temp path under a
// collision-resistant name that keeps the original extension, push it to
// the blob store tagged with the content type, then merge the derived
// public URL into the caller's profile. The temp file is removed when the
// request finishes, success or not.
func (s *UploadService) UploadProfileImage(ctx context.Context, handle, filename, contentType string, file io.Reader) (string, error) {
	if !allowedImageTypes[contentType] {
		return "", screamy_errors.ErrWrongFileType
	}

	key := randomImageName(filename)
	tmpPath := filepath.Join(os.TempDir(), key)

	tmp, err := os.Create(tmpPath)
	if err != nil {
		return "", err
	}
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	if err := s.storage.UploadFile(ctx, key, tmpPath, contentType); err != nil {
		return "", err
	}

	imageURL := s.storage.FileURL(key)
	if err := s.userRepo.UpdateImageURL(ctx, handle, imageURL); err != nil {
		return "", err
	}

	return imageURL, nil
}

func randomImageName(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return uuid.New().String() + ext
}
