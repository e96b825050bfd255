package storage

import (
	"context"
	"mime/multipart"
)

// Storage persists uploaded images under deterministic per-entity names and
// returns the value stored on the entity: a public-directory path for the
// local driver, an absolute URL for S3.
type Storage interface {
	SaveAvatar(ctx context.Context, file *multipart.FileHeader, userID string) (string, error)
	SaveRecipeThumb(ctx context.Context, file *multipart.FileHeader, recipeID string) (string, error)
}

// New picks the configured driver. Anything other than "s3" falls back to
// the local public directory.
func New(driver, publicDir string) Storage {
	if driver == "s3" {
		return NewAwsS3()
	}
	return NewLocalStorage(publicDir)
}
