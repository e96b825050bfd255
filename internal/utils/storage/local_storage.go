package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

type localStorage struct {
	publicDir string
	tempDir   string
}

func NewLocalStorage(publicDir string) Storage {
	if publicDir == "" {
		publicDir = "./public"
	}
	return &localStorage{
		publicDir: publicDir,
		tempDir:   filepath.Join(publicDir, "..", "temp"),
	}
}

// SaveAvatar stores the upload as /avatars/<userId>_<ts><ext>. Re-uploads
// get a fresh timestamped name so stale CDN caches never mask the change.
func (s *localStorage) SaveAvatar(_ context.Context, file *multipart.FileHeader, userID string) (string, error) {
	name := fmt.Sprintf("%s_%d%s", userID, time.Now().UnixMilli(), extOf(file))
	if err := s.move(file, filepath.Join(s.publicDir, "avatars"), name); err != nil {
		return "", err
	}
	return "/avatars/" + name, nil
}

// SaveRecipeThumb stores the upload as /recipes/<recipeId><ext>, replacing
// any previous thumbnail for the recipe. Concurrent uploads for the same
// recipe race on the rename with last-writer-wins.
func (s *localStorage) SaveRecipeThumb(_ context.Context, file *multipart.FileHeader, recipeID string) (string, error) {
	name := recipeID + extOf(file)
	if err := s.move(file, filepath.Join(s.publicDir, "recipes"), name); err != nil {
		return "", err
	}
	return "/recipes/" + name, nil
}

// move spools the upload into a temp file first and renames it into place,
// so a half-written upload is never visible under the public directory.
func (s *localStorage) move(file *multipart.FileHeader, dir, name string) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}
	if err := os.MkdirAll(s.tempDir, os.ModePerm); err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	tempPath := filepath.Join(s.tempDir, uuid.New().String())
	dst, err := os.Create(tempPath)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(tempPath)
		return err
	}
	if err := dst.Close(); err != nil {
		os.Remove(tempPath)
		return err
	}

	destPath := filepath.Join(dir, name)
	if err := os.Rename(tempPath, destPath); err != nil {
		os.Remove(tempPath)
		return err
	}
	return nil
}

func extOf(file *multipart.FileHeader) string {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	return ext
}
