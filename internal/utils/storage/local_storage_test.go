package storage

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["file"][0]
}

func TestSaveAvatar(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStorage(filepath.Join(dir, "public"))

	path, err := store.SaveAvatar(context.Background(), uploadHeader(t, "me.PNG", "png-bytes"), "u1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "/avatars/u1_"), "unexpected path %s", path)
	assert.True(t, strings.HasSuffix(path, ".png"), "unexpected path %s", path)

	data, err := os.ReadFile(filepath.Join(dir, "public", filepath.FromSlash(path[1:])))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestSaveRecipeThumbReplaces(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStorage(filepath.Join(dir, "public"))

	path, err := store.SaveRecipeThumb(context.Background(), uploadHeader(t, "first.jpg", "first"), "r1")
	require.NoError(t, err)
	assert.Equal(t, "/recipes/r1.jpg", path)

	path, err = store.SaveRecipeThumb(context.Background(), uploadHeader(t, "second.jpg", "second"), "r1")
	require.NoError(t, err)
	assert.Equal(t, "/recipes/r1.jpg", path)

	data, err := os.ReadFile(filepath.Join(dir, "public", "recipes", "r1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestSaveRecipeThumbDefaultExtension(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStorage(filepath.Join(dir, "public"))

	path, err := store.SaveRecipeThumb(context.Background(), uploadHeader(t, "noext", "bytes"), "r2")
	require.NoError(t, err)
	assert.Equal(t, "/recipes/r2.jpg", path)
}
