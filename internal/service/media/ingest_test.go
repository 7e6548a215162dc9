package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	xerrors "lionscars-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNormalizeSegment(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Toyota", "toyota"},
		{"  Land  Cruiser ", "land-cruiser"},
		{"Citroën C4", "citron-c4"},
		{"RAV4 2.0", "rav4-20"},
		{"model_x", "model_x"},
		{"   ", ""},
		{"ñandú", "nand"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeSegment(tc.in), "input %q", tc.in)
	}
}

// countFiles walks root and counts regular files.
func countFiles(t *testing.T, root string) int {
	t.Helper()
	n := 0
	err := filepath.Walk(root, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			n++
		}
		return nil
	})
	require.NoError(t, err)
	return n
}

func TestIngest_PublishesUnderBrandModelFolder(t *testing.T) {
	root := t.TempDir()
	in := NewIngestor(root, "/autoefec", zap.NewNop())

	url, err := in.Ingest(context.Background(), strings.NewReader("fake-jpeg-bytes"), "photo.JPG", "Toyota", "Land Cruiser")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/autoefec/toyota-land-cruiser/"), "got %q", url)
	assert.True(t, strings.HasSuffix(url, ".jpg"), "extension is lowercased: %q", url)

	rel := strings.TrimPrefix(url, "/autoefec/")
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.Equal(t, "fake-jpeg-bytes", string(data))

	// Nothing left behind in staging.
	entries, err := os.ReadDir(filepath.Join(root, "tmp"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestIngest_RejectsUnknownExtensionBeforeIO(t *testing.T) {
	root := t.TempDir()
	in := NewIngestor(root, "/autoefec", zap.NewNop())

	_, err := in.Ingest(context.Background(), strings.NewReader("GIF89a"), "anim.gif", "Toyota", "Corolla")
	assert.ErrorIs(t, err, xerrors.ErrUnsupportedMedia)

	// The rejection happens before any file is written.
	assert.Zero(t, countFiles(t, root))
}

func TestIngest_RequiresBrandAndModel(t *testing.T) {
	root := t.TempDir()
	in := NewIngestor(root, "/autoefec", zap.NewNop())

	_, err := in.Ingest(context.Background(), strings.NewReader("x"), "a.jpg", "  ", "Corolla")
	assert.ErrorIs(t, err, xerrors.ErrValidation)

	// A name that normalizes to nothing is as bad as an empty one.
	_, err = in.Ingest(context.Background(), strings.NewReader("x"), "a.jpg", "Toyota", "¡¡¡")
	assert.ErrorIs(t, err, xerrors.ErrValidation)

	assert.Zero(t, countFiles(t, root))
}

func TestIngest_AllowedExtensionsCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	in := NewIngestor(root, "/autoefec", zap.NewNop())

	for _, name := range []string{"a.jpg", "b.JPEG", "c.png", "d.WebP", "e.jfif"} {
		_, err := in.Ingest(context.Background(), strings.NewReader("x"), name, "Kia", "Rio")
		assert.NoError(t, err, "extension of %q should be accepted", name)
	}
}

func TestIngest_MoveFailureCleansStagedFile(t *testing.T) {
	root := t.TempDir()
	in := NewIngestor(root, "/autoefec", zap.NewNop())

	// A regular file where the destination folder should go makes MkdirAll fail.
	require.NoError(t, os.WriteFile(filepath.Join(root, "kia-rio"), []byte("blocker"), 0o644))

	_, err := in.Ingest(context.Background(), strings.NewReader("payload"), "a.jpg", "Kia", "Rio")
	assert.ErrorIs(t, err, xerrors.ErrIO)

	// The staged copy was removed on failure.
	entries, readErr := os.ReadDir(filepath.Join(root, "tmp"))
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestIngest_CancelledContext(t *testing.T) {
	root := t.TempDir()
	in := NewIngestor(root, "/autoefec", zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := in.Ingest(ctx, strings.NewReader("payload"), "a.jpg", "Kia", "Rio")
	assert.ErrorIs(t, err, context.Canceled)

	// No staged or published file survives a cancelled ingest.
	assert.Zero(t, countFiles(t, root))
}
