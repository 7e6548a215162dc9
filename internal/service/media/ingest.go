package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	xerrors "lionscars-service/internal/pkg/errors"

	"go.uber.org/zap"
)

// allowedExtensions is the upload allow-list, matched case-insensitively.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".jfif": true,
}

var segmentStrip = regexp.MustCompile(`[^a-z0-9-_]`)
var whitespaceRun = regexp.MustCompile(`\s+`)

// Ingestor turns an uploaded photo into a published file under a folder
// derived from the vehicle's brand and model. Staged files are removed on
// every failure path, cancellation included.
type Ingestor struct {
	root         string // filesystem root of published images
	scratch      string // staging area, root/tmp
	publicPrefix string // URL prefix of the published tree
	logger       *zap.Logger
}

func NewIngestor(root, publicPrefix string, logger *zap.Logger) *Ingestor {
	return &Ingestor{
		root:         root,
		scratch:      filepath.Join(root, "tmp"),
		publicPrefix: publicPrefix,
		logger:       logger,
	}
}

// NormalizeSegment lowercases a brand or model, collapses whitespace runs to
// a single dash and strips everything outside [a-z0-9-_].
func NormalizeSegment(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = whitespaceRun.ReplaceAllString(s, "-")
	return segmentStrip.ReplaceAllString(s, "")
}

// Ingest validates, stages and publishes one image payload. It returns the
// stable public path of the published file.
func (in *Ingestor) Ingest(ctx context.Context, src io.Reader, originalName, brand, model string) (string, error) {
	// Preconditions come before any file I/O.
	brandNorm := NormalizeSegment(brand)
	modelNorm := NormalizeSegment(model)
	if brandNorm == "" || modelNorm == "" {
		return "", fmt.Errorf("brand and model are required to publish an image: %w", xerrors.ErrValidation)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("file type %q not allowed: %w", ext, xerrors.ErrUnsupportedMedia)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	staged, err := in.stage(ctx, src, filename)
	if err != nil {
		return "", err
	}

	// Cancellation after staging still runs cleanup.
	if err := ctx.Err(); err != nil {
		in.discard(staged)
		return "", err
	}

	folder := brandNorm + "-" + modelNorm
	destDir := filepath.Join(in.root, folder)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		in.discard(staged)
		return "", fmt.Errorf("failed to create destination folder: %w", xerrors.ErrIO)
	}
	if err := os.Rename(staged, filepath.Join(destDir, filename)); err != nil {
		in.discard(staged)
		return "", fmt.Errorf("failed to move image into place: %w", xerrors.ErrIO)
	}

	url := path.Join(in.publicPrefix, folder, filename)
	in.logger.Info("image published",
		zap.String("url", url),
		zap.String("folder", folder),
	)
	return url, nil
}

// stage writes the payload to the scratch area under a timestamp-derived
// name. On any failure the partial file is removed.
func (in *Ingestor) stage(ctx context.Context, src io.Reader, filename string) (string, error) {
	if err := os.MkdirAll(in.scratch, 0o755); err != nil {
		return "", fmt.Errorf("failed to create staging folder: %w", xerrors.ErrIO)
	}

	staged := filepath.Join(in.scratch, filename)
	f, err := os.Create(staged)
	if err != nil {
		return "", fmt.Errorf("failed to stage image: %w", xerrors.ErrIO)
	}

	if _, err := copyContext(ctx, f, src); err != nil {
		f.Close()
		in.discard(staged)
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("failed to write staged image: %w", xerrors.ErrIO)
	}
	if err := f.Close(); err != nil {
		in.discard(staged)
		return "", fmt.Errorf("failed to flush staged image: %w", xerrors.ErrIO)
	}
	return staged, nil
}

func (in *Ingestor) discard(staged string) {
	if err := os.Remove(staged); err != nil && !os.IsNotExist(err) {
		in.logger.Warn("failed to remove staged image", zap.String("path", staged), zap.Error(err))
	}
}

// copyContext copies in chunks, checking for cancellation between them so a
// caller can abort a slow upload mid-stage.
func copyContext(ctx context.Context, dst io.Writer, src io.Reader) (int64, error) {
	buf := make([]byte, 32*1024)
	var written int64
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		n, err := src.Read(buf)
		if n > 0 {
			w, werr := dst.Write(buf[:n])
			written += int64(w)
			if werr != nil {
				return written, werr
			}
		}
		if err == io.EOF {
			return written, nil
		}
		if err != nil {
			return written, err
		}
	}
}
