package server

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// sanitizeFilename reduces a client-supplied name to a safe base name: directory
// parts are dropped, characters outside [A-Za-z0-9._-] become '_' and leading dots
// are stripped. It returns "" when nothing usable remains.
func sanitizeFilename(name string) string {
	// Browsers on Windows may send the full client path.
	name = name[strings.LastIndexAny(name, `/\`)+1:]

	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}

	return strings.TrimLeft(sb.String(), ".")
}

// uniqueUploadName prefixes a sanitized name with a timestamp and a short random ID.
func uniqueUploadName(now time.Time, name string) string {
	return fmt.Sprintf("%s_%s_%s", now.Format("20060102_150405"), uuid.NewString()[:8], name)
}

// saveUpload copies the multipart file into dir under a unique name and returns its path.
// The caller must remove the file.
func saveUpload(dir string, header *multipart.FileHeader, name string) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload %s: %w", name, err)
	}
	defer src.Close()

	path := filepath.Join(dir, uniqueUploadName(time.Now(), name))
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to save upload %s: %w", name, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to save upload %s: %w", name, err)
	}

	return path, nil
}
