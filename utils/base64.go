package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrBadImage = errors.New("invalid image data")

var imageExts = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// SaveDataURL decodes a data:image/...;base64, URL and writes it to
// folder/<name>.<ext>. Returns the file name.
func SaveDataURL(dataURL, folder, name string) (string, error) {
	header, payload, ok := strings.Cut(dataURL, ",")
	if !ok || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return "", ErrBadImage
	}
	mime := strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
	ext, ok := imageExts[mime]
	if !ok {
		return "", fmt.Errorf("%w: unsupported type %q", ErrBadImage, mime)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadImage, err)
	}

	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("%s.%s", name, ext)
	if err := os.WriteFile(filepath.Join(folder, filename), data, 0o644); err != nil {
		return "", err
	}
	return filename, nil
}
