package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const defaultExtension = ".jpg"

// FileStore persists materialized images.
type FileStore interface {
	// Write stores data under name and returns the resulting path.
	Write(name string, data []byte) (string, error)
	Exists(path string) bool
}

type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Dir() string {
	return s.dir
}

func (s *DiskStore) Write(name string, data []byte) (string, error) {
	clean, err := SanitizeName(name)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, clean)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", clean, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("rename %s: %w", clean, err)
	}
	return path, nil
}

func (s *DiskStore) Exists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// SanitizeName rejects names that would escape the store directory.
func SanitizeName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty file name")
	}
	if filepath.IsAbs(name) || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	return name, nil
}

// DetectExtension sniffs the image format from its magic bytes.
// Anything that is not a recognized image gets .jpg.
func DetectExtension(data []byte) string {
	mtype := mimetype.Detect(data)
	for m := mtype; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "image/") && m.Extension() != "" {
			return normalizeExtension(m.Extension())
		}
	}
	return defaultExtension
}

func normalizeExtension(ext string) string {
	switch ext {
	case ".jpeg":
		return ".jpg"
	case ".tiff":
		return ".tif"
	}
	return ext
}

// ImageFileName builds {product}[_{variant}]_{id}{ext}.
func ImageFileName(productCode, variantCode string, id int64, ext string) string {
	var b strings.Builder
	b.WriteString(safeSegment(productCode))
	if variantCode != "" {
		b.WriteByte('_')
		b.WriteString(safeSegment(variantCode))
	}
	fmt.Fprintf(&b, "_%d%s", id, ext)
	return b.String()
}

// safeSegment keeps product codes usable as a single path element.
func safeSegment(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '-'
		}
		return r
	}, strings.ReplaceAll(s, "..", "-"))
}
