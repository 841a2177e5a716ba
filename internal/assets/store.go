package assets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/2beens/fitguide/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrImageNotFound    = errors.New("image not found")
	ErrInvalidImageName = errors.New("invalid image name")
)

// ImageExtensions are tried in order when resolving an image reference.
var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// DiskStore resolves catalog image references ("benchpress") to files in a
// single directory. The directory is indexed once, at construction.
type DiskStore struct {
	rootPath string
	index    map[string]string
}

func NewDiskStore(rootPath string) (*DiskStore, error) {
	if rootPath == "" {
		return nil, errors.New("images root path cannot be empty")
	}

	entries, err := os.ReadDir(rootPath)
	if err != nil {
		return nil, fmt.Errorf("read images dir: %w", err)
	}

	index := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !isImageExt(ext) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		// keep the first extension in ImageExtensions order
		if existing, ok := index[name]; ok && extRank(filepath.Ext(existing)) <= extRank(ext) {
			continue
		}
		index[name] = filepath.Join(rootPath, e.Name())
	}

	log.Debugf("disk store: indexed %d images in [%s]", len(index), rootPath)

	return &DiskStore{
		rootPath: rootPath,
		index:    index,
	}, nil
}

// Get returns the path of the file backing the image reference.
func (ds *DiskStore) Get(ctx context.Context, name string) (_ string, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "diskStore.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("image.name", name))

	if err := ValidateName(name); err != nil {
		return "", err
	}

	path, ok := ds.index[name]
	if !ok {
		return "", fmt.Errorf("%s: %w", name, ErrImageNotFound)
	}
	return path, nil
}

func (ds *DiskStore) Count() int {
	return len(ds.index)
}

// ValidateName rejects anything that is not a plain file stem.
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidImageName, name)
	}
	return nil
}

func isImageExt(ext string) bool {
	return extRank(ext) < len(ImageExtensions)
}

func extRank(ext string) int {
	ext = strings.ToLower(ext)
	for i, e := range ImageExtensions {
		if e == ext {
			return i
		}
	}
	return len(ImageExtensions)
}
