package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var Format = struct {
	TOML string
	YAML string
	JSON string
}{
	TOML: "toml",
	YAML: "yaml",
	JSON: "json",
}

// fileCatalog is the on-disk shape of a substitute catalog:
//
//	[[days]]
//	day = "Monday"
//	...
//	[[days.exercises]]
//	name = "Bench Press"
type fileCatalog struct {
	Days []WorkoutDay `json:"days" toml:"days" yaml:"days"`
}

// Load reads a catalog file, picking the decoder by the file extension.
func Load(path string) (*Catalog, error) {
	format, err := formatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	c, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("catalog [%s]: %w", path, err)
	}

	log.Debugf("catalog loaded from [%s]: %d days, %d exercises", path, len(c.days), c.ExercisesCount())
	return c, nil
}

func Decode(data []byte, format string) (*Catalog, error) {
	var fc fileCatalog
	switch format {
	case Format.TOML:
		if err := toml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case Format.YAML:
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case Format.JSON:
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown catalog format: %s", format)
	}

	if len(fc.Days) == 0 {
		return nil, fmt.Errorf("%w: no days", ErrInvalidCatalog)
	}

	return New(fc.Days)
}

func formatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return Format.TOML, nil
	case ".yaml", ".yml":
		return Format.YAML, nil
	case ".json":
		return Format.JSON, nil
	default:
		return "", fmt.Errorf("unsupported catalog file extension: %s", path)
	}
}
