package sourcefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Azhovan/envkit"
	"github.com/Azhovan/envkit/internal/normalize"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedValue is returned when a file holds a list or other non-scalar leaf.
var ErrUnsupportedValue = errors.New("sourcefile: unsupported value")

// Options configures file source behavior.
type Options struct {
	// Format: "yaml", "json", "toml", or "env". Auto-detected from the file name if empty.
	Format string

	// Required: if true, a missing file is an error. Default: false (empty source).
	Required bool
}

type fileSource struct {
	path string
	vars map[string]string
}

// New reads and parses the file once and returns a source over its values.
func New(path string, opts Options) (envkit.Source, error) {
	vars, err := load(path, opts)
	if err != nil {
		return nil, err
	}
	return &fileSource{path: path, vars: vars}, nil
}

// Lookup returns the stringified value stored under key.
func (f *fileSource) Lookup(key string) (string, bool) {
	v, ok := f.vars[key]
	return v, ok
}

// Name returns a human-readable identifier for this source.
func (f *fileSource) Name() string {
	return "file:" + filepath.Base(f.path)
}

func load(path string, opts Options) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if opts.Required {
				return nil, fmt.Errorf("required file not found: %s: %w", path, err)
			}
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	format := opts.Format
	if format == "" {
		format = inferFormat(path)
	}

	if format == "env" {
		vars, err := godotenv.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parse env file %s: %w", path, err)
		}
		return vars, nil
	}

	var raw map[string]any
	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse YAML file %s: %w", path, err)
		}
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parse JSON file %s: %w", path, err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse TOML file %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported file format: %q (supported: yaml, json, toml, env)", format)
	}

	vars := make(map[string]string)
	if err := flatten("", raw, vars); err != nil {
		return nil, fmt.Errorf("file %s: %w", path, err)
	}
	return vars, nil
}

// flatten recursively flattens nested maps to dot-separated keys with string values.
// Null leaves are skipped so the key reads as absent.
func flatten(prefix string, value any, result map[string]string) error {
	switch v := value.(type) {
	case map[string]any:
		for key, val := range v {
			if err := flatten(normalize.JoinPath(prefix, key), val, result); err != nil {
				return err
			}
		}
	case map[any]any:
		for key, val := range v {
			keyStr, ok := key.(string)
			if !ok {
				keyStr = fmt.Sprint(key)
			}
			if err := flatten(normalize.JoinPath(prefix, keyStr), val, result); err != nil {
				return err
			}
		}
	case nil:
	default:
		if prefix == "" {
			return nil
		}
		s, err := stringify(v)
		if err != nil {
			return fmt.Errorf("key %s: %w", prefix, err)
		}
		result[prefix] = s
	}
	return nil
}

func stringify(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case json.Number:
		return x.String(), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case time.Time:
		return x.Format(time.RFC3339Nano), nil
	case []any:
		return "", fmt.Errorf("%w: list", ErrUnsupportedValue)
	case fmt.Stringer:
		// toml.LocalDate, toml.LocalTime, toml.LocalDateTime
		return x.String(), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

func inferFormat(path string) string {
	base := strings.ToLower(filepath.Base(path))
	if base == ".env" || strings.HasPrefix(base, ".env.") {
		return "env"
	}
	switch filepath.Ext(base) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	case ".env":
		return "env"
	default:
		return ""
	}
}
