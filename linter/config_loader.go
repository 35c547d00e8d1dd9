package linter

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/speakeasy-api/jsxlint/errors"
	jsValidator "github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// ConfigFormat identifies the syntax of a configuration document
type ConfigFormat string

const (
	ConfigFormatYAML ConfigFormat = "yaml"
	ConfigFormatJSON ConfigFormat = "json"
	ConfigFormatTOML ConfigFormat = "toml"
)

//go:embed config_schema.json
var configSchemaJSON []byte

var (
	configSchemaOnce sync.Once
	configSchema     *jsValidator.Schema
	defaultPrinter   = message.NewPrinter(language.English)
)

func compiledConfigSchema() *jsValidator.Schema {
	configSchemaOnce.Do(func() {
		doc, err := jsValidator.UnmarshalJSON(bytes.NewReader(configSchemaJSON))
		if err != nil {
			panic(fmt.Sprintf("failed to unmarshal config schema: %v", err))
		}

		c := jsValidator.NewCompiler()
		if err := c.AddResource("config_schema.json", doc); err != nil {
			panic(fmt.Sprintf("failed to add config schema resource: %v", err))
		}
		configSchema = c.MustCompile("config_schema.json")
	})
	return configSchema
}

// LoadConfig loads lint configuration from a reader in the given format.
// JSON documents are read with the YAML decoder, which accepts them unchanged.
func LoadConfig(r io.Reader, format ConfigFormat) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var (
		raw any
		cfg Config
	)
	switch format {
	case ConfigFormatTOML:
		var doc map[string]any
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, errors.ErrInvalidConfig.Wrap(err)
		}
		if doc == nil {
			doc = map[string]any{}
		}
		raw = doc
	case ConfigFormatYAML, ConfigFormatJSON, "":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.ErrInvalidConfig.Wrap(err)
		}
	default:
		return nil, errors.ErrInvalidConfig.Wrapf("unsupported config format %q", format)
	}

	if raw == nil {
		raw = map[string]any{}
	}
	if err := validateConfigDocument(raw); err != nil {
		return nil, err
	}

	if format == ConfigFormatTOML {
		_, err = toml.Decode(string(data), &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, errors.ErrInvalidConfig.Wrap(err)
	}

	cfg.setDefaults()
	return &cfg, nil
}

// LoadConfigFromFile loads lint configuration from a file, choosing the format by extension.
func LoadConfigFromFile(path string) (*Config, error) {
	format, err := ConfigFormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg, err := LoadConfig(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ConfigFormatFromPath returns the config format implied by the file extension.
func ConfigFormatFromPath(path string) (ConfigFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ConfigFormatYAML, nil
	case ".json":
		return ConfigFormatJSON, nil
	case ".toml":
		return ConfigFormatTOML, nil
	default:
		return "", errors.ErrInvalidConfig.Wrapf("cannot infer config format from %q", path)
	}
}

func validateConfigDocument(raw any) error {
	// Round trip through JSON so YAML and TOML scalars land on the JSON data model.
	data, err := json.Marshal(raw)
	if err != nil {
		return errors.ErrInvalidConfig.Wrap(err)
	}
	inst, err := jsValidator.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return errors.ErrInvalidConfig.Wrap(err)
	}

	err = compiledConfigSchema().Validate(inst)
	if err == nil {
		return nil
	}

	var vErr *jsValidator.ValidationError
	if !errors.As(err, &vErr) {
		return errors.ErrInvalidConfig.Wrap(err)
	}

	var msgs []string
	collectSchemaErrors(vErr, &msgs)
	sort.Strings(msgs)
	return errors.ErrInvalidConfig.Wrapf("%s", strings.Join(msgs, "; "))
}

func collectSchemaErrors(vErr *jsValidator.ValidationError, msgs *[]string) {
	if len(vErr.Causes) == 0 {
		*msgs = append(*msgs, fmt.Sprintf("/%s: %s", strings.Join(vErr.InstanceLocation, "/"), vErr.ErrorKind.LocalizedString(defaultPrinter)))
		return
	}
	for _, cause := range vErr.Causes {
		collectSchemaErrors(cause, msgs)
	}
}

func (c *Config) setDefaults() {
	if c.Plugins == nil {
		c.Plugins = make(Plugins)
	}
	if c.Settings == nil {
		c.Settings = make(Settings)
	}
	if c.Rules == nil {
		c.Rules = make(map[string]RuleConfig)
	}
	if c.Categories == nil {
		c.Categories = make(map[string]CategoryConfig)
	}
	if c.OutputFormat == "" {
		c.OutputFormat = OutputFormatText
	}
}
