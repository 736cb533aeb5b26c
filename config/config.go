package config

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pablor21/daedoc/logger"
	"gopkg.in/yaml.v3"
)

//go:embed config.yml
var defaultConfigFile embed.FS

const (
	DefaultIndent        = "\t"
	DefaultLanguage      = "dae"
	DefaultAdmonition    = "function"
	DefaultCommentMarker = "///"
	DefaultTerminator    = "{};"
)

type Config struct {
	Render   RenderConfig     `json:"render" yaml:"render" toml:"render"`
	Parsing  ParsingConfig    `json:"parsing" yaml:"parsing" toml:"parsing"`
	LogLevel *logger.LogLevel `json:"logLevel" yaml:"logLevel" toml:"logLevel"`
}

// RenderConfig controls the Markdown template
type RenderConfig struct {
	Indent          string `json:"indent" yaml:"indent" toml:"indent"`
	Language        string `json:"language" yaml:"language" toml:"language"`
	Admonition      string `json:"admonition" yaml:"admonition" toml:"admonition"`
	ReturnLeadIn    string `json:"return_lead_in" yaml:"return_lead_in" toml:"return_lead_in"`
	SignatureParams bool   `json:"signature_params" yaml:"signature_params" toml:"signature_params"`
}

// ParsingConfig holds the fixed markers of the block grammar
type ParsingConfig struct {
	CommentMarker string `json:"comment_marker" yaml:"comment_marker" toml:"comment_marker"`
	Terminator    string `json:"terminator" yaml:"terminator" toml:"terminator"`
}

func NewDefaultConfig() *Config {
	// parse default config from embedded file
	config, err := LoadConfigFromFS(defaultConfigFile, "config.yml")
	if err != nil {
		panic("failed to load default config: " + err.Error())
	}
	return config
}

// Normalize fills every unset field with its default
func (c *Config) Normalize() {
	if c.Render.Indent == "" {
		c.Render.Indent = DefaultIndent
	}
	if c.Render.Language == "" {
		c.Render.Language = DefaultLanguage
	}
	if c.Render.Admonition == "" {
		c.Render.Admonition = DefaultAdmonition
	}
	if c.Parsing.CommentMarker == "" {
		c.Parsing.CommentMarker = DefaultCommentMarker
	}
	if c.Parsing.Terminator == "" {
		c.Parsing.Terminator = DefaultTerminator
	}
	if c.LogLevel == nil {
		level := logger.LogLevelInfo
		c.LogLevel = &level
	}
}

// Validate rejects configurations the parser cannot work with
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Parsing.CommentMarker) != c.Parsing.CommentMarker {
		return fmt.Errorf("comment_marker %q must not contain surrounding whitespace", c.Parsing.CommentMarker)
	}
	if strings.TrimSpace(c.Parsing.Terminator) != c.Parsing.Terminator {
		return fmt.Errorf("terminator %q must not contain surrounding whitespace", c.Parsing.Terminator)
	}
	if strings.ContainsAny(c.Render.Language, " \t\n`") {
		return fmt.Errorf("language %q must be a single word", c.Render.Language)
	}
	if c.LogLevel != nil {
		if _, err := logger.ParseLogLevel(string(*c.LogLevel)); err != nil {
			return err
		}
	}
	return nil
}

func LoadConfigFromFS(fs embed.FS, path string) (*Config, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadConfigFromYAML(data)
}

// LoadConfigFile loads a config file, picking the decoder by extension
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var config *Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		config, err = LoadConfigFromYAML(data)
	case ".json":
		config, err = LoadConfigFromJSON(data)
	case ".toml":
		config, err = LoadConfigFromTOML(data)
	default:
		return nil, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return config, nil
}

func LoadConfigFromYAML(data []byte) (*Config, error) {
	var config Config
	err := yamlUnmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	return finish(&config)
}

func LoadConfigFromJSON(data []byte) (*Config, error) {
	var config Config
	err := jsonUnmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	return finish(&config)
}

func LoadConfigFromTOML(data []byte) (*Config, error) {
	var config Config
	err := tomlUnmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	return finish(&config)
}

func finish(config *Config) (*Config, error) {
	config.Normalize()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func yamlUnmarshal(data []byte, v interface{}) error {
	return yaml.Unmarshal(data, v)
}

func jsonUnmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func tomlUnmarshal(data []byte, v interface{}) error {
	return toml.Unmarshal(data, v)
}
