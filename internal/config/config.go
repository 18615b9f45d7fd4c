package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"glossary-extractor/internal/matcher"
	"glossary-extractor/internal/render"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalid marks a configuration value outside its accepted set.
var ErrInvalid = errors.New("invalid configuration")

// Accepted option values.
var (
	OutputFormats   = render.Formats()
	VerbosityLevels = []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}
	Languages       = []string{"en", "nl"}
	Matchers        = matcher.Strategies
)

// Config holds the options of one extraction run.
type Config struct {
	InputPath    string
	DictPaths    []string
	OutputFormat string
	OutputFile   string
	LogFile      string
	Verbosity    string
	Language     string
	Workers      int
	Matcher      string
}

// File is the on-disk configuration layout, TOML or YAML.
type File struct {
	Dictionaries []string `toml:"dictionaries" yaml:"dictionaries"`
	OutputFormat string   `toml:"output_format" yaml:"output_format"`
	OutputFile   string   `toml:"output_file" yaml:"output_file"`
	LogFile      string   `toml:"log_file" yaml:"log_file"`
	Verbosity    string   `toml:"verbosity" yaml:"verbosity"`
	Language     string   `toml:"language" yaml:"language"`
	Workers      int      `toml:"workers" yaml:"workers"`
	Matcher      string   `toml:"matcher" yaml:"matcher"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		OutputFormat: "docx",
		Verbosity:    "INFO",
		Language:     "en",
		Workers:      1,
		Matcher:      "scan",
	}
}

// Load builds a Config from defaults, the optional config file and the
// environment, in increasing precedence. A .env file in the working
// directory is loaded into the environment first, if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		f, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		cfg.apply(f)
	}
	cfg.applyEnv()
	return cfg, nil
}

// ReadFile parses a .toml, .yaml or .yml configuration file.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &f)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("%w: config file must be .toml, .yaml or .yml: %s", ErrInvalid, path)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &f, nil
}

func (c *Config) apply(f *File) {
	if len(f.Dictionaries) > 0 {
		c.DictPaths = f.Dictionaries
	}
	setString(&c.OutputFormat, f.OutputFormat)
	setString(&c.OutputFile, f.OutputFile)
	setString(&c.LogFile, f.LogFile)
	setString(&c.Verbosity, f.Verbosity)
	setString(&c.Language, f.Language)
	setString(&c.Matcher, f.Matcher)
	if f.Workers != 0 {
		c.Workers = f.Workers
	}
}

func (c *Config) applyEnv() {
	if v := getEnv("GLOSSARY_DICTIONARIES", ""); v != "" {
		c.DictPaths = SplitList(v)
	}
	c.OutputFormat = getEnv("GLOSSARY_OUTPUT_FORMAT", c.OutputFormat)
	c.OutputFile = getEnv("GLOSSARY_OUTPUT_FILE", c.OutputFile)
	c.LogFile = getEnv("GLOSSARY_LOG_FILE", c.LogFile)
	c.Verbosity = getEnv("GLOSSARY_VERBOSITY", c.Verbosity)
	c.Language = getEnv("GLOSSARY_LANGUAGE", c.Language)
	c.Matcher = getEnv("GLOSSARY_MATCHER", c.Matcher)
	c.Workers = getEnvInt("GLOSSARY_WORKERS", c.Workers)
}

// Normalize canonicalises the case of enumerated options.
func (c *Config) Normalize() {
	c.OutputFormat = strings.ToLower(strings.TrimSpace(c.OutputFormat))
	c.Verbosity = strings.ToUpper(strings.TrimSpace(c.Verbosity))
	c.Matcher = strings.ToLower(strings.TrimSpace(c.Matcher))
	c.Language = strings.TrimSpace(c.Language)
}

// Validate checks that the run can start.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("%w: input path is required", ErrInvalid)
	}
	if len(c.DictPaths) == 0 {
		return fmt.Errorf("%w: at least one dictionary path is required", ErrInvalid)
	}
	if !slices.Contains(OutputFormats, c.OutputFormat) {
		return fmt.Errorf("%w: output format %q (want one of %s)", ErrInvalid, c.OutputFormat, strings.Join(OutputFormats, ", "))
	}
	if !slices.Contains(VerbosityLevels, c.Verbosity) {
		return fmt.Errorf("%w: verbosity %q (want one of %s)", ErrInvalid, c.Verbosity, strings.Join(VerbosityLevels, ", "))
	}
	if !slices.Contains(Matchers, c.Matcher) {
		return fmt.Errorf("%w: matcher %q (want one of %s)", ErrInvalid, c.Matcher, strings.Join(Matchers, ", "))
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalid, c.Workers)
	}
	return nil
}

// ResolvedOutputFile returns the output path, defaulting to output.<format>.
func (c *Config) ResolvedOutputFile() string {
	if c.OutputFile != "" {
		return c.OutputFile
	}
	return render.DefaultOutputPath(render.Format(strings.ToLower(strings.TrimSpace(c.OutputFormat))))
}

// AlsoSeePhrase returns the connective phrase placed before references.
// Unrecognised languages get the English phrase.
func AlsoSeePhrase(language string) string {
	if language == "nl" {
		return "Zie ook:"
	}
	return "Also see:"
}

// KnownLanguage reports whether language has its own phrase.
func KnownLanguage(language string) bool {
	return slices.Contains(Languages, language)
}

// SplitList splits a comma separated list, trimming blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
