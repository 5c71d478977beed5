package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"gopkg.in/yaml.v3"
)

// Loader reads the pipeline configuration file
type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads, defaults and validates the configuration. An empty or missing
// path yields the defaults.
func (l *Loader) Load() (*PipelineConfig, error) {
	if l.path == "" {
		return Defaults(), nil
	}

	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		slog.Warn("Pipeline config not found, using defaults", "path", l.path)
		return Defaults(), nil
	}

	config, err := l.loadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", l.path, err)
	}

	if err := validate(config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", l.path, err)
	}

	slog.Debug("Pipeline config loaded", "path", l.path, "dedup_policy", config.DedupPolicy, "sample_size", config.Fashion.GetSampleSize())

	return config, nil
}

func (l *Loader) loadFile(path string) (*PipelineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var config PipelineConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	setDefaults(&config)

	return &config, nil
}

func setDefaults(config *PipelineConfig) {
	if config.DedupPolicy == "" {
		config.DedupPolicy = DefaultDedupPolicy
	}
	if config.Fashion.FileExtension == "" {
		config.Fashion.FileExtension = DefaultFileExtension
	}
	if !strings.HasPrefix(config.Fashion.FileExtension, ".") {
		config.Fashion.FileExtension = "." + config.Fashion.FileExtension
	}
	if config.Furniture.DescriptionDefault == "" {
		config.Furniture.DescriptionDefault = DefaultDescription
	}
	if config.Furniture.AmazonSearchURL == "" {
		config.Furniture.AmazonSearchURL = DefaultAmazonSearchURL
	}
	if config.Furniture.FlipkartSearchURL == "" {
		config.Furniture.FlipkartSearchURL = DefaultFlipkartSearchURL
	}
}

func validate(config *PipelineConfig) error {
	switch config.DedupPolicy {
	case "keep-first", "keep-last":
	default:
		return fmt.Errorf("invalid dedup policy: %s", config.DedupPolicy)
	}

	if config.Encoding != "" {
		if _, err := htmlindex.Get(config.Encoding); err != nil {
			return fmt.Errorf("unsupported encoding: %s", config.Encoding)
		}
	}

	if config.Fashion.GetSampleSize() < 0 {
		return fmt.Errorf("sample size must be non-negative")
	}

	for i, name := range config.Fashion.SelectedFiles {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("selected file at index %d is empty", i)
		}
	}

	return nil
}
