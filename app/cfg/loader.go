package cfg

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Input and output
	DataDir    string   `long:"data-dir" env:"DATA_DIR" default:"./Data" description:"Base directory holding raw/ inputs and processed/ outputs"`
	ConfigPath string   `long:"config" env:"PIPELINE_CONFIG" description:"Pipeline settings YAML file (optional)"`
	Selected   []string `long:"select" env:"SELECTED_FILES" env-delim:"," description:"Only load these files from raw/women (filename or stem, repeatable)"`

	// Optional sinks
	SQLitePath  string `long:"sqlite" env:"SQLITE_PATH" description:"Also export the merged table to this SQLite database"`
	MetricsFile string `long:"metrics-file" env:"METRICS_FILE" description:"Write run metrics in Prometheus text format to this file"`

	// Application metadata
	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// LoadArgs reads .env, the environment and args. It returns nil, nil when
// help was requested.
func LoadArgs(args []string) (*Cfg, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		DataDir:     raw.DataDir,
		ConfigPath:  raw.ConfigPath,
		Selected:    cleanList(raw.Selected),
		SQLitePath:  raw.SQLitePath,
		MetricsFile: raw.MetricsFile,
		Debug:       raw.Debug,
		Version:     GetVersion(),
	}

	return cfg, nil
}

func cleanList(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
