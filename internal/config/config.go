package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Default values
	DefaultOutputPath  = "data/output/resultado.json"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB
)

// ErrVersionRequested is returned by LoadFromFlags when the version flag
// is present, so the caller can print version information and exit.
var ErrVersionRequested = errors.New("version requested")

// Config holds all configuration for a licitaparse run
type Config struct {
	// Input configuration
	InputDir string

	// Output configuration
	OutputPath string
	XLSXPath   string

	// Application configuration
	Version     string
	Verbose     bool
	LogJSON     bool
	MaxFileSize int64 // Maximum attachment file size in bytes
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		OutputPath:  DefaultOutputPath,
		Version:     "1.0.0",
		MaxFileSize: DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	// Check for version flag before parsing
	if err := checkVersionFlag(); err != nil {
		return nil, err
	}

	pflag.Parse()

	populateConfigFromViper(cfg)

	// Expand paths if needed
	if cfg.InputDir != "" {
		if expandedPath, err := filepath.Abs(cfg.InputDir); err == nil {
			cfg.InputDir = expandedPath
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	// Set environment variable prefix
	viper.SetEnvPrefix("LICITAPARSE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Define flags with Viper
	viper.SetDefault("input", cfg.InputDir)
	viper.SetDefault("output", cfg.OutputPath)
	viper.SetDefault("xlsx", cfg.XLSXPath)
	viper.SetDefault("verbose", cfg.Verbose)
	viper.SetDefault("log-json", cfg.LogJSON)
	viper.SetDefault("max-file-size", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.StringP("input", "i", cfg.InputDir, "Directory holding licitação JSON files and their attachment folders")
	pflag.StringP("output", "o", cfg.OutputPath, "Path of the JSON result file")
	pflag.String("xlsx", cfg.XLSXPath, "Optional path of an XLSX export of the extracted items")
	pflag.BoolP("verbose", "v", cfg.Verbose, "Enable debug logging")
	pflag.Bool("log-json", cfg.LogJSON, "Emit logs as JSON instead of text")
	pflag.Int64("max-file-size", cfg.MaxFileSize, "Maximum attachment file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("input", pflag.Lookup("input"))
	_ = viper.BindPFlag("output", pflag.Lookup("output"))
	_ = viper.BindPFlag("xlsx", pflag.Lookup("xlsx"))
	_ = viper.BindPFlag("verbose", pflag.Lookup("verbose"))
	_ = viper.BindPFlag("log-json", pflag.Lookup("log-json"))
	_ = viper.BindPFlag("max-file-size", pflag.Lookup("max-file-size"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nlicitaparse - extracts bid items from licitação attachments\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s --input=data/licitacoes                       "+
			"# JSON result at the default path\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --input=data/licitacoes --output=itens.json   "+
			"# custom result path\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --input=data/licitacoes --xlsx=itens.xlsx     "+
			"# additional XLSX export\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  LICITAPARSE_INPUT          Input directory\n")
		fmt.Fprintf(os.Stderr, "  LICITAPARSE_OUTPUT         JSON result path\n")
		fmt.Fprintf(os.Stderr, "  LICITAPARSE_XLSX           XLSX export path\n")
		fmt.Fprintf(os.Stderr, "  LICITAPARSE_VERBOSE        Enable debug logging\n")
		fmt.Fprintf(os.Stderr, "  LICITAPARSE_LOG_JSON       Emit logs as JSON\n")
		fmt.Fprintf(os.Stderr, "  LICITAPARSE_MAX_FILE_SIZE  Maximum file size\n")
	}
}

// checkVersionFlag checks if version flag was requested
func checkVersionFlag() error {
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" {
			return ErrVersionRequested
		}
	}
	return nil
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.InputDir = viper.GetString("input")
	cfg.OutputPath = viper.GetString("output")
	cfg.XLSXPath = viper.GetString("xlsx")
	cfg.Verbose = viper.GetBool("verbose")
	cfg.LogJSON = viper.GetBool("log-json")
	cfg.MaxFileSize = viper.GetInt64("max-file-size")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate input directory
	if c.InputDir == "" {
		return errors.New("input directory cannot be empty")
	}

	info, err := os.Stat(c.InputDir)
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("input directory does not exist: %s", c.InputDir)
	case err != nil:
		return fmt.Errorf("cannot access input directory %s: %w", c.InputDir, err)
	case !info.IsDir():
		return fmt.Errorf("input path is not a directory: %s", c.InputDir)
	}

	// Validate output path
	if c.OutputPath == "" {
		return errors.New("output path cannot be empty")
	}

	// Validate max file size
	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	return nil
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{InputDir: %s, OutputPath: %s, XLSXPath: %s, Verbose: %t, LogJSON: %t, MaxFileSize: %d}",
		c.InputDir, c.OutputPath, c.XLSXPath, c.Verbose, c.LogJSON, c.MaxFileSize)
}
