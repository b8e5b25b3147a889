package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// CORSSettings holds the allowed origins for the REST API
type CORSSettings struct {
	AllowOrigins []string `mapstructure:"allow_origins" validate:"required,min=1"`
}

// RestConfig holds configuration settings for the REST application
type RestConfig struct {
	Port           string         `mapstructure:"port" validate:"required,numeric"`
	MaxBodyBytes   int64          `mapstructure:"max_body_bytes" validate:"required,gt=0"`
	Logger         LoggerSettings `mapstructure:"logger"`
	CORS           CORSSettings   `mapstructure:"cors"`
	CipherDefaults CipherDefaults `mapstructure:"cipher_defaults"`
}

// Validate checks that all fields in RestConfig are valid
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.CipherDefaults.Validate()
}

// InitializeRestConfig loads the REST configuration from configPath and from
// environment variables prefixed with AES_WORKBENCH_ (e.g. AES_WORKBENCH_PORT,
// AES_WORKBENCH_LOGGER_LOG_LEVEL). A missing file falls back to defaults.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := newViper()
	setRestDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
			}
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// CLIConfig holds configuration settings for the command-line tool
type CLIConfig struct {
	Logger         LoggerSettings `mapstructure:"logger"`
	CipherDefaults CipherDefaults `mapstructure:"cipher_defaults"`
}

// Validate checks that all fields in CLIConfig are valid
func (c *CLIConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.CipherDefaults.Validate()
}

// InitializeCLIConfig loads CLI settings. Without a config file only
// defaults and AES_WORKBENCH_ environment variables apply. Console logs go
// to stderr so command output on stdout stays clean.
func InitializeCLIConfig(configPath string) (*CLIConfig, error) {
	v := newViper()
	setCipherDefaults(v)
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.output", LogOutputStderr)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	var cfg CLIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("AES_WORKBENCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setRestDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("max_body_bytes", 1<<20)
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.output", LogOutputStdout)
	v.SetDefault("cors.allow_origins", []string{"*"})
	setCipherDefaults(v)
}

func setCipherDefaults(v *viper.Viper) {
	d := DefaultCipherDefaults()
	v.SetDefault("cipher_defaults.mode", d.Mode)
	v.SetDefault("cipher_defaults.key_format", d.KeyFormat)
	v.SetDefault("cipher_defaults.iv_format", d.IVFormat)
	v.SetDefault("cipher_defaults.ciphertext_format", d.CiphertextFormat)
	v.SetDefault("cipher_defaults.key_size", d.KeySize)
}
