package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	envPrefix  = "IBINGO"

	stateBackendKey = "state.backend"
	stateDirKey     = "state.dir"
	promptsPathKey  = "prompts.path"
	logLevelKey     = "log.level"

	backendFile   = "file"
	backendSQLite = "sqlite"
	backendAuto   = "auto"
	backendMemory = "memory"

	defaultLogLevel = "warn"
	sqliteFileName  = "state.db"
)

func configDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "ibingo"), nil
}

// loadConfig merges defaults, config.toml and IBINGO_* environment
// variables. The environment wins over the file.
func loadConfig() (*viper.Viper, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}

	cfg := viper.New()
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(dir)

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(stateBackendKey, backendFile)
	cfg.SetDefault(stateDirKey, dir)
	cfg.SetDefault(promptsPathKey, "")
	cfg.SetDefault(logLevelKey, defaultLogLevel)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return cfg, nil
}

func newLogger(level string, out io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.TrimSpace(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: true}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
