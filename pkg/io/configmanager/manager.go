package configmanager

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration defaults.
const (
	// DefaultQuorum is the quorum fraction used when none is configured.
	DefaultQuorum = 0.51
	// DefaultOutputDir is the directory dedupe results are written to.
	DefaultOutputDir = "dedupe"

	configFileName = "valdedup"
	envPrefix      = "VALDEDUP"

	quorumKey    = "quorum"
	outputDirKey = "output-dir"
)

// Config holds the dedupe command's configurable defaults.
type Config struct {
	// Quorum is the fraction of inputs that must agree on a value for
	// it to enter the common base.
	Quorum float64
	// OutputDir is where base and per-input diff files are written.
	OutputDir string
}

// Manager resolves tool configuration with viper. Precedence:
// defaults < config file < environment < explicitly set flags.
type Manager struct {
	viper *viper.Viper
}

// NewManager creates a manager searching the given paths for a
// valdedup.yaml config file. With no paths, the working directory is
// searched.
func NewManager(searchPaths ...string) *Manager {
	viperInstance := viper.New()
	viperInstance.SetConfigName(configFileName)
	viperInstance.SetConfigType("yaml")

	if len(searchPaths) == 0 {
		searchPaths = []string{"."}
	}

	for _, path := range searchPaths {
		viperInstance.AddConfigPath(path)
	}

	viperInstance.SetEnvPrefix(envPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viperInstance.AutomaticEnv()

	viperInstance.SetDefault(quorumKey, DefaultQuorum)
	viperInstance.SetDefault(outputDirKey, DefaultOutputDir)

	return &Manager{viper: viperInstance}
}

// BindFlags registers the command's flags so explicitly set values
// take precedence over file and environment configuration.
func (m *Manager) BindFlags(flags *pflag.FlagSet) error {
	for _, key := range []string{quorumKey, outputDirKey} {
		flag := flags.Lookup(key)
		if flag == nil {
			continue
		}

		err := m.viper.BindPFlag(key, flag)
		if err != nil {
			return fmt.Errorf("bind %s flag: %w", key, err)
		}
	}

	return nil
}

// Load reads the configuration. A missing config file is not an
// error; a malformed one is.
func (m *Manager) Load() (*Config, error) {
	err := m.viper.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return &Config{
		Quorum:    m.viper.GetFloat64(quorumKey),
		OutputDir: m.viper.GetString(outputDirKey),
	}, nil
}
