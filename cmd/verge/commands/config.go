package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/verge-client/internal/constants"
	"github.com/fivetwenty-io/verge-client/pkg/verge"
	"github.com/fivetwenty-io/verge-client/pkg/vergeclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the persisted CLI configuration.
type Config struct {
	API               string `yaml:"api,omitempty"`
	Username          string `yaml:"username,omitempty"`
	Token             string `yaml:"token,omitempty"`
	Output            string `yaml:"output,omitempty"`
	SkipSSLValidation bool   `yaml:"skip_ssl_validation,omitempty"`
}

// loadConfig assembles the effective configuration from viper, which has
// already merged the config file, environment, and flags.
func loadConfig() *Config {
	return &Config{
		API:               viper.GetString("api"),
		Username:          viper.GetString("username"),
		Token:             viper.GetString("token"),
		Output:            viper.GetString("output"),
		SkipSSLValidation: viper.GetBool("skip_ssl_validation"),
	}
}

// saveConfig writes the configuration to ~/.verge/config.yml.
func saveConfig(config *Config) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".verge")

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yml")

	err = os.WriteFile(configPath, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateClient creates an API client from the effective configuration.
func CreateClient(ctx context.Context) (verge.Client, error) {
	config := loadConfig()

	if config.API == "" {
		return nil, fmt.Errorf("%w, use 'verge login' first", verge.ErrEndpointRequired)
	}

	clientConfig := &verge.Config{
		APIEndpoint:   config.API,
		Token:         config.Token,
		SkipTLSVerify: config.SkipSSLValidation,
	}

	client, err := vergeclient.New(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}
