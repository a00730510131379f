package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/primeworks/pprimes"
)

// Config is the resolved command-line configuration. Resolution order is
// flags, then PPRIMES_* environment variables, then the optional YAML
// config file, then defaults.
type Config struct {
	Threads  int    `mapstructure:"threads"`
	List     bool   `mapstructure:"list"`
	Quiet    bool   `mapstructure:"quiet"`
	LogLevel string `mapstructure:"log_level"`
}

func loadConfig(v *viper.Viper, cmd *cobra.Command, cfgFile string) (Config, error) {
	v.SetDefault("threads", pprimes.DefaultWorkers)
	v.SetDefault("list", true)
	v.SetDefault("quiet", false)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("PPRIMES")
	v.AutomaticEnv()

	bindings := map[string]string{
		"threads":   "threads",
		"list":      "list",
		"quiet":     "quiet",
		"log_level": "log-level",
	}
	for key, flag := range bindings {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName("pprimes")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the run logger from the resolved configuration.
// Logs go to stderr so stdout stays machine-parsable.
func newLogger(cfg Config) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	if cfg.Quiet {
		level = logrus.ErrorLevel
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)
	return logger, nil
}
