package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	prefix   = "ADT"
	logLevel = "log_level"
	output   = "output"

	defaultLogLevel = "info"
	defaultOutput   = OutputText
)

const (
	OutputText = "text"
	OutputYAML = "yaml"
)

var v = viper.New()

// InitConfiguration loads configuration from the environment, the optional
// config file and the flags of cmd, in increasing order of precedence.
func InitConfiguration(cmd *cobra.Command, configFile string) error {
	v = viper.New()

	v.SetEnvPrefix(prefix)
	v.AutomaticEnv()

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			zap.S().Errorw("failed to read config file", "error", err, "config file", configFile)
			return fmt.Errorf("fail to read config file %s: %w", configFile, err)
		}
		zap.S().Debugf("using config file: %v", v.ConfigFileUsed())
	}

	bindFlags(cmd, v)

	return nil
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		flagName := f.Name
		if strings.Contains(f.Name, "-") {
			// Environment variables can't have dashes in them, so bind them to their equivalent
			// keys with underscores.
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			flagName = strings.ReplaceAll(f.Name, "-", "_")
			envVar := fmt.Sprintf("%s_%s", prefix, envVarSuffix)
			if err := v.BindEnv(flagName, envVar); err != nil {
				zap.S().Warnw("failed to bind environment variable", "flag", f.Name, "env", envVar, "error", err)
			}
		}

		if !f.Changed && v.IsSet(flagName) {
			val := v.Get(flagName)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				zap.S().Warnw("ignoring invalid configuration value", "flag", f.Name, "value", val, "error", err)
			}
		} else if f.Changed {
			v.Set(flagName, f.Value.String())
		}
	})
}

func GetLogLevel() string {
	if !v.IsSet(logLevel) {
		return defaultLogLevel
	}

	return v.GetString(logLevel)
}

// GetOutputFormat returns the report format, rejecting unknown values.
func GetOutputFormat() (string, error) {
	if !v.IsSet(output) {
		return defaultOutput, nil
	}

	switch format := strings.ToLower(v.GetString(output)); format {
	case OutputText, OutputYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want %s or %s)", format, OutputText, OutputYAML)
	}
}
