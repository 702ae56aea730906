package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/mecanica/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// annotationKeys lists the config keys a flag overrides.
	annotationKeys = "mecanica/config-keys"
)

// loadConfig reads config.yaml from configDir using Viper. A missing
// config.yaml is not an error; the built-in examples apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// bindFlags binds every flag of cmd that carries config keys, so a flag
// set on the command line overrides config.yaml and an unset flag falls
// back to it.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		for _, key := range f.Annotations[annotationKeys] {
			if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
				bindErr = fmt.Errorf("bind flag %s: %w", f.Name, err)
			}
		}
	})
	return bindErr
}

// decodeConfig overlays the viper settings on the built-in examples.
func decodeConfig(v *viper.Viper) (types.Config, error) {
	cfg := types.DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// configKey turns a flag name into its key inside section: "mu-k" in
// "slide" becomes "slide.mu_k".
func configKey(section, flag string) string {
	return section + "." + strings.ReplaceAll(flag, "-", "_")
}

// floatFlag registers a float64 flag that overrides name in each section.
func floatFlag(cmd *cobra.Command, name string, value float64, usage string, sections ...string) {
	cmd.Flags().Float64(name, value, usage)
	annotate(cmd, name, sections)
}

// intFlag registers an int flag that overrides name in each section.
func intFlag(cmd *cobra.Command, name string, value int, usage string, sections ...string) {
	cmd.Flags().Int(name, value, usage)
	annotate(cmd, name, sections)
}

func annotate(cmd *cobra.Command, name string, sections []string) {
	keys := make([]string, len(sections))
	for i, s := range sections {
		keys[i] = configKey(s, name)
	}
	_ = cmd.Flags().SetAnnotation(name, annotationKeys, keys)
}
