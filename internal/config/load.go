package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/alexanderramin/goalpath/internal/loading"
)

const (
	EnvPrefix = "GOALPATH"
	// FileEnv names the variable holding an optional config file path.
	FileEnv = EnvPrefix + "_CONFIG_FILE"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog_dir", "")
	v.SetDefault("log_use_cases", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("loading.content_interval", loading.DefaultContentInterval)
	v.SetDefault("loading.progress_interval", loading.DefaultProgressInterval)
	v.SetDefault("loading.progress_step", loading.DefaultProgressStep)
}

// Load reads configuration from defaults, the optional file named by
// GOALPATH_CONFIG_FILE, and GOALPATH_* environment variables, in
// increasing precedence. Nested keys use underscores, e.g.
// GOALPATH_LOADING_PROGRESS_STEP.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config_file"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
