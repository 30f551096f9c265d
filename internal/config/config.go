package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Behyna/safetycheck/internal/ratelimit"
	"github.com/Behyna/safetycheck/pkg/smsprovider"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "SAFETYCHECK"

type Config struct {
	API       API                `mapstructure:"api"`
	Provider  smsprovider.Config `mapstructure:"provider"`
	Dispatch  Dispatch           `mapstructure:"dispatch"`
	RateLimit RateLimit          `mapstructure:"rate_limit"`
	Redis     ratelimit.Config   `mapstructure:"redis"`
}

type API struct {
	Port        string   `mapstructure:"port"`
	ServiceName string   `mapstructure:"service_name"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type Dispatch struct {
	MaxConcurrency  int           `mapstructure:"max_concurrency"`
	SendTimeout     time.Duration `mapstructure:"send_timeout"`
	Deadline        time.Duration `mapstructure:"deadline"`
	EmergencySource string        `mapstructure:"emergency_source"`
	TestSource      string        `mapstructure:"test_source"`
}

type RateLimit struct {
	Enable bool          `mapstructure:"enable"`
	Max    int           `mapstructure:"max"`
	Window time.Duration `mapstructure:"window"`
}

func Load() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	return LoadFrom("./config")
}

// LoadFrom reads config.yml from dir. The file is optional; defaults and
// SAFETYCHECK_* environment variables fill whatever it leaves out.
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(dir)

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("provider.username", envPrefix+"_PROVIDER_USERNAME", "CLICKSEND_USERNAME")
	_ = v.BindEnv("provider.api_key", envPrefix+"_PROVIDER_API_KEY", "CLICKSEND_API_KEY")
	_ = v.BindEnv("api.port", envPrefix+"_API_PORT", "PORT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if !strings.HasPrefix(cfg.API.Port, ":") {
		cfg.API.Port = ":" + cfg.API.Port
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", ":3001")
	v.SetDefault("api.service_name", "SafetyCheck Backend")
	v.SetDefault("api.cors_origins", []string{"http://localhost:3000"})

	v.SetDefault("provider.base_url", smsprovider.DefaultBaseURL)
	v.SetDefault("provider.timeout", 15*time.Second)
	v.SetDefault("provider.username", "")
	v.SetDefault("provider.api_key", "")

	v.SetDefault("dispatch.max_concurrency", 5)
	v.SetDefault("dispatch.send_timeout", 10*time.Second)
	v.SetDefault("dispatch.deadline", time.Duration(0))
	v.SetDefault("dispatch.emergency_source", "SafetyCheck-Emergency")
	v.SetDefault("dispatch.test_source", "SafetyCheck-Test")

	v.SetDefault("rate_limit.enable", true)
	v.SetDefault("rate_limit.max", 10)
	v.SetDefault("rate_limit.window", 15*time.Minute)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "safetycheck:ratelimit:")
}
