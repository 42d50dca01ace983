package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/selectdb/login_watch/pkg/xerror"
)

type (
	Config struct {
		Demo    `yaml:"demo"`
		Metrics `yaml:"metrics"`
	}

	// Demo drives the simulated login attempts
	Demo struct {
		Attempts int    `yaml:"attempts" env:"LOGINWATCH_ATTEMPTS" env-default:"10"`
		User     string `yaml:"user" env:"LOGINWATCH_USER" env-default:"bob"`
		Password string `yaml:"password" env:"LOGINWATCH_PASSWORD" env-default:"mypass"`
		Origin   string `yaml:"origin" env:"LOGINWATCH_ORIGIN" env-default:"123.22.112.1"`
		// 0 seeds the outcome selector from the clock
		Seed int64 `yaml:"seed" env:"LOGINWATCH_SEED" env-default:"0"`
	}

	Metrics struct {
		ServiceName string `yaml:"service-name" env:"LOGINWATCH_METRICS_SERVICE" env-default:"login_watch"`
	}
)

// Load reads the optional yaml file at path, then the environment.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, xerror.Wrapf(err, xerror.Config, "read config %s failed", path)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, xerror.Wrap(err, xerror.Config, "read config from env failed")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Attempts <= 0 {
		return xerror.Errorf(xerror.Config, "attempts must be positive, got %d", c.Attempts)
	}
	if c.User == "" {
		return xerror.New(xerror.Config, "user is empty")
	}
	if c.ServiceName == "" {
		return xerror.New(xerror.Config, "metrics service name is empty")
	}
	return nil
}
