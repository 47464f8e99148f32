package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"gradebook/internal/transcript"
)

const DefaultPath = "./config/local.yaml"

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Course     string     `yaml:"course" env:"COURSE" env-default:"Linux and IT Tools"`
	InputPath  string     `yaml:"input_path" env:"INPUT_PATH"`
	Order      string     `yaml:"order" env:"TRANSCRIPT_ORDER" env-default:"input"`
	Format     string     `yaml:"format" env:"OUTPUT_FORMAT" env-default:"text"`
	HTTPServer HTTPServer `yaml:"http_server"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_SERVER_ADDRESS" env-default:"0.0.0.0:8080"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_SERVER_TIMEOUT" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_SERVER_IDLE_TIMEOUT" env-default:"120s"`
	CORSOrigins []string      `yaml:"cors_origins" env:"HTTP_SERVER_CORS_ORIGINS" env-separator:"," env-default:"*"`
}

// Load reads the file at path with environment overrides. A missing file is
// not an error; the environment and defaults are used instead.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if errors.Is(err, os.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read env: %w", err)
		}
	} else {
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, err := c.Options(); err != nil {
		return err
	}
	if _, err := c.OutputFormat(); err != nil {
		return err
	}
	return nil
}

func (c *Config) Options() (transcript.Options, error) {
	order, err := transcript.ParseOrder(c.Order)
	if err != nil {
		return transcript.Options{}, fmt.Errorf("config: %w", err)
	}
	return transcript.Options{Course: c.Course, Order: order}, nil
}

func (c *Config) OutputFormat() (transcript.Format, error) {
	format, err := transcript.ParseFormat(c.Format)
	if err != nil {
		return "", fmt.Errorf("config: %w", err)
	}
	return format, nil
}

func Path() string {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultPath
	}
	return configPath
}

func MustLoad() *Config {
	configPath := Path()
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot load config %s: %v", configPath, err)
	}
	return cfg
}
