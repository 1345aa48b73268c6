package config

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log      Log      `yaml:"log"`
	API      API      `yaml:"api"`
	Defaults Defaults `yaml:"defaults"`
	Display  Display  `yaml:"display"`
}

type API struct {
	// Base URL of the simulation service
	SimulationURL string `yaml:"simulation_url" example:"http://localhost:8000" validate:"required,url"`
	// Base URL of the assistant service, defaults to the simulation URL
	AssistantURL string `yaml:"assistant_url" example:"http://localhost:8000" validate:"required,url"`
	// Request timeout for both services, in seconds
	TimeoutSeconds int `yaml:"timeout_seconds" example:"30" validate:"gte=1"`
}

type Defaults struct {
	// Withdrawal smoothing factor applied when increasing spending
	SmoothingUp float64 `yaml:"smoothing_up" example:"0.5" validate:"gte=0,lte=1"`
	// Withdrawal smoothing factor applied when decreasing spending
	SmoothingDown float64 `yaml:"smoothing_down" example:"1.0" validate:"gte=0,lte=1"`
	// Yearly management fee as a fraction of the portfolio
	ManagementFee float64 `yaml:"management_fee" example:"0.0" validate:"gte=0,lte=1"`
}

type Display struct {
	// Show only the backend-selected quantile runs in charts
	QuantilesOnly bool `yaml:"quantiles_only" example:"false"`
	// Number of axis ticks on chart value axes
	TickCount int `yaml:"tick_count" example:"5" validate:"gte=2"`
}

type Log struct {
	// Log file path, the terminal itself is owned by the UI
	File string `yaml:"file" example:"data/retireterm.log"`
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890"`
}

func Load() (*Config, error) {
	var result Config

	data, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, oops.Errorf("failed to read config file: %w", err)
	}

	if err = yaml.Unmarshal(data, &result); err != nil {
		return nil, oops.Errorf("failed to parse YAML config: %w", err)
	}

	applyDefaults(&result)

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}

func applyDefaults(cfg *Config) {
	if cfg.API.SimulationURL == "" {
		cfg.API.SimulationURL = "http://localhost:8000"
	}
	if cfg.API.AssistantURL == "" {
		cfg.API.AssistantURL = cfg.API.SimulationURL
	}
	if cfg.API.TimeoutSeconds == 0 {
		cfg.API.TimeoutSeconds = 30
	}
	if cfg.Log.File == "" {
		cfg.Log.File = "data/retireterm.log"
	}
	if cfg.Defaults.SmoothingUp == 0 {
		cfg.Defaults.SmoothingUp = 0.5
	}
	if cfg.Defaults.SmoothingDown == 0 {
		cfg.Defaults.SmoothingDown = 1.0
	}
	if cfg.Display.TickCount == 0 {
		cfg.Display.TickCount = 5
	}
}

func (a API) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}
