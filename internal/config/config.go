package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DiscordToken  string `env:"DISCORD_TOKEN,required,notEmpty"`
	CommandPrefix string `env:"COMMAND_PREFIX" envDefault:"!"`

	CatalogPath  string `env:"CATALOG_PATH" envDefault:"songs.csv"`
	StoragePath  string `env:"STORAGE_PATH" envDefault:"datastore.json"`
	ErrorLogPath string `env:"ERROR_LOG_PATH" envDefault:"err.log"`

	WelcomeMessages    string `env:"WELCOME_MSG"`
	WelcomeSplitToken  string `env:"WELCOME_SPLIT_TOKEN" envDefault:"::"`
	ReadyGreetingGuild string `env:"READY_GREETING_GUILD"`

	Links Links

	LocalVolume         float64       `env:"LOCAL_VOLUME" envDefault:"0.3"`
	RemoteVolume        float64       `env:"REMOTE_VOLUME" envDefault:"0.5"`
	VoiceConnectTimeout time.Duration `env:"VOICE_CONNECT_TIMEOUT" envDefault:"15s"`
	MaxQueueLength      int           `env:"MAX_QUEUE_LENGTH" envDefault:"1000"`
	CommandRate         float64       `env:"COMMAND_RATE" envDefault:"2"`
	YouTubeProxy        string        `env:"YOUTUBE_PROXY"`
}

// Links are the outward links printed by the links command.
type Links struct {
	Facebook string `env:"TASTY_FB"`
	Product  string `env:"TASTY_PRODUCT"`
	YouTube  string `env:"TASTY_YT"`
	Spotify  string `env:"TASTY_SPOTIFY"`
	Deezer   string `env:"TASTY_DEEZER"`
}

// New loads .env (when present) and parses the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}
	return Parse()
}

// Parse reads the configuration from the process environment only.
func Parse() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.CommandPrefix == "" {
		errs = append(errs, errors.New("COMMAND_PREFIX must not be empty"))
	}
	if c.LocalVolume < 0 || c.LocalVolume > 2 {
		errs = append(errs, fmt.Errorf("LOCAL_VOLUME out of range: %v", c.LocalVolume))
	}
	if c.RemoteVolume < 0 || c.RemoteVolume > 2 {
		errs = append(errs, fmt.Errorf("REMOTE_VOLUME out of range: %v", c.RemoteVolume))
	}
	if c.MaxQueueLength < 0 {
		errs = append(errs, fmt.Errorf("MAX_QUEUE_LENGTH must not be negative: %d", c.MaxQueueLength))
	}
	if c.CommandRate <= 0 {
		errs = append(errs, fmt.Errorf("COMMAND_RATE must be positive: %v", c.CommandRate))
	}
	if c.WelcomeSplitToken == "" {
		errs = append(errs, errors.New("WELCOME_SPLIT_TOKEN must not be empty"))
	}
	return errors.Join(errs...)
}
