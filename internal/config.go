package internal

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

const (
	BackendSheets = "sheets"
	BackendBadger = "badger"
)

var validate = validator.New()

type Config struct {
	TelegramToken      string        `env:"TELEGRAM_BOT_TOKEN,required=true" validate:"required"`
	StoreBackend       string        `env:"STORE_BACKEND,default=sheets" validate:"oneof=sheets badger"`
	SheetID            string        `env:"GOOGLE_SHEET_ID" validate:"required_if=StoreBackend sheets"`
	CredentialsFile    string        `env:"GOOGLE_CREDENTIALS_FILE,default=credentials.json" validate:"required_if=StoreBackend sheets"`
	BadgerFilepath     string        `env:"BADGER_FILEPATH" validate:"required_if=StoreBackend badger"`
	GeminiAPIKey       string        `env:"GEMINI_API_KEY,required=true" validate:"required"`
	GeminiModel        string        `env:"GEMINI_MODEL"`
	PhotoDir           string        `env:"PHOTO_DIR,default=images"`
	LogLevel           string        `env:"LOG_LEVEL,default=INFO"`
	PollTimeout        int           `env:"POLL_TIMEOUT,default=30" validate:"min=0"`
	RoomBufferSize     int           `env:"ROOM_BUFFER_SIZE,default=16" validate:"min=1"`
	RestartInterval    time.Duration `env:"RESTART_INTERVAL,default=1s" validate:"min=0"`
	QueueCheckInterval time.Duration `env:"QUEUE_CHECK_INTERVAL,default=30s" validate:"gt=0"`
	QueueWarnPercent   int           `env:"QUEUE_WARN_PERCENT,default=80" validate:"min=1,max=100"`
	DebugPort          int           `env:"DEBUG_PORT,default=8081" validate:"min=1,max=65535"`
}

// LoadConfig reads the process environment and validates the result.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
