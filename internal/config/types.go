package config

import "github.com/go-telegram/bot/models"

// Config holds the complete bot configuration.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Responder ResponderConfig `mapstructure:"responder"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Messages  MessagesConfig  `mapstructure:"messages"`
}

// LoggerConfig controls slog output.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelegramConfig holds bot credentials and the admin identity.
// BotInfo is filled at startup from getMe and is never read from file.
type TelegramConfig struct {
	Token       string      `mapstructure:"token"         validate:"required"`
	AdminUserID int64       `mapstructure:"admin_user_id" validate:"required,gt=0"`
	BotInfo     models.User `mapstructure:"-"`
}

// DatabaseConfig configures the exchange log.
type DatabaseConfig struct {
	Path          string `mapstructure:"path"           validate:"required"`
	RetentionDays int    `mapstructure:"retention_days" validate:"min=0"`
	HistoryLimit  int    `mapstructure:"history_limit"  validate:"min=1,max=100"`
}

// ResponderConfig configures the intent responder.
type ResponderConfig struct {
	// Timezone is an IANA name used for date and time replies.
	Timezone string `mapstructure:"timezone" validate:"required,timezone"`
}

// SchedulerConfig maps task names to their schedules.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks" validate:"dive"`
}

// TaskConfig enables a task with a six-field cron expression (seconds first).
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule" validate:"required_if=Enabled true"`
}

// MessagesConfig holds user-facing bot texts.
type MessagesConfig struct {
	Welcome      string `mapstructure:"welcome"       validate:"required"`
	Help         string `mapstructure:"help"          validate:"required"`
	Unauthorized string `mapstructure:"unauthorized"  validate:"required"`
	GeneralError string `mapstructure:"general_error" validate:"required"`
	ResetDone    string `mapstructure:"reset_done"    validate:"required"`
	NoStats      string `mapstructure:"no_stats"      validate:"required"`
	StatsHeader  string `mapstructure:"stats_header"  validate:"required"`
	NoHistory    string `mapstructure:"no_history"    validate:"required"`
}
