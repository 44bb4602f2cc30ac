package appconfig

import (
	"time"

	"pasaydan.org/backend/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address the HTTP server would listen on.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9030"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for debugging and
	// provide a more contextual message when encountered a panic.
	DevMode bool `split_words:"true"`

	// PostgresDSN is the data source name for the PostgreSQL database. See
	// https://bun.uptrace.dev/postgres/#pgdriver for more details on how to construct a PostgreSQL DSN.
	PostgresDSN string `required:"true" split_words:"true"`

	PostgresMaxOpenConns    int           `split_words:"true" default:"10"`
	PostgresMaxIdleConns    int           `split_words:"true" default:"2"`
	PostgresConnMaxLifeTime time.Duration `split_words:"true" default:"5m"`
	PostgresConnMaxIdleTime time.Duration `split_words:"true" default:"5m"`

	BunDebugVerbose bool `split_words:"true"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`

	// AdminKey is the bearer key used to authenticate the admin API group.
	AdminKey string `split_words:"true"`

	// TelegramBotToken is the bot token used for outbound notifications.
	// Leaving this empty disables Telegram notifications entirely.
	TelegramBotToken string `split_words:"true"`

	// TelegramChatIDs is the list of chat IDs every notification is fanned out to.
	TelegramChatIDs []string `split_words:"true"`

	// SMTP connection instructions for certificate mail dispatch.
	// Leaving SmtpHost empty disables mail dispatch.
	SmtpHost     string `split_words:"true"`
	SmtpPort     int    `split_words:"true" default:"587"`
	SmtpUsername string `split_words:"true"`
	SmtpPassword string `split_words:"true"`
	SmtpFrom     string `split_words:"true" default:"noreply@pasaydan.org"`
}

type Config struct {
	ConfigSpec

	AppContext appcontext.Ctx
}
