package logger

import (
	"io"
	"os"
	"shareit/config"
	"shareit/shared/constant"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger writes human readable output until the configuration is known.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	log.Trace().Msg("Zerolog initialized.")
}

// Configure switches to JSON output in production and tags every entry with
// the service name. When a log file is configured every entry is also written
// to it as JSON, rotated by size.
func Configure(cfg *config.Config, out io.Writer) {
	if out == nil {
		out = os.Stdout
	}

	if cfg.Server.Env != constant.ServerEnvProduction {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: cfg.Server.Env == ""}
	}

	if file := fileWriter(cfg); file != nil {
		out = zerolog.MultiLevelWriter(out, file)
	}

	ctx := zerolog.New(out).With().Timestamp()
	if cfg.App.Name != "" {
		ctx = ctx.Str("service", cfg.App.Name)
	}

	log.Logger = ctx.Logger()

	SetLogLevel(cfg)
}

func fileWriter(cfg *config.Config) io.Writer {
	logFile := cfg.Server.LogFile
	if logFile.Path == "" {
		return nil
	}

	return &lumberjack.Logger{
		Filename:   logFile.Path,
		MaxSize:    logFile.MaxSizeMB,
		MaxBackups: logFile.MaxBackups,
		MaxAge:     logFile.MaxAgeDays,
		Compress:   logFile.Compress,
	}
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies the level before reporting it, so the report only
// shows up when the new level admits trace entries.
func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
		log.Trace().Str("loglevel", zerolog.TraceLevel.String()).Msg("Environment has no log level set up, using default.")

		return
	}

	zerolog.SetGlobalLevel(level)
	log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
}
