package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
)

func newLogger() zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, NoColor: false, TimeFormat: time.RFC3339}
	consoleWriter.TimeFormat = "[" + time.RFC3339 + "]"
	consoleWriter.PartsOrder = []string{
		zerolog.TimestampFieldName,
		zerolog.LevelFieldName,
		zerolog.CallerFieldName,
		zerolog.MessageFieldName,
	}

	logger := zerolog.New(consoleWriter).
		With().Timestamp().Logger()

	level := zerolog.InfoLevel
	envLevel, ok := os.LookupEnv("LOG_LEVEL")
	if ok {
		parsed, err := zerolog.ParseLevel(envLevel)
		if err != nil {
			logger.Warn().Err(err).Msg("could not parse environment variable LOG_LEVEL")
			return logger
		}
		level = parsed
	}

	return logger.Level(level)
}

func main() {
	args := Command{}
	cli := kong.Parse(&args,
		kong.Name("ccbak"),
		kong.Description("Cookie Clicker save keeper"),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignals(cancel)

	logger := newLogger()
	switch cli.Command() {
	case "daemon":
		err := daemonCommand(ctx, args, logger)
		if err != nil {
			logger.Error().Err(err).Msg("daemon error")
			cli.Exit(1)
		}
	case "backup":
		err := backupCommand(ctx, args, logger)
		if err != nil {
			logger.Error().Err(err).Msg("backup error")
			cli.Exit(1)
		}
	case "list":
		err := listCommand(ctx, args, logger)
		if err != nil {
			logger.Error().Err(err).Msg("list error")
			cli.Exit(1)
		}
	case "latest":
		err := latestCommand(ctx, args, logger)
		if err != nil {
			logger.Error().Err(err).Msg("latest error")
			cli.Exit(1)
		}
	case "prune":
		err := pruneCommand(ctx, args, logger)
		if err != nil {
			logger.Error().Err(err).Msg("prune error")
			cli.Exit(1)
		}
	default:
		panic(cli.Command())
	}
}

func setupSignals(onSignal func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		onSignal()
	}()
}
