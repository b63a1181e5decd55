package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"pkt.systems/psi"
	"pkt.systems/pslog"

	"github.com/psacc/buflist/cmd"
)

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	// Before the logger, so .env can set its level and format.
	envErr := loadDotEnv(".env")

	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)
	if envErr != nil {
		logger.Warn("ignoring .env", "err", envErr)
	}

	if err := cmd.Execute(ctx); err != nil {
		pslog.Ctx(ctx).With("err", err).Error("buflist command failed")
		return 1
	}
	return 0
}

// loadDotEnv loads path into the environment. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
