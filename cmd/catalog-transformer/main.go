package main

import (
	"log/slog"
	"os"

	"github.com/iyhunko/catalog-transformer/internal/cli"
	"github.com/iyhunko/catalog-transformer/internal/config"
	"github.com/iyhunko/catalog-transformer/internal/logger"
)

func main() {
	conf, err := config.LoadFromEnv()
	handleErr("loading config", err)

	logger.InitJSONLogger(conf.DebugMode)

	err = cli.Execute(conf)
	handleErr("running command", err)
}

func handleErr(msg string, err error) {
	if err != nil {
		slog.Error("error while "+msg, slog.Any("err", err))
		os.Exit(1)
	}
}
