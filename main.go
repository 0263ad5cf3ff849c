package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/avstrong/grandeur/internal/app"
	"github.com/avstrong/grandeur/internal/logger"
)

func main() {
	zl, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}

	defer zl.Sync() //nolint:errcheck

	l := logger.New(zl)

	var exitCode int

	if err := app.Run(l); err != nil {
		l.LogErrorf("Failed to run app: %v", err.Error())

		exitCode = 1
	}

	os.Exit(exitCode)
}
