package logging

import (
	"os"

	"go.uber.org/zap"
)

// New builds the application logger. Release mode gets JSON production
// output, everything else gets the human-readable development encoder.
func New() *zap.Logger {
	var logger *zap.Logger
	var err error

	if os.Getenv("GIN_MODE") == "release" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}

	return logger
}
