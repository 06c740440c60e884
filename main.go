package main

import (
	"os"

	"event-portal/core/logger"
	"event-portal/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", "error", err)
		os.Exit(1)
	}
}
