package main

import (
	"HRDesk/internal/repository"
	"HRDesk/pkg/logger"
)

func main() {
	logger.Init()
	defer logger.Sync()

	repository.RunGenerate()
}
