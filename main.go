// File: spavoucher/main.go
package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"spavoucher/config"
	"spavoucher/services/voucher"
	"spavoucher/services/wizard"
	"spavoucher/tui"
	"spavoucher/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	sessionSvc := wizard.NewSessionService()
	renderer := voucher.NewRenderer(time.Duration(config.AppConfig.ImageFetchTimeoutSecs) * time.Second)

	logger.Info("starting voucher wizard session")

	program := tea.NewProgram(
		tui.New(sessionSvc, renderer, config.AppConfig.OutputDir),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		logger.Sugar().Fatalf("main: wizard exited with error: %v", err)
	}
}
