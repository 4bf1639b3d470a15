// Package main starts the Amazing QR desktop app: a Fyne form that generates
// QR codes, optionally blended over a background picture.
package main

import (
	"log"
	"os"

	"github.com/Akaiko1/amazing-qr/internal/config"
	"github.com/Akaiko1/amazing-qr/internal/logger"
	"github.com/Akaiko1/amazing-qr/internal/ui"
)

func main() {
	cfg, err := config.Load(os.Getenv("AMZQR_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, err := logger.New(logger.Config{
		Debug:     cfg.Debug,
		LogToFile: cfg.LogToFile,
		LogsDir:   cfg.LogsDir,
	})
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	logg.Infow("Starting Amazing QR",
		"theme", cfg.Theme,
		"nativeDialogs", cfg.NativeDialog,
		"version", cfg.Version,
		"level", cfg.Level,
	)

	app := ui.NewQRCodeApp(cfg, logg)
	app.Run()
}
