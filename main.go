package main

import (
	"context"
	"embed"
	"fmt"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"gorm.io/gorm/logger"

	"sceneloom/internal/database"
	"sceneloom/internal/events"
	"sceneloom/internal/remote"
	"sceneloom/internal/services"
	"sceneloom/internal/utils"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	// Best effort; the app runs fine without a .env file.
	_ = utils.LoadEnv()

	app := NewApp()

	db, err := database.Init(database.Config{
		LogLevel: logger.Warn,
	})
	if err != nil {
		fmt.Println("Error opening database:", err)
		return
	}

	if sqlDB, err := db.DB(); err == nil {
		app.dbClose = sqlDB.Close
	}

	syncCfg, err := remote.ConfigFromEnv()
	if err != nil {
		fmt.Println("Error reading sync config:", err)
		return
	}
	syncClient := remote.NewClient(syncCfg)

	presetService := services.NewPresetService()
	dbServices := services.NewDbServices(db, syncClient)
	app.Settings = dbServices.Settings
	app.Projects = dbServices.Projects
	app.Templates = dbServices.Templates
	app.Presets = presetService
	app.flush = dbServices.Settings.Flush

	err = wails.Run(&options.App{
		Title:  "Sceneloom",
		Width:  1280,
		Height: 800,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "Sceneloom",
		},
		BackgroundColour: &options.RGBA{R: 24, G: 24, B: 32, A: 1},
		OnStartup: func(ctx context.Context) {
			events.EnableRuntimeEmitter()
			app.startup(ctx)
			dbServices.StartDbServices(ctx)
			if err := presetService.Startup(ctx); err != nil {
				fmt.Println("Error loading provider presets:", err)
			}

			// Remote state is fetched off the startup path; the UI never
			// blocks on sync availability.
			go dbServices.Settings.LoadFromBackend()
		},
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
			dbServices.Settings,
			dbServices.Projects,
			dbServices.Templates,
			presetService,
		},
	})

	if err != nil {
		fmt.Println("Error:", err.Error())
	}
}
