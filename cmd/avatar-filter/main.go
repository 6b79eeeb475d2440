package main

import (
	"fmt"
	"log"
	"runtime"

	"avatar-filter/internal/assets"
	"avatar-filter/internal/controllers"
	"avatar-filter/internal/debug"
	"avatar-filter/internal/logger"
	"avatar-filter/internal/models"
	"avatar-filter/internal/render"
	"avatar-filter/internal/services"
	"avatar-filter/internal/shutdown"
	"avatar-filter/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Avatar Filter"
	AppID      = "com.avatarfilter.editor"
	AppVersion = "1.0.0"
)

var _ controllers.EditorView = (*views.MainView)(nil)

// Application owns the window and the editor components.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  models.EditorConfiguration

	controller *controllers.EditorController
	view       *views.MainView
	renderer   *services.RendererService
	imageRepo  *models.ImageRepository

	shutdown *shutdown.Manager
}

func main() {
	application, err := NewApplication(models.LoadEditorConfiguration())
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}
	application.Run()
}

// NewApplication builds the models, services, controller and view and wires
// them together.
func NewApplication(cfg models.EditorConfiguration) (*Application, error) {
	appLogger := logger.NewConsoleLogger(logger.LevelFromEnv())

	if cfg.ProfilingAddr != "" {
		if _, err := debug.StartProfiling(cfg.ProfilingAddr, appLogger); err != nil {
			appLogger.Error("Application", err, map[string]interface{}{"pprof_addr": cfg.ProfilingAddr})
		}
	}

	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(720, 760))

	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":      AppVersion,
		"go_version":   runtime.Version(),
		"download_dir": cfg.DownloadDir,
		"filter_dir":   cfg.FilterDir,
		"jpeg_quality": cfg.JPEGQuality,
	})

	entries, err := assets.LoadFilters(cfg.FilterDir, nil)
	if err != nil {
		return nil, fmt.Errorf("load filters: %w", err)
	}
	carousel, err := models.NewFilterCarousel(entries)
	if err != nil {
		return nil, fmt.Errorf("build carousel: %w", err)
	}

	imageRepo := models.NewImageRepository()
	pan := models.NewPanState()

	inputService := services.NewInputService(imageRepo, appLogger, cfg.DecodeTimeout)
	rendererService := services.NewRendererService(render.NewGGSurface(1, 1), pan, appLogger)
	exportService := services.NewExportService(
		services.NewDirectoryDownloader(cfg.DownloadDir),
		cfg.JPEGQuality,
		appLogger,
	)

	controller := controllers.NewEditorController(
		inputService, rendererService, exportService, pan, carousel, appLogger,
	)
	mainView := views.NewMainView(window)
	controller.SetView(mainView)

	manager := shutdown.NewManager(appLogger)
	manager.Register("renderer", shutdown.Func(rendererService.Shutdown))
	manager.Register("image repository", shutdown.Func(imageRepo.Shutdown))
	manager.Register("controller", controller)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		config:     cfg,
		controller: controller,
		view:       mainView,
		renderer:   rendererService,
		imageRepo:  imageRepo,
		shutdown:   manager,
	}

	window.SetOnClosed(func() {
		appLogger.Info("Application", "window closed", nil)
	})

	appLogger.Info("Application", "initialized", map[string]interface{}{
		"filters": carousel.Len(),
	})
	return application, nil
}

// Run loads the startup avatar, shows the window and blocks until it closes.
func (a *Application) Run() {
	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.loadDefaultAvatar()
	a.window.ShowAndRun()

	a.shutdown.Shutdown()

	timings := a.controller.Timings()
	for _, op := range timings.Operations() {
		s := timings.Stats(op)
		a.logger.Debug("Application", "timing summary", map[string]interface{}{
			"operation":  op,
			"count":      s.Count,
			"average_ms": s.Average.Milliseconds(),
			"max_ms":     s.Max.Milliseconds(),
		})
	}

	stats := a.imageRepo.GetImageStats()
	a.logger.Info("Application", "terminated", map[string]interface{}{
		"avatars_loaded": stats.LoadedCount,
	})
}

// loadDefaultAvatar goes through the same path as a drop.
func (a *Application) loadDefaultAvatar() {
	if a.config.DefaultAvatar != "" {
		a.controller.LoadInBackground(services.FileSource(a.config.DefaultAvatar))
		return
	}

	data, err := assets.PlaceholderPNG()
	if err != nil {
		a.logger.Error("Application", err, nil)
		return
	}
	a.controller.LoadInBackground(services.MemorySource{
		SourceName: assets.PlaceholderName,
		Type:       "image/png",
		Data:       data,
	})
}
