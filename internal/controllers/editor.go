package controllers

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"avatar-filter/internal/debug/timing"
	"avatar-filter/internal/logger"
	"avatar-filter/internal/models"
	"avatar-filter/internal/services"

	"fyne.io/fyne/v2"
)

// IncompatibleTypeMessage is shown when a dropped file has an unsupported type.
const IncompatibleTypeMessage = "Incompatible file type!"

// EditorView is what the controller drives. Handlers registered through the
// Set*Handler methods are invoked on the UI goroutine.
type EditorView interface {
	SetAvatar(img image.Image, side int)
	SetFilters(entries []models.FilterEntry)
	SetActiveFilter(index int, offsetVmin float32)
	UpdateStatus(status string)
	ShowInformation(title, message string)
	ShowError(title string, err error)

	SetPanHandlers(start, move, end func(models.Point))
	SetPreviousHandler(handler func())
	SetNextHandler(handler func())
	SetDownloadHandler(handler func())
	SetDropHandler(handler func(fyne.Position, []fyne.URI))
	SetKeyHandler(handler func(*fyne.KeyEvent))
}

// EditorController wires drops, pointer gestures, keys and buttons to the
// avatar editor services.
type EditorController struct {
	input    *services.InputService
	renderer *services.RendererService
	export   *services.ExportService
	pan      *models.PanState
	carousel *models.FilterCarousel
	logger   logger.Logger
	timings  *timing.Tracker

	view EditorView

	ctx     context.Context
	cancel  context.CancelFunc
	pending sync.WaitGroup
}

func NewEditorController(
	input *services.InputService,
	renderer *services.RendererService,
	export *services.ExportService,
	pan *models.PanState,
	carousel *models.FilterCarousel,
	log logger.Logger,
) *EditorController {
	ctx, cancel := context.WithCancel(context.Background())
	return &EditorController{
		input:    input,
		renderer: renderer,
		export:   export,
		pan:      pan,
		carousel: carousel,
		logger:   log,
		timings:  timing.NewTracker(),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// SetView attaches the view and pushes the initial filter state into it.
func (ec *EditorController) SetView(view EditorView) {
	ec.view = view

	view.SetPanHandlers(ec.PanStart, ec.PanMove, ec.PanEnd)
	view.SetPreviousHandler(ec.PreviousFilter)
	view.SetNextHandler(ec.NextFilter)
	view.SetDownloadHandler(ec.Download)
	view.SetDropHandler(ec.HandleDrop)
	view.SetKeyHandler(ec.HandleKey)

	view.SetFilters(ec.carousel.Entries())
	ec.showActiveFilter()
}

// HandleDrop takes the first dropped URI. The declared type is checked
// before anything is read; unsupported files leave the editor untouched.
func (ec *EditorController) HandleDrop(_ fyne.Position, uris []fyne.URI) {
	if len(uris) == 0 {
		return
	}
	src := services.URISource{URI: uris[0]}
	if err := ec.input.Accept(src.MediaType()); err != nil {
		ec.logger.Warning("EditorController", "drop rejected", map[string]interface{}{
			"name":       src.Name(),
			"media_type": src.MediaType(),
		})
		ec.view.ShowInformation("Avatar", IncompatibleTypeMessage)
		return
	}
	ec.LoadInBackground(src)
}

// LoadInBackground decodes src off the UI goroutine and shows it when done.
func (ec *EditorController) LoadInBackground(src services.Source) {
	ec.view.UpdateStatus(fmt.Sprintf("Loading %s...", src.Name()))

	ec.pending.Add(1)
	go func() {
		defer ec.pending.Done()
		if err := ec.LoadAvatar(ec.ctx, src); err != nil && !errors.Is(err, services.ErrSuperseded) {
			ec.logger.Error("EditorController", err, map[string]interface{}{"source": src.Name()})
		}
	}()
}

// LoadAvatar decodes src and, unless a newer drop overtook it, makes it the
// avatar on the canvas.
func (ec *EditorController) LoadAvatar(ctx context.Context, src services.Source) error {
	stop := ec.timings.Start("load")
	avatar, err := ec.input.Load(ctx, src)
	if err != nil {
		if errors.Is(err, services.ErrSuperseded) {
			return err
		}
		fyne.Do(func() {
			if errors.Is(err, services.ErrUnsupportedType) {
				ec.view.ShowInformation("Avatar", IncompatibleTypeMessage)
				return
			}
			ec.view.UpdateStatus("Load failed")
			ec.view.ShowError("Image load failed", err)
		})
		return err
	}

	stop()

	fyne.Do(func() {
		if err := ec.renderer.ShowAvatar(avatar.Image); err != nil {
			ec.logger.Error("EditorController", err, nil)
			ec.view.ShowError("Image load failed", err)
			return
		}
		ec.view.SetAvatar(ec.renderer.Snapshot(), ec.pan.CanvasSide())
		ec.view.UpdateStatus(fmt.Sprintf("%s %dx%d", avatar.Source, avatar.Width, avatar.Height))
	})
	return nil
}

func (ec *EditorController) PanStart(p models.Point) {
	if !ec.renderer.HasAvatar() {
		return
	}
	ec.pan.BeginDrag(p)
}

// PanMove repaints at the uncommitted offset.
func (ec *EditorController) PanMove(p models.Point) {
	if _, ok := ec.pan.DragTo(p); !ok {
		return
	}
	ec.repaint()
}

// PanEnd commits the offset as the new baseline.
func (ec *EditorController) PanEnd(p models.Point) {
	offset, ok := ec.pan.EndDrag(p)
	if !ok {
		return
	}
	ec.repaint()
	ec.logger.Debug("EditorController", "pan committed", map[string]interface{}{
		"x": offset.X,
		"y": offset.Y,
	})
}

func (ec *EditorController) repaint() {
	ec.renderer.Repaint()
	ec.view.SetAvatar(ec.renderer.Snapshot(), ec.pan.CanvasSide())
}

func (ec *EditorController) NextFilter() {
	if ec.carousel.Next() {
		ec.showActiveFilter()
	}
}

func (ec *EditorController) PreviousFilter() {
	if ec.carousel.Previous() {
		ec.showActiveFilter()
	}
}

func (ec *EditorController) showActiveFilter() {
	active := ec.carousel.Active()
	ec.view.SetActiveFilter(ec.carousel.Index(), ec.carousel.Offset())
	ec.view.UpdateStatus(fmt.Sprintf("%s  %s", active.Name, ec.carousel.Transform()))
}

// Download copies the canvas here and encodes the copy in the background.
func (ec *EditorController) Download() {
	if !ec.renderer.HasAvatar() {
		ec.logger.Warning("EditorController", "nothing to export", nil)
		ec.view.UpdateStatus("Drop an image first")
		return
	}
	clone, err := ec.export.Snapshot(ec.renderer.Surface())
	if err != nil {
		ec.logger.Warning("EditorController", "nothing to export", nil)
		ec.view.UpdateStatus("Drop an image first")
		return
	}
	overlay := ec.carousel.Active().Image
	ec.view.UpdateStatus("Exporting...")

	ec.pending.Add(1)
	go func() {
		defer ec.pending.Done()
		result, err := ec.export.Compose(ec.ctx, clone, overlay)
		if err == nil {
			ec.timings.Record("export", result.Duration)
		}
		fyne.Do(func() {
			if err != nil {
				ec.logger.Error("EditorController", err, nil)
				ec.view.UpdateStatus("Export failed")
				ec.view.ShowError("Export failed", err)
				return
			}
			ec.view.UpdateStatus(fmt.Sprintf("Saved %s", result.Path))
		})
	}()
}

// HandleKey maps Right, Left and Space to next, previous and download.
func (ec *EditorController) HandleKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyRight:
		ec.NextFilter()
	case fyne.KeyLeft:
		ec.PreviousFilter()
	case fyne.KeySpace:
		ec.Download()
	}
}

// Timings reports how long loads and exports took this session.
func (ec *EditorController) Timings() *timing.Tracker {
	return ec.timings
}

// Wait blocks until background loads and exports have finished.
func (ec *EditorController) Wait() {
	ec.pending.Wait()
}

// Shutdown cancels background work and waits for it.
func (ec *EditorController) Shutdown() {
	ec.cancel()

	ec.input.Shutdown()
	ec.pending.Wait()
}
