package views

import (
	"fmt"
	"image"

	"avatar-filter/internal/models"
	"avatar-filter/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// MainView is the editor window content: the avatar canvas with its filter
// overlay, the filter strip, the toolbar and the status bar. All methods run
// on the UI goroutine.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	avatarCanvas  *components.AvatarCanvas
	filterStrip   *components.FilterStrip
	toolbar       *components.Toolbar
	statusBar     *components.StatusBar

	filters []models.FilterEntry
}

func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window:       window,
		avatarCanvas: components.NewAvatarCanvas(),
		filterStrip:  components.NewFilterStrip(),
		toolbar:      components.NewToolbar(),
		statusBar:    components.NewStatusBar(),
	}
	view.buildLayout()
	return view
}

func (mv *MainView) buildLayout() {
	strip := container.NewScroll(mv.filterStrip)
	strip.Direction = container.ScrollNone

	bottomArea := container.NewVBox(
		strip,
		mv.toolbar.GetContainer(),
		mv.statusBar.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		nil,
		bottomArea,
		nil,
		nil,
		container.NewCenter(mv.avatarCanvas),
	)

	mv.window.SetContent(mv.mainContainer)
}

// Event handler setters - called by controller

func (mv *MainView) SetPanHandlers(start, move, end func(models.Point)) {
	mv.avatarCanvas.SetPanHandlers(start, move, end)
}

func (mv *MainView) SetPreviousHandler(handler func()) {
	mv.toolbar.SetPreviousHandler(handler)
}

func (mv *MainView) SetNextHandler(handler func()) {
	mv.toolbar.SetNextHandler(handler)
}

func (mv *MainView) SetDownloadHandler(handler func()) {
	mv.toolbar.SetDownloadHandler(handler)
}

// SetDropHandler receives files dropped anywhere on the window.
func (mv *MainView) SetDropHandler(handler func(fyne.Position, []fyne.URI)) {
	mv.window.SetOnDropped(handler)
}

// SetKeyHandler receives keys typed while no widget has focus.
func (mv *MainView) SetKeyHandler(handler func(*fyne.KeyEvent)) {
	mv.window.Canvas().SetOnTypedKey(handler)
}

// UI update methods - called by controller

func (mv *MainView) SetAvatar(img image.Image, side int) {
	mv.avatarCanvas.SetAvatar(img, side)
}

// SetFilters fills the strip and shows the first filter over the canvas.
func (mv *MainView) SetFilters(entries []models.FilterEntry) {
	mv.filters = entries
	mv.filterStrip.SetFilters(entries)
	if len(entries) > 0 {
		mv.SetActiveFilter(0, 0)
	}
}

func (mv *MainView) SetActiveFilter(index int, offsetVmin float32) {
	if index < 0 || index >= len(mv.filters) {
		return
	}
	mv.avatarCanvas.SetOverlay(mv.filters[index].Image)
	mv.filterStrip.SetActive(index, offsetVmin)
	mv.toolbar.SetBounds(index, len(mv.filters))
	mv.statusBar.SetFilterInfo(fmt.Sprintf("%s (%d/%d)", mv.filters[index].Name, index+1, len(mv.filters)))
}

func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// ShowInformation displays a modal message.
func (mv *MainView) ShowInformation(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(title string, err error) {
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), mv.window)
}

func (mv *MainView) GetAvatarCanvas() *components.AvatarCanvas {
	return mv.avatarCanvas
}

func (mv *MainView) GetFilterStrip() *components.FilterStrip {
	return mv.filterStrip
}

func (mv *MainView) GetToolbar() *components.Toolbar {
	return mv.toolbar
}

func (mv *MainView) GetStatusBar() *components.StatusBar {
	return mv.statusBar
}

func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}
