package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the previous, download and next buttons under the strip.
type Toolbar struct {
	container      *fyne.Container
	previousButton *widget.Button
	downloadButton *widget.Button
	nextButton     *widget.Button

	previousHandler func()
	downloadHandler func()
	nextHandler     func()
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.previousButton = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		if t.previousHandler != nil {
			t.previousHandler()
		}
	})

	t.downloadButton = widget.NewButtonWithIcon("Download", theme.DownloadIcon(), func() {
		if t.downloadHandler != nil {
			t.downloadHandler()
		}
	})
	t.downloadButton.Importance = widget.HighImportance

	t.nextButton = widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		if t.nextHandler != nil {
			t.nextHandler()
		}
	})
}

func (t *Toolbar) buildLayout() {
	t.container = container.NewHBox(
		layout.NewSpacer(),
		t.previousButton,
		t.downloadButton,
		t.nextButton,
		layout.NewSpacer(),
	)
}

func (t *Toolbar) SetPreviousHandler(handler func()) {
	t.previousHandler = handler
}

func (t *Toolbar) SetDownloadHandler(handler func()) {
	t.downloadHandler = handler
}

func (t *Toolbar) SetNextHandler(handler func()) {
	t.nextHandler = handler
}

// SetBounds disables the arrows that would not move the carousel.
func (t *Toolbar) SetBounds(index, count int) {
	if index <= 0 {
		t.previousButton.Disable()
	} else {
		t.previousButton.Enable()
	}
	if index >= count-1 {
		t.nextButton.Disable()
	} else {
		t.nextButton.Enable()
	}
}

func (t *Toolbar) PreviousButton() *widget.Button { return t.previousButton }
func (t *Toolbar) DownloadButton() *widget.Button { return t.downloadButton }
func (t *Toolbar) NextButton() *widget.Button     { return t.nextButton }

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
