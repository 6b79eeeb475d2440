package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const readyStatus = "Drop an image onto the window"

// StatusBar shows the latest editor message and the active filter.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	filterLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{
		statusLabel: widget.NewLabel(readyStatus),
		filterLabel: widget.NewLabel(""),
	}
	sb.statusLabel.Truncation = fyne.TextTruncateEllipsis
	sb.container = container.NewBorder(nil, nil, nil, sb.filterLabel, sb.statusLabel)
	return sb
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetFilterInfo shows which filter is active.
func (sb *StatusBar) SetFilterInfo(info string) {
	sb.filterLabel.SetText(info)
}

func (sb *StatusBar) GetFilterInfo() string {
	return sb.filterLabel.Text
}

func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText(readyStatus)
	sb.filterLabel.SetText("")
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
