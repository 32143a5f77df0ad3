// Package ui provides user interface components for the application
package ui

import (
	"WebPBatchConverter/common"
	"WebPBatchConverter/locales"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// AppVersion is the application version shown in the about window.
const AppVersion = "1.0.0"

// ShowAboutWindow creates and displays the about window.
func ShowAboutWindow(parent fyne.Window) {
	title := widget.NewLabel(common.AppName)
	title.TextStyle = fyne.TextStyle{Bold: true}

	version := widget.NewLabel(locales.Translate("about.label.version") + " " + AppVersion)
	description := widget.NewLabel(locales.Translate("about.text.description"))
	description.Wrapping = fyne.TextWrapWord

	window := fyne.CurrentApp().NewWindow(locales.Translate("about.win.title"))
	window.SetContent(container.NewVBox(title, version, description))
	window.Resize(fyne.NewSize(500, 300))
	window.CenterOnScreen()
	window.Show()
}
