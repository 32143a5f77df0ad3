package ui

import (
	"WebPBatchConverter/common"
	"WebPBatchConverter/locales"
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type languageItem struct {
	Code string
	Name string
}

// ShowSettingsWindow creates and displays the settings window.
func ShowSettingsWindow(parent fyne.Window, configMgr *common.ConfigManager, errorHandler *common.ErrorHandler) {
	if configMgr == nil {
		errorHandler.ShowError(errors.New(locales.Translate("settings.err.noconfig")))
		return
	}

	// Load current configuration
	config := configMgr.GetGlobalConfig()

	// Declare the save button in advance
	var saveButton *widget.Button

	// Language selection setup
	availableLangCodes := locales.GetAvailableLanguages()
	var langItems []languageItem
	for _, code := range availableLangCodes {
		name := locales.Translate("settings.lang." + code)
		if strings.HasPrefix(name, "settings.lang.") {
			name = code // Fallback to language code if translation is missing
		}
		langItems = append(langItems, languageItem{Code: code, Name: name})
	}

	langOptions := make([]string, len(langItems))
	for i, lang := range langItems {
		langOptions[i] = lang.Name
	}

	languageSelect := widget.NewSelect(langOptions, func(string) {
		if saveButton != nil {
			saveButton.SetIcon(nil)
			saveButton.SetText(locales.Translate("settings.write.settings"))
		}
	})
	for _, lang := range langItems {
		if lang.Code == config.Language {
			languageSelect.SetSelected(lang.Name)
			break
		}
	}

	// Create save button using abstraction
	saveButton = common.CreateActionButton(
		locales.Translate("settings.write.settings"),
		func() {
			// Find selected language code
			for _, lang := range langItems {
				if lang.Name == languageSelect.Selected {
					config.Language = lang.Code
					break
				}
			}

			// Save the configuration
			err := configMgr.SaveGlobalConfig(config)
			if err != nil {
				wrappedErr := fmt.Errorf("%s: %w", locales.Translate("settings.err.save"), err)
				errorHandler.ShowError(wrappedErr)
				return
			}
		},
		locales.Translate("settings.status.saved"),
		theme.ConfirmIcon(),
	)

	// Language changes apply after restart
	restartNote := widget.NewLabel(locales.Translate("settings.lang.restart"))
	restartNote.Wrapping = fyne.TextWrapWord

	// Update window content
	form := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem(locales.Translate("settings.lang.sel"), languageSelect),
		),
		restartNote,
		container.NewHBox(layout.NewSpacer(), saveButton),
	)

	// Create modal dialog instead of new window
	settingsDialog := dialog.NewCustom(
		locales.Translate("settings.win.title"),
		"", // Clear text for default button
		form,
		parent,
	)

	// Create own close button
	closeButton := widget.NewButton(locales.Translate("common.button.close"), func() {
		settingsDialog.Hide()
	})
	closeButton.Importance = widget.DangerImportance

	// Add close button to dialog
	settingsDialog.SetButtons([]fyne.CanvasObject{closeButton})

	// Set dialog size
	settingsDialog.Resize(fyne.NewSize(500, 260))

	// Show dialog as modal
	settingsDialog.Show()
}
