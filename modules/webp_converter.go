// modules/webp_converter.go

// Package modules provides functionality for different modules in the WebPBatchConverter application.

// This module converts PNG images from the source folder to WebP images in the
// destination folder while maintaining the same folder structure. The conversion
// runs in a background goroutine and reports progress through a message mailbox
// polled by the UI.

package modules

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"WebPBatchConverter/common"
	"WebPBatchConverter/convert"
	"WebPBatchConverter/locales"
)

// pollInterval is how often the UI drains the worker mailbox.
const pollInterval = 100 * time.Millisecond

// WebPConverterModule implements a module for batch converting PNG images to WebP.
// It provides a user interface for selecting source and destination folders,
// shows the number of discovered PNG files, and runs the conversion in a
// background goroutine with a progress dialog and per-file status messages.
type WebPConverterModule struct {
	// ModuleBase provides common module functionality like error handling and UI components
	*common.ModuleBase // Embedded pointer to shared base

	// Folder selection
	sourceFolderEntry *widget.Entry
	destFolderEntry   *widget.Entry

	// Submit button
	submitBtn *widget.Button

	// Current state, guarded by stateMutex
	stateMutex   sync.Mutex
	isConverting bool
}

// NewWebPConverterModule creates a new instance of WebPConverterModule.
// It initializes the module with the provided window, configuration manager, and error handler,
// sets up the UI components, and loads any saved configuration.
func NewWebPConverterModule(window fyne.Window, configMgr *common.ConfigManager, errorHandler *common.ErrorHandler) *WebPConverterModule {
	m := &WebPConverterModule{
		ModuleBase: common.NewModuleBase(window, configMgr, errorHandler),
	}

	m.initializeUI()
	if m.ConfigMgr != nil {
		m.LoadConfig(m.ConfigMgr.GetModuleConfig(m.GetConfigName()))
	}

	return m
}

// GetName returns the localized name of the module.
func (m *WebPConverterModule) GetName() string {
	return locales.Translate("webpconverter.mod.name")
}

// GetConfigName returns the configuration identifier for the module.
func (m *WebPConverterModule) GetConfigName() string {
	return common.ModuleKeyWebPConverter
}

// GetIcon returns the module's icon resource.
func (m *WebPConverterModule) GetIcon() fyne.Resource {
	return theme.MediaPhotoIcon()
}

// GetModuleContent returns the module's specific content without status messages.
func (m *WebPConverterModule) GetModuleContent() fyne.CanvasObject {
	// Source folder selection field with browse button
	sourceFolderField := common.CreateFolderSelectionField(
		locales.Translate("webpconverter.label.source"),
		m.sourceFolderEntry,
		func(path string) {
			m.sourceFolderEntry.SetText(common.NormalizePath(path))
			m.onSourceFolderChanged()
		},
	)

	// Destination folder selection field with browse button
	destFolderField := common.CreateFolderSelectionField(
		locales.Translate("webpconverter.label.dest"),
		m.destFolderEntry,
		func(path string) {
			m.destFolderEntry.SetText(common.NormalizePath(path))
			m.onDestFolderChanged()
		},
	)

	// Create form for folder inputs
	inputForm := &widget.Form{
		Items: []*widget.FormItem{
			{Text: locales.Translate("webpconverter.label.source"), Widget: sourceFolderField},
			{Text: locales.Translate("webpconverter.label.dest"), Widget: destFolderField},
		},
	}

	// Create module content with description and separator
	moduleContent := container.NewVBox(
		common.CreateDescriptionLabel(locales.Translate("webpconverter.label.info")),
		widget.NewSeparator(),
		inputForm,
	)

	// Add submit button
	if m.submitBtn != nil {
		moduleContent.Add(container.NewHBox(layout.NewSpacer(), m.submitBtn))
	}

	return moduleContent
}

// GetContent returns the module's main UI content.
func (m *WebPConverterModule) GetContent() fyne.CanvasObject {
	// Create the complete module layout with status messages container
	return m.CreateModuleLayoutWithStatusMessages(m.GetModuleContent())
}

// LoadConfig applies the stored configuration to the UI elements.
func (m *WebPConverterModule) LoadConfig(cfg common.ModuleConfig) {
	m.IsLoadingConfig = true
	defer func() { m.IsLoadingConfig = false }()

	if common.IsNilConfig(cfg) {
		return
	}

	if m.sourceFolderEntry != nil {
		m.sourceFolderEntry.SetText(cfg.Get("source_folder", ""))
	}
	if m.destFolderEntry != nil {
		m.destFolderEntry.SetText(cfg.Get("dest_folder", ""))
	}

	m.updateSubmitState()
}

// SaveConfig stores the current UI state into the module configuration.
func (m *WebPConverterModule) SaveConfig() common.ModuleConfig {
	if m.IsLoadingConfig {
		return common.NewModuleConfig() // Safeguard: no save if config is being loaded
	}

	cfg := common.NewModuleConfig()
	cfg.Set("source_folder", common.NormalizePath(m.sourceFolderEntry.Text))
	cfg.Set("dest_folder", common.NormalizePath(m.destFolderEntry.Text))

	if m.ConfigMgr != nil {
		m.ConfigMgr.SaveModuleConfig(m.GetConfigName(), cfg)
	}
	return cfg
}

// initializeUI sets up the user interface components.
func (m *WebPConverterModule) initializeUI() {
	m.sourceFolderEntry = widget.NewEntry()
	m.sourceFolderEntry.OnChanged = m.CreateChangeHandler(m.onSourceFolderChanged)

	m.destFolderEntry = widget.NewEntry()
	m.destFolderEntry.OnChanged = m.CreateChangeHandler(m.onDestFolderChanged)

	m.submitBtn = common.CreateDisabledSubmitButton(
		locales.Translate("webpconverter.button.convert"),
		m.Start,
	)
}

// onSourceFolderChanged persists the new source folder and reports how many
// PNG files were discovered under it.
func (m *WebPConverterModule) onSourceFolderChanged() {
	m.SaveConfig()
	m.updateSubmitState()

	sourceFolder := common.NormalizePath(m.sourceFolderEntry.Text)
	if sourceFolder == "" || !common.DirectoryExists(sourceFolder) {
		return
	}

	files := convert.FindPNGFiles(sourceFolder)
	m.Logger.Debug("Discovered %d PNG file(s) in %s", len(files), sourceFolder)
	m.AddInfoMessage(common.FormatCountMessage(len(files),
		"webpconverter.status.foundone",
		"webpconverter.status.foundmany"))
}

// onDestFolderChanged persists the new destination folder.
func (m *WebPConverterModule) onDestFolderChanged() {
	m.SaveConfig()
	m.updateSubmitState()
}

// updateSubmitState enables the convert button only when both folders are filled in.
func (m *WebPConverterModule) updateSubmitState() {
	if m.submitBtn == nil {
		return
	}

	if common.IsEmptyString(m.sourceFolderEntry.Text) || common.IsEmptyString(m.destFolderEntry.Text) {
		m.submitBtn.Disable()
		return
	}
	m.submitBtn.Enable()
}

// beginConversion atomically claims the converting state. It returns false
// when a conversion is already running.
func (m *WebPConverterModule) beginConversion() bool {
	m.stateMutex.Lock()
	defer m.stateMutex.Unlock()

	if m.isConverting {
		return false
	}
	m.isConverting = true
	return true
}

// endConversion releases the converting state.
func (m *WebPConverterModule) endConversion() {
	m.stateMutex.Lock()
	defer m.stateMutex.Unlock()
	m.isConverting = false
}

// converting reports whether a conversion is currently running.
func (m *WebPConverterModule) converting() bool {
	m.stateMutex.Lock()
	defer m.stateMutex.Unlock()
	return m.isConverting
}

// Start validates the selected folders and launches the conversion.
// A second activation while a conversion is running is ignored.
func (m *WebPConverterModule) Start() {
	if m.converting() {
		return
	}

	sourceFolder := common.NormalizePath(m.sourceFolderEntry.Text)
	destFolder := common.NormalizePath(m.destFolderEntry.Text)

	if !common.DirectoryExists(sourceFolder) {
		m.HandleError(errors.New(locales.Translate("webpconverter.err.nosource")), common.OperationFolderValidation)
		return
	}
	if common.IsEmptyString(destFolder) {
		m.HandleError(errors.New(locales.Translate("webpconverter.err.nodest")), common.OperationFolderValidation)
		return
	}
	if err := common.EnsureDirectoryExists(destFolder); err != nil {
		m.HandleError(err, common.OperationFolderValidation)
		return
	}

	files := convert.FindPNGFiles(sourceFolder)
	if len(files) == 0 {
		m.AddWarningMessage(locales.Translate("webpconverter.status.nofiles"))
		return
	}

	if !m.beginConversion() {
		return
	}
	common.DisableModuleControls(m.sourceFolderEntry, m.destFolderEntry, m.submitBtn)

	m.ClearStatusMessages()
	m.AddInfoMessage(fmt.Sprintf(locales.Translate("webpconverter.status.source"), sourceFolder))
	m.AddInfoMessage(fmt.Sprintf(locales.Translate("webpconverter.status.dest"), destFolder))
	m.AddInfoMessage(common.FormatCountMessage(len(files),
		"webpconverter.status.foundone",
		"webpconverter.status.foundmany"))

	m.Logger.Info("Starting conversion: %s -> %s (%d files)", sourceFolder, destFolder, len(files))

	m.ShowProgressDialog(locales.Translate("webpconverter.dialog.header"))

	mailbox := convert.NewMailbox()
	worker := convert.NewWorker(sourceFolder, destFolder, files, mailbox)

	go worker.Run()
	go m.pollMailbox(mailbox)
}

// pollMailbox drains the worker mailbox on a fixed interval and applies the
// messages to the UI. It exits once the completion message arrives.
func (m *WebPConverterModule) pollMailbox(mailbox *convert.Mailbox) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for range ticker.C {
		for _, msg := range mailbox.Drain() {
			if done := m.applyMessage(msg); done {
				return
			}
		}
	}
}

// applyMessage updates the UI for a single worker message.
// Returns true when the message marks the end of the conversion.
func (m *WebPConverterModule) applyMessage(msg convert.Message) bool {
	switch msg := msg.(type) {
	case convert.LogMessage:
		switch msg.Severity {
		case common.SeverityError:
			m.AddErrorMessage(msg.Text)
		case common.SeverityWarning:
			m.AddWarningMessage(msg.Text)
		default:
			m.AddSuccessMessage(msg.Text)
		}

	case convert.ProgressMessage:
		progress := 0.0
		if msg.Total > 0 {
			progress = float64(msg.Current) / float64(msg.Total)
		}
		m.UpdateProgressStatus(progress,
			fmt.Sprintf(locales.Translate("webpconverter.status.converting"), msg.Current, msg.Total))

	case convert.CompleteMessage:
		m.finishConversion(msg)
		return true
	}

	return false
}

// finishConversion posts the summary, closes out the progress dialog and
// returns the module to its idle state.
func (m *WebPConverterModule) finishConversion(msg convert.CompleteMessage) {
	summary := fmt.Sprintf(locales.Translate("webpconverter.status.complete"), msg.Succeeded, msg.Failed)

	m.Logger.Info("Conversion finished: %d succeeded, %d failed", msg.Succeeded, msg.Failed)

	m.UpdateProgressStatus(1.0, summary)
	if msg.Failed > 0 {
		m.AddWarningMessage(summary)
	} else {
		m.AddInfoMessage(summary)
	}
	m.CompleteProgressDialog()

	common.EnableModuleControls(m.sourceFolderEntry, m.destFolderEntry, m.submitBtn)
	common.UpdateButtonToCompleted(m.submitBtn)
	m.endConversion()
}
