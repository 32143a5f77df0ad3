// common/module_base.go

package common

import (
	"WebPBatchConverter/locales"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Module defines the interface that all modules must implement
type Module interface {
	GetName() string
	GetConfigName() string
	GetIcon() fyne.Resource
	GetContent() fyne.CanvasObject
	LoadConfig(config ModuleConfig)
	SaveConfig() ModuleConfig
}

// ModuleBase provides common functionality for all modules
type ModuleBase struct {
	Window          fyne.Window
	Content         fyne.CanvasObject
	ConfigMgr       *ConfigManager
	Progress        *widget.ProgressBar
	Status          *widget.Label
	ProgressDialog  *ProgressDialog
	IsLoadingConfig bool
	mutex           sync.Mutex
	ErrorHandler    *ErrorHandler
	Logger          *Logger
	StatusMessages  *StatusMessagesContainer // Container for status messages
}

// NewModuleBase initializes a new ModuleBase
func NewModuleBase(window fyne.Window, configMgr *ConfigManager, errorHandler *ErrorHandler) *ModuleBase {
	if errorHandler == nil {
		panic("ErrorHandler cannot be nil")
	}

	base := &ModuleBase{
		Window:       window,
		ConfigMgr:    configMgr,
		ErrorHandler: errorHandler,
		Logger:       errorHandler.GetLogger(),
	}
	base.initBaseComponents()

	return base
}

// initBaseComponents initializes common UI components
func (m *ModuleBase) initBaseComponents() {
	m.Progress = widget.NewProgressBar()
	m.Status = widget.NewLabel("")
	m.Status.Alignment = fyne.TextAlignCenter
	m.StatusMessages = NewStatusMessagesContainer()
}

// CreateModuleLayoutWithStatusMessages creates a layout with module content and status messages
// The module content is placed at the top and status messages at the bottom
func (m *ModuleBase) CreateModuleLayoutWithStatusMessages(moduleContent fyne.CanvasObject) fyne.CanvasObject {
	// Create a container for the module content
	mainContent := container.NewVBox(moduleContent)

	// Create a container for status messages
	statusMessagesContainer := m.GetStatusMessagesContainer().scroll

	// Use BorderLayout to make status messages fill the remaining space
	// The top part (mainContent) has fixed size based on its content
	// The bottom part (statusMessagesContainer) will expand to fill remaining space
	return container.New(
		layout.NewBorderLayout(mainContent, nil, nil, nil),
		mainContent,
		statusMessagesContainer,
	)
}

// GetName returns an empty name, should be overridden in modules
func (m *ModuleBase) GetName() string {
	return ""
}

// GetConfigName returns an unknown module name, should be overridden
func (m *ModuleBase) GetConfigName() string {
	return "unknown_module"
}

// GetIcon returns a default icon, should be overridden in modules
func (m *ModuleBase) GetIcon() fyne.Resource {
	return nil
}

// LoadConfig is a placeholder for configuration loading
func (m *ModuleBase) LoadConfig(cfg ModuleConfig) {
	m.IsLoadingConfig = true
	defer func() { m.IsLoadingConfig = false }()
}

// SaveConfig ensures that a valid `ModuleConfig` is returned
func (m *ModuleBase) SaveConfig() ModuleConfig {
	return NewModuleConfig()
}

// ShowProgressDialog displays a progress dialog. The dialog has no cancel
// action; its button becomes OK once the process completes.
func (m *ModuleBase) ShowProgressDialog(title string) {
	m.ProgressDialog = NewProgressDialog(m.Window, title, "", nil)
	m.ProgressDialog.Show()
}

// UpdateProgressStatus updates the progress bar and status text
func (m *ModuleBase) UpdateProgressStatus(progress float64, statusText string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.Progress.SetValue(progress)
	m.Status.SetText(statusText)

	if m.ProgressDialog != nil {
		m.ProgressDialog.UpdateProgress(progress)
		m.ProgressDialog.UpdateStatus(statusText)
	}
}

// CompleteProgressDialog marks the progress dialog as completed and changes the stop button to OK
func (m *ModuleBase) CompleteProgressDialog() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.ProgressDialog != nil {
		m.ProgressDialog.MarkCompleted()
	}
}

// HandleError processes an error with context
func (m *ModuleBase) HandleError(err error, operation string) {
	if m.ErrorHandler == nil {
		return
	}

	context := ErrorContext{
		Module:    m.GetName(),
		Operation: operation,
		Error:     err,
	}

	m.ErrorHandler.ShowErrorWithContext(context)
}

// ShowError displays a simple error dialog
func (m *ModuleBase) ShowError(err error) {
	if m.ErrorHandler == nil {
		return
	}

	m.ErrorHandler.ShowError(err)
}

// AddInfoMessage adds an information message to the status messages container
func (m *ModuleBase) AddInfoMessage(message string) {
	if m.StatusMessages != nil {
		m.StatusMessages.AddMessage(MessageInfo, message)
	}
}

// AddSuccessMessage adds a success message to the status messages container
func (m *ModuleBase) AddSuccessMessage(message string) {
	if m.StatusMessages != nil {
		m.StatusMessages.AddMessage(MessageSuccess, message)
	}
}

// AddWarningMessage adds a warning message to the status messages container
func (m *ModuleBase) AddWarningMessage(message string) {
	if m.StatusMessages != nil {
		m.StatusMessages.AddMessage(MessageWarning, message)
	}
}

// AddErrorMessage adds an error message to the status messages container
func (m *ModuleBase) AddErrorMessage(message string) {
	if m.StatusMessages != nil {
		m.StatusMessages.AddMessage(MessageError, message)
	}
}

// ClearStatusMessages clears all status messages
func (m *ModuleBase) ClearStatusMessages() {
	if m.StatusMessages != nil {
		m.StatusMessages.ClearMessages()
	}
}

// GetStatusMessagesContainer returns the status messages container
// If it doesn't exist, it creates a new one
func (m *ModuleBase) GetStatusMessagesContainer() *StatusMessagesContainer {
	// Make sure StatusMessages is initialized
	if m.StatusMessages == nil {
		m.StatusMessages = NewStatusMessagesContainer()
	}

	// Return the status messages container
	return m.StatusMessages
}

// CreateChangeHandler prevents unwanted save triggers during config loading
func (m *ModuleBase) CreateChangeHandler(handler func()) func(string) {
	return func(s string) {
		if !m.IsLoadingConfig {
			handler()
		}
	}
}

// FormatCountMessage formats a localized message whose wording depends on a
// count, choosing between singular and plural translation keys.
func FormatCountMessage(count int, singularKey, pluralKey string) string {
	if count == 1 {
		return fmt.Sprintf(locales.Translate(singularKey), count)
	}
	return fmt.Sprintf(locales.Translate(pluralKey), count)
}
