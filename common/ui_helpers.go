// common/ui_helpers.go

package common

import (
	"WebPBatchConverter/locales"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	nativedialog "github.com/sqweek/dialog"
)

// ProgressDialog represents a progress dialog with a progress bar and status label
type ProgressDialog struct {
	dialog        *dialog.CustomDialog
	window        fyne.Window
	progressBar   *widget.ProgressBar
	statusLabel   *widget.Label
	stopButton    *widget.Button
	cancelHandler func()
	isCompleted   bool
}

// NewProgressDialog creates a new progress dialog with optional cancel handler.
// With a nil cancelHandler the stop button does nothing until the process
// completes, at which point it becomes an OK button that closes the dialog.
func NewProgressDialog(window fyne.Window, title, initialStatus string, cancelHandler func()) *ProgressDialog {
	pd := &ProgressDialog{
		window:        window,
		progressBar:   widget.NewProgressBar(),
		statusLabel:   widget.NewLabel(initialStatus),
		cancelHandler: cancelHandler,
		isCompleted:   false,
	}

	// Create stop button with square icon
	pd.stopButton = widget.NewButtonWithIcon(locales.Translate("common.button.stop"), theme.MediaStopIcon(), func() {
		if pd.isCompleted {
			// If process is completed, close the dialog
			pd.Hide()
		} else if pd.cancelHandler != nil {
			// If process is running and cancel handler exists, call it
			pd.cancelHandler()
		}
	})
	pd.stopButton.Importance = widget.HighImportance

	// Create and initialize status label
	content := container.NewVBox(pd.progressBar, pd.statusLabel)
	content.Add(container.NewHBox(layout.NewSpacer(), pd.stopButton, layout.NewSpacer()))

	// Set minimum width for the content to ensure dialog has sufficient width for status messages
	rect := canvas.NewRectangle(color.Transparent)
	rect.SetMinSize(fyne.NewSize(450, 1))
	content.Add(rect)

	// Use NewCustomWithoutButtons to create a dialog without any default buttons
	pd.dialog = dialog.NewCustomWithoutButtons(title, content, window)

	return pd
}

// Show displays the progress dialog
func (pd *ProgressDialog) Show() {
	pd.dialog.Show()
}

// Hide hides the progress dialog
func (pd *ProgressDialog) Hide() {
	pd.dialog.Hide()
}

// UpdateProgress updates the progress bar value
func (pd *ProgressDialog) UpdateProgress(value float64) {
	pd.progressBar.SetValue(value)
}

// UpdateStatus updates the status text
func (pd *ProgressDialog) UpdateStatus(text string) {
	pd.statusLabel.SetText(text)
}

// MarkCompleted marks the process as completed and changes the stop button to OK button
func (pd *ProgressDialog) MarkCompleted() {
	pd.isCompleted = true
	pd.stopButton.SetText(locales.Translate("common.button.ok"))
	pd.stopButton.SetIcon(theme.ConfirmIcon())
}

// ShowError displays an error message and hides the progress dialog
func (pd *ProgressDialog) ShowError(err error) {
	pd.Hide()
	dialog.ShowError(err, pd.window)
}

// CreateNativeFolderBrowseButton creates a standardized folder browse button using native OS dialog
// Native dialogs are used instead of Fyne dialogs to avoid issues with folder
// selection on Windows platforms
func CreateNativeFolderBrowseButton(title string, buttonText string, changeHandler func(string)) *widget.Button {
	return widget.NewButtonWithIcon(buttonText, theme.FolderOpenIcon(), func() {
		dirname, err := nativedialog.Directory().Title(title).Browse()
		if err == nil && dirname != "" {
			if changeHandler != nil {
				changeHandler(dirname)
			}
		}
	})
}

// CreateFolderSelectionField creates a standardized folder selection field with browse button
func CreateFolderSelectionField(title string, entryField *widget.Entry, changeHandler func(string)) fyne.CanvasObject {
	// Create entry field if not provided
	if entryField == nil {
		entryField = widget.NewEntry()
	}

	// Set placeholder using localization key - always set it regardless of whether the entry field is new or existing
	entryField.SetPlaceHolder(locales.Translate("common.entry.placeholderpath"))

	// Set change handler if provided
	if changeHandler != nil {
		entryField.OnChanged = func(value string) {
			changeHandler(value)
		}
	}

	// Create browse button (icon only)
	browseBtn := CreateNativeFolderBrowseButton(
		title,
		"", // Empty text, only icon
		func(path string) {
			entryField.SetText(path)
			if changeHandler != nil {
				changeHandler(path)
			}
		},
	)

	// Create container with entry field and browse button
	return container.NewBorder(nil, nil, nil, browseBtn, entryField)
}

// CreateSubmitButton creates a standardized submit button with high importance
// This button is used to start a process or submit a form
func CreateSubmitButton(title string, handler func()) *widget.Button {
	btn := widget.NewButton(title, handler)
	btn.Importance = widget.HighImportance
	return btn
}

// CreateDescriptionLabel creates a standardized description label with wrapping and bold text
// This label is used for module descriptions and other informational text
func CreateDescriptionLabel(text string) *widget.Label {
	label := widget.NewLabel(text)
	label.Wrapping = fyne.TextWrapWord
	label.TextStyle = fyne.TextStyle{Bold: true}
	return label
}

// CreateDisabledSubmitButton creates a submit button that is disabled by default.
// Used for actions that require valid input before they can be executed.
func CreateDisabledSubmitButton(title string, handler func()) *widget.Button {
	btn := CreateSubmitButton(title, handler)
	btn.Disable()
	return btn
}

// UpdateButtonToCompleted updates a button to show completion state with a confirm icon.
func UpdateButtonToCompleted(button *widget.Button) {
	button.SetIcon(theme.ConfirmIcon())
}

// DisableModuleControls disables multiple UI components at once
// This is typically used when a process is running and user interaction
// should be prevented
func DisableModuleControls(components ...fyne.Disableable) {
	for _, component := range components {
		component.Disable()
	}
}

// EnableModuleControls enables multiple UI components at once
func EnableModuleControls(components ...fyne.Disableable) {
	for _, component := range components {
		component.Enable()
	}
}

// GetLogFilePath returns the path to the log file
func GetLogFilePath() string {
	// A log file in the working directory takes precedence
	if FileExists(FileNameLog) {
		return FileNameLog
	}

	// Otherwise the log lives in the user configuration directory
	configDir, err := os.UserConfigDir()
	if err != nil {
		return FileNameLog
	}

	return filepath.Join(configDir, AppName, FolderNameLog, FileNameLog)
}

// ShowLogViewerWindow creates and displays a window with the log file content.
// The log content is displayed in a scrollable text area with monospace font.
// The window includes a refresh button to reload the log content.
func ShowLogViewerWindow(parent fyne.Window) {
	// Get log file path
	logPath := GetLogFilePath()

	// Create text widget for log content
	logText := widget.NewEntry()
	logText.MultiLine = true
	logText.TextStyle = fyne.TextStyle{Monospace: true}
	logText.Wrapping = fyne.TextWrapBreak

	// Make the text read-only
	logText.Disable()

	// Create scroll container for the text
	var scrollContainerRef *container.Scroll
	scrollContainer := container.NewScroll(logText)
	scrollContainerRef = scrollContainer

	// Create window
	logWindow := fyne.CurrentApp().NewWindow(locales.Translate("common.logviewer.header"))

	// Create refresh button
	refreshBtn := widget.NewButtonWithIcon(
		locales.Translate("common.button.refresh"),
		theme.ViewRefreshIcon(),
		func() {
			loadLogContent(logPath, logText, scrollContainerRef)
		},
	)
	refreshBtn.Importance = widget.HighImportance
	// Create close button
	closeBtn := widget.NewButtonWithIcon(
		locales.Translate("common.button.close"),
		theme.CancelIcon(),
		func() {
			// Close the window
			logWindow.Close()
		},
	)

	// Create button container
	buttonContainer := container.NewHBox(
		layout.NewSpacer(),
		refreshBtn,
		closeBtn,
	)

	// Create main content container
	content := container.NewBorder(
		nil,
		buttonContainer,
		nil,
		nil,
		scrollContainer,
	)

	// Set content and configure window
	logWindow.SetContent(content)
	logWindow.Resize(fyne.NewSize(800, 600))
	logWindow.CenterOnScreen()

	// Load log content
	loadLogContent(logPath, logText, scrollContainerRef)

	// Show window
	logWindow.Show()
}

// loadLogContent loads the content of the log file into the text widget
// and scrolls to the end of the content.
func loadLogContent(logPath string, logText *widget.Entry, scrollContainer *container.Scroll) {
	// Read log file content
	content, err := os.ReadFile(logPath)
	if err != nil {
		logText.SetText(fmt.Sprintf(locales.Translate("common.err.readlog"), err))
		return
	}

	// Set text content
	logText.SetText(string(content))

	// Scroll to end (last line)
	lineCount := strings.Count(string(content), "\n")
	if lineCount > 0 {
		// Set cursor to last line
		logText.CursorRow = lineCount

		// Ensure UI updates
		logText.Refresh()

		// Use a timer to ensure scrolling happens after the content is rendered
		go func() {
			// Wait a short time for the UI to update
			time.Sleep(100 * time.Millisecond)

			// Scroll to bottom
			scrollContainer.ScrollToBottom()
		}()
	}
}

// CreateActionButton creates a standardized action button that changes state after execution.
// Used for buttons that perform an action and show completion state with an icon.
func CreateActionButton(initialText string, onAction func(), completedText string, completedIcon fyne.Resource) *widget.Button {
	btn := widget.NewButton(initialText, nil)
	btn.Importance = widget.HighImportance

	// Set the actual handler that will change state after execution
	btn.OnTapped = func() {
		if onAction != nil {
			onAction()
		}
		// Change button to completed state
		if completedText != "" {
			btn.SetText(completedText)
		}
		btn.SetIcon(completedIcon)
	}

	return btn
}
