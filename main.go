// main.go

package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"WebPBatchConverter/common"
	"WebPBatchConverter/locales"
	"WebPBatchConverter/modules"
	"WebPBatchConverter/theme"
	"WebPBatchConverter/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ConverterApp is the main application structure.
type ConverterApp struct {
	app             fyne.App
	mainWindow      fyne.Window
	configMgr       *common.ConfigManager
	converterModule *modules.WebPConverterModule
	logger          *common.Logger
	errorHandler    *common.ErrorHandler
	configInitError error // Stores any error that occurs during config initialization
}

// NewConverterApp initializes the main application with proper logging, theme, and window setup.
func NewConverterApp() *ConverterApp {
	// Initialize logger first
	var logger *common.Logger
	var err error
	logMaxSizeMB := 10
	logMaxAgeDays := 7

	// User configuration directory for the log and config fallback locations
	userConfigDir, userConfigErr := os.UserConfigDir()

	// 1. A log file in the working directory takes precedence
	rootLogPath := common.FileNameLog
	if common.FileExists(rootLogPath) {
		logger, err = common.NewLogger(rootLogPath, logMaxSizeMB, logMaxAgeDays)
		if err == nil {
			fmt.Printf("Using existing log file in root directory\n")
		}
	}

	// 2. If not in root, use the user configuration directory
	if logger == nil && userConfigErr == nil {
		logDir := common.JoinPaths(userConfigDir, common.AppName, common.FolderNameLog)
		userLogPath := common.JoinPaths(logDir, common.FileNameLog)

		if common.FileExists(userLogPath) {
			logger, err = common.NewLogger(userLogPath, logMaxSizeMB, logMaxAgeDays)
			if err == nil {
				fmt.Printf("Using existing log file in user config directory\n")
			}
		} else {
			if err := common.EnsureDirectoryExists(logDir); err == nil {
				logger, err = common.NewLogger(userLogPath, logMaxSizeMB, logMaxAgeDays)
				if err == nil {
					fmt.Printf("Created new log file in user config directory\n")
				}
			}
		}
	}

	// 3. If we still have no logger, fall back to the working directory
	if logger == nil {
		logger, err = common.NewLogger(rootLogPath, logMaxSizeMB, logMaxAgeDays)
		if err != nil {
			fmt.Printf("CRITICAL ERROR: Failed to initialize logger in any location: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Created new log file in root directory as fallback\n")
	}

	common.FlushEarlyLogs(logger)

	// Create and set up our Fyne application
	fyneApp := app.NewWithID(common.AppID)
	fyneApp.Settings().SetTheme(theme.NewCustomTheme())

	ca := &ConverterApp{
		app:    fyneApp,
		logger: logger,
	}

	// Initialize ConfigManager with the same fallback chain as the logger
	var configMgr *common.ConfigManager
	var configInitError error

	// 1. A config file in the working directory takes precedence
	rootConfigPath := common.FileNameSettings
	if common.FileExists(rootConfigPath) {
		configMgr, configInitError = common.NewConfigManager(rootConfigPath)
		if configInitError == nil {
			ca.logger.Info("Using existing config file in root directory")
		}
	}

	// 2. If not in root, use the user configuration directory
	if configMgr == nil && userConfigErr == nil {
		appConfigDir := common.JoinPaths(userConfigDir, common.AppName)
		userConfigPath := common.JoinPaths(appConfigDir, common.FileNameSettings)

		if common.FileExists(userConfigPath) {
			configMgr, configInitError = common.NewConfigManager(userConfigPath)
			if configInitError == nil {
				ca.logger.Info("Using existing config file in user config directory")
			}
		} else {
			if err := common.EnsureDirectoryExists(appConfigDir); err == nil {
				if createErr := common.CreateConfigFile(userConfigPath); createErr == nil {
					ca.logger.Info("Created new config file in user config directory. Attempting to load it.")
					configMgr, configInitError = common.NewConfigManager(userConfigPath)
					if configInitError == nil {
						ca.logger.Info("Successfully loaded newly created config from user config directory")
					} else {
						ca.logger.Warning("Failed to load newly created config from user config directory: %v", configInitError)
						configMgr = nil // Ensure we fallback
					}
				} else {
					ca.logger.Warning("Failed to create config file in user config directory: %v", createErr)
				}
			} else {
				ca.logger.Warning("Failed to ensure config directory exists in user config directory: %v", err)
			}
		}
	}

	// 3. If we still have no configuration, fall back to the working directory
	if configMgr == nil {
		ca.logger.Info("Using local path for configuration as fallback")
		if createErr := common.CreateConfigFile(rootConfigPath); createErr == nil {
			ca.logger.Info("Created new config file in root directory. Attempting to load it.")
			configMgr, configInitError = common.NewConfigManager(rootConfigPath)
			if configInitError != nil {
				ca.logger.Error("Failed to load newly created config from root directory: %v", configInitError)
			} else {
				ca.logger.Info("Successfully loaded newly created config from root directory")
			}
		} else {
			ca.logger.Error("CRITICAL: Failed to create config file in root directory: %v", createErr)
			configInitError = fmt.Errorf("failed to create config file in root directory: %w", createErr)
		}
	}

	ca.configMgr = configMgr
	ca.configInitError = configInitError

	// Initialize localization
	if ca.configMgr != nil {
		common.DetectAndSetLanguage(ca.configMgr, ca.logger)
	} else {
		ca.logger.Warning("ConfigManager is not available. Skipping language detection from config. Default language will be used.")
		locales.LoadTranslations("en")
	}

	// Create the main window with localized title
	mainWindow := fyneApp.NewWindow(locales.Translate("main.app.title"))
	mainWindow.Resize(fyne.NewSize(700, 500))

	// Initialize error handler and assign the window for dialogs
	ca.errorHandler = common.NewErrorHandler(ca.logger)
	ca.errorHandler.SetWindow(mainWindow)
	ca.mainWindow = mainWindow

	// Log application startup now that all essential components are set.
	ca.logger.Info("%s", locales.Translate("main.log.appstart"))

	return ca
}

// Run starts the application, builds the GUI, and runs the main event loop.
func (ca *ConverterApp) Run() {
	// Setup panic recovery for the main application loop
	defer func() {
		if r := recover(); r != nil {
			stackTrace := string(debug.Stack())
			if ca.errorHandler != nil {
				ca.errorHandler.ShowPanicError(r, stackTrace)
			} else if ca.logger != nil {
				// Fallback if errorHandler is somehow nil
				ca.logger.Error("PANIC RECOVERED (ErrorHandler not available): %v\n%s", r, stackTrace)
			}
		}
	}()

	ca.createMainContent()

	// Show the main window
	ca.mainWindow.Show()

	// Check for initialization errors after showing the window
	if ca.configInitError != nil {
		if ca.errorHandler != nil {
			ca.logger.Info("Displaying initialization error dialog for: %v", ca.configInitError)
			ca.errorHandler.ShowInitializationErrorDialog(ca.configInitError)
		} else if ca.logger != nil {
			ca.logger.Error("Initialization error occurred but ErrorHandler is not available to show dialog: %v", ca.configInitError)
		}
	}

	// Run the application event loop
	ca.app.Run() // This blocks until the app exits

	ca.logger.Info("%s", locales.Translate("main.log.appexit"))
	ca.logger.Close()
}

// createMainContent creates the main window content with the converter module
func (ca *ConverterApp) createMainContent() fyne.CanvasObject {
	ca.converterModule = modules.NewWebPConverterModule(ca.mainWindow, ca.configMgr, ca.errorHandler)

	menuBar := ca.createMenuBar()
	content := container.NewBorder(menuBar, nil, nil, nil, ca.converterModule.GetContent())
	ca.mainWindow.SetContent(content)
	return content
}

// createMenuBar creates a simple horizontal bar with Settings, Log, Help and About buttons.
func (ca *ConverterApp) createMenuBar() fyne.CanvasObject {
	settingsButton := widget.NewButton(locales.Translate("settings.win.title"), func() {
		ui.ShowSettingsWindow(ca.mainWindow, ca.configMgr, ca.errorHandler)
	})
	logButton := widget.NewButton(locales.Translate("common.logviewer.header"), func() {
		common.ShowLogViewerWindow(ca.mainWindow)
	})
	helpButton := widget.NewButton(locales.Translate("main.menu.help"), func() {
		ui.ShowHelpWindow(ca.mainWindow)
	})
	aboutButton := widget.NewButton(locales.Translate("main.menu.about"), func() {
		ui.ShowAboutWindow(ca.mainWindow)
	})

	return container.NewHBox(settingsButton, logButton, helpButton, aboutButton)
}

// main is the entry point. It ensures config and language, then starts the converter app.
func main() {
	ca := NewConverterApp()
	ca.Run()
}
