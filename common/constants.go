// constants.go

// Package common provides shared functionality and constants for the WebPBatchConverter application.
// This file contains constants used across the application to replace hardcoded strings.
package common

// ModuleKeys - Constants for module identification in configuration
const (
	// ModuleKeyWebPConverter is the key for the WebP converter module
	ModuleKeyWebPConverter = "webp_converter"
)

// OperationNames - Constants for operation names used in ErrorContext
const (
	// OperationFolderValidation indicates a folder validation operation
	OperationFolderValidation = "FolderValidation"
)

// FileNames - Constants for file names
const (
	// FileNameSettings is the name of the configuration file
	FileNameSettings = "settings.conf"

	// FileNameLog is the name of the application log file
	FileNameLog = "webpbatchconverter.log"

	//FolderNameLog is the name of the log folder
	FolderNameLog = "log"
)

// AppIdentifiers - Constants for application identification
const (
	// AppID is the application identifier
	AppID = "com.webpbatchconverter.app"

	//AppName is the application name
	AppName = "WebPBatchConverter"
)
