// common/language.go

package common

import (
	"WebPBatchConverter/locales"
	"os"
	"strings"
)

// DetectAndSetLanguage sets the application language based on the following priorities:
// configuration value, system locale, English fallback.
func DetectAndSetLanguage(configMgr *ConfigManager, logger *Logger) string {
	// 1. Try loading from configuration
	globalConfig := configMgr.GetGlobalConfig()
	configLang := strings.ToLower(globalConfig.Language)

	// 2. Check if the language from the configuration is supported
	supportedLangs := locales.GetAvailableLanguages()

	// Use language if it's in the configuration and supported
	if configLang != "" {
		for _, lang := range supportedLangs {
			if configLang == lang {
				locales.LoadTranslations(configLang)
				logger.Info("Loaded language from configuration: %s", configLang)
				return configLang
			}
		}
	}

	// 3. Try to detect the system language
	systemLang := getSystemLanguage()
	if len(systemLang) >= 2 {
		systemLang = systemLang[:2] // Use only the first two characters (e.g., "en", "cs", "de")
	}

	// If the system language is supported, use it and save it to the configuration
	if systemLang != "" {
		for _, lang := range supportedLangs {
			if systemLang == lang {
				locales.LoadTranslations(systemLang)
				logger.Info("Loaded language from system: %s", systemLang)
				globalConfig.Language = systemLang
				configMgr.SaveGlobalConfig(globalConfig)
				return systemLang
			}
		}
	}

	// 4. Fallback to default language (English)
	locales.LoadTranslations("en")
	logger.Info("Set default language - English")
	globalConfig.Language = "en"
	configMgr.SaveGlobalConfig(globalConfig)
	return "en"
}

// getSystemLanguage retrieves the system locale from the environment.
// Checks LC_ALL, LC_MESSAGES and LANG in that order, e.g. "cs_CZ.UTF-8".
func getSystemLanguage() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if value := os.Getenv(key); value != "" {
			return strings.ToLower(value)
		}
	}
	return ""
}
