package sections

import "github.com/goliatone/go-sections/internal/runtimeconfig"

var (
	ErrLocalesRequired      = runtimeconfig.ErrLocalesRequired
	ErrDefaultLocaleMissing = runtimeconfig.ErrDefaultLocaleMissing
	ErrStorageDriverUnknown = runtimeconfig.ErrStorageDriverUnknown
	ErrStorageDSNRequired   = runtimeconfig.ErrStorageDSNRequired
	ErrTranslationBaseURL   = runtimeconfig.ErrTranslationBaseURL
	ErrLoggingLevelInvalid  = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config            = runtimeconfig.Config
	StorageConfig     = runtimeconfig.StorageConfig
	TranslationConfig = runtimeconfig.TranslationConfig
	LoggingConfig     = runtimeconfig.LoggingConfig
	Features          = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
