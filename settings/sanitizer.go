package settings

import (
	"sync"

	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	"github.com/goliatone/go-masker"
)

// SanitizerConfig controls the masker used for settings sanitization.
type SanitizerConfig struct {
	Masker *masker.Masker
}

var defaultMaskerOnce sync.Once

// DefaultMasker returns a masker instance configured to blank the stored AI
// credential.
func DefaultMasker() *masker.Masker {
	defaultMaskerOnce.Do(func() {
		if masker.Default == nil {
			return
		}
		registerDefaultMaskFields(masker.Default)
	})
	return masker.Default
}

// SanitizeSettings returns a copy of the settings safe to hand to hooks and
// log lines: the AI credential is masked, everything else passes through.
func SanitizeSettings(mask *masker.Masker, settings types.Settings) types.Settings {
	if settings.OpenAIAPIKey == "" {
		return settings
	}
	if mask == nil {
		mask = DefaultMasker()
	}
	if mask == nil {
		settings.OpenAIAPIKey = ""
		return settings
	}

	masked, err := mask.Mask(settings)
	if err != nil {
		settings.OpenAIAPIKey = ""
		return settings
	}
	switch masked := masked.(type) {
	case types.Settings:
		return masked
	default:
		settings.OpenAIAPIKey = ""
		return settings
	}
}

func registerDefaultMaskFields(mask *masker.Masker) {
	if mask == nil {
		return
	}
	mask.RegisterMaskField("OpenAIAPIKey", "filled4")
	mask.RegisterMaskField("openai_api_key", "filled4")
}
