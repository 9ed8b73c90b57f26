package idiomate

import "strings"

// LanguageTable holds the static language configuration: alias
// normalization, expected output script per language, and the reverse
// script-to-language lookup used by the fallback retry. Tables are loaded
// once at startup and never mutated, so they are safe to share by
// reference across concurrent requests.
type LanguageTable struct {
	// Aliases maps short codes and full names to canonical codes
	// (e.g., "en" and "english" -> "eng_Latn").
	Aliases map[string]string

	// Scripts maps canonical language codes to their expected output
	// script. A language may map to ScriptUnknown, which registers the
	// code as valid while skipping script validation for it.
	Scripts map[string]Script

	// Languages maps a script back to the canonical code assumed to have
	// produced text in that script, for the fallback retry.
	Languages map[Script]string
}

// DefaultLanguageTable returns the built-in language configuration.
func DefaultLanguageTable() *LanguageTable {
	return &LanguageTable{
		Aliases: map[string]string{
			"en":      "eng_Latn",
			"eng":     "eng_Latn",
			"english": "eng_Latn",
			"hi":      "hin_Deva",
			"hin":     "hin_Deva",
			"hindi":   "hin_Deva",
			"te":      "tel_Telu",
			"tel":     "tel_Telu",
			"telugu":  "tel_Telu",
			"zh":      "zho_Hans",
			"chinese": "zho_Hans",
			"de":      "deu_Latn",
			"german":  "deu_Latn",
		},
		Scripts: map[string]Script{
			"eng_Latn": ScriptLatin,
			"hin_Deva": ScriptDevanagari,
			"tel_Telu": ScriptTelugu,
			"deu_Latn": ScriptLatin,
			// Han is not a classified script; validation is skipped.
			"zho_Hans": ScriptUnknown,
		},
		Languages: map[Script]string{
			ScriptLatin:      "eng_Latn",
			ScriptDevanagari: "hin_Deva",
			ScriptTelugu:     "tel_Telu",
		},
	}
}

// Normalize resolves a language code to its canonical form. Codes are
// matched case-insensitively against the alias table first, then against
// the registered canonical codes. Unrecognized codes return an
// UnknownLanguageError.
func (lt *LanguageTable) Normalize(code string) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(code))
	if canonical, ok := lt.Aliases[lower]; ok {
		return canonical, nil
	}
	for canonical := range lt.Scripts {
		if strings.EqualFold(canonical, lower) {
			return canonical, nil
		}
	}
	return "", &UnknownLanguageError{Code: code}
}

// ExpectedScript returns the expected output script for a canonical
// language code. Unregistered codes yield ScriptUnknown, which callers
// must treat as "cannot validate, assume pass".
func (lt *LanguageTable) ExpectedScript(code string) Script {
	if s, ok := lt.Scripts[code]; ok {
		return s
	}
	return ScriptUnknown
}

// LanguageNames maps canonical codes to human-readable names for AI prompts.
var LanguageNames = map[string]string{
	"eng_Latn": "English",
	"hin_Deva": "Hindi",
	"tel_Telu": "Telugu",
	"zho_Hans": "Chinese (Simplified)",
	"deu_Latn": "German",
}

// GetLanguageName returns the human-readable name for a canonical language
// code. Falls back to the code itself if not found.
func GetLanguageName(code string) string {
	if name, ok := LanguageNames[code]; ok {
		return name
	}
	return code
}

// LanguageForScript returns the canonical language code assumed to have
// produced text in the given script, or "" if no mapping exists.
func (lt *LanguageTable) LanguageForScript(s Script) string {
	return lt.Languages[s]
}

// LatinSpacing reports whether the language's script follows Latin
// punctuation adjacency rules when reassembling translated segments.
func (lt *LanguageTable) LatinSpacing(code string) bool {
	return lt.ExpectedScript(code) == ScriptLatin
}
