package idiom

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/contextbridge/idiomate"
)

// Config is the YAML schema for externally supplied idiom and language
// data, so languages and idioms can be added without code changes.
//
//	languages:
//	  eng_Latn:
//	    - pattern: "(?:break|breaking|broke|broken)\\s+the\\s+ice\\b"
//	      canonical: break the ice
//	curated:
//	  - idiom: piece of cake
//	    source: eng_Latn
//	    target: hin_Deva
//	    translation: "बहुत आसान"
//	aliases:
//	  en: eng_Latn
//	scripts:
//	  eng_Latn: Latin
type Config struct {
	// Languages maps canonical language codes to their pattern lists.
	Languages map[string][]PatternConfig `yaml:"languages"`
	// Curated lists human-authored idiom translations.
	Curated []CuratedConfig `yaml:"curated"`
	// Aliases maps short codes/full names to canonical codes.
	Aliases map[string]string `yaml:"aliases"`
	// Scripts maps canonical codes to expected script names.
	Scripts map[string]string `yaml:"scripts"`
}

// PatternConfig is one idiom matcher entry.
type PatternConfig struct {
	Pattern   string `yaml:"pattern"`
	Canonical string `yaml:"canonical"`
}

// CuratedConfig is one curated translation entry.
type CuratedConfig struct {
	Idiom       string `yaml:"idiom"`
	Source      string `yaml:"source"`
	Target      string `yaml:"target"`
	Translation string `yaml:"translation"`
}

// ParseConfig parses YAML configuration data. Canonical forms matching a
// built-in validator get that validator attached; all others default to
// accept.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing idiom config: %w", err)
	}
	return &cfg, nil
}

// LoadConfigFile reads and parses a YAML configuration file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading idiom config: %w", err)
	}
	return ParseConfig(data)
}

// Catalog builds an idiom catalog from the configured pattern lists.
func (cfg *Config) Catalog() (*Catalog, error) {
	c := NewCatalog()
	for lang, entries := range cfg.Languages {
		for _, e := range entries {
			if e.Pattern == "" || e.Canonical == "" {
				return nil, fmt.Errorf("language %s: pattern and canonical are required", lang)
			}
			if err := c.AddPattern(lang, e.Pattern, e.Canonical); err != nil {
				return nil, err
			}
		}
	}
	for canonical, v := range BuiltinValidators() {
		c.SetValidator(canonical, v)
	}
	return c, nil
}

// CuratedTable builds a curated translation table from the configured
// entries.
func (cfg *Config) CuratedTable() (idiomate.CuratedTable, error) {
	table := idiomate.CuratedTable{}
	for i, e := range cfg.Curated {
		if e.Idiom == "" || e.Source == "" || e.Target == "" || e.Translation == "" {
			return nil, fmt.Errorf("curated entry %d: idiom, source, target, and translation are required", i)
		}
		table[idiomate.CuratedKey{
			Canonical:  e.Idiom,
			SourceLang: e.Source,
			TargetLang: e.Target,
		}] = e.Translation
	}
	return table, nil
}

// LanguageTable builds a language table from the configured aliases and
// scripts, starting from the built-in defaults. Configured entries
// override defaults; a script name not in the known set registers the
// language with script validation skipped.
func (cfg *Config) LanguageTable() *idiomate.LanguageTable {
	lt := idiomate.DefaultLanguageTable()
	for alias, canonical := range cfg.Aliases {
		lt.Aliases[alias] = canonical
	}
	for code, name := range cfg.Scripts {
		lt.Scripts[code] = scriptByName(name)
	}
	return lt
}

func scriptByName(name string) idiomate.Script {
	switch idiomate.Script(name) {
	case idiomate.ScriptLatin, idiomate.ScriptDevanagari, idiomate.ScriptTelugu:
		return idiomate.Script(name)
	default:
		return idiomate.ScriptUnknown
	}
}
