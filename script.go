package idiomate

import "unicode"

// scriptRanges lists the classified scripts and their Unicode range
// tables. Order is fixed so classification is deterministic.
var scriptRanges = []struct {
	script Script
	table  *unicode.RangeTable
}{
	{ScriptTelugu, unicode.Telugu},
	{ScriptDevanagari, unicode.Devanagari},
	{ScriptLatin, unicode.Latin},
}

// ClassifyScript returns the dominant script of the text.
//
// Alphabetic runes are counted per script range; a script wins when it
// holds more than 50% of all alphabetic runes. Text with no alphabetic
// runes classifies as ScriptUnknown, and text where no script reaches a
// plurality classifies as ScriptMixed.
func ClassifyScript(text string) Script {
	counts := make(map[Script]int, len(scriptRanges))
	total := 0

	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		total++
		for _, sr := range scriptRanges {
			if unicode.Is(sr.table, r) {
				counts[sr.script]++
				break
			}
		}
	}

	if total == 0 {
		return ScriptUnknown
	}

	for _, sr := range scriptRanges {
		if counts[sr.script]*2 > total {
			return sr.script
		}
	}
	return ScriptMixed
}
