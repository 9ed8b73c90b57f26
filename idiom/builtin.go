package idiom

import "github.com/contextbridge/idiomate"

// builtinPatterns lists the built-in surface-form matchers per canonical
// language code. English entries alternate over common inflections;
// Telugu and Hindi entries are fixed proverbs.
var builtinPatterns = map[string][]struct {
	expr      string
	canonical string
}{
	"eng_Latn": {
		{`(?:break|breaking|broke|broken)\s+the\s+ice\b`, "break the ice"},
		{`(?:bite|biting|bit|bitten)\s+the\s+bullet\b`, "bite the bullet"},
		{`(?:spill|spilling|spilled|spilt)\s+the\s+beans\b`, "spill the beans"},
		{`(?:hit|hitting|hits)\s+the\s+nail\s+on\s+the\s+head\b`, "hit the nail on the head"},
		{`(?:hit|hitting|hits)\s+the\s+jackpot\b`, "hit the jackpot"},
		{`(?:call|calling|called)\s+it\s+a\s+day\b`, "call it a day"},
		{`(?:cut|cutting|cuts)\s+corners\b`, "cut corners"},
		{`(?:cut|cutting|cuts)\s+to\s+the\s+chase\b`, "cut to the chase"},
		// Allows one modifier word before "cake" so literal phrases like
		// "piece of chocolate cake" reach the context validator.
		{`(?:piece|pieces)\s+of\s+(?:\w+\s+)?cake\b`, "piece of cake"},
		{`(?:cost|costs|costing)\s+an?\s+arm\s+and\s+a\s+leg\b`, "cost an arm and a leg"},
		{`(?:beat|beating|beats)\s+around\s+the\s+bush\b`, "beat around the bush"},
		{`out\s+of\s+the\s+blue\b`, "out of the blue"},
		{`once\s+in\s+a\s+blue\s+moon\b`, "once in a blue moon"},
		{`(?:throw|throwing|threw|thrown)\s+in\s+the\s+towel\b`, "throw in the towel"},
		{`(?:let|letting)\s+the\s+cat\s+out\s+of\s+the\s+bag\b`, "let the cat out of the bag"},
		{`(?:cross|crossing|crossed)\s+that\s+bridge\s+when\s+(?:we|you|they)\s+(?:come|get)\s+to\s+it`, "cross that bridge"},
		{`(?:hold|holding|held)\s+(?:your|my|their)\s+horses\b`, "hold your horses"},
		{`(?:jump|jumping|jumped)\s+the\s+gun\b`, "jump the gun"},
		{`(?:miss|missing|missed)\s+the\s+boat\b`, "miss the boat"},
		{`(?:pull|pulling|pulled)\s+(?:someone's|your|my)\s+leg\b`, "pull someone's leg"},
		{`(?:feeling\s+)?under\s+the\s+weather\b`, "under the weather"},
		{`the\s+ball\s+is\s+in\s+(?:your|my|their)\s+court\b`, "ball in your court"},
		{`(?:a\s+)?blessing\s+in\s+disguise\b`, "blessing in disguise"},
		{`(?:don't|do\s+not)\s+count\s+(?:your|my|their)\s+chickens\s+(?:before|until)\s+they\s+hatch`, "don't count your chickens"},
		{`actions?\s+speaks?\s+louder\s+than\s+words?\b`, "actions speak louder than words"},
		{`(?:a\s+)?bird\s+in\s+(?:the\s+)?hand\s+is\s+worth\s+two\s+in\s+the\s+bush`, "a bird in the hand"},
		{`where\s+there'?s\s+smoke,?\s+there'?s\s+fire`, "where there's smoke, there's fire"},
	},
	"tel_Telu": {
		{`కతికితే\s+అతకదు`, "కతికితే అతకదు"},
		{`ఎలుకకు\s+పిల్లి\s+సాక్షి`, "ఎలుకకు పిల్లి సాక్షి"},
		{`ఉల్లి\s+పది\s+తల్లుల\s+పెట్టు`, "ఉల్లి పది తల్లుల పెట్టు"},
		{`అడవి\s+కాచిన\s+వెన్నెల`, "అడవి కాచిన వెన్నెల"},
		{`పైన\s+పటారం[,\s]+లోన\s+లొటారం`, "పైన పటారం, లోన లొటారం"},
	},
	"hin_Deva": {
		{`अंधों\s+में\s+काना\s+राजा`, "अंधों में काना राजा"},
		{`जैसा\s+देश\s+वैसा\s+भेष`, "जैसा देश वैसा भेष"},
		{`घर\s+की\s+मुर्गी\s+दाल\s+बराबर`, "घर की मुर्गी दाल बराबर"},
	},
}

// BuiltinValidators returns the built-in literal-context rules, keyed by
// canonical idiom form. Idioms without an entry default to accept.
func BuiltinValidators() map[string]Validator {
	return map[string]Validator{
		// A noun right after "blue" means a literal blue object.
		"out of the blue": RejectNextWord(
			"tub", "car", "house", "box", "bag", "shirt", "sky", "ocean",
			"water", "bottle", "container", "room", "building", "truck",
		),
		// Words about actual cake mean someone is eating, not coasting.
		"piece of cake": RejectNearby(
			"chocolate", "vanilla", "birthday", "wedding", "frosting",
			"batter", "slice",
		),
		// Words about actual ice mean winter, not small talk.
		"break the ice": RejectNearby(
			"frozen", "cold", "winter", "skating", "hockey", "cubes",
			"freezer",
		),
	}
}

// BuiltinCatalog returns the built-in idiom catalog: English idioms with
// inflection variants, Telugu and Hindi proverbs, and the built-in
// literal-context validators.
func BuiltinCatalog() *Catalog {
	c := NewCatalog()
	for lang, entries := range builtinPatterns {
		for _, e := range entries {
			// Built-in expressions are known-good; a compile failure here
			// is a programming error.
			if err := c.AddPattern(lang, e.expr, e.canonical); err != nil {
				panic(err)
			}
		}
	}
	for canonical, v := range BuiltinValidators() {
		c.SetValidator(canonical, v)
	}
	return c
}

// BuiltinCuratedTable returns the built-in human-authored idiom
// translations per language pair.
func BuiltinCuratedTable() idiomate.CuratedTable {
	table := idiomate.CuratedTable{}

	add := func(src, tgt string, entries map[string]string) {
		for canonical, translation := range entries {
			table[idiomate.CuratedKey{
				Canonical:  canonical,
				SourceLang: src,
				TargetLang: tgt,
			}] = translation
		}
	}

	add("eng_Latn", "tel_Telu", map[string]string{
		"piece of cake":            "చాలా సులువు",
		"out of the blue":          "అనుకోకుండా",
		"break the ice":            "మాట్లాడటం మొదలుపెట్టడం",
		"bite the bullet":          "కష్టమైన పని చేయడం",
		"spill the beans":          "రహస్యం చెప్పడం",
		"call it a day":            "పని ముగించడం",
		"hit the nail on the head": "సరిగ్గా చెప్పడం",
		"cost an arm and a leg":    "చాలా ఖరీదు",
		"once in a blue moon":      "అరుదుగా",
		"throw in the towel":       "వదులుకోవడం",
	})

	add("eng_Latn", "hin_Deva", map[string]string{
		"piece of cake":            "बहुत आसान",
		"out of the blue":          "अचानक से",
		"break the ice":            "बातचीत शुरू करना",
		"bite the bullet":          "कठिन काम करना",
		"spill the beans":          "राज़ खोलना",
		"call it a day":            "काम खत्म करना",
		"hit the nail on the head": "बिलकुल सही कहना",
		"cost an arm and a leg":    "बहुत महंगा",
		"once in a blue moon":      "कभी कभार",
		"throw in the towel":       "हार मान लेना",
	})

	add("tel_Telu", "eng_Latn", map[string]string{
		"కతికితే అతకదు":     "if you stir it, it won't stick",
		"ఎలుకకు పిల్లి సాక్షి": "cat as witness for the mouse",
	})

	add("hin_Deva", "eng_Latn", map[string]string{
		"अंधों में काना राजा":  "in the land of the blind, the one-eyed man is king",
		"जैसा देश वैसा भेष": "when in Rome, do as the Romans do",
	})

	return table
}
