// Package idiomate provides an idiom-aware contextual translation engine.
//
// Idiomate orchestrates translation around a black-box AI capability: it
// locates idiomatic expressions inside free text, rejects literal usages via
// contextual validation, splits sentences into translatable segments,
// dispatches each segment through the right strategy (curated lookup,
// idiom-as-unit, or plain neural translation), and validates that the final
// output is actually written in the target language's script, retrying once
// through an alternate path when it is not.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/contextbridge/idiomate"
//	    "github.com/contextbridge/idiomate/cache"
//	    "github.com/contextbridge/idiomate/idiom"
//	    "github.com/contextbridge/idiomate/provider"
//	)
//
//	func main() {
//	    // Create provider
//	    p := provider.NewOpenAIProvider(provider.OpenAIConfig{
//	        APIKey: os.Getenv("OPENAI_API_KEY"),
//	    })
//
//	    // Create translator with the built-in idiom catalog
//	    t := idiomate.NewTranslator(p,
//	        idiomate.WithDetector(idiom.NewDetector(idiom.BuiltinCatalog())),
//	        idiomate.WithCuratedTable(idiom.BuiltinCuratedTable()),
//	        idiomate.WithCache(cache.NewInMemoryCache(3600)),
//	    )
//
//	    // Translate a sentence with idiom awareness
//	    result, err := t.TranslateContextual(context.Background(),
//	        "We need to break the ice at the meeting", "eng", "hin")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(result.Text)
//	}
package idiomate
