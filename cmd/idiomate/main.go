// Command idiomate translates sentences with idiom awareness.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/contextbridge/idiomate"
	"github.com/contextbridge/idiomate/cache"
	"github.com/contextbridge/idiomate/idiom"
	"github.com/contextbridge/idiomate/provider"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("idiomate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	sourceLang := fs.String("from", "", "Source language code (e.g., eng, hin_Deva)")
	targetLang := fs.String("to", "", "Target language code (e.g., hin, tel_Telu)")
	contextual := fs.Bool("contextual", false, "Enable idiom-aware contextual translation")
	output := fs.String("output", "", "Output file (default: stdout)")
	outputShort := fs.String("o", "", "Output file (short for --output)")
	apiKey := fs.String("api-key", "", "OpenAI API key (default: OPENAI_API_KEY env)")
	model := fs.String("model", "gpt-4o-mini", "OpenAI model to use")
	configPath := fs.String("config", "", "YAML idiom/language configuration file")
	cacheTTL := fs.Int("cache-ttl", 3600, "Cache TTL in seconds (0 to disable)")
	redisURL := fs.String("redis", "", "Redis URL for a shared translation cache")
	detectOnly := fs.Bool("detect", false, "Only detect idioms, without calling the API")
	showVersion := fs.Bool("version", false, "Show version")
	quiet := fs.Bool("quiet", false, "Suppress progress output")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", idiomate.Name, idiomate.FullVersion())
		if idiomate.BuildDate != "unknown" && idiomate.BuildDate != "" {
			fmt.Fprintf(stdout, "  built: %s\n", idiomate.BuildDate)
		}
		return nil
	}

	// Handle -o alias for --output
	if *outputShort != "" && *output == "" {
		*output = *outputShort
	}

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	// Validate required flags
	if *sourceLang == "" || *targetLang == "" {
		fs.Usage()
		return fmt.Errorf("--from and --to are required")
	}

	// Static data: built-in catalog/tables, optionally overridden from YAML
	catalog := idiom.BuiltinCatalog()
	curated := idiom.BuiltinCuratedTable()
	langs := idiomate.DefaultLanguageTable()

	if *configPath != "" {
		cfg, err := idiom.LoadConfigFile(*configPath)
		if err != nil {
			return err
		}
		if len(cfg.Languages) > 0 {
			if catalog, err = cfg.Catalog(); err != nil {
				return err
			}
		}
		if len(cfg.Curated) > 0 {
			if curated, err = cfg.CuratedTable(); err != nil {
				return err
			}
		}
		langs = cfg.LanguageTable()
	}

	// Get input
	var input string
	var inputName string

	if fs.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		input = strings.TrimSpace(string(data))
		inputName = "stdin"
	} else {
		inputPath := fs.Arg(0)
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		input = strings.TrimSpace(string(data))
		inputName = filepath.Base(inputPath)
	}

	detector := idiom.NewDetector(catalog, idiom.WithLogger(logger))

	// Handle detect-only mode
	if *detectOnly {
		return runDetect(detector, langs, input, *sourceLang, stdout, *jsonOutput)
	}

	// Get API key
	key := *apiKey
	if key == "" {
		key = os.Getenv("OPENAI_API_KEY")
	}
	if key == "" {
		return fmt.Errorf("OpenAI API key required (--api-key or OPENAI_API_KEY env)")
	}

	// Create provider, wrapped with retry
	p := provider.NewOpenAIProvider(provider.OpenAIConfig{
		APIKey: key,
		Model:  *model,
	})
	retryable := idiomate.NewRetryableProvider(p, idiomate.DefaultRetryConfig())

	// Build options
	opts := []idiomate.TranslatorOption{
		idiomate.WithDetector(detector),
		idiomate.WithCuratedTable(curated),
		idiomate.WithLanguageTable(langs),
		idiomate.WithLogger(logger),
	}

	if *redisURL != "" {
		rc, err := cache.NewRedisCache(cache.RedisConfig{URL: *redisURL, TTL: *cacheTTL})
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer rc.Close()
		opts = append(opts, idiomate.WithCache(rc))
	} else if *cacheTTL > 0 {
		opts = append(opts, idiomate.WithCache(cache.NewInMemoryCache(*cacheTTL)))
	}

	translator := idiomate.NewTranslator(retryable, opts...)

	if !*quiet {
		fmt.Fprintf(stderr, "Translating %s: %s -> %s...\n", inputName, *sourceLang, *targetLang)
	}

	start := time.Now()
	var result *idiomate.Result
	var err error
	if *contextual {
		result, err = translator.TranslateContextual(context.Background(), input, *sourceLang, *targetLang)
	} else {
		result, err = translator.Translate(context.Background(), input, *sourceLang, *targetLang)
	}
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}
	elapsed := time.Since(start)

	// Output
	var out io.Writer = stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if *jsonOutput {
		return outputJSON(out, result, elapsed)
	}

	fmt.Fprintln(out, result.Text)

	if !*quiet {
		fmt.Fprintf(stderr, "\nDone in %v\n", elapsed.Round(time.Millisecond))
		fmt.Fprintf(stderr, "  Method:   %s\n", result.Method)
		fmt.Fprintf(stderr, "  Fallback: %v\n", result.UsedFallback)
		if len(result.Idioms) > 0 {
			fmt.Fprintf(stderr, "  Idioms:   %d\n", len(result.Idioms))
			for _, rec := range result.Idioms {
				fmt.Fprintf(stderr, "    %q -> %q (%s)\n", rec.Original, rec.Translation, rec.Strategy)
			}
		}
	}

	return nil
}

// runDetect prints detected idiom spans without calling the API.
func runDetect(detector *idiom.Detector, langs *idiomate.LanguageTable, input, sourceLang string, stdout io.Writer, jsonOut bool) error {
	src, err := langs.Normalize(sourceLang)
	if err != nil {
		return err
	}

	spans := detector.Detect(input, src)

	if jsonOut {
		type detectOutput struct {
			SourceLang string          `json:"source_lang"`
			Count      int             `json:"count"`
			Spans      []idiomate.Span `json:"spans"`
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(detectOutput{SourceLang: src, Count: len(spans), Spans: spans})
	}

	fmt.Fprintf(stdout, "Found %d idiom(s) in %s text:\n", len(spans), src)
	for i, span := range spans {
		fmt.Fprintf(stdout, "%3d. %q -> %q [%d:%d]\n", i+1, span.Text, span.Canonical, span.Start, span.End)
	}
	return nil
}

// JSONOutput represents the JSON output format.
type JSONOutput struct {
	Text         string                 `json:"text"`
	UsedFallback bool                   `json:"used_fallback"`
	Method       string                 `json:"method"`
	Idioms       []idiomate.IdiomRecord `json:"idioms,omitempty"`
	SegmentCount int                    `json:"segment_count,omitempty"`
	ElapsedMs    int64                  `json:"elapsed_ms"`
}

// outputJSON writes the result as JSON.
func outputJSON(w io.Writer, result *idiomate.Result, elapsed time.Duration) error {
	out := JSONOutput{
		Text:         result.Text,
		UsedFallback: result.UsedFallback,
		Method:       string(result.Method),
		Idioms:       result.Idioms,
		SegmentCount: result.SegmentCount,
		ElapsedMs:    elapsed.Milliseconds(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
