package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/en16931/cii2ubl/binding"
	"github.com/en16931/cii2ubl/cii"
	"github.com/en16931/cii2ubl/config"
	"github.com/en16931/cii2ubl/diag"
	"github.com/en16931/cii2ubl/mapper"
	"github.com/en16931/cii2ubl/ubl"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultOutputSuffix = "-ubl"

type appConfig struct {
	Files                []string `kong:"arg,optional,name='files',help='CII files to convert (supports glob patterns like dir/*.xml)'"`
	Config               string   `kong:"short='c',help='YAML configuration file with conversion settings'"`
	TargetDir            string   `kong:"name='target-dir',short='t',help='Directory to write UBL files to (default: next to the source file)'"`
	OutputSuffix         string   `kong:"name='output-suffix',default='-ubl',help='Suffix appended to the source file name'"`
	UBLVersion           *string  `kong:"name='ubl-version',short='u',help='Target UBL version (2.1, 2.2, 2.3, 2.4)'"`
	Mode                 *string  `kong:"name='mode',short='m',help='Creation mode (automatic, invoice, creditnote)'"`
	VATSchemeID          *string  `kong:"name='vat-scheme-id',help='Tax scheme identifier for VAT'"`
	CustomizationID      *string  `kong:"name='customization-id',help='Default specification identifier (BT-24)'"`
	ProfileID            *string  `kong:"name='profile-id',help='Default business process type (BT-23)'"`
	CardAccountNetworkID *string  `kong:"name='card-account-network-id',help='Network identifier for card payments'"`
	DefaultOrderRefID    *string  `kong:"name='default-order-ref-id',help='Order reference used when only a sales order reference exists'"`
	BaseQuantity         *string  `kong:"name='base-quantity',help='Price base quantity policy (source, one)'"`
	SwapQuantitySign     *bool    `kong:"name='swap-quantity-sign',negatable,help='Move a negative line quantity sign onto the price (default: enabled)'"`
	PayableSignFallback  *bool    `kong:"name='payable-sign-fallback',negatable,help='Pick the document kind from the payable amount sign when the type code is absent (default: enabled)'"`
	LogLevel             *string  `kong:"short='l',help='Log level (debug, info, warn, error)'"`
	ListBindings         bool     `kong:"name='list-bindings',help='Print the business term binding table and exit'"`
}

func parseConfig() *appConfig {
	cfg := &appConfig{}

	desc := config.Description
	desc += " [" + config.Version + "]"

	ctx := kong.Parse(cfg,
		kong.Name("cii2ubl"),
		kong.Description(desc),
		kong.UsageOnError(),
	)
	if ctx.Error != nil {
		fmt.Fprintln(os.Stderr, ctx.Error)
		os.Exit(1)
	}
	return cfg
}

func setupLogger(level string) {
	// Parse log level
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		log.Error().Err(err).Str("level", level).Msg("Invalid log level, defaulting to info")
		lvl = zerolog.InfoLevel
	}

	// Configure zerolog
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// applyOverrides copies the command line values that were given over the
// values loaded from the configuration file
func applyOverrides(conv *config.Conversion, cfg *appConfig) {
	overrides := []struct {
		flag  *string
		field *string
	}{
		{cfg.UBLVersion, &conv.UBLVersion},
		{cfg.VATSchemeID, &conv.VATSchemeID},
		{cfg.CustomizationID, &conv.CustomizationID},
		{cfg.ProfileID, &conv.ProfileID},
		{cfg.CardAccountNetworkID, &conv.CardAccountNetworkID},
		{cfg.DefaultOrderRefID, &conv.DefaultOrderRefID},
	}
	for _, o := range overrides {
		if o.flag != nil {
			*o.field = *o.flag
		}
	}

	if cfg.Mode != nil {
		conv.Mode = config.Mode(*cfg.Mode)
	}
	if cfg.BaseQuantity != nil {
		conv.BaseQuantity = config.BaseQuantityPolicy(*cfg.BaseQuantity)
	}
	if cfg.SwapQuantitySign != nil {
		conv.SwapQuantitySignIfNeeded = *cfg.SwapQuantitySign
	}
	if cfg.PayableSignFallback != nil {
		conv.PayableSignFallback = *cfg.PayableSignFallback
	}
}

func main() {
	os.Exit(run(parseConfig(), os.Stdout))
}

// run executes the command and returns the process exit status
func run(cfg *appConfig, stdout io.Writer) int {
	fileConfig, err := config.Load(cfg.Config)
	if err != nil {
		setupLogger("info")
		log.Error().Err(err).Msg("Failed to load configuration")
		return 1
	}

	finalLogLevel := fileConfig.LogLevel
	if cfg.LogLevel != nil {
		finalLogLevel = *cfg.LogLevel
	}
	setupLogger(finalLogLevel)

	if cfg.ListBindings {
		if err := listBindings(stdout); err != nil {
			log.Error().Err(err).Msg("Failed to load binding table")
			return 1
		}
		return 0
	}

	if len(cfg.Files) == 0 {
		log.Error().Msg("No input files given")
		return 1
	}

	conv := fileConfig.Conversion
	applyOverrides(&conv, cfg)

	converter, err := mapper.New(conv)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create converter")
		return 1
	}

	files, err := expandGlobs(cfg.Files)
	if err != nil {
		log.Error().Err(err).Msg("Failed to expand glob patterns in input files")
		return 1
	}

	if cfg.TargetDir != "" {
		if err := os.MkdirAll(cfg.TargetDir, 0o755); err != nil {
			log.Error().Err(err).Str("dir", cfg.TargetDir).Msg("Failed to create target directory")
			return 1
		}
	}

	failed := 0
	for _, file := range files {
		target := targetPath(file, cfg.TargetDir, cfg.OutputSuffix)
		if !convertFile(converter, file, target) {
			failed++
		}
	}

	log.Info().
		Int("files", len(files)).
		Int("failed", failed).
		Str("version", converter.Version()).
		Msg("Conversion finished")

	if failed > 0 {
		return 1
	}
	return 0
}

// convertFile converts one source file and writes the result to target.
// It reports whether the conversion succeeded without errors. A document
// with error diagnostics is still written.
func convertFile(converter *mapper.Converter, file, target string) bool {
	logger := log.With().
		Str("conversion", uuid.NewString()).
		Str("file", file).
		Logger()

	src, err := cii.ReadFile(file)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to read source document")
		return false
	}

	errs := diag.NewCollector()
	doc := converter.Convert(src, errs)
	errs.Log(logger)

	if doc == nil {
		logger.Error().Msg("Conversion yields no result")
		return false
	}

	if err := writeDocument(target, doc); err != nil {
		logger.Error().Err(err).Str("target", target).Msg("Failed to write UBL document")
		return false
	}

	logger.Info().
		Str("target", target).
		Str("kind", doc.Kind().String()).
		Int("errors", errs.Count(diag.Error)).
		Int("warnings", errs.Count(diag.Warning)).
		Msg("Converted document")

	return mapper.Success(doc, errs)
}

func writeDocument(target string, doc ubl.Document) error {
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	if err := ubl.Write(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// targetPath derives the output file name from the source file name.
// An empty dir keeps the output next to the source.
func targetPath(file, dir, suffix string) string {
	base := filepath.Base(file)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + suffix + ".xml"
	if dir == "" {
		dir = filepath.Dir(file)
	}
	return filepath.Join(dir, name)
}

func listBindings(w io.Writer) error {
	table, err := binding.Default()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "EN 16931 binding table %s (%d terms)\n", table.Version, table.Len())
	for _, b := range table.Terms() {
		fmt.Fprintf(w, "%-8s %-12s %-45s %s -> %s\n", b.Term, b.Presence, b.Name, b.Source, b.Target)
	}
	return nil
}

// expandGlobs expands glob patterns in the slice of file paths
func expandGlobs(patterns []string) ([]string, error) {
	var expanded []string

	for _, pattern := range patterns {
		// Use filepath.Glob which works cross-platform
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to expand glob pattern '%s': %w", pattern, err)
		}

		// If no matches found, treat as literal filename (consistent with shell behavior)
		if len(matches) == 0 {
			log.Warn().Str("pattern", pattern).Msg("Glob pattern matched no files, treating as literal filename")
			expanded = append(expanded, pattern)
		} else {
			expanded = append(expanded, matches...)
		}
	}

	return expanded, nil
}
