package cli

import (
	"context"
	"fmt"

	"glossary-extractor/internal/batch"
	"glossary-extractor/internal/config"
	"glossary-extractor/internal/dictionary"
	"glossary-extractor/internal/document"
	"glossary-extractor/internal/matcher"
	"glossary-extractor/internal/render"

	"github.com/rs/zerolog"
)

// Run executes one extraction: load dictionaries, match every input
// document, and write the glossary. Nothing is written unless every step
// succeeds.
func Run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	format, err := render.ParseFormat(cfg.OutputFormat)
	if err != nil {
		return err
	}
	m, err := matcher.New(cfg.Matcher)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}

	if !config.KnownLanguage(cfg.Language) {
		logger.Warn().Str("language", cfg.Language).Msg("Unrecognised language, using default phrase")
	}
	phrase := config.AlsoSeePhrase(cfg.Language)

	// 1. Build the term table.
	terms, _, err := dictionary.NewLoader(logger).Load(cfg.DictPaths)
	if err != nil {
		logger.Error().Err(err).Str("stage", "load dictionaries").Msg("Run failed")
		return err
	}

	// 2. Match every input document.
	driver := batch.NewDriver(document.NewRegistry(), m, cfg.Workers, logger)
	found, err := driver.Run(ctx, cfg.InputPath, terms)
	if err != nil {
		logger.Error().Err(err).Str("stage", "match documents").Str("input", cfg.InputPath).Msg("Run failed")
		return err
	}

	// 3. Render.
	outPath := cfg.ResolvedOutputFile()
	logger.Info().Str("format", string(format)).Str("path", outPath).Msg("Saving output")

	if err := render.Save(outPath, format, found, phrase); err != nil {
		logger.Error().Err(err).Str("stage", "save output").Str("path", outPath).Msg("Run failed")
		return err
	}

	logger.Info().
		Int("terms", found.Len()).
		Str("output", outPath).
		Msg("Glossary written")

	return nil
}
