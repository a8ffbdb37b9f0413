package palette

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"moodify/config"
	"moodify/llm"
	"moodify/models"
	"moodify/parser"
)

// ErrEmptyMood is returned for blank input. Callers treat it as a no-op,
// not as a failure.
var ErrEmptyMood = errors.New("mood is empty")

// Completer sends one prompt to a model and returns its text reply
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Generator turns a mood description into a parsed palette
type Generator struct {
	completer Completer
	// configErr is reported on every Generate call when the configuration
	// could not produce a usable client (for example a missing API key)
	configErr error
}

// NewGenerator wraps an existing completer
func NewGenerator(completer Completer) *Generator {
	return &Generator{completer: completer}
}

// NewGeneratorFromConfig builds a Generator backed by the chat-completion
// client described by cfg. An invalid configuration does not fail here so
// the GUI can still start; each request reports it instead.
func NewGeneratorFromConfig(cfg *config.Config) *Generator {
	if err := cfg.Validate(); err != nil {
		log.Warn().Str("component", "palette").Err(err).Msg("configuration not usable for requests")
		return &Generator{configErr: err}
	}

	return NewGenerator(llm.NewClient(llm.Options{
		URL:         cfg.APIURL,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		Timeout:     cfg.Timeout(),
	}))
}

// Generate requests a palette for mood. Blank moods return ErrEmptyMood
// without touching the network. Every other failure is wrapped as
// "palette request failed: ...".
func (g *Generator) Generate(ctx context.Context, mood string) (models.Palette, error) {
	mood = strings.TrimSpace(mood)
	if mood == "" {
		return models.Palette{}, ErrEmptyMood
	}

	if g.configErr != nil {
		return models.Palette{}, fmt.Errorf("palette request failed: %w", g.configErr)
	}

	log.Info().Str("component", "palette").Str("mood", mood).Msg("requesting palette")

	reply, err := g.completer.Complete(ctx, BuildPrompt(mood))
	if err != nil {
		log.Error().Str("component", "palette").Err(err).Msg("model request failed")
		return models.Palette{}, fmt.Errorf("palette request failed: %w", err)
	}

	log.Debug().Str("component", "palette").Str("response", reply).Msg("AI response")

	result, err := parser.ParseResponse(reply)
	if err != nil {
		log.Error().Str("component", "palette").Err(err).Msg("could not parse model response")
		return models.Palette{}, fmt.Errorf("palette request failed: %w", err)
	}

	log.Info().
		Str("component", "palette").
		Str("theme", result.Theme).
		Str("background", result.Background).
		Strs("colors", result.Colors[:]).
		Msg("palette generated")

	return result, nil
}
