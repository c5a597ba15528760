package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/aptiq/internal/app"
	"github.com/abhisek/aptiq/internal/augment"
	"github.com/abhisek/aptiq/internal/llm"
	"github.com/abhisek/aptiq/internal/questionbank"
	"github.com/abhisek/aptiq/internal/session"
	"github.com/abhisek/aptiq/internal/store"
)

// runApp builds the dependency graph and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dataPath, err := resolveDataPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve data path: %w", err)
	}
	log := newLogger(dataPath)

	st := store.New(dataPath)
	bank := questionbank.NewBank()
	aug := buildAugmenter(ctx, log)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	ctrl := session.New(bank, aug, st, session.SystemClock{}, rng, log)
	return app.Run(ctrl, bank)
}

// buildAugmenter wires the LLM-backed question generator, or a disabled one
// when no provider is configured. Generation is optional; the static bank
// works without it.
func buildAugmenter(ctx context.Context, log zerolog.Logger) *augment.Augmenter {
	disabled := func(reason error) *augment.Augmenter {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", reason)
		fmt.Fprintln(os.Stderr, "Question generation will be unavailable.")
		return augment.New(nil, augment.DefaultConfig(), log)
	}

	cfg, err := llm.ConfigFromEnv()
	if err != nil {
		return disabled(err)
	}
	if verr := cfg.Validate(); verr != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return disabled(verr)
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(ctx, cfg, log)
	if err != nil {
		return disabled(err)
	}

	augCfg, err := augment.ConfigFromEnv()
	if err != nil {
		augCfg = augment.DefaultConfig()
	}
	return augment.New(provider, augCfg, log)
}
