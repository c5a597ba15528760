package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/aptiq/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Show the resolved LLM provider configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := llm.ConfigFromEnv()
		if err != nil {
			return err
		}

		source := "environment"
		if verr := cfg.Validate(); verr != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				fmt.Println("No LLM provider configured; question generation is disabled.")
				fmt.Println()
				fmt.Println("Set one of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY,")
				fmt.Println("OPENROUTER_API_KEY, or configure APTIQ_LLM_PROVIDER explicitly.")
				fmt.Println()
				fmt.Println(verr)
				return nil
			}
			cfg = discovered
			source = "discovered API key"
		}

		model := modelFor(cfg)

		fmt.Printf("Provider:  %s (%s)\n", cfg.Provider, source)
		fmt.Printf("Model:     %s\n", model)
		fmt.Printf("Timeout:   %s\n", cfg.Timeout)
		fmt.Printf("Retries:   %d attempts, %s initial wait\n",
			cfg.Retry.MaxAttempts, cfg.Retry.InitialWait)

		if cost := llm.LookupCost(model); cost != nil {
			fmt.Println()
			fmt.Println("Pricing (USD per 1M tokens)")
			fmt.Println(strings.Repeat("─", 52))
			fmt.Printf("%-28s  %9s  %9s\n", "Model", "Input", "Output")
			fmt.Printf("%-28s  %9s  %9s\n",
				truncate(model, 28), formatCost(cost.InputPerMTok), formatCost(cost.OutputPerMTok))
		}
		return nil
	},
}

// modelFor returns the configured model for the selected provider.
func modelFor(cfg llm.Config) string {
	switch cfg.Provider {
	case "anthropic":
		return cfg.Anthropic.Model
	case "openai":
		return cfg.OpenAI.Model
	case "gemini":
		return cfg.Gemini.Model
	case "openrouter":
		return cfg.OpenRouter.Model
	default:
		return ""
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}
