package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	gameCmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	gameCmd.AddCommand(newGameStartCmd())
	gameCmd.AddCommand(newGameGuessLengthCmd())
	gameCmd.AddCommand(newGameSpellCmd())
	gameCmd.AddCommand(newGameHintCmd())
	gameCmd.AddCommand(newGameRevealCmd())
	gameCmd.AddCommand(newGameStatsCmd())

	return gameCmd
}

func newGameStartCmd() *cobra.Command {
	var difficulty string
	var demo bool

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new game",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{}
			if difficulty != "" {
				body["difficulty"] = difficulty
			}
			if demo {
				body["mode"] = "demo"
			}

			var result GameStart
			if err := client.Post("/api/v1/game/start", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Restrict word selection: easy, medium, hard")
	cmd.Flags().BoolVar(&demo, "demo", false, "Start a demo session (not persisted, no score submission)")
	return cmd
}

func newGameGuessLengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess-length <session-id> <length>",
		Short: "Guess the word's length",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}

			body := map[string]any{
				"session_id":     args[0],
				"guessed_length": length,
			}
			var result LengthGuess
			if err := client.Post("/api/v1/game/guess-length", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameSpellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spell <session-id> <guess>",
		Short: "Submit a spelling guess",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{
				"session_id": args[0],
				"guess":      args[1],
			}
			var result SpellingGuess
			if err := client.Post("/api/v1/game/submit-spelling", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameHintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hint <session-id>",
		Short: "Record a hint being taken",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"session_id": args[0]}
			var result HintResult
			if err := client.Post("/api/v1/game/use-hint", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameRevealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <session-id>",
		Short: "Give up and reveal the word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"session_id": args[0]}
			var result RevealResult
			if err := client.Post("/api/v1/game/reveal-answer", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <session-id>",
		Short: "Show session statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameStats
			if err := client.Get("/api/v1/game/stats/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
