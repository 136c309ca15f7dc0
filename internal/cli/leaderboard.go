package cli

import (
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func newLeaderboardCmd() *cobra.Command {
	lbCmd := &cobra.Command{
		Use:     "leaderboard",
		Aliases: []string{"lb"},
		Short:   "Leaderboard commands",
	}

	lbCmd.AddCommand(newLeaderboardSubmitCmd())
	lbCmd.AddCommand(newLeaderboardListCmd())
	lbCmd.AddCommand(newLeaderboardUserCmd())

	return lbCmd
}

func newLeaderboardSubmitCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "submit <session-id> <completion-time-seconds>",
		Short: "Submit a completed game to the leaderboard",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			completionTime, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return err
			}

			body := map[string]any{
				"session_id":      args[0],
				"completion_time": completionTime,
			}
			if username != "" {
				body["username"] = username
			}

			var result SubmitScoreResult
			if err := client.Post("/api/v1/leaderboard/submit", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Leaderboard username (defaults to the logged-in account)")
	return cmd
}

func newLeaderboardListCmd() *cobra.Command {
	var (
		limit      int
		offset     int
		username   string
		timeFilter string
		sortBy     string
		sortOrder  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show leaderboard entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			query.Set("limit", strconv.Itoa(limit))
			query.Set("offset", strconv.Itoa(offset))
			if username != "" {
				query.Set("username", username)
			}
			if timeFilter != "" {
				query.Set("time_filter", timeFilter)
			}
			if sortBy != "" {
				query.Set("sort_by", sortBy)
			}
			if sortOrder != "" {
				query.Set("sort_order", sortOrder)
			}

			var result Leaderboard
			if err := client.Get("/api/v1/leaderboard?"+query.Encode(), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of entries to show (1-100)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of entries to skip")
	cmd.Flags().StringVar(&username, "username", "", "Include this user's rank and best score")
	cmd.Flags().StringVar(&timeFilter, "time-filter", "", "Restrict to recent entries: daily, weekly, monthly, all")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "Sort key: score, attempts, completion_time, timestamp")
	cmd.Flags().StringVar(&sortOrder, "sort-order", "", "Sort order: asc, desc")
	return cmd
}

func newLeaderboardUserCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "user <username>",
		Short: "Show a user's aggregate statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result UserStats
			if err := client.Get("/api/v1/leaderboard/user/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show application-wide statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result AppStats
			if err := client.Get("/api/v1/app/stats", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
