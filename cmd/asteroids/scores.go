package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	flagLimit  int
	flagRun    string
	flagBrowse bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best scores, or the scores of a single run.

Every 'play' session is a run with its own id; each game over inside it
adds a score to that run.

Examples:
  asteroids scores
  asteroids scores --limit 25
  asteroids scores --run 3f2a9c1e-...
  asteroids scores --browse
  asteroids scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagRun, "run", "", "Show the scores of one run")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse scores interactively")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	switch {
	case flagClear:
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil

	case flagBrowse:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		info, _ := registry.Lookup(gameID)
		return tui.RunScoreboard(tui.ScoreboardOptions{
			Store:    store,
			GameID:   gameID,
			Title:    info.Title,
			RunID:    flagRun,
			TickRate: flagFPS,
			Width:    width,
			Height:   height,
		})

	case flagRun != "":
		return printRun(out, store, flagRun)
	}

	return printTop(out, store, flagLimit)
}

func printTop(out io.Writer, store *storage.Store, limit int) error {
	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "High Scores - Asteroids")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'asteroids play' to set the first high score!")
		return nil
	}

	printScores(out, scores)

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Games: %d  Runs: %d  Average: %.1f\n",
		stats.Best, stats.Games, stats.Runs, stats.Average)
	return nil
}

func printRun(out io.Writer, store *storage.Store, runID string) error {
	run, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("unknown run %q", runID)
	}

	scores, err := store.RunScores(runID)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Run %s\n", run.ID)
	fmt.Fprintf(out, "  started    %s\n", run.StartedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(out, "  seed       %d\n", run.Seed)
	if run.Difficulty != "" {
		fmt.Fprintf(out, "  difficulty %s\n", run.Difficulty)
	}
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No games finished in this run.")
		return nil
	}
	printScores(out, scores)
	return nil
}

func printScores(out io.Writer, scores []storage.ScoreEntry) {
	tickRate := max(flagFPS, 1)

	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-8s  %s\n", "Rank", "Score", "Time", "Run", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-8s  %s\n", "----", "-----", "----", "---", "----")
	for i, entry := range scores {
		secs := entry.Ticks / tickRate
		runID := entry.RunID
		if len(runID) > 8 {
			runID = runID[:8]
		}
		fmt.Fprintf(out, "  %-4d  %-8d  %-6s  %-8s  %s\n",
			i+1, entry.Score, fmt.Sprintf("%d:%02d", secs/60, secs%60), runID,
			entry.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
}
