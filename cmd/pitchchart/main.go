package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/stlscore/pitchchart/internal/config"
	"github.com/stlscore/pitchchart/internal/db"
	"github.com/stlscore/pitchchart/internal/models"
	"github.com/stlscore/pitchchart/internal/repository"
	"github.com/stlscore/pitchchart/internal/session"
	"github.com/stlscore/pitchchart/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "pitchchart",
	Short: "Pitch-by-pitch game charting",
	Long:  `Pitchchart records pitch-by-pitch events during a live game and shows the running log as you chart.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		database, err := db.OpenAndMigrate()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()

		sess := session.New(time.Now(), cfg.Location())

		if err := tui.Run(database, sess); err != nil {
			logError(err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

var pitcherCmd = &cobra.Command{
	Use:   "pitcher",
	Short: "Manage the pitcher roster",
}

var pitcherAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a pitcher to the roster",
	Long: `Add a pitcher to the roster.

Adding a name that already exists is a no-op; the original entry,
including its handedness, is kept.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		throws, _ := cmd.Flags().GetString("throws")
		hand := models.Hand(throws)
		if !hand.Valid() {
			fmt.Fprintf(os.Stderr, "Invalid handedness %q (expected L or R)\n", throws)
			os.Exit(1)
		}

		database, err := db.OpenAndMigrate()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()

		repo := repository.NewPitcherRepo(database)
		if err := repo.Add(args[0], hand); err != nil {
			fmt.Fprintf(os.Stderr, "Error adding pitcher: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Added pitcher %s\n", args[0])
	},
}

var pitcherListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the roster in name order",
	Run: func(cmd *cobra.Command, args []string) {
		database, err := db.OpenAndMigrate()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()

		repo := repository.NewPitcherRepo(database)
		names, err := repo.GetNames()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing pitchers: %v\n", err)
			os.Exit(1)
		}

		if len(names) == 0 {
			fmt.Println("No pitchers yet.")
			return
		}
		for _, name := range names {
			hand, err := repo.GetHandedness(name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if hand != nil {
				fmt.Printf("%s (%s)\n", name, *hand)
			} else {
				fmt.Println(name)
			}
		}
	},
}

var logCmd = &cobra.Command{
	Use:   "log <pitcher> <YYYY-MM-DD>",
	Short: "Print the pitch log for one game",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		date, err := time.Parse(models.DateLayout, args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid date %q (expected YYYY-MM-DD)\n", args[1])
			os.Exit(1)
		}

		database, err := db.OpenAndMigrate()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()

		repo := repository.NewPitchRepo(database)
		pitches, err := repo.GetByGame(args[0], date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading pitches: %v\n", err)
			os.Exit(1)
		}

		if len(pitches) == 0 {
			fmt.Println("No pitches entered for this game yet.")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "Pitch #\tInning\tType\tVelo\tBatter\tLocation\tSwing\tGB\tRISP\tResult")
		for i, p := range pitches {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				i+1,
				dashInt(p.Inning),
				p.PitchType,
				dashInt(p.Velocity),
				dashHand(p.BatterHand),
				dashZone(p.Location),
				yesNo(p.Swing),
				yesNo(p.GroundBall),
				yesNo(p.RISP),
				dashResult(p.Result),
			)
		}
		w.Flush()
	},
}

func init() {
	pitcherAddCmd.Flags().StringP("throws", "t", "R", "Handedness (L or R)")

	pitcherCmd.AddCommand(pitcherAddCmd)
	pitcherCmd.AddCommand(pitcherListCmd)

	rootCmd.AddCommand(pitcherCmd)
	rootCmd.AddCommand(logCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func dashInt(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

func dashHand(h *models.Hand) string {
	if h == nil {
		return "-"
	}
	return string(*h)
}

func dashZone(z *models.Zone) string {
	if z == nil {
		return "-"
	}
	return string(*z)
}

func dashResult(r *models.Result) string {
	if r == nil {
		return "-"
	}
	return string(*r)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func logError(err error) {
	logPath, pathErr := config.ErrorLogPath()
	if pathErr != nil {
		return
	}

	if err := config.EnsureDirectories(); err != nil {
		return
	}

	f, fileErr := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if fileErr != nil {
		return
	}
	defer f.Close()

	fmt.Fprintf(f, "[%s] %v\n", time.Now().Format(time.RFC3339), err)
}
