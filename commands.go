package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/faustdle/internal/config"
	"github.com/robalobadob/faustdle/internal/daily"
	"github.com/robalobadob/faustdle/internal/game"
	"github.com/robalobadob/faustdle/internal/httpserver"
	"github.com/robalobadob/faustdle/internal/roster"
	"github.com/robalobadob/faustdle/internal/selector"
	"github.com/robalobadob/faustdle/internal/store"
)

// app carries what PersistentPreRunE prepared for the subcommands.
type app struct {
	cfg    config.Config
	roster *roster.Roster
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "faustdle",
		Short:         "Guess the character from trait hints",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			zerolog.SetGlobalLevel(cfg.Level())
			if err := roster.Init(cfg.RosterFile); err != nil {
				return fmt.Errorf("load roster: %w", err)
			}
			rs, err := roster.Default()
			if err != nil {
				return err
			}
			a.cfg, a.roster = cfg, rs
			return nil
		},
	}
	root.AddCommand(
		a.serveCmd(),
		a.pickCmd(),
		a.scrambleCmd(),
		a.compareCmd(),
		a.seedCmd(),
		a.dailyCmd(),
	)
	return root
}

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := httpserver.New(a.cfg, a.roster, store.NewMemoryStore())
			if err != nil {
				return err
			}
			characters, aliases := a.roster.Stats()
			log.Info().
				Str("addr", a.cfg.Addr()).
				Int("characters", characters).
				Int("aliases", aliases).
				Msg("starting faustdle server")
			return srv.Start(a.cfg.Addr())
		},
	}
}

func (a *app) pickCmd() *cobra.Command {
	var mode, seed string
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Print the target a seed selects",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := selector.ParseMode(mode)
			seed = resolveSeed(m, seed)
			e, err := selector.SelectTarget(a.roster, m, seed)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", e.Name, m, seed)
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "normal", "selection mode (normal, hard, filler, daily)")
	cmd.Flags().StringVar(&seed, "seed", "", "seed string (random when empty)")
	return cmd
}

func (a *app) scrambleCmd() *cobra.Command {
	var (
		mode, seed string
		reveal     bool
	)
	cmd := &cobra.Command{
		Use:   "scramble",
		Short: "Print the decoy rows of a scramble puzzle",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := selector.ParseMode(mode)
			seed = resolveSeed(m, seed)
			g, err := game.NewScramble(a.roster, m, seed)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "seed %s (%s)\n", seed, m)
			for _, d := range g.Decoys {
				fmt.Fprintf(out, "%s %s\n", game.SummarizeHistory([]game.Guess{d}), d.Name)
			}
			if reveal {
				fmt.Fprintf(out, "answer: %s\n", g.Target.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "normal", "selection mode")
	cmd.Flags().StringVar(&seed, "seed", "", "seed string (random when empty)")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "also print the answer")
	return cmd
}

func (a *app) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <guess> <target>",
		Short: "Compare two characters column by column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			guess, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			target, err := a.lookup(args[1])
			if err != nil {
				return err
			}
			results := game.NewComparator(a.roster).Compare(guess.Traits, target.Traits)
			printResults(cmd.OutOrStdout(), results)
			return nil
		},
	}
}

func (a *app) seedCmd() *cobra.Command {
	var (
		mode     string
		attempts int
		timeout  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "seed <name>",
		Short: "Find a seed that selects the named character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			if attempts <= 0 {
				attempts = a.cfg.SeedSearchAttempts
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			seed, err := selector.FindSeed(ctx, a.roster, e.Name, selector.ParseMode(mode), attempts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), seed)
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "normal", "selection mode")
	cmd.Flags().IntVar(&attempts, "attempts", 0, "seeds to try (default SEED_SEARCH_ATTEMPTS)")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "give up after this long")
	return cmd
}

func (a *app) dailyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Print today's challenge number and seed",
		RunE: func(cmd *cobra.Command, args []string) error {
			epoch, err := daily.ParseEpoch(a.cfg.DailyEpoch)
			if err != nil {
				return err
			}
			c := daily.For(time.Now(), epoch)
			fmt.Fprintf(cmd.OutOrStdout(), "#%d\t%s\t%s\n", c.Number, c.Date, c.Seed)
			return nil
		},
	}
}

// lookup resolves typed input to a roster entity.
func (a *app) lookup(input string) (roster.Entity, error) {
	name, ok := a.roster.Resolve(input)
	if !ok {
		return roster.Entity{}, fmt.Errorf("%q: %w", input, game.ErrUnknownName)
	}
	e, _ := a.roster.Lookup(name)
	return e, nil
}

// resolveSeed fills in the seed a mode implies when none was given.
func resolveSeed(m selector.Mode, seed string) string {
	switch {
	case m == selector.ModeDaily && seed == "":
		return daily.Seed(time.Now())
	case seed == "":
		return selector.RandomSeed()
	default:
		return seed
	}
}

func printResults(w io.Writer, results []game.Result) {
	for _, r := range results {
		line := fmt.Sprintf("%s %-12s %-11s %s", game.Glyph(r), r.Column, r.Kind, r.Text)
		if r.Direction != "" {
			line += " (" + string(r.Direction) + ")"
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}
