package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/seedsieve/seedsieve/pkg/filter"
	"github.com/seedsieve/seedsieve/pkg/lexicon"
	"github.com/seedsieve/seedsieve/pkg/query"
	"github.com/seedsieve/seedsieve/pkg/session"
	"github.com/seedsieve/seedsieve/pkg/wordlist"
)

var (
	wordlistPath   string
	dbPath         string
	lengthText     string
	positionsText  string
	posText        string
	nonInteractive bool
	offline        bool
)

var rootCmd = &cobra.Command{
	Use:           "seedsieve",
	Short:         "Filter the BIP39 English wordlist by length, letter positions, and part of speech",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&wordlistPath, "wordlist", wordlist.DefaultPath, "path to the BIP39 wordlist (auto-download if missing)")
	f.StringVar(&dbPath, "db", "seedsieve.db", "path to the sense store database")
	f.StringVar(&lengthText, "length", "", "length query: N, N-M, -M, or N-")
	f.StringVar(&positionsText, "positions", "", "fixed positions, e.g. 1=a,3=e")
	f.StringVar(&posText, "pos", "", "comma-separated parts of speech: noun, verb, adjective")
	f.BoolVar(&nonInteractive, "non-interactive", false, "use flags, print matches, then exit")
	f.BoolVar(&offline, "offline", false, "never fetch remote data; fail if local data is missing")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if err := wordlist.Ensure(ctx, wordlistPath, wordlist.DefaultURL); err != nil {
		return fmt.Errorf("ensure wordlist: %w", err)
	}
	words, err := wordlist.Load(wordlistPath)
	if err != nil {
		return fmt.Errorf("load wordlist: %w", err)
	}

	lex, err := lexicon.Open(dbPath, lexicon.Options{Offline: offline})
	if err != nil {
		return exitError{code: exitRuntime, err: err}
	}
	defer lex.Close()

	engine := filter.New(lex)

	// Interactive when no filters provided and not forced non-interactive.
	if !nonInteractive && lengthText == "" && positionsText == "" && posText == "" {
		historyFile := filepath.Join(filepath.Dir(wordlistPath), ".seedsieve_history")
		sess := session.New(words, engine, historyFile, cmd.OutOrStdout(), cmd.ErrOrStderr())
		return sess.Run(ctx)
	}

	q, err := query.Parse(lengthText, positionsText, posText)
	if err != nil {
		return exitError{code: exitBadQuery, err: err}
	}

	hits, err := engine.Run(ctx, words, q)
	if err != nil {
		return exitError{code: exitRuntime, err: err}
	}

	out := cmd.OutOrStdout()
	for _, w := range hits {
		fmt.Fprintln(out, w)
	}
	return nil
}
