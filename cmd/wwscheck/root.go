package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"rentcheck_backend/internal/rentcheck/service"
	"rentcheck_backend/internal/wws"
	"rentcheck_backend/internal/wws/rules"
	"rentcheck_backend/platform/config"
	"rentcheck_backend/platform/logger"
	"rentcheck_backend/platform/validator"
)

type rootOptions struct {
	rulesYear   int
	rulesFile   string
	concurrency int
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "wwscheck",
		Short: "Score rental units with the housing valuation points system",
		Long: `wwscheck scores rental units with the Dutch housing valuation points system
(woningwaarderingsstelsel), classifies them as regulated or liberalized and reports
the maximum basic rent for regulated units.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().IntVar(&opts.rulesYear, "rules-year", 0, "Embedded rule set year (default: latest)")
	cmd.PersistentFlags().StringVar(&opts.rulesFile, "rules-file", "", "YAML rule set file, overrides --rules-year")
	cmd.PersistentFlags().IntVarP(&opts.concurrency, "concurrency", "c", 5, "Concurrent assessments for batch input")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Write structured logs to stderr")

	cmd.AddCommand(newAssessCmd(opts))
	cmd.AddCommand(newRulesCmd(opts))
	return cmd
}

// newService builds the same service the API uses. batchLimit bounds batch input.
func (o *rootOptions) newService(stderr io.Writer, batchLimit int) (*service.Service, error) {
	rs, source, err := rules.Select(o.rulesYear, o.rulesFile)
	if err != nil {
		return nil, err
	}
	engine, err := wws.NewEngine(rs)
	if err != nil {
		return nil, err
	}

	logOut := io.Discard
	if o.verbose {
		logOut = stderr
	}
	log := logger.NewWithWriter(os.Getenv("APP_ENV"), logOut)
	log.RulesLoaded(rs.Year, source)

	cfg := &config.Config{BatchLimit: max(batchLimit, 1), BatchConcurrency: max(o.concurrency, 1)}
	return service.New(engine, validator.New(), log, cfg), nil
}
