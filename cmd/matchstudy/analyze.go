package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/matchstudy/internal/app"
	"github.com/riskibarqy/matchstudy/internal/config"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
)

type analyzeOptions struct {
	page   string
	pretty bool
}

func newAnalyzeCmd() *cobra.Command {
	opts := analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze <fixture-id>",
		Short: "Analyze a saved match page and print the report as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runAnalyze(ctx, cfg, args[0], opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.page, "page", "p", "-", "match page file, or - for stdin")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent the JSON output")
	return cmd
}

func runAnalyze(ctx context.Context, cfg config.Config, fixtureID string, opts analyzeOptions, stdin io.Reader, out io.Writer) (err error) {
	rt, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := rt.Close(context.Background()); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	ctx, span := otel.Tracer("matchstudy/cmd").Start(ctx, "cli.analyze")
	defer span.End()

	page := stdin
	if opts.page != "" && opts.page != "-" {
		f, err := os.Open(opts.page)
		if err != nil {
			return fmt.Errorf("open match page: %w", err)
		}
		defer f.Close()
		page = f
	}

	report, err := rt.AnalyzePage(ctx, fixtureID, page)
	if err != nil {
		return err
	}

	var encoded []byte
	if opts.pretty {
		encoded, err = sonic.ConfigStd.MarshalIndent(report, "", "  ")
	} else {
		encoded, err = sonic.ConfigStd.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	encoded = append(encoded, '\n')
	_, err = out.Write(encoded)
	return err
}
