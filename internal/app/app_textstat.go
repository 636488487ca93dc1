package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"textstat/internal/domain/config"
	"textstat/internal/networker"
	"textstat/internal/report"
	"textstat/internal/textstats"

	"github.com/briandowns/spinner"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type StatApp struct {
	logger   *zap.SugaredLogger
	run      *config.Run
	fetcher  networker.Networker
	analyzer textstats.Analyzer
	out      io.Writer
	tracing  *trace.TracerProvider
}

func NewStatApp(logger *zap.SugaredLogger, run *config.Run, fetcher networker.Networker, analyzer textstats.Analyzer, out io.Writer, tracing *trace.TracerProvider) *StatApp {
	return &StatApp{
		logger:   logger,
		run:      run,
		fetcher:  fetcher,
		analyzer: analyzer,
		out:      out,
		tracing:  tracing,
	}
}

// Run executes exactly one fetch followed by one analysis and writes the
// report. It returns errors instead of exiting; only the driver decides the
// process exit code.
func (app *StatApp) Run(ctx context.Context) error {
	ctx, span := otel.Tracer("textstat").Start(ctx, "run")
	defer span.End()

	app.logger.Infow("starting run", "runID", app.run.ID, "url", app.run.URL, "force", app.run.Force)

	waiter := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	waiter.Suffix = fmt.Sprintf(" fetching %s", app.run.URL)
	waiter.Start()

	result, err := app.fetcher.Fetch(ctx, app.run.URL, app.run.Force)
	waiter.Stop()

	if err != nil {
		app.logger.Errorw("run failed", "runID", app.run.ID, "url", app.run.URL, "error", err)
		return err
	}

	analysis := app.analyzer.Analyze(result.Content)

	if _, err := fmt.Fprint(app.out, report.Render(analysis)); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	app.logger.Infow("run complete",
		"runID", app.run.ID,
		"url", app.run.URL,
		"status", result.Status,
		"uniqueWords", analysis.UniqueWords,
		"linesWithWords", analysis.LinesWithWords,
	)

	return nil
}

func (app *StatApp) Close(ctx context.Context) error {
	_ = app.logger.Sync()

	if app.tracing != nil {
		return app.tracing.Shutdown(ctx)
	}

	return nil
}
