package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"textstat/internal/app"
	"textstat/internal/domain/config"
	"textstat/internal/utils"

	"github.com/alecthomas/kong"
)

var cli struct {
	URL      string        `arg:"" help:"URL of the text resource to analyze."`
	Force    bool          `short:"f" help:"Analyze the body even when the HTTP status signals an error."`
	Attempts int           `default:"5" env:"TEXTSTAT_MAX_ATTEMPTS" help:"Total fetch attempts before giving up."`
	Delay    time.Duration `default:"3s" env:"TEXTSTAT_RETRY_DELAY" help:"Wait between fetch attempts."`
	Timeout  time.Duration `default:"0" env:"TEXTSTAT_ATTEMPT_TIMEOUT" help:"Per-attempt HTTP timeout, 0 disables it."`
	Top      int           `default:"5" env:"TEXTSTAT_TOP_N" help:"How many letters and words to rank."`
}

func main() {
	config.LoadEnv()

	kong.Parse(&cli,
		kong.Name("textstat"),
		kong.Description("Fetch a text resource over HTTP(S) and print letter and word statistics."),
	)

	run := config.NewRun(utils.CorrectURLScheme(cli.URL), cli.Force)

	fetchSettings := config.Fetch{
		MaxAttempts:    cli.Attempts,
		RetryDelay:     cli.Delay,
		AttemptTimeout: cli.Timeout,
	}
	analysisSettings := config.Analysis{TopN: cli.Top}

	statApp := app.InitApp(run, fetchSettings, analysisSettings)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := statApp.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := statApp.Close(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "textstat: shutdown: %v\n", err)
	}
	cancel()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", runErr)
		os.Exit(1)
	}
}
