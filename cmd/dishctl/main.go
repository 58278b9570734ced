package main

import (
	"context"
	"os"
	"strings"

	"github.com/dishtools/dishctl/internal/args"
	"github.com/dishtools/dishctl/internal/config"
	"github.com/dishtools/dishctl/internal/dhis"
	"github.com/dishtools/dishctl/internal/feeder"
	"github.com/dishtools/dishctl/internal/logger"
)

func main() {
	log := logger.NewLogger("dishctl")

	a, err := args.Parse(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("parse arguments")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if !a.Has("url") {
		log.Fatal().Msg("target endpoint required (-url)")
	}
	if !a.Has("file") {
		log.Fatal().Msg("nothing to import (-file)")
	}

	client := dhis.New(dhis.ClientConfig{
		BaseURL:     cfg.DHIS.BaseURL,
		Auth:        cfg.Auth(),
		Timeout:     cfg.Options().Post.Timeout,
		PayloadFile: a.PayloadFile,
	}, log)
	reporter := dhis.NewReporter(log, a.OutputFile)

	ctx := context.Background()

	var res dhis.Result
	if strings.HasSuffix(strings.ToLower(a.File), ".csv") {
		records, err := feeder.ReadCSV(a.File)
		if err != nil {
			log.Fatal().Err(err).Msg("convert csv")
		}

		res, err = client.PostJSON(ctx, a.URL, records)
		if err != nil {
			log.Fatal().Err(err).Msg("post json")
		}
	} else {
		res, err = client.PostFile(ctx, a.URL, a.File, a.ContentType)
		if err != nil {
			// Matches the historical behavior: a missing upload source is
			// logged and the process exits cleanly.
			log.Error().Err(err).Msg("upload source not read")
			return
		}
	}

	reporter.Report(res)
}
