package main

import (
	"context"
	"fmt"
	"os"

	"github.com/delaneyj/pushsignals/pkg/logging"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

const (
	subscribersKey = "subscribers"
	publishersKey  = "publishers"
	roundsKey      = "rounds"
)

func main() {
	cmd := &cli.Command{
		Name:  "stress",
		Usage: "Hammer sources with concurrent subscribers and publishers and verify delivery",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  subscribersKey,
				Usage: "Concurrent subscribers",
				Value: 10_000,
			},
			&cli.UintFlag{
				Name:  publishersKey,
				Usage: "Concurrent publishers",
				Value: 100,
			},
			&cli.UintFlag{
				Name:  roundsKey,
				Usage: "Values published by each publisher",
				Value: 10,
			},
			&cli.StringFlag{
				Name:  logging.LevelFlag,
				Usage: "Log level",
				Value: "info",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("stress failed")
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	logging.Configure(cmd.String(logging.LevelFlag))

	cfg := stressConfig{
		subscribers: int(cmd.Uint(subscribersKey)),
		publishers:  int(cmd.Uint(publishersKey)),
		rounds:      int(cmd.Uint(roundsKey)),
	}
	log.Info().
		Int("subscribers", cfg.subscribers).
		Int("publishers", cfg.publishers).
		Int("rounds", cfg.rounds).
		Msg("starting stress run")

	results := runAll(cfg)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"scenario", "delivered", "expected", "checksum", "time", "rate/s"})
	failed := 0
	for _, r := range results {
		status := "ok"
		if !r.ok() {
			status = "MISMATCH"
			failed++
			log.Error().
				Str("scenario", r.name).
				Int64("delivered", r.delivered).
				Int64("expected", r.expected).
				Uint64("checksum", r.checksum).
				Uint64("expectedChecksum", r.expectedChecksum).
				Msg("delivery mismatch")
		}
		rate := float64(r.delivered) / max(r.duration.Seconds(), 1e-9)
		table.Append([]string{
			r.name,
			humanize.Comma(r.delivered),
			humanize.Comma(r.expected),
			status,
			r.duration.String(),
			humanize.Comma(int64(rate)),
		})
	}
	table.Render()

	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(results))
	}
	return nil
}
