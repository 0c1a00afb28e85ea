package main

import (
	"context"
	"fmt"
	"go/format"
	"os"
	"time"

	"github.com/delaneyj/pushsignals/cmd/codegen/templates"
	"github.com/delaneyj/pushsignals/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

const (
	arityKey = "count"
	outKey   = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the Combine/Zip family for signals",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityKey,
				Usage: "Highest number of upstreams to generate",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "File to write",
				Value: "signals/combinators_gen.go",
			},
			&cli.StringFlag{
				Name:  logging.LevelFlag,
				Usage: "Log level",
				Value: "info",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("codegen failed")
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	logging.Configure(cmd.String(logging.LevelFlag))

	start := time.Now()
	log.Info().Msg("codegen for signals started")
	defer func() {
		log.Info().Dur("took", time.Since(start)).Msg("codegen for signals finished")
	}()

	maxArity := int(cmd.Uint(arityKey))
	if maxArity < 2 || maxArity > 8 {
		return fmt.Errorf("count must be between 2 and 8, got %d", maxArity)
	}
	out := cmd.String(outKey)
	log.Debug().Int("maxArity", maxArity).Str("out", out).Msg("generating combinators")

	src, err := format.Source([]byte(templates.CombinatorsGen(maxArity)))
	if err != nil {
		return fmt.Errorf("formatting generated combinators: %w", err)
	}
	if err := os.WriteFile(out, src, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return nil
}
