package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/delaneyj/pushsignals/pkg/logging"
	"github.com/delaneyj/pushsignals/signals"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

const (
	configKey     = "config"
	iterationsKey = "iterations"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure publish latency through signal chains",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  configKey,
				Usage: "Optional yaml file with the benchmark matrix",
			},
			&cli.UintFlag{
				Name:  iterationsKey,
				Usage: "Publishes per benchmark, overrides the config file",
			},
			&cli.StringFlag{
				Name:  logging.LevelFlag,
				Usage: "Log level, overrides the config file",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("benchmark failed")
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	overrides := map[string]any{}
	if n := cmd.Uint(iterationsKey); n > 0 {
		overrides["iterations"] = int(n)
	}
	if lvl := cmd.String(logging.LevelFlag); lvl != "" {
		overrides["log_level"] = lvl
	}

	cfg, err := LoadConfig(cmd.String(configKey), overrides)
	if err != nil {
		return err
	}
	logging.Configure(cfg.LogLevel)

	log.Info().Msg("warming up")
	benchmarkChains(cfg, false)

	benchmarkChains(cfg, true)
	if cfg.Combinators {
		benchmarkCombinators(cfg)
	}
	return nil
}

func addOne(v int) int {
	return v + 1
}

func pass(int) {}

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})
	return tbl
}

func appendCalc(tbl table.Writer, name string, tach *tachymeter.Tachymeter) {
	calc := tach.Calc()
	tbl.AppendRow(table.Row{
		name,
		calc.Time.Avg,
		calc.Time.Min,
		calc.Time.P75,
		calc.Time.P99,
		calc.Time.Max,
	})
}

func benchmarkChains(cfg Config, shouldRender bool) {
	tbl := newTable("Publish through Map chains")

	for _, w := range cfg.Widths {
		for _, h := range cfg.Depths {
			log.Debug().Int("width", w).Int("depth", h).Msg("chain benchmark")
			tach := tachymeter.New(&tachymeter.Config{Size: cfg.Iterations})

			src := signals.NewSource[int]()
			bag := signals.NewBag()
			for i := 0; i < w; i++ {
				var last signals.Signal[int] = src
				for j := 0; j < h; j++ {
					last = signals.Map(last, addOne)
				}
				bag.Add(signals.Subscribe(last, pass))
			}

			for i := 0; i < cfg.Iterations; i++ {
				start := time.Now()
				src.Publish(i)
				tach.AddTime(time.Since(start))
			}
			bag.Dispose()

			appendCalc(tbl, fmt.Sprintf("propagate: %d * %d", w, h), tach)
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkCombinators(cfg Config) {
	tbl := newTable("Publish through combinators")

	for _, w := range cfg.Widths {
		for _, zip := range []bool{false, true} {
			name := fmt.Sprintf("combine2: %d", w)
			if zip {
				name = fmt.Sprintf("zip2: %d", w)
			}
			log.Debug().Str("benchmark", name).Msg("combinator benchmark")

			tach := tachymeter.New(&tachymeter.Config{Size: cfg.Iterations})
			left, right := signals.NewSource[int](), signals.NewSource[int]()
			build := signals.Combine2[int, int, int]
			if zip {
				build = signals.Zip2[int, int, int]
			}
			combined := build(left, right, func(a, b int) int { return a + b })

			bag := signals.NewBag()
			for i := 0; i < w; i++ {
				bag.Add(signals.Subscribe(combined, pass))
			}

			for i := 0; i < cfg.Iterations; i++ {
				start := time.Now()
				left.Publish(i)
				right.Publish(i)
				tach.AddTime(time.Since(start))
			}
			bag.Dispose()

			appendCalc(tbl, name, tach)
		}
	}

	tbl.Render()
}
