package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/gridpath/gridpath/grid"
	"github.com/gridpath/gridpath/internal/ctxlog"
	"github.com/gridpath/gridpath/render"
	"github.com/gridpath/gridpath/scenario"
	"github.com/gridpath/gridpath/search"
)

// Report is the outcome of one algorithm on the scenario.
type Report struct {
	Algorithm search.Algorithm
	Result    search.Result
}

// App runs one scenario. Results go to outW, logs to the logger built from
// the config.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *Config
}

// NewApp builds an App writing results to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := ctxlog.New(logW, cfg.LogFormat, cfg.LogLevel)
	logger.Debug("Logger configured successfully.")

	return &App{outW: outW, logger: logger, cfg: cfg}
}

// Run loads the scenario, executes every requested algorithm and prints a
// summary per run. Reports come back in the order the algorithms were named.
func (a *App) Run(ctx context.Context) ([]Report, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	sc, err := scenario.Load(ctx, a.cfg.ScenarioPath)
	if err != nil {
		return nil, err
	}
	name := a.cfg.Algorithm
	if name == "" {
		name = sc.Algorithm
	}
	algs, err := algorithms(name)
	if err != nil {
		return nil, err
	}

	board, err := sc.Build()
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	a.inspect(sc, board)

	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	reports := make([]Report, len(algs))
	eg, egCtx := errgroup.WithContext(ctx)
	if a.cfg.Render {
		// frames share outW, so runs take turns
		eg.SetLimit(1)
	}
	for i, alg := range algs {
		eg.Go(func() error {
			res, err := a.runOne(egCtx, sc, alg)
			if err != nil {
				return fmt.Errorf("%s: %w", alg, err)
			}
			reports[i] = Report{Algorithm: alg, Result: res}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for _, rep := range reports {
		if err := render.Summary(a.outW, rep.Algorithm, rep.Result); err != nil {
			return nil, err
		}
	}

	return reports, nil
}

// runOne searches a freshly built board so concurrent runs share nothing.
func (a *App) runOne(ctx context.Context, sc *scenario.Scenario, alg search.Algorithm) (search.Result, error) {
	g, err := sc.Build()
	if err != nil {
		return search.Result{}, err
	}

	step := search.ContextStep(ctx, nil)
	var rnd *render.Renderer
	if a.cfg.Render {
		opts := []render.Option{
			render.WithEvery(a.cfg.Every),
			render.WithMaxFrames(a.cfg.Frames),
			render.WithDelay(a.cfg.Delay),
		}
		if a.cfg.Color {
			opts = append(opts, render.WithColor())
		}
		rnd = render.New(a.outW, g, opts...)
		step = search.Chain(step, rnd.Step)
	}

	res, err := search.Run(alg, g, g.Start(), g.End(), step, search.WithLogger(a.logger))
	if err != nil {
		return search.Result{}, err
	}
	a.logger.Info("Search complete.",
		"scenario", sc.Name,
		"algorithm", alg.String(),
		"found", res.Found,
		"length", res.Length,
		"expanded", res.Expanded,
	)

	if rnd != nil {
		return res, rnd.Frame()
	}

	return res, nil
}

// inspect logs the board's connectivity before any search runs.
func (a *App) inspect(sc *scenario.Scenario, g *grid.Grid) {
	regions := g.Regions()
	a.logger.Debug("Scenario loaded.",
		"scenario", sc.Name,
		"rows", sc.Rows,
		"barriers", len(sc.Barriers),
		"walls", len(sc.Walls),
		"regions", len(regions),
	)
	if !g.Connected(g.Start(), g.End()) {
		a.logger.Warn("End is not reachable from start.", "scenario", sc.Name, "start", sc.Start.String(), "end", sc.End.String())
	}
}
