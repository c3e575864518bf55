// Package solver runs both parts of the pipe maze puzzle over one input.
package solver

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/thruflo/aoc2023/internal/config"
	"github.com/thruflo/aoc2023/internal/logging"
	"github.com/thruflo/aoc2023/internal/pipes"
)

// Result holds the answers for one input.
type Result struct {
	RunID      string
	Method     string
	Part1      int
	Part2      int
	LoopLength int
}

// Solver solves inputs with a fixed configuration.
type Solver struct {
	cfg config.Config
	log *logging.Logger
}

// New creates a Solver. A nil logger uses the package default.
func New(cfg config.Config, log *logging.Logger) *Solver {
	if log == nil {
		log = logging.Default()
	}
	return &Solver{cfg: cfg, log: log}
}

func (s *Solver) options() []pipes.Option {
	return []pipes.Option{
		pipes.WithPairLimit(s.cfg.Limits.PairSteps),
		pipes.WithLoopLimit(s.cfg.Limits.LoopSteps),
	}
}

// Solve parses input and computes both parts. Nothing is returned for a grid
// that fails either part.
func (s *Solver) Solve(ctx context.Context, input string) (*Result, error) {
	res := &Result{
		RunID:  uuid.NewString(),
		Method: s.cfg.Solver.Method,
	}
	log := s.log.With("run", res.RunID)

	g := pipes.Parse(input)
	log.Debug("parsed grid", "cells", g.Len(), "width", g.Width(), "height", g.Height())

	half, err := pipes.HalfLength(g, s.options()...)
	if err != nil {
		log.Error("part 1 failed", "error", err)
		return nil, fmt.Errorf("failed to solve part 1: %w", err)
	}
	res.Part1 = half
	log.Info("solved part 1", "answer", half)

	loop, err := pipes.TraceLoop(g, s.options()...)
	if err != nil {
		log.Error("loop trace failed", "error", err)
		return nil, fmt.Errorf("failed to trace loop: %w", err)
	}
	res.LoopLength = loop.Len()
	if want := (loop.Len() + 1) / 2; want != half {
		log.Warn("half length disagrees with loop length", "half", half, "loop", loop.Len())
	}

	inside, err := s.countInterior(ctx, loop)
	if err != nil {
		log.Error("part 2 failed", "error", err)
		return nil, fmt.Errorf("failed to solve part 2: %w", err)
	}
	res.Part2 = inside
	log.Info("solved part 2", "answer", inside, "method", res.Method, "start", loop.StartShape())

	return res, nil
}

// Part solves a single part, 1 or 2.
func (s *Solver) Part(ctx context.Context, input string, part int) (int, error) {
	g := pipes.Parse(input)

	switch part {
	case 1:
		return pipes.HalfLength(g, s.options()...)
	case 2:
		loop, err := pipes.TraceLoop(g, s.options()...)
		if err != nil {
			return 0, err
		}
		return s.countInterior(ctx, loop)
	default:
		return 0, fmt.Errorf("unknown part %d", part)
	}
}

func (s *Solver) countInterior(ctx context.Context, loop *pipes.Loop) (int, error) {
	switch s.cfg.Solver.Method {
	case config.MethodRaycast, "":
		return loop.CountInterior(), nil
	case config.MethodArea:
		return loop.InteriorByArea(), nil
	case config.MethodParallel:
		return pipes.CountInteriorParallel(ctx, loop, s.cfg.Solver.Workers)
	default:
		return 0, fmt.Errorf("unknown method %q", s.cfg.Solver.Method)
	}
}
