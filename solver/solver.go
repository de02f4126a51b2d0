package solver

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/boggle/grid"
	"github.com/katalvlaran/boggle/trie"
)

const tracerName = "github.com/katalvlaran/boggle/solver"

// Solve runs a traversal of g against d and collects its words.
// On cancellation it returns the partial Result together with the error.
func Solve(ctx context.Context, g *grid.Grid, d *trie.Dictionary, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if d == nil {
		return nil, ErrDictionaryNil
	}

	sopts := DefaultOptions()
	for _, fn := range opts {
		fn(&sopts)
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "Solve", trace.WithAttributes(
		attribute.Int("grid.rows", g.Rows()),
		attribute.Int("grid.cols", g.Cols()),
		attribute.Int("dictionary.words", d.Len()),
	))
	defer span.End()

	began := time.Now()
	res, err := collect(ctx, g, d, sopts)

	span.SetAttributes(
		attribute.Int("solve.words", len(res.Words)),
		attribute.Int("solve.yields", res.Yields),
		attribute.Bool("solve.truncated", res.Truncated),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	sopts.Logger.Debug().
		Int("rows", g.Rows()).
		Int("cols", g.Cols()).
		Int("words", len(res.Words)).
		Int("yields", res.Yields).
		Bool("truncated", res.Truncated).
		Dur("elapsed", time.Since(began)).
		Err(err).
		Msg("solve finished")

	return res, err
}

// collect pulls from a fresh traversal, checking ctx before every pull.
func collect(ctx context.Context, g *grid.Grid, d *trie.Dictionary, o Options) (*Result, error) {
	tr := g.StartTraversal(d,
		grid.WithMinWordLength(o.MinWordLength),
		grid.WithMaxPathLength(o.MaxPathLength),
	)
	res := &Result{}
	var seen map[string]struct{}
	if o.Unique {
		seen = make(map[string]struct{})
	}

	for {
		select {
		case <-ctx.Done():
			return res, fmt.Errorf("solver: %w", ctx.Err())
		default:
		}

		if o.Limit > 0 && len(res.Words) >= o.Limit {
			res.Truncated = true
			return res, nil
		}

		w, ok := tr.Next()
		if !ok {
			return res, nil
		}
		res.Yields++
		if seen != nil {
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
		}
		res.Words = append(res.Words, w)
		res.Paths = append(res.Paths, tr.Path())
	}
}
