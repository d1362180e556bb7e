package libsocial

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ColorizeAll colorizes every text with the given options.
//
// Texts are processed concurrently, the result keeps the order of texts.
// Listeners cannot be set through options, so no span is clickable.
func ColorizeAll(ctx context.Context, texts []string, options ViewOptions) ([][]Span, error) {
	results := make([][]Span, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, text := range texts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			opts := options
			opts.Text = text
			results[i] = NewView(opts).Spans()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
