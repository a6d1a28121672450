package form

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// References holds the rendered options of every select, keyed by field.
type References map[string][]Option

// LoadReferences runs all sources concurrently.  A failing source is logged
// and leaves its select with the sentinel only; it never fails the others.
func LoadReferences(ctx context.Context, log *slog.Logger, sources ...ReferenceSource) References {
	lists := make([][]Option, len(sources))
	var g errgroup.Group
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			items, err := src.Load(ctx)
			if err != nil {
				log.WarnContext(ctx, "reference list fetch failed", "field", src.Field, "error", err)
				items = nil
			}
			lists[i] = SelectOptions(src.Sentinel, items, func(o Option) Option { return o })
			return nil
		})
	}
	_ = g.Wait()

	refs := make(References, len(sources))
	for i, src := range sources {
		refs[src.Field] = lists[i]
	}
	return refs
}
