package apply

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/viewtree-dev/viewtree/pkg/metrics"
	"github.com/viewtree-dev/viewtree/pkg/vtree"
)

var tracer = otel.Tracer("github.com/viewtree-dev/viewtree/pkg/apply")

// Apply replays patches against the surface in exact order. On the
// first failure it stops and returns a *SurfaceError wrapping the
// cause; the remaining patches are not applied.
//
// The context carries tracing only. Application is not cancellable
// mid-list: a partially applied list leaves the surface in an undefined
// intermediate state, so the list is replayed to completion or to the
// first error.
func Apply(ctx context.Context, surface Surface, patches []vtree.Patch) error {
	_, span := tracer.Start(ctx, "viewtree.apply")
	span.SetAttributes(attribute.Int("patches", len(patches)))
	defer span.End()

	start := time.Now()
	metrics.ApplyTotal.Inc()

	for i, p := range patches {
		if err := applyOne(surface, p); err != nil {
			metrics.ApplyFailures.Inc()
			serr := &SurfaceError{Index: i, Patch: p, Err: err}
			span.RecordError(serr)
			span.SetStatus(codes.Error, "patch application failed")
			return serr
		}
	}

	metrics.ApplyDuration.Observe(time.Since(start).Seconds())
	return nil
}

func applyOne(surface Surface, p vtree.Patch) error {
	switch p.Op {
	case vtree.OpReplace:
		return surface.Replace(p.Path, p.Node)
	case vtree.OpSetText:
		return surface.SetText(p.Path, p.Text)
	case vtree.OpUpdateAttrs:
		return surface.UpdateAttrs(p.Path, p.Added, p.Updated, p.Removed)
	case vtree.OpUpdateStyles:
		return surface.UpdateStyles(p.Path, p.Added, p.Updated, p.Removed)
	case vtree.OpInsertChild:
		return surface.InsertChild(p.Path, p.Index, p.Node)
	case vtree.OpRemoveChild:
		return surface.RemoveChild(p.Path, p.Index)
	case vtree.OpMoveChild:
		return surface.MoveChild(p.Path, p.From, p.To)
	default:
		return fmt.Errorf("unknown patch op 0x%02x", uint8(p.Op))
	}
}
