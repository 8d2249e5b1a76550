package industries

import (
	"context"

	"golang.org/x/sync/singleflight"
)

var listGroup singleflight.Group

// singleflightList collapses concurrent identical listing reads into one
// repository round trip.
func singleflightList(ctx context.Context, key string, fn func(context.Context) (interface{}, error)) (interface{}, error, bool) {
	resultChan := listGroup.DoChan(key, func() (interface{}, error) {
		return fn(ctx)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err(), false
	case res := <-resultChan:
		return res.Val, res.Err, res.Shared
	}
}
