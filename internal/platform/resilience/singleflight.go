package resilience

import "golang.org/x/sync/singleflight"

// SingleFlight deduplicates concurrent calls for the same key. The zero value is ready to use.
type SingleFlight struct {
	group singleflight.Group
}

// Do runs fn once per in-flight key; shared reports whether the result came from another caller.
func (g *SingleFlight) Do(key string, fn func() (any, error)) (v any, err error, shared bool) {
	return g.group.Do(key, fn)
}

// DoChan is Do without blocking; the caller decides how long to wait for the result.
func (g *SingleFlight) DoChan(key string, fn func() (any, error)) <-chan singleflight.Result {
	return g.group.DoChan(key, fn)
}

func (g *SingleFlight) Forget(key string) {
	g.group.Forget(key)
}
