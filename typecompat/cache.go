package typecompat

import (
	"reflect"
	"sync"

	"go.uber.org/zap"
)

// Cache memoizes verdicts. Racing callers may analyze the same pair more than
// once; LoadOrStore guarantees they all observe the first published verdict.
type Cache struct {
	verdicts sync.Map
}

// Resolve returns the verdict for (a, b), analyzing the pair on first use.
// key identifies the pair and must be comparable; callers on a hot path pass a
// typed nil pointer so the lookup does not allocate.
func (c *Cache) Resolve(key any, a, b reflect.Type) Verdict {
	if v, ok := c.verdicts.Load(key); ok {
		return v.(Verdict)
	}
	verdict := Analyze(a, b)
	actual, loaded := c.verdicts.LoadOrStore(key, verdict)
	if !loaded {
		zap.L().Debug("either storage strategy resolved",
			zap.Stringer("left", a),
			zap.Stringer("right", b),
			zap.Stringer("strategy", verdict.Strategy),
			zap.String("reason", verdict.Reason))
	}
	return actual.(Verdict)
}

// Len returns the number of cached verdicts.
func (c *Cache) Len() int {
	n := 0
	c.verdicts.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

var shared Cache

// Resolve returns the verdict for (a, b) from the process-wide cache.
func Resolve(key any, a, b reflect.Type) Verdict {
	return shared.Resolve(key, a, b)
}

// Cached returns the number of pairs in the process-wide cache.
func Cached() int {
	return shared.Len()
}
