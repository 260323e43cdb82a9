package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float32 gauge stored as its bit pattern, zero value reads 0
type AtomicFloat struct {
	bits atomic.Uint32
}

func (f *AtomicFloat) Store(v float32) {
	f.bits.Store(math.Float32bits(v))
}

func (f *AtomicFloat) Load() float32 {
	return math.Float32frombits(f.bits.Load())
}
