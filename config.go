// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

// VectorOption configures a Vector at construction.
type VectorOption func(*vectorConfig)

type vectorConfig struct {
	alloc    Allocator
	pool     any // *SlotPool[T] for the Vector's T, or nil
	capacity int
	growth   int
}

func defaultVectorConfig() vectorConfig {
	return vectorConfig{
		alloc:  Heap,
		growth: 2,
	}
}

// defaultConfig is shared by every Vector built without options.
var defaultConfig = defaultVectorConfig()

// WithAllocator makes the Vector account its storage against a.
// A nil Allocator is ignored.
func WithAllocator(a Allocator) VectorOption {
	return func(c *vectorConfig) {
		if a != nil {
			c.alloc = a
		}
	}
}

// WithCapacity asks for an initial capacity of n slots.
// If the allocator refuses, the Vector starts with capacity 0.
func WithCapacity(n int) VectorOption {
	return func(c *vectorConfig) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithGrowth sets the factor by which capacity is multiplied when a push
// outgrows the buffer. Values below 2 are normalized to 2.
func WithGrowth(factor int) VectorOption {
	return func(c *vectorConfig) {
		c.growth = max(factor, 2)
	}
}

// WithSlotPool makes the Vector take its backing arrays from p and return
// them to p when it shrinks or is freed. p must be a pool for the Vector's
// own element type; NewVector panics with ErrPoolMismatch otherwise.
func WithSlotPool[T any](p *SlotPool[T]) VectorOption {
	return func(c *vectorConfig) {
		if p != nil {
			c.pool = p
		}
	}
}

func applyVectorOptions(opts []VectorOption) *vectorConfig {
	if len(opts) == 0 {
		return &defaultConfig
	}
	c := defaultVectorConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}
