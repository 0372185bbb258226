// SPDX-License-Identifier: MIT

package table

// HashFunc maps a (truncated) key to a 32-bit hash. It must be a pure
// function of the key bytes.
type HashFunc func(key string) uint32

// DefaultHash is the Jenkins one-at-a-time hash.
var DefaultHash HashFunc = Hash

// Option configures a Table at construction.
type Option func(*options)

type options struct {
	hash HashFunc
}

// WithHash overrides the hash function. Panics if fn is nil.
func WithHash(fn HashFunc) Option {
	if fn == nil {
		panic("table: WithHash(nil)")
	}

	return func(o *options) { o.hash = fn }
}

func gatherOptions(opts ...Option) options {
	o := options{hash: DefaultHash}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}
