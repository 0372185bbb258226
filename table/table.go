// SPDX-License-Identifier: MIT

package table

import (
	"encoding/binary"
	"iter"
	"strings"

	"github.com/katalvlaran/detinfer/fixed"
)

const (
	// KeySize is the size of the key field of an Entry, NUL included.
	KeySize = 32

	// MaxKeyLen is the longest stored key; longer keys are truncated.
	MaxKeyLen = KeySize - 1

	// EntrySize is the byte size of one slot in AppendImage:
	// key [32]byte | value int32 LE | occupied byte | 3 zero pad bytes.
	EntrySize = KeySize + 4 + 1 + 3
)

// Entry is one table slot. The zero value is an empty slot.
type Entry struct {
	key      [KeySize]byte
	value    int32
	occupied bool
}

// Key returns the stored key, or "" for an empty slot.
func (e *Entry) Key() string {
	n := 0
	for n < MaxKeyLen && e.key[n] != 0 {
		n++
	}

	return string(e.key[:n])
}

// Value returns the stored value.
func (e *Entry) Value() int32 { return e.value }

// Occupied reports whether the slot holds a key.
func (e *Entry) Occupied() bool { return e.occupied }

// matches compares the stored key with a key already cut to MaxKeyLen.
func (e *Entry) matches(key string) bool {
	if e.key[len(key)] != 0 {
		return false
	}

	return string(e.key[:len(key)]) == key
}

// Table is a fixed-capacity open-addressing map from short string keys to
// int32 values, stored in a caller-owned []Entry.
type Table struct {
	entries []Entry
	count   int
	hash    HashFunc
}

// New binds a table over buf (capacity = len(buf)) and zeroes it.
// Returns ErrInvalidParam when buf is empty.
func New(buf []Entry, opts ...Option) (*Table, error) {
	t := &Table{}
	if err := t.Init(buf, opts...); err != nil {
		return nil, err
	}

	return t, nil
}

// Init (re)binds t over buf and zeroes every slot.
// Returns ErrInvalidParam for a nil receiver or an empty buf; t and buf are
// then untouched.
func (t *Table) Init(buf []Entry, opts ...Option) error {
	if t == nil || len(buf) == 0 {
		return ErrInvalidParam
	}
	o := gatherOptions(opts...)
	clear(buf)
	t.entries, t.count, t.hash = buf, 0, o.hash

	return nil
}

// Len returns the number of stored keys.
func (t *Table) Len() int { return t.count }

// Cap returns the number of slots.
func (t *Table) Cap() int { return len(t.entries) }

// truncate validates key and cuts it to MaxKeyLen bytes.
func truncate(key string) (string, error) {
	if key == "" || strings.IndexByte(key, 0) >= 0 {
		return "", ErrInvalidParam
	}
	if len(key) > MaxKeyLen {
		key = key[:MaxKeyLen]
	}

	return key, nil
}

// home returns the first probe slot for key.
func (t *Table) home(key string) int {
	return int(t.hash(key) % uint32(len(t.entries)))
}

// Insert stores value under key.
//
// Errors:
//   - ErrInvalidParam: nil or unbound table, empty key or key with a NUL byte.
//   - ErrFull: every slot is occupied.
//   - ErrKeyExists: the truncated key is already stored; the table is unchanged.
//
// Complexity: O(capacity) worst case, O(1) expected at moderate load.
func (t *Table) Insert(key string, value int32) error {
	if t == nil || len(t.entries) == 0 {
		return ErrInvalidParam
	}
	key, err := truncate(key)
	if err != nil {
		return err
	}
	if t.count >= len(t.entries) {
		return ErrFull
	}

	capacity := len(t.entries)
	idx := t.home(key)
	for t.entries[idx].occupied {
		if t.entries[idx].matches(key) {
			return ErrKeyExists
		}
		idx = (idx + 1) % capacity
	}

	e := &t.entries[idx]
	copy(e.key[:], key)
	e.value = value
	e.occupied = true
	t.count++

	return nil
}

// InsertFixed stores the raw bits of v under key.
func (t *Table) InsertFixed(key string, v fixed.Fixed) error {
	return t.Insert(key, v.Raw())
}

// Get returns the value stored under key, or ErrNotFound.
// The probe stops at the first empty slot or after one full wrap.
func (t *Table) Get(key string) (int32, error) {
	if t == nil || len(t.entries) == 0 {
		return 0, ErrInvalidParam
	}
	key, err := truncate(key)
	if err != nil {
		return 0, err
	}

	capacity := len(t.entries)
	idx := t.home(key)
	for range capacity {
		e := &t.entries[idx]
		if !e.occupied {
			break
		}
		if e.matches(key) {
			return e.value, nil
		}
		idx = (idx + 1) % capacity
	}

	return 0, ErrNotFound
}

// Fixed returns the value under key reinterpreted as Q16.16.
func (t *Table) Fixed(key string) (fixed.Fixed, error) {
	v, err := t.Get(key)
	if err != nil {
		return fixed.Zero, err
	}

	return fixed.FromRaw(v), nil
}

// Iterate calls fn for every stored key in ascending slot order.
// A nil fn or nil table is a no-op.
func (t *Table) Iterate(fn func(key string, value int32)) {
	if t == nil || fn == nil {
		return
	}
	for i := range t.entries {
		if t.entries[i].occupied {
			fn(t.entries[i].Key(), t.entries[i].value)
		}
	}
}

// All returns an iterator over stored keys in ascending slot order.
func (t *Table) All() iter.Seq2[string, int32] {
	return func(yield func(string, int32) bool) {
		if t == nil {
			return
		}
		for i := range t.entries {
			if !t.entries[i].occupied {
				continue
			}
			if !yield(t.entries[i].Key(), t.entries[i].value) {
				return
			}
		}
	}
}

// AppendImage appends the byte image of every slot (occupied or not) to dst,
// EntrySize bytes per slot. Two tables built by the same insertion sequence
// over equally sized buffers have identical images.
func (t *Table) AppendImage(dst []byte) []byte {
	if t == nil {
		return dst
	}
	for i := range t.entries {
		e := &t.entries[i]
		dst = append(dst, e.key[:]...)
		dst = binary.LittleEndian.AppendUint32(dst, uint32(e.value))
		var occ byte
		if e.occupied {
			occ = 1
		}
		dst = append(dst, occ, 0, 0, 0)
	}

	return dst
}
