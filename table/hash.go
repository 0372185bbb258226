// SPDX-License-Identifier: MIT

package table

// Hash is the Jenkins one-at-a-time hash over the bytes of key.
// Bytes are taken as unsigned, so the result does not depend on the
// platform's char signedness.
func Hash(key string) uint32 {
	var h uint32
	for i := 0; i < len(key); i++ {
		h += uint32(key[i])
		h += h << 10
		h ^= h >> 6
	}
	h += h << 3
	h ^= h >> 11
	h += h << 15

	return h
}
