package id

import "crypto/rand"

// GenerateID creates a unique 16-character alphanumeric ID.
func GenerateID() string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	for i := range b {
		b[i] = chars[b[i]%byte(len(chars))]
	}
	return string(b)
}

// Allocator hands out numeric question IDs that do not collide with any
// ID it has seen. It counts up from just past the largest existing ID
// and re-checks every candidate, so an ID is never silently reused even
// when callers reserve IDs out of band.
type Allocator struct {
	next int64
	used map[int64]struct{}
}

// NewAllocator seeds an allocator with the IDs already in use.
func NewAllocator(existing []int64) *Allocator {
	a := &Allocator{next: 1, used: make(map[int64]struct{}, len(existing))}
	for _, v := range existing {
		a.Reserve(v)
	}
	return a
}

// Reserve marks an ID as taken without allocating it.
func (a *Allocator) Reserve(v int64) {
	a.used[v] = struct{}{}
	if v >= a.next {
		a.next = v + 1
	}
}

// Next returns a fresh ID and records it as used.
func (a *Allocator) Next() int64 {
	for {
		v := a.next
		a.next++
		if _, taken := a.used[v]; taken {
			continue
		}
		a.used[v] = struct{}{}
		return v
	}
}
