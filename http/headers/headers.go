package headers

import (
	"github.com/indigo-web/nanohttp/http/status"
	"github.com/indigo-web/utils/strcomp"
)

// DefaultLimit is the reference capacity of a header collection.
const DefaultLimit = 16

// Header is a single (key, value) pair. Both strings are views into the
// buffer the message was parsed from and share its lifetime.
type Header struct {
	Key, Value string
}

// Headers is an insertion-ordered collection of headers with a hard entry
// limit. It acts as a map but uses linear search instead, which proves to be
// more efficient on the amounts of entries the limit permits. The underlying
// storage is allocated once and reused between messages.
type Headers struct {
	pairs []Header
}

func New(limit int) *Headers {
	if limit <= 0 {
		limit = DefaultLimit
	}

	return &Headers{
		pairs: make([]Header, 0, limit),
	}
}

// Add appends a new pair, preserving the insertion order. Inserting past the
// limit fails with status.ErrTooManyHeaders and leaves the collection intact.
func (h *Headers) Add(key, value string) error {
	if len(h.pairs) == cap(h.pairs) {
		return status.ErrTooManyHeaders
	}

	h.pairs = append(h.pairs, Header{
		Key:   key,
		Value: value,
	})

	return nil
}

// Value returns the first value corresponding to the key, or an empty string.
// The lookup is case-insensitive.
func (h *Headers) Value(key string) string {
	return h.ValueOr(key, "")
}

// ValueOr returns either the first value corresponding to the key or the
// fallback, defined via the second parameter.
func (h *Headers) ValueOr(key, or string) string {
	value, found := h.Get(key)
	if !found {
		return or
	}

	return value
}

// Get returns a value and a bool indicating whether it was found. The lookup
// is case-insensitive.
func (h *Headers) Get(key string) (value string, found bool) {
	for _, pair := range h.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			return pair.Value, true
		}
	}

	return "", false
}

// Has indicates whether there's an entry of the key.
func (h *Headers) Has(key string) bool {
	_, found := h.Get(key)
	return found
}

// Len returns a number of stored pairs.
func (h *Headers) Len() int {
	return len(h.pairs)
}

// Limit returns the hard entry limit.
func (h *Headers) Limit() int {
	return cap(h.pairs)
}

// Expose exposes the underlying pairs slice in insertion order. The slice
// stays valid until Clear.
func (h *Headers) Expose() []Header {
	return h.pairs
}

// Clear removes all the entries, keeping the allocated space for reuse.
func (h *Headers) Clear() *Headers {
	h.pairs = h.pairs[:0]
	return h
}
