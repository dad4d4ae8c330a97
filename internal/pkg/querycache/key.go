package querycache

import (
	"fmt"
	"strings"
)

// Key identifies a cached resource, e.g. ("/api/photos", "42", "enhancement").
type Key []string

// NewKey builds a Key, formatting every part with fmt.Sprint.
func NewKey(parts ...interface{}) Key {
	key := make(Key, 0, len(parts))
	for _, p := range parts {
		key = append(key, fmt.Sprint(p))
	}
	return key
}

// HasPrefix reports whether prefix matches the leading parts of k.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}
	return true
}

// Resource is the first part of the key, used as the metrics label.
func (k Key) Resource() string {
	if len(k) == 0 {
		return ""
	}
	return k[0]
}

func (k Key) String() string {
	return "[" + strings.Join(k, " ") + "]"
}

func (k Key) id() string {
	return strings.Join(k, "\x00")
}
