package beanstream

import (
	"net/url"
	"strings"
)

type field struct {
	key   string
	value string
}

// Fields is an insertion-ordered list of provider request fields.
type Fields struct {
	entries []field
}

// Set appends key=value, or replaces the value in place if key was already set.
func (f *Fields) Set(key, value string) {
	for i := range f.entries {
		if f.entries[i].key == key {
			f.entries[i].value = value
			return
		}
	}
	f.entries = append(f.entries, field{key: key, value: value})
}

// Get returns the value stored for key.
func (f *Fields) Get(key string) (string, bool) {
	for _, e := range f.entries {
		if e.key == key {
			return e.value, true
		}
	}
	return "", false
}

// Keys returns the field names in insertion order, including empty ones.
func (f *Fields) Keys() []string {
	keys := make([]string, 0, len(f.entries))
	for _, e := range f.entries {
		keys = append(keys, e.key)
	}
	return keys
}

// Encode serializes the fields as key=value pairs joined by '&'. Entries with
// an empty value are dropped.
func (f *Fields) Encode() string {
	var b strings.Builder
	for _, e := range f.entries {
		if e.value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(e.key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(e.value))
	}
	return b.String()
}
