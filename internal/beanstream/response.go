package beanstream

import (
	"encoding/json"
	"net/url"
	"strings"
)

// Provider response keys.
const (
	keyResponseCode    = "responseCode"
	keyResponseMessage = "responseMessage"
	keyTrnApproved     = "trnApproved"
	keyMessageText     = "messageText"
	keyTrnID           = "trnId"
	keyTrnAmount       = "trnAmount"
	keyTrnType         = "trnType"
	keyCvdID           = "cvdId"
	keyAvsID           = "avsId"
	keyCustomerCode    = "customerCode"
)

// Response is a decoded provider reply. A key sent without '=' is present
// with no value.
type Response struct {
	values map[string]*string
}

// ParseResponse decodes a key=value&key=value body. An empty body yields an
// empty Response.
func ParseResponse(body string) Response {
	r := Response{values: make(map[string]*string)}
	if body == "" {
		return r
	}

	for _, pair := range strings.Split(body, "&") {
		if pair == "" {
			continue
		}
		key, raw, hasValue := strings.Cut(pair, "=")
		if !hasValue {
			r.values[key] = nil
			continue
		}
		value, err := url.QueryUnescape(raw)
		if err != nil {
			value = raw
		}
		if key == keyMessageText {
			value = cleanMessage(value)
		}
		r.values[key] = &value
	}

	return r
}

// cleanMessage turns the provider's HTML-ish message list into plain text.
func cleanMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "<LI>", " ")
	msg = strings.ReplaceAll(msg, ".<br>", ". ")
	msg = strings.ReplaceAll(msg, "<br>", ". ")
	return strings.Join(strings.Fields(msg), " ")
}

// Lookup returns the value for key. ok is false when the key is missing or
// was sent without a value.
func (r Response) Lookup(key string) (string, bool) {
	v, exists := r.values[key]
	if !exists || v == nil {
		return "", false
	}
	return *v, true
}

// Value returns the value for key or "".
func (r Response) Value(key string) string {
	v, _ := r.Lookup(key)
	return v
}

// Has reports whether key was present in the response, with or without a value.
func (r Response) Has(key string) bool {
	_, exists := r.values[key]
	return exists
}

// Len returns the number of keys in the response.
func (r Response) Len() int {
	return len(r.values)
}

// Map returns the keys that carried a value.
func (r Response) Map() map[string]string {
	out := make(map[string]string, len(r.values))
	for k, v := range r.values {
		if v != nil {
			out[k] = *v
		}
	}
	return out
}

// Success reports whether either the profile responseCode or the transaction
// trnApproved flag equals "1".
func (r Response) Success() bool {
	return r.Value(keyResponseCode) == "1" || r.Value(keyTrnApproved) == "1"
}

// Message prefers responseMessage and falls back to messageText.
func (r Response) Message() string {
	if msg, ok := r.Lookup(keyResponseMessage); ok {
		return msg
	}
	return r.Value(keyMessageText)
}

// MarshalJSON renders bare keys as null.
func (r Response) MarshalJSON() ([]byte, error) {
	if r.values == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r.values)
}
