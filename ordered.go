package hxbundle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"

	"github.com/vmihailenco/msgpack/v5"
)

// Ordered is a string-keyed map that remembers insertion order.
//
// The runtime loader addresses listeners and watchers by position, so the
// order entries were declared in is part of the wire format. Ordered keeps
// that order through Set, JSON and msgpack round trips. The zero value is
// an empty map ready to use.
type Ordered[V any] struct {
	keys []string
	vals map[string]V
}

// Set stores v under key. A new key is appended; an existing key keeps its
// position and only its value is replaced.
func (o *Ordered[V]) Set(key string, v V) {
	if o.vals == nil {
		o.vals = make(map[string]V)
	}
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

// Get returns the value stored under key.
func (o Ordered[V]) Get(key string) (V, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Len returns the number of entries.
func (o Ordered[V]) Len() int {
	return len(o.keys)
}

// Keys returns the keys in insertion order. The slice is a copy.
func (o Ordered[V]) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// All iterates entries in insertion order.
func (o Ordered[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range o.keys {
			if !yield(k, o.vals[k]) {
				return
			}
		}
	}
}

// MarshalJSON writes the entries as a JSON object in insertion order.
// HTML characters are left unescaped; an enclosing encoder decides that.
func (o Ordered[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(k); err != nil {
			return nil, err
		}
		trimNewline(&buf)
		buf.WriteByte(':')
		if err := enc.Encode(o.vals[k]); err != nil {
			return nil, err
		}
		trimNewline(&buf)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// trimNewline drops the newline json.Encoder appends after each value.
func trimNewline(buf *bytes.Buffer) {
	if n := buf.Len(); n > 0 && buf.Bytes()[n-1] == '\n' {
		buf.Truncate(n - 1)
	}
}

// UnmarshalJSON reads a JSON object, keeping the document's key order.
// A JSON null leaves the map empty.
func (o *Ordered[V]) UnmarshalJSON(data []byte) error {
	*o = Ordered[V]{}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("hxbundle: expected object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("hxbundle: expected object key, got %v", tok)
		}
		var v V
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("hxbundle: key %q: %w", key, err)
		}
		o.Set(key, v)
	}

	_, err = dec.Token()
	return err
}

// EncodeMsgpack writes the entries as a msgpack map in insertion order.
func (o Ordered[V]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(len(o.keys)); err != nil {
		return err
	}
	for _, k := range o.keys {
		if err := enc.EncodeString(k); err != nil {
			return err
		}
		if err := enc.Encode(o.vals[k]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack reads a msgpack map, keeping the encoded key order.
func (o *Ordered[V]) DecodeMsgpack(dec *msgpack.Decoder) error {
	*o = Ordered[V]{}

	n, err := dec.DecodeMapLen()
	if err != nil {
		return err
	}
	// -1 is a nil map
	for i := 0; i < n; i++ {
		key, err := dec.DecodeString()
		if err != nil {
			return err
		}
		var v V
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("hxbundle: key %q: %w", key, err)
		}
		o.Set(key, v)
	}
	return nil
}
