package entity

import (
	"bytes"
	"encoding/json"
)

// PageObject maps normalized identifiers to selectors, preserving
// insertion order. Keys are unique; collisions are resolved by the
// namer before insertion, so Set on an existing key is a no-op.
type PageObject struct {
	keys    []string
	entries map[string]string
}

func NewPageObject() *PageObject {
	return &PageObject{
		entries: make(map[string]string),
	}
}

// Set records a selector under key. An existing entry is never
// overwritten; it returns false so the caller knows the key was taken.
func (p *PageObject) Set(key, selector string) bool {
	if _, ok := p.entries[key]; ok {
		return false
	}

	p.keys = append(p.keys, key)
	p.entries[key] = selector

	return true
}

func (p *PageObject) Get(key string) (string, bool) {
	v, ok := p.entries[key]

	return v, ok
}

func (p *PageObject) Has(key string) bool {
	_, ok := p.entries[key]

	return ok
}

// Keys returns the identifiers in insertion order.
func (p *PageObject) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)

	return out
}

func (p *PageObject) Len() int {
	return len(p.keys)
}

// MarshalJSON emits an object whose members follow insertion order,
// which encoding/json's map marshalling would not preserve.
func (p *PageObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')

		v, err := json.Marshal(p.entries[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
