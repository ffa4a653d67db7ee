package mcp

import (
	"encoding/json"

	"github.com/thoreinstein/agentsync/internal/errors"
)

// Document is a JSON configuration document: a mapping from top-level field
// names to raw values. Fields the engine does not touch round-trip verbatim,
// so a record store can live alongside unrelated application settings in the
// same file.
type Document map[string]json.RawMessage

// NewDocument returns an empty document.
func NewDocument() Document {
	return make(Document)
}

// ParseDocument parses data as a JSON object.
// Malformed or non-object input is rejected here, at the boundary, rather
// than propagating as silent nil-map behavior.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parsing configuration document")
	}
	if doc == nil {
		doc = NewDocument()
	}
	return doc, nil
}

// Field returns the raw value of a top-level field and whether it is present.
func (d Document) Field(name string) (json.RawMessage, bool) {
	v, ok := d[name]
	return v, ok
}

// StoreField decodes the named top-level field as a record store.
// An absent field yields an empty store; a present field that is not a JSON
// object is an error.
func (d Document) StoreField(name string) (Store, error) {
	raw, ok := d[name]
	if !ok {
		return NewStore(), nil
	}
	var store Store
	if err := json.Unmarshal(raw, &store); err != nil {
		return nil, errors.Wrapf(err, "parsing %q record store", name)
	}
	if store == nil {
		store = NewStore()
	}
	return store, nil
}

// SetStore replaces the named top-level field with the given record store.
// All other fields are left untouched.
func (d Document) SetStore(name string, store Store) error {
	raw, err := json.Marshal(store)
	if err != nil {
		return errors.Wrapf(err, "encoding %q record store", name)
	}
	d[name] = raw
	return nil
}

// BoolField decodes the named top-level field as a boolean.
// The second return reports whether the field is present and boolean.
func (d Document) BoolField(name string) (value, ok bool) {
	raw, present := d[name]
	if !present {
		return false, false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, false
	}
	return b, true
}

// Set encodes v and stores it under the named top-level field.
func (d Document) Set(name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encoding field %q", name)
	}
	d[name] = raw
	return nil
}

// Render serializes the document with 2-space indentation and a trailing
// newline, the format written to target configuration files.
func (d Document) Render() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "encoding configuration document")
	}
	return append(data, '\n'), nil
}
