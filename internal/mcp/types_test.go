package mcp

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestServerEntry_UnknownFieldRoundTrip(t *testing.T) {
	input := `{"command":"npx","args":["-y","server"],"env":{"T":"v"},"timeout":30,"nested":{"a":1}}`

	var entry ServerEntry
	if err := json.Unmarshal([]byte(input), &entry); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if entry.Command != "npx" {
		t.Errorf("Command = %q, want npx", entry.Command)
	}
	if len(entry.Args) != 2 {
		t.Errorf("len(Args) = %d, want 2", len(entry.Args))
	}

	out, err := entry.Raw()
	if err != nil {
		t.Fatalf("Raw() error = %v", err)
	}

	var got, want map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(input), &want); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round-trip lost fields:\ngot:  %v\nwant: %v", got, want)
	}
}

func TestServerEntry_OmitsEmptyFields(t *testing.T) {
	entry := &ServerEntry{Command: "npx", Args: []string{"mcp-remote"}}

	raw, err := entry.Raw()
	if err != nil {
		t.Fatal(err)
	}

	fields := decodeEntry(t, raw)
	for _, absent := range []string{"env", "type"} {
		if _, ok := fields[absent]; ok {
			t.Errorf("field %q present in %s, want omitted", absent, raw)
		}
	}
}

func TestStore_Names(t *testing.T) {
	s := Store{
		"zeta":  json.RawMessage(`{}`),
		"alpha": json.RawMessage(`{}`),
	}
	want := []string{"alpha", "zeta"}
	if got := s.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
