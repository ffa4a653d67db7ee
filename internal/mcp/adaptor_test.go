package mcp

import (
	"reflect"
	"testing"

	"github.com/thoreinstein/agentsync/internal/errors"
)

func TestAdaptorRegistry_Register(t *testing.T) {
	r := NewAdaptorRegistry()

	if err := r.Register("atlassian", atlassianAdaptor); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Register("atlassian", atlassianAdaptor); !errors.Is(err, ErrAdaptorAlreadyRegistered) {
		t.Errorf("duplicate Register() error = %v, want ErrAdaptorAlreadyRegistered", err)
	}
	if err := r.Register("", atlassianAdaptor); !errors.Is(err, ErrInvalidAdaptor) {
		t.Errorf("empty name Register() error = %v, want ErrInvalidAdaptor", err)
	}
	if err := r.Register("x", nil); !errors.Is(err, ErrInvalidAdaptor) {
		t.Errorf("nil fn Register() error = %v, want ErrInvalidAdaptor", err)
	}
}

func TestAdaptorRegistry_Apply(t *testing.T) {
	r := DefaultAdaptors()

	src := Store{
		"atlassian": rawEntry(t, `{"command":"atlassian-oauth","args":["--login"],"env":{"SECRET":"s"}}`),
		"github":    rawEntry(t, `{"command":"npx","args":["-y","server-github"]}`),
	}

	got, err := r.Apply(src)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	// Substitute replaces the original regardless of its contents
	entry := decodeEntry(t, got["atlassian"])
	if entry["command"] != "npx" {
		t.Errorf("command = %v, want npx", entry["command"])
	}
	wantArgs := []any{"mcp-remote", "https://mcp.atlassian.com/v1/mcp"}
	if !reflect.DeepEqual(entry["args"], wantArgs) {
		t.Errorf("args = %v, want %v", entry["args"], wantArgs)
	}
	if _, hasEnv := entry["env"]; hasEnv {
		t.Error("substitute carried over the original env")
	}
	if _, hasType := entry["type"]; hasType {
		t.Error("source-schema substitute must not carry a type tag")
	}

	// All other entries byte-identical
	if string(got["github"]) != string(src["github"]) {
		t.Errorf("unrelated entry changed: %s", got["github"])
	}

	// Input untouched
	if string(src["atlassian"]) != `{"command":"atlassian-oauth","args":["--login"],"env":{"SECRET":"s"}}` {
		t.Error("Apply mutated its input")
	}
}

func TestAdaptorRegistry_Apply_AbsentName(t *testing.T) {
	r := DefaultAdaptors()
	src := Store{"github": rawEntry(t, `{"command":"npx"}`)}

	got, err := r.Apply(src)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(got) != 1 || string(got["github"]) != string(src["github"]) {
		t.Error("Apply changed a store without the adapted name")
	}
}

func TestAdaptorRegistry_ApplyConverted_Atlassian(t *testing.T) {
	r := DefaultAdaptors()

	converted, err := StdioWrapConverter{}.Convert(Store{
		"atlassian": rawEntry(t, `{"command":"whatever","env":{"X":"y"}}`),
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := r.ApplyConverted(converted, StdioWrapConverter{})
	if err != nil {
		t.Fatalf("ApplyConverted() error = %v", err)
	}

	entry := decodeEntry(t, got["atlassian"])
	want := map[string]any{
		"type":    "stdio",
		"command": "npx",
		"args":    []any{"mcp-remote", "https://mcp.atlassian.com/v1/mcp"},
	}
	if !reflect.DeepEqual(entry, want) {
		t.Errorf("adapted vscode entry = %v, want %v", entry, want)
	}
}

// Both call sites must produce equivalent final entries for the same server
// and target: adapting before identity conversion and adapting after wrap
// conversion agree once both are viewed in their target schema.
func TestAdaptorCallSites_Equivalent(t *testing.T) {
	r := DefaultAdaptors()
	src := Store{"atlassian": rawEntry(t, `{"command":"oauth-thing"}`)}

	// Source-schema call site, then wrap
	adapted, err := r.Apply(src)
	if err != nil {
		t.Fatal(err)
	}
	viaSource, err := StdioWrapConverter{}.Convert(adapted)
	if err != nil {
		t.Fatal(err)
	}

	// Wrap first, then converted-schema call site
	converted, err := StdioWrapConverter{}.Convert(src)
	if err != nil {
		t.Fatal(err)
	}
	viaConverted, err := r.ApplyConverted(converted, StdioWrapConverter{})
	if err != nil {
		t.Fatal(err)
	}

	a := decodeEntry(t, viaSource["atlassian"])
	b := decodeEntry(t, viaConverted["atlassian"])
	if !reflect.DeepEqual(a, b) {
		t.Errorf("call sites disagree:\nsource-first:    %v\nconverted-first: %v", a, b)
	}
}

func TestDefaultAdaptors_Names(t *testing.T) {
	got := DefaultAdaptors().Names()
	want := []string{"atlassian"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
