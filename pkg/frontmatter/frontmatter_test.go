package frontmatter

import (
	"errors"
	"strings"
	"testing"
)

type header struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantErr  bool
	}{
		{
			name:     "valid frontmatter",
			input:    "---\nname: jira\ndescription: Jira workflows\n---\n\nBody text here.\n",
			wantName: "jira",
		},
		{
			name:     "no frontmatter",
			input:    "# Just markdown\n",
			wantName: "",
		},
		{
			name:    "unterminated frontmatter",
			input:   "---\nname: jira\n",
			wantErr: true,
		},
		{
			name:    "invalid yaml",
			input:   "---\nname: [unclosed\n---\n",
			wantErr: true,
		},
		{
			name:     "empty input",
			input:    "",
			wantName: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h header
			err := ParseHeader(strings.NewReader(tt.input), &h)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHeader() error = %v, wantErr %v", err, tt.wantErr)
			}
			if h.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", h.Name, tt.wantName)
			}
		})
	}
}

func TestParseHeaderStrict(t *testing.T) {
	var h header
	err := ParseHeaderStrict(strings.NewReader("# no frontmatter\n"), &h)
	if !errors.Is(err, ErrMissingFrontmatter) {
		t.Errorf("error = %v, want ErrMissingFrontmatter", err)
	}

	err = ParseHeaderStrict(strings.NewReader("---\nname: jira\n---\nbody\n"), &h)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if h.Name != "jira" {
		t.Errorf("Name = %q, want %q", h.Name, "jira")
	}
}
