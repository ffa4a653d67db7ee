// Package frontmatter parses YAML frontmatter headers in markdown files.
package frontmatter

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMissingFrontmatter is returned by ParseHeaderStrict when no frontmatter is found.
var ErrMissingFrontmatter = errors.New("missing frontmatter")

// ParseHeader parses only the frontmatter from the reader.
// It stops reading after the closing delimiter "---"; the body is not consumed.
// Returns nil if no frontmatter is found (silent success, matter remains empty).
func ParseHeader(r io.Reader, matter any) error {
	found, err := parseHeader(r, matter)
	if err != nil {
		return err
	}
	_ = found
	return nil
}

// ParseHeaderStrict is like ParseHeader but returns ErrMissingFrontmatter
// when the file does not start with a frontmatter block. Skill files require
// frontmatter, so their scanner uses this variant.
func ParseHeaderStrict(r io.Reader, matter any) error {
	found, err := parseHeader(r, matter)
	if err != nil {
		return err
	}
	if !found {
		return ErrMissingFrontmatter
	}
	return nil
}

func parseHeader(r io.Reader, matter any) (found bool, err error) {
	scanner := bufio.NewScanner(r)

	// Check first line
	if !scanner.Scan() {
		return false, scanner.Err()
	}
	if strings.TrimSpace(scanner.Text()) != "---" {
		// No frontmatter start delimiter
		return false, nil
	}

	var buf bytes.Buffer
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "---" {
			// Found closing delimiter
			return true, yaml.Unmarshal(buf.Bytes(), matter)
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}

	if err := scanner.Err(); err != nil {
		return false, err
	}
	return false, errors.New("missing closing frontmatter delimiter")
}
