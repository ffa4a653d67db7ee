// Package skill discovers skills in the source-of-truth repository and
// syncs them into target skill directories.
//
// A skill is a directory containing a SKILL.md file whose YAML frontmatter
// names and describes it. Sync copies skill directories wholesale; a skill
// already present at the destination is skipped unless forced.
package skill

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/thoreinstein/agentsync/internal/errors"
	"github.com/thoreinstein/agentsync/pkg/frontmatter"
)

// MarkerFile identifies a directory as a skill.
const MarkerFile = "SKILL.md"

// Skill is a discovered skill in the source repository.
type Skill struct {
	// Name is the skill's directory name, its identity for sync.
	Name string

	// Dir is the absolute path of the skill directory.
	Dir string

	// Description comes from the SKILL.md frontmatter.
	Description string
}

// metadata is the SKILL.md frontmatter.
type metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Scan discovers the skills under sourceDir, sorted by name.
// A missing source directory is an error: sync must never run against a
// mistyped source path. Subdirectories without a SKILL.md are ignored;
// a SKILL.md without frontmatter is a malformed skill.
func Scan(sourceDir string) ([]Skill, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrSourceMissing, "%s", sourceDir)
		}
		return nil, errors.Wrapf(err, "reading skills directory %s", sourceDir)
	}

	var skills []Skill
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dir := filepath.Join(sourceDir, entry.Name())
		marker := filepath.Join(dir, MarkerFile)
		f, err := os.Open(marker)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, "opening %s", marker)
		}

		var meta metadata
		err = frontmatter.ParseHeaderStrict(f, &meta)
		f.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s", marker)
		}

		skills = append(skills, Skill{
			Name:        entry.Name(),
			Dir:         dir,
			Description: meta.Description,
		})
	}

	sort.Slice(skills, func(i, j int) bool {
		return skills[i].Name < skills[j].Name
	})
	return skills, nil
}

// Names returns the skill names in order.
func Names(skills []Skill) []string {
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
	}
	return names
}
