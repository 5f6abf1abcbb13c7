package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/dball/dephyr/internal/relation"
)

// Load parses the relation in the file at path, as yaml if its name ends in .yaml or .yml
// and as dependency text otherwise.
func Load(path string) (rel *relation.Relation, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		rel, err = ReadYAML(f)
	} else {
		rel, err = Read(f)
	}
	if err != nil {
		return nil, fmt.Errorf("could not parse %q: %w", path, err)
	}
	return
}

// Resolve parses deps as the path of a file if such a file exists, and as an inline string
// of dependencies otherwise.
func Resolve(deps string) (rel *relation.Relation, err error) {
	info, statErr := os.Stat(deps)
	if statErr == nil && !info.IsDir() {
		return Load(deps)
	}
	return ParseString(deps)
}
