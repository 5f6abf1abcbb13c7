package parser

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dball/dephyr/internal/relation"
	. "github.com/dball/dephyr/internal/types"
)

// Document is the yaml form of a relation.
//
//	elements: ABCD
//	rules:
//	  - AB -> C
//	  - C -> D
type Document struct {
	Elements string   `yaml:"elements"`
	Rules    []string `yaml:"rules"`
}

// ReadYAML parses a relation from a yaml document. Rules are numbered from 1 in errors.
func ReadYAML(r io.Reader) (rel *relation.Relation, err error) {
	var doc Document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	err = decoder.Decode(&doc)
	if errors.Is(err, io.EOF) {
		err = NewError("parser.empty")
		return
	}
	if err != nil {
		err = NewError("parser.yaml", "err", err.Error())
		return
	}
	in := &ingester{elements: ParseSet(doc.Elements), started: true}
	if in.elements.IsEmpty() {
		err = NewError("parser.emptyUniverse", "line", 0, "text", doc.Elements)
		return
	}
	for i, line := range doc.Rules {
		if line == "" {
			err = NewError("parser.syntax", "line", i+1, "text", line)
			return
		}
		err = in.ingest(i+1, line)
		if err != nil {
			return
		}
	}
	rel, err = in.relation()
	return
}
