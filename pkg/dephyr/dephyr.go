// Package dephyr contains the public types and functions for solving functional dependencies
// and decomposing relations into normal forms.
package dephyr

import (
	"strings"

	"github.com/dball/dephyr/internal/parser"
	"github.com/dball/dephyr/internal/types"
)

// Action is a question to ask of a relation.
type Action string

const (
	// Closure finds the attrs determined by the request's vars.
	Closure Action = "closure"
	// Candidates finds the candidate keys.
	Candidates Action = "candidates"
	// FunctionalDeps finds every dependency implied by the rules.
	FunctionalDeps Action = "functional_deps"
	// Violators finds the rules violating the request's form.
	Violators Action = "violators"
	// Basis finds the minimal basis of the rules.
	Basis Action = "basis"
	// Project finds the dependencies holding over the request's vars.
	Project Action = "project"
	// Decompose splits the relation into relations in the request's form.
	Decompose Action = "decompose"
)

// Actions lists every action in the order they are documented.
var Actions = []Action{Closure, Candidates, FunctionalDeps, Violators, Basis, Project, Decompose}

// ParseAction returns the named action.
func ParseAction(s string) (action Action, err error) {
	for _, a := range Actions {
		if string(a) == s {
			action = a
			return
		}
	}
	err = types.NewError("dephyr.action", "action", s)
	return
}

// Form is a normal form.
type Form string

const (
	BCNF    Form = "BCNF"
	ThreeNF Form = "3NF"
)

// ParseForm returns the named form, ignoring case.
func ParseForm(s string) (form Form, err error) {
	switch Form(strings.ToUpper(s)) {
	case BCNF:
		form = BCNF
	case ThreeNF:
		form = ThreeNF
	default:
		err = types.NewError("dephyr.form", "form", s)
	}
	return
}

// Relation is the rendered form of a relation: its elements and its rules, e.g.
// {Elements: "ABC", Rules: ["A -> B"]}.
type Relation = parser.Document

// Request specifies a question about a relation.
type Request struct {
	// Deps is the path to a dependency file, or the dependency text itself.
	Deps string
	// Action is the question.
	Action Action
	// Vars are the attrs given to the closure and project actions, e.g. "ABD".
	Vars string
	// Form is the normal form for the violators and decompose actions.
	Form Form
	// Full retains every projected dependency rather than their minimal basis.
	Full bool
}

// Response is the answer to a request. Exactly one of the result fields is set if the
// request was answered.
type Response struct {
	// Action is the request's action.
	Action Action
	// Keys are rendered attr sets, for the closure and candidates actions.
	Keys []string
	// Rules are rendered rules, for the functional_deps, violators, basis and project actions.
	Rules []string
	// Relations are rendered relations, for the decompose action.
	Relations []Relation
	// Error specifies why a request could not be answered.
	Error error
}
