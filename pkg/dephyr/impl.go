package dephyr

import (
	"io"
	"log/slog"
	"strings"

	"github.com/dball/dephyr/internal/format"
	"github.com/dball/dephyr/internal/parser"
	"github.com/dball/dephyr/internal/relation"
	"github.com/dball/dephyr/internal/types"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

type Config struct {
	// Degree is the degree of the btrees that order results.
	Degree int
	// Format is the output format, text or yaml.
	Format string
	// Logger receives debug records for each request.
	Logger *slog.Logger
}

var defaultConfig Config = Config{
	Degree: 32,
	Format: FormatText,
}

// Solver answers requests. Solvers are not safe for concurrent use.
type Solver struct {
	format    string
	formatter *format.Formatter
	logger    *slog.Logger
}

func NewSolver(config Config) *Solver {
	degree := config.Degree
	if degree == 0 {
		degree = defaultConfig.Degree
	}
	outputFormat := config.Format
	if outputFormat == "" {
		outputFormat = defaultConfig.Format
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Solver{
		format:    outputFormat,
		formatter: format.NewFormatter(degree),
		logger:    logger,
	}
}

// Solve loads the request's relation and answers its question.
func (s *Solver) Solve(req Request) (res Response) {
	res.Action = req.Action
	rel, err := parser.Resolve(req.Deps)
	if err != nil {
		res.Error = err
		return
	}
	s.logger.Debug("solving",
		"action", req.Action,
		"elements", s.formatter.Key(rel.Elements),
		"rules", len(rel.Rules),
	)
	res = s.Answer(rel, req)
	if res.Error == nil {
		s.logger.Debug("solved",
			"action", req.Action,
			"keys", len(res.Keys),
			"rules", len(res.Rules),
			"relations", len(res.Relations),
		)
	}
	return
}

// Answer answers the request's question of the given relation, ignoring the request's deps.
// The relation is not changed.
func (s *Solver) Answer(rel *relation.Relation, req Request) (res Response) {
	res.Action = req.Action
	f := s.formatter
	switch req.Action {
	case Closure:
		if req.Vars == "" {
			res.Error = types.NewError("dephyr.missingArg", "action", req.Action, "arg", "vars")
			return
		}
		res.Keys = []string{f.Key(rel.Closure(types.ParseSet(req.Vars)))}
	case Candidates:
		res.Keys = f.KeyList(rel.CandidateKeys())
	case FunctionalDeps:
		res.Rules = f.RuleList(rel.AllFunctionalDeps())
	case Violators:
		switch req.Form {
		case BCNF:
			res.Rules = f.RuleList(rel.BCNFViolators())
		case ThreeNF:
			res.Rules = f.RuleList(rel.ThreeNFViolators())
		default:
			res.Error = types.NewError("dephyr.form", "form", string(req.Form))
		}
	case Basis:
		basis := rel.Clone()
		basis.MakeMinimal()
		basis.Compress()
		res.Rules = f.RuleList(basis.Rules)
	case Project:
		if req.Vars == "" {
			res.Error = types.NewError("dephyr.missingArg", "action", req.Action, "arg", "vars")
			return
		}
		projected := rel.Project(types.ParseSet(req.Vars))
		if !req.Full {
			projected.MakeMinimal()
		}
		projected.Compress()
		res.Rules = f.RuleList(projected.Rules)
	case Decompose:
		var relations []*relation.Relation
		switch req.Form {
		case BCNF:
			relations = rel.DecomposeBCNF()
		case ThreeNF:
			relations = rel.Decompose3NF()
		default:
			res.Error = types.NewError("dephyr.form", "form", string(req.Form))
			return
		}
		s.logger.Debug("decomposed", "form", req.Form, "relations", len(relations))
		res.Relations = f.Documents(relations)
	default:
		res.Error = types.NewError("dephyr.action", "action", string(req.Action))
	}
	return
}

// Write renders the response in the solver's format, or returns the response's error.
func (s *Solver) Write(w io.Writer, res Response) (err error) {
	if res.Error != nil {
		err = res.Error
		return
	}
	switch s.format {
	case FormatText:
		var text string
		switch res.Action {
		case Closure, Candidates:
			text = strings.Join(res.Keys, "\n") + "\n"
		case Decompose:
			text = format.RenderDocuments(res.Relations)
		default:
			text = strings.Join(res.Rules, "\n") + "\n"
		}
		_, err = io.WriteString(w, text)
	case FormatYAML:
		switch res.Action {
		case Closure, Candidates:
			err = format.EncodeYAML(w, res.Keys)
		case Decompose:
			docs := make([]any, len(res.Relations))
			for i, doc := range res.Relations {
				docs[i] = doc
			}
			err = format.EncodeYAML(w, docs...)
		default:
			err = format.EncodeYAML(w, res.Rules)
		}
	default:
		err = types.NewError("dephyr.format", "format", s.format)
	}
	return
}
