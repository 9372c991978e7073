// Package lpyaml serializes an assembled lp.Problem to and from YAML, for
// callers that want a stable, diffable representation of a parsed LP file
// rather than the file's original text.
package lpyaml

import (
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/uluyol/lpparse/lp"
)

// document is the on-disk shape. Field order here drives YAML key order.
type document struct {
	Name        string       `yaml:"name"`
	Sense       string       `yaml:"sense"`
	Objectives  []objective  `yaml:"objectives"`
	Constraints []constraint `yaml:"constraints"`
	Variables   []variable   `yaml:"variables"`
	SOS         []sosSet     `yaml:"sos,omitempty"`
}

type term struct {
	Var   string  `yaml:"var,omitempty"`
	Value float64 `yaml:"value"`
}

type objective struct {
	Name  string `yaml:"name"`
	Terms []term `yaml:"terms"`
}

type constraint struct {
	Name           string      `yaml:"name"`
	Kind           string      `yaml:"kind"`
	Terms          []term      `yaml:"terms,omitempty"`
	Op             string      `yaml:"op,omitempty"`
	RHS            float64     `yaml:"rhs"`
	Lower          float64     `yaml:"lower"`
	Upper          float64     `yaml:"upper"`
	IndicatorVar   string      `yaml:"indicator_var,omitempty"`
	IndicatorValue int         `yaml:"indicator_value,omitempty"`
	Inner          *constraint `yaml:"inner,omitempty"`
}

type variable struct {
	Name  string  `yaml:"name"`
	Type  string  `yaml:"type"`
	Lower float64 `yaml:"lower"`
	Upper float64 `yaml:"upper,omitempty"`
	Free  bool    `yaml:"free,omitempty"`
}

type sosWeight struct {
	Var    string  `yaml:"var"`
	Weight float64 `yaml:"weight"`
}

type sosSet struct {
	Name    string      `yaml:"name"`
	Kind    string      `yaml:"kind"`
	Weights []sosWeight `yaml:"weights"`
}

// Marshal renders p as canonical YAML: variables, objectives, constraints
// and SOS sets are emitted in sorted-by-name order so that two parses of
// equivalent input produce byte-identical output regardless of the map
// iteration order the assembler happened to use.
func Marshal(p *lp.Problem) ([]byte, error) {
	doc := document{
		Name:  p.Name(),
		Sense: p.Sense.String(),
	}

	for _, name := range sortedKeys(p.Objectives) {
		o := p.Objectives[name]
		doc.Objectives = append(doc.Objectives, objective{Name: o.Name, Terms: toTerms(o.Coefficients)})
	}

	for _, name := range sortedKeys(p.Constraints) {
		doc.Constraints = append(doc.Constraints, toConstraint(p.Constraints[name]))
	}

	for _, name := range sortedKeys(p.Variables) {
		v := p.Variables[name]
		doc.Variables = append(doc.Variables, variable{
			Name:  v.Name,
			Type:  v.Type.String(),
			Lower: v.Bounds.Lower,
			Upper: v.Bounds.Upper,
			Free:  v.Bounds.Free,
		})
	}

	for _, name := range sortedKeys(p.SOSSets) {
		s := p.SOSSets[name]
		var weights []sosWeight
		for _, w := range s.Weights {
			weights = append(weights, sosWeight{Var: w.Name, Weight: w.Weight})
		}
		doc.SOS = append(doc.SOS, sosSet{Name: s.Name, Kind: s.Kind.String(), Weights: weights})
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "marshal lp problem to yaml")
	}
	return out, nil
}

// Unmarshal parses YAML produced by Marshal back into an *lp.Problem,
// completing the round trip promised for this collaborator: a Problem
// marshalled and then unmarshalled compares equal in every structural
// field (term order, constraint shape, variable bounds and type).
func Unmarshal(data []byte) (*lp.Problem, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "unmarshal lp problem from yaml")
	}

	p := lp.NewProblem()
	p.ProblemName = doc.Name
	sense, err := senseFromString(doc.Sense)
	if err != nil {
		return nil, err
	}
	p.Sense = sense

	for _, o := range doc.Objectives {
		p.Objectives[o.Name] = &lp.Objective{Name: o.Name, Coefficients: fromTerms(o.Terms)}
	}

	for _, c := range doc.Constraints {
		cons, err := fromConstraint(c)
		if err != nil {
			return nil, err
		}
		p.Constraints[c.Name] = cons
	}

	for _, v := range doc.Variables {
		vt, err := varTypeFromString(v.Type)
		if err != nil {
			return nil, err
		}
		p.Variables[v.Name] = &lp.Variable{
			Name:   v.Name,
			Type:   vt,
			Bounds: lp.Bounds{Lower: v.Lower, Upper: v.Upper, Free: v.Free},
		}
	}

	for _, s := range doc.SOS {
		kind, err := sosKindFromString(s.Kind)
		if err != nil {
			return nil, err
		}
		weights := make([]lp.SOSWeight, len(s.Weights))
		for i, w := range s.Weights {
			weights[i] = lp.SOSWeight{Name: w.Var, Weight: w.Weight}
		}
		p.SOSSets[s.Name] = &lp.SOS{Name: s.Name, Kind: kind, Weights: weights}
	}

	return p, nil
}

func fromTerms(ts []term) []lp.Coefficient {
	cs := make([]lp.Coefficient, len(ts))
	for i, t := range ts {
		cs[i] = lp.Coefficient{Name: t.Var, Value: t.Value}
	}
	return cs
}

func fromConstraint(c constraint) (*lp.Constraint, error) {
	out := &lp.Constraint{Name: c.Name}
	switch c.Kind {
	case "standard":
		out.Kind = lp.StandardConstraint
		out.Coefficients = fromTerms(c.Terms)
		op, err := compareOpFromString(c.Op)
		if err != nil {
			return nil, err
		}
		out.Op = op
		out.RHS = c.RHS
	case "ranged":
		out.Kind = lp.RangedConstraint
		out.Coefficients = fromTerms(c.Terms)
		out.Lower = c.Lower
		out.Upper = c.Upper
	case "indicator":
		out.Kind = lp.IndicatorConstraint
		out.IndicatorVar = c.IndicatorVar
		out.IndicatorValue = c.IndicatorValue
		if c.Inner != nil {
			inner, err := fromConstraint(*c.Inner)
			if err != nil {
				return nil, err
			}
			out.Inner = inner
		}
	default:
		return nil, errors.Errorf("lpyaml: unknown constraint kind %q", c.Kind)
	}
	return out, nil
}

func senseFromString(s string) (lp.Sense, error) {
	switch s {
	case "minimize":
		return lp.Minimize, nil
	case "maximize":
		return lp.Maximize, nil
	default:
		return 0, errors.Errorf("lpyaml: unknown sense %q", s)
	}
}

func varTypeFromString(s string) (lp.VarType, error) {
	switch s {
	case "continuous":
		return lp.Continuous, nil
	case "integer":
		return lp.Integer, nil
	case "general":
		return lp.General, nil
	case "binary":
		return lp.Binary, nil
	case "semi-continuous":
		return lp.SemiContinuous, nil
	default:
		return 0, errors.Errorf("lpyaml: unknown variable type %q", s)
	}
}

func compareOpFromString(s string) (lp.CompareOp, error) {
	switch s {
	case "<=":
		return lp.LE, nil
	case ">=":
		return lp.GE, nil
	case "=":
		return lp.EQ, nil
	default:
		return 0, errors.Errorf("lpyaml: unknown comparison operator %q", s)
	}
}

func sosKindFromString(s string) (lp.SOSKind, error) {
	switch s {
	case "S1":
		return lp.SOS1, nil
	case "S2":
		return lp.SOS2, nil
	default:
		return 0, errors.Errorf("lpyaml: unknown SOS kind %q", s)
	}
}

func toTerms(cs []lp.Coefficient) []term {
	terms := make([]term, len(cs))
	for i, c := range cs {
		terms[i] = term{Var: c.Name, Value: c.Value}
	}
	return terms
}

func toConstraint(c *lp.Constraint) constraint {
	out := constraint{Name: c.Name}
	switch c.Kind {
	case lp.StandardConstraint:
		out.Kind = "standard"
		out.Terms = toTerms(c.Coefficients)
		out.Op = c.Op.String()
		out.RHS = c.RHS
	case lp.RangedConstraint:
		out.Kind = "ranged"
		out.Terms = toTerms(c.Coefficients)
		out.Lower = c.Lower
		out.Upper = c.Upper
	case lp.IndicatorConstraint:
		out.Kind = "indicator"
		out.IndicatorVar = c.IndicatorVar
		out.IndicatorValue = c.IndicatorValue
		if c.Inner != nil {
			inner := toConstraint(c.Inner)
			out.Inner = &inner
		}
	}
	return out
}

// sortedKeys returns the keys of a map[string]*T in ascending order, so
// Marshal's output doesn't depend on Go's randomized map iteration.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
