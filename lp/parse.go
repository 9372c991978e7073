package lp

import "math"

// ParseOptions configures a Parse call. The zero value discards all
// diagnostics, matching "absence [of a sink] degrades to discard" (§7).
type ParseOptions struct {
	// Sink receives advisory diagnostics (type/bound conflicts, zero
	// coefficients, duplicate SOS weights, unparsed trailing regions). A
	// nil Sink discards them.
	Sink DiagnosticSink
}

// Parse recognizes text as an LP file and assembles a Problem, per the
// state machine in spec.md §4.I:
//
//	Prelude -> Sense -> Objectives -> Constraints ->
//	  {Bounds|Integers|Generals|Binaries|Semi|SOS}* -> End
//
// On the first error it returns a nil Problem and an *Error carrying the
// byte offset and kind.
func Parse(text string) (*Problem, error) {
	return ParseWithOptions(text, ParseOptions{})
}

// ParseWithOptions is Parse with explicit diagnostic routing.
func ParseWithOptions(text string, opts ParseOptions) (*Problem, error) {
	l := newLexer(text)
	sink := opts.Sink
	problem := NewProblem()

	comments, cerr := l.scanComments()
	if cerr != nil {
		return nil, cerr
	}
	problem.ProblemName = problemNameFromComments(comments)

	sense, serr := l.scanSense()
	if serr != nil {
		return nil, serr
	}
	problem.Sense = sense

	// Objectives: from here to the constraint header.
	objStart := l.pos
	if _, _, ok := l.takeUntilAnyKeyword(phrasesFor(ConstraintHeader)); !ok {
		return nil, errAt(UnexpectedEndOfInput, l.pos, "")
	}
	headerStart := l.pos
	l.pos = objStart
	if err := parseObjectives(problem, l, headerStart, sink); err != nil {
		return nil, err
	}
	l.pos = headerStart

	if k := l.consumeHeader(); k != ConstraintHeader {
		return nil, errAt(UnexpectedHeader, headerStart, k.String())
	}

	// Constraints: from here to the first bounds-like header (or end).
	consStart := l.pos
	if _, _, ok := l.takeUntilAnyKeyword(phrasesFor(allSectionHeaderKinds()...)); !ok {
		return nil, errAt(UnexpectedEndOfInput, l.pos, "")
	}
	boundsStart := l.pos
	l.pos = consStart
	if err := parseConstraints(problem, l, boundsStart, sink); err != nil {
		return nil, err
	}
	l.pos = boundsStart

	// Bounds/Integers/Generals/Binaries/Semi/SOS, in any order, any number
	// of times, until End.
	for {
		headerOffset := l.pos
		kind := l.consumeHeader()
		switch kind {
		case NoHeader:
			return nil, errAt(UnexpectedHeader, headerOffset, "")
		case EndHeader:
			if err := checkTrailingContent(l); err != nil {
				return nil, err
			}
			if err := validateProblem(problem); err != nil {
				return nil, err
			}
			return problem, nil
		}

		sectionStart := l.pos
		if _, _, ok := l.takeUntilAnyKeyword(phrasesFor(allSectionHeaderKinds()...)); !ok {
			return nil, errAt(UnexpectedEndOfInput, l.pos, "")
		}
		sectionEnd := l.pos
		l.pos = sectionStart

		var err *Error
		switch kind {
		case BoundsHeader:
			err = parseBoundsSection(problem, l, sectionEnd)
		case GeneralsHeader:
			err = parseTypedVarList(problem, l, sectionEnd, General, sink)
		case IntegersHeader:
			err = parseTypedVarList(problem, l, sectionEnd, Integer, sink)
		case BinariesHeader:
			err = parseTypedVarList(problem, l, sectionEnd, Binary, sink)
		case SemiContinuousHeader:
			err = parseTypedVarList(problem, l, sectionEnd, SemiContinuous, sink)
		case SOSHeader:
			err = parseSOS(problem, l, sectionEnd, sink)
		default:
			err = errAt(UnexpectedHeader, sectionStart, kind.String())
		}
		if err != nil {
			return nil, err
		}
		if l.pos != sectionEnd && sink != nil {
			sink.Diagnose(Diagnostic{
				Kind:    DiagUnparsedRegion,
				Offset:  l.pos,
				Message: "unparsed content in " + kind.String(),
			})
		}
		l.pos = sectionEnd
	}
}

func checkTrailingContent(l *lexer) *Error {
	l.skipSpaceAndLineComments()
	if l.pos < len(l.src) {
		return errAt(TrailingContent, l.pos, "")
	}
	return nil
}

// validateProblem re-checks the invariants of §4.I/§8 that aren't already
// guaranteed structurally by how the sections above populate Problem.
func validateProblem(p *Problem) *Error {
	for _, v := range p.Variables {
		if v.Type == Binary && (v.Bounds.Lower != 0 || v.Bounds.Upper != 1) {
			return errAt(InvalidBounds, 0, v.Name)
		}
		if !v.Bounds.Free && v.Bounds.Lower > v.Bounds.Upper {
			return errAt(InvalidBounds, 0, v.Name)
		}
	}
	for _, c := range p.Constraints {
		if rhsErr := checkConstraintRHS(c); rhsErr != nil {
			return rhsErr
		}
	}
	return nil
}

func checkConstraintRHS(c *Constraint) *Error {
	switch c.Kind {
	case StandardConstraint:
		if math.IsNaN(c.RHS) || math.IsInf(c.RHS, 0) {
			return errAt(MissingRHS, 0, c.Name)
		}
	case RangedConstraint:
		if c.Lower > c.Upper {
			return errAt(InvalidBounds, 0, c.Name)
		}
	case IndicatorConstraint:
		if c.Inner != nil {
			return checkConstraintRHS(c.Inner)
		}
	}
	return nil
}
