package lp

import "fmt"

// scanCompareOp recognizes one of the relational operators in spec.md
// §4.F: '<=','<','=<' (LE), '>=','>','=>' (GE), '=','==' (EQ). The
// two-byte spellings are tried first because the one-byte ones are their
// prefixes ('<' of '<=', '=' of '=<' and '==').
func (l *lexer) scanCompareOp(regionEnd int) (CompareOp, bool) {
	l.skipSpaceAndLineComments()
	if l.pos >= regionEnd {
		return 0, false
	}
	if l.pos+2 <= regionEnd {
		switch l.src[l.pos : l.pos+2] {
		case "<=", "=<":
			l.pos += 2
			return LE, true
		case ">=", "=>":
			l.pos += 2
			return GE, true
		case "==":
			l.pos += 2
			return EQ, true
		}
	}
	switch l.src[l.pos] {
	case '<':
		l.pos++
		return LE, true
	case '>':
		l.pos++
		return GE, true
	case '=':
		l.pos++
		return EQ, true
	}
	return 0, false
}

// matchArrow recognizes an indicator-constraint arrow: "->" (canonical),
// "=>", or "-->". Each spelling is compared in full, so none of them
// matches as part of another.
func (l *lexer) matchArrow(regionEnd int) bool {
	l.skipSpaceAndLineComments()
	for _, a := range []string{"-->", "->", "=>"} {
		if l.pos+len(a) <= regionEnd && l.src[l.pos:l.pos+len(a)] == a {
			l.pos += len(a)
			return true
		}
	}
	return false
}

// tryScanNameColon attempts to recognize a `<name> ':'` prefix. On success
// it consumes through the colon; on failure it leaves the lexer untouched
// (the identifier it speculatively scanned, if any, belongs to an unnamed
// constraint's expression instead).
func tryScanNameColon(l *lexer, regionEnd int) (name string, offset int, ok bool) {
	save := l.pos
	l.skipSpaceAndLineComments()
	ident, off, hasIdent := l.scanIdent()
	if !hasIdent {
		l.pos = save
		return "", 0, false
	}
	l.skipSpaceAndLineComments()
	if l.pos >= regionEnd || l.src[l.pos] != ':' || (l.pos+1 < regionEnd && l.src[l.pos+1] == ':') {
		l.pos = save
		return "", 0, false
	}
	l.pos++
	return ident, off, true
}

// parseStandardBody parses `<linear-expression> <op> <rhs>` with no label,
// the shape shared by a plain Standard constraint and an Indicator's inner
// constraint.
func parseStandardBody(l *lexer, regionEnd int) (*Constraint, *Error) {
	terms, err := parseLinearExpr(l, regionEnd)
	if err != nil {
		return nil, err
	}
	op, hasOp := l.scanCompareOp(regionEnd)
	if !hasOp {
		return nil, errAt(MissingRHS, l.pos, "")
	}
	rhsVal, rhsOff, hasRHS, numErr := l.scanNumber()
	if numErr != nil {
		return nil, numErr
	}
	if !hasRHS {
		return nil, errAt(MissingRHS, rhsOff, "")
	}
	return &Constraint{Kind: StandardConstraint, Coefficients: terms, Op: op, RHS: rhsVal}, nil
}

// tryParseIndicator attempts `<var> '=' (0|1) '->' <inner>` immediately
// after a name has already been consumed. It only commits (returning a
// non-nil error on failure) once the arrow has matched; until then it
// backtracks cleanly so the caller can fall through to Standard/Ranged.
func tryParseIndicator(l *lexer, regionEnd int) (*Constraint, bool, *Error) {
	entry := l.pos
	indVar, _, okVar := l.scanIdent()
	if !okVar {
		l.pos = entry
		return nil, false, nil
	}
	l.skipSpaceAndLineComments()
	if l.pos >= regionEnd || l.src[l.pos] != '=' || (l.pos+1 < regionEnd && l.src[l.pos+1] == '=') {
		l.pos = entry
		return nil, false, nil
	}
	l.pos++
	val, _, okNum, numErr := l.scanNumber()
	if numErr != nil || !okNum || (val != 0 && val != 1) {
		l.pos = entry
		return nil, false, nil
	}
	if !l.matchArrow(regionEnd) {
		l.pos = entry
		return nil, false, nil
	}
	inner, ierr := parseStandardBody(l, regionEnd)
	if ierr != nil {
		return nil, true, ierr
	}
	return &Constraint{
		Kind:           IndicatorConstraint,
		IndicatorVar:   indVar,
		IndicatorValue: int(val),
		Inner:          inner,
	}, true, nil
}

// parseStandardOrRanged parses either a Ranged constraint
// (`<lo> <= expr <= <hi>`) or, failing that, a Standard one.
func parseStandardOrRanged(l *lexer, regionEnd int) (*Constraint, *Error) {
	save := l.pos
	lowerVal, lowerOff, okLower, numErr := l.scanNumber()
	if numErr != nil {
		return nil, numErr
	}
	if okLower {
		if op1, hasOp1 := l.scanCompareOp(regionEnd); hasOp1 && op1 == LE {
			terms, err := parseLinearExpr(l, regionEnd)
			if err == nil {
				if op2, hasOp2 := l.scanCompareOp(regionEnd); hasOp2 && op2 == LE {
					upperVal, _, okUpper, numErr2 := l.scanNumber()
					if numErr2 == nil && okUpper {
						if lowerVal > upperVal {
							return nil, errAt(InvalidBounds, lowerOff, "")
						}
						return &Constraint{Kind: RangedConstraint, Coefficients: terms, Lower: lowerVal, Upper: upperVal}, nil
					}
				}
			}
		}
		l.pos = save
	}
	return parseStandardBody(l, regionEnd)
}

// constraintVarNames collects every variable name referenced by c,
// including (for an Indicator) its indicator variable and inner
// coefficients.
func constraintVarNames(c *Constraint) []string {
	var names []string
	for _, co := range c.Coefficients {
		if co.Name != "" {
			names = append(names, co.Name)
		}
	}
	if c.Kind == IndicatorConstraint {
		names = append(names, c.IndicatorVar)
		if c.Inner != nil {
			for _, co := range c.Inner.Coefficients {
				if co.Name != "" {
					names = append(names, co.Name)
				}
			}
		}
	}
	return names
}

// parseConstraints parses the constraint section (spec.md §4.F) from
// [l.pos, regionEnd). Unnamed constraints are assigned synthesized names
// c_1, c_2, ... in insertion order.
func parseConstraints(problem *Problem, l *lexer, regionEnd int, sink DiagnosticSink) *Error {
	autoIdx := 1
	for {
		l.skipSpaceAndLineComments()
		if l.pos >= regionEnd {
			return nil
		}

		name, nameOff, hasName := tryScanNameColon(l, regionEnd)

		var cons *Constraint
		if hasName {
			ind, matched, ierr := tryParseIndicator(l, regionEnd)
			if ierr != nil {
				return ierr
			}
			if matched {
				cons = ind
			}
		}
		if cons == nil {
			var err *Error
			cons, err = parseStandardOrRanged(l, regionEnd)
			if err != nil {
				return err
			}
		}

		if !hasName {
			name = fmt.Sprintf("c_%d", autoIdx)
			autoIdx++
		} else if _, dup := problem.Constraints[name]; dup {
			return errAt(DuplicateName, nameOff, name)
		}
		cons.Name = name

		for _, vn := range constraintVarNames(cons) {
			problem.upsertVariable(vn)
		}
		for _, co := range cons.Coefficients {
			if co.Name != "" && co.Value == 0 && sink != nil {
				sink.Diagnose(Diagnostic{Kind: DiagZeroCoefficient, Offset: nameOff, Message: "zero coefficient on " + co.Name + " in constraint " + name})
			}
		}
		problem.Constraints[name] = cons
	}
}
