package lp

import "math"

// scanBoundValue parses a signed number or an (optionally signed) infinity
// keyword ("inf"/"infinity", case-insensitive), as used on either side of a
// bounds-section inequality (spec.md §4.G).
func scanBoundValue(l *lexer, regionEnd int) (value float64, ok bool, err *Error) {
	save := l.pos
	sign, hasSign := l.scanSign()
	if l.matchKeywordCI("infinity") || l.matchKeywordCI("inf") {
		if hasSign && sign < 0 {
			return math.Inf(-1), true, nil
		}
		return math.Inf(1), true, nil
	}
	l.pos = save
	v, _, gotNum, numErr := l.scanNumber()
	if numErr != nil {
		return 0, false, numErr
	}
	if !gotNum {
		return 0, false, nil
	}
	return v, true, nil
}

// parseBoundsSection parses the bounds-section entries of spec.md §4.G
// from [l.pos, regionEnd).
func parseBoundsSection(problem *Problem, l *lexer, regionEnd int) *Error {
	for {
		l.skipSpaceAndLineComments()
		if l.pos >= regionEnd {
			return nil
		}
		if err := parseOneBound(problem, l, regionEnd); err != nil {
			return err
		}
	}
}

func parseOneBound(problem *Problem, l *lexer, regionEnd int) *Error {
	entryStart := l.pos

	// Try "<lo> <= <var> [<= <hi>]".
	save := l.pos
	loVal, loOk, err := scanBoundValue(l, regionEnd)
	if err != nil {
		return err
	}
	if loOk {
		if op, hasOp := l.scanCompareOp(regionEnd); hasOp && op == LE {
			varName, varOff, hasVar := l.scanIdent()
			if hasVar {
				if !validIdentifier(varName) {
					return errAt(InvalidIdentifier, varOff, varName)
				}
				v := problem.upsertVariable(varName)
				v.Bounds.Lower = loVal
				if op2, hasOp2 := l.scanCompareOp(regionEnd); hasOp2 && op2 == LE {
					hiVal, hiOk, err2 := scanBoundValue(l, regionEnd)
					if err2 != nil {
						return err2
					}
					if hiOk {
						v.Bounds.Upper = hiVal
						if math.IsInf(loVal, -1) && math.IsInf(hiVal, 1) {
							v.Bounds.Free = true
						}
						if !v.Bounds.Free && v.Bounds.Lower > v.Bounds.Upper {
							return errAt(InvalidBounds, entryStart, varName)
						}
						return nil
					}
				}
				if v.Bounds.Lower > v.Bounds.Upper {
					return errAt(InvalidBounds, entryStart, varName)
				}
				return nil
			}
		}
		l.pos = save
	}

	// "<var> ..." forms: free, fixed, or upper-only.
	varName, varOff, hasVar := l.scanIdent()
	if !hasVar {
		return errAt(UnexpectedEndOfInput, l.pos, "")
	}
	if !validIdentifier(varName) {
		return errAt(InvalidIdentifier, varOff, varName)
	}
	v := problem.upsertVariable(varName)

	if l.matchKeywordCI("free") {
		v.Bounds.Lower = math.Inf(-1)
		v.Bounds.Upper = math.Inf(1)
		v.Bounds.Free = true
		return nil
	}

	op, hasOp := l.scanCompareOp(regionEnd)
	if !hasOp {
		return errAt(InvalidBounds, l.pos, varName)
	}
	switch op {
	case LE:
		hiVal, hiOk, err := scanBoundValue(l, regionEnd)
		if err != nil {
			return err
		}
		if !hiOk {
			return errAt(InvalidBounds, l.pos, varName)
		}
		v.Bounds.Upper = hiVal
		if v.Bounds.Lower > v.Bounds.Upper {
			return errAt(InvalidBounds, entryStart, varName)
		}
		return nil
	case GE:
		loVal, loOk, err := scanBoundValue(l, regionEnd)
		if err != nil {
			return err
		}
		if !loOk {
			return errAt(InvalidBounds, l.pos, varName)
		}
		v.Bounds.Lower = loVal
		if v.Bounds.Lower > v.Bounds.Upper {
			return errAt(InvalidBounds, entryStart, varName)
		}
		return nil
	case EQ:
		fixVal, fixOk, err := scanBoundValue(l, regionEnd)
		if err != nil {
			return err
		}
		if !fixOk {
			return errAt(InvalidBounds, l.pos, varName)
		}
		v.Bounds.Lower, v.Bounds.Upper = fixVal, fixVal
		return nil
	default:
		return errAt(InvalidBounds, l.pos, varName)
	}
}

// parseTypedVarList parses a whitespace-separated list of variable names
// (the Integers/Generals/Binaries/Semi sections of spec.md §4.G) and tags
// each with t. Binary forces bounds to [0,1], overriding any prior bounds
// (with an advisory diagnostic, never a failure, per spec.md §3).
func parseTypedVarList(problem *Problem, l *lexer, regionEnd int, t VarType, sink DiagnosticSink) *Error {
	for {
		l.skipSpaceAndLineComments()
		if l.pos >= regionEnd {
			return nil
		}
		name, off, ok := l.scanIdent()
		if !ok {
			return errAt(UnexpectedEndOfInput, l.pos, "")
		}
		if !validIdentifier(name) {
			return errAt(InvalidIdentifier, off, name)
		}
		v := problem.upsertVariable(name)
		if t == Binary {
			hadCustomBounds := v.Bounds.Lower != 0 || !math.IsInf(v.Bounds.Upper, 1) || v.Bounds.Free
			if hadCustomBounds && sink != nil {
				sink.Diagnose(Diagnostic{
					Kind:    DiagTypeBoundConflict,
					Offset:  off,
					Message: "binary declaration overrides prior bounds for " + name,
				})
			}
			v.Bounds = Bounds{Lower: 0, Upper: 1}
		}
		v.Type = t
	}
}
