package lp

// parseObjectives parses one or more named linear expressions (spec.md
// §4.E) from [l.pos, regionEnd), registering every mentioned variable on
// problem with defaults.
func parseObjectives(problem *Problem, l *lexer, regionEnd int, sink DiagnosticSink) *Error {
	for {
		l.skipSpaceAndLineComments()
		if l.pos >= regionEnd {
			return nil
		}
		if k := l.peekHeader(); k != NoHeader {
			return errAt(UnexpectedHeader, l.pos, k.String())
		}
		name, nameOff, hasName := l.scanIdent()
		if !hasName {
			return errAt(UnexpectedEndOfInput, l.pos, "")
		}
		if !validIdentifier(name) {
			return errAt(InvalidIdentifier, nameOff, name)
		}
		l.skipSpaceAndLineComments()
		if l.pos >= regionEnd || l.src[l.pos] != ':' {
			return errAt(UnexpectedEndOfInput, l.pos, name)
		}
		l.pos++

		terms, err := parseLinearExpr(l, regionEnd)
		if err != nil {
			return err
		}
		if _, dup := problem.Objectives[name]; dup {
			return errAt(DuplicateName, nameOff, name)
		}
		for _, c := range terms {
			if c.Name == "" {
				continue
			}
			problem.upsertVariable(c.Name)
			if c.Value == 0 && sink != nil {
				sink.Diagnose(Diagnostic{
					Kind:    DiagZeroCoefficient,
					Offset:  nameOff,
					Message: "zero coefficient on " + c.Name + " in objective " + name,
				})
			}
		}
		problem.Objectives[name] = &Objective{Name: name, Coefficients: terms}
	}
}
