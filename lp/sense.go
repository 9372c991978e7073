package lp

// senseKeywords lists accepted spellings, longest first within each sense
// so that matchKeywordCI's boundary check (correctness-independent of
// order, as in header.go) still gets the fast path.
var senseKeywords = []struct {
	sense Sense
	word  string
}{
	{Minimize, "minimise"},
	{Minimize, "minimize"},
	{Minimize, "min"},
	{Maximize, "maximise"},
	{Maximize, "maximize"},
	{Maximize, "max"},
}

// scanSense recognizes the sense keyword (spec.md §4.D). It must appear
// immediately after the prelude comments.
func (l *lexer) scanSense() (Sense, *Error) {
	l.skipSpaceAndLineComments()
	start := l.pos
	for _, sk := range senseKeywords {
		save := l.pos
		if l.matchKeywordCI(sk.word) {
			return sk.sense, nil
		}
		l.pos = save
	}
	return Minimize, errAt(MissingSense, start, "")
}
