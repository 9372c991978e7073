package lp

// HeaderKind is one of the recognized LP section headers (spec.md §4.B).
type HeaderKind int

const (
	NoHeader HeaderKind = iota
	ConstraintHeader
	BoundsHeader
	GeneralsHeader
	IntegersHeader
	BinariesHeader
	SemiContinuousHeader
	SOSHeader
	EndHeader
)

func (k HeaderKind) String() string {
	switch k {
	case ConstraintHeader:
		return "constraint header"
	case BoundsHeader:
		return "bounds header"
	case GeneralsHeader:
		return "generals header"
	case IntegersHeader:
		return "integers header"
	case BinariesHeader:
		return "binaries header"
	case SemiContinuousHeader:
		return "semi-continuous header"
	case SOSHeader:
		return "sos header"
	case EndHeader:
		return "end header"
	default:
		return "no header"
	}
}

// headerSpelling is one accepted spelling for a header, listed in the
// order given by spec.md §4.B (longer spellings first). Correctness does
// not depend on this order: matchPhraseAt enforces a token boundary, and
// consumeHeader keeps the longest match, which also covers "semi" against
// "semi-continuous" ('-' is not an identifier byte, so the boundary check
// alone would let "semi" match there).
type headerSpelling struct {
	kind  HeaderKind
	words []string
}

var headerSpellings = []headerSpelling{
	{ConstraintHeader, []string{"subject", "to"}},
	{ConstraintHeader, []string{"such", "that"}},
	{ConstraintHeader, []string{"s.t."}},
	{ConstraintHeader, []string{"st:"}},
	{ConstraintHeader, []string{"st"}},
	{BoundsHeader, []string{"bounds"}},
	{BoundsHeader, []string{"bound"}},
	{GeneralsHeader, []string{"generals"}},
	{GeneralsHeader, []string{"general"}},
	{GeneralsHeader, []string{"gen"}},
	{IntegersHeader, []string{"integers"}},
	{IntegersHeader, []string{"integer"}},
	{BinariesHeader, []string{"binaries"}},
	{BinariesHeader, []string{"binary"}},
	{BinariesHeader, []string{"bin"}},
	{SemiContinuousHeader, []string{"semi-continuous"}},
	{SemiContinuousHeader, []string{"semis"}},
	{SemiContinuousHeader, []string{"semi"}},
	{SOSHeader, []string{"sos"}},
	{EndHeader, []string{"end"}},
}

// matchPhraseCI matches a sequence of words separated by arbitrary
// whitespace, requiring a token boundary around the whole match, then
// consumes trailing whitespace and an immediate ':'.
func (l *lexer) matchPhraseCI(words []string) bool {
	l.skipSpaceAndLineComments()
	end, ok := matchPhraseAt(l.src, l.pos, words)
	if !ok {
		return false
	}
	l.pos = end
	l.skipSpace()
	if l.pos < len(l.src) && l.src[l.pos] == ':' {
		l.pos++
	}
	return true
}

// peekHeader classifies the next non-whitespace token without consuming it.
func (l *lexer) peekHeader() HeaderKind {
	save := l.pos
	k := l.consumeHeader()
	l.pos = save
	return k
}

// consumeHeader classifies and consumes the next header, if any, returning
// NoHeader (without consuming anything) otherwise. When several spellings
// match, the one whose match ends furthest wins.
func (l *lexer) consumeHeader() HeaderKind {
	start := l.pos
	best, bestEnd := NoHeader, start
	for _, hs := range headerSpellings {
		l.pos = start
		if l.matchPhraseCI(hs.words) && (best == NoHeader || l.pos > bestEnd) {
			best, bestEnd = hs.kind, l.pos
		}
	}
	l.pos = bestEnd
	return best
}

// phrasesFor returns the word-sequences for every spelling of the given
// header kinds, for use with lexer.takeUntilAnyKeyword when carving out a
// section's region.
func phrasesFor(kinds ...HeaderKind) [][]string {
	want := make(map[HeaderKind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}
	var out [][]string
	for _, hs := range headerSpellings {
		if want[hs.kind] {
			out = append(out, hs.words)
		}
	}
	return out
}

// allSectionHeaderKinds lists every header kind that can begin the bounds
// region (G) or the SOS region (H), plus End.
func allSectionHeaderKinds() []HeaderKind {
	return []HeaderKind{
		BoundsHeader, GeneralsHeader, IntegersHeader, BinariesHeader,
		SemiContinuousHeader, SOSHeader, EndHeader,
	}
}
