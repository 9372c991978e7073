package lp

import (
	"strconv"
	"strings"
)

// identSymbols is the set of punctuation characters (beyond letters and
// digits) that may appear in an LP identifier, per spec.md §3. A semicolon
// is deliberately excluded: CPLEX/PuLP/lp_solve producers terminate
// objective, constraint and bound statements with a trailing `;`, so it is
// treated as an insignificant statement separator (see isSpace) rather than
// an identifier character, matching every corpus file this module parses.
const identSymbols = "!#$%&(),._?@\\{}~'"

func isIdentStart(r byte) bool {
	return isLetter(r) || isIdentSymbol(r)
}

func isIdentCont(r byte) bool {
	return isLetter(r) || isDigit(r) || isIdentSymbol(r)
}

func isIdentSymbol(r byte) bool {
	return strings.IndexByte(identSymbols, r) >= 0
}

func isLetter(r byte) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r byte) bool {
	return r >= '0' && r <= '9'
}

// isSpace reports whether r is insignificant between tokens: ordinary
// whitespace, or the `;` statement terminator (see identSymbols).
func isSpace(r byte) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f' || r == ';'
}

// lexer is a cursor over an LP source buffer. Whitespace, including line
// breaks, is insignificant between tokens (spec.md §4.A); callers invoke
// skipSpace explicitly at token boundaries.
type lexer struct {
	src string
	pos int
}

func newLexer(src string) *lexer {
	// Skip a UTF-8 BOM if present, per spec.md §6.
	if strings.HasPrefix(src, "\xEF\xBB\xBF") {
		src = src[len("\xEF\xBB\xBF"):]
	}
	return &lexer{src: src}
}

func (l *lexer) atEnd() bool { return l.pos >= len(l.src) }

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
}

// skipSpaceAndLineComments skips whitespace and line comments. Block
// comments are only recognized in the prelude (4.C); elsewhere a `\` that
// does not open a block comment starts a to-end-of-line comment, since
// CPLEX producers occasionally interleave line comments mid-section.
func (l *lexer) skipSpaceAndLineComments() {
	for {
		l.skipSpace()
		if l.pos < len(l.src) && l.src[l.pos] == '\\' && !l.peekBlockComment() {
			nl := strings.IndexAny(l.src[l.pos:], "\n\r")
			if nl < 0 {
				l.pos = len(l.src)
			} else {
				l.pos += nl + 1
			}
			continue
		}
		return
	}
}

func (l *lexer) peekBlockComment() bool {
	return strings.HasPrefix(l.src[l.pos:], `\*`) || strings.HasPrefix(l.src[l.pos:], `\\*`)
}

// matchKeywordCI reports whether the next token (after skipping
// whitespace/line-comments) case-insensitively equals kw, treating kw as a
// maximal run of non-space characters that must end exactly where kw ends
// (so "bin" does not match inside "binary"). On success it advances past
// the keyword and any immediately following ':'.
func (l *lexer) matchKeywordCI(kw string) bool {
	save := l.pos
	l.skipSpaceAndLineComments()
	if l.pos+len(kw) > len(l.src) {
		l.pos = save
		return false
	}
	if !strings.EqualFold(l.src[l.pos:l.pos+len(kw)], kw) {
		l.pos = save
		return false
	}
	end := l.pos + len(kw)
	// Require a token boundary: the keyword must not be a strict prefix of
	// a longer identifier run (distinguishes "st" from "step").
	if end < len(l.src) && isIdentCont(l.src[end]) && !strings.ContainsRune(kw, ':') {
		l.pos = save
		return false
	}
	l.pos = end
	l.skipSpace()
	if l.pos < len(l.src) && l.src[l.pos] == ':' {
		l.pos++
	}
	return true
}

// scanIdent scans a single identifier starting at the current position
// (after whitespace is skipped). Returns ok=false if the current byte
// cannot start an identifier.
func (l *lexer) scanIdent() (name string, offset int, ok bool) {
	l.skipSpaceAndLineComments()
	start := l.pos
	if l.pos >= len(l.src) || !isIdentStart(l.src[l.pos]) {
		return "", start, false
	}
	l.pos++
	for l.pos < len(l.src) && isIdentCont(l.src[l.pos]) {
		l.pos++
	}
	return l.src[start:l.pos], start, true
}

// scanSign scans a single '+' or '-' sign token, whatever follows it; the
// caller reads any coefficient after it separately (an absent coefficient
// means 1, per spec.md §4.A).
func (l *lexer) scanSign() (sign float64, ok bool) {
	save := l.pos
	l.skipSpaceAndLineComments()
	if l.pos >= len(l.src) {
		l.pos = save
		return 0, false
	}
	c := l.src[l.pos]
	if c != '+' && c != '-' {
		l.pos = save
		return 0, false
	}
	l.pos++
	if c == '-' {
		return -1, true
	}
	return 1, true
}

// scanNumber scans a signed decimal literal with optional fraction and
// exponent. Returns ok=false (without consuming) if no number is present.
func (l *lexer) scanNumber() (value float64, offset int, ok bool, err *Error) {
	l.skipSpaceAndLineComments()
	start := l.pos
	p := l.pos
	n := len(l.src)
	if p < n && (l.src[p] == '+' || l.src[p] == '-') {
		p++
	}
	digitsBefore := p
	for p < n && isDigit(l.src[p]) {
		p++
	}
	hasIntPart := p > digitsBefore
	hasFrac := false
	if p < n && l.src[p] == '.' {
		fracStart := p + 1
		q := fracStart
		for q < n && isDigit(l.src[q]) {
			q++
		}
		if q > fracStart {
			hasFrac = true
			p = q
		} else if hasIntPart {
			// A bare trailing '.' after digits, e.g. "5." -- accept.
			hasFrac = true
			p = fracStart
		}
	}
	if !hasIntPart && !hasFrac {
		return 0, start, false, nil
	}
	if p < n && (l.src[p] == 'e' || l.src[p] == 'E') {
		q := p + 1
		if q < n && (l.src[q] == '+' || l.src[q] == '-') {
			q++
		}
		expStart := q
		for q < n && isDigit(l.src[q]) {
			q++
		}
		if q > expStart {
			p = q
		}
	}
	text := l.src[start:p]
	v, perr := strconv.ParseFloat(text, 64)
	if perr != nil {
		return 0, start, false, errAt(InvalidNumber, start, text)
	}
	l.pos = p
	return v, start, true, nil
}

// takeUntilAnyKeyword is spec.md §4.A's "take_until_any_keyword": given an
// ordered list of keyword phrases (most are single words; "subject to" and
// "such that" are two), it advances to the earliest token-boundary,
// case-insensitive occurrence of any of them, at or after the current
// position. Ties at the same offset favor the phrase listed first. It
// leaves the lexer positioned exactly at the match (not consuming it) and
// returns the skipped prefix. ok is false if none occurs before EOF.
func (l *lexer) takeUntilAnyKeyword(phrases [][]string) (prefix string, matchedIdx int, ok bool) {
	start := l.pos
	for p := l.pos; p <= len(l.src); p++ {
		for i, words := range phrases {
			if _, matches := matchPhraseAt(l.src, p, words); matches {
				l.pos = p
				return l.src[start:p], i, true
			}
		}
	}
	return l.src[start:], -1, false
}

// matchPhraseAt reports whether words (a sequence of literal, possibly
// multi-word tokens separated by arbitrary whitespace) matches starting
// exactly at pos, case-insensitively, requiring a token boundary immediately
// before and after the whole match.
func matchPhraseAt(src string, pos int, words []string) (end int, ok bool) {
	if pos > 0 && isIdentCont(words[0][0]) && isIdentCont(src[pos-1]) {
		return 0, false
	}
	p := pos
	for i, w := range words {
		if i > 0 {
			before := p
			for p < len(src) && isSpace(src[p]) {
				p++
			}
			if p == before {
				return 0, false
			}
		}
		if p+len(w) > len(src) || !strings.EqualFold(src[p:p+len(w)], w) {
			return 0, false
		}
		p += len(w)
	}
	last := words[len(words)-1]
	lastByte := last[len(last)-1]
	if isIdentCont(lastByte) && p < len(src) && isIdentCont(src[p]) {
		return 0, false
	}
	return p, true
}
