package lp

import (
	"strings"
)

// scanComments consumes a run of comments at the lexer's current position
// (the prelude, per spec.md §4.C) and returns their trimmed bodies in
// source order. It stops, without error, at the first position that does
// not open a comment.
func (l *lexer) scanComments() ([]string, *Error) {
	var comments []string
	for {
		body, ok, err := l.scanSingleComment()
		if err != nil {
			return comments, err
		}
		if !ok {
			return comments, nil
		}
		comments = append(comments, body)
	}
}

// scanSingleComment recognizes one of the three comment forms in
// spec.md §4.C: two block-comment spellings and the line form.
func (l *lexer) scanSingleComment() (body string, ok bool, err *Error) {
	opener := l.pos
	switch {
	case strings.HasPrefix(l.src[l.pos:], `\\*`):
		return l.scanBlockComment(opener, 3)
	case strings.HasPrefix(l.src[l.pos:], `\*`):
		return l.scanBlockComment(opener, 2)
	case l.pos < len(l.src) && l.src[l.pos] == '\\':
		return l.scanLineComment(opener)
	default:
		return "", false, nil
	}
}

func (l *lexer) scanBlockComment(opener, openerLen int) (string, bool, *Error) {
	start := opener + openerLen
	end := strings.Index(l.src[start:], `*\`)
	if end < 0 {
		return "", false, errAt(UnterminatedComment, opener, "")
	}
	content := l.src[start : start+end]
	l.pos = start + end + len(`*\`)
	l.skipSpace()
	return strings.TrimSpace(content), true, nil
}

func (l *lexer) scanLineComment(opener int) (string, bool, *Error) {
	start := opener + 1
	nl := strings.IndexAny(l.src[start:], "\n\r")
	var content string
	if nl < 0 {
		content = l.src[start:]
		l.pos = len(l.src)
	} else {
		content = l.src[start : start+nl]
		l.pos = start + nl
		// Consume the line terminator (\n, \r, or \r\n).
		if l.pos < len(l.src) && l.src[l.pos] == '\r' {
			l.pos++
		}
		if l.pos < len(l.src) && l.src[l.pos] == '\n' {
			l.pos++
		}
	}
	return strings.TrimSpace(content), true, nil
}

// isDecorative reports whether a comment body is a decorative marker (a run
// of punctuation with no alphanumeric content) rather than a name hint.
func isDecorative(body string) bool {
	for _, r := range body {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

// problemNameFromComments applies the problem-name heuristic of spec.md
// §4.C: the last non-empty comment that is not an ENCODING directive and
// not purely decorative becomes the problem name. A "Problem name:" prefix,
// if present, is stripped.
func problemNameFromComments(comments []string) string {
	name := ""
	for _, c := range comments {
		trimmed := strings.TrimSpace(c)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(strings.ToUpper(trimmed), "ENCODING=") {
			continue
		}
		if isDecorative(trimmed) {
			continue
		}
		if rest, cut := cutFoldPrefix(trimmed, "problem name:"); cut {
			trimmed = strings.TrimSpace(rest)
		} else if rest, cut := cutFoldPrefix(trimmed, "problem name"); cut {
			trimmed = strings.TrimSpace(rest)
		}
		name = trimmed
	}
	return name
}

// cutFoldPrefix is strings.CutPrefix with case-insensitive comparison.
func cutFoldPrefix(s, prefix string) (string, bool) {
	if len(s) < len(prefix) {
		return s, false
	}
	if !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}
