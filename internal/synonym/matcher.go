// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package synonym decides which of a gene's database aliases a paper
// actually uses. Aliases are counted with a boundary-aware matcher that
// accepts an optional hyphen inside letters+digits identifiers ("EBA-181"
// and "EBA181") and never matches inside a longer alphanumeric token.
package synonym

import (
	"errors"
	"regexp"
	"unicode/utf8"
)

// ErrEmptyCandidate is returned by Compile for an empty candidate string.
var ErrEmptyCandidate = errors.New("synonym: empty candidate")

// Token is a classified candidate. It is either a StructuredID or a Literal.
type Token interface {
	// pattern returns the regular expression source for the token body,
	// without boundary handling or case folding.
	pattern() string
}

// StructuredID is a candidate made only of ASCII letters followed by ASCII
// digits, such as "EBA181". It also matches with a hyphen between the two runs.
type StructuredID struct {
	Letters string
	Digits  string
}

func (s StructuredID) pattern() string {
	return regexp.QuoteMeta(s.Letters) + "-?" + regexp.QuoteMeta(s.Digits)
}

// Literal is any other candidate; it matches its text exactly.
type Literal struct {
	Text string
}

func (l Literal) pattern() string {
	return regexp.QuoteMeta(l.Text)
}

// Classify resolves candidate to its token variant.
func Classify(candidate string) Token {
	i := 0
	for i < len(candidate) && isASCIILetter(candidate[i]) {
		i++
	}
	j := i
	for j < len(candidate) && isASCIIDigit(candidate[j]) {
		j++
	}
	if i > 0 && j > i && j == len(candidate) {
		return StructuredID{Letters: candidate[:i], Digits: candidate[i:]}
	}
	return Literal{Text: candidate}
}

// Matcher counts boundary-isolated, case-insensitive occurrences of one token.
type Matcher struct {
	token Token
	re    *regexp.Regexp
}

// Compile classifies candidate and compiles its matcher.
func Compile(candidate string) (*Matcher, error) {
	if candidate == "" {
		return nil, ErrEmptyCandidate
	}
	tok := Classify(candidate)
	re, err := regexp.Compile("(?i)" + tok.pattern())
	if err != nil {
		return nil, err
	}
	return &Matcher{token: tok, re: re}, nil
}

// Token returns the classified candidate.
func (m *Matcher) Token() Token {
	return m.token
}

// Count returns the number of non-overlapping matches in text that are not
// preceded or followed by an ASCII letter or digit. A match rejected by the
// boundary check does not consume its span: scanning resumes one character
// after its start.
func (m *Matcher) Count(text string) int {
	count := 0
	pos := 0
	for pos < len(text) {
		loc := m.re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if isolated(text, start, end) {
			count++
			pos = end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		if size == 0 {
			break
		}
		pos = start + size
	}
	return count
}

// CountOccurrences counts boundary-isolated occurrences of candidate in text.
// An empty candidate never matches.
func CountOccurrences(text, candidate string) int {
	m, err := Compile(candidate)
	if err != nil {
		return 0
	}
	return m.Count(text)
}

// isolated reports whether text[start:end] has no alphanumeric neighbour.
func isolated(text string, start, end int) bool {
	if start > 0 && isASCIIAlnum(text[start-1]) {
		return false
	}
	if end < len(text) && isASCIIAlnum(text[end]) {
		return false
	}
	return true
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isASCIIAlnum(b byte) bool {
	return isASCIILetter(b) || isASCIIDigit(b)
}
