package parser

import "strings"

// scanner splits raw text into tokens. It owns no diagnostics; malformed
// input is reported as an *Error and scanning stops.
type scanner struct {
	src      string
	origin   Origin
	pos      int
	tagStart int  // offset of the "<" of the opening tag being scanned
	inTag    bool // between a StartToken and its EndToken
	spaced   bool // whitespace seen since the last token inside a tag
}

// next returns the next token, or nil at end of input.
func (s *scanner) next() (Token, error) {
	if s.inTag {
		return s.scanTagPart()
	}

	if s.eof() {
		return nil, nil
	}

	if s.src[s.pos] == '<' {
		return s.scanMarkup()
	}

	return s.scanText(), nil
}

func (s *scanner) scanText() Token {
	start := s.pos

	end := strings.IndexByte(s.src[start:], '<')
	if end < 0 {
		s.pos = len(s.src)
	} else {
		s.pos = start + end
	}

	return TextToken{Text: s.src[start:s.pos], Loc: Span{start, s.pos}}
}

func (s *scanner) scanMarkup() (Token, error) {
	start := s.pos
	rest := s.src[start:]

	switch {
	case strings.HasPrefix(rest, "<!--"):
		end := strings.Index(rest[4:], "-->")
		if end < 0 {
			return nil, s.invalid(Span{start, len(s.src)}, "unterminated comment")
		}

		s.pos = start + 4 + end + 3

		return CommentToken{
			Text: rest[4 : 4+end],
			Loc:  Span{start, s.pos},
		}, nil

	case strings.HasPrefix(rest, "</"):
		s.pos += 2

		name := s.scanName()
		if name == "" {
			return nil, s.invalid(Span{start, s.pos}, "expected element name")
		}

		s.skipSpace()

		if s.eof() || s.src[s.pos] != '>' {
			return nil, s.invalid(Span{start, s.pos}, "unterminated closing tag")
		}

		s.pos++

		return CloseToken{Local: name, Loc: Span{start, s.pos}}, nil

	case strings.HasPrefix(rest, "<!"), strings.HasPrefix(rest, "<?"):
		return nil, s.invalid(Span{start, start + 2}, "unsupported markup")
	}

	s.pos++

	name := s.scanName()
	if name == "" {
		return nil, s.invalid(Span{start, s.pos}, "expected element name")
	}

	s.tagStart = start
	s.inTag = true
	s.spaced = false

	return StartToken{Local: name, Loc: Span{start, s.pos}}, nil
}

// scanTagPart scans the next attribute or the tag terminator of the
// opening tag started at s.tagStart.
func (s *scanner) scanTagPart() (Token, error) {
	if s.skipSpace() {
		s.spaced = true
	}

	if s.eof() {
		return nil, s.invalid(Span{s.tagStart, len(s.src)}, "unterminated tag")
	}

	start := s.pos

	switch s.src[start] {
	case '>':
		s.pos++
		s.inTag = false

		return EndToken{Loc: Span{start, s.pos}}, nil

	case '/':
		if !strings.HasPrefix(s.src[start:], "/>") {
			return nil, s.invalid(Span{start, start + 1}, "expected '>' after '/'")
		}

		s.pos += 2
		s.inTag = false

		return EndToken{Empty: true, Loc: Span{start, s.pos}}, nil
	}

	if !isNameStart(s.src[start]) {
		return nil, s.invalid(Span{start, start + 1}, "expected attribute name")
	}

	if !s.spaced {
		return nil, s.invalid(Span{start, start + 1}, "expected whitespace before attribute")
	}

	name := s.scanName()
	s.spaced = false

	// Look past optional whitespace for "="; without it the attribute has
	// no value and the whitespace belongs to the next token.
	afterName := s.pos
	s.skipSpace()

	if s.eof() || s.src[s.pos] != '=' {
		s.pos = afterName

		return AttributeToken{Local: name, Loc: Span{start, s.pos}}, nil
	}

	s.pos++
	s.skipSpace()

	value, err := s.scanValue(start)
	if err != nil {
		return nil, err
	}

	return AttributeToken{
		Local: name,
		Value: &value,
		Loc:   Span{start, s.pos},
	}, nil
}

func (s *scanner) scanValue(attrStart int) (string, error) {
	if s.eof() {
		return "", s.invalid(Span{attrStart, s.pos}, "expected attribute value")
	}

	if q := s.src[s.pos]; q == '"' || q == '\'' {
		open := s.pos

		end := strings.IndexByte(s.src[open+1:], q)
		if end < 0 {
			return "", s.invalid(Span{attrStart, len(s.src)}, "unterminated attribute value")
		}

		s.pos = open + 1 + end + 1

		return s.src[open+1 : open+1+end], nil
	}

	start := s.pos

	for !s.eof() {
		c := s.src[s.pos]
		if isSpace(c) || c == '>' || strings.HasPrefix(s.src[s.pos:], "/>") {
			break
		}

		if c == '"' || c == '\'' || c == '<' || c == '=' || c == '`' {
			return "", s.invalid(Span{s.pos, s.pos + 1}, "invalid character in unquoted attribute value")
		}

		s.pos++
	}

	if s.pos == start {
		return "", s.invalid(Span{attrStart, s.pos}, "expected attribute value")
	}

	return s.src[start:s.pos], nil
}

func (s *scanner) scanName() string {
	start := s.pos

	if s.eof() || !isNameStart(s.src[s.pos]) {
		return ""
	}

	s.pos++

	for !s.eof() && isNameContinue(s.src[s.pos]) {
		s.pos++
	}

	return s.src[start:s.pos]
}

// skipSpace advances past ASCII whitespace and reports whether any was found.
func (s *scanner) skipSpace() bool {
	start := s.pos

	for !s.eof() && isSpace(s.src[s.pos]) {
		s.pos++
	}

	return s.pos > start
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) invalid(span Span, detail string) *Error {
	return NewError(ErrInvalidFormat, s.origin, span).WithDetail(detail)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isNameStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isNameContinue(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9') ||
		c == '-' || c == ':' || c == '.'
}
