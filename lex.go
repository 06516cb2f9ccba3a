package slate

import (
	"strings"
	"unicode"
)

// A token is a single lexical element.
type token struct {
	Kind  tokenKind
	Value string
	Err   error

	Line, Col int
}

type tokenKind int

const (
	badToken tokenKind = iota

	numberToken   // numeric literal
	stringToken   // "string"
	identToken    // identifier, including operator spellings
	trueToken     // true
	falseToken    // false
	returnToken   // return
	breakToken    // break
	continueToken // continue
	equalsToken   // standalone =
	indentToken   // rise in line indentation
	dedentToken   // fall in line indentation
	newlineToken  // end of a non-empty line
	eofToken      // end of input
)

// String returns the name of a token kind, matching the grammar's
// vocabulary for use in syntax errors.
func (t tokenKind) String() string {
	switch t {
	case badToken:
		return "ERROR"
	case numberToken:
		return "NUMBER"
	case stringToken:
		return "STRING"
	case identToken:
		return "IDENTIFIER"
	case trueToken:
		return "TRUE"
	case falseToken:
		return "FALSE"
	case returnToken:
		return "RETURN"
	case breakToken:
		return "BREAK"
	case continueToken:
		return "CONTINUE"
	case equalsToken:
		return "EQUALS"
	case indentToken:
		return "INDENT"
	case dedentToken:
		return "DEDENT"
	case newlineToken:
		return "NEWLINE"
	case eofToken:
		return "EOF"
	}
	panic("invalid tokenKind")
}

// keywords maps reserved identifier spellings to their token kinds.
var keywords = map[string]tokenKind{
	"true":     trueToken,
	"false":    falseToken,
	"return":   returnToken,
	"break":    breakToken,
	"continue": continueToken,
}

// opChars are the characters that may appear in identifiers beyond
// letters, digits, and underscores, so that operators lex as ordinary
// message names.
const opChars = "+-*/%<>=!"

// lexFn is a lexer state function. Each lexFn lexes some of the input,
// sends any completed tokens on the lexer's channel, and returns the
// next lexFn to use.
type lexFn func(l *lexer) lexFn

// lexer holds the state shared by the lexFns: the cursor, the current
// position, the indentation stack, and the kind of the last token sent,
// which is used to collapse consecutive NEWLINEs.
type lexer struct {
	src     []rune
	pos     int
	line    int
	col     int
	tokens  chan<- token
	indents []int
	last    tokenKind
}

// lex converts a source into a stream of tokens. The stream always ends
// with an EOF token, preceded by one DEDENT for each indentation level
// still open.
func lex(src string, tokens chan<- token) {
	l := &lexer{
		src:     []rune(src),
		line:    1,
		col:     1,
		tokens:  tokens,
		indents: []int{0},
	}
	for state := lexLineStart; state != nil; {
		state = state(l)
	}
	close(tokens)
}

// tokenize collects the entire token stream for a source text.
func tokenize(src string) []token {
	ch := make(chan token)
	go lex(src, ch)
	var toks []token
	for tok := range ch {
		toks = append(toks, tok)
	}
	return toks
}

func (l *lexer) emit(tok token) {
	l.last = tok.Kind
	l.tokens <- tok
}

// current returns the rune under the cursor without advancing.
func (l *lexer) current() (rune, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

// peek returns the rune offset positions ahead of the cursor.
func (l *lexer) peek(offset int) (rune, bool) {
	if l.pos+offset >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos+offset], true
}

// advance moves the cursor one rune forward, tracking line and column.
func (l *lexer) advance() {
	if l.pos >= len(l.src) {
		return
	}
	if l.src[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

// skipComment consumes a # comment up to, but not including, the
// newline that ends it.
func (l *lexer) skipComment() {
	for r, ok := l.current(); ok && r != '\n'; r, ok = l.current() {
		l.advance()
	}
}

// lexLineStart measures a line's indentation and emits INDENT or DEDENT
// tokens for the change from the stack top. Blank and comment-only
// lines leave the stack untouched.
func lexLineStart(l *lexer) lexFn {
	indent := 0
	for {
		r, ok := l.current()
		if !ok {
			return lexEOF
		}
		if r == ' ' {
			indent++
		} else if r == '\t' {
			// A tab counts as four columns.
			indent += 4
		} else {
			break
		}
		l.advance()
	}
	r, _ := l.current()
	if r == '\n' {
		l.advance()
		return lexLineStart
	}
	if r == '#' {
		l.skipComment()
		return lexLineStart
	}
	cur := l.indents[len(l.indents)-1]
	switch {
	case indent > cur:
		l.indents = append(l.indents, indent)
		l.emit(token{Kind: indentToken, Line: l.line, Col: 1})
	case indent < cur:
		for len(l.indents) > 1 && l.indents[len(l.indents)-1] > indent {
			l.indents = l.indents[:len(l.indents)-1]
			l.emit(token{Kind: dedentToken, Line: l.line, Col: 1})
		}
	}
	return lexLine
}

// lexLine dispatches within a line until its newline.
func lexLine(l *lexer) lexFn {
	for {
		r, ok := l.current()
		if !ok {
			return lexEOF
		}
		switch {
		case r == ' ' || r == '\t' || r == '\r':
			l.advance()
		case r == '#':
			l.skipComment()
		case r == '\n':
			if l.last != newlineToken {
				l.emit(token{Kind: newlineToken, Line: l.line, Col: l.col})
			}
			l.advance()
			return lexLineStart
		case unicode.IsDigit(r):
			return lexNumber
		case r == '"':
			return lexString
		case r == '=' && !l.peekIs(1, '='):
			l.emit(token{Kind: equalsToken, Value: "=", Line: l.line, Col: l.col})
			l.advance()
		case isIdentRune(r):
			return lexIdent
		default:
			// Unrecognized characters are dropped, not errors.
			l.advance()
		}
	}
}

func (l *lexer) peekIs(offset int, want rune) bool {
	r, ok := l.peek(offset)
	return ok && r == want
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || strings.ContainsRune(opChars, r)
}

// lexIdent lexes an identifier, keyword, or operator spelling. == and
// the two-character comparisons are cut off explicitly so that = can
// remain the assignment token; every other operator run is simply an
// identifier.
func lexIdent(l *lexer) lexFn {
	line, col := l.line, l.col
	r, _ := l.current()
	if r == '=' && l.peekIs(1, '=') {
		l.advance()
		l.advance()
		l.emit(token{Kind: identToken, Value: "==", Line: line, Col: col})
		return lexLine
	}
	if (r == '<' || r == '>') && l.peekIs(1, '=') {
		l.advance()
		l.advance()
		l.emit(token{Kind: identToken, Value: string(r) + "=", Line: line, Col: col})
		return lexLine
	}
	var b strings.Builder
	for {
		r, ok := l.current()
		if !ok || !isIdentRune(r) {
			break
		}
		b.WriteRune(r)
		l.advance()
	}
	text := b.String()
	kind, ok := keywords[text]
	if !ok {
		kind = identToken
	}
	l.emit(token{Kind: kind, Value: text, Line: line, Col: col})
	return lexLine
}

// lexNumber lexes an unbroken digit run with at most one dot. The
// spelling is kept as-is; the parser decides integer versus float.
func lexNumber(l *lexer) lexFn {
	line, col := l.line, l.col
	var b strings.Builder
	dot := false
	for {
		r, ok := l.current()
		if !ok {
			break
		}
		if r == '.' && !dot {
			dot = true
		} else if !unicode.IsDigit(r) {
			break
		}
		b.WriteRune(r)
		l.advance()
	}
	l.emit(token{Kind: numberToken, Value: b.String(), Line: line, Col: col})
	return lexLine
}

// lexString lexes a "-delimited string with no escape processing. An
// unterminated string is a lexical error reported at the opening quote.
func lexString(l *lexer) lexFn {
	line, col := l.line, l.col
	l.advance() // opening quote
	var b strings.Builder
	for {
		r, ok := l.current()
		if !ok {
			l.emit(token{
				Kind:  badToken,
				Value: b.String(),
				Err:   &SyntaxError{Line: line, Col: col, Msg: "unterminated string literal"},
				Line:  line,
				Col:   col,
			})
			return lexEOF
		}
		if r == '"' {
			l.advance()
			l.emit(token{Kind: stringToken, Value: b.String(), Line: line, Col: col})
			return lexLine
		}
		b.WriteRune(r)
		l.advance()
	}
}

// lexEOF closes any indentation levels still open and terminates the
// stream with EOF.
func lexEOF(l *lexer) lexFn {
	for len(l.indents) > 1 {
		l.indents = l.indents[:len(l.indents)-1]
		l.emit(token{Kind: dedentToken, Line: l.line, Col: 1})
	}
	l.emit(token{Kind: eofToken, Line: l.line, Col: l.col})
	return nil
}
