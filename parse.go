package slate

import (
	"fmt"
	"strconv"
	"strings"
)

// parser consumes the token stream and builds the AST by recursive
// descent with single-token lookahead. Assignment detection scans ahead
// and restores its position; everything else commits as it goes.
type parser struct {
	tokens []token
	pos    int
}

// Parse converts source text into a Program.
func Parse(source string) (*Program, error) {
	p := &parser{tokens: tokenize(source)}
	return p.parseProgram()
}

// current returns the token under the cursor. The lexer terminates
// every stream with EOF, so running off the end yields EOF again.
func (p *parser) current() token {
	if p.pos >= len(p.tokens) {
		return token{Kind: eofToken}
	}
	return p.tokens[p.pos]
}

// peek returns the token offset positions ahead of the cursor.
func (p *parser) peek(offset int) token {
	if p.pos+offset >= len(p.tokens) {
		return token{Kind: eofToken}
	}
	return p.tokens[p.pos+offset]
}

// expect consumes a token of the given kind or fails with a syntax
// error naming both kinds.
func (p *parser) expect(kind tokenKind) (token, error) {
	tok := p.current()
	if tok.Kind == badToken {
		return tok, tok.Err
	}
	if tok.Kind != kind {
		return tok, p.errorf(tok, "expected %v, got %v", kind, tok.Kind)
	}
	p.pos++
	return tok, nil
}

func (p *parser) errorf(tok token, format string, args ...interface{}) error {
	return &SyntaxError{Line: tok.Line, Col: tok.Col, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipNewlines() {
	for p.current().Kind == newlineToken {
		p.pos++
	}
}

func (p *parser) parseProgram() (*Program, error) {
	var stmts []Node
	for {
		p.skipNewlines()
		tok := p.current()
		if tok.Kind == eofToken {
			break
		}
		if tok.Kind == badToken {
			return nil, tok.Err
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return &Program{Statements: stmts}, nil
}

// parseStatement dispatches on the leading token: return, break, and
// continue are statements of their own; an identifier might open an
// assignment, which the scan-ahead decides; anything else is an
// expression statement.
func (p *parser) parseStatement() (Node, error) {
	tok := p.current()
	switch tok.Kind {
	case badToken:
		return nil, tok.Err
	case returnToken:
		p.pos++
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &Return{Value: value}, nil
	case breakToken:
		p.pos++
		return &Break{}, nil
	case continueToken:
		p.pos++
		return &Continue{}, nil
	}
	if tok.Kind == identToken {
		saved := p.pos
		p.pos++
		assign := false
		if p.current().Kind == equalsToken {
			assign = true
		} else if p.current().Kind == identToken {
			p.pos++
			if p.current().Kind == equalsToken {
				assign = true
			}
		}
		p.pos = saved
		if assign {
			return p.parseAssignment()
		}
	}
	return p.parseExpression()
}

// parseAssignment handles both simple assignments (x = value) and slot
// assignments (obj slot = value). The latter joins both names with a
// space into a single Assignment target.
func (p *parser) parseAssignment() (Node, error) {
	first, err := p.expect(identToken)
	if err != nil {
		return nil, err
	}
	name := first.Value
	if p.current().Kind == identToken {
		slot, err := p.expect(identToken)
		if err != nil {
			return nil, err
		}
		name += " " + slot.Value
	}
	if _, err := p.expect(equalsToken); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Assignment{Name: name, Value: value}, nil
}

// parseExpression builds a left-associative message chain from a
// primary. There is no precedence table: binary operators are ordinary
// messages taking one argument, so chain order alone decides grouping.
func (p *parser) parseExpression() (Node, error) {
	result, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == identToken {
		msg := p.current()
		p.pos++
		if p.current().Kind == newlineToken && p.peek(1).Kind == indentToken {
			// Message with a block argument.
			p.pos++ // NEWLINE
			block, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			result = &MessageSend{Receiver: result, Message: msg.Value, Args: []Node{block}}
			// After a block the chain continues only for the
			// conditional pair, so ifTrue ... ifFalse ... reads as one
			// expression. Anything else starts a new statement.
			if p.current().Kind == identToken {
				switch p.current().Value {
				case "ifTrue", "ifFalse":
					continue
				}
			}
			break
		}
		var args []Node
		switch p.current().Kind {
		case identToken, numberToken, stringToken, trueToken, falseToken:
			arg, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		result = &MessageSend{Receiver: result, Message: msg.Value, Args: args}
	}
	return result, nil
}

// parsePrimary parses a literal or identifier.
func (p *parser) parsePrimary() (Node, error) {
	tok := p.current()
	switch tok.Kind {
	case numberToken:
		p.pos++
		return p.numberLiteral(tok)
	case stringToken:
		p.pos++
		return &Literal{Kind: StringLiteral, Value: tok.Value}, nil
	case trueToken:
		p.pos++
		return &Literal{Kind: BooleanLiteral, Value: true}, nil
	case falseToken:
		p.pos++
		return &Literal{Kind: BooleanLiteral, Value: false}, nil
	case identToken:
		p.pos++
		return &Identifier{Name: tok.Value}, nil
	case badToken:
		return nil, tok.Err
	case eofToken:
		return nil, p.errorf(tok, "unexpected end of input")
	}
	return nil, p.errorf(tok, "unexpected token %v", tok.Kind)
}

// numberLiteral converts a number spelling: a float if the spelling
// contains a dot, an integer otherwise. Integer spellings too large for
// int64 fall back to float, as the value would anyway.
func (p *parser) numberLiteral(tok token) (Node, error) {
	if strings.ContainsRune(tok.Value, '.') {
		f, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, p.errorf(tok, "invalid number %q", tok.Value)
		}
		return &Literal{Kind: NumberLiteral, Value: f}, nil
	}
	n, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(tok.Value, 64)
		if ferr != nil {
			return nil, p.errorf(tok, "invalid number %q", tok.Value)
		}
		return &Literal{Kind: NumberLiteral, Value: f}, nil
	}
	return &Literal{Kind: NumberLiteral, Value: n}, nil
}

// parseBlock parses INDENT statements DEDENT. The DEDENT may be missing
// at end of input.
func (p *parser) parseBlock() (Node, error) {
	if _, err := p.expect(indentToken); err != nil {
		return nil, err
	}
	var stmts []Node
	for {
		p.skipNewlines()
		tok := p.current()
		if tok.Kind == dedentToken || tok.Kind == eofToken {
			break
		}
		if tok.Kind == badToken {
			return nil, tok.Err
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if p.current().Kind == dedentToken {
		p.pos++
	}
	return &Block{Statements: stmts}, nil
}
