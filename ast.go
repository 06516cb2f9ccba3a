package slate

// AST node kinds produced by the parser. Nodes are immutable once built
// and owned exclusively by their parent; the evaluator never mutates
// them, which is what lets whileTrue re-evaluate its receiver
// expression each iteration.

// A Node is any element of the syntax tree.
type Node interface {
	node()
}

// A Program is the sequence of top-level statements of a source text.
type Program struct {
	Statements []Node
}

// An Assignment binds the value of an expression. A slot assignment
// ("receiver slot = value") stores both names in Name joined by a
// single space; the evaluator splits on it.
type Assignment struct {
	Name  string
	Value Node
}

// A MessageSend applies a message to a receiver with zero or more
// argument expressions. Control-flow messages carry a single Block
// argument.
type MessageSend struct {
	Receiver Node
	Message  string
	Args     []Node
}

// LiteralKind discriminates the literal forms.
type LiteralKind int

const (
	NumberLiteral LiteralKind = iota
	StringLiteral
	BooleanLiteral
)

func (k LiteralKind) String() string {
	switch k {
	case NumberLiteral:
		return "number"
	case StringLiteral:
		return "string"
	case BooleanLiteral:
		return "boolean"
	}
	panic("invalid LiteralKind")
}

// A Literal is a source-level constant. Value holds the host
// representation: int64 or float64 for numbers, string, or bool.
type Literal struct {
	Kind  LiteralKind
	Value Value
}

// An Identifier names a binding in the environment.
type Identifier struct {
	Name string
}

// A Block is an indentation-delimited statement sequence used as a
// control-flow message argument.
type Block struct {
	Statements []Node
}

// A Return evaluates its operand and unwinds with it.
type Return struct {
	Value Node
}

// A Break exits the enclosing loop.
type Break struct{}

// A Continue restarts the enclosing loop.
type Continue struct{}

func (*Program) node()     {}
func (*Assignment) node()  {}
func (*MessageSend) node() {}
func (*Literal) node()     {}
func (*Identifier) node()  {}
func (*Block) node()       {}
func (*Return) node()      {}
func (*Break) node()       {}
func (*Continue) node()    {}
