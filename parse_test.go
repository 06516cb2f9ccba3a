package slate

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, src string) *Program {
	t.Helper()
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return prog
}

// TestParseStatements tests the shapes of individual statement forms.
func TestParseStatements(t *testing.T) {
	cases := map[string]struct {
		text string
		want *Program
	}{
		"Assign-int": {"x = 5", &Program{Statements: []Node{
			&Assignment{Name: "x", Value: &Literal{Kind: NumberLiteral, Value: int64(5)}},
		}}},
		"Assign-float": {"pi = 3.14", &Program{Statements: []Node{
			&Assignment{Name: "pi", Value: &Literal{Kind: NumberLiteral, Value: 3.14}},
		}}},
		"Assign-string": {`s = "hi"`, &Program{Statements: []Node{
			&Assignment{Name: "s", Value: &Literal{Kind: StringLiteral, Value: "hi"}},
		}}},
		"Assign-bool": {"b = true", &Program{Statements: []Node{
			&Assignment{Name: "b", Value: &Literal{Kind: BooleanLiteral, Value: true}},
		}}},
		"Assign-slot": {"a value = 5", &Program{Statements: []Node{
			&Assignment{Name: "a value", Value: &Literal{Kind: NumberLiteral, Value: int64(5)}},
		}}},
		"Assign-expr": {"x = Number clone", &Program{Statements: []Node{
			&Assignment{Name: "x", Value: &MessageSend{
				Receiver: &Identifier{Name: "Number"},
				Message:  "clone",
			}},
		}}},
		"Send-unary": {"obj clone", &Program{Statements: []Node{
			&MessageSend{Receiver: &Identifier{Name: "obj"}, Message: "clone"},
		}}},
		"Send-arg": {"x + 1", &Program{Statements: []Node{
			&MessageSend{
				Receiver: &Identifier{Name: "x"},
				Message:  "+",
				Args:     []Node{&Literal{Kind: NumberLiteral, Value: int64(1)}},
			},
		}}},
		"Return": {"return 5", &Program{Statements: []Node{
			&Return{Value: &Literal{Kind: NumberLiteral, Value: int64(5)}},
		}}},
		"Break":    {"break", &Program{Statements: []Node{&Break{}}}},
		"Continue": {"continue", &Program{Statements: []Node{&Continue{}}}},
		"Two-statements": {"x = 1\ny = 2", &Program{Statements: []Node{
			&Assignment{Name: "x", Value: &Literal{Kind: NumberLiteral, Value: int64(1)}},
			&Assignment{Name: "y", Value: &Literal{Kind: NumberLiteral, Value: int64(2)}},
		}}},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			got := mustParse(t, c.text)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("%q parsed wrong (-want +got):\n%s", c.text, diff)
			}
		})
	}
}

// TestParseLeftAssociative tests that message chains group strictly left
// to right with no operator precedence.
func TestParseLeftAssociative(t *testing.T) {
	got := mustParse(t, "a + b * c")
	want := &Program{Statements: []Node{
		&MessageSend{
			Receiver: &MessageSend{
				Receiver: &Identifier{Name: "a"},
				Message:  "+",
				Args:     []Node{&Identifier{Name: "b"}},
			},
			Message: "*",
			Args:    []Node{&Identifier{Name: "c"}},
		},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("a + b * c parsed wrong (-want +got):\n%s", diff)
	}
}

// TestParseBlockArgument tests that an indented block after a message
// becomes the message's single argument.
func TestParseBlockArgument(t *testing.T) {
	got := mustParse(t, "true ifTrue\n    x = 1")
	want := &Program{Statements: []Node{
		&MessageSend{
			Receiver: &Literal{Kind: BooleanLiteral, Value: true},
			Message:  "ifTrue",
			Args: []Node{&Block{Statements: []Node{
				&Assignment{Name: "x", Value: &Literal{Kind: NumberLiteral, Value: int64(1)}},
			}}},
		},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("block argument parsed wrong (-want +got):\n%s", diff)
	}
}

// TestParseConditionalChain tests that ifFalse continues the chain after
// an ifTrue block, so both arms belong to one expression.
func TestParseConditionalChain(t *testing.T) {
	got := mustParse(t, "true ifTrue\n    1\nifFalse\n    2")
	want := &Program{Statements: []Node{
		&MessageSend{
			Receiver: &MessageSend{
				Receiver: &Literal{Kind: BooleanLiteral, Value: true},
				Message:  "ifTrue",
				Args: []Node{&Block{Statements: []Node{
					&Literal{Kind: NumberLiteral, Value: int64(1)},
				}}},
			},
			Message: "ifFalse",
			Args: []Node{&Block{Statements: []Node{
				&Literal{Kind: NumberLiteral, Value: int64(2)},
			}}},
		},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("conditional chain parsed wrong (-want +got):\n%s", diff)
	}
}

// TestParseChainStopsAfterBlock tests that only the conditional pair may
// continue a chain past a block; any other name starts a new statement.
func TestParseChainStopsAfterBlock(t *testing.T) {
	got := mustParse(t, "x foo\n    1\nbar")
	want := &Program{Statements: []Node{
		&MessageSend{
			Receiver: &Identifier{Name: "x"},
			Message:  "foo",
			Args: []Node{&Block{Statements: []Node{
				&Literal{Kind: NumberLiteral, Value: int64(1)},
			}}},
		},
		&Identifier{Name: "bar"},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("chain after block parsed wrong (-want +got):\n%s", diff)
	}
}

// TestParseWhileLoop tests the shape of a loop whose condition is itself
// a message chain.
func TestParseWhileLoop(t *testing.T) {
	got := mustParse(t, "i < 10 whileTrue\n    i = i + 1")
	want := &Program{Statements: []Node{
		&MessageSend{
			Receiver: &MessageSend{
				Receiver: &Identifier{Name: "i"},
				Message:  "<",
				Args:     []Node{&Literal{Kind: NumberLiteral, Value: int64(10)}},
			},
			Message: "whileTrue",
			Args: []Node{&Block{Statements: []Node{
				&Assignment{Name: "i", Value: &MessageSend{
					Receiver: &Identifier{Name: "i"},
					Message:  "+",
					Args:     []Node{&Literal{Kind: NumberLiteral, Value: int64(1)}},
				}},
			}}},
		},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("while loop parsed wrong (-want +got):\n%s", diff)
	}
}

// TestParseErrors tests that malformed programs report syntax errors
// with positions.
func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"Leading-equals":      "= 5",
		"Missing-rhs":         "x = ",
		"Unterminated-string": `x = "abc`,
		"Equals-rhs":          "x = = 5",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(text)
			if err == nil {
				t.Fatalf("%q parsed without error", text)
			}
			var serr *SyntaxError
			if !errors.As(err, &serr) {
				t.Errorf("%q failed with %v, wanted a SyntaxError", text, err)
			}
		})
	}
}
