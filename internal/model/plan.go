package model

import "fmt"

// Relation connects the children of a document plan branch.
type Relation int

const (
	Elaboration Relation = iota + 1
	Exemplification
	Contrast
	Sequence
	List
)

func (r Relation) String() string {
	switch r {
	case Elaboration:
		return "ELABORATION"
	case Exemplification:
		return "EXEMPLIFICATION"
	case Contrast:
		return "CONTRAST"
	case Sequence:
		return "SEQUENCE"
	case List:
		return "LIST"
	}
	return "UNKNOWN"
}

// Node is a node in the document plan tree: either a Branch with children
// connected by a Relation, or a Message leaf. Traversals type-switch on the
// two variants.
type Node interface {
	node()
}

// Branch is an internal document plan node. The root branch represents the
// whole document, its children the paragraphs, and each paragraph's children
// the nucleus message followed by its satellites.
type Branch struct {
	Relation Relation
	Children []Node
}

func (*Branch) node() {}

func (b *Branch) String() string {
	return b.Relation.String()
}

// Message wraps one or more Facts together with everything the pipeline
// computes about them. The first fact is the primary one.
//
// ImportanceCoefficient scales the newsworthiness score, letting extraction
// mark some facts as inherently less relevant for the current article.
// Polarity is the sign of the described change (-1, 0 or 1).
type Message struct {
	Facts                 []Fact
	ImportanceCoefficient float64
	Score                 float64
	Polarity              float64
	PreventAggregation    bool
	Template              *Template
}

func (*Message) node() {}

// NewMessage wraps facts into a Message with a neutral coefficient.
func NewMessage(facts ...Fact) *Message {
	return &Message{Facts: facts, ImportanceCoefficient: 1.0}
}

// MainFact returns the primary fact of the message.
func (m *Message) MainFact() Fact {
	return m.Facts[0]
}

func (m *Message) String() string {
	if m.Template != nil {
		return fmt.Sprintf("<Message: %s>", m.Template)
	}
	if len(m.Facts) > 0 {
		return fmt.Sprintf("<Message: %s>", m.MainFact())
	}
	return "<Message>"
}

// Messages collects all Message leaves under root in document order.
func Messages(root Node) []*Message {
	var out []*Message
	var walk func(Node)
	walk = func(n Node) {
		switch v := n.(type) {
		case *Message:
			out = append(out, v)
		case *Branch:
			for _, c := range v.Children {
				walk(c)
			}
		}
	}
	walk(root)
	return out
}
