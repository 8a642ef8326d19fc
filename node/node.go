package node

import (
	"errors"
)

type prefix string

func (p *prefix) SetPrefix(s string) {
	*p = prefix(s)
}

func (p *prefix) Prefix() string {
	if p == nil {
		return ""
	}
	return string(*p)
}

// NodeType represents the type of a node in the XML tree
type NodeType int

const (
	ElementNodeType NodeType = iota + 1
	AttributeNodeType
	TextNodeType
	CommentNodeType
	DocumentNodeType
)

func (t NodeType) String() string {
	switch t {
	case ElementNodeType:
		return "element"
	case AttributeNodeType:
		return "attribute"
	case TextNodeType:
		return "text"
	case CommentNodeType:
		return "comment"
	case DocumentNodeType:
		return "document"
	}
	return "unknown"
}

var ErrInvalidOperation = errors.New("invalid operation")

// Node interface defines the common functionality for all node types
type Node interface {
	// returns the treeNode (the part of the Node that handles the tree structure)
	getTreeNode() *treeNode

	AddChild(Node) error
	AddContent([]byte) error
	AddSibling(Node) error

	Type() NodeType
	// Content appends the content of the node to the provided byte slice and returns the result.
	// If dst is nil, a new slice is allocated.
	Content(dst []byte) ([]byte, error)

	FirstChild() Node
	LastChild() Node

	// LocalName returns the local name of the node.
	LocalName() string

	NextSibling() Node
	OwnerDocument() *Document
	Parent() Node
	PrevSibling() Node

	Replace(Node) error

	SetOwnerDocument(doc *Document) error
	SetParent(Node) error
}

// Namespacer is implemented by nodes that can be bound to a namespace
type Namespacer interface {
	LocalName() string
	Prefix() string
	URI() string
}

type DocumentStandaloneType int

const (
	StandaloneExplicitYes = 1
	StandaloneExplicitNo  = 0
	StandaloneNoXMLDecl   = -1
	StandaloneImplicitNo  = -2
)

// ClarkName returns the name of n in clark notation, "{uri}local".
// Nodes that are not namespace aware (text, comments, documents)
// have no clark name, and an empty string is returned.
func ClarkName(n Node) string {
	if n == nil {
		return ""
	}
	nser, ok := n.(Namespacer)
	if !ok {
		return ""
	}
	return "{" + nser.URI() + "}" + nser.LocalName()
}

// TextContent returns the concatenated text of n and its descendants.
// Comments do not contribute to the result.
func TextContent(n Node) string {
	if n == nil {
		return ""
	}
	buf, err := n.Content(nil)
	if err != nil {
		return ""
	}
	return string(buf)
}

type WalkFunc func(Node) error

// Walk visits n and all of its descendants in document order.
func Walk(n Node, f WalkFunc) error {
	if n == nil {
		return errors.New("nil node")
	}

	if err := f(n); err != nil {
		return err
	}
	for chld := n.FirstChild(); chld != nil; chld = chld.NextSibling() {
		if err := Walk(chld, f); err != nil {
			return err
		}
	}
	return nil
}
