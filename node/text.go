package node

// Text represents a text node in an XML document
type Text struct {
	treeNode
	content []byte
}

var _ Node = (*Text)(nil)

// NewText creates an orphan text node. The content is copied, so
// the caller is free to reuse the slice.
func NewText(content []byte) *Text {
	t := &Text{
		content: make([]byte, len(content)),
	}
	copy(t.content, content)
	return t
}

func (Text) Type() NodeType {
	return TextNodeType
}

func (n *Text) LocalName() string {
	return "#text"
}

func (n *Text) Content(dst []byte) ([]byte, error) {
	return append(dst, n.content...), nil
}

// IsBlank returns true if the text consists only of XML whitespace
func (n *Text) IsBlank() bool {
	for _, c := range n.content {
		switch c {
		case ' ', '\t', '\r', '\n':
		default:
			return false
		}
	}
	return true
}

func (n *Text) AddChild(child Node) error {
	// Text nodes can concatenate with other text nodes
	if child.Type() == TextNodeType {
		childContent, err := child.Content(nil)
		if err != nil {
			return err
		}
		return n.AddContent(childContent)
	}
	return ErrInvalidOperation
}

func (n *Text) AddContent(b []byte) error {
	n.content = append(n.content, b...)
	return nil
}

func (n *Text) AddSibling(sibling Node) error {
	return addSibling(n, sibling)
}

func (n *Text) Replace(cur Node) error {
	return replaceNode(n, cur)
}
