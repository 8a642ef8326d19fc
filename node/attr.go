package node

type Attribute struct {
	treeNode
	name string
	ns   *Namespace
}

var _ Node = (*Attribute)(nil)
var _ Namespacer = (*Attribute)(nil)

func newAttribute(name string, ns *Namespace) *Attribute {
	return &Attribute{
		name: name,
		ns:   ns,
	}
}

func (Attribute) Type() NodeType {
	return AttributeNodeType
}

func (n *Attribute) Name() string {
	if n.ns == nil {
		return n.name
	}
	return n.ns.Prefix() + ":" + n.name
}

func (n *Attribute) LocalName() string {
	return n.name
}

func (n *Attribute) AddChild(cur Node) error {
	return addChild(n, cur)
}

func (n *Attribute) AddContent(b []byte) error {
	return addContent(n, b)
}

func (n *Attribute) AddSibling(cur Node) error {
	return addSibling(n, cur)
}

func (n *Attribute) Replace(cur Node) error {
	return replaceNode(n, cur)
}

func (n *Attribute) Value() string {
	content, err := n.Content(nil)
	if err != nil {
		return ""
	}
	return string(content)
}

func (n *Attribute) Prefix() string {
	if n.ns == nil {
		return ""
	}
	return n.ns.Prefix()
}

func (n *Attribute) URI() string {
	if n.ns == nil {
		return ""
	}
	return n.ns.URI()
}
