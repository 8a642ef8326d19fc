package node

// Document represents the root document node
type Document struct {
	treeNode
	version    string
	encoding   string
	standalone DocumentStandaloneType
}

var _ Node = (*Document)(nil)

func NewDocument() *Document {
	return NewDocumentWithOptions("1.0", "utf-8", StandaloneImplicitNo)
}

func NewDocumentWithOptions(version, encoding string, standalone DocumentStandaloneType) *Document {
	doc := &Document{
		version:    version,
		encoding:   encoding,
		standalone: standalone,
	}
	doc.treeNode = treeNode{
		doc: doc,
	}
	return doc
}

func (d *Document) CreateElement(name string) *Element {
	e := NewElement(name)
	_ = e.SetOwnerDocument(d)
	return e
}

// CreateElementNS creates an element whose local name is bound to
// the namespace uri through prefix. An empty uri creates an element
// that belongs to no namespace.
func (d *Document) CreateElementNS(uri, prefixStr, local string) *Element {
	e := d.CreateElement(local)
	if uri != "" {
		_ = e.SetNamespace(prefixStr, uri, false)
	}
	return e
}

func (d *Document) CreateComment(content []byte) *Comment {
	c := NewComment(content)
	_ = c.SetOwnerDocument(d)
	return c
}

func (d *Document) CreateText(content []byte) *Text {
	t := NewText(content)
	_ = t.SetOwnerDocument(d)
	return t
}

func (d *Document) CreateAttribute(name, value string) *Attribute {
	attr := newAttribute(name, nil)
	if d == nil {
		if value != "" {
			_ = attr.AddChild(NewText([]byte(value)))
		}
		return attr
	}

	_ = attr.SetOwnerDocument(d)
	if value != "" {
		_ = attr.AddChild(d.CreateText([]byte(value)))
	}
	return attr
}

func (d *Document) Encoding() string {
	if enc := d.encoding; enc != "" {
		return d.encoding
	}
	return "utf8"
}

func (d *Document) SetEncoding(enc string) {
	d.encoding = enc
}

func (d *Document) Standalone() DocumentStandaloneType {
	return d.standalone
}

func (d *Document) SetStandalone(standalone DocumentStandaloneType) {
	d.standalone = standalone
}

func (d *Document) Version() string {
	return d.version
}

func (d *Document) SetVersion(v string) {
	d.version = v
}

func (d *Document) Type() NodeType {
	return DocumentNodeType
}

func (d *Document) LocalName() string {
	return "#document"
}

func (d *Document) AddChild(cur Node) error {
	return addChild(d, cur)
}

func (d *Document) AddContent(b []byte) error {
	return addContent(d, b)
}

func (d *Document) AddSibling(n Node) error {
	return ErrInvalidOperation
}

func (d *Document) Replace(n Node) error {
	return ErrInvalidOperation
}

// DocumentElement returns the root element of the document, or nil
// if the document does not have one yet.
func (d *Document) DocumentElement() *Element {
	for n := d.firstChild; n != nil; n = n.NextSibling() {
		if e, ok := n.(*Element); ok {
			return e
		}
	}
	return nil
}

func (d *Document) SetDocumentElement(root Node) error {
	if d == nil {
		return nil
	}

	if root == nil || root.Type() != ElementNodeType {
		return ErrInvalidOperation
	}

	var old Node
	for old = d.firstChild; old != nil; old = old.NextSibling() {
		if old.Type() == ElementNodeType {
			break
		}
	}

	if old == nil {
		return d.AddChild(root)
	}
	return old.Replace(root)
}
