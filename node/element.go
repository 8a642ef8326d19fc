package node

import (
	"errors"
	"iter"

	"github.com/lestrrat-go/davprop/internal/orderedmap"
)

var ErrDuplicateAttribute = errors.New("duplicate attribute")

type Element struct {
	treeNode
	name   string
	attrs  *orderedmap.Map[string, *Attribute]
	ns     *Namespace
	nsDefs []*Namespace
}

var _ Node = (*Element)(nil)
var _ Namespacer = (*Element)(nil)

// NewElement creates a new Element with the given name. Please note
// that elements created this way is an orphan node. You normally want to
// create an element using the Document.CreateElement method, which will
// automatically initialize some data, such as setting the owner document
// for the element.
func NewElement(name string) *Element {
	return &Element{
		name:  name,
		attrs: orderedmap.New[string, *Attribute](),
	}
}

func (Element) Type() NodeType {
	return ElementNodeType
}

func (e *Element) LocalName() string {
	return e.name
}

func (e *Element) AddChild(child Node) error {
	return addChild(e, child)
}

func (e *Element) AddContent(b []byte) error {
	return addContent(e, b)
}

func (e *Element) AddSibling(sibling Node) error {
	return addSibling(e, sibling)
}

func (e *Element) Replace(cur Node) error {
	return replaceNode(e, cur)
}

// SetAttribute sets the attribute with the given name. If the name
// of the attribute already exists, it will return an error.
func (e *Element) SetAttribute(name, value string) error {
	attr := e.doc.CreateAttribute(name, value)
	if err := e.attrs.Set(name, attr); err != nil {
		if errors.Is(err, orderedmap.ErrDuplicateEntry) {
			return ErrDuplicateAttribute
		}
		return err
	}
	_ = attr.SetParent(e)
	return nil
}

// Attribute returns the attribute with the given name, if any
func (e *Element) Attribute(name string) (*Attribute, bool) {
	return e.attrs.Get(name)
}

// Attributes populates the given slice with the attributes
// of the element. If the slice is nil, it will create a new slice
// and return it. If the element has no attributes, it will return
// an empty slice.
func (e *Element) Attributes(dst []*Attribute) []*Attribute {
	if dst == nil {
		dst = make([]*Attribute, 0, e.attrs.Len())
	} else {
		dst = dst[:0]
	}
	for _, attr := range e.attrs.Range() {
		dst = append(dst, attr)
	}
	return dst
}

func (e *Element) Name() string {
	if e.ns == nil || e.ns.Prefix() == "" {
		return e.name
	}
	return e.ns.Prefix() + ":" + e.name
}

func (e *Element) Prefix() string {
	if e.ns != nil {
		return e.ns.Prefix()
	}
	return ""
}

func (e *Element) URI() string {
	if e.ns != nil {
		return e.ns.URI()
	}
	return ""
}

// SetNamespace binds the element to the namespace uri, using prefix
// when the element is written out. If declare is true, the binding
// is also declared on this element (i.e. an xmlns attribute will
// be emitted for it).
func (e *Element) SetNamespace(prefixStr, uri string, declare bool) error {
	if uri == "" {
		return errors.New("cannot bind element to an empty namespace")
	}
	e.ns = NewNamespace(prefixStr, uri)
	if declare {
		return e.DeclareNamespace(prefixStr, uri)
	}
	return nil
}

// DeclareNamespace records a namespace declaration on this element.
// Declaring the same prefix twice on one element is an error.
func (e *Element) DeclareNamespace(prefixStr, uri string) error {
	for _, ns := range e.nsDefs {
		if ns.Prefix() == prefixStr {
			if ns.URI() == uri {
				return nil
			}
			return errors.New("namespace prefix '" + prefixStr + "' already declared")
		}
	}
	ns := NewNamespace(prefixStr, uri)
	ns.context = e.doc
	e.nsDefs = append(e.nsDefs, ns)
	return nil
}

// Namespaces returns the namespace declarations made on this element
func (e *Element) Namespaces() iter.Seq[*Namespace] {
	return func(yield func(*Namespace) bool) {
		for _, ns := range e.nsDefs {
			if !yield(ns) {
				return
			}
		}
	}
}

// LookupNamespaceURI finds the namespace uri bound to prefix by
// walking up from this element through its ancestors.
func (e *Element) LookupNamespaceURI(prefixStr string) (string, bool) {
	for n := Node(e); n != nil; n = n.Parent() {
		elem, ok := n.(*Element)
		if !ok {
			continue
		}
		for _, ns := range elem.nsDefs {
			if ns.Prefix() == prefixStr {
				return ns.URI(), true
			}
		}
	}
	return "", false
}
