package davprop

import (
	"iter"
	"strings"

	"github.com/lestrrat-go/davprop/internal/orderedmap"
	"github.com/lestrrat-go/davprop/node"
)

// ServerContext is a Context holding the server's base URI and its
// namespace table. Namespaces are kept in the order they were
// registered, which is also the order they are declared in documents
// created by NewDocument.
type ServerContext struct {
	baseURI    string
	namespaces *orderedmap.Map[string, string]
}

var _ Context = (*ServerContext)(nil)

// NewServerContext creates a ServerContext. Unless WithoutDefaultNamespaces
// is given, DAV: is registered as "d" and the server extension namespace
// as "s". The base URI defaults to "/".
func NewServerContext(options ...ContextOption) *ServerContext {
	baseURI := "/"
	defaults := true
	var bindings []namespaceBinding
	for _, option := range options {
		switch option.Ident() {
		case identBaseURI{}:
			baseURI = normalizeBaseURI(option.Value().(string))
		case identNamespace{}:
			bindings = append(bindings, option.Value().(namespaceBinding))
		case identNoDefaultNamespaces{}:
			defaults = !option.Value().(bool)
		}
	}

	c := &ServerContext{
		baseURI:    baseURI,
		namespaces: orderedmap.New[string, string](),
	}
	if defaults {
		c.namespaces.Replace(NamespaceDAV, "d")
		c.namespaces.Replace(NamespaceSabre, "s")
	}
	for _, b := range bindings {
		c.namespaces.Replace(b.uri, b.prefix)
	}
	return c
}

func normalizeBaseURI(s string) string {
	if !strings.HasSuffix(s, "/") {
		s += "/"
	}
	return s
}

// NamespacePrefix returns the prefix registered for uri. The second
// return value is false if uri is not in the namespace table.
func (c *ServerContext) NamespacePrefix(uri string) (string, bool) {
	return c.namespaces.Get(uri)
}

// BaseURI returns the base URI, which always ends in a slash
func (c *ServerContext) BaseURI() string {
	return c.baseURI
}

// Namespaces iterates over the namespace table as (uri, prefix) pairs
func (c *ServerContext) Namespaces() iter.Seq2[string, string] {
	return c.namespaces.Range()
}

// NewDocument creates a document whose root element is local in the
// DAV: namespace, carrying a declaration for every registered namespace.
// This is the envelope (multistatus, prop, ...) that property values
// are encoded into.
func (c *ServerContext) NewDocument(local string) (*node.Document, *node.Element, error) {
	prefix, ok := c.NamespacePrefix(NamespaceDAV)
	if !ok {
		return nil, nil, &ConfigurationError{Namespace: NamespaceDAV}
	}

	doc := node.NewDocument()
	root := doc.CreateElementNS(NamespaceDAV, prefix, local)
	for uri, p := range c.Namespaces() {
		if err := root.DeclareNamespace(p, uri); err != nil {
			return nil, nil, err
		}
	}
	if err := doc.SetDocumentElement(root); err != nil {
		return nil, nil, err
	}
	return doc, root, nil
}
