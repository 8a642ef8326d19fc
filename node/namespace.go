package node

// Namespace represents an XML namespace binding of a prefix to a URI
type Namespace struct {
	*prefix
	href    string
	context *Document
}

func NewNamespace(prefixStr, uri string) *Namespace {
	var p prefix
	ns := &Namespace{
		prefix: &p,
		href:   uri,
	}
	ns.SetPrefix(prefixStr)
	return ns
}

func (n *Namespace) URI() string {
	return n.href
}

// DeclarationName returns the attribute name used to declare this
// namespace: "xmlns" for the default namespace, "xmlns:prefix" otherwise.
func (n *Namespace) DeclarationName() string {
	if p := n.Prefix(); p != "" {
		return "xmlns:" + p
	}
	return "xmlns"
}
