// Package nsstack keeps track of the namespace prefixes that are in
// scope while walking an XML document.
package nsstack

// XMLNamespace is implicitly bound to the "xml" prefix in every document
const XMLNamespace = "http://www.w3.org/XML/1998/namespace"

type Item struct {
	prefix string
	href   string
}

func (i Item) Prefix() string {
	return i.prefix
}

func (i Item) URI() string {
	return i.href
}

// Stack is a stack of prefix bindings, grouped into scopes. A scope
// corresponds to one element: bindings pushed after PushScope are
// discarded by the matching PopScope.
type Stack struct {
	items []Item
	marks []int
}

func New() *Stack {
	return &Stack{}
}

func (s *Stack) PushScope() {
	s.marks = append(s.marks, len(s.items))
}

// PopScope discards every binding made since the last PushScope
func (s *Stack) PopScope() {
	l := len(s.marks)
	if l == 0 {
		return
	}
	mark := s.marks[l-1]
	s.marks = s.marks[:l-1]
	s.Pop(len(s.items) - mark)
}

// Push binds prefix to uri in the current scope. Redeclaring a prefix
// shadows the outer binding until the scope is popped.
func (s *Stack) Push(prefix, uri string) {
	s.items = append(s.items, Item{prefix: prefix, href: uri})
}

// Pop removes the last n bindings (1 if n is not given)
func (s *Stack) Pop(n ...int) {
	nn := 1
	if len(n) > 0 {
		nn = n[0]
	}
	if nn <= 0 {
		return
	}
	if nn > len(s.items) {
		nn = len(s.items)
	}
	s.items = s.items[:len(s.items)-nn]

	if c := cap(s.items); c > 20 && c > len(s.items)*2 {
		s.items = append([]Item(nil), s.items...)
	}
}

// Lookup returns the uri bound to prefix. The innermost binding wins.
// An empty uri bound to the empty prefix undeclares the default
// namespace, in which case ok is false.
func (s *Stack) Lookup(prefix string) (string, bool) {
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i].prefix == prefix {
			if s.items[i].href == "" {
				return "", false
			}
			return s.items[i].href, true
		}
	}
	if prefix == "xml" {
		return XMLNamespace, true
	}
	return "", false
}

func (s *Stack) Len() int {
	return len(s.items)
}
