package davprop

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identAutoPrefix struct{}
type identBaseURI struct{}
type identNamespace struct{}
type identNoDefaultNamespaces struct{}

type HrefOption interface {
	Option
	hrefOption()
}

type hrefOption struct{ Option }

func (*hrefOption) hrefOption() {}

type ContextOption interface {
	Option
	contextOption()
}

type contextOption struct{ Option }

func (*contextOption) contextOption() {}

// WithAutoPrefix specifies if the reference should be resolved against
// the server's base URI when it is written out. The default is true.
func WithAutoPrefix(v bool) HrefOption {
	return &hrefOption{option.New(identAutoPrefix{}, v)}
}

// WithBaseURI specifies the URI the server is mounted at. A trailing
// slash is added if missing.
func WithBaseURI(v string) ContextOption {
	return &contextOption{option.New(identBaseURI{}, v)}
}

type namespaceBinding struct {
	uri    string
	prefix string
}

// WithNamespace registers prefix for the namespace uri. Registering
// a uri twice replaces the previous prefix.
func WithNamespace(uri, prefix string) ContextOption {
	return &contextOption{option.New(identNamespace{}, namespaceBinding{uri: uri, prefix: prefix})}
}

// WithoutDefaultNamespaces starts the namespace table empty instead of
// with the DAV: and server extension namespaces.
func WithoutDefaultNamespaces() ContextOption {
	return &contextOption{option.New(identNoDefaultNamespaces{}, true)}
}
