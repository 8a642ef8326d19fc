package parser

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identCharset struct{}
type identNoBlanks struct{}

type ParseOption interface {
	Option
	parseOption()
}

type parseOption struct{ Option }

func (*parseOption) parseOption() {}

// WithNoBlanks specifies that text nodes consisting entirely of
// whitespace should be dropped from the resulting tree
func WithNoBlanks(v bool) ParseOption {
	return &parseOption{option.New(identNoBlanks{}, v)}
}

// WithCharset forces the charset the input is decoded from, regardless
// of what the XML declaration says
func WithCharset(v string) ParseOption {
	return &parseOption{option.New(identCharset{}, v)}
}
