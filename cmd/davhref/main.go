package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/davprop"
	"github.com/lestrrat-go/davprop/node"
	"github.com/lestrrat-go/davprop/parser"
	"github.com/lestrrat-go/davprop/s11n"
	"github.com/lestrrat-go/davprop/urlutil"
	"golang.org/x/term"
)

type cmdopts struct {
	Decode       bool   `long:"decode" description:"read XML and print the href properties found in it"`
	DecodePath   bool   `long:"decode-path" description:"percent-decode references printed by --decode"`
	BaseURI      string `long:"base-uri" default:"/" description:"base URI prepended to references"`
	NoAutoPrefix bool   `long:"no-auto-prefix" description:"write references verbatim"`
	DAVPrefix    string `long:"dav-prefix" default:"d" description:"prefix used for the DAV: namespace"`
	Charset      string `long:"charset" description:"charset of the input (decode) or output (encode)"`
	Version      bool   `long:"version" description:"display the version"`
}

func main() {
	os.Exit(_main())
}

func _main() int {
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func showVersion(out io.Writer) {
	fmt.Fprintf(out, "davhref: using davprop version %s\n", davprop.Version)
}

func showUsage(out io.Writer) {
	fmt.Fprintf(out, `Usage : davhref [options] references ...
	Encode each reference as a {DAV:}href element inside a {DAV:}prop envelope
Usage : davhref --decode [options] XMLfiles ...
	Parse the XML files (or stdin) and print every href property found
	--decode-path : percent-decode the printed references
	--version : display the version of the library used
`)
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, args)
	if err != nil {
		showUsage(stderr)
		return 1
	}

	if opts.Version {
		showVersion(stdout)
		return 0
	}

	if opts.Decode {
		return decode(opts, args, stdin, stdout, stderr)
	}

	if len(args) == 0 {
		showUsage(stderr)
		return 1
	}
	return encode(opts, args, stdout, stderr)
}

func encode(opts cmdopts, args []string, stdout, stderr io.Writer) int {
	ctx := davprop.NewServerContext(
		davprop.WithBaseURI(opts.BaseURI),
		davprop.WithNamespace(davprop.NamespaceDAV, opts.DAVPrefix),
	)

	doc, root, err := ctx.NewDocument("prop")
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return 1
	}
	if opts.Charset != "" {
		doc.SetEncoding(opts.Charset)
	}

	for _, ref := range args {
		h := davprop.NewHref(ref, davprop.WithAutoPrefix(!opts.NoAutoPrefix))
		if err := h.Encode(ctx, root); err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
			return 1
		}
	}

	d := s11n.Dumper{}
	if err := d.DumpDoc(stdout, doc); err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return 1
	}
	return 0
}

func decode(opts cmdopts, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	inputCh := make(chan io.ReadCloser)
	errCh := make(chan error, 1)
	switch {
	case len(args) > 0: // filename present
		go func() {
			defer close(inputCh)
			for _, f := range args {
				fh, err := os.Open(f)
				if err != nil {
					errCh <- err
					return
				}
				inputCh <- fh
			}
		}()
	case !isTerminal(stdin):
		go func() {
			defer close(inputCh)
			inputCh <- io.NopCloser(stdin)
		}()
	default:
		showUsage(stderr)
		return 1
	}

	options := []parser.ParseOption{parser.WithNoBlanks(true)}
	if opts.Charset != "" {
		options = append(options, parser.WithCharset(opts.Charset))
	}

	format := func(ref string) string { return ref }
	if opts.DecodePath {
		format = urlutil.DecodePath
	}

	status := 0
	for in := range inputCh {
		if status != 0 {
			in.Close()
			continue
		}
		if err := decodeOne(in, options, format, stdout); err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
			status = 1
		}
	}

	select {
	case err := <-errCh:
		fmt.Fprintf(stderr, "%s\n", err)
		return 1
	default:
	}

	return status
}

func decodeOne(in io.ReadCloser, options []parser.ParseOption, format func(string) string, stdout io.Writer) error {
	defer in.Close()

	buf, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	doc, err := parser.Parse(context.Background(), buf, options...)
	if err != nil {
		return err
	}

	return node.Walk(doc, func(n node.Node) error {
		elem, ok := n.(*node.Element)
		if !ok {
			return nil
		}
		h, ok := davprop.DecodeHref(elem, nil)
		if !ok {
			return nil
		}
		_, err := fmt.Fprintf(stdout, "%s\t%s\n", node.ClarkName(elem), format(h.Reference()))
		return err
	})
}
