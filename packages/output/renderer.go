package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/gurl-cli/gurl/packages/http"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

type Renderer struct {
	writer  io.Writer
	verbose int
	noColor bool
}

type RendererOption func(*Renderer)

func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.noColor {
		color.NoColor = true
	}
	return r
}

func WithWriter(w io.Writer) RendererOption {
	return func(r *Renderer) {
		r.writer = w
	}
}

// WithVerbose sets the verbosity level: 1 adds the request line and the
// response time, 2 adds the request headers.
func WithVerbose(v int) RendererOption {
	return func(r *Renderer) {
		r.verbose = v
	}
}

func WithNoColor(nc bool) RendererOption {
	return func(r *Renderer) {
		r.noColor = nc
	}
}

// Render prints the status, headers, and body blocks in order. A body
// that cannot be highlighted is a *RenderError.
func (r *Renderer) Render(resp *http.Response) error {
	r.renderStatus(resp)
	r.renderHeaders(resp)
	return r.renderBody(resp)
}

// RenderRequest prints the outgoing request block. It is a no-op below
// verbosity 1.
func (r *Renderer) RenderRequest(req *http.Request) {
	if r.verbose < 1 {
		return
	}
	label := color.New(color.Bold, color.FgMagenta).SprintFunc()
	blue := color.New(color.FgBlue).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	fmt.Fprintln(r.writer, label("[request]"))
	fmt.Fprintf(r.writer, "%s %s\n", blue(req.Method), cyan(req.URL))

	if r.verbose >= 2 {
		names := make([]string, 0, len(req.Headers))
		for name := range req.Headers {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(r.writer, "%s: %q\n", blue(strings.ToLower(name)), req.Headers[name])
		}
	}
}

func (r *Renderer) renderStatus(resp *http.Response) {
	label := color.New(color.Bold, color.FgMagenta).SprintFunc()
	blue := color.New(color.FgBlue).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	fmt.Fprintln(r.writer, label("[status]"))
	if r.verbose > 0 {
		fmt.Fprintf(r.writer, "%s %s %s\n", blue(resp.Proto), cyan(resp.Status), cyan(fmt.Sprintf("(%dms)", resp.DurationMs())))
		return
	}
	fmt.Fprintf(r.writer, "%s %s\n", blue(resp.Proto), cyan(resp.Status))
}

// renderHeaders prints one line per header value. Header names are
// lowercased and sorted; net/http does not retain wire order, so sorting
// keeps the block deterministic. Values for the same name keep the order
// they were received in.
func (r *Renderer) renderHeaders(resp *http.Response) {
	label := color.New(color.Bold, color.FgMagenta).SprintFunc()
	blue := color.New(color.FgBlue).SprintFunc()

	fmt.Fprintln(r.writer, label("[headers]"))
	names := make([]string, 0, len(resp.Headers))
	for name := range resp.Headers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, value := range resp.Headers[name] {
			fmt.Fprintf(r.writer, "%s: %q\n", blue(strings.ToLower(name)), value)
		}
	}
}

func (r *Renderer) renderBody(resp *http.Response) error {
	label := color.New(color.Bold, color.FgMagenta).SprintFunc()
	fmt.Fprintln(r.writer, label("[body]"))

	body := resp.BodyString()
	lexer := lexerFor(resp.ContentType())
	if lexer == "" || r.noColor {
		fmt.Fprint(r.writer, body)
		if !strings.HasSuffix(body, "\n") {
			fmt.Fprintln(r.writer)
		}
		return nil
	}

	if lexer == "json" && gjson.ValidBytes(resp.Body) {
		body = string(pretty.Pretty(resp.Body))
	}
	return highlight(r.writer, body, lexer)
}
