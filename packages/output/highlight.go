package output

import (
	"io"
	"mime"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

const (
	highlightFormatter = "terminal256"
	highlightStyle     = "monokai"
)

// lexerFor maps a Content-Type header value to a chroma lexer name.
// Parameters such as charset are stripped before matching. An empty
// string means the body prints raw.
func lexerFor(contentType string) string {
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	switch mediaType {
	case "application/json":
		return "json"
	case "text/html":
		return "html"
	case "text/css":
		return "css"
	case "application/javascript", "text/javascript":
		return "javascript"
	}
	return ""
}

func highlight(w io.Writer, source, lexer string) error {
	if err := quick.Highlight(w, source, lexer, highlightFormatter, highlightStyle); err != nil {
		return &RenderError{Lexer: lexer, Err: err}
	}
	if !strings.HasSuffix(source, "\n") {
		_, _ = io.WriteString(w, "\n")
	}
	return nil
}

// RenderError wraps a body that could not be highlighted.
type RenderError struct {
	Lexer string
	Err   error
}

func (e *RenderError) Error() string {
	return "render body as " + e.Lexer + ": " + e.Err.Error()
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
