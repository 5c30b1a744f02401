package output

import (
	"bytes"
	nethttp "net/http"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/gurl-cli/gurl/packages/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonResponse() *http.Response {
	return &http.Response{
		Proto:      "HTTP/1.1",
		StatusCode: 200,
		Status:     "200 OK",
		Headers:    nethttp.Header{"Content-Type": []string{"application/json"}},
		Body:       []byte(`{"x":1}`),
		Duration:   12 * time.Millisecond,
	}
}

func TestRenderer_JSONResponse(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewRenderer(WithWriter(buf), WithNoColor(true))

	require.NoError(t, r.Render(jsonResponse()))

	out := buf.String()
	assert.Contains(t, out, "[status]")
	assert.Contains(t, out, "HTTP/1.1 200 OK")
	assert.Contains(t, out, "[headers]")
	assert.Contains(t, out, `content-type: "application/json"`)
	assert.Contains(t, out, "[body]")
	assert.Contains(t, out, `{"x":1}`)
}

func TestRenderer_JSONHighlighted(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewRenderer(WithWriter(buf))

	require.NoError(t, r.Render(jsonResponse()))

	out := buf.String()
	// chroma's terminal256 formatter always emits escape codes, and valid
	// JSON is indented before highlighting.
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "x")
	assert.Contains(t, out, "1")
}

func TestRenderer_NoContentTypePrintsRaw(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewRenderer(WithWriter(buf))

	resp := &http.Response{
		Proto:      "HTTP/1.1",
		StatusCode: 200,
		Status:     "200 OK",
		Headers:    nethttp.Header{},
		Body:       []byte("plain text body"),
	}
	require.NoError(t, r.Render(resp))

	assert.Contains(t, buf.String(), "plain text body\n")
}

func TestRenderer_UnknownContentTypePrintsRaw(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewRenderer(WithWriter(buf), WithNoColor(true))

	resp := &http.Response{
		Proto:      "HTTP/1.1",
		StatusCode: 200,
		Status:     "200 OK",
		Headers:    nethttp.Header{"Content-Type": []string{"application/octet-stream"}},
		Body:       []byte("binary-ish"),
	}
	require.NoError(t, r.Render(resp))

	assert.Contains(t, buf.String(), "binary-ish\n")
}

func TestRenderer_RawBodyTrailingNewlineNotDoubled(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewRenderer(WithWriter(buf), WithNoColor(true))

	resp := &http.Response{
		Proto:      "HTTP/1.1",
		StatusCode: 200,
		Status:     "200 OK",
		Headers:    nethttp.Header{},
		Body:       []byte("line one\nline two\n"),
	}
	require.NoError(t, r.Render(resp))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "line two\n"))
	assert.NotContains(t, out, "line two\n\n")
}

func TestRenderer_MultiValuedHeaders(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewRenderer(WithWriter(buf), WithNoColor(true))

	resp := &http.Response{
		Proto:      "HTTP/1.1",
		StatusCode: 200,
		Status:     "200 OK",
		Headers: nethttp.Header{
			"Set-Cookie": []string{"a=1", "b=2"},
		},
		Body: []byte("ok"),
	}
	require.NoError(t, r.Render(resp))

	out := buf.String()
	assert.Contains(t, out, `set-cookie: "a=1"`)
	assert.Contains(t, out, `set-cookie: "b=2"`)
}

func TestRenderer_VerboseStatusIncludesTiming(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewRenderer(WithWriter(buf), WithNoColor(true), WithVerbose(1))

	require.NoError(t, r.Render(jsonResponse()))

	assert.Contains(t, buf.String(), "(12ms)")
}

func TestRenderer_RenderRequest(t *testing.T) {
	req := http.NewRequest("POST", "http://abc.xyz/items")
	req.SetHeader("Content-Type", "application/json")

	buf := &bytes.Buffer{}
	NewRenderer(WithWriter(buf), WithNoColor(true)).RenderRequest(req)
	assert.Empty(t, buf.String(), "quiet below verbosity 1")

	buf.Reset()
	NewRenderer(WithWriter(buf), WithNoColor(true), WithVerbose(1)).RenderRequest(req)
	out := buf.String()
	assert.Contains(t, out, "[request]")
	assert.Contains(t, out, "POST http://abc.xyz/items")
	assert.NotContains(t, out, "content-type")

	buf.Reset()
	NewRenderer(WithWriter(buf), WithNoColor(true), WithVerbose(2)).RenderRequest(req)
	assert.Contains(t, buf.String(), `content-type: "application/json"`)
}

func TestMain(m *testing.M) {
	// WithNoColor flips the package-level switch in fatih/color; start
	// every run from a known state.
	color.NoColor = false
	m.Run()
}
