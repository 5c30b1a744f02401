package cmd

import (
	"errors"
	"fmt"
	nethttp "net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gurl-cli/gurl/packages/http"
	"github.com/gurl-cli/gurl/packages/output"
	"github.com/gurl-cli/gurl/packages/parse"
	"github.com/spf13/cobra"
)

// runRequest validates the positional arguments, issues a single request,
// and renders the response. Write methods JSON-encode their key=value
// pairs; a duplicate key keeps the last value.
func runRequest(cmd *cobra.Command, method string, args []string) error {
	requestURL, err := parse.URL(args[0])
	if err != nil {
		return err
	}

	req := http.NewRequest(method, requestURL)
	if method != nethttp.MethodGet {
		pairs, err := parse.KVs(args[1:])
		if err != nil {
			return err
		}
		if err := req.SetJSONBody(pairs.Map()); err != nil {
			return err
		}
	}

	extra, err := parseHeaderFlags(headerFlags)
	if err != nil {
		return err
	}
	for k, v := range extra {
		req.SetHeader(k, v)
	}

	client := http.NewClient(
		http.WithTimeout(timeoutFlag),
		http.WithDefaultHeaders(map[string]string{
			"User-Agent":   "gurl/" + version,
			"X-Powered-By": "gurl",
			"X-Request-Id": uuid.NewString(),
		}),
	)

	renderer := output.NewRenderer(
		output.WithWriter(cmd.OutOrStdout()),
		output.WithVerbose(verboseFlag),
		output.WithNoColor(noColorFlag),
	)
	renderer.RenderRequest(req)

	resp, err := client.Do(cmd.Context(), req)
	if err != nil {
		return err
	}
	return renderer.Render(resp)
}

// errInvalidHeader is wrapped by every -H flag validation failure.
var errInvalidHeader = errors.New("invalid header")

func parseHeaderFlags(flags []string) (map[string]string, error) {
	headers := make(map[string]string, len(flags))
	for _, f := range flags {
		name, value, found := strings.Cut(f, ":")
		if !found || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf(`%w %q, want "Name: Value"`, errInvalidHeader, f)
		}
		headers[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	return headers, nil
}
