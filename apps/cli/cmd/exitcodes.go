package cmd

import (
	"errors"

	"github.com/gurl-cli/gurl/packages/http"
	"github.com/gurl-cli/gurl/packages/output"
	"github.com/gurl-cli/gurl/packages/parse"
)

// Exit codes for the gurl CLI
const (
	// ExitSuccess indicates the request and render completed
	ExitSuccess = 0

	// ExitFailure indicates an unclassified error
	ExitFailure = 1

	// ExitRenderError indicates the response body could not be rendered
	ExitRenderError = 2

	// ExitNetworkError indicates a network/connection error
	ExitNetworkError = 4

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

func exitCode(err error) int {
	var reqErr *http.RequestError
	var renderErr *output.RenderError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, parse.ErrInvalidURL), errors.Is(err, parse.ErrInvalidPair), errors.Is(err, errInvalidHeader):
		return ExitUsageError
	case errors.As(err, &reqErr):
		return ExitNetworkError
	case errors.As(err, &renderErr):
		return ExitRenderError
	}
	return ExitFailure
}
