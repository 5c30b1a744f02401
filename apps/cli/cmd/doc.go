// Package cmd implements the gurl CLI commands using Cobra.
//
// Available commands:
//   - get: Send a GET request
//   - post, put, patch: Send a write request with a JSON body built
//     from key=value arguments
//   - version: Show gurl version information
//
// Every command prints the response as [status], [headers], and [body]
// blocks, with the body syntax-highlighted by content type.
package cmd
