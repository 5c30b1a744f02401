// Package http wraps the standard library's http package for gurl's
// single-request workflow:
//   - Configurable timeout and redirect policy
//   - Default headers applied to every request
//   - Full body read into the returned Response
package http
