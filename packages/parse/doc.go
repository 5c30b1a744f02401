// Package parse validates the positional arguments of a gurl invocation:
// the request URL and the key=value body pairs.
package parse
