// Package output renders an HTTP exchange to the terminal.
//
// A response is printed as three labeled blocks: [status], [headers], and
// [body]. The body block is syntax-highlighted when the Content-Type maps
// to a known lexer (JSON, HTML, CSS, JavaScript); everything else prints
// raw. In verbose mode a [request] block precedes the response.
package output
