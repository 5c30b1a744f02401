package http

import (
	"encoding/json"
	"fmt"
)

type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

func NewRequest(method, requestURL string) *Request {
	return &Request{
		Method:  method,
		URL:     requestURL,
		Headers: make(map[string]string),
	}
}

func (r *Request) SetHeader(key, value string) *Request {
	r.Headers[key] = value
	return r
}

// SetJSONBody marshals v as the request body and sets the JSON content type.
func (r *Request) SetJSONBody(v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}
	r.Body = body
	r.SetHeader("Content-Type", "application/json")
	return nil
}
