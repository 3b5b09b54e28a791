package http

import (
	"github.com/indigo-web/nanohttp/http/headers"
	"github.com/indigo-web/nanohttp/http/method"
)

// Request is a single parsed request. Path, Version, header pairs and Body
// are views into the connection's read buffer: the request is valid only
// within the handling cycle that produced it and must never be retained
// past it, as the buffer is reused for the next cycle.
type Request struct {
	Method  method.Method
	Path    string
	Version string
	Headers *headers.Headers
	Body    []byte
}

func NewRequest(hdrs *headers.Headers) *Request {
	return &Request{
		Headers: hdrs,
	}
}

// ContentType returns the Content-Type header value, if any.
func (r *Request) ContentType() string {
	return r.Headers.Value("Content-Type")
}

// ContentLength returns the parsed Content-Length header value.
func (r *Request) ContentLength() (n int, ok bool) {
	return ContentLength(r.Headers)
}

// Clear resets the request for the next cycle, dropping all the views into
// the previous cycle's buffer.
func (r *Request) Clear() {
	r.Method = method.Unknown
	r.Path = ""
	r.Version = ""
	r.Body = nil

	if r.Headers != nil {
		r.Headers.Clear()
	}
}

// ContentLength reports the Content-Length entry of the collection, parsed
// as a non-negative decimal. A malformed value is reported as absent.
func ContentLength(hdrs *headers.Headers) (n int, ok bool) {
	value, found := hdrs.Get("Content-Length")
	if !found || len(value) == 0 {
		return 0, false
	}

	for i := 0; i < len(value); i++ {
		char := value[i]
		if char < '0' || char > '9' {
			return 0, false
		}

		n = n*10 + int(char-'0')
	}

	return n, true
}
