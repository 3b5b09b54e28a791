package http

import (
	"github.com/indigo-web/nanohttp/http/headers"
	"github.com/indigo-web/nanohttp/http/status"
	"github.com/indigo-web/utils/uf"
)

type BodyKind uint8

const (
	BodyEmpty BodyKind = iota
	BodyText
	BodyBinary
)

// Body is a tagged response payload: text, binary, or nothing at all. The
// distinction is made by the producer, never guessed from the content. The
// payload is borrowed, not owned: a Body built over a driver buffer shares
// its lifetime.
type Body struct {
	kind BodyKind
	text string
	bin  []byte
}

// Text produces a textual body borrowing the given string.
func Text(s string) Body {
	return Body{kind: BodyText, text: s}
}

// Binary produces a binary body borrowing the given bytes.
func Binary(b []byte) Body {
	return Body{kind: BodyBinary, bin: b}
}

func (b Body) Kind() BodyKind {
	return b.kind
}

// Bytes returns the payload as raw bytes without copying it.
func (b Body) Bytes() []byte {
	switch b.kind {
	case BodyText:
		return uf.S2B(b.text)
	case BodyBinary:
		return b.bin
	default:
		return nil
	}
}

// Str returns the payload as a string without copying it. Binary payloads
// are returned as-is and aren't guaranteed to be valid UTF-8.
func (b Body) Str() string {
	switch b.kind {
	case BodyText:
		return b.text
	case BodyBinary:
		return uf.B2S(b.bin)
	default:
		return ""
	}
}

func (b Body) Len() int {
	switch b.kind {
	case BodyText:
		return len(b.text)
	case BodyBinary:
		return len(b.bin)
	default:
		return 0
	}
}

func (b Body) IsEmpty() bool {
	return b.Len() == 0
}

// Response is a single message to be serialized (server side) or just parsed
// (client side). Same as Request, a parsed response borrows the read buffer
// and is valid only until the next cycle on the same session.
type Response struct {
	Code    status.Code
	Headers *headers.Headers
	Body    Body
}

func NewResponse(hdrs *headers.Headers) *Response {
	return &Response{
		Code:    status.OK,
		Headers: hdrs,
	}
}

// ContentType returns the Content-Type header value, if any.
func (r *Response) ContentType() string {
	return r.Headers.Value("Content-Type")
}

// ContentLength returns the parsed Content-Length header value.
func (r *Response) ContentLength() (n int, ok bool) {
	return ContentLength(r.Headers)
}

// Clear resets the response for the next cycle.
func (r *Response) Clear() {
	r.Code = status.OK
	r.Body = Body{}

	if r.Headers != nil {
		r.Headers.Clear()
	}
}
