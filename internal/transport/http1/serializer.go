package http1

import (
	"github.com/indigo-web/nanohttp/http"
	"github.com/indigo-web/nanohttp/http/headers"
	"github.com/indigo-web/nanohttp/http/status"
	"github.com/indigo-web/nanohttp/internal/buffer"
	"github.com/indigo-web/utils/uf"
)

const (
	protoHTTP11   = "HTTP/1.1"
	colonsp       = ": "
	contentLength = "Content-Length: "
	hostKey       = "Host"
)

// Serializer renders messages into a fixed-capacity buffer it owns. A
// message that doesn't fit is reported as a capacity failure instead of
// being truncated: a truncated message would be wire-corrupt, which is worse
// than no message at all.
type Serializer struct {
	buff       buffer.Buffer
	overflowed bool
	scratch    [20]byte
}

func NewSerializer(size int) *Serializer {
	return &Serializer{
		buff: buffer.New(size),
	}
}

// WriteResponse renders the response and returns the rendered bytes, which
// stay valid until the next Write* call. A Content-Length header is
// synthesized for non-empty bodies only; server-supplied headers are
// rendered first, in insertion order.
func (s *Serializer) WriteResponse(resp *http.Response) ([]byte, error) {
	s.reset()

	s.appendStr(protoHTTP11)
	s.sp()
	s.appendDec(int(resp.Code))
	s.sp()
	s.appendStr(string(status.Text(resp.Code)))
	s.crlf()

	s.renderHeaders(resp.Headers)

	body := resp.Body.Bytes()
	s.renderContentLength(len(body))
	s.crlf()
	s.append(body)

	return s.finish(status.ErrResponseTooLarge)
}

// WriteRequest renders an outgoing request. A Host header carrying host is
// synthesized unless the request already has one; same for Content-Length
// on non-empty bodies. An empty Version defaults to HTTP/1.1.
func (s *Serializer) WriteRequest(req *http.Request, host string) ([]byte, error) {
	s.reset()

	s.appendStr(req.Method.String())
	s.sp()
	s.appendStr(req.Path)
	s.sp()
	if len(req.Version) == 0 {
		s.appendStr(protoHTTP11)
	} else {
		s.appendStr(req.Version)
	}
	s.crlf()

	if len(host) > 0 && (req.Headers == nil || !req.Headers.Has(hostKey)) {
		s.appendStr(hostKey)
		s.appendStr(colonsp)
		s.appendStr(host)
		s.crlf()
	}

	s.renderHeaders(req.Headers)
	s.renderContentLength(len(req.Body))
	s.crlf()
	s.append(req.Body)

	return s.finish(status.ErrRequestTooLarge)
}

func (s *Serializer) renderHeaders(hdrs *headers.Headers) {
	if hdrs == nil {
		return
	}

	for _, header := range hdrs.Expose() {
		s.appendStr(header.Key)
		s.appendStr(colonsp)
		s.appendStr(header.Value)
		s.crlf()
	}
}

// renderContentLength synthesizes the length header. Empty bodies must not
// carry one.
func (s *Serializer) renderContentLength(length int) {
	if length == 0 {
		return
	}

	s.appendStr(contentLength)
	s.appendDec(length)
	s.crlf()
}

func (s *Serializer) reset() {
	s.buff.Clear()
	s.overflowed = false
}

func (s *Serializer) finish(overflowErr error) ([]byte, error) {
	if s.overflowed {
		return nil, overflowErr
	}

	return s.buff.Preview(), nil
}

func (s *Serializer) append(b []byte) {
	if !s.buff.Append(b) {
		s.overflowed = true
	}
}

func (s *Serializer) appendStr(str string) {
	s.append(uf.S2B(str))
}

func (s *Serializer) appendDec(n int) {
	s.append(appendDec(s.scratch[:0], n))
}

func (s *Serializer) sp() {
	if !s.buff.AppendByte(' ') {
		s.overflowed = true
	}
}

func (s *Serializer) crlf() {
	s.appendStr("\r\n")
}

// appendDec renders n in decimal with no leading zeros and no sign. The
// digits are produced least-significant first and then reversed, as the
// digit count isn't known upfront. Negative input is rendered as zero, same
// as zero itself via the single-digit fast path.
func appendDec(dst []byte, n int) []byte {
	if n <= 0 {
		return append(dst, '0')
	}

	var digits [20]byte
	i := 0
	for n > 0 {
		digits[i] = byte(n%10) + '0'
		n /= 10
		i++
	}

	for i > 0 {
		i--
		dst = append(dst, digits[i])
	}

	return dst
}
