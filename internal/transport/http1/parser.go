package http1

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/nanohttp/http"
	"github.com/indigo-web/nanohttp/http/headers"
	"github.com/indigo-web/nanohttp/http/method"
	"github.com/indigo-web/nanohttp/http/status"
	"github.com/indigo-web/utils/uf"
)

var boundary = []byte("\r\n\r\n")

// SplitMessage locates the header/body split in a raw message buffer. The
// head is everything before the first CRLFCRLF, returned as a zero-copy
// string view and guaranteed to be valid UTF-8. The body is everything past
// the split, unvalidated, as it may be arbitrary binary data. An absent
// split results in status.ErrIncompleteHeaders, which streaming readers use
// as a signal to supply more bytes.
func SplitMessage(raw []byte) (head string, body []byte, err error) {
	idx := bytes.Index(raw, boundary)
	if idx == -1 {
		return "", nil, status.ErrIncompleteHeaders
	}

	headBytes := raw[:idx]
	if !utf8.Valid(headBytes) {
		return "", nil, status.ErrBadEncoding
	}

	return uf.B2S(headBytes), raw[idx+len(boundary):], nil
}

// ParseRequest fills req from an already located header block and a raw body
// span. The head must not include the terminating blank line. The body is
// adopted verbatim, no attempt is made to re-derive it from the head. The
// request is reset first, so all views it held previously are dropped.
func ParseRequest(head string, body []byte, req *http.Request) error {
	req.Clear()

	if len(head) == 0 {
		return status.ErrMissingRequestLine
	}

	requestLine, rest := cutLine(head)

	token, requestLine := cutToken(requestLine)
	if len(token) == 0 {
		return status.ErrMissingMethod
	}

	m := method.Parse(token)
	if m == method.Unknown {
		return status.ErrMethodNotSupported
	}

	path, requestLine := cutToken(requestLine)
	if len(path) == 0 {
		return status.ErrMissingPath
	}

	version, _ := cutToken(requestLine)
	if len(version) == 0 {
		return status.ErrMissingVersion
	}
	// tokens past the third, if any, are deliberately left unvalidated

	if err := parseHeaders(rest, req.Headers); err != nil {
		return err
	}

	req.Method = m
	req.Path = path
	req.Version = version
	req.Body = body

	return nil
}

// parseHeaders consumes header lines until a blank line or input exhaustion.
// Lines without a colon are silently skipped.
func parseHeaders(block string, hdrs *headers.Headers) error {
	for len(block) > 0 {
		var line string
		line, block = cutLine(block)
		if len(line) == 0 {
			break
		}

		colon := strings.IndexByte(line, ':')
		if colon == -1 {
			continue
		}

		key := strings.TrimSpace(line[:colon])
		value := strings.TrimSpace(line[colon+1:])
		if err := hdrs.Add(key, value); err != nil {
			return err
		}
	}

	return nil
}

// cutLine splits off the first line, stripping the line break itself. A lone
// LF is tolerated the same way a full CRLF is.
func cutLine(s string) (line, rest string) {
	idx := strings.IndexByte(s, '\n')
	if idx == -1 {
		return s, ""
	}

	line = s[:idx]
	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}

	return line, s[idx+1:]
}

// cutToken splits off the first whitespace-separated token, skipping any
// leading whitespace.
func cutToken(s string) (token, rest string) {
	for len(s) > 0 && isWhitespace(s[0]) {
		s = s[1:]
	}

	i := 0
	for i < len(s) && !isWhitespace(s[i]) {
		i++
	}

	return s[:i], s[i:]
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t'
}
