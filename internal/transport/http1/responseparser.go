package http1

import (
	"github.com/indigo-web/nanohttp/http"
	"github.com/indigo-web/nanohttp/http/status"
)

// ParseResponse parses a complete response message out of raw into resp,
// whose header collection must be attached by the caller. The reason phrase
// is consumed but not stored: the numeric code is authoritative.
//
// If the message isn't complete yet, status.ErrIncompleteHeaders or
// status.ErrIncompleteBody is returned, telling the streaming caller to
// supply more bytes. The body span is framed by Content-Length when the
// header is present, otherwise everything past the header block is taken.
func ParseResponse(raw []byte, resp *http.Response) error {
	resp.Clear()

	head, body, err := SplitMessage(raw)
	if err != nil {
		return err
	}

	if len(head) == 0 {
		return status.ErrMissingStatusLine
	}

	statusLine, rest := cutLine(head)

	version, statusLine := cutToken(statusLine)
	if len(version) == 0 {
		return status.ErrMissingStatusLine
	}

	codeToken, _ := cutToken(statusLine)
	code, ok := parseCode(codeToken)
	if !ok {
		return status.ErrBadStatusCode
	}

	if err := parseHeaders(rest, resp.Headers); err != nil {
		return err
	}

	if length, found := http.ContentLength(resp.Headers); found {
		if len(body) < length {
			return status.ErrIncompleteBody
		}

		// anything past the declared length is not part of this message
		body = body[:length]
	}

	resp.Code = code
	if len(body) > 0 {
		resp.Body = http.Binary(body)
	}

	return nil
}

// parseCode accumulates the decimal status code digit by digit. Codes are
// at most three digits, longer tokens would overflow the accumulator.
func parseCode(token string) (code status.Code, ok bool) {
	if len(token) == 0 || len(token) > 3 {
		return 0, false
	}

	for i := 0; i < len(token); i++ {
		char := token[i]
		if char < '0' || char > '9' {
			return 0, false
		}

		code = code*10 + status.Code(char-'0')
	}

	return code, true
}
