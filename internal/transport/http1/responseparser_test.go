package http1

import (
	"testing"

	"github.com/indigo-web/nanohttp/http"
	"github.com/indigo-web/nanohttp/http/headers"
	"github.com/indigo-web/nanohttp/http/method"
	"github.com/indigo-web/nanohttp/http/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponse() *http.Response {
	return http.NewResponse(headers.New(headers.DefaultLimit))
}

func TestParseResponse(t *testing.T) {
	t.Run("ordinary", func(t *testing.T) {
		raw := []byte("HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 12\r\n\r\nHello World!")
		resp := newResponse()
		require.NoError(t, ParseResponse(raw, resp))
		assert.Equal(t, status.OK, resp.Code)
		assert.True(t, resp.Code.IsSuccess())
		assert.Equal(t, "text/plain", resp.ContentType())
		assert.Equal(t, "Hello World!", resp.Body.Str())
	})

	t.Run("no content length takes the whole tail", func(t *testing.T) {
		resp := newResponse()
		require.NoError(t, ParseResponse([]byte("HTTP/1.1 404 Not Found\r\n\r\ngone"), resp))
		assert.Equal(t, status.NotFound, resp.Code)
		assert.True(t, resp.Code.IsClientError())
		assert.Equal(t, "gone", resp.Body.Str())
	})

	t.Run("empty body", func(t *testing.T) {
		resp := newResponse()
		require.NoError(t, ParseResponse([]byte("HTTP/1.1 204 No Content\r\n\r\n"), resp))
		assert.Equal(t, status.NoContent, resp.Code)
		assert.True(t, resp.Body.IsEmpty())
	})

	t.Run("short body signals incompleteness", func(t *testing.T) {
		raw := []byte("HTTP/1.1 200 OK\r\nContent-Length: 10\r\n\r\nhal")
		err := ParseResponse(raw, newResponse())
		assert.Equal(t, status.ErrIncompleteBody, err)
	})

	t.Run("excess bytes are not part of the message", func(t *testing.T) {
		raw := []byte("HTTP/1.1 200 OK\r\nContent-Length: 5\r\n\r\nhelloEXCESS")
		resp := newResponse()
		require.NoError(t, ParseResponse(raw, resp))
		assert.Equal(t, "hello", resp.Body.Str())
	})

	t.Run("missing boundary", func(t *testing.T) {
		err := ParseResponse([]byte("HTTP/1.1 200 OK\r\n"), newResponse())
		assert.Equal(t, status.ErrIncompleteHeaders, err)
	})

	t.Run("malformed status code", func(t *testing.T) {
		for _, raw := range []string{
			"HTTP/1.1 2x0 OK\r\n\r\n",
			"HTTP/1.1\r\n\r\n",
			"\r\n\r\n",
		} {
			err := ParseResponse([]byte(raw), newResponse())
			assert.Error(t, err, raw)
		}
	})

	t.Run("overlong status code does not wrap around", func(t *testing.T) {
		// 65736 % 65536 == 200, a uint16 accumulator would happily take it
		err := ParseResponse([]byte("HTTP/1.1 65736 OK\r\n\r\n"), newResponse())
		assert.Equal(t, status.ErrBadStatusCode, err)
	})

	t.Run("reason phrase is irrelevant", func(t *testing.T) {
		resp := newResponse()
		require.NoError(t, ParseResponse([]byte("HTTP/1.1 500 Anything At All\r\n\r\n"), resp))
		assert.Equal(t, status.InternalServerError, resp.Code)
		assert.True(t, resp.Code.IsServerError())
	})
}

func TestRoundTrip(t *testing.T) {
	// whatever the serializer produces, the parser must read back unchanged
	hdrs := headers.New(headers.DefaultLimit)
	require.NoError(t, hdrs.Add("Content-Type", "application/octet-stream"))
	require.NoError(t, hdrs.Add("X-Custom", "some value"))
	original := &http.Response{
		Code:    status.Teapot,
		Headers: hdrs,
		Body:    http.Binary([]byte{0xde, 0xad, 0xbe, 0xef}),
	}

	s := NewSerializer(1024)
	raw, err := s.WriteResponse(original)
	require.NoError(t, err)

	parsed := newResponse()
	require.NoError(t, ParseResponse(raw, parsed))
	assert.Equal(t, status.Teapot, parsed.Code)
	assert.Equal(t, "application/octet-stream", parsed.ContentType())
	assert.Equal(t, "some value", parsed.Headers.Value("x-custom"))
	length, ok := parsed.ContentLength()
	assert.True(t, ok)
	assert.Equal(t, 4, length)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, parsed.Body.Bytes())
}

func TestRequestRoundTrip(t *testing.T) {
	hdrs := headers.New(headers.DefaultLimit)
	require.NoError(t, hdrs.Add("Accept", "text/html"))
	original := &http.Request{
		Method:  method.POST,
		Path:    "/api/data",
		Headers: hdrs,
		Body:    []byte("payload"),
	}

	s := NewSerializer(1024)
	raw, err := s.WriteRequest(original, "example.com")
	require.NoError(t, err)

	head, body, err := SplitMessage(raw)
	require.NoError(t, err)

	parsed := newRequest()
	require.NoError(t, ParseRequest(head, body, parsed))
	assert.Equal(t, original.Method, parsed.Method)
	assert.Equal(t, original.Path, parsed.Path)
	assert.Equal(t, "HTTP/1.1", parsed.Version)
	assert.Equal(t, "example.com", parsed.Headers.Value("Host"))
	assert.Equal(t, "text/html", parsed.Headers.Value("Accept"))
	assert.Equal(t, []byte("payload"), parsed.Body)
}
