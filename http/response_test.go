package http

import (
	"testing"

	"github.com/indigo-web/nanohttp/http/headers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBody(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		body := Text("hello")
		assert.Equal(t, BodyText, body.Kind())
		assert.Equal(t, "hello", body.Str())
		assert.Equal(t, []byte("hello"), body.Bytes())
		assert.Equal(t, 5, body.Len())
		assert.False(t, body.IsEmpty())
	})

	t.Run("binary", func(t *testing.T) {
		body := Binary([]byte{0x00, 0x01, 0x02, 0x03})
		assert.Equal(t, BodyBinary, body.Kind())
		assert.Equal(t, []byte{0x00, 0x01, 0x02, 0x03}, body.Bytes())
		assert.Equal(t, 4, body.Len())
		assert.False(t, body.IsEmpty())
	})

	t.Run("empty", func(t *testing.T) {
		var body Body
		assert.Equal(t, BodyEmpty, body.Kind())
		assert.Nil(t, body.Bytes())
		assert.Equal(t, "", body.Str())
		assert.True(t, body.IsEmpty())
	})

	t.Run("empty text is empty", func(t *testing.T) {
		assert.True(t, Text("").IsEmpty())
		assert.True(t, Binary(nil).IsEmpty())
	})
}

func TestContentLength(t *testing.T) {
	hdrs := headers.New(headers.DefaultLimit)
	require.NoError(t, hdrs.Add("content-length", "42"))

	n, ok := ContentLength(hdrs)
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	hdrs.Clear()
	require.NoError(t, hdrs.Add("Content-Length", "12abc"))
	_, ok = ContentLength(hdrs)
	assert.False(t, ok)

	hdrs.Clear()
	_, ok = ContentLength(hdrs)
	assert.False(t, ok)
}

func TestResponseAccessors(t *testing.T) {
	hdrs := headers.New(headers.DefaultLimit)
	require.NoError(t, hdrs.Add("Content-Type", "application/json"))
	resp := NewResponse(hdrs)

	assert.Equal(t, "application/json", resp.ContentType())
	_, ok := resp.ContentLength()
	assert.False(t, ok)

	resp.Body = Text("payload")
	resp.Clear()
	assert.True(t, resp.Body.IsEmpty())
	assert.Equal(t, 0, resp.Headers.Len())
}
