package tcp

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/indigo-web/nanohttp/http/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eagerCloseConn delivers its whole payload on the first read together with
// io.EOF, like a peer that shuts the socket down right after writing.
type eagerCloseConn struct {
	net.Conn
	payload []byte
	drained bool
}

func (e *eagerCloseConn) Read(b []byte) (int, error) {
	if e.drained {
		return 0, io.EOF
	}

	e.drained = true
	return copy(b, e.payload), io.EOF
}

func (e *eagerCloseConn) SetReadDeadline(time.Time) error {
	return nil
}

type timeoutErr struct{}

func (timeoutErr) Error() string { return "i/o timeout" }
func (timeoutErr) Timeout() bool { return true }
func (timeoutErr) Temporary() bool {
	return true
}

// silentConn never produces anything, every read fires the deadline.
type silentConn struct {
	net.Conn
}

func (silentConn) Read([]byte) (int, error) {
	return 0, timeoutErr{}
}

func (silentConn) SetReadDeadline(time.Time) error {
	return nil
}

func TestRead(t *testing.T) {
	t.Run("bytes arriving alongside the error are not lost", func(t *testing.T) {
		conn := &eagerCloseConn{payload: []byte("tail")}
		client := NewClient(conn, time.Second, time.Second, make([]byte, 16))

		data, err := client.Read()
		require.NoError(t, err)
		assert.Equal(t, "tail", string(data))

		// the error is only deferred, not swallowed
		_, err = client.Read()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("fired deadline surfaces as timeout", func(t *testing.T) {
		client := NewClient(silentConn{}, time.Millisecond, time.Millisecond, make([]byte, 16))

		_, err := client.Read()
		assert.Equal(t, status.ErrTimeout, err)
	})

	t.Run("unread bytes come back first", func(t *testing.T) {
		conn := &eagerCloseConn{payload: []byte("second")}
		client := NewClient(conn, time.Second, time.Second, make([]byte, 16))

		client.Unread([]byte("first"))

		data, err := client.Read()
		require.NoError(t, err)
		assert.Equal(t, "first", string(data))

		data, err = client.Read()
		require.NoError(t, err)
		assert.Equal(t, "second", string(data))
	})
}
