package tcp

import (
	"net"
	"time"

	"github.com/indigo-web/nanohttp/http/status"
)

// Client is a byte-oriented transport with timeouts. A Read or Write
// suspends the calling goroutine until the socket is ready or the deadline
// fires, whichever happens first; a fired deadline surfaces as
// status.ErrTimeout, so callers can tell a slow peer from bad data.
type Client interface {
	Read() ([]byte, error)
	Unread([]byte)
	Write([]byte) error
	Remote() net.Addr
	Close() error
}

type client struct {
	conn         net.Conn
	buff         []byte
	pending      []byte
	readTimeout  time.Duration
	writeTimeout time.Duration
}

// NewClient wraps the connection. The buffer is owned by the caller and
// reused for every read, so returned slices are valid only until the next
// Read call.
func NewClient(conn net.Conn, readTimeout, writeTimeout time.Duration, buff []byte) Client {
	return &client{
		conn:         conn,
		buff:         buff,
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
	}
}

func (c *client) Read() ([]byte, error) {
	if len(c.pending) > 0 {
		pending := c.pending
		c.pending = nil

		return pending, nil
	}

	if err := c.conn.SetReadDeadline(time.Now().Add(c.readTimeout)); err != nil {
		return nil, err
	}

	n, err := c.conn.Read(c.buff)
	if n > 0 {
		// a peer may deliver its last bytes together with the error, e.g.
		// when closing right after the write. The error resurfaces on the
		// next read anyway
		return c.buff[:n], nil
	}

	return nil, timeoutAware(err)
}

func (c *client) Unread(b []byte) {
	c.pending = b
}

func (c *client) Write(b []byte) error {
	if err := c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
		return err
	}

	_, err := c.conn.Write(b)

	return timeoutAware(err)
}

func (c *client) Remote() net.Addr {
	return c.conn.RemoteAddr()
}

func (c *client) Close() error {
	return c.conn.Close()
}

func timeoutAware(err error) error {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		return status.ErrTimeout
	}

	return err
}
