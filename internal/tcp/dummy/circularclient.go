package dummy

import (
	"io"
	"net"

	"github.com/indigo-web/nanohttp/http/status"
	"github.com/indigo-web/utils/unreader"
)

// CircularClient is a client that on every read-operation returns the data
// chunks it was initialised with, one by one, wrapping around at the end.
// Everything written into it is retained for assertions. Used in tests in
// place of a live socket.
type CircularClient struct {
	unreader *unreader.Unreader
	data     [][]byte
	written  []byte
	fin      error
	pointer  int
	closed   bool
}

func NewCircularClient(data ...[]byte) *CircularClient {
	return &CircularClient{
		unreader: new(unreader.Unreader),
		data:     data,
		pointer:  -1,
	}
}

// OneTime makes the client return io.EOF after the last chunk instead of
// wrapping around.
func (c *CircularClient) OneTime() *CircularClient {
	c.fin = io.EOF
	return c
}

// TimingOut makes the client fire status.ErrTimeout after the last chunk,
// as if the peer went quiet and the read deadline expired.
func (c *CircularClient) TimingOut() *CircularClient {
	c.fin = status.ErrTimeout
	return c
}

func (c *CircularClient) Read() ([]byte, error) {
	if c.closed {
		return nil, io.EOF
	}

	return c.unreader.PendingOr(func() ([]byte, error) {
		c.pointer++

		if c.pointer == len(c.data) {
			if c.fin != nil {
				c.closed = true
				return nil, c.fin
			}

			c.pointer = 0
		}

		return c.data[c.pointer], nil
	})
}

func (c *CircularClient) Unread(takeback []byte) {
	c.unreader.Unread(takeback)
}

func (c *CircularClient) Write(b []byte) error {
	c.written = append(c.written, b...)
	return nil
}

// Written returns everything written into the client so far.
func (c *CircularClient) Written() []byte {
	return c.written
}

func (*CircularClient) Remote() net.Addr {
	return nil
}

func (c *CircularClient) Close() error {
	c.closed = true
	return nil
}

func (c *CircularClient) IsClosed() bool {
	return c.closed
}
