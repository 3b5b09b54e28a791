package client

import (
	"net"

	"github.com/indigo-web/nanohttp/config"
	"github.com/indigo-web/nanohttp/http"
	"github.com/indigo-web/nanohttp/http/headers"
	"github.com/indigo-web/nanohttp/http/status"
	"github.com/indigo-web/nanohttp/internal/buffer"
	"github.com/indigo-web/nanohttp/internal/tcp"
	"github.com/indigo-web/nanohttp/internal/transport/http1"
)

// Dialer opens a transport connection to the address. Overridable, so the
// session itself never decides how sockets appear.
type Dialer func(addr string) (net.Conn, error)

// Session drives a single connection through one request/response cycle at a
// time. All the memory it'll ever use is allocated at construction: the
// response returned by Do borrows the session's read buffer, so it is valid
// only until the next Do call and must not be retained.
type Session struct {
	dial       Dialer
	conf       *config.Config
	serializer *http1.Serializer
	readBuff   buffer.Buffer
	chunk      []byte
	resp       http.Response
	state      State
	err        error
}

// New returns a session with the general-purpose sizing profile.
func New() *Session {
	return NewWith(config.Default())
}

// NewSmall returns a session tuned for minimal memory footprint. Same state
// machine, same wire behavior, just smaller buffers and limits.
func NewSmall() *Session {
	return NewWith(config.Small())
}

func NewWith(conf *config.Config) *Session {
	conf = config.Fill(conf)

	return &Session{
		dial: func(addr string) (net.Conn, error) {
			return net.Dial("tcp", addr)
		},
		conf:       conf,
		serializer: http1.NewSerializer(conf.NET.WriteBufferSize),
		readBuff:   buffer.New(conf.NET.ReadBufferSize),
		chunk:      make([]byte, conf.NET.ReadBufferSize),
		resp: http.Response{
			Headers: headers.New(conf.Headers.Number),
		},
	}
}

// Dial overrides the dialer.
func (s *Session) Dial(d Dialer) *Session {
	s.dial = d
	return s
}

// State returns the current state of the cycle.
func (s *Session) State() State {
	return s.state
}

// Err returns the failure reason if the session is in the Failed state.
func (s *Session) Err() error {
	return s.err
}

// Do performs one complete cycle: connect, serialize and flush the request,
// then accumulate the response until it parses completely. The returned
// response borrows the session's buffers.
func (s *Session) Do(addr string, req *http.Request) (*http.Response, error) {
	s.state = Connecting
	s.err = nil

	conn, err := s.dial(addr)
	if err != nil {
		return nil, s.fail(err)
	}
	defer conn.Close()

	client := tcp.NewClient(conn, s.conf.NET.ReadTimeout, s.conf.NET.WriteTimeout, s.chunk)

	s.state = Sending
	raw, err := s.serializer.WriteRequest(req, addr)
	if err != nil {
		return nil, s.fail(err)
	}

	if err = client.Write(raw); err != nil {
		return nil, s.fail(err)
	}

	s.state = AwaitingResponse
	s.readBuff.Clear()

	for {
		data, err := client.Read()
		if err != nil {
			return nil, s.fail(err)
		}

		if !s.readBuff.Append(data) {
			return nil, s.fail(status.ErrResponseTooLarge)
		}

		s.state = ParsingResponse
		switch err = http1.ParseResponse(s.readBuff.Preview(), &s.resp); err {
		case nil:
			s.state = Done
			return &s.resp, nil
		case status.ErrIncompleteHeaders, status.ErrIncompleteBody:
			// not a failure: the message just isn't all here yet
			s.state = AwaitingResponse
		default:
			return nil, s.fail(err)
		}
	}
}

func (s *Session) fail(err error) error {
	s.state = Failed
	s.err = err

	return err
}
