package http

import (
	"time"

	"github.com/indigo-web/nanohttp/config"
	"github.com/indigo-web/nanohttp/http"
	"github.com/indigo-web/nanohttp/http/status"
	"github.com/indigo-web/nanohttp/internal/buffer"
	"github.com/indigo-web/nanohttp/internal/tcp"
	"github.com/indigo-web/nanohttp/internal/transport/http1"
	"github.com/indigo-web/nanohttp/router"
)

// Server runs request/response cycles against a router. It owns no buffers
// itself: each connection brings its own, so no two cycles ever share
// memory.
type Server struct {
	router router.Router
	conf   *config.Config
}

func NewServer(r router.Router, conf *config.Config) *Server {
	return &Server{
		router: r,
		conf:   conf,
	}
}

// Serve handles exactly one request/response cycle on the client and closes
// it. Connections are not kept alive: whatever the outcome, the peer gets at
// most one response. A response carrying status.CloseConnection is never
// written, the connection is simply dropped.
func (s *Server) Serve(client tcp.Client, req *http.Request, buff *buffer.Buffer, serializer *http1.Serializer) {
	if resp := s.serve(client, req, buff); resp != nil && resp.Code != status.CloseConnection {
		s.respond(client, resp, serializer)
	}

	_ = client.Close()
}

// serve reads and parses the request, asking the router for a response. A
// nil response means the failure was unrecoverable and the connection is to
// be closed without an answer.
func (s *Server) serve(client tcp.Client, req *http.Request, buff *buffer.Buffer) *http.Response {
	deadline := time.Now().Add(s.conf.NET.IdleTimeout)

	for {
		data, err := client.Read()
		if err != nil {
			if err == status.ErrTimeout {
				return s.router.OnError(req, status.ErrTimeout)
			}

			// the transport itself broke, nobody's listening anymore
			return nil
		}

		if !buff.Append(data) {
			return s.router.OnError(req, status.ErrRequestTooLarge)
		}

		head, body, err := http1.SplitMessage(buff.Preview())
		if err == status.ErrIncompleteHeaders {
			if time.Now().After(deadline) {
				return s.router.OnError(req, status.ErrTimeout)
			}

			continue
		}
		if err != nil {
			return s.router.OnError(req, err)
		}

		if err = http1.ParseRequest(head, body, req); err != nil {
			return s.router.OnError(req, err)
		}

		if length, ok := req.ContentLength(); ok {
			if len(req.Body) < length {
				// the body isn't all here yet, keep accumulating
				if time.Now().After(deadline) {
					return s.router.OnError(req, status.ErrTimeout)
				}

				continue
			}

			req.Body = req.Body[:length]
		}

		return s.router.OnRequest(req)
	}
}

func (s *Server) respond(client tcp.Client, resp *http.Response, serializer *http1.Serializer) {
	raw, err := serializer.WriteResponse(resp)
	if err != nil {
		// the response doesn't fit the write buffer. An error response is
		// guaranteed to: it carries no user payload
		raw, err = serializer.WriteResponse(router.ErrorResponse(status.ErrResponseTooLarge))
		if err != nil {
			return
		}
	}

	_ = client.Write(raw)
}
