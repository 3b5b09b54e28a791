package tcp

import (
	"net"
	"sync"
)

type onConnection func(net.Conn)

// Server owns the accept loop. Each accepted connection is handed to the
// callback on its own goroutine and tracked, so Stop can take everybody
// down at once.
type Server struct {
	sock     net.Listener
	onConn   onConnection
	mu       sync.Mutex
	conns    map[net.Conn]struct{}
	shutdown bool
}

func NewServer(sock net.Listener, onConn onConnection) *Server {
	return &Server{
		sock:   sock,
		onConn: onConn,
		conns:  map[net.Conn]struct{}{},
	}
}

func (s *Server) Start() error {
	wg := new(sync.WaitGroup)

	for {
		conn, err := s.sock.Accept()
		if err != nil {
			wg.Wait()

			if s.isShutdown() {
				return nil
			}

			return err
		}

		s.track(conn)
		wg.Add(1)
		go s.connHandler(wg, conn)
	}
}

func (s *Server) stopListener() error {
	s.mu.Lock()
	s.shutdown = true
	s.mu.Unlock()

	return s.sock.Close()
}

// Stop shuts the listener and ALL the connections down.
func (s *Server) Stop() error {
	if err := s.stopListener(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for conn := range s.conns {
		_ = conn.Close()
	}

	return nil
}

// GracefulShutdown stops the listener, leaving the connections free to end
// their lives peacefully.
func (s *Server) GracefulShutdown() error {
	return s.stopListener()
}

func (s *Server) connHandler(wg *sync.WaitGroup, conn net.Conn) {
	s.onConn(conn)
	s.untrack(conn)
	wg.Done()
}

func (s *Server) track(conn net.Conn) {
	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}

func (s *Server) isShutdown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.shutdown
}
