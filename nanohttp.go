package nanohttp

import (
	"net"
	"sync"

	"github.com/indigo-web/nanohttp/config"
	"github.com/indigo-web/nanohttp/http"
	"github.com/indigo-web/nanohttp/http/headers"
	"github.com/indigo-web/nanohttp/internal/buffer"
	httpserver "github.com/indigo-web/nanohttp/internal/server/http"
	"github.com/indigo-web/nanohttp/internal/server/tcp"
	tcpclient "github.com/indigo-web/nanohttp/internal/tcp"
	"github.com/indigo-web/nanohttp/internal/transport/http1"
	"github.com/indigo-web/nanohttp/router"
)

// App glues the accept loop, the per-connection buffers and the router
// together. Usage:
//
//	err := nanohttp.New(":8080").Serve(myRouter)
type App struct {
	addr string
	conf *config.Config

	// Serve blocks, so Stop and GracefulShutdown arrive from another
	// goroutine. The mutex orders them against the server registration,
	// and stopped catches a shutdown that outruns ServeOn
	mu      sync.Mutex
	server  *tcp.Server
	stopped bool
}

// New returns an App listening on addr once served.
func New(addr string) *App {
	return &App{
		addr: addr,
		conf: config.Default(),
	}
}

// Tune replaces default settings. Zero fields are backfilled with defaults.
func (a *App) Tune(conf *config.Config) *App {
	a.conf = config.Fill(conf)
	return a
}

// Serve binds the address and runs the accept loop until Stop or
// GracefulShutdown is called. It blocks for as long as the app runs.
func (a *App) Serve(r router.Router) error {
	sock, err := net.Listen("tcp", a.addr)
	if err != nil {
		return err
	}

	return a.ServeOn(sock, r)
}

// ServeOn runs the accept loop on an already bound listener. Useful when the
// caller wants to pick the port itself, e.g. in tests via "127.0.0.1:0".
func (a *App) ServeOn(sock net.Listener, r router.Router) error {
	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		return sock.Close()
	}

	server := tcp.NewServer(sock, a.newConnCallback(r))
	a.server = server
	a.mu.Unlock()

	return server.Start()
}

// Stop closes the listener along with all the alive connections. Stopping
// an app that isn't serving yet prevents it from ever starting.
func (a *App) Stop() error {
	if server := a.shutdown(); server != nil {
		return server.Stop()
	}

	return nil
}

// GracefulShutdown closes the listener but lets the alive connections finish
// their cycles.
func (a *App) GracefulShutdown() error {
	if server := a.shutdown(); server != nil {
		return server.GracefulShutdown()
	}

	return nil
}

func (a *App) shutdown() *tcp.Server {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopped = true

	return a.server
}

// newConnCallback prepares the callback run on each accepted connection.
// Every connection gets its own pre-allocated buffers, so serving a request
// allocates nothing.
func (a *App) newConnCallback(r router.Router) func(net.Conn) {
	server := httpserver.NewServer(r, a.conf)

	return func(conn net.Conn) {
		client := tcpclient.NewClient(
			conn,
			a.conf.NET.ReadTimeout, a.conf.NET.WriteTimeout,
			make([]byte, a.conf.NET.ReadBufferSize),
		)
		req := http.NewRequest(headers.New(a.conf.Headers.Number))
		buff := buffer.New(a.conf.NET.ReadBufferSize)
		serializer := http1.NewSerializer(a.conf.NET.WriteBufferSize)

		server.Serve(client, req, &buff, serializer)
	}
}
