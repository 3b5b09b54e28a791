package router

import (
	"github.com/indigo-web/nanohttp/http"
	"github.com/indigo-web/nanohttp/http/status"
)

// Static is the reference routing table: exact path match, nothing else. It
// exists to have something to plug into the server out of the box, anything
// more elaborate belongs to the application.
type Static struct {
	routes   map[string]Handler
	notFound Handler
}

func NewStatic() *Static {
	return &Static{
		routes: make(map[string]Handler),
	}
}

// Route registers a handler for the exact path.
func (s *Static) Route(path string, handler Handler) *Static {
	s.routes[path] = handler
	return s
}

// NotFound overrides the fallback handler.
func (s *Static) NotFound(handler Handler) *Static {
	s.notFound = handler
	return s
}

func (s *Static) OnRequest(request *http.Request) *http.Response {
	if handler, found := s.routes[request.Path]; found {
		return handler(request)
	}

	if s.notFound != nil {
		return s.notFound(request)
	}

	return ErrorResponse(status.ErrNotFound)
}

func (s *Static) OnError(request *http.Request, err error) *http.Response {
	return ErrorResponse(err)
}
