package router

import (
	"github.com/indigo-web/nanohttp/http"
	"github.com/indigo-web/nanohttp/http/headers"
	"github.com/indigo-web/nanohttp/http/status"
)

// Router is the capability the server driver is polymorphic over: given a
// parsed request, produce a response. OnError receives failures the driver
// itself ran into (malformed input, timeouts, capacity), so the peer still
// gets an answer; the request passed alongside may be only partially filled.
type Router interface {
	OnRequest(request *http.Request) *http.Response
	OnError(request *http.Request, err error) *http.Response
}

type (
	Handler      func(*http.Request) *http.Response
	ErrorHandler func(*http.Request, error) *http.Response
)

type simple struct {
	handler    Handler
	errHandler ErrorHandler
}

// Simple wraps a pair of plain functions into a Router. A nil errHandler
// falls back to ErrorResponse.
func Simple(handler Handler, errHandler ErrorHandler) Router {
	if errHandler == nil {
		errHandler = func(_ *http.Request, err error) *http.Response {
			return ErrorResponse(err)
		}
	}

	return simple{
		handler:    handler,
		errHandler: errHandler,
	}
}

func (s simple) OnRequest(request *http.Request) *http.Response {
	return s.handler(request)
}

func (s simple) OnError(request *http.Request, err error) *http.Response {
	return s.errHandler(request, err)
}

// ErrorResponse renders an error into a response. Errors carrying a status
// code answer with it, anything else is a plain 500.
func ErrorResponse(err error) *http.Response {
	code := status.InternalServerError
	if httpErr, ok := err.(status.HTTPError); ok {
		code = httpErr.Code
	}

	hdrs := headers.New(1)
	_ = hdrs.Add("Content-Type", "text/plain")

	return &http.Response{
		Code:    code,
		Headers: hdrs,
		Body:    http.Text(err.Error()),
	}
}
