package status

// HTTPError is a failure that maps onto a response status code. The server
// driver answers client-caused errors with the carried code instead of
// dropping the connection silently.
type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	// malformed input
	ErrBadRequest         = NewError(BadRequest, "bad request")
	ErrMissingRequestLine = NewError(BadRequest, "missing request line")
	ErrMissingMethod      = NewError(BadRequest, "missing method")
	ErrMissingPath        = NewError(BadRequest, "missing path")
	ErrMissingVersion     = NewError(BadRequest, "missing version")
	ErrMissingStatusLine  = NewError(BadRequest, "missing status line")
	ErrBadStatusCode      = NewError(BadRequest, "malformed status code")
	ErrBadEncoding        = NewError(BadRequest, "malformed header block encoding")
	ErrMethodNotSupported = NewError(NotImplemented, "request method is not supported")

	// incomplete input. Not failures per se: drivers treat them as a signal
	// to read more bytes, and only report them if the buffer or the timeout
	// is exhausted first
	ErrIncompleteHeaders = NewError(BadRequest, "incomplete headers")
	ErrIncompleteBody    = NewError(BadRequest, "incomplete message body")

	// capacity exceeded
	ErrTooManyHeaders   = NewError(RequestHeaderFieldsTooLarge, "too many headers")
	ErrRequestTooLarge  = NewError(RequestEntityTooLarge, "request exceeds the buffer")
	ErrResponseTooLarge = NewError(InternalServerError, "response exceeds the buffer")

	// i/o
	ErrTimeout         = NewError(RequestTimeout, "i/o timeout")
	ErrCloseConnection = NewError(CloseConnection, "actively closing the connection")

	ErrNotFound            = NewError(NotFound, "not found")
	ErrInternalServerError = NewError(InternalServerError, "internal server error")
)
