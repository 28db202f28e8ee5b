package response

import "net/http"

// Messages used when a handler does not supply its own.
const (
	MsgBadJSON       = "invalid JSON body"
	MsgValidation    = "validation failed"
	MsgNotFound      = "Not found"
	MsgTooLarge      = "request body too large"
	MsgTooMany       = "too many requests"
	MsgBusy          = "server busy"
	MsgTimeout       = "timeout"
	MsgInternalError = "internal error"
)

// CodeMsgMap gives the default message for each status the API emits.
var CodeMsgMap = map[int]string{
	http.StatusBadRequest:            MsgBadJSON,
	http.StatusNotFound:              MsgNotFound,
	http.StatusRequestEntityTooLarge: MsgTooLarge,
	http.StatusTooManyRequests:       MsgTooMany,
	http.StatusServiceUnavailable:    MsgBusy,
	http.StatusGatewayTimeout:        MsgTimeout,
	http.StatusInternalServerError:   MsgInternalError,
}
