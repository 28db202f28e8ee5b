// Package ez registers typed request/response actions on a gin router and
// maps their errors onto the wire error body.
package ez

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	resp "gin-user-rpc/internal/transport/http/response"
	"gin-user-rpc/pkg/contract"
)

type EZ struct{ g gin.IRoutes }

func New(g gin.IRoutes) EZ { return EZ{g: g} }

// 绑定方式
type Binder string

const (
	BindJSON Binder = "json" // JSON body
	BindNone Binder = "none" // handler reads c.Param itself
)

// AErr carries the status and body of a failed action.
type AErr struct {
	Code   int
	Msg    string
	Issues []contract.FieldIssue
	Err    error
}

func (e *AErr) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "action error"
}

func (e *AErr) Unwrap() error { return e.Err }

func BadRequest(msg string) error { return &AErr{Code: http.StatusBadRequest, Msg: msg} }
func NotFound(msg string) error   { return &AErr{Code: http.StatusNotFound, Msg: msg} }
func Invalid(issues []contract.FieldIssue, err error) error {
	return &AErr{Code: http.StatusBadRequest, Msg: resp.MsgValidation, Issues: issues, Err: err}
}
func Internal(msg string, err error) error {
	return &AErr{Code: http.StatusInternalServerError, Msg: msg, Err: err}
}

// Action describes one route: I is the bound input, O the success body.
type Action[I any, O any] struct {
	Method  string // "GET" | "POST" | "PUT" | "DELETE"
	Path    string // e.g. "/users/:id"
	Binder  Binder
	Status  int // success status, 200 when zero
	Handler func(c *gin.Context, in *I) (O, error)
}

func RegisterAction[I any, O any](e EZ, a Action[I, O]) {
	status := a.Status
	if status == 0 {
		status = http.StatusOK
	}
	h := func(c *gin.Context) {
		var in I
		if a.Binder == BindJSON {
			if err := c.ShouldBindJSON(&in); err != nil {
				writeErr(c, bindErr(err))
				return
			}
		}

		out, err := a.Handler(c, &in)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(status, out)
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default:
		e.g.POST(a.Path, h)
	}
}

func bindErr(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return &AErr{Code: http.StatusRequestEntityTooLarge, Err: err}
	}
	// a field of the wrong type is a field-level rejection, not a broken body
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field != "" {
		return Invalid([]contract.FieldIssue{{Field: ute.Field, Message: typeMessage(ute)}}, nil)
	}
	return &AErr{Code: http.StatusBadRequest, Msg: resp.MsgBadJSON, Err: err}
}

func typeMessage(ute *json.UnmarshalTypeError) string {
	if ute.Type == nil {
		return "has the wrong type"
	}
	return "must be a " + ute.Type.Kind().String()
}

func writeErr(c *gin.Context, err error) {
	var ae *AErr
	if !errors.As(err, &ae) {
		ae = &AErr{Code: http.StatusInternalServerError, Err: err}
	}
	// only server faults reach the error log
	if ae.Err != nil && ae.Code >= http.StatusInternalServerError {
		_ = c.Error(ae.Err)
	}
	if ae.Issues != nil {
		body := resp.Invalid(ae.Issues)
		c.JSON(ae.Code, body)
		return
	}
	msg := ae.Msg
	if ae.Code == http.StatusInternalServerError {
		msg = "" // never leak internals
	}
	c.JSON(ae.Code, resp.Error(ae.Code, msg))
}
