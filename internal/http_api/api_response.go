package http_api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/Mingdi-Luo/EE533-Lab1/internal/lg"
)

type Decorator func(APIHandler) APIHandler

type APIHandler func(http.ResponseWriter, *http.Request, httprouter.Params) (interface{}, error)

type Err struct {
	Code int
	Text string
}

func (e Err) Error() string {
	return e.Text
}

// PlainText writes the handler's string or []byte result as the raw
// response body.
func PlainText(f APIHandler) APIHandler {
	return func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) (interface{}, error) {
		code := 200
		data, err := f(w, req, ps)
		if err != nil {
			code = err.(Err).Code
			data = err.Error()
		}
		switch d := data.(type) {
		case string:
			w.WriteHeader(code)
			io.WriteString(w, d)
		case []byte:
			w.WriteHeader(code)
			w.Write(d)
		default:
			panic(fmt.Sprintf("unknown response type %T", data))
		}
		return nil, nil
	}
}

// V1 writes the handler's result in the v1 API format: JSON for
// structured data, raw bytes for string and []byte, and a JSON message
// object for errors.
func V1(f APIHandler) APIHandler {
	return func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) (interface{}, error) {
		data, err := f(w, req, ps)
		if err != nil {
			respondV1(w, err.(Err).Code, err)
			return nil, nil
		}
		respondV1(w, 200, data)
		return nil, nil
	}
}

func respondV1(w http.ResponseWriter, code int, data interface{}) {
	var response []byte
	var isJSON bool

	if code == 200 {
		switch d := data.(type) {
		case string:
			response = []byte(d)
		case []byte:
			response = d
		case nil:
			response = []byte{}
		default:
			var err error
			response, err = json.Marshal(data)
			if err != nil {
				code = 500
				data = err
			}
			isJSON = true
		}
	}

	if code != 200 {
		isJSON = true
		response, _ = json.Marshal(struct {
			Message string `json:"message"`
		}{fmt.Sprintf("%s", data)})
	}

	if isJSON {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
	}
	w.Header().Set("X-MSGD-Content-Type", "msgd; version=1.0")
	w.WriteHeader(code)
	w.Write(response)
}

func Decorate(f APIHandler, ds ...Decorator) httprouter.Handle {
	decorated := f
	for _, decorate := range ds {
		decorated = decorate(decorated)
	}
	return func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) {
		decorated(w, req, ps)
	}
}

// Log is a Decorator that emits one INFO line per request.
func Log(logf lg.AppLogFunc) Decorator {
	return func(f APIHandler) APIHandler {
		return func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) (interface{}, error) {
			start := time.Now()
			response, err := f(w, req, ps)
			status := 200
			if e, ok := err.(Err); ok {
				status = e.Code
			}
			logf(lg.INFO, "%d %s %s (%s) %s",
				status, req.Method, req.URL.RequestURI(), req.RemoteAddr, time.Since(start))
			return response, err
		}
	}
}

func errHandler(logf lg.AppLogFunc, code int, text string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		Decorate(func(http.ResponseWriter, *http.Request, httprouter.Params) (interface{}, error) {
			return nil, Err{code, text}
		}, Log(logf), V1)(w, req, nil)
	})
}

func LogPanicHandler(logf lg.AppLogFunc) func(w http.ResponseWriter, req *http.Request, p interface{}) {
	return func(w http.ResponseWriter, req *http.Request, p interface{}) {
		logf(lg.ERROR, "panic in HTTP handler - %s", p)
		errHandler(logf, 500, "INTERNAL_ERROR").ServeHTTP(w, req)
	}
}

func LogNotFoundHandler(logf lg.AppLogFunc) http.Handler {
	return errHandler(logf, 404, "NOT_FOUND")
}

func LogMethodNotAllowedHandler(logf lg.AppLogFunc) http.Handler {
	return errHandler(logf, 405, "METHOD_NOT_ALLOWED")
}
