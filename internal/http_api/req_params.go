package http_api

import (
	"errors"
	"net/http"
	"net/url"
)

// ReqParams wraps the parsed query string of an API request. None of the
// endpoints take a request body.
type ReqParams struct {
	url.Values
}

func NewReqParams(req *http.Request) (*ReqParams, error) {
	params, err := url.ParseQuery(req.URL.RawQuery)
	if err != nil {
		return nil, err
	}
	return &ReqParams{params}, nil
}

func (r *ReqParams) Get(key string) (string, error) {
	v, ok := r.Values[key]
	if !ok {
		return "", errors.New("key not in query params")
	}
	return v[0], nil
}
