package http_api

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// NewDeadlineTransport is an http.Transport with connect and read deadlines
func NewDeadlineTransport(connectTimeout time.Duration, requestTimeout time.Duration) *http.Transport {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   connectTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ResponseHeaderTimeout: requestTimeout,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
	}
	return transport
}

type Client struct {
	c *http.Client
}

func NewClient(connectTimeout time.Duration, requestTimeout time.Duration) *Client {
	return &Client{
		c: &http.Client{
			Transport: NewDeadlineTransport(connectTimeout, requestTimeout),
			Timeout:   requestTimeout,
		},
	}
}

// GETV1 performs a GET request against a v1 API endpoint
// and unmarshals the JSON response body into v
func (c *Client) GETV1(endpoint string, v interface{}) (int, error) {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return 0, err
	}

	req.Header.Add("Accept", "application/vnd.msgd; version=1.0")

	resp, err := c.c.Do(req)
	if err != nil {
		return 0, err
	}

	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return resp.StatusCode, err
	}

	if resp.StatusCode != 200 {
		return resp.StatusCode, fmt.Errorf("got response %s %q", resp.Status, respBody)
	}

	err = json.Unmarshal(respBody, &v)
	if err != nil {
		return resp.StatusCode, err
	}

	return resp.StatusCode, nil
}
