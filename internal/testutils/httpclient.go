package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
)

type Response struct {
	StatusCode int
	Header     http.Header
	Body       string
}

type TestRequestOpt func(*http.Request, *http.Response)

func MustBindJSON(v any) TestRequestOpt {
	return func(_ *http.Request, resp *http.Response) {
		if resp != nil {
			body, err := io.ReadAll(resp.Body)
			if err != nil {
				panic(err)
			}
			if err := json.Unmarshal(body, v); err != nil {
				panic(err)
			}
		}
	}
}

func WithHeader(key, value string) TestRequestOpt {
	return func(req *http.Request, _ *http.Response) {
		if req != nil {
			req.Header.Set(key, value)
		}
	}
}

func DoTestRequest(
	ts *httptest.Server, method, path string, body io.Reader, opts ...TestRequestOpt,
) Response {
	req, err := http.NewRequest(method, ts.URL+path, body) // nolint: noctx
	if err != nil {
		panic(err)
	}
	// run options that operate upon request
	for _, opt := range opts {
		opt(req, nil)
	}

	// the server's client is shared, so redirects are disabled on a copy
	client := &http.Client{
		Transport: ts.Client().Transport,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Do(req)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close() // nolint: errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		panic(err)
	}

	// run options that operate upon response, each with its own copy of the body
	for _, opt := range opts {
		resp.Body = io.NopCloser(bytes.NewReader(respBody))
		opt(nil, resp)
	}

	return Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       string(respBody),
	}
}
