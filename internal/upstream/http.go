package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes caps how much of any upstream body is read.
const maxBodyBytes = 2 << 20

// Response is a fully read upstream response.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// OK reports whether the status is 2xx.
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// errorPayload is the error envelope the platform APIs use.
type errorPayload struct {
	Errors []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// Do executes req and reads the body. Transport failures and oversized bodies
// come back as *Error; any HTTP status is returned as a Response for the
// caller to interpret.
func Do(ctx context.Context, client *http.Client, source string, req *http.Request) (*Response, error) {
	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, TransportError(ctx, source, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, TransportError(ctx, source, req.URL.Path, fmt.Errorf("read body: %w", err))
	}
	if len(body) > maxBodyBytes {
		return nil, NewError(ErrorBadData, source, req.URL.Path, fmt.Errorf("body exceeds %d bytes", maxBodyBytes))
	}
	return &Response{Status: resp.StatusCode, Header: resp.Header, Body: body}, nil
}

// StatusError builds the categorized error for a non-2xx response, keeping
// any messages the upstream put in its error envelope.
func StatusError(source, endpoint string, resp *Response) *Error {
	e := &Error{
		Category: CategoryForStatus(resp.Status),
		Source:   source,
		Endpoint: endpoint,
		Status:   resp.Status,
		Messages: PayloadMessages(resp.Body),
	}
	return e
}

// PayloadMessages extracts the messages of an error envelope. Bodies that are
// not an error envelope yield nil.
func PayloadMessages(body []byte) []string {
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil
	}
	msgs := make([]string, 0, len(payload.Errors))
	for _, e := range payload.Errors {
		if e.Message != "" {
			msgs = append(msgs, e.Message)
		}
	}
	if len(msgs) == 0 {
		return nil
	}
	return msgs
}

// DecodeJSON decodes a 2xx body into T. A 2xx body that carries an error
// envelope is reported as rejected.
func DecodeJSON[T any](source, endpoint string, resp *Response) (T, error) {
	var out T
	if !resp.OK() {
		return out, StatusError(source, endpoint, resp)
	}
	if msgs := PayloadMessages(resp.Body); len(msgs) > 0 {
		return out, &Error{Category: ErrorRejected, Source: source, Endpoint: endpoint, Status: resp.Status, Messages: msgs}
	}
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return out, NewError(ErrorBadData, source, endpoint, err)
	}
	return out, nil
}
