package httpjson

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	derr "github.com/khwalser/nextownair-site/internal/domain/errors"
)

// Do issues the request, buffers the full body and decodes it into out.
//
// Both upstream providers report failures inside a 200 body: a top-level
// "error" or "errors" field marks the call failed no matter what the
// transport status says, so success is decided on payload shape.
func Do(httpClient *http.Client, req *http.Request, out any) error {
	resp, err := httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("%w: do request: %v", derr.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", derr.ErrTransport, err)
	}

	var probe struct {
		Error  json.RawMessage `json:"error"`
		Errors json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return fmt.Errorf("%w: decode response: %v", derr.ErrUpstreamRequest, err)
	}
	if reported(probe.Error) {
		return fmt.Errorf("%w: upstream reported: %s", derr.ErrUpstreamRequest, probe.Error)
	}
	if reported(probe.Errors) {
		return fmt.Errorf("%w: upstream reported: %s", derr.ErrUpstreamRequest, probe.Errors)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", derr.ErrUpstreamRequest, err)
	}
	return nil
}

func reported(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
