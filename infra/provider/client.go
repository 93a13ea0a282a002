// Package provider contains the concrete upstream clients. Each client holds
// its own http.Client with the timeout from config and performs at most one
// outbound attempt per invocation.
package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"worldinfo/pkg/domain"
)

// getJSON issues a single GET and decodes the JSON body into out. Transport,
// status and decode failures become UpstreamError carrying the provider name.
func getJSON(ctx context.Context, client *http.Client, providerName, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &domain.UpstreamError{Provider: providerName, Message: "failed to create request", Err: err}
	}
	return doJSON(client, providerName, req, out)
}

func doJSON(client *http.Client, providerName string, req *http.Request, out any) error {
	resp, err := client.Do(req)
	if err != nil {
		return &domain.UpstreamError{Provider: providerName, Message: "request failed", Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &domain.UpstreamError{
			Provider: providerName,
			Status:   resp.StatusCode,
			Message:  strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.UpstreamError{Provider: providerName, Message: "failed to decode response", Err: err}
	}
	return nil
}
