// Package engineclient adapts a remote spectral-calculation service to the
// engine.Engine contract. The service owns the integration tables and the
// physics; this client only moves JSON.
package engineclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/LBNL-ETA/opticalc/internal/engine"
)

type Client struct {
	baseURL string
	http    *http.Client
}

var _ engine.Engine = (*Client)(nil)

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type opticalRequest struct {
	Standard string         `json:"standard"`
	Method   engine.Method  `json:"method"`
	Layers   []engine.Layer `json:"layers"`
}

type colorRequest struct {
	Standard string         `json:"standard"`
	Layers   []engine.Layer `json:"layers"`
}

type thermalIRRequest struct {
	Standard string       `json:"standard"`
	Layer    engine.Layer `json:"layer"`
}

func (c *Client) EvaluateOptical(ctx context.Context, std engine.Standard, layers []engine.Layer, method engine.Method) (*engine.OpticalResults, error) {
	var out engine.OpticalResults
	req := opticalRequest{Standard: std.Name(), Method: method, Layers: layers}
	if err := c.postJSON(ctx, "/v1/optical", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EvaluateColor(ctx context.Context, std engine.Standard, layers []engine.Layer) (*engine.ColorResults, error) {
	var out engine.ColorResults
	req := colorRequest{Standard: std.Name(), Layers: layers}
	if err := c.postJSON(ctx, "/v1/color", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EvaluateThermalIR(ctx context.Context, std engine.Standard, layer engine.Layer) (*engine.ThermalIRResults, error) {
	var out engine.ThermalIRResults
	req := thermalIRRequest{Standard: std.Name(), Layer: layer}
	if err := c.postJSON(ctx, "/v1/thermal-ir", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// postJSON sends one request and decodes the response. A status of 400 or
// higher is an error carrying the response body; there are no retries, a
// failed evaluation is terminal for the current summary.
func (c *Client) postJSON(ctx context.Context, path string, payload any, out any) error {
	blob, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(blob))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return fmt.Errorf("POST %s failed status=%d body=%s", path, resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("POST %s: decode response: %w", path, err)
	}
	return nil
}
