package solana

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

// HTTPError represents an error returned from a raw HTTP request
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("POST %s failed with status %d %s: %s", e.URL, e.StatusCode, e.Status, e.Body)
}

// RawClient submits a sendTransaction payload over bare HTTP JSON-RPC,
// bypassing the typed client stack. It exists to disambiguate one specific
// failure pattern: the typed client choked on the response, but the
// transaction may have been accepted. The raw response is parsed with
// minimal assumptions so a valid signature can still be recovered.
type RawClient struct {
	url        string
	httpClient *http.Client
}

// NewRawClient creates a raw JSON-RPC transport for one endpoint.
func NewRawClient(url string, timeout time.Duration) *RawClient {
	return &RawClient{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type rawRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rawResponse struct {
	Result string `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Broadcast submits the same transaction bytes the normal path sent. A
// successful parse yields the accepted signature; anything else is an error
// and the probe gives up (it is never retried).
func (c *RawClient) Broadcast(ctx context.Context, txBytes []byte) (solana.Signature, error) {
	payload, err := json.Marshal(rawRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "sendTransaction",
		Params: []interface{}{
			base64.StdEncoding.EncodeToString(txBytes),
			map[string]interface{}{
				"encoding":      "base64",
				"skipPreflight": false,
			},
		},
	})
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to encode raw request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to build raw request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "raw transport request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to read raw response")
	}

	if resp.StatusCode != http.StatusOK {
		return solana.Signature{}, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        c.url,
			Body:       string(body),
		}
	}

	var parsed rawResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to decode raw response")
	}
	if parsed.Error != nil {
		return solana.Signature{}, fmt.Errorf("raw send rejected: %d %s", parsed.Error.Code, parsed.Error.Message)
	}
	if parsed.Result == "" {
		return solana.Signature{}, errors.New("raw response carried no signature")
	}

	signature, err := solana.SignatureFromBase58(parsed.Result)
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "raw response signature is malformed")
	}
	return signature, nil
}
