// Package sms implements the templated-SMS gateway and its outbound queue.
package sms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// Positional token parameter names of the provider's lookup endpoint.
var tokenParams = [...]string{"token", "token2", "token3"}

// kavenegarGateway sends templated SMS through the provider's verify/lookup
// endpoint. Each message references a pre-registered template by name and
// fills its positional tokens.
type kavenegarGateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewKavenegarGateway is the constructor for kavenegarGateway.
func NewKavenegarGateway(cfg *config.Config) (service.SMSGateway, error) {
	if cfg.SMS == nil || cfg.SMS.APIKey == "" {
		return nil, errors.New("sms api key must be provided")
	}

	baseURL := strings.TrimSuffix(cfg.SMS.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.kavenegar.com/v1"
	}

	return &kavenegarGateway{
		baseURL: baseURL,
		apiKey:  cfg.SMS.APIKey,
		client:  &http.Client{Timeout: cfg.SMS.Timeout},
	}, nil
}

// SendPattern delivers one templated message. Any non-200 response is an
// error; the body is included for diagnostics.
func (g *kavenegarGateway) SendPattern(ctx context.Context, msg service.SMSMessage) error {
	if len(msg.Tokens) == 0 || len(msg.Tokens) > len(tokenParams) {
		return errors.Errorf("unsupported token count %d", len(msg.Tokens))
	}

	params := url.Values{}
	params.Set("receptor", msg.Receptor)
	params.Set("template", msg.Template)
	for i, token := range msg.Tokens {
		params.Set(tokenParams[i], token)
	}

	endpoint := fmt.Sprintf("%s/%s/verify/lookup.json?%s", g.baseURL, g.apiKey, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build sms request")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to call sms provider")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return errors.Errorf("sms provider returned %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
