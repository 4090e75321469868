package coachclient

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang-jwt/jwt/v5"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/pkg/entity"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	tokenTTL        = 5 * time.Minute
	tokenIssuer     = "lifeflow"
	maxResponseSize = 1 << 20
	statusSuccess   = "success"
)

type Config struct {
	URL             string
	Secret          string
	ChatAgentID     string
	InsightsAgentID string
	Timeout         time.Duration
}

// ServiceClaims identify this service to the coaching API.
type ServiceClaims struct {
	AgentID string `json:"agent_id"`
	jwt.RegisteredClaims
}

type agentRequest struct {
	Message string `json:"message"`
	AgentID string `json:"agent_id"`
}

type agentResponse[T any] struct {
	Status string `json:"status"`
	Result *T     `json:"result"`
}

type Client struct {
	cfg    Config
	secret []byte
	http   *http.Client
	now    func() time.Time
}

func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg:    cfg,
		secret: []byte(cfg.Secret),
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		now: time.Now,
	}
}

func (c *Client) Chat(ctx context.Context, message string) (*entity.CoachReply, error) {
	return callAgent[entity.CoachReply](ctx, c, c.cfg.ChatAgentID, message)
}

func (c *Client) GenerateInsights(ctx context.Context, prompt string) (*entity.InsightReport, error) {
	return callAgent[entity.InsightReport](ctx, c, c.cfg.InsightsAgentID, prompt)
}

func (c *Client) serviceToken(agentID string) (string, error) {
	now := c.now()
	claims := &ServiceClaims{
		AgentID: agentID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// callAgent sends one prompt to an agent. Every failure, including a reply
// whose status is not "success", is reported as ErrUpstreamUnavailable.
func callAgent[T any](ctx context.Context, c *Client, agentID, message string) (*T, error) {
	body, err := sonic.Marshal(agentRequest{Message: message, AgentID: agentID})
	if err != nil {
		return nil, errors.Join(errorvalues.ErrUpstreamUnavailable, errors.New("encoding request error: "+err.Error()))
	}
	token, err := c.serviceToken(agentID)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrUpstreamUnavailable, errors.New("signing service token error: "+err.Error()))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Join(errorvalues.ErrUpstreamUnavailable, errors.New("building request error: "+err.Error()))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrUpstreamUnavailable, errors.New("request error: "+err.Error()))
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Join(errorvalues.ErrUpstreamUnavailable, errors.New("unexpected status code: "+strconv.Itoa(resp.StatusCode)))
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, errors.Join(errorvalues.ErrUpstreamUnavailable, errors.New("reading response error: "+err.Error()))
	}
	var envelope agentResponse[T]
	if err := sonic.Unmarshal(data, &envelope); err != nil {
		return nil, errors.Join(errorvalues.ErrUpstreamUnavailable, errors.New("decoding response error: "+err.Error()))
	}
	if envelope.Status != statusSuccess {
		return nil, errors.Join(errorvalues.ErrUpstreamUnavailable, errors.New("agent status: "+envelope.Status))
	}
	if envelope.Result == nil {
		return new(T), nil
	}
	return envelope.Result, nil
}
