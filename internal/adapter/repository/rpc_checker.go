package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/dushebaa/chaindetails/internal/config"
	"github.com/dushebaa/chaindetails/internal/usecase"
)

// Compile-time check
var _ usecase.RPCChecker = (*rpcChecker)(nil)

const defaultProbeTimeout = 5 * time.Second

type rpcChecker struct {
	client     *fasthttp.Client
	probeCache *cache.Cache
	timeout    time.Duration
	logger     *zap.Logger
}

// NewRPCChecker builds the liveness checker. Probe results are memoized for
// the configured TTL so an endpoint shared by several chains is only probed
// once per run.
func NewRPCChecker(cfg config.CheckerConfig, logger *zap.Logger) usecase.RPCChecker {
	timeout := cfg.ProbeTimeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	ttl := cfg.ProbeCacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	return &rpcChecker{
		client: &fasthttp.Client{
			ReadTimeout: timeout,
		},
		probeCache: cache.New(ttl, 2*ttl),
		timeout:    timeout,
		logger:     logger.Named("RPCChecker"),
	}
}

// checkPayload is the standard JSON-RPC request to check node health.
var checkPayload = []byte(`{"jsonrpc":"2.0","method":"eth_blockNumber","params":[],"id":1}`)

// JSONRPCResponse defines the basic structure for a JSON-RPC response.
type JSONRPCResponse struct {
	ID      interface{}     `json:"id"`
	Jsonrpc string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *JSONRPCError   `json:"error,omitempty"`
}

// JSONRPCError defines the structure for a JSON-RPC error.
type JSONRPCError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// CheckRPC probes an endpoint with eth_blockNumber. Secure-websocket
// endpoints are dead by definition (the probe cannot run over that
// transport) and infura-hosted endpoints are trusted without a probe to
// avoid rate-limit and auth friction; neither case touches the network.
func (c *rpcChecker) CheckRPC(ctx context.Context, rpcURL string) (isWorking bool, latency time.Duration, err error) {
	if strings.HasPrefix(rpcURL, "wss://") {
		c.logger.Debug("Skipping WSS endpoint", zap.String("url", rpcURL))
		return false, 0, nil
	}

	if isTrustedHost(rpcURL) {
		c.logger.Debug("Trusted provider, skipping probe", zap.String("url", rpcURL))
		return true, 0, nil
	}

	if x, found := c.probeCache.Get(rpcURL); found {
		if working, ok := x.(bool); ok {
			c.logger.Debug("Probe cache hit", zap.String("url", rpcURL), zap.Bool("working", working))
			return working, 0, nil
		}
	}

	isWorking, latency, err = c.probe(ctx, rpcURL)
	c.probeCache.SetDefault(rpcURL, isWorking)
	return isWorking, latency, err
}

func (c *rpcChecker) probe(ctx context.Context, rpcURL string) (bool, time.Duration, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(rpcURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(checkPayload)

	startTime := time.Now()

	timeout := c.timeout
	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline {
		requestTimeout := time.Until(deadline)
		if requestTimeout > 0 && requestTimeout < timeout {
			timeout = requestTimeout
		}
	}

	err := c.client.DoTimeout(req, resp, timeout)
	latency := time.Since(startTime)

	if err != nil {
		c.logger.Debug("RPC probe HTTP request failed", zap.String("url", rpcURL), zap.Error(err))
		return false, latency, fmt.Errorf("http request failed: %w", err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		c.logger.Debug("RPC probe returned non-OK status",
			zap.String("url", rpcURL),
			zap.Int("statusCode", resp.StatusCode()))
		return false, latency, fmt.Errorf("non-OK status: %d", resp.StatusCode())
	}

	// Basic check for valid JSON-RPC structure
	var rpcResp JSONRPCResponse
	if err := json.Unmarshal(resp.Body(), &rpcResp); err != nil {
		c.logger.Debug("RPC probe failed to unmarshal JSON response",
			zap.String("url", rpcURL),
			zap.Error(err))
		return false, latency, fmt.Errorf("invalid JSON response: %w", err)
	}

	if rpcResp.Error != nil {
		c.logger.Debug("RPC probe returned JSON-RPC error",
			zap.String("url", rpcURL),
			zap.Int("errorCode", rpcResp.Error.Code),
			zap.String("errorMessage", rpcResp.Error.Message))
		return false, latency, fmt.Errorf("json-rpc error: %d %s", rpcResp.Error.Code, rpcResp.Error.Message)
	}

	if rpcResp.Jsonrpc != "2.0" || rpcResp.Result == nil {
		c.logger.Debug("RPC probe returned invalid JSON-RPC structure",
			zap.String("url", rpcURL))
		return false, latency, fmt.Errorf("invalid JSON-RPC structure")
	}

	return true, latency, nil
}

// isTrustedHost reports whether the endpoint host belongs to a provider that
// is assumed live without probing.
func isTrustedHost(rpcURL string) bool {
	u, err := url.Parse(rpcURL)
	if err != nil || u.Host == "" {
		return strings.Contains(strings.ToLower(rpcURL), "infura")
	}
	return strings.Contains(strings.ToLower(u.Host), "infura")
}
