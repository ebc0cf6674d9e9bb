// Package serialapi talks to the instrument's HTTP bridge, which forwards
// command strings to the rig's serial line.
package serialapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
)

const (
	CommandPath    = "/serial/command"
	DefaultTimeout = 5 * time.Second
)

type Config struct {
	Host        string        `dialsdesc:"Instrument API host"`
	Port        int           `dialsdesc:"Instrument API port"`
	Timeout     time.Duration `dialsdesc:"Per-request timeout"`
	AutoConnect bool          `dialsdesc:"Connect to the API on startup"`
}

func DefaultConfig() *Config {
	return &Config{
		Host:    "127.0.0.1",
		Port:    6060,
		Timeout: DefaultTimeout,
	}
}

func (c *Config) Endpoint() Endpoint {
	return Endpoint{Host: c.Host, Port: c.Port}
}

// Endpoint is the host/port pair of the instrument API.
type Endpoint struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

func (e Endpoint) Address() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

func (e Endpoint) CommandURL() string {
	return "http://" + e.Address() + CommandPath
}

// ParseEndpoint accepts "host:port" or a bare host, in which case defaultPort is used.
func ParseEndpoint(s string, defaultPort int) (Endpoint, error) {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		if s == "" {
			return Endpoint{}, fmt.Errorf("empty address")
		}
		return Endpoint{Host: s, Port: defaultPort}, nil
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return Endpoint{}, fmt.Errorf("invalid port %q", portStr)
	}
	return Endpoint{Host: host, Port: port}, nil
}

// CommandRequest is the JSON body of every POST to CommandPath.
type CommandRequest struct {
	Command string `json:"command"`
}

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Code   int
	Status string
	URL    string
	Body   string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%d %s for url: %s", e.Code, http.StatusText(e.Code), e.URL)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

type Client struct {
	http *http.Client
	log  logr.Logger
}

func NewClient(timeout time.Duration, log logr.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

// Send POSTs a single command and waits for the response.
// Any transport error or non-2xx status is returned as an error.
func (c *Client) Send(ctx context.Context, ep Endpoint, command string) error {
	body, err := json.Marshal(CommandRequest{Command: command})
	if err != nil {
		return err
	}
	requestURL := ep.CommandURL()
	requestID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(body))
	if err != nil {
		c.log.Error(err, "error creating HTTP request", "url", requestURL)
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	c.log.V(1).Info("Calling", "method", http.MethodPost, "url", requestURL, "command", command, "request_id", requestID)
	res, err := c.http.Do(req)
	if err != nil {
		c.log.Error(err, "HTTP error", "command", command, "request_id", requestID)
		return err
	}
	defer res.Body.Close()
	c.log.V(1).Info("status code", "code", res.StatusCode, "request_id", requestID)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 256))
		return &StatusError{
			Code:   res.StatusCode,
			Status: res.Status,
			URL:    requestURL,
			Body:   string(bytes.TrimSpace(snippet)),
		}
	}
	_, _ = io.Copy(io.Discard, res.Body)
	return nil
}
