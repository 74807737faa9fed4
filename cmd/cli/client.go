package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

type client struct {
	baseURL string
	cpf     string
	timeout time.Duration
}

func newClient(baseURL, cpf string, timeout time.Duration) *client {
	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		cpf:     cpf,
		timeout: timeout,
	}
}

// do sends one request and returns the body of a 2xx response. Error bodies
// of the form {"error": "..."} become Go errors carrying that message.
func (c *client) do(method, path, query string, payload any) ([]byte, error) {
	agent := fiber.AcquireAgent()
	req := agent.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)
	if query != "" {
		agent.QueryString(query)
	}
	if c.cpf != "" {
		agent.Set("cpf", c.cpf)
	}
	if payload != nil {
		agent.JSON(payload)
	}
	if c.timeout > 0 {
		agent.Timeout(c.timeout)
	}
	if err := agent.Parse(); err != nil {
		fiber.ReleaseAgent(agent)
		return nil, fmt.Errorf("build request: %w", err)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("%s %s: %w", method, path, errors.Join(errs...))
	}
	if code >= 200 && code < 300 {
		return body, nil
	}
	var apiErr struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return nil, errors.New(apiErr.Error)
	}
	return nil, fmt.Errorf("%s %s: unexpected status %d", method, path, code)
}
