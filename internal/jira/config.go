package jira

import "time"

const (
	// DefaultBinary is the jira executable looked up in PATH.
	DefaultBinary = "jira"

	// DefaultTimeout is the default timeout for a single jira invocation.
	DefaultTimeout = 30 * time.Second
)

// ClientOption is a functional option for configuring a DefaultClient.
type ClientOption func(*DefaultClient)

// WithBinary sets the jira executable.
func WithBinary(binary string) ClientOption {
	return func(c *DefaultClient) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithTimeout sets the timeout for jira command execution.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *DefaultClient) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}
