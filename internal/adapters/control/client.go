// Package control talks to the helper's control socket.
package control

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"time"

	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/zerr"
)

// statusRequest is the fixed request understood by the helper.
const statusRequest = `{"command": "status"}`

// maxResponse bounds a single status reply.
const maxResponse = 4096

// Client implements ports.StatusClient over a Unix domain socket.
type Client struct {
	pinned  string
	timeout time.Duration
}

// NewClient creates a Client. An empty path is resolved on every query so a
// socket that appears later is still found.
func NewClient(path string) *Client {
	return &Client{pinned: path, timeout: domain.SocketTimeout}
}

// SocketPath returns the socket the next query will use.
func (c *Client) SocketPath() string {
	if c.pinned != "" {
		return c.pinned
	}
	return domain.DefaultSocketPath()
}

// Query sends a status request and decodes the reply.
// Connect, write and read are each bounded by the socket timeout.
func (c *Client) Query(ctx context.Context) (domain.RuntimeInfo, error) {
	path := c.SocketPath()

	dialer := net.Dialer{Timeout: c.timeout}
	conn, err := dialer.DialContext(ctx, "unix", path)
	if err != nil {
		return domain.RuntimeInfo{}, zerr.With(zerr.Wrap(err, "failed to connect to control socket"), "socket", path)
	}
	defer func() { _ = conn.Close() }()

	if err := conn.SetWriteDeadline(time.Now().Add(c.timeout)); err != nil {
		return domain.RuntimeInfo{}, zerr.Wrap(err, "failed to set write deadline")
	}
	if _, err := io.WriteString(conn, statusRequest); err != nil {
		return domain.RuntimeInfo{}, zerr.With(zerr.Wrap(err, "failed to send status request"), "socket", path)
	}

	if err := conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		return domain.RuntimeInfo{}, zerr.Wrap(err, "failed to set read deadline")
	}

	var info domain.RuntimeInfo
	dec := json.NewDecoder(io.LimitReader(conn, maxResponse))
	if err := dec.Decode(&info); err != nil {
		return domain.RuntimeInfo{}, zerr.With(zerr.Wrap(err, "failed to read status reply"), "socket", path)
	}

	return info, nil
}
