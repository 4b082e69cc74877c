package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/strumind/console/internal/common"
)

// errorBody is the server's standard error payload.
type errorBody struct {
	Detail string `json:"detail"`
}

func readDetail(r io.Reader) string {
	var body errorBody
	if err := json.NewDecoder(io.LimitReader(r, 4096)).Decode(&body); err != nil {
		return ""
	}
	return body.Detail
}

// mapError converts an HTTP error response into the sentinel taxonomy:
// 401 -> ErrUnauthorized (firing the global hook when a bearer was sent),
// 404 -> ErrNotFound, other 4xx -> ErrValidation, 5xx -> ErrUnavailable.
func (c *Client) mapError(resp *http.Response, bearer string) error {
	detail := readDetail(resp.Body)

	wrap := func(sentinel error) error {
		if detail == "" {
			return fmt.Errorf("%w (%s)", sentinel, resp.Status)
		}
		return fmt.Errorf("%w: %s", sentinel, detail)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if bearer != "" {
			c.notifyUnauthorized(bearer)
		}
		return wrap(common.ErrUnauthorized)
	case resp.StatusCode == http.StatusNotFound:
		return wrap(common.ErrNotFound)
	case resp.StatusCode < 500:
		return wrap(common.ErrValidation)
	default:
		return wrap(common.ErrUnavailable)
	}
}

// notifyUnauthorized fires the 401 hook once per token value.
func (c *Client) notifyUnauthorized(bearer string) {
	c.invalidatedMu.Lock()
	already := c.lastInvalidated == bearer
	if !already {
		c.lastInvalidated = bearer
	}
	hook := c.onUnauthorized
	c.invalidatedMu.Unlock()

	if already || hook == nil {
		return
	}
	if c.log != nil {
		c.log.Warn(context.Background(), "session rejected by server, invalidating")
	}
	hook()
}
