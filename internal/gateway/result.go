// Package gateway maps backend operations onto the shared transport, one
// method per endpoint, returning normalized results instead of raising
// errors across the controller boundary.
package gateway

import (
	"context"
	"encoding/json"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/logging"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/transport"
)

// Result is the uniform outcome of one backend operation.
//
//   - OK: the backend acknowledged with a 2xx status.
//   - Status: HTTP status, 0 when the request never completed.
//   - Data: raw response body for the caller to decode.
//   - Message: human-readable failure text; the backend's own message when
//     the body carried one, otherwise a generic fallback.
//   - Err: transport failure (dial, timeout, broken read). Nil for HTTP-level
//     rejections.
type Result struct {
	OK      bool
	Status  int
	Data    json.RawMessage
	Message string
	Err     error
}

// bodyMessage is the error-shape subset of backend responses.
type bodyMessage struct {
	Message string `json:"message"`
	Success *bool  `json:"success"`
}

// GenericFailure is the fallback Message when the backend body carries none.
const GenericFailure = "request failed"

func resultOf(reply *transport.Reply, err error) Result {
	if err != nil {
		return Result{Err: err, Message: GenericFailure}
	}

	r := Result{Status: reply.Status, Data: reply.Body}
	if reply.Status >= 200 && reply.Status < 300 {
		r.OK = true
		return r
	}

	var bm bodyMessage
	if jsonErr := json.Unmarshal(reply.Body, &bm); jsonErr == nil && bm.Message != "" {
		r.Message = bm.Message
	} else {
		r.Message = GenericFailure
	}
	return r
}

// listEnvelope covers the nesting shapes the backend is known to produce.
type listEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// DecodeList normalizes a list payload to a slice of T. The backend is not
// uniform across endpoints, so extraction is attempted in order:
//
//  1. a bare JSON array
//  2. an array under "data"
//  3. an array under the resource-specific key
//  4. "data" holding another envelope (one level of re-wrapping)
//
// Anything else degrades to an empty slice with a single warn log; shape
// surprises never reach the user as a failure.
func DecodeList[T any](ctx context.Context, body json.RawMessage, resourceKey string, log logging.Logger) []T {
	if out, ok := tryDecode[T](body); ok {
		return out
	}

	var env listEnvelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.Data) > 0 {
		if out, ok := tryDecode[T](env.Data); ok {
			return out
		}
		// One level of re-wrapping: {"data": {"data": [...]}}.
		var inner listEnvelope
		if err := json.Unmarshal(env.Data, &inner); err == nil && len(inner.Data) > 0 {
			if out, ok := tryDecode[T](inner.Data); ok {
				return out
			}
		}
	}

	if resourceKey != "" {
		var keyed map[string]json.RawMessage
		if err := json.Unmarshal(body, &keyed); err == nil {
			if raw, exists := keyed[resourceKey]; exists {
				if out, ok := tryDecode[T](raw); ok {
					return out
				}
			}
		}
	}

	log.Warn(ctx, "unrecognized list envelope, treating as empty", "resource", resourceKey)
	return []T{}
}

func tryDecode[T any](raw json.RawMessage) ([]T, bool) {
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	if out == nil {
		out = []T{}
	}
	return out, true
}
