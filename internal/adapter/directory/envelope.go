package directory

import (
	"bytes"
	"encoding/json"

	"github.com/sylvie882/garbage-collection-frontend-sub000/internal/core"
)

// normalizeEnvelope unwraps a collection response body. The backend answers
// with either a bare JSON array or an object wrapping it under "data"; this
// is the single place that tolerance lives — everything downstream only ever
// sees a plain array. Anything else is core.ErrBadResponse.
func normalizeEnvelope(body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.RawMessage(trimmed), nil
	}

	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &wrapper); err == nil {
		inner := bytes.TrimSpace(wrapper.Data)
		if len(inner) > 0 && inner[0] == '[' {
			return json.RawMessage(inner), nil
		}
	}

	return nil, core.ErrBadResponse
}
