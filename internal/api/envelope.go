package api

import "encoding/json"

// unmarshalPayload decodes an API response body that is either the payload
// itself or the payload wrapped in a {"data": ...} envelope. Internal code
// only ever sees the one canonical shape that lands in out.
func unmarshalPayload(body []byte, out any) error {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
		return json.Unmarshal(env.Data, out)
	}
	return json.Unmarshal(body, out)
}
