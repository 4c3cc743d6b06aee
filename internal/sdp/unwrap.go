package sdp

import (
	"encoding/json"
	"strings"
)

// Unwrap accepts either raw SDP or a JSON session description object such as
// {"type":"offer","sdp":"v=0\r\n..."} and returns the SDP text plus the
// description type ("" for raw input).
func Unwrap(input string) (text, kind string) {
	trimmed := strings.TrimSpace(input)
	if !strings.HasPrefix(trimmed, "{") {
		return input, ""
	}

	var obj struct {
		Type string          `json:"type"`
		SDP  json.RawMessage `json:"sdp"`
	}
	if err := json.Unmarshal([]byte(trimmed), &obj); err != nil {
		return input, ""
	}
	var sdpText string
	if err := json.Unmarshal(obj.SDP, &sdpText); err != nil {
		return input, ""
	}
	return sdpText, obj.Type
}
