package scoring

import "bytes"

// StripJSONFences removes the markdown code fences models wrap around
// JSON despite being told not to.
func StripJSONFences(raw []byte) []byte {
	raw = bytes.TrimSpace(raw)
	raw = bytes.TrimPrefix(raw, []byte("```json"))
	raw = bytes.TrimPrefix(raw, []byte("```"))
	raw = bytes.TrimSuffix(raw, []byte("```"))
	return bytes.TrimSpace(raw)
}
