package domain

// Header keys understood by the service factories.
//
//nolint:gosec // G101: These are header key names, not actual credentials.
const (
	HeaderUserName        = "userName"
	HeaderPassword        = "password"
	HeaderAuthToken       = "authToken"
	HeaderApplicationName = "applicationName"
	HeaderNetworkCode     = "networkCode"
)

// HeaderMap maps header names to values.
type HeaderMap map[string]string

// Get returns the value for key and whether it is present.
func (h HeaderMap) Get(key string) (string, bool) {
	v, ok := h[key]
	return v, ok
}

// Value returns the value for key, or an empty string.
func (h HeaderMap) Value(key string) string {
	return h[key]
}

// Clone returns a copy that can be modified without affecting h.
func (h HeaderMap) Clone() HeaderMap {
	out := make(HeaderMap, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}
