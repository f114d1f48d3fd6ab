package hep

// UnknownValue is the fallback used for any recognized label that a
// qualifying network does not carry.
const UnknownValue = "unknown"

// Keys names the Docker network label keys recognized for policy-endpoint
// generation. The App key doubles as the enablement marker: its presence,
// with any value, is what flags a network for processing.
type Keys struct {
	App   string
	AppID string
	Role  string
}

// DefaultKeys matches the netpol.* labeling convention used by the compose
// stacks this tool runs against.
var DefaultKeys = Keys{
	App:   "netpol.app",
	AppID: "netpol.app-id",
	Role:  "netpol.role",
}

// PolicyLabels is the fixed record of policy metadata read from a network's
// label map. Each field falls back to UnknownValue independently, so a
// partially labeled network still yields a complete record.
type PolicyLabels struct {
	App   string
	AppID string
	Role  string
}

// IsPolicyRelevant reports whether a network's labels flag it for
// policy-endpoint generation.
func (k Keys) IsPolicyRelevant(labels map[string]string) bool {
	_, ok := labels[k.App]
	return ok
}

// PolicyLabels extracts the recognized labels with per-field fallbacks.
func (k Keys) PolicyLabels(labels map[string]string) PolicyLabels {
	return PolicyLabels{
		App:   valueOrUnknown(labels, k.App),
		AppID: valueOrUnknown(labels, k.AppID),
		Role:  valueOrUnknown(labels, k.Role),
	}
}

func valueOrUnknown(labels map[string]string, key string) string {
	if v, ok := labels[key]; ok {
		return v
	}
	return UnknownValue
}
