package connection

// Notification is a server push for one live subscription. Collection
// subscriptions carry Records, the full current membership with the
// store-assigned id merged into each record. Document subscriptions
// carry Exists and Fields instead.
type Notification struct {
	ID      string           `json:"id"`
	Records []map[string]any `json:"records,omitempty"`
	Exists  bool             `json:"exists,omitempty"`
	Fields  map[string]any   `json:"fields,omitempty"`
}
