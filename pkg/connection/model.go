package connection

// RPCError represents a JSON-RPC error returned by the store.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

func (r *RPCError) Error() string {
	return r.Message
}

func (r *RPCError) Is(target error) bool {
	if target == nil {
		return r == nil
	}

	_, ok := target.(*RPCError)
	return ok
}

// RPCRequest represents an outgoing JSON-RPC request.
type RPCRequest struct {
	ID     string `json:"id,omitempty"`
	Method string `json:"method,omitempty"`
	Params []any  `json:"params,omitempty"`
}

// RPCResponse represents an incoming JSON-RPC response. Frames without
// an ID are server pushes and carry a Notification in Result.
type RPCResponse[T any] struct {
	ID     string    `json:"id,omitempty"`
	Error  *RPCError `json:"error,omitempty"`
	Result *T        `json:"result,omitempty"`
}

// RPC methods understood by the store.
const (
	MethodAuth         = "auth"
	MethodSubscribe    = "subscribe"
	MethodSubscribeDoc = "subscribe_doc"
	MethodUnsubscribe  = "unsubscribe"
	MethodQuery        = "query"
	MethodCreate       = "create"
	MethodDelete       = "delete"
)
