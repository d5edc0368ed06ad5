// Package fakestore provides an in-process WebSocket document store
// for tests. It speaks the sitekit RPC protocol over JSON: live
// collection/document subscriptions with full-membership snapshot
// pushes, one-shot equality queries, creates with server-timestamp
// assignment, and idempotent deletes.
//
// Failure injection is deliberately narrow: per-collection permission
// denial on subscribe, and create rejection.
package fakestore

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"reflect"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lxzan/gws"

	"github.com/brotech/sitekit/pkg/connection"
)

type subscription struct {
	socket *gws.Conn
	coll   string
	docID  string // empty for collection subscriptions
}

// Server is the fake store. Use "127.0.0.1:0" to bind a random port.
type Server struct {
	addr     string
	listener net.Listener
	server   *gws.Server

	mu          sync.RWMutex
	collections map[string][]map[string]any
	subs        map[string]*subscription
	denied      map[string]bool
	failCreates bool

	// Now supplies the server clock for timestamp assignment.
	Now func() time.Time
}

// Handler implements the gws event interface.
type Handler struct {
	server *Server
}

func NewServer(addr string) *Server {
	s := &Server{
		addr:        addr,
		collections: make(map[string][]map[string]any),
		subs:        make(map[string]*subscription),
		denied:      make(map[string]bool),
		Now:         time.Now,
	}

	handler := &Handler{server: s}
	s.server = gws.NewServer(handler, &gws.ServerOption{})
	s.server.OnError = func(_ net.Conn, err error) {
		if !errors.Is(err, net.ErrClosed) {
			log.Printf("fakestore: server error: %v", err)
		}
	}

	return s
}

func (s *Server) Start() error {
	var lc net.ListenConfig
	listener, err := lc.Listen(context.Background(), "tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener

	go func() {
		if err := s.server.RunListener(&stopOnCloseListener{listener}); err != nil && !errors.Is(err, net.ErrClosed) {
			log.Printf("fakestore: server stopped: %v", err)
		}
	}()

	return nil
}

// stopOnCloseListener terminates the accept goroutine once the
// listener is closed. gws.Server.RunListener never returns on an
// Accept error — it reports it and retries — so a closed listener
// would otherwise spin the accept loop forever.
type stopOnCloseListener struct {
	net.Listener
}

func (l *stopOnCloseListener) Accept() (net.Conn, error) {
	conn, err := l.Listener.Accept()
	if err != nil && errors.Is(err, net.ErrClosed) {
		runtime.Goexit()
	}
	return conn, err
}

func (s *Server) Stop() error {
	if s.listener != nil {
		return s.listener.Close()
	}
	return nil
}

// URL returns the ws:// endpoint of the running server.
func (s *Server) URL() string {
	return "ws://" + s.listener.Addr().String()
}

// Seed installs records into a collection, assigning identifiers where
// missing, and notifies subscribers.
func (s *Server) Seed(coll string, records ...map[string]any) {
	s.mu.Lock()
	for _, r := range records {
		rec := cloneRecord(r)
		if _, ok := rec["id"].(string); !ok {
			rec["id"] = uuid.NewString()
		}
		s.collections[coll] = append(s.collections[coll], rec)
	}
	s.mu.Unlock()

	s.broadcast(coll)
}

// SeedDocument installs a record under a well-known identifier.
func (s *Server) SeedDocument(coll, id string, fields map[string]any) {
	rec := cloneRecord(fields)
	rec["id"] = id
	s.Seed(coll, rec)
}

// DenyCollection makes subsequent subscribes and queries on a
// collection fail with a permission error.
func (s *Server) DenyCollection(coll string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.denied[coll] = true
}

// FailCreates makes every create RPC fail.
func (s *Server) FailCreates(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failCreates = fail
}

// Records returns a copy of a collection's current membership.
func (s *Server) Records(coll string) []map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshotRecords(s.collections[coll])
}

func (h *Handler) OnOpen(socket *gws.Conn) {}

func (h *Handler) OnClose(socket *gws.Conn, err error) {
	s := h.server
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sub := range s.subs {
		if sub.socket == socket {
			delete(s.subs, id)
		}
	}
}

func (h *Handler) OnPing(socket *gws.Conn, payload []byte) {
	if err := socket.WritePong(payload); err != nil {
		log.Printf("fakestore: error writing pong: %v", err)
	}
}

func (h *Handler) OnPong(socket *gws.Conn, payload []byte) {}

func (h *Handler) OnMessage(socket *gws.Conn, message *gws.Message) {
	defer message.Close()

	var req connection.RPCRequest
	if err := json.Unmarshal(message.Bytes(), &req); err != nil {
		h.sendError(socket, "", -32700, "parse error")
		return
	}

	switch req.Method {
	case connection.MethodAuth:
		h.sendResult(socket, req.ID, "ok")
	case connection.MethodSubscribe:
		h.handleSubscribe(socket, &req)
	case connection.MethodSubscribeDoc:
		h.handleSubscribeDoc(socket, &req)
	case connection.MethodUnsubscribe:
		h.handleUnsubscribe(socket, &req)
	case connection.MethodQuery:
		h.handleQuery(socket, &req)
	case connection.MethodCreate:
		h.handleCreate(socket, &req)
	case connection.MethodDelete:
		h.handleDelete(socket, &req)
	default:
		h.sendError(socket, req.ID, -32601, "method not found")
	}
}

func (h *Handler) handleSubscribe(socket *gws.Conn, req *connection.RPCRequest) {
	coll, ok1 := param(req, 0)
	subID, ok2 := param(req, 1)
	if !ok1 || !ok2 {
		h.sendError(socket, req.ID, -32602, "subscribe expects [collection, subscription id]")
		return
	}

	s := h.server
	s.mu.Lock()
	if s.denied[coll] {
		s.mu.Unlock()
		h.sendError(socket, req.ID, 403, "permission denied")
		return
	}
	sub := &subscription{socket: socket, coll: coll}
	s.subs[subID] = sub
	s.mu.Unlock()

	h.sendResult(socket, req.ID, subID)
	s.push(subID, sub)
}

func (h *Handler) handleSubscribeDoc(socket *gws.Conn, req *connection.RPCRequest) {
	coll, ok1 := param(req, 0)
	docID, ok2 := param(req, 1)
	subID, ok3 := param(req, 2)
	if !ok1 || !ok2 || !ok3 {
		h.sendError(socket, req.ID, -32602, "subscribe_doc expects [collection, doc id, subscription id]")
		return
	}

	s := h.server
	s.mu.Lock()
	if s.denied[coll] {
		s.mu.Unlock()
		h.sendError(socket, req.ID, 403, "permission denied")
		return
	}
	sub := &subscription{socket: socket, coll: coll, docID: docID}
	s.subs[subID] = sub
	s.mu.Unlock()

	h.sendResult(socket, req.ID, subID)
	s.push(subID, sub)
}

func (h *Handler) handleUnsubscribe(socket *gws.Conn, req *connection.RPCRequest) {
	subID, ok := param(req, 0)
	if !ok {
		h.sendError(socket, req.ID, -32602, "unsubscribe expects [subscription id]")
		return
	}

	s := h.server
	s.mu.Lock()
	delete(s.subs, subID)
	s.mu.Unlock()

	h.sendResult(socket, req.ID, nil)
}

func (h *Handler) handleQuery(socket *gws.Conn, req *connection.RPCRequest) {
	coll, ok1 := param(req, 0)
	field, ok2 := param(req, 1)
	if !ok1 || !ok2 || len(req.Params) < 3 {
		h.sendError(socket, req.ID, -32602, "query expects [collection, field, value]")
		return
	}
	value := req.Params[2]

	s := h.server
	s.mu.RLock()
	if s.denied[coll] {
		s.mu.RUnlock()
		h.sendError(socket, req.ID, 403, "permission denied")
		return
	}
	var matches []map[string]any
	for _, rec := range s.collections[coll] {
		if reflect.DeepEqual(rec[field], value) {
			matches = append(matches, cloneRecord(rec))
		}
	}
	s.mu.RUnlock()

	if matches == nil {
		matches = []map[string]any{}
	}
	h.sendResult(socket, req.ID, matches)
}

func (h *Handler) handleCreate(socket *gws.Conn, req *connection.RPCRequest) {
	coll, ok := param(req, 0)
	if !ok || len(req.Params) < 2 {
		h.sendError(socket, req.ID, -32602, "create expects [collection, fields]")
		return
	}
	fields, ok := req.Params[1].(map[string]any)
	if !ok {
		h.sendError(socket, req.ID, -32602, "create fields must be an object")
		return
	}

	s := h.server
	s.mu.Lock()
	if s.failCreates || s.denied[coll] {
		s.mu.Unlock()
		h.sendError(socket, req.ID, 403, "permission denied")
		return
	}

	rec := cloneRecord(fields)
	for k, v := range rec {
		if isServerTimestamp(v) {
			now := s.Now()
			rec[k] = map[string]any{
				"seconds": now.Unix(),
				"nanos":   int32(now.Nanosecond()),
			}
		}
	}
	id := uuid.NewString()
	rec["id"] = id
	s.collections[coll] = append(s.collections[coll], rec)
	s.mu.Unlock()

	h.sendResult(socket, req.ID, id)
	s.broadcast(coll)
}

func (h *Handler) handleDelete(socket *gws.Conn, req *connection.RPCRequest) {
	coll, ok1 := param(req, 0)
	id, ok2 := param(req, 1)
	if !ok1 || !ok2 {
		h.sendError(socket, req.ID, -32602, "delete expects [collection, id]")
		return
	}

	s := h.server
	s.mu.Lock()
	records := s.collections[coll]
	kept := records[:0]
	for _, rec := range records {
		if rec["id"] != id {
			kept = append(kept, rec)
		}
	}
	s.collections[coll] = kept
	s.mu.Unlock()

	// Absent identifiers are acknowledged too: the desired state holds.
	h.sendResult(socket, req.ID, nil)
	s.broadcast(coll)
}

// broadcast pushes a fresh snapshot to every subscription on a
// collection.
func (s *Server) broadcast(coll string) {
	s.mu.RLock()
	targets := make(map[string]*subscription)
	for id, sub := range s.subs {
		if sub.coll == coll {
			targets[id] = sub
		}
	}
	s.mu.RUnlock()

	for id, sub := range targets {
		s.push(id, sub)
	}
}

// push sends the current snapshot for one subscription.
func (s *Server) push(subID string, sub *subscription) {
	s.mu.RLock()
	records := snapshotRecords(s.collections[sub.coll])
	s.mu.RUnlock()

	n := connection.Notification{ID: subID}
	if sub.docID == "" {
		n.Records = records
	} else {
		for _, rec := range records {
			if rec["id"] == sub.docID {
				n.Exists = true
				n.Fields = rec
				break
			}
		}
	}

	frame := struct {
		Result connection.Notification `json:"result"`
	}{Result: n}

	data, err := json.Marshal(frame)
	if err != nil {
		log.Printf("fakestore: error marshaling push: %v", err)
		return
	}
	if err := sub.socket.WriteMessage(gws.OpcodeText, data); err != nil {
		log.Printf("fakestore: error writing push: %v", err)
	}
}

func (h *Handler) sendResult(socket *gws.Conn, id string, result any) {
	res := connection.RPCResponse[any]{ID: id}
	if result != nil {
		res.Result = &result
	}

	data, err := json.Marshal(res)
	if err != nil {
		log.Printf("fakestore: error marshaling response: %v", err)
		return
	}
	if err := socket.WriteMessage(gws.OpcodeText, data); err != nil {
		log.Printf("fakestore: error writing response: %v", err)
	}
}

func (h *Handler) sendError(socket *gws.Conn, id string, code int, message string) {
	res := connection.RPCResponse[any]{
		ID:    id,
		Error: &connection.RPCError{Code: code, Message: message},
	}

	data, err := json.Marshal(res)
	if err != nil {
		log.Printf("fakestore: error marshaling error response: %v", err)
		return
	}
	if err := socket.WriteMessage(gws.OpcodeText, data); err != nil {
		log.Printf("fakestore: error writing error response: %v", err)
	}
}

func param(req *connection.RPCRequest, i int) (string, bool) {
	if i >= len(req.Params) {
		return "", false
	}
	s, ok := req.Params[i].(string)
	return s, ok
}

func isServerTimestamp(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	flagged, ok := m["$serverTimestamp"].(bool)
	return ok && flagged
}

func cloneRecord(r map[string]any) map[string]any {
	out := make(map[string]any, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

func snapshotRecords(records []map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(records))
	for _, r := range records {
		out = append(out, cloneRecord(r))
	}
	return out
}
