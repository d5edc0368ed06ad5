package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/brotech/sitekit/pkg/connection"
	"github.com/brotech/sitekit/pkg/constants"
)

// CollectionState is the live view of a subscribed collection.
type CollectionState struct {
	// Items is the full current membership. Each pushed snapshot
	// replaces it wholesale; no partial state is ever visible.
	Items []Record
	// Loading is true until the first snapshot or failure arrives.
	Loading bool
	// Err holds the fixed access-denied message when the subscription
	// was rejected. Items keep their last known value in that case.
	Err string
}

// CollectionWatch is one live collection subscription. At most one
// underlying subscription is ever open per watch; Close releases it
// exactly once and no state update is delivered afterwards.
type CollectionWatch struct {
	store *Store
	coll  string
	subID string

	mu     sync.Mutex
	state  CollectionState
	closed bool

	updates chan CollectionState
	stop    chan struct{}
	once    sync.Once
}

// WatchCollection activates a live subscription on a collection. It
// returns immediately with a loading view; snapshots and failures
// arrive asynchronously.
func (s *Store) WatchCollection(ctx context.Context, coll string) *CollectionWatch {
	w := &CollectionWatch{
		store:   s,
		coll:    coll,
		subID:   uuid.NewString(),
		state:   CollectionState{Loading: true},
		updates: make(chan CollectionState, 1),
		stop:    make(chan struct{}),
	}
	go w.run(ctx)
	return w
}

func (w *CollectionWatch) run(ctx context.Context) {
	notifs, err := w.store.conn.Notifications(w.subID)
	if err != nil {
		w.store.log.Error("collection subscription failed", "collection", w.coll, "error", err)
		w.fail()
		return
	}

	if w.isClosed() {
		w.store.conn.CloseNotifications(w.subID)
		return
	}

	if err := w.store.conn.Send(ctx, nil, connection.MethodSubscribe, w.coll, w.subID); err != nil {
		w.store.log.Error("collection subscription rejected", "collection", w.coll, "error", err)
		w.store.conn.CloseNotifications(w.subID)
		w.fail()
		return
	}

	// Close may have run while the subscribe was in flight; its
	// unsubscribe could not release a subscription the server had not
	// accepted yet, so release it here.
	if w.isClosed() {
		w.release()
		return
	}

	for {
		select {
		case <-w.stop:
			return
		case n, ok := <-notifs:
			if !ok {
				return
			}
			w.apply(n.Records)
		}
	}
}

// apply installs one full-membership snapshot atomically.
func (w *CollectionWatch) apply(records []map[string]any) {
	items := make([]Record, 0, len(records))
	for _, r := range records {
		items = append(items, Record(r))
	}

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.state = CollectionState{Items: items}
	st := w.state
	w.mu.Unlock()

	w.publish(st)
}

// fail freezes the view at its last known items with the fixed error.
func (w *CollectionWatch) fail() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.state.Loading = false
	w.state.Err = constants.AccessDeniedMessage
	st := w.state
	w.mu.Unlock()

	w.publish(st)
}

func (w *CollectionWatch) isClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// release tears down the live subscription from the run goroutine.
func (w *CollectionWatch) release() {
	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultTimeout)
	defer cancel()
	if err := w.store.conn.Send(ctx, nil, connection.MethodUnsubscribe, w.subID); err != nil {
		w.store.log.Error("unsubscribe failed", "collection", w.coll, "error", err)
	}
	w.store.conn.CloseNotifications(w.subID)
}

// State returns the current view.
func (w *CollectionWatch) State() CollectionState {
	w.mu.Lock()
	defer w.mu.Unlock()
	st := w.state
	st.Items = append([]Record(nil), w.state.Items...)
	return st
}

// Updates exposes a latest-wins channel: if the consumer lags, stale
// views are replaced rather than queued.
func (w *CollectionWatch) Updates() <-chan CollectionState {
	return w.updates
}

func (w *CollectionWatch) publish(st CollectionState) {
	select {
	case w.updates <- st:
		return
	default:
	}
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- st:
	default:
	}
}

// Close releases the live subscription. The release happens before
// Close returns, so reactivating the same view can never observe two
// concurrent snapshot streams.
func (w *CollectionWatch) Close() error {
	var err error
	w.once.Do(func() {
		w.mu.Lock()
		w.closed = true
		w.mu.Unlock()
		close(w.stop)

		ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultTimeout)
		defer cancel()
		err = w.store.conn.Send(ctx, nil, connection.MethodUnsubscribe, w.subID)
		w.store.conn.CloseNotifications(w.subID)
	})
	return err
}

// DocumentState is the live view of a single well-known document.
type DocumentState struct {
	Fields  Record
	Exists  bool
	Loading bool
}

// DocumentWatch is one live document subscription. Store failure is
// treated as "document absent" and logged: the caller sees the same
// state either way, trading fidelity for resilience.
type DocumentWatch struct {
	store *Store
	coll  string
	docID string
	subID string

	mu     sync.Mutex
	state  DocumentState
	closed bool

	updates chan DocumentState
	stop    chan struct{}
	once    sync.Once
}

// WatchDocument activates a live subscription on one (collection,
// document id) pair.
func (s *Store) WatchDocument(ctx context.Context, coll, docID string) *DocumentWatch {
	w := &DocumentWatch{
		store:   s,
		coll:    coll,
		docID:   docID,
		subID:   uuid.NewString(),
		state:   DocumentState{Loading: true},
		updates: make(chan DocumentState, 1),
		stop:    make(chan struct{}),
	}
	go w.run(ctx)
	return w
}

func (w *DocumentWatch) run(ctx context.Context) {
	notifs, err := w.store.conn.Notifications(w.subID)
	if err != nil {
		w.store.log.Error("document subscription failed", "collection", w.coll, "doc", w.docID, "error", err)
		w.apply(false, nil)
		return
	}

	if w.isClosed() {
		w.store.conn.CloseNotifications(w.subID)
		return
	}

	if err := w.store.conn.Send(ctx, nil, connection.MethodSubscribeDoc, w.coll, w.docID, w.subID); err != nil {
		w.store.log.Error("document subscription rejected", "collection", w.coll, "doc", w.docID, "error", err)
		w.store.conn.CloseNotifications(w.subID)
		w.apply(false, nil)
		return
	}

	// Same in-flight race as the collection watch: an overlapping
	// Close could not release this subscription, so do it here.
	if w.isClosed() {
		w.release()
		return
	}

	for {
		select {
		case <-w.stop:
			return
		case n, ok := <-notifs:
			if !ok {
				return
			}
			w.apply(n.Exists, Record(n.Fields))
		}
	}
}

func (w *DocumentWatch) apply(exists bool, fields Record) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.state = DocumentState{Fields: fields, Exists: exists}
	st := w.state
	w.mu.Unlock()

	w.publish(st)
}

func (w *DocumentWatch) isClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

func (w *DocumentWatch) release() {
	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultTimeout)
	defer cancel()
	if err := w.store.conn.Send(ctx, nil, connection.MethodUnsubscribe, w.subID); err != nil {
		w.store.log.Error("unsubscribe failed", "collection", w.coll, "doc", w.docID, "error", err)
	}
	w.store.conn.CloseNotifications(w.subID)
}

func (w *DocumentWatch) State() DocumentState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *DocumentWatch) Updates() <-chan DocumentState {
	return w.updates
}

func (w *DocumentWatch) publish(st DocumentState) {
	select {
	case w.updates <- st:
		return
	default:
	}
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- st:
	default:
	}
}

func (w *DocumentWatch) Close() error {
	var err error
	w.once.Do(func() {
		w.mu.Lock()
		w.closed = true
		w.mu.Unlock()
		close(w.stop)

		ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultTimeout)
		defer cancel()
		err = w.store.conn.Send(ctx, nil, connection.MethodUnsubscribe, w.subID)
		w.store.conn.CloseNotifications(w.subID)
	})
	return err
}
