package sitekit

import (
	"context"
	"sort"
	"sync"

	"github.com/brotech/sitekit/pkg/store"
)

// FeedState is one consistent view of a typed accessor: the decoded
// live records if any exist, otherwise the compiled-in fallback table
// in its fixed order. Live and fallback entities are never mixed.
type FeedState[T any] struct {
	Data    []T
	Loading bool
	Err     string
}

// Feed binds one entity kind to one collection, a fallback table and
// an optional ordering applied uniformly to live and fallback data.
type Feed[T any] struct {
	watch    *store.CollectionWatch
	fallback []T
	less     func(a, b T) bool
	client   *Client

	updates chan FeedState[T]
	stop    chan struct{}
	once    sync.Once
}

func newFeed[T any](c *Client, coll string, fallback []T, less func(a, b T) bool) *Feed[T] {
	f := &Feed[T]{
		watch:    c.store.WatchCollection(context.Background(), coll),
		fallback: fallback,
		less:     less,
		client:   c,
		updates:  make(chan FeedState[T], 1),
		stop:     make(chan struct{}),
	}
	go f.pump()
	return f
}

// State derives the current view.
func (f *Feed[T]) State() FeedState[T] {
	return f.derive(f.watch.State())
}

// Updates exposes a latest-wins channel of derived views.
func (f *Feed[T]) Updates() <-chan FeedState[T] {
	return f.updates
}

// Close releases the underlying subscription exactly once.
func (f *Feed[T]) Close() error {
	var err error
	f.once.Do(func() {
		close(f.stop)
		err = f.watch.Close()
	})
	return err
}

func (f *Feed[T]) pump() {
	for {
		select {
		case <-f.stop:
			return
		case st, ok := <-f.watch.Updates():
			if !ok {
				return
			}
			f.publish(f.derive(st))
		}
	}
}

func (f *Feed[T]) derive(st store.CollectionState) FeedState[T] {
	out := FeedState[T]{Loading: st.Loading, Err: st.Err}

	if len(st.Items) > 0 {
		data := make([]T, 0, len(st.Items))
		for _, r := range st.Items {
			var v T
			if err := r.Decode(&v); err != nil {
				f.client.log.Error("skipping undecodable record", "id", r.ID(), "error", err)
				continue
			}
			data = append(data, v)
		}
		out.Data = data
	} else {
		out.Data = append([]T(nil), f.fallback...)
	}

	if f.less != nil {
		sort.SliceStable(out.Data, func(i, j int) bool {
			return f.less(out.Data[i], out.Data[j])
		})
	}
	return out
}

func (f *Feed[T]) publish(st FeedState[T]) {
	select {
	case f.updates <- st:
		return
	default:
	}
	select {
	case <-f.updates:
	default:
	}
	select {
	case f.updates <- st:
	default:
	}
}
