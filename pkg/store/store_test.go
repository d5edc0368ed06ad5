package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brotech/sitekit/internal/fakestore"
	"github.com/brotech/sitekit/pkg/constants"
	"github.com/brotech/sitekit/pkg/logger"
)

func newTestStore(t *testing.T) (*Store, *fakestore.Server) {
	t.Helper()

	srv := fakestore.NewServer("127.0.0.1:0")
	require.NoError(t, srv.Start())
	t.Cleanup(func() { _ = srv.Stop() })

	s, err := Open(context.Background(), Config{
		Endpoint: srv.URL(),
		Project:  "test-project",
		Key:      "test-key",
		Logger:   logger.Nop(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	return s, srv
}

func TestOpenBadEndpoint(t *testing.T) {
	_, err := Open(context.Background(), Config{Logger: logger.Nop()})
	require.Error(t, err)
	assert.ErrorIs(t, err, constants.ErrNoEndpoint)
}

func TestQuery(t *testing.T) {
	s, srv := newTestStore(t)
	srv.Seed("locations",
		map[string]any{"citySlug": "boise", "cityName": "Boise"},
		map[string]any{"citySlug": "denver", "cityName": "Denver"},
	)

	records, err := s.Query(context.Background(), "locations", "citySlug", "boise")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Boise", records[0]["cityName"])

	records, err = s.Query(context.Background(), "locations", "citySlug", "reno")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCreateDeleteWatch(t *testing.T) {
	s, _ := newTestStore(t)

	w := s.WatchCollection(context.Background(), "messages")
	defer w.Close()

	require.Eventually(t, func() bool { return !w.State().Loading }, waitFor, tick)
	assert.Empty(t, w.State().Items)

	id, err := s.Create(context.Background(), "messages", Record{"text": "hi"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.Eventually(t, func() bool {
		st := w.State()
		return len(st.Items) == 1 && st.Items[0].ID() == id
	}, waitFor, tick)

	require.NoError(t, s.Delete(context.Background(), "messages", id))
	require.Eventually(t, func() bool { return len(w.State().Items) == 0 }, waitFor, tick)
}

func TestDeleteAbsentIsSuccess(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Delete(context.Background(), "messages", "never-existed"))
}

func TestCreateAssignsServerTimestamp(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Create(context.Background(), "subscribers", Record{
		"email":        "a@b.c",
		"subscribedAt": ServerTimestamp,
	})
	require.NoError(t, err)

	records, err := s.Query(context.Background(), "subscribers", "email", "a@b.c")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Greater(t, records[0].TimeSeconds("subscribedAt"), int64(0))
}

func TestCreateRejected(t *testing.T) {
	s, srv := newTestStore(t)
	srv.FailCreates(true)

	_, err := s.Create(context.Background(), "messages", Record{"text": "hi"})
	require.Error(t, err)
	assert.Empty(t, srv.Records("messages"))
}

func TestWatchDeniedCollection(t *testing.T) {
	s, srv := newTestStore(t)
	srv.DenyCollection("secrets")

	w := s.WatchCollection(context.Background(), "secrets")
	defer w.Close()

	require.Eventually(t, func() bool {
		st := w.State()
		return !st.Loading && st.Err == constants.AccessDeniedMessage
	}, waitFor, tick)
}

// Closing a watch and opening a fresh one on the same collection must
// never leave two snapshot streams feeding one view.
func TestWatchReactivate(t *testing.T) {
	s, _ := newTestStore(t)

	first := s.WatchCollection(context.Background(), "messages")
	require.Eventually(t, func() bool { return !first.State().Loading }, waitFor, tick)
	require.NoError(t, first.Close())

	second := s.WatchCollection(context.Background(), "messages")
	defer second.Close()
	require.Eventually(t, func() bool { return !second.State().Loading }, waitFor, tick)

	_, err := s.Create(context.Background(), "messages", Record{"text": "hi"})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return len(second.State().Items) == 1 }, waitFor, tick)
	assert.Empty(t, first.State().Items)
}

func TestWatchDocumentLive(t *testing.T) {
	s, srv := newTestStore(t)
	srv.SeedDocument("site_content", "main", map[string]any{"heroTitle": "Welcome"})

	w := s.WatchDocument(context.Background(), "site_content", "main")
	defer w.Close()

	require.Eventually(t, func() bool {
		st := w.State()
		return st.Exists && st.Fields["heroTitle"] == "Welcome"
	}, waitFor, tick)

	require.NoError(t, s.Delete(context.Background(), "site_content", "main"))
	require.Eventually(t, func() bool { return !w.State().Exists }, waitFor, tick)
}
