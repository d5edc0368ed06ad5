package sitekit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brotech/sitekit/pkg/constants"
)

func TestFeedFallbackWhenEmpty(t *testing.T) {
	c, _ := newTestClient(t)

	feed := c.Team()
	defer feed.Close()

	require.Eventually(t, func() bool { return !feed.State().Loading }, waitFor, tick)
	assert.Equal(t, defaultTeam, feed.State().Data)
}

func TestFeedLiveReplacesFallbackEntirely(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Seed("team", map[string]any{"name": "Solo Dev", "role": "Everything"})

	feed := c.Team()
	defer feed.Close()

	require.Eventually(t, func() bool {
		st := feed.State()
		return !st.Loading && len(st.Data) == 1
	}, waitFor, tick)
	assert.Equal(t, "Solo Dev", feed.State().Data[0].Name)
}

func TestFeedNoFallbackStaysEmpty(t *testing.T) {
	c, _ := newTestClient(t)

	feed := c.Services()
	defer feed.Close()

	require.Eventually(t, func() bool { return !feed.State().Loading }, waitFor, tick)
	assert.Empty(t, feed.State().Data)
	assert.Empty(t, feed.State().Err)
}

func TestFeedAccessDeniedShowsFallback(t *testing.T) {
	c, srv := newTestClient(t)
	srv.DenyCollection("glossary")

	feed := c.Glossary()
	defer feed.Close()

	require.Eventually(t, func() bool { return feed.State().Err != "" }, waitFor, tick)

	st := feed.State()
	assert.Equal(t, constants.AccessDeniedMessage, st.Err)
	assert.False(t, st.Loading)
	assert.Equal(t, defaultGlossary, st.Data)
}

func TestFeedUpdatesChannel(t *testing.T) {
	c, srv := newTestClient(t)

	feed := c.Services()
	defer feed.Close()

	require.Eventually(t, func() bool { return !feed.State().Loading }, waitFor, tick)
	srv.Seed("services", map[string]any{"title": "Hosting", "priceStart": "$20"})

	require.Eventually(t, func() bool {
		select {
		case st := <-feed.Updates():
			return len(st.Data) == 1 && st.Data[0].Title == "Hosting"
		default:
			return false
		}
	}, waitFor, tick)
}

func TestFeedCloseFreezesState(t *testing.T) {
	c, srv := newTestClient(t)

	feed := c.Team()
	require.Eventually(t, func() bool { return !feed.State().Loading }, waitFor, tick)

	require.NoError(t, feed.Close())
	require.NoError(t, feed.Close())

	srv.Seed("team", map[string]any{"name": "Late Arrival", "role": "Ghost"})
	assert.Never(t, func() bool {
		return len(feed.State().Data) != len(defaultTeam)
	}, 200*time.Millisecond, tick)
}

func TestWhiteLabelStepsOrdered(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Seed("white_label_steps",
		map[string]any{"title": "Launch", "stepNumber": 3},
		map[string]any{"title": "Sell", "stepNumber": 1},
		map[string]any{"title": "Build", "stepNumber": 2},
	)

	feed := c.WhiteLabelSteps()
	defer feed.Close()

	require.Eventually(t, func() bool { return len(feed.State().Data) == 3 }, waitFor, tick)

	titles := make([]string, 0, 3)
	for _, s := range feed.State().Data {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{"Sell", "Build", "Launch"}, titles)
}

func TestWhiteLabelStepsFallbackOrdered(t *testing.T) {
	c, _ := newTestClient(t)

	feed := c.WhiteLabelSteps()
	defer feed.Close()

	require.Eventually(t, func() bool { return !feed.State().Loading }, waitFor, tick)

	steps := feed.State().Data
	require.Len(t, steps, len(defaultWhiteLabelSteps))
	for i, s := range steps {
		assert.Equal(t, i+1, s.StepNumber)
	}
}

func TestNewslettersNewestFirst(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Seed("newsletters",
		map[string]any{"subject": "January", "sentAt": "2024-01-01"},
		map[string]any{"subject": "June", "sentAt": "2024-06-01"},
		map[string]any{"subject": "March", "sentAt": "2024-03-01"},
	)

	feed := c.Newsletters()
	defer feed.Close()

	require.Eventually(t, func() bool { return len(feed.State().Data) == 3 }, waitFor, tick)

	subjects := make([]string, 0, 3)
	for _, n := range feed.State().Data {
		subjects = append(subjects, n.Subject)
	}
	assert.Equal(t, []string{"June", "March", "January"}, subjects)
}

func TestMessagesNewestFirstZeroLast(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Seed("messages",
		map[string]any{"text": "old", "createdAt": map[string]any{"seconds": 100}},
		map[string]any{"text": "unacknowledged"},
		map[string]any{"text": "new", "createdAt": map[string]any{"seconds": 300}},
	)

	feed := c.Messages()
	defer feed.Close()

	require.Eventually(t, func() bool { return len(feed.State().Data) == 3 }, waitFor, tick)

	texts := make([]string, 0, 3)
	for _, m := range feed.State().Data {
		texts = append(texts, m.Text)
	}
	assert.Equal(t, []string{"new", "old", "unacknowledged"}, texts)
}

func TestFeedSkipsUndecodableRecords(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Seed("estimator_items",
		map[string]any{"label": "Landing Page", "price": 500},
		map[string]any{"label": "Broken", "price": "not a number"},
	)

	feed := c.EstimatorItems()
	defer feed.Close()

	require.Eventually(t, func() bool { return !feed.State().Loading }, waitFor, tick)

	st := feed.State()
	require.Len(t, st.Data, 1)
	assert.Equal(t, "Landing Page", st.Data[0].Label)
	assert.InDelta(t, 500, st.Data[0].Price, 0.001)
}
