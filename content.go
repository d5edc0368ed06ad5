package sitekit

import (
	"context"
	"sync"

	"github.com/brotech/sitekit/pkg/models"
	"github.com/brotech/sitekit/pkg/store"
)

// Singleton document accessors: site_content/main and
// site_content/announcement.

const (
	docSiteContentMain         = "main"
	docSiteContentAnnouncement = "announcement"
)

// siteContentSources lists, per logical field, the source field names
// to try in priority order. Older store schemas used shorter names;
// the first present source wins, the compiled default covers the rest.
var siteContentSources = map[string][]string{
	"heroTitle":              {"heroTitle"},
	"heroSubtitle":           {"heroSubtitle"},
	"heroTagline":            {"heroTagline"},
	"contactEmail":           {"contactEmail", "email"},
	"contactPhone":           {"contactPhone", "phone"},
	"contactAddress":         {"contactAddress", "address", "location"},
	"aboutTitle":             {"aboutTitle"},
	"aboutSubtitle":          {"aboutSubtitle"},
	"aboutStory":             {"aboutStory"},
	"aboutMission":           {"aboutMission"},
	"globalReachTitle":       {"globalReachTitle"},
	"globalReachDescription": {"globalReachDescription"},
}

func resolveSiteContent(fields store.Record) models.SiteContent {
	pick := func(logical, def string) string {
		for _, name := range siteContentSources[logical] {
			if v, ok := fields[name].(string); ok && v != "" {
				return v
			}
		}
		return def
	}

	d := DefaultSiteContent
	return models.SiteContent{
		HeroTitle:      pick("heroTitle", d.HeroTitle),
		HeroSubtitle:   pick("heroSubtitle", d.HeroSubtitle),
		HeroTagline:    pick("heroTagline", d.HeroTagline),
		ContactEmail:   pick("contactEmail", d.ContactEmail),
		ContactPhone:   pick("contactPhone", d.ContactPhone),
		ContactAddress: pick("contactAddress", d.ContactAddress),

		AboutTitle:             pick("aboutTitle", d.AboutTitle),
		AboutSubtitle:          pick("aboutSubtitle", d.AboutSubtitle),
		AboutStory:             pick("aboutStory", d.AboutStory),
		AboutMission:           pick("aboutMission", d.AboutMission),
		GlobalReachTitle:       pick("globalReachTitle", d.GlobalReachTitle),
		GlobalReachDescription: pick("globalReachDescription", d.GlobalReachDescription),
	}
}

// SiteContentState is the resolved singleton content. While the
// document is loading, absent or unreachable, Content holds the
// compiled defaults, so the caller always has something to render.
type SiteContentState struct {
	Content models.SiteContent
	Loading bool
}

type SiteContentWatch struct {
	watch   *store.DocumentWatch
	updates chan SiteContentState
	stop    chan struct{}
	once    sync.Once
}

// SiteContent subscribes to the site_content/main document.
func (c *Client) SiteContent() *SiteContentWatch {
	w := &SiteContentWatch{
		watch:   c.store.WatchDocument(context.Background(), collSiteContent, docSiteContentMain),
		updates: make(chan SiteContentState, 1),
		stop:    make(chan struct{}),
	}
	go w.pump()
	return w
}

func (w *SiteContentWatch) State() SiteContentState {
	return deriveSiteContent(w.watch.State())
}

func (w *SiteContentWatch) Updates() <-chan SiteContentState {
	return w.updates
}

func (w *SiteContentWatch) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		err = w.watch.Close()
	})
	return err
}

func (w *SiteContentWatch) pump() {
	for {
		select {
		case <-w.stop:
			return
		case st, ok := <-w.watch.Updates():
			if !ok {
				return
			}
			publishLatest(w.updates, deriveSiteContent(st))
		}
	}
}

func deriveSiteContent(st store.DocumentState) SiteContentState {
	out := SiteContentState{Loading: st.Loading}
	if st.Exists {
		out.Content = resolveSiteContent(st.Fields)
	} else {
		out.Content = DefaultSiteContent
	}
	return out
}

// AnnouncementState carries the banner document, or nil when no banner
// is configured (or the document is unreachable).
type AnnouncementState struct {
	Announcement *models.Announcement
	Loading      bool
}

type AnnouncementWatch struct {
	watch   *store.DocumentWatch
	client  *Client
	updates chan AnnouncementState
	stop    chan struct{}
	once    sync.Once
}

// Announcement subscribes to the site_content/announcement document.
func (c *Client) Announcement() *AnnouncementWatch {
	w := &AnnouncementWatch{
		watch:   c.store.WatchDocument(context.Background(), collSiteContent, docSiteContentAnnouncement),
		client:  c,
		updates: make(chan AnnouncementState, 1),
		stop:    make(chan struct{}),
	}
	go w.pump()
	return w
}

func (w *AnnouncementWatch) State() AnnouncementState {
	return w.derive(w.watch.State())
}

func (w *AnnouncementWatch) Updates() <-chan AnnouncementState {
	return w.updates
}

func (w *AnnouncementWatch) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		err = w.watch.Close()
	})
	return err
}

func (w *AnnouncementWatch) pump() {
	for {
		select {
		case <-w.stop:
			return
		case st, ok := <-w.watch.Updates():
			if !ok {
				return
			}
			publishLatest(w.updates, w.derive(st))
		}
	}
}

func (w *AnnouncementWatch) derive(st store.DocumentState) AnnouncementState {
	out := AnnouncementState{Loading: st.Loading}
	if !st.Exists {
		return out
	}
	var a models.Announcement
	if err := st.Fields.Decode(&a); err != nil {
		w.client.log.Error("undecodable announcement document", "error", err)
		return out
	}
	out.Announcement = &a
	return out
}

// publishLatest is the latest-wins send shared by the document
// accessors.
func publishLatest[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}
