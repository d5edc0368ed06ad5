package sitekit

import (
	"context"

	"github.com/brotech/sitekit/pkg/models"
	"github.com/brotech/sitekit/pkg/store"
)

// Form submissions. Each operation strips the identifier from the
// payload, appends the server-timestamp sentinel and, for
// workflow-bearing kinds, an initial status, then creates the record.
// A nil return means the store accepted the whole record; a non-nil
// error means nothing was written. There are no retries.

// Initial workflow statuses.
const (
	statusPending = "pending"
	statusNew     = "new"
)

// Message type tags within the shared messages collection.
const (
	typeContactForm = "contact_form_submission"
	typeReferral    = "referral"
)

func (c *Client) submit(ctx context.Context, coll string, payload any, stamp func(store.Record)) error {
	fields, err := store.Fields(payload)
	if err != nil {
		return err
	}
	delete(fields, "id")
	stamp(fields)

	_, err = c.store.Create(ctx, coll, fields)
	return err
}

func (c *Client) SubmitJobApplication(ctx context.Context, app models.JobApplication) error {
	return c.submit(ctx, collJobApplications, app, func(f store.Record) {
		f["submittedAt"] = store.ServerTimestamp
	})
}

func (c *Client) SubscribeNewsletter(ctx context.Context, email string) error {
	fields := store.Record{
		"email":        email,
		"subscribedAt": store.ServerTimestamp,
	}
	_, err := c.store.Create(ctx, collSubscribers, fields)
	return err
}

// SendChatMessage files a visitor chat line into the shared messages
// collection. Chat messages carry text rather than message, and no
// type tag.
func (c *Client) SendChatMessage(ctx context.Context, text, userID string) error {
	fields := store.Record{
		"text":      text,
		"userId":    userID,
		"isAdmin":   false,
		"createdAt": store.ServerTimestamp,
	}
	_, err := c.store.Create(ctx, collMessages, fields)
	return err
}

// SubmitContactMessage reuses the messages collection for the contact
// form; the type tag disambiguates it from live chat.
func (c *Client) SubmitContactMessage(ctx context.Context, msg models.ContactMessage) error {
	return c.submit(ctx, collMessages, msg, func(f store.Record) {
		f["type"] = typeContactForm
		f["isAdmin"] = false
		f["createdAt"] = store.ServerTimestamp
	})
}

func (c *Client) SubmitReferral(ctx context.Context, ref models.Referral) error {
	return c.submit(ctx, collMessages, ref, func(f store.Record) {
		f["type"] = typeReferral
		f["isAdmin"] = false
		f["submittedAt"] = store.ServerTimestamp
	})
}

func (c *Client) RequestMeeting(ctx context.Context, req models.MeetingRequest) error {
	return c.submit(ctx, collMeetingRequests, req, func(f store.Record) {
		f["status"] = statusPending
		f["requestedAt"] = store.ServerTimestamp
	})
}

func (c *Client) SubmitOnboarding(ctx context.Context, sub models.OnboardingSubmission) error {
	return c.submit(ctx, collOnboarding, sub, func(f store.Record) {
		f["status"] = statusNew
		f["submittedAt"] = store.ServerTimestamp
	})
}

func (c *Client) SubmitPartnerApplication(ctx context.Context, app models.PartnerApplication) error {
	return c.submit(ctx, collPartnerApplications, app, func(f store.Record) {
		f["status"] = statusNew
		f["submittedAt"] = store.ServerTimestamp
	})
}

func (c *Client) SubmitTestimonial(ctx context.Context, sub models.TestimonialSubmission) error {
	return c.submit(ctx, collTestimonialSubmissions, sub, func(f store.Record) {
		f["status"] = statusPending
		f["submittedAt"] = store.ServerTimestamp
	})
}

// DeleteRecord removes one record from a collection, as used by the
// admin console. Deleting an identifier that is already gone is a
// success.
func (c *Client) DeleteRecord(ctx context.Context, coll, id string) error {
	return c.store.Delete(ctx, coll, id)
}
