package sitekit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brotech/sitekit/internal/fakestore"
	"github.com/brotech/sitekit/pkg/models"
)

func soleRecord(t *testing.T, srv *fakestore.Server, coll string) map[string]any {
	t.Helper()
	recs := srv.Records(coll)
	require.Len(t, recs, 1)
	return recs[0]
}

func assertStamped(t *testing.T, rec map[string]any, field string) {
	t.Helper()
	ts, ok := rec[field].(map[string]any)
	require.True(t, ok, "field %q should hold an assigned timestamp, got %v", field, rec[field])
	assert.NotZero(t, ts["seconds"])
}

func TestSubmitContactMessage(t *testing.T) {
	c, srv := newTestClient(t)

	err := c.SubmitContactMessage(context.Background(), models.ContactMessage{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "I need a website.",
	})
	require.NoError(t, err)

	rec := soleRecord(t, srv, "messages")
	assert.Equal(t, "contact_form_submission", rec["type"])
	assert.Equal(t, "Ada", rec["name"])
	assert.Equal(t, false, rec["isAdmin"])
	assertStamped(t, rec, "createdAt")
}

func TestSendChatMessage(t *testing.T) {
	c, srv := newTestClient(t)

	require.NoError(t, c.SendChatMessage(context.Background(), "hello?", "visitor-42"))

	rec := soleRecord(t, srv, "messages")
	assert.Equal(t, "hello?", rec["text"])
	assert.Equal(t, "visitor-42", rec["userId"])
	assert.Equal(t, false, rec["isAdmin"])
	_, hasType := rec["type"]
	assert.False(t, hasType)
	assertStamped(t, rec, "createdAt")
}

func TestSubmitReferral(t *testing.T) {
	c, srv := newTestClient(t)

	err := c.SubmitReferral(context.Background(), models.Referral{
		Name:         "Ada",
		Email:        "ada@example.com",
		RefereeName:  "Grace",
		RefereeEmail: "grace@example.com",
	})
	require.NoError(t, err)

	rec := soleRecord(t, srv, "messages")
	assert.Equal(t, "referral", rec["type"])
	assert.Equal(t, "Grace", rec["refereeName"])
	assertStamped(t, rec, "submittedAt")
}

func TestSubmitJobApplication(t *testing.T) {
	c, srv := newTestClient(t)

	err := c.SubmitJobApplication(context.Background(), models.JobApplication{
		JobID: "career-1",
		Name:  "Ada",
		Email: "ada@example.com",
	})
	require.NoError(t, err)

	rec := soleRecord(t, srv, "jobApplications")
	assert.Equal(t, "career-1", rec["jobId"])
	assertStamped(t, rec, "submittedAt")
	_, hasStatus := rec["status"]
	assert.False(t, hasStatus)
}

func TestSubscribeNewsletter(t *testing.T) {
	c, srv := newTestClient(t)

	require.NoError(t, c.SubscribeNewsletter(context.Background(), "ada@example.com"))

	rec := soleRecord(t, srv, "subscribers")
	assert.Equal(t, "ada@example.com", rec["email"])
	assertStamped(t, rec, "subscribedAt")
}

func TestRequestMeeting(t *testing.T) {
	c, srv := newTestClient(t)

	err := c.RequestMeeting(context.Background(), models.MeetingRequest{
		Name:          "Ada",
		Email:         "ada@example.com",
		Topic:         "Redesign",
		PreferredDate: "2026-09-01",
		PreferredTime: "10:00",
	})
	require.NoError(t, err)

	rec := soleRecord(t, srv, "meeting_requests")
	assert.Equal(t, "pending", rec["status"])
	assertStamped(t, rec, "requestedAt")
}

func TestSubmitOnboarding(t *testing.T) {
	c, srv := newTestClient(t)

	err := c.SubmitOnboarding(context.Background(), models.OnboardingSubmission{
		CompanyName: "Acme",
		ContactName: "Ada",
		Email:       "ada@acme.com",
		ProjectType: "E-Commerce",
		Goals:       "Sell more anvils",
	})
	require.NoError(t, err)

	rec := soleRecord(t, srv, "onboarding")
	assert.Equal(t, "new", rec["status"])
	assertStamped(t, rec, "submittedAt")
}

func TestSubmitPartnerApplication(t *testing.T) {
	c, srv := newTestClient(t)

	err := c.SubmitPartnerApplication(context.Background(), models.PartnerApplication{
		Name:  "Ada",
		Email: "ada@example.com",
		Role:  "Developer",
	})
	require.NoError(t, err)

	rec := soleRecord(t, srv, "partner_applications")
	assert.Equal(t, "new", rec["status"])
	assertStamped(t, rec, "submittedAt")
}

func TestSubmitTestimonial(t *testing.T) {
	c, srv := newTestClient(t)

	err := c.SubmitTestimonial(context.Background(), models.TestimonialSubmission{
		Name:    "Ada",
		Company: "Acme",
		Content: "Great work.",
		Rating:  5,
	})
	require.NoError(t, err)

	rec := soleRecord(t, srv, "testimonial_submissions")
	assert.Equal(t, "pending", rec["status"])
	assertStamped(t, rec, "submittedAt")
}

// The caller never picks record identifiers; any id on the payload is
// stripped before the write.
func TestSubmitStripsPayloadID(t *testing.T) {
	c, srv := newTestClient(t)

	err := c.SubmitContactMessage(context.Background(), models.ContactMessage{
		ID:      "chosen-by-caller",
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "hi",
	})
	require.NoError(t, err)

	rec := soleRecord(t, srv, "messages")
	assert.NotEqual(t, "chosen-by-caller", rec["id"])
}

func TestSubmitRejectedWritesNothing(t *testing.T) {
	c, srv := newTestClient(t)
	srv.FailCreates(true)

	err := c.SubmitContactMessage(context.Background(), models.ContactMessage{
		Name: "Ada", Email: "ada@example.com", Message: "hi",
	})
	require.Error(t, err)
	assert.Empty(t, srv.Records("messages"))
}

func TestDeleteRecord(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Seed("messages", map[string]any{"id": "m1", "text": "spam"})

	require.NoError(t, c.DeleteRecord(context.Background(), "messages", "m1"))
	assert.Empty(t, srv.Records("messages"))

	// Deleting an identifier that is already gone is still a success.
	require.NoError(t, c.DeleteRecord(context.Background(), "messages", "m1"))
}
