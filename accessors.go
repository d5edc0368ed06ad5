package sitekit

import "github.com/brotech/sitekit/pkg/models"

// Content accessors. Each binds one entity kind to one collection and,
// where one exists, a compiled-in fallback table.

func (c *Client) Services() *Feed[models.Service] {
	return newFeed[models.Service](c, collServices, nil, nil)
}

func (c *Client) Pricing() *Feed[models.PricingTier] {
	return newFeed[models.PricingTier](c, collPricing, nil, nil)
}

func (c *Client) Testimonials() *Feed[models.Testimonial] {
	return newFeed[models.Testimonial](c, collTestimonials, nil, nil)
}

func (c *Client) Posts() *Feed[models.BlogPost] {
	return newFeed[models.BlogPost](c, collPosts, nil, nil)
}

func (c *Client) Careers() *Feed[models.Career] {
	return newFeed[models.Career](c, collCareers, nil, nil)
}

func (c *Client) Projects() *Feed[models.Project] {
	return newFeed[models.Project](c, collProjects, nil, nil)
}

func (c *Client) FAQs() *Feed[models.FAQ] {
	return newFeed[models.FAQ](c, collFAQs, nil, nil)
}

func (c *Client) CaseStudies() *Feed[models.CaseStudy] {
	return newFeed[models.CaseStudy](c, collCaseStudies, nil, nil)
}

func (c *Client) EstimatorItems() *Feed[models.EstimatorItem] {
	return newFeed[models.EstimatorItem](c, collEstimatorItems, nil, nil)
}

func (c *Client) Stats() *Feed[models.Stat] {
	return newFeed[models.Stat](c, collStats, nil, nil)
}

func (c *Client) Team() *Feed[models.TeamMember] {
	return newFeed(c, collTeam, defaultTeam, nil)
}

func (c *Client) Glossary() *Feed[models.GlossaryTerm] {
	return newFeed(c, collGlossary, defaultGlossary, nil)
}

func (c *Client) Resources() *Feed[models.Resource] {
	return newFeed(c, collResources, defaultResources, nil)
}

func (c *Client) Events() *Feed[models.Event] {
	return newFeed(c, collEvents, defaultEvents, nil)
}

func (c *Client) Industries() *Feed[models.Industry] {
	return newFeed(c, collIndustries, defaultIndustries, nil)
}

func (c *Client) BrandAssets() *Feed[models.BrandAsset] {
	return newFeed(c, collBrandAssets, defaultBrandAssets, nil)
}

func (c *Client) StartupPackages() *Feed[models.StartupPackage] {
	return newFeed(c, collStartupPackages, defaultStartupPackages, nil)
}

func (c *Client) StartupFAQs() *Feed[models.StartupFAQ] {
	return newFeed(c, collStartupFAQs, defaultStartupFAQs, nil)
}

// WhiteLabelSteps orders by step number ascending, for live and
// fallback data alike.
func (c *Client) WhiteLabelSteps() *Feed[models.WhiteLabelStep] {
	return newFeed(c, collWhiteLabelSteps, defaultWhiteLabelSteps,
		func(a, b models.WhiteLabelStep) bool { return a.StepNumber < b.StepNumber })
}

func (c *Client) DesignColors() *Feed[models.DesignSystemColor] {
	return newFeed(c, collDesignColors, defaultDesignColors, nil)
}

// Newsletters orders by send date descending. The sort is stable and
// an absent date sorts last.
func (c *Client) Newsletters() *Feed[models.NewsletterIssue] {
	return newFeed(c, collNewsletters, defaultNewsletters,
		func(a, b models.NewsletterIssue) bool { return a.SentAt > b.SentAt })
}

func (c *Client) Invoices() *Feed[models.Invoice] {
	return newFeed(c, collInvoices, defaultInvoices, nil)
}

func (c *Client) ClientDocuments() *Feed[models.ClientDocument] {
	return newFeed(c, collClientDocs, defaultClientDocuments, nil)
}

// Admin inbox accessors over the submission collections. No fallback
// tables; ordered newest first with unacknowledged (zero) timestamps
// last.

func (c *Client) Messages() *Feed[models.Message] {
	return newFeed[models.Message](c, collMessages, nil,
		func(a, b models.Message) bool { return b.CreatedAt.Before(a.CreatedAt) })
}

func (c *Client) JobApplications() *Feed[models.JobApplication] {
	return newFeed[models.JobApplication](c, collJobApplications, nil,
		func(a, b models.JobApplication) bool { return b.SubmittedAt.Before(a.SubmittedAt) })
}

func (c *Client) Subscribers() *Feed[models.Subscriber] {
	return newFeed[models.Subscriber](c, collSubscribers, nil,
		func(a, b models.Subscriber) bool { return b.SubscribedAt.Before(a.SubscribedAt) })
}

func (c *Client) MeetingRequests() *Feed[models.MeetingRequest] {
	return newFeed[models.MeetingRequest](c, collMeetingRequests, nil,
		func(a, b models.MeetingRequest) bool { return b.RequestedAt.Before(a.RequestedAt) })
}

func (c *Client) PartnerApplications() *Feed[models.PartnerApplication] {
	return newFeed[models.PartnerApplication](c, collPartnerApplications, nil,
		func(a, b models.PartnerApplication) bool { return b.SubmittedAt.Before(a.SubmittedAt) })
}

func (c *Client) TestimonialSubmissions() *Feed[models.TestimonialSubmission] {
	return newFeed[models.TestimonialSubmission](c, collTestimonialSubmissions, nil,
		func(a, b models.TestimonialSubmission) bool { return b.SubmittedAt.Before(a.SubmittedAt) })
}

func (c *Client) OnboardingSubmissions() *Feed[models.OnboardingSubmission] {
	return newFeed[models.OnboardingSubmission](c, collOnboarding, nil,
		func(a, b models.OnboardingSubmission) bool { return b.SubmittedAt.Before(a.SubmittedAt) })
}
