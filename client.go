package sitekit

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/brotech/sitekit/pkg/constants"
	"github.com/brotech/sitekit/pkg/logger"
	"github.com/brotech/sitekit/pkg/store"
)

// Config carries the store endpoint and project credentials.
type Config struct {
	Endpoint string
	Project  string
	Key      string

	Logger logger.Logger
}

// ConfigFromEnv reads SITEKIT_ENDPOINT, SITEKIT_PROJECT and
// SITEKIT_KEY, loading a local .env file first when one exists.
func ConfigFromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Endpoint: os.Getenv("SITEKIT_ENDPOINT"),
		Project:  os.Getenv("SITEKIT_PROJECT"),
		Key:      os.Getenv("SITEKIT_KEY"),
	}
	if cfg.Endpoint == "" {
		return cfg, constants.ErrNoEndpoint
	}
	return cfg, nil
}

// Client is the application-facing handle. Create one per process and
// share it; the underlying connection is never re-created per call.
type Client struct {
	store *store.Store
	log   logger.Logger
}

// New dials the store and returns a ready client.
func New(ctx context.Context, cfg Config) (*Client, error) {
	log := cfg.Logger
	if log == nil {
		log = logger.New(os.Stdout)
	}

	s, err := store.Open(ctx, store.Config{
		Endpoint: cfg.Endpoint,
		Project:  cfg.Project,
		Key:      cfg.Key,
		Logger:   log,
	})
	if err != nil {
		return nil, err
	}

	return &Client{store: s, log: log}, nil
}

// FromStore wraps an already opened store handle. Used by tests.
func FromStore(s *store.Store, log logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{store: s, log: log}
}

func (c *Client) Close(ctx context.Context) error {
	return c.store.Close(ctx)
}

// Store collection names.
const (
	collServices               = "services"
	collPricing                = "pricing"
	collTestimonials           = "testimonials"
	collPosts                  = "posts"
	collCareers                = "careers"
	collProjects               = "projects"
	collFAQs                   = "faqs"
	collCaseStudies            = "caseStudies"
	collEstimatorItems         = "estimator_items"
	collStats                  = "stats"
	collTeam                   = "team"
	collGlossary               = "glossary"
	collResources              = "resources"
	collEvents                 = "events"
	collIndustries             = "industries"
	collBrandAssets            = "brand_assets"
	collStartupPackages        = "startup_packages"
	collStartupFAQs            = "startup_faqs"
	collWhiteLabelSteps        = "white_label_steps"
	collDesignColors           = "design_system_colors"
	collNewsletters            = "newsletters"
	collInvoices               = "invoices"
	collClientDocs             = "client_docs"
	collMessages               = "messages"
	collJobApplications        = "jobApplications"
	collSubscribers            = "subscribers"
	collMeetingRequests        = "meeting_requests"
	collPartnerApplications    = "partner_applications"
	collTestimonialSubmissions = "testimonial_submissions"
	collOnboarding             = "onboarding"
	collActiveProjects         = "active_projects"
	collLocations              = "locations"
	collSiteContent            = "site_content"
)
