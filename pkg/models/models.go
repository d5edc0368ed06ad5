// Package models holds the entity schema, one explicit struct per
// store collection. Entities are constructed at the store boundary
// from record field maps; nothing downstream inspects raw store
// payloads.
package models

// Service is one offering on the services page.
type Service struct {
	ID              string   `json:"id,omitempty"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	PriceStart      string   `json:"priceStart"`
	Icon            string   `json:"icon"`
	LongDescription string   `json:"longDescription,omitempty"`
	Features        []string `json:"features,omitempty"`
}

type PricingTier struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Features    []string `json:"features"`
	Recommended bool     `json:"recommended,omitempty"`
}

type Testimonial struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
	Rating  int    `json:"rating,omitempty"`
}

type BlogPost struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	Category string `json:"category"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// SiteContent is the singleton document backing the hero, contact and
// about sections. Every field has a compiled-in default.
type SiteContent struct {
	HeroTitle      string `json:"heroTitle"`
	HeroSubtitle   string `json:"heroSubtitle"`
	HeroTagline    string `json:"heroTagline"`
	ContactEmail   string `json:"contactEmail"`
	ContactPhone   string `json:"contactPhone"`
	ContactAddress string `json:"contactAddress"`

	AboutTitle             string `json:"aboutTitle,omitempty"`
	AboutSubtitle          string `json:"aboutSubtitle,omitempty"`
	AboutStory             string `json:"aboutStory,omitempty"`
	AboutMission           string `json:"aboutMission,omitempty"`
	GlobalReachTitle       string `json:"globalReachTitle,omitempty"`
	GlobalReachDescription string `json:"globalReachDescription,omitempty"`
}

type Career struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Salary      string `json:"salary"`
	Location    string `json:"location"`
	Type        string `json:"type"` // Full-time, Part-time, Contract, Remote
}

type JobApplication struct {
	ID          string    `json:"id,omitempty"`
	JobID       string    `json:"jobId"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	ResumeURL   string    `json:"resumeUrl"`
	Message     string    `json:"message"`
	SubmittedAt Timestamp `json:"submittedAt"`
}

type Project struct {
	ID             string   `json:"id,omitempty"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	ImageURL       string   `json:"imageUrl"`
	BeforeImageURL string   `json:"beforeImageUrl,omitempty"`
	Category       string   `json:"category"`
	TechStack      []string `json:"techStack"`
}

type FAQ struct {
	ID       string `json:"id,omitempty"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

type TeamMember struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	ImageURL string `json:"imageUrl"`
	Bio      string `json:"bio"`
}

type CaseStudy struct {
	ID        string   `json:"id,omitempty"`
	Title     string   `json:"title"`
	Problem   string   `json:"problem"`
	Solution  string   `json:"solution"`
	Results   string   `json:"results"`
	ImageURL  string   `json:"imageUrl"`
	TechStack []string `json:"techStack"`
}

type EstimatorItem struct {
	ID       string  `json:"id,omitempty"`
	Label    string  `json:"label"`
	Price    float64 `json:"price"`
	Category string  `json:"category"` // project_type or feature
	Icon     string  `json:"icon"`
}

type MeetingRequest struct {
	ID            string    `json:"id,omitempty"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Topic         string    `json:"topic"`
	PreferredDate string    `json:"preferredDate"`
	PreferredTime string    `json:"preferredTime"`
	Status        string    `json:"status,omitempty"` // pending, confirmed, cancelled
	RequestedAt   Timestamp `json:"requestedAt"`
}

type Stat struct {
	ID    string `json:"id,omitempty"`
	Label string `json:"label"`
	Value string `json:"value"`
	Order int    `json:"order,omitempty"`
}

// Announcement is the singleton banner document. A nil announcement
// means no banner is configured.
type Announcement struct {
	Text     string `json:"text"`
	Link     string `json:"link,omitempty"`
	LinkText string `json:"linkText,omitempty"`
	Enabled  bool   `json:"enabled"`
}

type GlossaryTerm struct {
	ID         string `json:"id,omitempty"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Category   string `json:"category"`
}

// ActiveProject is a client-facing progress record, looked up by the
// tracking code the client was given.
type ActiveProject struct {
	ID            string `json:"id,omitempty"`
	ProjectID     string `json:"projectId"`
	ClientName    string `json:"clientName"`
	Status        string `json:"status"` // Discovery, Design, Development, Testing, Launch
	Progress      int    `json:"progress"`
	LastUpdate    string `json:"lastUpdate"`
	NextMilestone string `json:"nextMilestone"`
}

type Resource struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"` // PDF, E-Book, Checklist, Template
	DownloadURL string `json:"downloadUrl"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type Event struct {
	ID              string `json:"id,omitempty"`
	Title           string `json:"title"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Type            string `json:"type"` // Webinar, Workshop, Meetup
	Description     string `json:"description"`
	ImageURL        string `json:"imageUrl,omitempty"`
	RegistrationURL string `json:"registrationUrl,omitempty"`
}

type Industry struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type BrandAsset struct {
	ID         string `json:"id,omitempty"`
	Title      string `json:"title"`
	Type       string `json:"type"` // Logo, Color, Image, Font
	FileURL    string `json:"fileUrl"`
	PreviewURL string `json:"previewUrl,omitempty"`
	Value      string `json:"value,omitempty"` // hex code for colors
}

type OnboardingSubmission struct {
	ID              string    `json:"id,omitempty"`
	CompanyName     string    `json:"companyName"`
	ContactName     string    `json:"contactName"`
	Email           string    `json:"email"`
	ProjectType     string    `json:"projectType"`
	ExistingWebsite string    `json:"existingWebsite,omitempty"`
	Goals           string    `json:"goals"`
	DriveLink       string    `json:"driveLink,omitempty"`
	Status          string    `json:"status,omitempty"`
	SubmittedAt     Timestamp `json:"submittedAt"`
}

type StartupPackage struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Subtitle    string   `json:"subtitle"`
	Price       string   `json:"price"`
	PriceSuffix string   `json:"priceSuffix,omitempty"`
	Features    []string `json:"features"`
	IsPopular   bool     `json:"isPopular,omitempty"`
	CTAText     string   `json:"ctaText,omitempty"`
}

type StartupFAQ struct {
	ID       string `json:"id,omitempty"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type WhiteLabelStep struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StepNumber  int    `json:"stepNumber"`
}

type DesignSystemColor struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Hex     string `json:"hex"`
	BGClass string `json:"bgClass,omitempty"`
}

type PartnerApplication struct {
	ID           string    `json:"id,omitempty"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"` // Developer, Designer, ...
	PortfolioURL string    `json:"portfolioUrl"`
	HourlyRate   string    `json:"hourlyRate"`
	Skills       string    `json:"skills"`
	Status       string    `json:"status,omitempty"`
	SubmittedAt  Timestamp `json:"submittedAt"`
}

// LocationData backs one city landing page. When no record exists for
// a slug, a presentable entity is synthesized from the slug itself.
type LocationData struct {
	ID              string `json:"id,omitempty"`
	CitySlug        string `json:"citySlug"` // e.g. "new-york"
	CityName        string `json:"cityName"` // e.g. "New York"
	HeroTitle       string `json:"heroTitle,omitempty"`
	HeroDescription string `json:"heroDescription,omitempty"`
}

type TestimonialSubmission struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Company     string    `json:"company"`
	Content     string    `json:"content"`
	Rating      int       `json:"rating"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Status      string    `json:"status,omitempty"`
	SubmittedAt Timestamp `json:"submittedAt"`
}

type NewsletterIssue struct {
	ID         string `json:"id,omitempty"`
	Subject    string `json:"subject"`
	SentAt     string `json:"sentAt"` // ISO date
	Preview    string `json:"preview"`
	ContentURL string `json:"contentUrl,omitempty"`
}

type Invoice struct {
	ID            string `json:"id,omitempty"`
	InvoiceNumber string `json:"invoiceNumber"`
	Description   string `json:"description"`
	Amount        string `json:"amount"`
	Status        string `json:"status"` // Paid, Pending, Overdue
	Date          string `json:"date"`
	DownloadURL   string `json:"downloadUrl,omitempty"`
}

type ClientDocument struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Type        string `json:"type"` // PDF, DOC, Image
	Date        string `json:"date"`
	DownloadURL string `json:"downloadUrl"`
	Category    string `json:"category,omitempty"` // Contract, Scope, Report
}

// Message is one record in the shared messages collection, which holds
// live chat, contact-form submissions and referrals side by side. Type
// disambiguates: empty for chat, contact_form_submission or referral
// otherwise. Chat carries Text, the forms carry Message.
type Message struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name,omitempty"`
	Email       string    `json:"email,omitempty"`
	Message     string    `json:"message,omitempty"`
	Text        string    `json:"text,omitempty"`
	UserID      string    `json:"userId,omitempty"`
	Type        string    `json:"type,omitempty"`
	IsAdmin     bool      `json:"isAdmin"`
	CreatedAt   Timestamp `json:"createdAt"`
	SubmittedAt Timestamp `json:"submittedAt"`
}

// ContactMessage is a contact-form payload before submission.
type ContactMessage struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Type      string    `json:"type,omitempty"`
	CreatedAt Timestamp `json:"createdAt"`
}

// Referral is a refer-a-friend payload, filed into messages with
// type=referral.
type Referral struct {
	ID           string    `json:"id,omitempty"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	RefereeName  string    `json:"refereeName"`
	RefereeEmail string    `json:"refereeEmail"`
	Message      string    `json:"message,omitempty"`
	SubmittedAt  Timestamp `json:"submittedAt"`
}

type Subscriber struct {
	ID           string    `json:"id,omitempty"`
	Email        string    `json:"email"`
	SubscribedAt Timestamp `json:"subscribedAt"`
}
