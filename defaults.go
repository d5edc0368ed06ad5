package sitekit

import "github.com/brotech/sitekit/pkg/models"

// Compiled-in fallback tables. They satisfy the same shape contract as
// live records, are substituted only when the live collection is
// empty, and are never written back to the store.

// DefaultSiteContent is substituted wholesale when the site_content
// document is absent or unreachable, and per-field when individual
// fields are missing.
var DefaultSiteContent = models.SiteContent{
	HeroTitle:      "Brotech WebSolutions",
	HeroSubtitle:   "Building the Future of the Web",
	HeroTagline:    "Fast. Reliable. Scalable.",
	ContactEmail:   "hello@brotech.com",
	ContactPhone:   "+1 (555) 123-4567",
	ContactAddress: "123 Tech Avenue, Silicon Valley, CA",

	AboutTitle:             "We Are Brotech",
	AboutSubtitle:          "A passionate team of developers, designers, and strategists dedicated to building the future of the web.",
	AboutStory:             "Founded in 2018, Brotech WebSolutions started with a simple mission: to make high-quality web technology accessible to businesses of all sizes. What began as a small freelance operation has grown into a full-service agency with clients across the globe.",
	AboutMission:           "We believe in transparency, speed, and code quality. We don't just build websites; we build digital infrastructures that scale with your business.",
	GlobalReachTitle:       "Global Reach",
	GlobalReachDescription: "Serving clients remotely from Silicon Valley to Singapore.",
}

var defaultTeam = []models.TeamMember{
	{ID: "1", Name: "Sarah Johnson", Role: "CEO & Founder", Bio: "Visionary leader with 15 years of tech experience.", ImageURL: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&q=80&w=400"},
	{ID: "2", Name: "Michael Chen", Role: "CTO", Bio: "Full-stack expert obsessed with scalable architecture.", ImageURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&q=80&w=400"},
	{ID: "3", Name: "Emily Davis", Role: "Lead Designer", Bio: "Creating beautiful, intuitive user experiences.", ImageURL: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?auto=format&fit=crop&q=80&w=400"},
	{ID: "4", Name: "David Wilson", Role: "Head of Marketing", Bio: "Growth hacker connecting brands with audiences.", ImageURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&q=80&w=400"},
}

var defaultGlossary = []models.GlossaryTerm{
	{ID: "1", Term: "API", Definition: "Application Programming Interface - allows different software to talk to each other.", Category: "Development"},
	{ID: "2", Term: "SEO", Definition: "Search Engine Optimization - the practice of increasing traffic to your website via organic search results.", Category: "Marketing"},
	{ID: "3", Term: "React", Definition: "A JavaScript library for building user interfaces, maintained by Meta.", Category: "Frontend"},
}

var defaultResources = []models.Resource{
	{ID: "1", Title: "The Ultimate SEO Checklist 2024", Description: "Ensure your website ranks #1 on Google with our comprehensive 50-point checklist.", Type: "Checklist", DownloadURL: "#"},
	{ID: "2", Title: "Web Development Cost Guide", Description: "How to budget for your next big project without getting ripped off.", Type: "E-Book", DownloadURL: "#"},
	{ID: "3", Title: "Security Best Practices", Description: "Keep your customer data safe with these mandatory protocols.", Type: "PDF", DownloadURL: "#"},
}

var defaultEvents = []models.Event{
	{ID: "1", Title: "Modern Web Architecture Summit", Date: "2024-06-15", Time: "14:00 EST", Type: "Webinar", Description: "Learn how to scale applications using modern serverless stacks.", ImageURL: "https://images.unsplash.com/photo-1544197150-b99a580bb7a8?auto=format&fit=crop&q=80&w=400"},
	{ID: "2", Title: "SEO Masterclass", Date: "2024-06-22", Time: "10:00 EST", Type: "Workshop", Description: "Practical tips to double your organic traffic in 30 days.", ImageURL: "https://images.unsplash.com/photo-1432888498266-38ffec3eaf0a?auto=format&fit=crop&q=80&w=400"},
}

var defaultIndustries = []models.Industry{
	{ID: "1", Name: "Healthcare", Description: "HIPAA-compliant platforms for hospitals and clinics.", Icon: "activity"},
	{ID: "2", Name: "Real Estate", Description: "High-conversion listings and property management portals.", Icon: "home"},
	{ID: "3", Name: "E-Commerce", Description: "Scalable online stores built on Shopify and Custom stacks.", Icon: "shopping-bag"},
}

var defaultBrandAssets = []models.BrandAsset{
	{ID: "1", Title: "Primary Logo", Type: "Logo", FileURL: "#", PreviewURL: "https://via.placeholder.com/150/0000FF/FFFFFF?text=Logo"},
	{ID: "2", Title: "Brand Blue", Type: "Color", FileURL: "#", Value: "#2563EB"},
}

var defaultStartupPackages = []models.StartupPackage{
	{
		ID: "1", Name: "Clickable Prototype", Subtitle: "For fundraising & validation", Price: "$2,500", PriceSuffix: "/ one-time",
		Features: []string{"High-fidelity Figma Design", "Interactive Click-flow", "User Journey Map", "1 Week Delivery"}, CTAText: "Select Plan",
	},
	{
		ID: "2", Name: "MVP Launch", Subtitle: "Get to market fast", Price: "$8,000", PriceSuffix: "/ starting",
		Features: []string{"Core Feature Development", "Auth & Database Setup", "Payment Integration (Stripe)", "Admin Dashboard", "4 Week Delivery"}, IsPopular: true, CTAText: "Start Building",
	},
	{
		ID: "3", Name: "Scale-Up", Subtitle: "Post-launch growth", Price: "$15k+", PriceSuffix: "/ custom",
		Features: []string{"Advanced Features", "Mobile App (iOS/Android)", "AI Integration", "Dedicated Team"}, CTAText: "Talk to Us",
	},
}

var defaultStartupFAQs = []models.StartupFAQ{
	{ID: "1", Question: "Do you take equity?", Answer: "No. We are a service provider. You own 100% of the code and IP from day one."},
	{ID: "2", Question: "What tech stack do you use?", Answer: "We stick to industry standards: React, Node.js, Firebase/Postgres, and Tailwind CSS."},
	{ID: "3", Question: "Can you sign an NDA?", Answer: "Absolutely. We are happy to sign an NDA before you share your idea."},
}

var defaultWhiteLabelSteps = []models.WhiteLabelStep{
	{ID: "1", StepNumber: 1, Title: "You Sell It", Description: "You handle the client relationship, sales, and strategy. You close the deal."},
	{ID: "2", StepNumber: 2, Title: "We Build It", Description: "We develop the project using modern tech stacks. We provide weekly white-label updates you can forward to your client."},
	{ID: "3", StepNumber: 3, Title: "You Take Credit", Description: "We hand over the code and credentials. You launch the project and look like a rockstar."},
}

var defaultDesignColors = []models.DesignSystemColor{
	{ID: "1", Name: "Blue 600", Hex: "#2563EB", BGClass: "bg-blue-600"},
	{ID: "2", Name: "Blue 700", Hex: "#1D4ED8", BGClass: "bg-blue-700"},
	{ID: "3", Name: "Slate 900", Hex: "#0F172A", BGClass: "bg-slate-900"},
	{ID: "4", Name: "Slate 800", Hex: "#1E293B", BGClass: "bg-slate-800"},
	{ID: "5", Name: "Green 500", Hex: "#22C55E", BGClass: "bg-green-500"},
	{ID: "6", Name: "Red 500", Hex: "#EF4444", BGClass: "bg-red-500"},
	{ID: "7", Name: "Orange 500", Hex: "#F97316", BGClass: "bg-orange-500"},
	{ID: "8", Name: "Purple 600", Hex: "#9333EA", BGClass: "bg-purple-600"},
}

var defaultNewsletters = []models.NewsletterIssue{
	{ID: "1", Subject: "October Product Update: AI Tools", SentAt: "2023-10-15", Preview: "Discover how we are integrating AI into our workflow to speed up delivery times by 40%.", ContentURL: "#"},
	{ID: "2", Subject: "The Future of Headless CMS", SentAt: "2023-09-01", Preview: "Why we are moving all new enterprise projects to Sanity and Contentful.", ContentURL: "#"},
	{ID: "3", Subject: "Client Success: Scaling to 1M Users", SentAt: "2023-08-12", Preview: "A deep dive into the infrastructure changes required to handle massive traffic spikes.", ContentURL: "#"},
}

var defaultInvoices = []models.Invoice{
	{ID: "1", InvoiceNumber: "INV-2024-001", Description: "Website Deposit (50%)", Amount: "$2,500.00", Status: "Paid", Date: "2024-10-15", DownloadURL: "#"},
	{ID: "2", InvoiceNumber: "INV-2024-002", Description: "Hosting Setup", Amount: "$150.00", Status: "Paid", Date: "2024-10-20", DownloadURL: "#"},
	{ID: "3", InvoiceNumber: "INV-2024-003", Description: "Milestone 2: Design Approval", Amount: "$2,500.00", Status: "Pending", Date: "2024-11-01", DownloadURL: "#"},
}

var defaultClientDocuments = []models.ClientDocument{
	{ID: "1", Title: "Master Services Agreement", Type: "PDF", Category: "Contract", Date: "2024-10-10", DownloadURL: "#"},
	{ID: "2", Title: "Project Scope - Phase 1", Type: "PDF", Category: "Scope", Date: "2024-10-12", DownloadURL: "#"},
	{ID: "3", Title: "Brand Guidelines", Type: "PDF", Category: "Report", Date: "2024-10-25", DownloadURL: "#"},
	{ID: "4", Title: "NDA", Type: "PDF", Category: "Contract", Date: "2024-10-01", DownloadURL: "#"},
}

// demoProject is returned for the reserved demo tracking code without
// contacting the store.
var demoProject = models.ActiveProject{
	ID:            "demo",
	ProjectID:     demoTrackingCode,
	ClientName:    "Demo Client",
	Status:        "Development",
	Progress:      65,
	LastUpdate:    "Frontend implementation 80% complete. Moving to API integration.",
	NextMilestone: "User Acceptance Testing (UAT)",
}
