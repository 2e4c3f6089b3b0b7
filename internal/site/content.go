package site

// Content holds all data rendered into the landing page. The sections are
// pure presentation: the template renders whatever it is given.
type Content struct {
	Brand        string
	Tagline      string
	Hero         Hero
	Steps        []Step
	Features     []Feature
	Testimonials []Testimonial
	LicenseTypes []string
	Chat         ChatWidget
}

// Hero is the top-of-page section.
type Hero struct {
	Badge        string
	Title        string
	Highlight    string
	Lead         string // Markdown
	PrimaryCTA   string
	SecondaryCTA string
}

// Step is one entry in the "how it works" explainer.
type Step struct {
	Title       string
	Description string // Markdown
}

// Feature is one entry in the feature grid.
type Feature struct {
	Title       string
	Description string // Markdown
	Highlights  []string
}

// Testimonial is one entry in the testimonials carousel.
type Testimonial struct {
	Name    string
	Role    string
	Company string
	Quote   string
	Avatar  string
	Rating  int
}

// ChatWidget configures the floating chat widget.
type ChatWidget struct {
	Title       string
	Greeting    string
	Placeholder string
	Endpoint    string
}

// DefaultContent returns the SoftSell landing page content.
func DefaultContent() Content {
	return Content{
		Brand:   "SoftSell",
		Tagline: "Software License Marketplace",
		Hero: Hero{
			Badge:        "Software License Marketplace",
			Title:        "Turn Unused Licenses",
			Highlight:    "Into Cash",
			Lead:         "SoftSell helps you resell your software licenses in minutes. Get **top dollar** for licenses you no longer need.",
			PrimaryCTA:   "Get a Quote",
			SecondaryCTA: "How It Works",
		},
		Steps: []Step{
			{
				Title:       "Upload License",
				Description: "Upload your software license details through our secure portal. We support all major software vendors.",
			},
			{
				Title:       "Get Valuation",
				Description: "Our AI-powered system analyzes the market and provides you with a competitive valuation within minutes.",
			},
			{
				Title:       "Get Paid",
				Description: "Accept the offer and receive payment directly to your bank account or preferred payment method.",
			},
		},
		Features: []Feature{
			{
				Title:       "Instant Valuation",
				Description: "Get real-time license valuations based on current market trends using our AI-powered pricing engine.",
				Highlights:  []string{"30-second valuation", "Market-based pricing", "No obligations"},
			},
			{
				Title:       "Fast Payments",
				Description: "Receive your payment within 24 hours of license approval with multiple payout options available.",
				Highlights:  []string{"Same-day processing", "Multiple payment methods", "No hidden fees"},
			},
			{
				Title:       "Secure Transfers",
				Description: "We ensure safe and legal transfer of software licenses with proper documentation and verification.",
				Highlights:  []string{"Encrypted transfers", "Legal compliance", "Verified buyers"},
			},
			{
				Title:       "24/7 Support",
				Description: "Our support team is always ready to help you through the process with expert guidance.",
				Highlights:  []string{"Live chat support", "Dedicated agents", "Seller protection"},
			},
		},
		Testimonials: []Testimonial{
			{
				Name:    "Alice Johnson",
				Role:    "IT Manager",
				Company: "TechNova Inc.",
				Quote:   "SoftSell made it incredibly easy to sell our unused licenses. The process was smooth and transparent.",
				Avatar:  "https://i.pravatar.cc/150?img=3",
				Rating:  5,
			},
			{
				Name:    "Joseph Paul",
				Role:    "Procurement Head",
				Company: "NextGen Solutions",
				Quote:   "We recouped value from old software thanks to SoftSell. Highly recommended for any business with surplus licenses.",
				Avatar:  "https://i.pravatar.cc/150?img=53",
				Rating:  5,
			},
			{
				Name:    "Sarah Williams",
				Role:    "Operations Director",
				Company: "Global Systems",
				Quote:   "The ROI we've seen from using SoftSell has been tremendous. Their platform helped us optimize our software budget effectively.",
				Avatar:  "https://i.pravatar.cc/150?img=10",
				Rating:  4,
			},
			{
				Name:    "Michael Chen",
				Role:    "CFO",
				Company: "Innovate Corp",
				Quote:   "SoftSell's marketplace is a game-changer for companies looking to manage software assets more efficiently. The transaction process is seamless.",
				Avatar:  "https://i.pravatar.cc/150?img=69",
				Rating:  5,
			},
		},
		LicenseTypes: []string{
			"Microsoft / Office",
			"Adobe Creative Cloud",
			"Autodesk",
			"VMware",
			"Oracle",
			"Other",
		},
		Chat: ChatWidget{
			Title:       "SoftSell Assistant",
			Greeting:    "How can I help you with your software licenses today?",
			Placeholder: "Ask something...",
			Endpoint:    "/api/chat",
		},
	}
}
