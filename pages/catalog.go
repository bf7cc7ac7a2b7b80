package pages

// Site content. Kept in memory; editing the catalogs and redeploying is the
// whole CMS story for a site this size.

type Project struct {
	Name    string
	Tagline string
	Image   string
	URL     string
}

type Package struct {
	Slug  string
	Name  string
	Desc  string
	Image string
}

type Starter struct {
	Name string
	Desc string
}

type Plan struct {
	Name     string
	Price    int
	Features []string
}

var Projects = []Project{
	{
		Name:    "Arnold Brothers Guitar",
		Tagline: "Band site with gigs calendar",
		Image:   "img/arnold-brothers.jpg",
		URL:     "https://arnoldbrothersguitar.co.uk/",
	},
	{Name: "Cafe Bloom", Tagline: "Local cafe with online ordering"},
	{Name: "Chester Fitness", Tagline: "Trainer bookings + Stripe checkout"},
}

var Packages = []Package{
	{
		Slug:  "essential",
		Name:  "Essential",
		Desc:  "Perfect for a simple, clean landing page.",
		Image: "img/packages/essential.jpg",
	},
	{
		Slug:  "professional",
		Name:  "Professional",
		Desc:  "Best for businesses needing bookings & payments.",
		Image: "img/packages/professional.jpg",
	},
	{
		Slug:  "elite",
		Name:  "Elite",
		Desc:  "Premium builds with custom features and integrations.",
		Image: "img/packages/elite.jpg",
	},
}

var Starters = []Starter{
	{Name: "Edge", Desc: "Futuristic startup landing page with gradient hero & CTAs"},
	{Name: "Local Hero", Desc: "Small business site with sections for services & testimonials"},
	{Name: "Showcase Pro", Desc: "Creative portfolio with gallery and case studies"},
}

var Plans = []Plan{
	{Name: "Starter", Price: 199, Features: []string{
		"1–3 pages, mobile-first", "Template customisation", "Contact form", "Basic SEO",
	}},
	{Name: "Business", Price: 499, Features: []string{
		"Up to 6 pages", "Booking calendar", "Stripe deposits", "SEO + Analytics",
	}},
	{Name: "Pro", Price: 899, Features: []string{
		"Custom design & components", "Blog/CMS option", "Performance budget", "Priority support",
	}},
}

// PackageBySlug returns the package for a detail page, or nil.
func PackageBySlug(slug string) *Package {
	for i := range Packages {
		if Packages[i].Slug == slug {
			return &Packages[i]
		}
	}
	return nil
}
