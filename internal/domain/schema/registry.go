package schema

import "sort"

// registry declares every content entity the CRUD engine serves. Adding an
// entity here is all that is needed for it to gain admin CRUD, toggles,
// public reads and uploads.
var registry = map[string]Entity{
	"awards": {
		Name:         "awards",
		Table:        "awards",
		Lifecycle:    LifecycleActive,
		HasSortOrder: true,
		PublicRead:   true,
		UploadPrefix: "awards/",
		SearchFields: []string{"title", "issuer"},
		Fields: []Field{
			{Name: "title", Kind: KindString, Required: true, MaxLen: 255},
			{Name: "issuer", Kind: KindString, MaxLen: 255},
			{Name: "year", Kind: KindInt, Min: intPtr(1900), Max: intPtr(2100), Default: 0},
			{Name: "description", Kind: KindString},
			{Name: "image_url", Kind: KindURL},
		},
	},
	"blog-posts": {
		Name:         "blog-posts",
		Table:        "blog_posts",
		Lifecycle:    LifecycleStatus,
		Slug:         &SlugSpec{Source: "title", MaxLen: 200},
		HasFeatured:  true,
		HasSortOrder: true,
		PublicRead:   true,
		UploadPrefix: "blog/",
		SearchFields: []string{"title", "excerpt"},
		Fields: []Field{
			{Name: "title", Kind: KindString, Required: true, MaxLen: 255},
			{Name: "excerpt", Kind: KindString},
			{Name: "content", Kind: KindString, Required: true},
			{Name: "cover_image_url", Kind: KindURL},
			{Name: "scheduled_for", Kind: KindTime},
		},
	},
	"faqs": {
		Name:         "faqs",
		Table:        "faqs",
		Lifecycle:    LifecycleActive,
		HasSortOrder: true,
		PublicRead:   true,
		SearchFields: []string{"question", "category"},
		Fields: []Field{
			{Name: "question", Kind: KindString, Required: true},
			{Name: "answer", Kind: KindString, Required: true},
			{Name: "category", Kind: KindString, MaxLen: 100},
		},
	},
	"hero-sections": {
		Name:         "hero-sections",
		Table:        "hero_sections",
		Lifecycle:    LifecycleActive,
		HasSortOrder: true,
		PublicRead:   true,
		UploadPrefix: "hero/",
		SearchFields: []string{"heading"},
		Fields: []Field{
			{Name: "heading", Kind: KindString, Required: true, MaxLen: 255},
			{Name: "subheading", Kind: KindString},
			{Name: "cta_label", Kind: KindString, MaxLen: 100},
			{Name: "cta_url", Kind: KindURL},
			{Name: "background_image_url", Kind: KindURL},
		},
	},
	"pages": {
		Name:         "pages",
		Table:        "pages",
		Lifecycle:    LifecycleStatus,
		Slug:         &SlugSpec{Source: "title", MaxLen: 200},
		HasSortOrder: true,
		PublicRead:   true,
		SearchFields: []string{"title"},
		Fields: []Field{
			{Name: "title", Kind: KindString, Required: true, MaxLen: 255},
			{Name: "content", Kind: KindString, Required: true},
			{Name: "meta_title", Kind: KindString, MaxLen: 255},
			{Name: "meta_description", Kind: KindString},
		},
	},
	"projects": {
		Name:          "projects",
		Table:         "projects",
		Lifecycle:     LifecycleActive,
		Slug:          &SlugSpec{Source: "title", MaxLen: 200},
		HasFeatured:   true,
		HasSortOrder:  true,
		PublicRead:    true,
		UploadPrefix:  "projects/",
		GalleryPrefix: "projects/gallery/",
		SearchFields:  []string{"title", "client_name"},
		Fields: []Field{
			{Name: "title", Kind: KindString, Required: true, MaxLen: 255},
			{Name: "client_name", Kind: KindString, MaxLen: 255},
			{Name: "summary", Kind: KindString},
			{Name: "content", Kind: KindString},
			{Name: "cover_image_url", Kind: KindURL},
			{Name: "website_url", Kind: KindURL},
			{Name: "year", Kind: KindInt, Min: intPtr(1900), Max: intPtr(2100), Default: 0},
		},
	},
	"services": {
		Name:         "services",
		Table:        "services",
		Lifecycle:    LifecycleActive,
		Slug:         &SlugSpec{Source: "name", MaxLen: 200},
		HasFeatured:  true,
		HasSortOrder: true,
		PublicRead:   true,
		UploadPrefix: "services/",
		SearchFields: []string{"name", "summary"},
		Fields: []Field{
			{Name: "name", Kind: KindString, Required: true, MaxLen: 255},
			{Name: "summary", Kind: KindString},
			{Name: "description", Kind: KindString},
			{Name: "icon", Kind: KindString, MaxLen: 100},
			{Name: "image_url", Kind: KindURL},
		},
	},
	"team-members": {
		Name:         "team-members",
		Table:        "team_members",
		Lifecycle:    LifecycleActive,
		Slug:         &SlugSpec{Source: "name", MaxLen: 200},
		HasSortOrder: true,
		PublicRead:   true,
		UploadPrefix: "team/",
		SearchFields: []string{"name", "role"},
		Fields: []Field{
			{Name: "name", Kind: KindString, Required: true, MaxLen: 255},
			{Name: "role", Kind: KindString, Required: true, MaxLen: 255},
			{Name: "bio", Kind: KindString},
			{Name: "image_url", Kind: KindURL},
			{Name: "github_url", Kind: KindURL},
			{Name: "twitter_url", Kind: KindURL},
			{Name: "linkedin_url", Kind: KindURL},
		},
	},
	"testimonials": {
		Name:         "testimonials",
		Table:        "testimonials",
		Lifecycle:    LifecycleActive,
		HasFeatured:  true,
		HasSortOrder: true,
		PublicRead:   true,
		UploadPrefix: "testimonials/",
		SearchFields: []string{"author_name", "company"},
		Fields: []Field{
			{Name: "author_name", Kind: KindString, Required: true, MaxLen: 255},
			{Name: "author_role", Kind: KindString, MaxLen: 255},
			{Name: "company", Kind: KindString, MaxLen: 255},
			{Name: "quote", Kind: KindString, Required: true},
			{Name: "avatar_url", Kind: KindURL},
			{Name: "rating", Kind: KindInt, Min: intPtr(1), Max: intPtr(5), Default: 5},
		},
	},
	"newsletter-subscribers": {
		Name:         "newsletter-subscribers",
		Table:        "newsletter_subscribers",
		Lifecycle:    LifecycleActive,
		HasSortOrder: true,
		PublicCreate: true,
		SearchFields: []string{"email"},
		Fields: []Field{
			{Name: "email", Kind: KindEmail, Required: true, MaxLen: 255},
		},
	},
	"contact-submissions": {
		Name:         "contact-submissions",
		Table:        "contact_submissions",
		Lifecycle:    LifecycleNone,
		HasReadFlag:  true,
		HasSortOrder: true,
		PublicCreate: true,
		SearchFields: []string{"name", "email", "subject"},
		Fields: []Field{
			{Name: "name", Kind: KindString, Required: true, MaxLen: 255},
			{Name: "email", Kind: KindEmail, Required: true, MaxLen: 255},
			{Name: "subject", Kind: KindString, MaxLen: 255},
			{Name: "message", Kind: KindString, Required: true},
		},
	},
}

// Lookup resolves a route segment to its entity declaration.
func Lookup(name string) (Entity, bool) {
	e, ok := registry[name]
	return e, ok
}

// All returns every declared entity ordered by name.
func All() []Entity {
	out := make([]Entity, 0, len(registry))
	for _, e := range registry {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
