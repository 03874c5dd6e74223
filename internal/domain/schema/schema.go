package schema

// Lifecycle describes how a content entity models visibility. An entity uses
// either an is_active flag or a draft/published status, never both.
type Lifecycle int

const (
	LifecycleNone Lifecycle = iota
	LifecycleActive
	LifecycleStatus
)

// Status values for LifecycleStatus entities.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Kind is the normalization rule applied to a declared field.
type Kind int

const (
	// KindString trims input; blank optional input becomes null.
	KindString Kind = iota
	// KindInt parses input; blank or unparseable input takes the declared
	// default, out-of-range input is rejected.
	KindInt
	// KindBool passes booleans through; absent input resolves to the
	// declared default, never null.
	KindBool
	// KindURL behaves like an optional string but a non-blank value must be
	// a well-formed absolute URL.
	KindURL
	// KindEmail trims, lowercases and validates an address.
	KindEmail
	// KindTime parses an optional RFC 3339 timestamp; blank becomes null.
	KindTime
)

// Field declares one normalizable form field of a content entity.
type Field struct {
	Name        string
	Kind        Kind
	Required    bool
	Default     int  // KindInt: value for blank/absent input
	Min, Max    *int // KindInt bounds; nil means unbounded
	MaxLen      int  // KindString/KindURL: 0 means unlimited
	DefaultTrue bool // KindBool: default when absent
}

// SlugSpec declares that an entity carries a unique slug derived from a
// source field at creation time.
type SlugSpec struct {
	Source string
	MaxLen int
}

// Entity is the declarative description of one content table. The generic
// CRUD engine is instantiated per entity by these values rather than by
// per-entity code.
type Entity struct {
	Name          string // route segment, e.g. "blog-posts"
	Table         string
	Lifecycle     Lifecycle
	Slug          *SlugSpec
	HasFeatured   bool
	HasSortOrder  bool
	HasReadFlag   bool
	PublicRead    bool
	PublicCreate  bool
	UploadPrefix  string
	GalleryPrefix string // secondary upload slot with the larger size cap
	SearchFields  []string
	Fields        []Field
}

// ToggleFields lists the boolean columns the toggle operation may flip on
// this entity.
func (e Entity) ToggleFields() []string {
	var fields []string
	if e.Lifecycle == LifecycleActive {
		fields = append(fields, "is_active")
	}
	if e.HasFeatured {
		fields = append(fields, "is_featured")
	}
	if e.HasReadFlag {
		fields = append(fields, "is_read")
	}
	return fields
}

// HasField reports whether the entity declares a field with this name.
func (e Entity) HasField(name string) bool {
	for _, f := range e.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// HasToggleField reports whether name is a permitted toggle column.
func (e Entity) HasToggleField(name string) bool {
	for _, f := range e.ToggleFields() {
		if f == name {
			return true
		}
	}
	return false
}

// UniqueMessage is the user-facing message for a unique-constraint conflict
// on this entity, matching what the advisory pre-check reports.
func (e Entity) UniqueMessage() string {
	if e.Slug != nil {
		return "Slug already in use"
	}
	if e.Name == "newsletter-subscribers" {
		return "Email already subscribed"
	}
	return "Already exists"
}

func intPtr(v int) *int { return &v }
