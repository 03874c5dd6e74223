package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
)

func fieldErrorFor(t *testing.T, errs []FieldError, field string) FieldError {
	t.Helper()
	for _, fe := range errs {
		if fe.Field == field {
			return fe
		}
	}
	t.Fatalf("no error for field %q in %v", field, errs)
	return FieldError{}
}

func TestNormalize_OptionalStringBlankBecomesNull(t *testing.T) {
	e := Entity{Fields: []Field{
		{Name: "title", Kind: KindString, Required: true},
		{Name: "issuer", Kind: KindString},
	}}

	// "" and nil must normalize to the same stored value: null.
	for _, blank := range []any{"", "   ", nil} {
		values, errs := Normalize(e, map[string]any{"title": "Agency of the Year", "issuer": blank})
		require.Empty(t, errs)
		require.Equal(t, null.String{}, values["issuer"])
	}

	values, errs := Normalize(e, map[string]any{"title": "  Agency of the Year  ", "issuer": "  Awwwards  "})
	require.Empty(t, errs)
	require.Equal(t, "Agency of the Year", values["title"])
	require.Equal(t, null.StringFrom("Awwwards"), values["issuer"])
}

func TestNormalize_RequiredStringRejected(t *testing.T) {
	e := Entity{Fields: []Field{{Name: "title", Kind: KindString, Required: true}}}
	for _, blank := range []any{"", "  ", nil} {
		_, errs := Normalize(e, map[string]any{"title": blank})
		require.Equal(t, "is required", fieldErrorFor(t, errs, "title").Message)
	}
}

func TestNormalize_IntDefaultsAndBounds(t *testing.T) {
	e := Entity{Fields: []Field{
		{Name: "rating", Kind: KindInt, Min: intPtr(1), Max: intPtr(5), Default: 5},
	}, HasSortOrder: true}

	// Blank, absent and garbage input take the declared default.
	for _, blank := range []any{"", nil, "not-a-number"} {
		values, errs := Normalize(e, map[string]any{"rating": blank})
		require.Empty(t, errs, "input=%v", blank)
		require.Equal(t, 5, values["rating"])
		require.Equal(t, 0, values["sort_order"])
	}

	// JSON numbers and numeric strings parse.
	values, errs := Normalize(e, map[string]any{"rating": float64(3), "sort_order": "7"})
	require.Empty(t, errs)
	require.Equal(t, 3, values["rating"])
	require.Equal(t, 7, values["sort_order"])

	// Out-of-range parses are rejected, not clamped.
	_, errs = Normalize(e, map[string]any{"rating": float64(9)})
	require.Equal(t, "must be at most 5", fieldErrorFor(t, errs, "rating").Message)

	_, errs = Normalize(e, map[string]any{"sort_order": "-1"})
	require.Equal(t, "must be at least 0", fieldErrorFor(t, errs, "sort_order").Message)

	_, errs = Normalize(e, map[string]any{"rating": 2.5})
	require.Equal(t, "must be a whole number", fieldErrorFor(t, errs, "rating").Message)
}

func TestNormalize_URLs(t *testing.T) {
	e := Entity{Fields: []Field{{Name: "website_url", Kind: KindURL}}}

	values, errs := Normalize(e, map[string]any{"website_url": ""})
	require.Empty(t, errs)
	require.Equal(t, null.String{}, values["website_url"])

	values, errs = Normalize(e, map[string]any{"website_url": " https://example.com/work "})
	require.Empty(t, errs)
	require.Equal(t, null.StringFrom("https://example.com/work"), values["website_url"])

	for _, bad := range []string{"not a url", "example.com", "/relative/path"} {
		_, errs = Normalize(e, map[string]any{"website_url": bad})
		require.Equal(t, "must be a valid absolute URL", fieldErrorFor(t, errs, "website_url").Message, "input=%q", bad)
	}
}

func TestNormalize_Email(t *testing.T) {
	e := Entity{Fields: []Field{{Name: "email", Kind: KindEmail, Required: true}}}

	values, errs := Normalize(e, map[string]any{"email": "  Reader@Example.COM "})
	require.Empty(t, errs)
	require.Equal(t, "reader@example.com", values["email"])

	_, errs = Normalize(e, map[string]any{"email": "not-an-address"})
	require.Equal(t, "must be a valid email address", fieldErrorFor(t, errs, "email").Message)
}

func TestNormalize_BoolsNeverNull(t *testing.T) {
	e := Entity{Lifecycle: LifecycleActive, HasFeatured: true}

	values, errs := Normalize(e, map[string]any{})
	require.Empty(t, errs)
	require.Equal(t, true, values["is_active"])
	require.Equal(t, false, values["is_featured"])

	values, errs = Normalize(e, map[string]any{"is_active": false, "is_featured": true})
	require.Empty(t, errs)
	require.Equal(t, false, values["is_active"])
	require.Equal(t, true, values["is_featured"])
}

func TestNormalize_Status(t *testing.T) {
	e := Entity{Lifecycle: LifecycleStatus}

	values, errs := Normalize(e, map[string]any{})
	require.Empty(t, errs)
	require.Equal(t, StatusDraft, values["status"])

	values, errs = Normalize(e, map[string]any{"status": StatusPublished})
	require.Empty(t, errs)
	require.Equal(t, StatusPublished, values["status"])

	_, errs = Normalize(e, map[string]any{"status": "archived"})
	require.Equal(t, "must be draft or published", fieldErrorFor(t, errs, "status").Message)
}

func TestNormalize_Time(t *testing.T) {
	e := Entity{Fields: []Field{{Name: "scheduled_for", Kind: KindTime}}}

	values, errs := Normalize(e, map[string]any{"scheduled_for": ""})
	require.Empty(t, errs)
	require.Equal(t, null.Time{}, values["scheduled_for"])

	values, errs = Normalize(e, map[string]any{"scheduled_for": "2026-09-01T09:00:00Z"})
	require.Empty(t, errs)
	ts := values["scheduled_for"].(null.Time)
	require.True(t, ts.Valid)

	_, errs = Normalize(e, map[string]any{"scheduled_for": "tomorrow"})
	require.Equal(t, "must be an RFC 3339 timestamp", fieldErrorFor(t, errs, "scheduled_for").Message)
}

func TestRegistry(t *testing.T) {
	all := All()
	require.Len(t, all, 11)

	for _, e := range all {
		require.NotEmpty(t, e.Table, e.Name)
		// Visibility flag and lifecycle status are mutually exclusive.
		if e.Lifecycle == LifecycleStatus {
			require.False(t, e.HasToggleField("is_active"), e.Name)
		}
	}

	posts, ok := Lookup("blog-posts")
	require.True(t, ok)
	require.Equal(t, "blog_posts", posts.Table)
	require.NotNil(t, posts.Slug)
	require.Equal(t, "title", posts.Slug.Source)

	_, ok = Lookup("no-such-entity")
	require.False(t, ok)
}
