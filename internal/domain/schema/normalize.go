package schema

import (
	"fmt"
	"math"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"
)

// FieldError is a per-field validation failure surfaced inline to the form.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Normalize converts a raw form payload into persistable column values
// according to the entity's declared fields, including the shared lifecycle
// columns (is_active/status, is_featured, is_read, sort_order). The same
// normalized shape is used for both insert and update so create and edit
// cannot diverge. Validation failures are collected per field; nothing
// reaches the store while errors remain.
func Normalize(e Entity, raw map[string]any) (map[string]any, []FieldError) {
	values := make(map[string]any, len(e.Fields)+4)
	var errs []FieldError

	for _, f := range e.Fields {
		v, ferr := normalizeField(f, raw[f.Name])
		if ferr != nil {
			errs = append(errs, *ferr)
			continue
		}
		values[f.Name] = v
	}

	switch e.Lifecycle {
	case LifecycleActive:
		values["is_active"] = boolValue(raw["is_active"], true)
	case LifecycleStatus:
		status, ferr := statusValue(raw["status"])
		if ferr != nil {
			errs = append(errs, *ferr)
		} else {
			values["status"] = status
		}
	}
	if e.HasFeatured {
		values["is_featured"] = boolValue(raw["is_featured"], false)
	}
	if e.HasReadFlag {
		values["is_read"] = boolValue(raw["is_read"], false)
	}
	if e.HasSortOrder {
		v, ferr := normalizeField(Field{Name: "sort_order", Kind: KindInt, Min: intPtr(0)}, raw["sort_order"])
		if ferr != nil {
			errs = append(errs, *ferr)
		} else {
			values["sort_order"] = v
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return values, nil
}

func normalizeField(f Field, raw any) (any, *FieldError) {
	switch f.Kind {
	case KindString:
		return normalizeString(f, raw)
	case KindURL:
		return normalizeURL(f, raw)
	case KindEmail:
		return normalizeEmail(f, raw)
	case KindInt:
		return normalizeInt(f, raw)
	case KindBool:
		return boolValue(raw, f.DefaultTrue), nil
	case KindTime:
		return normalizeTime(f, raw)
	}
	return nil, &FieldError{Field: f.Name, Message: "unknown field kind"}
}

func normalizeString(f Field, raw any) (any, *FieldError) {
	s, ok := stringInput(raw)
	if !ok {
		return nil, &FieldError{Field: f.Name, Message: "must be a string"}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		if f.Required {
			return nil, &FieldError{Field: f.Name, Message: "is required"}
		}
		// Empty string never persists; optional blanks are stored as null.
		return null.String{}, nil
	}
	if f.MaxLen > 0 && len(s) > f.MaxLen {
		return nil, &FieldError{Field: f.Name, Message: fmt.Sprintf("must be at most %d characters", f.MaxLen)}
	}
	if f.Required {
		return s, nil
	}
	return null.StringFrom(s), nil
}

func normalizeURL(f Field, raw any) (any, *FieldError) {
	s, ok := stringInput(raw)
	if !ok {
		return nil, &FieldError{Field: f.Name, Message: "must be a string"}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		if f.Required {
			return nil, &FieldError{Field: f.Name, Message: "is required"}
		}
		return null.String{}, nil
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &FieldError{Field: f.Name, Message: "must be a valid absolute URL"}
	}
	if f.MaxLen > 0 && len(s) > f.MaxLen {
		return nil, &FieldError{Field: f.Name, Message: fmt.Sprintf("must be at most %d characters", f.MaxLen)}
	}
	if f.Required {
		return s, nil
	}
	return null.StringFrom(s), nil
}

func normalizeEmail(f Field, raw any) (any, *FieldError) {
	s, ok := stringInput(raw)
	if !ok {
		return nil, &FieldError{Field: f.Name, Message: "must be a string"}
	}
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		if f.Required {
			return nil, &FieldError{Field: f.Name, Message: "is required"}
		}
		return null.String{}, nil
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return nil, &FieldError{Field: f.Name, Message: "must be a valid email address"}
	}
	if f.Required {
		return s, nil
	}
	return null.StringFrom(s), nil
}

// normalizeInt keeps the lenient blank/garbage-to-default behavior the forms
// always had, while rejecting values that parse but fall outside the declared
// bounds.
func normalizeInt(f Field, raw any) (any, *FieldError) {
	n := f.Default
	switch v := raw.(type) {
	case nil:
	case float64:
		if v != math.Trunc(v) {
			return nil, &FieldError{Field: f.Name, Message: "must be a whole number"}
		}
		n = int(v)
	case int:
		n = v
	case string:
		s := strings.TrimSpace(v)
		if s != "" {
			parsed, err := strconv.Atoi(s)
			if err == nil {
				n = parsed
			}
		}
	case bool:
		return nil, &FieldError{Field: f.Name, Message: "must be a number"}
	default:
		return nil, &FieldError{Field: f.Name, Message: "must be a number"}
	}
	if f.Min != nil && n < *f.Min {
		return nil, &FieldError{Field: f.Name, Message: fmt.Sprintf("must be at least %d", *f.Min)}
	}
	if f.Max != nil && n > *f.Max {
		return nil, &FieldError{Field: f.Name, Message: fmt.Sprintf("must be at most %d", *f.Max)}
	}
	return n, nil
}

func normalizeTime(f Field, raw any) (any, *FieldError) {
	s, ok := stringInput(raw)
	if !ok {
		return nil, &FieldError{Field: f.Name, Message: "must be a timestamp string"}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return null.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, &FieldError{Field: f.Name, Message: "must be an RFC 3339 timestamp"}
	}
	return null.TimeFrom(t.UTC()), nil
}

func statusValue(raw any) (string, *FieldError) {
	s, ok := stringInput(raw)
	if !ok {
		return "", &FieldError{Field: "status", Message: "must be a string"}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return StatusDraft, nil
	}
	if s != StatusDraft && s != StatusPublished {
		return "", &FieldError{Field: "status", Message: "must be draft or published"}
	}
	return s, nil
}

// boolValue resolves checkbox/switch input to a concrete boolean, never null.
func boolValue(raw any, def bool) bool {
	if b, ok := raw.(bool); ok {
		return b
	}
	return def
}

func stringInput(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	}
	return "", false
}
