package assets

import "errors"

// Resolver loads templates from a primary loader and, when enabled, falls
// back to the built-in templates for names the primary does not have.
type Resolver struct {
	primary  TemplateLoader
	fallback TemplateLoader // nil when fallback is disabled
}

// NewResolver creates a Resolver over primary. With useBuiltin set, names
// missing from primary are loaded from the embedded templates.
func NewResolver(primary TemplateLoader, useBuiltin bool) *Resolver {
	r := &Resolver{primary: primary}
	if useBuiltin {
		r.fallback = NewEmbeddedLoader()
	}
	return r
}

// LoadTemplate loads from the primary loader first. Only not-found errors
// trigger the fallback; validation and I/O errors are returned as-is.
func (r *Resolver) LoadTemplate(name string) (string, error) {
	content, err := r.primary.LoadTemplate(name)
	if err == nil || r.fallback == nil || !errors.Is(err, ErrTemplateNotFound) {
		return content, err
	}
	return r.fallback.LoadTemplate(name)
}

// Compile-time interface check.
var _ TemplateLoader = (*Resolver)(nil)
