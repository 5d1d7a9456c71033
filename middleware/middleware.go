// Package middleware scopes a style registry to each HTTP request so a page
// only ships the CSS it used.
package middleware

import (
	"context"
	"net/http"
	"strings"

	gostyle "github.com/reoring/gostyle"
)

// WithRequestRegistry attaches a fresh Registry to ctx.
func WithRequestRegistry(ctx context.Context, opts ...gostyle.RegistryOption) (context.Context, *gostyle.Registry) {
	reg := gostyle.NewRegistry(opts...)
	return gostyle.WithStyleSystem(ctx, reg), reg
}

// RegistryFromContext returns the request registry, if any.
func RegistryFromContext(ctx context.Context) (*gostyle.Registry, bool) {
	sys, ok := gostyle.StyleSystemFrom(ctx)
	if !ok {
		return nil, false
	}
	reg, ok := sys.(*gostyle.Registry)
	return reg, ok
}

// Handler wraps next so every request carries its own Registry.
func Handler(next http.Handler, opts ...gostyle.RegistryOption) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, _ := WithRequestRegistry(r.Context(), opts...)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StyleTag returns the request CSS wrapped in a <style> element, or "" when
// nothing was rendered.
func StyleTag(ctx context.Context) string {
	reg, ok := RegistryFromContext(ctx)
	if !ok {
		return ""
	}
	css := reg.CSS()
	if css == "" {
		return ""
	}
	// a literal "</style" inside a value would close the element early
	css = strings.ReplaceAll(css, "</", `<\/`)
	return "<style>" + css + "</style>"
}

// ErrorPayload shapes Issues for JSON responses.
func ErrorPayload(issues []gostyle.Issue) map[string]any {
	return map[string]any{"issues": issues}
}
