package gostyle

import "context"

// styleSystemKey is the context key for the request-scoped StyleSystem.
type styleSystemKey struct{}

// WithStyleSystem stores sys in ctx for ResolveContext and friends.
func WithStyleSystem(ctx context.Context, sys StyleSystem) context.Context {
	return context.WithValue(ctx, styleSystemKey{}, sys)
}

// StyleSystemFrom retrieves the StyleSystem stored by WithStyleSystem.
func StyleSystemFrom(ctx context.Context) (StyleSystem, bool) {
	sys, ok := ctx.Value(styleSystemKey{}).(StyleSystem)
	return sys, ok && sys != nil
}

// RequireStyleSystem returns the stored StyleSystem or Issues with
// CodeRegistryUnavailable.
func RequireStyleSystem(ctx context.Context) (StyleSystem, error) {
	if sys, ok := StyleSystemFrom(ctx); ok {
		return sys, nil
	}
	return nil, Issues{Issue{Path: "/", Code: CodeRegistryUnavailable, Message: "style system not provided", Offset: -1}}
}

// ResolveContext resolves ds with the StyleSystem stored in ctx, falling
// back to Default().
func ResolveContext(ctx context.Context, ds ...Descriptor) string {
	sys, ok := StyleSystemFrom(ctx)
	if !ok {
		sys = Default()
	}
	return NewResolver(sys).Resolve(ds...)
}
