// Package gostyle merges style descriptors into class names for server-rendered UIs.
//
// A descriptor is a literal class name, a style object, a registered style,
// a nested list of descriptors, or nothing. Resolving a list:
//
//   - flattens nested lists in place, keeping order
//   - skips empty descriptors
//   - registers plain style objects with the StyleSystem
//   - combines registered styles into one class (later properties win)
//   - appends the literal class names after that class
//
// The StyleSystem is an injected service. Registry, the default
// implementation, interns style objects under a structural hash and renders
// atomic CSS for every combination it hands out.
//
// Typical usage:
//
//	reg := gostyle.NewRegistry()
//	r := gostyle.NewResolver(reg)
//	cls := r.Resolve(
//		gostyle.Class("card"),
//		gostyle.Object(gostyle.StyleObject{"margin": 4}),
//		gostyle.When(active, gostyle.Object(gostyle.StyleObject{"color": "blue"})),
//	)
//	css := reg.CSS()
//
// Untyped values (for example decoded JSON) go through FromAny, or
// ClassifyAny/ResolveStrict for a contract that reports dropped input.
package gostyle
