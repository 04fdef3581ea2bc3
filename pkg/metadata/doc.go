// Package metadata orchestrates the pydex pipeline: it fetches package
// metadata from PyPI, chooses the best documentation source (the PyPI long
// description, falling back to the GitHub README), and mines the chosen
// text for usage examples.
//
// The entry point is [Service.Fetch]:
//
//	svc := metadata.NewService(backend, metadata.Options{})
//	pkg, err := svc.Fetch(ctx, "requests", "", false)
//
// Registry errors (package not found, network failures) surface to the
// caller. Documentation problems never do: an unreadable README yields a
// Package with an empty Readme and no Examples, not an error.
package metadata
