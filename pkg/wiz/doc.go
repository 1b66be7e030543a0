// Package wiz is the template instantiation engine.
//
// An Engine is configured with a template source directory, a destination
// directory, a set of definitions and a replacement map, then instantiated:
// the source's instruction file is processed into an instruction list which
// is executed against the destination.
//
// The engine keeps a single error register. The first error of any stage is
// stored there and every later call fails with it until ClearError or
// SetSource is called.
package wiz
