// Package conditional resolves if/elif/else/endif groups embedded in text.
//
// A group looks like
//
//	[##if A##] ... [##elif B##] ... [##else##] ... [##endif##]
//
// with any number of elif blocks and an optional else. Groups do not nest.
// ParseGroups finds every group and marks at most one winning block per
// group against a set of Definitions; Render rebuilds the text keeping only
// the winning bodies and everything outside the groups.
package conditional
