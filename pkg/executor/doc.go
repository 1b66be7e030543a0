// Package executor runs a validated instruction list against a source and a
// destination tree.
//
// Instructions run in order and the first failure stops the batch. Nothing
// is rolled back: whatever ran before the failure stays in the destination.
package executor
