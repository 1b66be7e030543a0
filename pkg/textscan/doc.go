// Package textscan holds the small lexing helpers the template engine is
// built from: locating marker-delimited spans, splitting a line into a
// command and quoted arguments, parsing name/value assignments and working
// with line lists.
//
// All functions operate on byte offsets into the input string and never
// modify it.
package textscan
