// Package format reads and writes test data documents.
//
// A Document is the on-disk shape of a suite or resource file: settings,
// variables, test cases and user keywords. Each Codec maps that shape to
// one syntax; codecs are looked up by name ("toml") or by file extension.
package format
