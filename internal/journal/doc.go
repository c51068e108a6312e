// Package journal interprets reflection bodies.
//
// The store keeps a body as an opaque string. Over time the entry form wrote
// several incompatible JSON shapes (and plain text before that); ParseBody
// sniffs which one a body uses and maps it onto a single [Document]. Parsing
// never fails: anything unreadable degrades to [LayoutRaw] with the whole
// body as notes.
package journal
