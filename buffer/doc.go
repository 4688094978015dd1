// Package buffer holds an immutable, line-split snapshot of a document.
//
// Positions are 0-based (Line, Byte) pairs; Byte is a UTF-8 offset into the
// line and always lies on a grapheme boundary after a Move or Clamp.
package buffer
