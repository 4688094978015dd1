// Package view renders a weft layout as a read-only Bubble Tea component.
//
// The component owns a document snapshot, its tokens and decorations, and
// the geometry table the layout reads. It re-measures whenever its content
// width changes and keeps a cursor expressed as a layout position.
package view
