// Package layout assigns notes and photos to wall columns and derives their
// sticker attributes.
//
// # Overview
//
// A wall is rendered from an ordered list of items (newest first, typically
// a query result). This package decides two things without storing any
// layout metadata anywhere:
//
//   - Column placement: [Distribute] deals items into columns round-robin,
//     so item i lands in column i mod columnCount.
//   - Sticker attributes: [Bucket] hashes an item identifier into a palette
//     index, and [Pick] selects the token. Colour and rotation are two
//     independent picks over the same hash.
//
// Both are pure functions. Rendering the same items with the same column
// count always yields the same wall, in any process, at any time.
//
// # Responsive Columns
//
// The column count is normally derived from the viewport width through a
// [Breakpoints] policy. [NotesBreakpoints] and [AlbumBreakpoints] reproduce
// the two tier tables used by the notes wall and the photo album.
//
// # Building a Wall
//
//	wall, err := layout.Decorate(notes, 3, layout.DefaultColors, layout.DefaultRotations)
//	if err != nil {
//	    return err
//	}
//	for _, col := range wall.Columns {
//	    for _, p := range col.Placements {
//	        fmt.Println(p.Column, p.Row, p.Color, p.Rotation)
//	    }
//	}
//
// Columns are dealt round-robin and never height-balanced; tall items can
// make visual columns uneven.
package layout
