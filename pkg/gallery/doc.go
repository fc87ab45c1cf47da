// Package gallery plans how a post's photos are tiled in the feed and how
// the fullscreen viewer steps through them.
//
// A post shows at most four tiles regardless of how many photos it holds:
//
//	1 photo   one wide tile
//	2 photos  two square tiles side by side
//	3 photos  one tall tile on the left, two stacked squares on the right
//	4+ photos a 2x2 grid; the last tile carries a "+N" overlay
//
// The viewer always cycles through every photo, not just the tiled ones.
package gallery
