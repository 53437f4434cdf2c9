// Package layout reconstructs the visual structure of a page from its
// positioned tokens.
//
// # Lines
//
// The [LineDetector] clusters tokens into visual lines. Tokens are sorted by
// descending vertical midpoint and then by ascending left edge; a token joins
// the current line while its midpoint stays within [LineConfig].YTolerance of
// the midpoint of the line's first token:
//
//	detector := layout.NewLineDetector()
//	result := detector.DetectPage(page)
//	for _, line := range result.Lines {
//	    fmt.Println(line.Text)
//	}
//
// Lines are ordered top of page first and every line's tokens are sorted
// left to right.
//
// # Rows
//
// [GroupRows] is a stricter grouping used for small label regions: tokens
// are bucketed by their rounded top coordinate, with no tolerance.
//
//	rows := layout.GroupRows(page.TokensInRegion(x0, x1, y0, y1))
package layout
