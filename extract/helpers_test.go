package extract

import "github.com/tsawler/orderlayout/model"

// addRow adds one token per word to page, 40 units apart, all sharing the
// given top edge
func addRow(p *model.Page, left, top float64, words ...string) {
	for i, w := range words {
		x := left + float64(i)*40
		p.AddToken(model.Token{
			Text:   w,
			Left:   x,
			Right:  x + 35,
			Top:    top,
			Bottom: top - 10,
		})
	}
}

// newLetterPage returns an empty US letter page
func newLetterPage() *model.Page {
	return model.NewPage(612, 792)
}
