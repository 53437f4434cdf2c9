package layout

import (
	"math"
	"sort"

	"github.com/tsawler/orderlayout/model"
)

// Row is a group of tokens sharing the same rounded top coordinate
type Row struct {
	// Top is the rounded top coordinate shared by the row's tokens
	Top float64

	// Tokens sorted left to right
	Tokens []model.Token

	// Text is the space-joined token text
	Text string
}

// GroupRows groups tokens by their rounded top coordinate and returns the
// rows top to bottom. Unlike LineDetector there is no tolerance: tokens
// whose tops round to different values land in different rows, which suits
// small label/value regions printed on a strict grid.
func GroupRows(tokens []model.Token) []Row {
	if len(tokens) == 0 {
		return nil
	}

	byTop := make(map[float64][]model.Token)
	for _, tok := range tokens {
		key := math.Round(tok.Top)
		byTop[key] = append(byTop[key], tok)
	}

	tops := make([]float64, 0, len(byTop))
	for top := range byTop {
		tops = append(tops, top)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(tops)))

	rows := make([]Row, 0, len(tops))
	for _, top := range tops {
		group := byTop[top]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Left < group[j].Left
		})
		rows = append(rows, Row{
			Top:    top,
			Tokens: group,
			Text:   joinTokens(group),
		})
	}

	return rows
}

// RowTexts returns the text of each row
func RowTexts(rows []Row) []string {
	texts := make([]string, len(rows))
	for i, row := range rows {
		texts[i] = row.Text
	}
	return texts
}
