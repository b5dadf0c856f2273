package feed

import (
	"github.com/dmitrijs2005/infowise/internal/client/models"
	"github.com/dmitrijs2005/infowise/internal/common"
)

// Span is a grid layout hint: how many columns and rows a card occupies.
type Span struct {
	Cols int
	Rows int
}

// spanTable is walked cyclically by card id.
var spanTable = [...]Span{
	{Cols: 2, Rows: 2},
	{Cols: 1, Rows: 1},
	{Cols: 1, Rows: 1},
	{Cols: 1, Rows: 2},
	{Cols: 1, Rows: 1},
	{Cols: 2, Rows: 1},
}

// SpanFor returns the layout hint for a 1-based card id.
func SpanFor(id int) Span {
	if id < 1 {
		return spanTable[0]
	}
	return spanTable[(id-1)%len(spanTable)]
}

// Card is one story on the home feed.
type Card struct {
	ID            int
	Title         string
	MacroCategory string
	Category      string
	Summary       string
	Date          string
	Span          Span
}

// Label renders "macro · category", whichever half is present, or the
// placeholder.
func (c Card) Label() string {
	switch {
	case c.MacroCategory != "" && c.Category != "":
		return c.MacroCategory + " · " + c.Category
	case c.MacroCategory != "":
		return c.MacroCategory
	case c.Category != "":
		return c.Category
	default:
		return common.Placeholder
	}
}

// Formatter turns a raw backend date into a display label.
type Formatter interface {
	Format(raw string) string
}

// BuildCards flattens macros in macro → category → summary order. Ids start
// at 1 and the output depends only on its inputs.
func BuildCards(macros []models.MacroCategory, dates Formatter) []Card {
	n := 0
	for _, m := range macros {
		for _, c := range m.Categories {
			n += len(c.Summaries)
		}
	}

	cards := make([]Card, 0, n)
	for _, m := range macros {
		for _, c := range m.Categories {
			for _, s := range c.Summaries {
				id := len(cards) + 1
				cards = append(cards, Card{
					ID:            id,
					Title:         s.Title,
					MacroCategory: m.Name,
					Category:      c.Name,
					Summary:       s.Content,
					Date:          dates.Format(s.Date),
					Span:          SpanFor(id),
				})
			}
		}
	}
	return cards
}
