package models

// NewsCategory is one entry of the flat category catalog.
type NewsCategory struct {
	ID   int    `json:"newsCategoryId"`
	Name string `json:"newsCategoryName"`
}

// Summary is a single summarized news item.
type Summary struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

// Category groups summaries. Summaries is absent in catalog listings.
type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Summaries []Summary `json:"newsSummaryDtos,omitempty"`
}

// MacroCategory is the top level of the per-user news response.
type MacroCategory struct {
	Name       string     `json:"name"`
	Categories []Category `json:"categoryDtos"`
}

// MacroCategoryDto is the top level of the category catalog.
type MacroCategoryDto struct {
	Name       string     `json:"macroCategoryName"`
	Categories []Category `json:"categoryDtos"`
}
