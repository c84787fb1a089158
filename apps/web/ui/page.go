// Package ui holds the presentation primitives of the dashboard and renders them to HTML.
package ui

import "strconv"

// Toast types.
const (
	ToastSuccess = "success"
	ToastError   = "error"
)

// Tones of buttons and badges.
const (
	TonePrimary = "primary"
	ToneDefault = "default"
	ToneDanger  = "danger"
	ToneSuccess = "success"
	ToneWarning = "warning"
)

type (
	// Toast is a transient notification, shown once.
	Toast struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	}

	MenuItem struct {
		Label  string
		Href   string
		Active bool
	}

	// Button is a link when Action is empty, otherwise a form posting Fields to Action.
	Button struct {
		Label   string
		Href    string
		Action  string
		Fields  map[string]string
		Tone    string
		Confirm string
	}

	Stat struct {
		Label string
		Value string
		Note  string
		Tone  string
	}

	Cell struct {
		Text  string
		Badge string // tone; plain text when empty
	}

	Row struct {
		Cells   []Cell
		Actions []Button
	}

	Table struct {
		Columns []string
		Rows    []Row
		Empty   string
	}

	Detail struct {
		Label string
		Value string
	}

	// Item is a line of a list card, with an optional badge on the right.
	Item struct {
		Title    string
		Subtitle string
		Badge    string
		Tone     string
	}

	// Form is an inline form posting Fields to Action.
	Form struct {
		Action string
		Fields []Field
		Submit string
	}

	// Card is a boxed section. Only the non-empty primitives are rendered, in field order.
	Card struct {
		Title   string
		Stat    *Stat
		Details []Detail
		Items   []Item
		Table   *Table
		Form    *Form
		Note    string
		Buttons []Button
	}

	// Grid lays its cards out side by side.
	Grid struct {
		Cards []Card
	}

	Option struct {
		Value    string
		Label    string
		Selected bool
	}

	Field struct {
		Label       string
		Name        string
		Type        string // text, number, date, email, select, hidden
		Value       string
		Placeholder string
		Options     []Option
		Step        string
	}

	Modal struct {
		Title      string
		Action     string
		Info       []Detail
		Fields     []Field
		Submit     string
		CancelHref string
	}

	// Page is the dashboard shell: sidebar menu, header and content grids.
	Page struct {
		Title      string
		AppName    string
		Portal     string
		UserName   string
		RoleLabel  string
		Menu       []MenuItem
		Heading    string
		Subheading string
		Actions    []Button
		Grids      []Grid
		Modal      *Modal
		Toast      *Toast
	}

	LoginPage struct {
		Title    string
		AppName  string
		Username string
		Password string
		Role     string
		Roles    []Option
		Demos    []Button
		Toast    *Toast
	}

	ErrorPage struct {
		Title   string
		AppName string
		Code    int
		Message string
		Toast   *Toast
	}
)

// Add appends a grid of cards to the page.
func (p *Page) Add(cards ...Card) {
	p.Grids = append(p.Grids, Grid{Cards: cards})
}

// StatCard returns a card holding a single stat.
func StatCard(label, value, note string) Card {
	return Card{Stat: &Stat{Label: label, Value: value, Note: note}}
}

// Itoa is a shorthand for table cells.
func Itoa(i int) string { return strconv.Itoa(i) }

// Text returns plain cells.
func Text(texts ...string) []Cell {
	cells := make([]Cell, 0, len(texts))
	for _, t := range texts {
		cells = append(cells, Cell{Text: t})
	}
	return cells
}

// Badge returns a cell rendered as a badge.
func Badge(text, tone string) Cell {
	return Cell{Text: text, Badge: tone}
}

// Select returns select options for values, marking selected.
func Select(selected string, values ...string) []Option {
	opts := make([]Option, 0, len(values))
	for _, v := range values {
		opts = append(opts, Option{Value: v, Label: v, Selected: v == selected})
	}
	return opts
}
