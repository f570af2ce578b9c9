package style

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func NewDefaultTableStyle() *table.Style {
	style := table.Style{
		Name:    "StyleRounded",
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
		Color:   table.ColorOptionsYellowWhiteOnBlack,
	}
	style.Color.Row = text.Colors{text.FgHiYellow, text.BgHiBlack}
	style.Color.RowAlternate = text.Colors{text.FgYellow, text.BgBlack}
	return &style
}

// NewPlainTableStyle is the rounded box style without any color, used when
// the output is not a terminal.
func NewPlainTableStyle() *table.Style {
	style := table.StyleRounded
	style.Color = table.ColorOptionsDefault
	return &style
}

func TableStyle(withColor bool) *table.Style {
	if withColor {
		return NewDefaultTableStyle()
	}

	return NewPlainTableStyle()
}
