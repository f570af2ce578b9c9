package style

import "github.com/fatih/color"

const (
	PassMark = "PASS"
	FailMark = "FAIL"
)

var (
	passColor = color.New(color.FgHiGreen, color.Bold)
	failColor = color.New(color.FgHiRed, color.Bold)
)

// ResultMark returns the PASS/FAIL label of a check result.
func ResultMark(passed, withColor bool) string {
	mark, c := FailMark, failColor
	if passed {
		mark, c = PassMark, passColor
	}

	if !withColor {
		return mark
	}

	return c.Sprint(mark)
}
