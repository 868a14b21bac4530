package svgtest

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Case is one named test. Fn returns nil on success,
// typically the error of a failed assertion otherwise.
type Case struct {
	Name string
	Fn   func() error
}

// Result is the outcome of a Case.
type Result struct {
	Name    string
	Passed  bool
	Message string // empty for passed cases
}

// Report is the outcome of Run, in the order of the cases.
type Report struct {
	Results []Result
}

// Passed returns the number of successful cases.
func (r Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Passed {
			n++
		}
	}
	return n
}

// Failed returns the number of failed cases.
func (r Report) Failed() int { return len(r.Results) - r.Passed() }

// OK is true if every case passed.
func (r Report) OK() bool { return r.Failed() == 0 }

func runCase(c Case) (res Result) {
	res.Name = c.Name
	if c.Fn == nil {
		res.Message = "no test function"
		return res
	}
	defer func() {
		if r := recover(); r != nil {
			res.Passed = false
			res.Message = fmt.Sprintf("panic: %v", r)
		}
	}()
	if err := c.Fn(); err != nil {
		res.Message = err.Error()
		return res
	}
	res.Passed = true
	return res
}

// Run executes the cases, in order. A panicking case
// is reported as failed and does not stop the others.
func Run(cases []Case) Report {
	out := Report{Results: make([]Result, 0, len(cases))}
	for _, c := range cases {
		out.Results = append(out.Results, runCase(c))
	}
	return out
}

var (
	passColor = lipgloss.Color("#00AA00")
	failColor = lipgloss.Color("#AA0000")
)

// WriteReport prints one line per result, followed by the failure
// message if any, and a summary. Colors are only used
// if `w` is a terminal supporting them.
func WriteReport(w io.Writer, r Report) error {
	renderer := lipgloss.NewRenderer(w)
	passStyle := renderer.NewStyle().Foreground(passColor)
	failStyle := renderer.NewStyle().Foreground(failColor)
	messageStyle := renderer.NewStyle().PaddingLeft(2)

	for _, res := range r.Results {
		var err error
		if res.Passed {
			_, err = fmt.Fprintln(w, passStyle.Render("✓ "+res.Name))
		} else {
			_, err = fmt.Fprintln(w, failStyle.Render("✘ "+res.Name))
			if err == nil && res.Message != "" {
				_, err = fmt.Fprintln(w, messageStyle.Render(res.Message))
			}
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d passed, %d failed\n", r.Passed(), r.Failed())
	return err
}
