package view

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/logrusorgru/aurora"

	"lifegrid/src/host"
	"lifegrid/src/universe"
)

//ConsoleOut is a headless viewer printing the grid every N generations
type ConsoleOut struct {
	w     io.Writer
	au    aurora.Aurora
	every int
	last  int
	grid  bool
}

//NewConsoleOut creates the viewer, every <= 0 prints only the final frame
//grid enables printing the rendered grid along with the status line
func NewConsoleOut(w io.Writer, every int, grid bool, colors bool) *ConsoleOut {
	return &ConsoleOut{w: w, au: aurora.NewAurora(colors), every: every, last: -1, grid: grid}
}

//Refresh implements host.Viewer
func (c *ConsoleOut) Refresh(f host.Frame) {
	st := f.Status
	if st.Generation == c.last {
		return
	}
	if c.every > 0 && st.Generation%c.every == 0 {
		c.print(f)
	}
}

//Finish prints the final frame unless it was printed already
func (c *ConsoleOut) Finish(f host.Frame) {
	if f.Status.Generation != c.last {
		c.print(f)
	}
	_, _ = fmt.Fprintln(c.w, c.au.Red("Finished:"))
	c.printHashData(map[string]interface{}{
		"Last generation": f.Status.Generation,
		"Live cells":      f.Status.LiveCells,
	})
}

//Register prints the running configuration
func (c *ConsoleOut) Register(o universe.Options, interval time.Duration, maxSteps int) {
	_, _ = fmt.Fprintln(c.w, "Running configuration:")
	c.printHashData(map[string]interface{}{
		"Dimension":      fmt.Sprintf("%v x %v", o.Width, o.Height),
		"Workers":        o.Workers,
		"Interval":       interval,
		"Max iterations": maxSteps,
	})
}

func (c *ConsoleOut) print(f host.Frame) {
	c.last = f.Status.Generation
	if c.grid {
		_, _ = fmt.Fprint(c.w, universe.RenderCells(f.Cells, f.Width))
	}
	_, _ = fmt.Fprintf(c.w, "%s %v %s %v\n",
		c.au.Green("Generation:"), f.Status.Generation,
		c.au.Green("Live cells:"), f.Status.LiveCells)
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		_, _ = fmt.Fprintf(c.w, "  %s: %v\n", propName, d[propName])
	}
}
