package view

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"lifegrid/src/host"
	"lifegrid/src/universe"
)

//Commands is the part of the host controller the terminal drives
type Commands interface {
	ToggleRun() error
	Step() error
	Reset() error
	Pattern() error
	Toggle(row uint32, column uint32) error
	Template(name string, row uint32, column uint32) error
}

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//ConsoleUI is the interactive terminal host
type ConsoleUI struct {
	c Commands
	g *gocui.Gui
	k []keyBindings

	mu      sync.Mutex
	frame   host.Frame
	message string

	liveFiller string
	deadFiller string
}

var (
	runningDescr = map[bool]string{
		false: aurora.Colorize("paused", aurora.BlueFg).String(),
		true:  aurora.Colorize("running", aurora.CyanFg).String(),
	}
)

//NewViewTerminal creates the terminal, it panics when the terminal can not be initialized
func NewViewTerminal(c Commands) *ConsoleUI {

	var err error
	t := ConsoleUI{
		c:          c,
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Run/Stop", t.cmdToggleRun, ""},
		{'n', "N", "Next step", t.cmdStep, ""},
		{'c', "C", "Clear", t.cmdReset, ""},
		{'p', "P", "Pattern", t.cmdPattern, ""},
		{'g', "G", "Glider at cursor", t.cmdGlider, "battlefield"},
		{gocui.MouseLeft, "MOUSE", "Toggle the cell", t.cmdMouseClick, "battlefield"},
	}
	t.g.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

//Start runs the terminal main loop until the user quits
func (t *ConsoleUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

//Refresh implements host.Viewer, it is called from the controller goroutine
func (t *ConsoleUI) Refresh(f host.Frame) {
	t.mu.Lock()
	t.frame = f
	t.mu.Unlock()
	//it needs to call Update when calls from goroutine
	t.g.Update(func(g *gocui.Gui) error {
		t.renderField(g)
		t.renderStatus(g)
		return nil
	})
}

//Alert implements host.Alerter
func (t *ConsoleUI) Alert(msg string) {
	t.mu.Lock()
	t.message = msg
	t.mu.Unlock()
	t.g.Update(func(g *gocui.Gui) error {
		t.renderStatus(g)
		return nil
	})
}

func (t *ConsoleUI) current() (host.Frame, string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frame, t.message
}

func (t *ConsoleUI) renderField(g *gocui.Gui) {
	v, e := g.View("battlefield")
	if e != nil {
		return
	}
	f, _ := t.current()
	//the entire field is redrawing at once
	v.Clear()

	crop := false
	maxW, maxH := v.Size()
	w, h := int(f.Width), int(f.Height)
	if w > maxW || h > maxH {
		crop = true
	}

	var b bytes.Buffer
	for row := 0; row < h; row++ {
		//discard the data outside the view area
		if row >= maxH {
			break
		}
		//line feed char
		if row != 0 {
			b.WriteByte(10)
		}
		if crop && row == (maxH-1) {
			b.WriteString(aurora.Red("The field size is larger than the viewing area").BgBlack().String())
			break
		}
		for col := 0; col < w && col < maxW; col++ {
			if f.Cells[row*w+col] == universe.Alive {
				b.WriteString(t.liveFiller)
			} else {
				b.WriteString(t.deadFiller)
			}
		}
	}
	_, _ = fmt.Fprint(v, b.String())
}

func (t *ConsoleUI) renderStatus(g *gocui.Gui) {
	v, e := g.View("status")
	if e != nil {
		return
	}
	f, msg := t.current()
	s := f.Status
	v.Clear()
	_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", f.Width, f.Height))
	_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", s.Generation))
	_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.LiveCells))
	_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", runningDescr[s.Running]))
	if msg != "" {
		_, _ = fmt.Fprintln(v)
		_, _ = fmt.Fprintln(v, " "+aurora.Yellow(msg).String())
	}
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 12

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("status")
		_ = g.DeleteView("battlefield")
		return nil
	}
	if _, err := t.headerLayout(g, 3, "Game of Life on a torus"); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
	}

	if v, err := g.SetView("status", 0, 3, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}
	t.renderStatus(g)

	if v, err := g.SetView("battlefield", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Universe"
		v.Frame = true
	}
	t.renderField(g)

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := 0
		if maxX > len(text) {
			pad = (maxX - len(text)) / 2
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", pad)+text)
	}
	return
}

//report shows command errors in the status view instead of quitting
func (t *ConsoleUI) report(err error) error {
	if err != nil {
		t.Alert(err.Error())
	}
	return nil
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdToggleRun(_ *gocui.View) error {
	return t.report(t.c.ToggleRun())
}

func (t *ConsoleUI) cmdStep(_ *gocui.View) error {
	return t.report(t.c.Step())
}

func (t *ConsoleUI) cmdReset(_ *gocui.View) error {
	return t.report(t.c.Reset())
}

func (t *ConsoleUI) cmdPattern(_ *gocui.View) error {
	return t.report(t.c.Pattern())
}

func (t *ConsoleUI) cmdGlider(v *gocui.View) error {
	cx, cy := v.Cursor()
	return t.report(t.c.Template("glider", uint32(cy), uint32(cx)))
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	return t.report(t.c.Toggle(uint32(cy), uint32(cx)))
}
