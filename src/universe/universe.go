package universe

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

//Options represents the Universe's configurable options
type Options struct {
	Width   uint32
	Height  uint32
	Workers int //row bands computed concurrently by Tick, 0 or 1 means sequential
}

//Status represents the status of the Universe at concrete moment
type Status struct {
	Generation int
	LiveCells  int
	Running    bool
}

//default options
const (
	DefWidth   = 64
	DefHeight  = 64
	DefWorkers = 1
)

var DefaultOptions = Options{
	Width:   DefWidth,
	Height:  DefHeight,
	Workers: DefWorkers,
}

//Universe is a toroidal Game of Life grid
//cells are stored row-major, index = row*width + column
//the universe is not safe for concurrent use, the host serializes all calls
type Universe struct {
	options    Options
	running    bool
	generation int
	cells      []Cell
	templates  map[string]Template
}

//New creates an all-dead universe of the given size
func New(width uint32, height uint32) *Universe {
	o := DefaultOptions
	o.Width = width
	o.Height = height
	return NewWithOptions(o)
}

//NewWithOptions creates an all-dead universe configured by o
func NewWithOptions(o Options) *Universe {
	u := &Universe{
		options:   o,
		cells:     make([]Cell, int(o.Width)*int(o.Height)),
		templates: map[string]Template{},
	}
	for _, t := range builtinTemplates {
		u.AddTemplate(t)
	}
	return u
}

//Create returns the default 64x64 universe seeded with the fixed pattern
func Create() *Universe {
	u := NewWithOptions(DefaultOptions)
	u.GeneratePattern()
	return u
}

func (u *Universe) Width() uint32 {
	return u.options.Width
}

func (u *Universe) Height() uint32 {
	return u.options.Height
}

//Options returns current universe configuration
func (u *Universe) Options() Options {
	return u.options
}

//Cells returns the live cell buffer without copying
//the slice must be treated as read-only and is valid only until the next mutating call
func (u *Universe) Cells() []Cell {
	return u.cells
}

//Snapshot returns a copy of the cell buffer owned by the caller
func (u *Universe) Snapshot() []Cell {
	s := make([]Cell, len(u.cells))
	copy(s, u.cells)
	return s
}

//Index maps row, column to the linear buffer index
func (u *Universe) Index(row uint32, column uint32) int {
	return int(row)*int(u.options.Width) + int(column)
}

func (u *Universe) inRange(row uint32, column uint32) bool {
	return row < u.options.Height && column < u.options.Width
}

//Get returns the cell at row, column
func (u *Universe) Get(row uint32, column uint32) (Cell, error) {
	if !u.inRange(row, column) {
		return Dead, outOfRange(row, column)
	}
	return u.cells[u.Index(row, column)], nil
}

//Render draws the grid, one line per row, one glyph per cell
func (u *Universe) Render() string {
	return u.String()
}

func (u *Universe) String() string {
	return RenderCells(u.cells, u.options.Width)
}

//RenderCells draws a row-major buffer of the given width, one line per row
func RenderCells(cells []Cell, width uint32) string {
	var b strings.Builder
	w := int(width)
	if w == 0 {
		return ""
	}
	b.Grow(len(cells)*3 + len(cells)/w)
	for start := 0; start+w <= len(cells); start += w {
		for _, c := range cells[start : start+w] {
			b.WriteRune(c.Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

//Reset kills all cells, clears the run flag and the generation counter
func (u *Universe) Reset() {
	u.cells = make([]Cell, len(u.cells))
	u.running = false
	u.generation = 0
}

//Set writes the cell at row, column
//returns *OutOfRangeError when a coordinate is not less than its dimension
//and ErrInvalidCell when value is neither Dead nor Alive, in both cases the grid is left unchanged
func (u *Universe) Set(row uint32, column uint32, value Cell) error {
	if !u.inRange(row, column) {
		return outOfRange(row, column)
	}
	if !value.Valid() {
		return errors.Wrapf(ErrInvalidCell, "cell value %d at %d %d", uint8(value), row, column)
	}
	u.cells[u.Index(row, column)] = value
	return nil
}

//ToggleCell flips the cell state at row, column
func (u *Universe) ToggleCell(row uint32, column uint32) error {
	if !u.inRange(row, column) {
		return outOfRange(row, column)
	}
	idx := u.Index(row, column)
	u.cells[idx] = u.cells[idx].Toggled()
	return nil
}

//Settle makes every cell in vc alive, vc is a list of {row, column} pairs
//nothing is written if any pair is out of range
func (u *Universe) Settle(vc [][2]uint32) error {
	for _, v := range vc {
		if !u.inRange(v[0], v[1]) {
			return outOfRange(v[0], v[1])
		}
	}
	for _, v := range vc {
		u.cells[u.Index(v[0], v[1])] = Alive
	}
	return nil
}

//GeneratePattern stops the universe and repopulates it with the fixed pattern:
//cell i is alive iff i%2 == 0 or i%7 == 0
func (u *Universe) GeneratePattern() {
	u.Stop()
	u.generation = 0
	next := make([]Cell, len(u.cells))
	for i := range next {
		if i%2 == 0 || i%7 == 0 {
			next[i] = Alive
		}
	}
	u.cells = next
}

//ToggleStartStop flips the run flag
func (u *Universe) ToggleStartStop() {
	u.running = !u.running
}

//Stop clears the run flag
func (u *Universe) Stop() {
	u.running = false
}

//Running reports whether Tick advances the universe
func (u *Universe) Running() bool {
	return u.running
}

//LiveCells calculates the count of live cells
func (u *Universe) LiveCells() int {
	n := 0
	for _, c := range u.cells {
		n += int(c)
	}
	return n
}

//Status returns current universe status represented by Status struct
func (u *Universe) Status() Status {
	return Status{
		Generation: u.generation,
		LiveCells:  u.LiveCells(),
		Running:    u.running,
	}
}

//AddTemplate adds the seeding template to the internal storage
//the universe can be populated with this template by call SettleTemplate
func (u *Universe) AddTemplate(tmpl Template) {
	u.templates[tmpl.Name] = tmpl
}

//Templates returns the names of the registered templates
func (u *Universe) Templates() []string {
	names := make([]string, 0, len(u.templates))
	for k := range u.templates {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

//SettleTemplate places the named template with its origin at row, column
//template coordinates wrap around the grid edges
func (u *Universe) SettleTemplate(name string, row uint32, column uint32) error {
	tmpl, ok := u.templates[name]
	if !ok {
		return errors.Wrapf(ErrUnknownTemplate, "template %q", name)
	}
	if !u.inRange(row, column) {
		return outOfRange(row, column)
	}
	h, w := u.options.Height, u.options.Width
	for _, c := range tmpl.Coordinates {
		r := (row + c[0]%h) % h
		col := (column + c[1]%w) % w
		u.cells[u.Index(r, col)] = Alive
	}
	return nil
}
