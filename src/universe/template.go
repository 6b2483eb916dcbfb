package universe

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string      //template name
	Descr       string      //template descr
	Coordinates [][2]uint32 //array of {row, column} offsets from the origin
}

var builtinTemplates = []Template{
	{
		Name:        "glider",
		Descr:       "moves one cell diagonally every 4 generations",
		Coordinates: [][2]uint32{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	},
	{
		Name:        "blinker",
		Descr:       "period 2 oscillator",
		Coordinates: [][2]uint32{{0, 0}, {0, 1}, {0, 2}},
	},
	{
		Name:        "block",
		Descr:       "still life",
		Coordinates: [][2]uint32{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	},
	{
		Name:        "beacon",
		Descr:       "period 2 oscillator made of two blocks",
		Coordinates: [][2]uint32{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 2}, {2, 3}, {3, 2}, {3, 3}},
	},
}
