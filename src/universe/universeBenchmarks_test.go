package universe

import (
	"sort"
	"testing"
)

var (
	engines = map[string]Options{
		"sequential": {Width: width, Height: height, Workers: 1},
		"banded4":    {Width: width, Height: height, Workers: 4},
		"banded10":   {Width: width, Height: height, Workers: 10},
	}
)

const (
	width  = 200
	height = 200
)

func universeTick(u *Universe, b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		u.GeneratePattern()
		u.ToggleStartStop()
		b.StartTimer()
		u.Tick()
	}
}

func engineNames() (engineNames []string) {
	engineNames = make([]string, 0, len(engines))
	for k := range engines {
		engineNames = append(engineNames, k)
	}
	sort.Strings(engineNames)
	return
}

func Benchmark_Tick(b *testing.B) {
	for _, e := range engineNames() {
		b.Run(e, func(b *testing.B) {
			universeTick(NewWithOptions(engines[e]), b)
		})
	}
}

func Benchmark_LiveNeighborCount(b *testing.B) {
	u := NewWithOptions(engines["sequential"])
	u.GeneratePattern()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u.LiveNeighborCount(uint32(i)%height, uint32(i/height)%width)
	}
}
