package testdata

type Size struct {
	Name string
	N    int
}

// Sizes spans the KT128 chunking regimes: sub-chunk inputs, the 8 KiB chunk
// boundary, and multi-chunk inputs large enough to hit the parallel leaves.
var Sizes []Size = []Size{
	{"1B", 1},
	{"64B", 64},
	{"1KiB", 1024},
	{"8KiB", 8 * 1024},
	{"64KiB", 64 * 1024},
	{"1MiB", 1024 * 1024},
	{"16MiB", 16 * 1024 * 1024},
}
