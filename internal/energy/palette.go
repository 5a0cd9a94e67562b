package energy

import "fmt"

type color struct {
	r, g, b uint8
}

func (c color) rgba(alpha string) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.r, c.g, c.b, alpha)
}

var palette = []color{
	{231, 76, 60},
	{52, 152, 219},
	{39, 174, 96},
	{243, 156, 18},
	{155, 89, 182},
	{26, 188, 156},
	{230, 126, 34},
	{52, 73, 94},
	{44, 62, 80},
	{241, 196, 15},
}

// SeriesColors returns the background and border color for the series at
// index i. Colors repeat after the palette is exhausted.
func SeriesColors(i int) (background, border string) {
	c := palette[i%len(palette)]
	return c.rgba("0.7"), c.rgba("1")
}
