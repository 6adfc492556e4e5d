package colors

type Color [4]float32

var (
	White          = Color{1, 1, 1, 1}
	Red            = Color{1, 0, 0, 1}
	Green          = Color{0, 1, 0, 1}
	Blue           = Color{0, 0, 1, 1}
	Black          = Color{0, 0, 0, 1}
	Gray           = Color{0.5, 0.5, 0.5, 1}
	LightSteelBlue = Color{0.69, 0.77, 0.87, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}
