package types

// Coord is a character-cell position or size in a console screen buffer.
type Coord struct {
	X int16
	Y int16
}

// Rect is an inclusive character-cell rectangle.
type Rect struct {
	Left   int16
	Top    int16
	Right  int16
	Bottom int16
}

// ScreenBufferInfo is a point-in-time snapshot of a console screen buffer.
type ScreenBufferInfo struct {
	Size          Coord
	Cursor        Coord
	Attributes    uint16
	Window        Rect
	MaxWindowSize Coord
}

// FontDescriptor describes the font a console is currently rendering with.
type FontDescriptor struct {
	Index    uint32
	CellSize Coord
	Family   uint32
	Weight   uint32
	FaceName string
}

// GlyphQuery asks whether FontName can render each of CodePoints.
type GlyphQuery struct {
	FontName   string
	CodePoints []rune
}
