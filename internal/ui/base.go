package ui

// Area is the cell rectangle a component draws into. Components embed it
// and are resized from the window size message.
type Area struct {
	width, height int
}

// SetSize resizes the area. Negative sizes count as empty.
func (a *Area) SetSize(width, height int) {
	a.width = max(width, 0)
	a.height = max(height, 0)
}

// Width returns the width in cells.
func (a Area) Width() int {
	return a.width
}

// Height returns the height in rows.
func (a Area) Height() int {
	return a.height
}

// Empty reports whether nothing can be drawn, as before the first resize.
func (a Area) Empty() bool {
	return a.width == 0 || a.height == 0
}
