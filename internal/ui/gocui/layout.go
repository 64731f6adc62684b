package gocui

// -----------------------------------------------------------------------------
// Layout Constants
// -----------------------------------------------------------------------------

const (
	// HeaderHeight is the height of the header view (including borders).
	HeaderHeight = 3

	// FooterHeight is the height of the footer view.
	FooterHeight = 2

	// ContentTopOffset is the Y position where content views start.
	ContentTopOffset = HeaderHeight

	// RotationWidth is the width of the rotation panel on the right.
	RotationWidth = 30

	// MinBoardWidth is the narrowest usable board panel.
	MinBoardWidth = 44

	// MinBoardHeight fits the sky, the lane and every field.
	MinBoardHeight = 14
)

// Layout manages view positioning and sizing calculations.
type Layout struct {
	maxX, maxY int
}

// NewLayout creates a new layout calculator with the given terminal size.
func NewLayout(maxX, maxY int) *Layout {
	return &Layout{maxX: maxX, maxY: maxY}
}

// HeaderBounds returns x0, y0, x1, y1 for the header view.
func (l *Layout) HeaderBounds() (int, int, int, int) {
	return 0, 0, l.maxX - 1, HeaderHeight - 1
}

// BoardPanelBounds returns x0, y0, x1, y1 for the board panel (left side).
func (l *Layout) BoardPanelBounds() (int, int, int, int) {
	return 0, ContentTopOffset, l.splitX() - 1, ContentTopOffset + l.contentHeight()
}

// RotationPanelBounds returns x0, y0, x1, y1 for the rotation panel (right side).
func (l *Layout) RotationPanelBounds() (int, int, int, int) {
	return l.splitX(), ContentTopOffset, l.maxX - 1, ContentTopOffset + l.contentHeight()
}

// FooterBounds returns x0, y0, x1, y1 for the footer/help view.
func (l *Layout) FooterBounds() (int, int, int, int) {
	return 0, l.maxY - FooterHeight - 1, l.maxX - 1, l.maxY - 1
}

// splitX is where the rotation panel starts. Narrow terminals give the whole
// width to the board.
func (l *Layout) splitX() int {
	if l.maxX-RotationWidth < MinBoardWidth {
		return l.maxX
	}
	return l.maxX - RotationWidth
}

// HasRotation reports whether the rotation panel fits.
func (l *Layout) HasRotation() bool {
	return l.splitX() < l.maxX
}

// contentHeight returns the available height for content panels.
func (l *Layout) contentHeight() int {
	return l.maxY - HeaderHeight - FooterHeight - 2
}

// IsTerminalTooSmall checks if the terminal is too small for the board.
func (l *Layout) IsTerminalTooSmall() bool {
	return l.maxX < MinBoardWidth || l.contentHeight() < MinBoardHeight
}
