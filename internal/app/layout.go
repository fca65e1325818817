package app

const (
	titleRows  = 1
	promptRows = 1
)

// Rect is a screen region; Row and Col are its 0-based top-left corner.
type Rect struct {
	Row, Col   int
	Rows, Cols int
}

// Layout splits the terminal into a title row, a bordered editor frame and a
// prompt row along the bottom.
type Layout struct {
	Width, Height int

	Title  Rect
	Frame  Rect
	Editor Rect
	Prompt Rect
}

func NewLayout(width, height int) Layout {
	width, height = max(width, 1), max(height, 1)
	l := Layout{Width: width, Height: height}

	l.Title = Rect{Row: 0, Col: 0, Rows: titleRows, Cols: width}

	l.Frame = Rect{
		Row:  titleRows,
		Col:  0,
		Rows: max(height-titleRows-promptRows, 1),
		Cols: width,
	}

	// Editor sits inside the frame border.
	l.Editor = Rect{
		Row:  l.Frame.Row + 1,
		Col:  l.Frame.Col + 1,
		Rows: max(l.Frame.Rows-2, 1),
		Cols: max(l.Frame.Cols-2, 1),
	}

	l.Prompt = Rect{Row: height - promptRows, Col: 0, Rows: promptRows, Cols: width}
	return l
}
