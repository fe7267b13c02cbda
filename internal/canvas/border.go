package canvas

import "fmt"

// BorderStyle selects the box-drawing glyphs used for stroked rectangles.
type BorderStyle int

const (
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle BorderStyle = iota
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses thick/heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Chars returns the box-drawing characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderDouble:
		return BorderChars{'╔', '═', '╗', '║', '║', '╚', '═', '╝'}
	case BorderRounded:
		return BorderChars{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}
	case BorderThick:
		return BorderChars{'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'}
	default:
		return BorderChars{'┌', '─', '┐', '│', '│', '└', '─', '┘'}
	}
}

// ParseBorderStyle reads a border style name: single, double, rounded or
// thick.
func ParseBorderStyle(name string) (BorderStyle, error) {
	switch name {
	case "single", "":
		return BorderSingle, nil
	case "double":
		return BorderDouble, nil
	case "rounded":
		return BorderRounded, nil
	case "thick":
		return BorderThick, nil
	}
	return 0, fmt.Errorf("unknown border style %q", name)
}

// shade picks a block glyph for a fill of the given opacity.
func shade(alpha uint8) rune {
	switch {
	case alpha >= 0xC0:
		return '█'
	case alpha >= 0x80:
		return '▓'
	case alpha >= 0x40:
		return '▒'
	default:
		return '░'
	}
}
