package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/strata/platform"
)

// attrMask converts platform attributes to tcell's mask. Underline is a style, not a
// mask bit, in tcell; see cellStyle.
func attrMask(a platform.Attr) tcell.AttrMask {
	var mask tcell.AttrMask
	if a&platform.AttrBold != 0 {
		mask |= tcell.AttrBold
	}
	if a&platform.AttrDim != 0 {
		mask |= tcell.AttrDim
	}
	if a&platform.AttrItalic != 0 {
		mask |= tcell.AttrItalic
	}
	if a&platform.AttrBlink != 0 {
		mask |= tcell.AttrBlink
	}
	if a&platform.AttrReverse != 0 {
		mask |= tcell.AttrReverse
	}
	return mask
}

func rgbColor(c platform.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// cellStyle builds the tcell style for a frame cell
func cellStyle(c platform.Cell) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(rgbColor(c.Fg)).
		Background(rgbColor(c.Bg)).
		Attributes(attrMask(c.Attrs))
	if c.Attrs&platform.AttrUnderline != 0 {
		style = style.Underline(true)
	}
	return style
}
