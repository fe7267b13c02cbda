package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	rbox "github.com/grindlemire/go-rbox"
)

var (
	colorCyan = lipgloss.Color("36")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")
	colorRed  = lipgloss.Color("167")

	styleNode   = lipgloss.NewStyle().Foreground(colorCyan)
	styleSize   = lipgloss.NewStyle().Bold(true)
	styleDetail = lipgloss.NewStyle().Foreground(colorGray)
	styleBranch = lipgloss.NewStyle().Foreground(colorDim)
	styleError  = lipgloss.NewStyle().Foreground(colorRed)
	styleOK     = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

// renderTree formats a laid-out box and its descendants.
func renderTree(b *rbox.Box) string {
	return buildTree(b).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(styleBranch).
		String()
}

func buildTree(b *rbox.Box) *tree.Tree {
	t := tree.Root(nodeLine(b))
	for _, c := range b.Children() {
		if c.ChildCount() == 0 {
			t.Child(nodeLine(c))
			continue
		}
		t.Child(buildTree(c))
	}
	return t
}

// nodeLine describes one box: name, size, offset and parent data.
func nodeLine(b *rbox.Box) string {
	line := styleNode.Render(b.String())
	if !b.HasSize() {
		return line + " " + styleError.Render("not laid out")
	}
	s := b.Size()
	line += " " + styleSize.Render(num(s.Width)+"x"+num(s.Height))

	o := b.Offset()
	detail := fmt.Sprintf("at (%s, %s)", num(o.X), num(o.Y))
	if fd := b.FlexData(); fd != nil && fd.Flex > 0 {
		detail += " flex " + num(fd.Flex)
	}
	if sd := b.SlotData(); sd != nil {
		detail += " slot " + sd.Slot
	}
	if b.SizedByParent() {
		detail += " sized-by-parent"
	}
	return line + " " + styleDetail.Render(detail)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
