// Package inspect reports a device inventory as a text table, as JSON, or
// in a terminal view.
package inspect

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/perlw/soda/pompeii"
)

const maxNameWidth = 40

var header = []string{"#", "NAME", "TYPE", "VULKAN", "DRIVER", "MEMORY", "QUEUE FAMILIES"}

// Rows returns one row of cells per device, in inventory order.
func Rows(inventory pompeii.Inventory) [][]string {
	rows := make([][]string, len(inventory))
	for t, g := range inventory {
		families := make([]string, len(g.QueueFamilies))
		for i, q := range g.QueueFamilies {
			families[i] = fmt.Sprintf("%d:%sx%d", q.Index, q.Flags, q.QueueCount)
		}
		rows[t] = []string{
			fmt.Sprint(t),
			runewidth.Truncate(g.Name(), maxNameWidth, "…"),
			g.Properties.Type.String(),
			g.Properties.APIVersion.String(),
			g.Properties.DriverVersion.String(),
			fmt.Sprintf("%dMiB", g.Properties.MemorySize>>20),
			strings.Join(families, " "),
		}
	}
	return rows
}

// Table renders the inventory with columns aligned by display width.
func Table(inventory pompeii.Inventory) string {
	rows := append([][]string{header}, Rows(inventory)...)

	widths := make([]int, len(header))
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	buffer := bytes.Buffer{}
	for _, row := range rows {
		for i, cell := range row {
			if i == len(row)-1 {
				buffer.WriteString(cell)
				break
			}
			buffer.WriteString(runewidth.FillRight(cell, widths[i]))
			buffer.WriteString("  ")
		}
		buffer.WriteString("\n")
	}
	return buffer.String()
}
