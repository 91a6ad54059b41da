package inspect

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"

	"github.com/perlw/soda/pompeii"
)

const footer = "press any key to exit"

// View shows the inventory table full screen until a key is pressed.
func View(inventory pompeii.Inventory) error {
	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "could not initialize termbox")
	}
	defer termbox.Close()

	lines := strings.Split(strings.TrimRight(Table(inventory), "\n"), "\n")
	draw(lines)
	for {
		switch ev := termbox.PollEvent(); ev.Type {
		case termbox.EventKey:
			return nil
		case termbox.EventResize:
			draw(lines)
		case termbox.EventError:
			return errors.Wrap(ev.Err, "termbox event")
		}
	}
}

func draw(lines []string) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	for y, line := range lines {
		fg := termbox.ColorWhite
		if y == 0 {
			fg |= termbox.AttrBold
		}
		drawText(0, y, line, fg)
	}
	_, height := termbox.Size()
	drawText(0, height-1, footer, termbox.ColorYellow)
	termbox.Flush()
}

func drawText(x, y int, text string, fg termbox.Attribute) {
	for _, r := range text {
		termbox.SetCell(x, y, r, fg, termbox.ColorDefault)
		x += runewidth.RuneWidth(r)
	}
}
