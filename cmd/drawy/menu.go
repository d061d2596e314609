package main

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/drawy/drawy/pkg/colorize"
	"github.com/drawy/drawy/pkg/output"
	"github.com/drawy/drawy/pkg/palette"
)

var menuItems = []string{
	"Exit",
	"One color for all letters",
	"Random color per letter",
	"One color per word",
}

// menuChoice is the outcome of the interactive menu.
type menuChoice struct {
	Exit  bool
	Mode  colorize.Mode
	Color string // single mode only; empty means white
}

// runMenu asks for a mode until a valid one is entered. Choosing 0 or
// closing stdin exits.
func runMenu(p *output.Printer, in *bufio.Reader) (menuChoice, error) {
	p.Menu("Choose a color mode", menuItems)

	for {
		p.Prompt("Enter 0, 1, 2 or 3:")
		answer, err := readAnswer(in)
		if errors.Is(err, io.EOF) {
			p.Println()
			p.Info("Exiting, goodbye")
			return menuChoice{Exit: true}, nil
		}
		if err != nil {
			return menuChoice{}, err
		}

		if answer == "0" {
			p.Info("Exiting, goodbye")
			return menuChoice{Exit: true}, nil
		}
		mode, err := colorize.ParseMode(answer)
		if err != nil {
			p.Warn("Invalid input, please enter 0, 1, 2 or 3")
			continue
		}

		choice := menuChoice{Mode: mode}
		if mode == colorize.ModeSingle {
			p.Println()
			p.Println("Colors: " + strings.Join(palette.Default().Names(), ", "))
			p.Prompt("Color (blank for white):")
			color, err := readAnswer(in)
			if err != nil && !errors.Is(err, io.EOF) {
				return menuChoice{}, err
			}
			choice.Color = color
		}
		return choice, nil
	}
}

// readAnswer reads one trimmed line. A final line without a newline is
// returned with a nil error.
func readAnswer(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
