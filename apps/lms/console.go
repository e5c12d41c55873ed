package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/trezcool/darasa/core"
)

var readPasswordFunc = term.ReadPassword // mockable

// console wraps terminal I/O with line-oriented prompt helpers.
type console struct {
	rawIn io.Reader
	in    *bufio.Reader
	out   io.Writer
}

func newConsole(in io.Reader, out io.Writer) *console {
	return &console{
		rawIn: in,
		in:    bufio.NewReader(in),
		out:   out,
	}
}

func (c *console) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

// readLine prompts for a line and returns it trimmed of surrounding space.
func (c *console) readLine(prompt string) (string, error) {
	c.printf("%s", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return core.CleanString(line), nil
}

// readInt reads a line as a number; non-numeric input yields 0.
func (c *console) readInt(prompt string) (int, error) {
	line, err := c.readLine(prompt)
	if err != nil {
		return 0, err
	}
	n, _ := strconv.Atoi(line)
	return n, nil
}

// readIntInRange reprompts until it gets a number within [min, max].
func (c *console) readIntInRange(prompt string, min, max int) (int, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			c.printf("Invalid input. Please enter a number.\n")
			continue
		}
		if n < min || n > max {
			c.printf("Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return n, nil
	}
}

// readEmail reprompts until it gets a well-formed email address.
func (c *console) readEmail(prompt string) (string, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return "", err
		}
		if !core.IsValidEmail(line) {
			c.printf("Invalid email format. Please try again.\n")
			continue
		}
		return line, nil
	}
}

// readPassword does not echo the input when connected to a terminal.
func (c *console) readPassword(prompt string) (string, error) {
	if f, ok := c.rawIn.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.printf("%s", prompt)
		pwd, err := readPasswordFunc(int(f.Fd()))
		c.printf("\n")
		if err != nil {
			return "", err
		}
		return string(pwd), nil
	}
	return c.readLine(prompt)
}
