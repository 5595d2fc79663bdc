// Where: internal/infra/ui/ui.go
// What: High-level output surface for use cases and commands.
// Why: Keep use cases independent from how output is rendered.
package ui

import (
	"fmt"
	"io"
)

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes high-level output helpers.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
	Block(emoji, title string, rows []KeyValue)
	List(emoji, title string, items []string)
}

// NewConsoleUI returns a UserInterface writing to out.
func NewConsoleUI(out io.Writer, emojiEnabled bool) UserInterface {
	return consoleUI{out: out, console: NewWithEmoji(out, emojiEnabled)}
}

type consoleUI struct {
	out     io.Writer
	console *Console
}

func (c consoleUI) Info(msg string) {
	fmt.Fprintln(c.out, msg)
}

func (c consoleUI) Warn(msg string) {
	c.console.Warn(msg)
}

func (c consoleUI) Success(msg string) {
	c.console.Success(msg)
}

func (c consoleUI) Block(emoji, title string, rows []KeyValue) {
	c.console.BlockStart(emoji, title)
	for _, kv := range rows {
		c.console.Item(kv.Key, kv.Value)
	}
	c.console.BlockEnd()
}

// List prints a titled block of plain lines; nothing when items is empty.
func (c consoleUI) List(emoji, title string, items []string) {
	if len(items) == 0 {
		return
	}
	c.console.BlockStart(emoji, title)
	for _, item := range items {
		c.console.ItemPlain(item)
	}
	c.console.BlockEnd()
}
