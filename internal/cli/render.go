package cli

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/domain"
)

const ansiReset = "\x1b[0m"

var colorFgCodes = map[domain.Color]string{
	domain.ColorRed:    "\x1b[31m",
	domain.ColorYellow: "\x1b[33m",
	domain.ColorGreen:  "\x1b[32m",
	domain.ColorBlue:   "\x1b[34m",
	domain.ColorPurple: "\x1b[35m",
}

var colorBgCodes = map[domain.Color]string{
	domain.ColorRed:    "\x1b[41m",
	domain.ColorYellow: "\x1b[43m",
	domain.ColorGreen:  "\x1b[42m",
	domain.ColorBlue:   "\x1b[44m",
	domain.ColorPurple: "\x1b[45m",
}

// Renderer formats tasks for terminal output. ANSI escapes are dropped
// entirely when color is disabled.
type Renderer struct {
	width int
	color bool
}

// NewRenderer creates a renderer with the given display width and color
// setting.
func NewRenderer(width int, color bool) *Renderer {
	return &Renderer{width: width, color: color}
}

// RenderList prints the collection as a table, one row per task. The color
// tag shows as a colored cell in the left margin, overdue due dates render
// red, and a check mark flags tasks that carry a note.
func (r *Renderer) RenderList(out io.Writer, list []domain.Task, today domain.Date) {
	fmt.Fprintln(out, "   ID  Task name                                                                   Creation date  Due date    Note")

	for i, task := range list {
		name := task.Name
		if len([]rune(name)) >= r.width {
			name = string([]rune(name)[:r.width-4]) + "..."
		}

		note := ""
		if task.HasNote() {
			note = "✓"
		}

		fmt.Fprintf(out, "%s %3d  %-*s %-14s %-11s %s\n",
			r.tagCell(task.Color), i+1, r.width, name,
			task.CreationDate.String(), r.dueCell(task.DueDate, today), note)
	}
	fmt.Fprintln(out)
}

// RenderShow prints one task in full, one labeled line per field. The note
// is word-wrapped to the display width with the label only on its first
// line.
func (r *Renderer) RenderShow(out io.Writer, id int, task domain.Task, today domain.Date) {
	colorValue := "None"
	if task.Color != nil {
		colorValue = r.fg(*task.Color, task.Color.String())
	}

	fmt.Fprintf(out, "%15s %-*v\n", "ID:", r.width, id)
	fmt.Fprintf(out, "%15s %-*s\n", "Name:", r.width, task.Name)
	fmt.Fprintf(out, "%15s %-*s\n", "Creation date:", r.width, task.CreationDate.String())
	fmt.Fprintf(out, "%15s %-*s\n", "Due date:", r.width, r.dueCell(task.DueDate, today))
	fmt.Fprintf(out, "%15s %-*s\n", "Color:", r.width, colorValue)

	label := "Note:"
	for _, line := range wrapText(task.Note, r.width) {
		fmt.Fprintf(out, "%15s %-*s\n", label, r.width, line)
		label = ""
	}
	fmt.Fprintln(out)
}

// tagCell returns the one-character color tag cell for a list row.
func (r *Renderer) tagCell(c *domain.Color) string {
	if c == nil || !r.color {
		return " "
	}
	return colorBgCodes[*c] + " " + ansiReset
}

// dueCell formats a due date, rendering it red when it is before today.
func (r *Renderer) dueCell(d *domain.Date, today domain.Date) string {
	if d == nil {
		return ""
	}
	s := d.String()
	if d.Before(today) {
		return r.red(s)
	}
	return s
}

// fg wraps text in the foreground escape for the given color tag.
func (r *Renderer) fg(c domain.Color, text string) string {
	if !r.color {
		return text
	}
	return colorFgCodes[c] + text + ansiReset
}

// red wraps text in the red foreground escape.
func (r *Renderer) red(text string) string {
	return r.fg(domain.ColorRed, text)
}

// wrapText word-wraps text to the given width. Existing newlines are
// preserved as hard breaks; a word longer than the width gets a line of
// its own. Empty text still yields one empty line.
func wrapText(text string, width int) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		current := ""
		for _, word := range strings.Split(line, " ") {
			switch {
			case current == "":
				current = word
			case len(current)+1+len(word) <= width:
				current += " " + word
			default:
				lines = append(lines, current)
				current = word
			}
		}
		lines = append(lines, current)
	}
	return lines
}
