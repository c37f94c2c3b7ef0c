package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

const maxNameWidth = 60

// RenderList prints names as a numbered table inside a panel.
// Row numbers are 1-based; they are display only.
func RenderList(w io.Writer, title string, names []string) {
	header := fmt.Sprintf("%s  %s %d",
		C(current.Title, title),
		C(current.Accent, "Total"), len(names),
	)
	lines := []string{header, ""}

	if len(names) == 0 {
		lines = append(lines, C(current.Muted, "no names"))
	} else {
		lines = append(lines, tableLines(names)...)
	}
	Panel(w, lines)
}

func tableLines(names []string) []string {
	var sb strings.Builder
	table := tablewriter.NewWriter(&sb)
	table.SetHeader([]string{"#", "Name"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	table.AppendBulk(lo.Map(names, func(n string, i int) []string {
		return []string{strconv.Itoa(i + 1), truncate(n, maxNameWidth)}
	}))
	table.Render()

	out := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	for i := 1; i < len(out); i++ {
		num, rest, found := strings.Cut(out[i], " ")
		if found {
			out[i] = C(current.Index, num) + " " + rest
		}
	}
	out[0] = C(current.Muted, out[0])
	return out
}

func truncate(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}
