package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"dispatch-lab/domain/event"
)

// printReport renders the per-type dispatch counters collected during the run.
func printReport(w io.Writer, scenarioName string, counts map[event.Type]uint64, colours bool) {
	header := fmt.Sprintf("  ====== dispatch report: %s ======", scenarioName)
	if colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Fprintln(w, header)

	types := lo.Keys(counts)
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Event", "Count"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, t := range types {
		table.Append([]string{string(t), strconv.FormatUint(counts[t], 10)})
	}
	table.Render()
}
