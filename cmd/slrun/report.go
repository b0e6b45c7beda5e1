// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ezrec/simplelang/pipeline"
)

const (
	STATUS_OK      = "ok"
	STATUS_FAILED  = "failed"
	STATUS_SKIPPED = "skipped"
)

var (
	styleHeader  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleCell    = lipgloss.NewStyle().Padding(0, 1)
	styleOK      = styleCell.Foreground(lipgloss.Color("#8BC34A"))
	styleFailed  = styleCell.Foreground(lipgloss.Color("#E57373"))
	styleSkipped = styleCell.Foreground(lipgloss.Color("#9E9E9E"))
)

func status(res pipeline.Result) string {
	switch {
	case res.Skipped:
		return STATUS_SKIPPED
	case res.Failed():
		return STATUS_FAILED
	default:
		return STATUS_OK
	}
}

func reportRow(res pipeline.Result) []string {
	if res.Skipped {
		return []string{res.Step, STATUS_SKIPPED, "-", "-", ""}
	}

	detail := ""
	if res.Err != nil {
		detail = res.Err.Error()
	}

	return []string{
		res.Step,
		status(res),
		strconv.Itoa(res.ExitCode),
		res.Duration.Round(time.Millisecond).String(),
		detail,
	}
}

// renderReport draws the results of a run as a table.
func renderReport(rpt *pipeline.Report) string {
	rows := make([][]string, 0, len(rpt.Results))
	for _, res := range rpt.Results {
		rows = append(rows, reportRow(res))
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("STEP", "STATUS", "EXIT", "TIME", "ERROR").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col != 1 || row < 0 || row >= len(rpt.Results) {
				return styleCell
			}
			switch status(rpt.Results[row]) {
			case STATUS_FAILED:
				return styleFailed
			case STATUS_SKIPPED:
				return styleSkipped
			default:
				return styleOK
			}
		})

	return fmt.Sprintf("run %v\n%v\n", rpt.RunID, tbl.String())
}

func printReport(w io.Writer, rpt *pipeline.Report) {
	if rpt == nil {
		return
	}
	fmt.Fprint(w, renderReport(rpt))
}
