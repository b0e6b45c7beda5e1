package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/simplelang/pipeline"
)

func TestRenderReport(t *testing.T) {
	assert := assert.New(t)

	rpt := &pipeline.Report{
		RunID: "run-1",
		Results: []pipeline.Result{
			{Step: pipeline.STEP_COMPILE, Duration: 1500 * time.Microsecond},
			{Step: pipeline.STEP_ASSEMBLE, ExitCode: 2},
			{Step: pipeline.STEP_BUILD, Skipped: true},
		},
	}

	text := renderReport(rpt)
	lines := strings.Split(text, "\n")
	assert.Equal("run run-1", lines[0])

	find := func(step string) string {
		for _, line := range lines {
			if strings.Contains(line, step) {
				return line
			}
		}
		return ""
	}

	assert.Contains(find(pipeline.STEP_COMPILE), STATUS_OK)
	assert.Contains(find(pipeline.STEP_COMPILE), "2ms")
	assert.Contains(find(pipeline.STEP_ASSEMBLE), STATUS_FAILED)
	assert.Contains(find(pipeline.STEP_BUILD), STATUS_SKIPPED)
	assert.Contains(text, "STATUS")
}

func TestPrintReportNil(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	printReport(&buf, nil)
	assert.Zero(buf.Len())
}
