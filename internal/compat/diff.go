package compat

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/alexisbeaulieu97/variants/internal/config"
)

// Diff renders a line diff of the canonical YAML of both definition sets.
// It returns an empty string when they encode identically.
func Diff(before, after *config.Definitions, beforeLabel, afterLabel string) (string, error) {
	oldText, err := config.Encode(before)
	if err != nil {
		return "", err
	}
	newText, err := config.Encode(after)
	if err != nil {
		return "", err
	}
	return lineDiff(oldText, newText, beforeLabel, afterLabel), nil
}

func lineDiff(expected, actual []byte, expectedLabel, actualLabel string) string {
	if bytes.Equal(expected, actual) {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(expected), string(actual))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", expectedLabel)
	fmt.Fprintf(&buf, "+++ %s\n", actualLabel)

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(strings.TrimSuffix(line, "\n"))
			buf.WriteByte('\n')
		}
	}

	return buf.String()
}
