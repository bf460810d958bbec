package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/typesprint/internal/model"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Pos", "Expected", "Typed"}
	rows := [][]string{
		{"3", "<space>", "x"},
		{"12", "é", "e"},
	}
	rightAlign := map[int]bool{0: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Pos Expected Typed" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "  3 <space>  x    " {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != " 12 é        e    " {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestRenderErrorTable(t *testing.T) {
	var buf bytes.Buffer
	err := RenderErrorTable(&buf, []model.ErrorRecord{
		{Position: 4, Expected: 'o', Typed: 'p'},
		{Position: 9, Expected: 0, Typed: 'k'},
	})
	if err != nil {
		t.Fatalf("RenderErrorTable failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<none>") {
		t.Fatalf("expected overtyped row to show <none>, got:\n%s", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	if len(lines) != 3 || !strings.HasSuffix(lines[0], "Type") {
		t.Fatalf("expected header with a type column, got:\n%s", out)
	}
	if !strings.HasSuffix(lines[1], "substitution") || !strings.HasSuffix(lines[2], "insertion") {
		t.Fatalf("expected substitution then insertion rows, got:\n%s", out)
	}
	buf.Reset()
	if err := RenderErrorTable(&buf, nil); err != nil {
		t.Fatalf("RenderErrorTable failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No errors recorded.") {
		t.Fatalf("expected empty message")
	}
}
