package theme

import (
	"bytes"
	"testing"
)

func TestPlainRendersVerbatim(t *testing.T) {
	th := Plain()
	if got := th.Remove.Render("remove"); got != "remove" {
		t.Fatalf("expected plain text, got %q", got)
	}
}

func TestForWriterWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	th := ForWriter(&buf, false)
	if got := th.Move.Render("move"); got != "move" {
		t.Fatalf("expected no escape codes, got %q", got)
	}
}

func TestRenderDiffPlainKeepsText(t *testing.T) {
	diff := "--- tree\n+++ tree (pruned)\n@@ -1,2 +1,1 @@\n-docs/\n README.md\n"
	if got := Plain().RenderDiff(diff); got != diff {
		t.Fatalf("expected diff unchanged, got %q", got)
	}
}
