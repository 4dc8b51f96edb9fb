package docgen

import (
	"strings"
	"testing"
	"time"

	"github.com/dev-scripter/kickoff/internal/project"
)

func TestRenderFullReport(t *testing.T) {
	r := &project.Report{}
	r.Log("* **Project:** `demo`")
	r.Log("* **Language:** Rust")
	r.Log("* **Project:** `demo`")
	r.NextStep("Run `cargo build` to build the project.")
	r.NextStep("Run `cargo build` to build the project.")
	r.NextStep("Install extensions.")

	now := time.Date(2024, 5, 17, 10, 0, 0, 0, time.UTC)
	out, err := Render("demo", now, r)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !strings.HasPrefix(out, "# Getting Started with demo") {
		t.Errorf("header missing:\n%s", out)
	}
	if !strings.Contains(out, "scaffolded on 2024-05-17") {
		t.Errorf("date missing:\n%s", out)
	}
	if got := strings.Count(out, "* **Project:** `demo`"); got != 1 {
		t.Errorf("duplicate summary line survived: %d occurrences", got)
	}
	if !strings.Contains(out, "1. Install extensions.") {
		t.Errorf("next steps not numbered and sorted:\n%s", out)
	}
	if !strings.Contains(out, "2. Run `cargo build` to build the project.") {
		t.Errorf("second next step missing:\n%s", out)
	}
}

func TestRenderOmitsEmptyNextSteps(t *testing.T) {
	r := &project.Report{}
	r.Log("* **Project:** `demo`")

	out, err := Render("demo", time.Now(), r)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(out, "## Next Steps") {
		t.Errorf("next steps section rendered for empty list:\n%s", out)
	}
}
