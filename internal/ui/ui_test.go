package ui_test

import (
	"testing"
	"time"

	"github.com/AlecAivazis/survey/v2/terminal"
	expect "github.com/Netflix/go-expect"
	"github.com/creack/pty"
	"github.com/hinshun/vt10x"

	"github.com/dev-scripter/kickoff/internal/ui"
)

// newConsole returns a virtual terminal for driving survey prompts, or
// skips when the environment cannot allocate a pty. The extra pty pair
// routes the emulator's replies, like cursor position reports, back into
// the console's tty.
func newConsole(t *testing.T) *expect.Console {
	t.Helper()
	ptm, pts, err := pty.Open()
	if err != nil {
		t.Skipf("pty not available: %v", err)
	}

	term := vt10x.New(vt10x.WithWriter(pts))
	c, err := expect.NewConsole(
		expect.WithStdin(ptm),
		expect.WithStdout(term),
		expect.WithCloser(pts, ptm),
		expect.WithDefaultTimeout(5*time.Second),
	)
	if err != nil {
		t.Fatalf("cannot create console: %v", err)
	}
	return c
}

func stdioFor(c *expect.Console) terminal.Stdio {
	return terminal.Stdio{In: c.Tty(), Out: c.Tty(), Err: c.Tty()}
}

func TestTextReturnsDefaultOnEnter(t *testing.T) {
	c := newConsole(t)
	defer c.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.ExpectString("Project Name")
		c.SendLine("")
		c.ExpectEOF()
	}()

	u := ui.NewWithStdio(stdioFor(c))
	got, err := u.Text("Project Name", "my-new-project")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	c.Tty().Close()
	<-done

	if got != "my-new-project" {
		t.Errorf("Text = %q, want the default", got)
	}
}

func TestTextReturnsTypedAnswer(t *testing.T) {
	c := newConsole(t)
	defer c.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.ExpectString("Project Name")
		c.SendLine("demo")
		c.ExpectEOF()
	}()

	u := ui.NewWithStdio(stdioFor(c))
	got, err := u.Text("Project Name", "my-new-project")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	c.Tty().Close()
	<-done

	if got != "demo" {
		t.Errorf("Text = %q, want demo", got)
	}
}

func TestSelectOnePicksHighlightedOption(t *testing.T) {
	c := newConsole(t)
	defer c.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.ExpectString("Select Primary Language")
		c.SendLine("")
		c.ExpectEOF()
	}()

	u := ui.NewWithStdio(stdioFor(c))
	got, err := u.SelectOne("Select Primary Language", []string{"Python", "C++", "Rust"})
	if err != nil {
		t.Fatalf("SelectOne: %v", err)
	}
	c.Tty().Close()
	<-done

	if got != "Python" {
		t.Errorf("SelectOne = %q, want the first option", got)
	}
}

func TestConfirmDefaultsToNo(t *testing.T) {
	c := newConsole(t)
	defer c.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.ExpectString("Add Docker configuration")
		c.SendLine("")
		c.ExpectEOF()
	}()

	u := ui.NewWithStdio(stdioFor(c))
	got, err := u.Confirm("Add Docker configuration (Dockerfile)?")
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	c.Tty().Close()
	<-done

	if got {
		t.Error("Confirm defaulted to yes, want no")
	}
}

func TestConfirmAcceptsYes(t *testing.T) {
	c := newConsole(t)
	defer c.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.ExpectString("Add basic GitHub Actions")
		c.SendLine("y")
		c.ExpectEOF()
	}()

	u := ui.NewWithStdio(stdioFor(c))
	got, err := u.Confirm("Add basic GitHub Actions CI workflow?")
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	c.Tty().Close()
	<-done

	if !got {
		t.Error("Confirm = false, want true for 'y'")
	}
}
