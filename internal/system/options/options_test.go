package options

import (
	"testing"

	"github.com/docopt/docopt-go"
)

func parse(t *testing.T, terminal bool, argv ...string) {
	t.Helper()

	// A nil argv would make the parser read os.Args.
	opts, err := (&docopt.Parser{}).ParseArgs(usage, append([]string{}, argv...), version)
	if err != nil {
		t.Fatalf("Parsing %v: %v", argv, err)
	}

	load(opts, terminal)
}

func TestCommand(t *testing.T) {
	parse(t, true, "-c", "(display 1)")

	if Command() != "(display 1)" {
		t.Fatalf("Expected command; got %q", Command())
	}

	if Interactive() {
		t.Fatal("Expected non-interactive mode with a command")
	}
}

func TestInteractive(t *testing.T) {
	parse(t, true)

	if !Interactive() {
		t.Fatal("Expected interactive mode on a terminal")
	}

	parse(t, false)

	if Interactive() {
		t.Fatal("Expected non-interactive mode without a terminal")
	}

	parse(t, false, "-i")

	if !Interactive() {
		t.Fatal("Expected -i to invert interactive mode")
	}
}

func TestScripts(t *testing.T) {
	parse(t, true, "-d", "--single", "--steps=100", "a.scm", "b.scm")

	if s := Scripts(); len(s) != 2 || s[0] != "a.scm" || s[1] != "b.scm" {
		t.Fatalf("Unexpected scripts %v", s)
	}

	if !Debug() || !Single() || Steps() != 100 || Interactive() {
		t.Fatalf("Unexpected options %v %v %v %v", Debug(), Single(), Steps(), Interactive())
	}
}
