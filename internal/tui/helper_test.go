package tui

import (
	"testing"

	"github.com/jsimonrichard/brp/internal/bible"
)

func testStructure(t *testing.T) *bible.Structure {
	t.Helper()
	return bible.Get()
}
