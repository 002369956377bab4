package pattern

import (
	"testing"

	"github.com/renamify-go/renamify/pkg/types"
)

func buildFromVariants(t *testing.T, pairs map[string]string) *Matcher {
	t.Helper()
	vm := types.NewVariantMap()
	for k, v := range pairs {
		vm.Put(k, v, types.StyleSnake)
	}
	m, err := Build(vm)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return m
}

func TestBuild_Empty(t *testing.T) {
	m, err := Build(types.NewVariantMap())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if hits := m.FindAll([]byte("anything")); len(hits) != 0 {
		t.Errorf("expected no hits on empty matcher, got %d", len(hits))
	}
}

func TestFindAll_LongestFirst(t *testing.T) {
	m := buildFromVariants(t, map[string]string{
		"foo":       "x",
		"foobar":    "y",
		"foobarbaz": "z",
	})
	hits := m.FindAll([]byte("foobarbaz"))
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if hits[0].Entry.Variant != "foobarbaz" {
		t.Errorf("expected longest variant to win, got %q", hits[0].Entry.Variant)
	}
}

func TestFindAll_RespectsBoundaries(t *testing.T) {
	m := buildFromVariants(t, map[string]string{"test": "x"})
	hits := m.FindAll([]byte("test testing attest test"))
	if len(hits) != 2 {
		t.Fatalf("expected 2 boundary-valid hits, got %d", len(hits))
	}
	if hits[0].Start != 0 || hits[1].Start != 20 {
		t.Errorf("unexpected hit offsets: %+v", hits)
	}
}

func TestFindAll_MultipleVariantsIdentified(t *testing.T) {
	m := buildFromVariants(t, map[string]string{
		"old_name": "new_name",
		"oldName":  "newName",
		"OldName":  "NewName",
	})
	for _, content := range []string{"old_name", "oldName", "OldName"} {
		hits := m.FindAll([]byte(content))
		if len(hits) != 1 || hits[0].Entry.Variant != content {
			t.Errorf("FindAll(%q): expected single self-identifying hit, got %+v", content, hits)
		}
	}
}

func TestIsBoundary(t *testing.T) {
	text := []byte("hello_world test")
	if !IsBoundary(text, 0, 11) {
		t.Error("expected full match to be a boundary")
	}
	if IsBoundary(text, 1, 5) {
		t.Error("expected mid-identifier slice to fail boundary check")
	}
}

func TestLineAndColumn(t *testing.T) {
	content := []byte("line1\nline2 foo\nfoo line3")
	line, col := LineAndColumn(content, 12)
	if line != 2 || col != 7 {
		t.Errorf("LineAndColumn = (%d,%d), want (2,7)", line, col)
	}
	line, col = LineAndColumn(content, 16)
	if line != 3 || col != 1 {
		t.Errorf("LineAndColumn = (%d,%d), want (3,1)", line, col)
	}
}

func TestSpecialCharsEscaped(t *testing.T) {
	m := buildFromVariants(t, map[string]string{
		"foo.bar":  "x",
		"foo[bar]": "y",
	})
	if hits := m.FindAll([]byte("foo.bar")); len(hits) != 1 {
		t.Errorf("expected literal dot to match, got %d hits", len(hits))
	}
	if hits := m.FindAll([]byte("fooXbar")); len(hits) != 0 {
		t.Errorf("expected escaped dot to not match an arbitrary char, got %d hits", len(hits))
	}
}
