package compound

import (
	"testing"

	"github.com/renamify-go/renamify/pkg/acronym"
	"github.com/renamify-go/renamify/pkg/types"
)

func TestFind_CompoundAtStart(t *testing.T) {
	matches := Find("PreviewFormatArg", "preview_format", "preview", []types.Style{types.StylePascal}, acronym.Default())
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Replacement != "PreviewArg" {
		t.Errorf("replacement = %q, want %q", matches[0].Replacement, "PreviewArg")
	}
}

func TestFind_CompoundInMiddle(t *testing.T) {
	matches := Find("shouldPreviewFormatPlease", "preview_format", "preview", []types.Style{types.StyleCamel}, acronym.Default())
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Replacement != "shouldPreviewPlease" {
		t.Errorf("replacement = %q, want %q", matches[0].Replacement, "shouldPreviewPlease")
	}
}

func TestFind_CompoundAtEnd(t *testing.T) {
	matches := Find("get_preview_format", "preview_format", "preview", []types.Style{types.StyleSnake}, acronym.Default())
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Replacement != "get_preview" {
		t.Errorf("replacement = %q, want %q", matches[0].Replacement, "get_preview")
	}
}

func TestFind_ExactMatchReturnsEmpty(t *testing.T) {
	matches := Find("PreviewFormat", "preview_format", "preview", []types.Style{types.StylePascal}, acronym.Default())
	if len(matches) != 0 {
		t.Errorf("expected exact match to be left to the pattern matcher, got %d compound matches", len(matches))
	}
}

func TestFind_NoMatchReturnsEmpty(t *testing.T) {
	matches := Find("SomethingElse", "preview_format", "preview", []types.Style{types.StylePascal}, acronym.Default())
	if len(matches) != 0 {
		t.Errorf("expected no compound matches, got %d", len(matches))
	}
}

func TestFind_StyleFilterExcludesDisallowedStyle(t *testing.T) {
	matches := Find("get_preview_format", "preview_format", "preview", []types.Style{types.StyleCamel}, acronym.Default())
	if len(matches) != 0 {
		t.Errorf("expected snake-cased identifier to be excluded when only camel is allowed, got %d matches", len(matches))
	}
}
