package variant

import (
	"testing"

	"github.com/renamify-go/renamify/pkg/types"
)

func TestGenerate_CoversAllDefaultStyles(t *testing.T) {
	vm := Generate("user_account", "member_profile", DefaultOptions())

	cases := map[string]string{
		"user_account":   "member_profile",
		"user-account":   "member-profile",
		"userAccount":    "memberProfile",
		"UserAccount":    "MemberProfile",
		"USER_ACCOUNT":   "MEMBER_PROFILE",
		"User-Account":   "Member-Profile",
		"USER-ACCOUNT":   "MEMBER-PROFILE",
	}
	for variant, want := range cases {
		e, ok := vm.Get(variant)
		if !ok {
			t.Errorf("missing variant %q", variant)
			continue
		}
		if e.Replacement != want {
			t.Errorf("variant %q replacement = %q, want %q", variant, e.Replacement, want)
		}
	}
}

func TestGenerate_ExactCasePreservation(t *testing.T) {
	opts := DefaultOptions()
	opts.Plurals = false
	vm := Generate("DocSpring", "FormAPI", opts)

	e, ok := vm.Get("DocSpring")
	if !ok {
		t.Fatalf("expected variant %q to exist", "DocSpring")
	}
	if e.Replacement != "FormAPI" {
		t.Errorf("expected exact-case replacement %q, got %q", "FormAPI", e.Replacement)
	}
}

func TestGenerate_PluralVariants(t *testing.T) {
	vm := Generate("user_account", "member_profile", DefaultOptions())

	e, ok := vm.Get("user_accounts")
	if !ok {
		t.Fatalf("expected plural variant %q to exist", "user_accounts")
	}
	if e.Replacement != "member_profiles" {
		t.Errorf("plural replacement = %q, want %q", e.Replacement, "member_profiles")
	}
}

func TestGenerate_PluralSuffixRules(t *testing.T) {
	if got := pluralize("box"); got != "boxes" {
		t.Errorf("pluralize(box) = %q, want boxes", got)
	}
	if got := pluralize("query"); got != "queries" {
		t.Errorf("pluralize(query) = %q, want queries", got)
	}
	if got := pluralize("key"); got != "keys" {
		t.Errorf("pluralize(key) = %q, want keys (vowel+y keeps the y)", got)
	}
}

func TestGenerate_ConfiguredAtomicIdentifierSuppressesSeparatedForms(t *testing.T) {
	opts := DefaultOptions()
	opts.AtomicIdentifiers = []string{"CARGO_BIN_EXE_foobar"}
	vm := Generate("CARGO_BIN_EXE_foobar", "CARGO_BIN_EXE_bazqux", opts)

	if _, ok := vm.Get("cargo_bin_exe_foobar"); ok {
		t.Errorf("atomic mode must not emit a snake-case form; it should stay flat-only")
	}
	if _, ok := vm.Get("cargobinexefoobar"); !ok {
		t.Errorf("expected lower_flat atomic variant to be present")
	}
}

func TestIsAmbiguousSingleToken(t *testing.T) {
	m := types.NewTokenModel([]types.Token{types.NewToken("api")})
	if !IsAmbiguousSingleToken(m) {
		t.Errorf("expected single-token model to be ambiguous")
	}
	multi := types.NewTokenModel([]types.Token{types.NewToken("user"), types.NewToken("api")})
	if IsAmbiguousSingleToken(multi) {
		t.Errorf("expected multi-token model to not be reported ambiguous")
	}
}
