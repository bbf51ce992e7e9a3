package regbus

import (
	"fmt"
	"testing"
)

func TestVersionHexComposition(t *testing.T) {
	want := VersionMajor<<16 | VersionMinor<<8 | VersionPatch
	if Version != want {
		t.Fatalf("Version = %#x, want %#x", Version, want)
	}
	got := fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
	if got != VersionString {
		t.Fatalf("VersionString %q does not match constants %q", VersionString, got)
	}
}

func TestVersionAtLeast(t *testing.T) {
	if !VersionAtLeast(0, 0, 0) {
		t.Fatal("not at least 0.0.0")
	}
	if !VersionAtLeast(VersionMajor, VersionMinor, VersionPatch) {
		t.Fatal("not at least itself")
	}
	if VersionAtLeast(99, 0, 0) {
		t.Fatal("claims to be at least 99.0.0")
	}
}
