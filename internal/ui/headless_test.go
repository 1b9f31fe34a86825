package ui

import "testing"

func TestHeadlessManager_Force(t *testing.T) {
	hm := NewHeadlessManager()

	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("ForceHeadless(true) should report headless")
	}

	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("ForceHeadless(false) should report interactive")
	}
}

func TestHeadlessManager_DetectsTTY(t *testing.T) {
	// An invalid descriptor is never a terminal.
	hm := &HeadlessManager{fd: ^uintptr(0)}
	if !hm.IsHeadless() {
		t.Error("invalid descriptor should be detected as headless")
	}
}
