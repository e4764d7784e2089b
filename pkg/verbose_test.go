package treehash

import "testing"

func TestVerboseLevel(t *testing.T) {
	defer SetVerboseLevel(0)

	SetVerboseLevel(2)
	if GetVerboseLevel() != 2 {
		t.Errorf("expected verbose level 2, got %d", GetVerboseLevel())
	}

	// Should not crash at any level
	VerboseLog(1, "message with %s", "formatting")
	VerboseLog(3, "suppressed message")
}

func TestDebugFlags(t *testing.T) {
	defer SetDebugFlags("")

	SetDebugFlags("walk,hash")
	if !IsDebugEnabled("walk") {
		t.Error("expected walk debug to be enabled")
	}
	if !IsDebugEnabled("HASH") {
		t.Error("debug flags should be case-insensitive")
	}
	if IsDebugEnabled("other") {
		t.Error("unset flag should be disabled")
	}

	SetDebugFlags("walk:false,hash:on")
	if IsDebugEnabled("walk") {
		t.Error("walk:false should disable the flag")
	}
	if !IsDebugEnabled("hash") {
		t.Error("hash:on should enable the flag")
	}

	SetDebugFlags("")
	if IsDebugEnabled("walk") {
		t.Error("empty flag string should clear all flags")
	}
}
