package main

import "testing"

func TestOptionParsing(t *testing.T) {
	t.Run("LongOptions", func(t *testing.T) {
		opts := defineOptions()
		if err := opts.Parse([]string{"--verbose", "--threads=8", "--hash=blake3", "/some/path"}); err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if !opts.GetBool("verbose") {
			t.Error("expected verbose to be set")
		}
		if opts.GetInt("threads") != 8 {
			t.Errorf("expected threads 8, got %d", opts.GetInt("threads"))
		}
		if opts.GetString("hash") != "blake3" {
			t.Errorf("expected hash blake3, got %s", opts.GetString("hash"))
		}
		args := opts.GetArgs()
		if len(args) != 1 || args[0] != "/some/path" {
			t.Errorf("expected one positional arg /some/path, got %v", args)
		}
	})

	t.Run("ShortOptions", func(t *testing.T) {
		opts := defineOptions()
		if err := opts.Parse([]string{"-v", "-t", "4", "/tree"}); err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if !opts.GetBool("verbose") {
			t.Error("expected -v to set verbose")
		}
		if opts.GetInt("threads") != 4 {
			t.Errorf("expected -t 4, got %d", opts.GetInt("threads"))
		}
		args := opts.GetArgs()
		if len(args) != 1 || args[0] != "/tree" {
			t.Errorf("expected /tree as the remaining arg, got %v", args)
		}
	})

	t.Run("IsSet", func(t *testing.T) {
		opts := defineOptions()
		if err := opts.Parse([]string{"/tree"}); err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if opts.IsSet("threads") {
			t.Error("threads should not be marked set without a flag")
		}
	})

	t.Run("UnknownOption", func(t *testing.T) {
		opts := defineOptions()
		if err := opts.Parse([]string{"--bogus"}); err == nil {
			t.Error("expected error for unknown long option")
		}
		opts = defineOptions()
		if err := opts.Parse([]string{"-z"}); err == nil {
			t.Error("expected error for unknown short option")
		}
	})

	t.Run("InvalidValues", func(t *testing.T) {
		opts := defineOptions()
		if err := opts.Parse([]string{"--threads=lots"}); err == nil {
			t.Error("expected error for non-integer thread count")
		}
		opts = defineOptions()
		if err := opts.Parse([]string{"--hash"}); err == nil {
			t.Error("expected error for string option without value")
		}
		opts = defineOptions()
		if err := opts.Parse([]string{"--verbose=maybe"}); err == nil {
			t.Error("expected error for bad boolean value")
		}
	})

	t.Run("BooleanWithValue", func(t *testing.T) {
		opts := defineOptions()
		if err := opts.Parse([]string{"--verbose=false", "/tree"}); err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if opts.GetBool("verbose") {
			t.Error("expected --verbose=false to disable verbose")
		}
		if !opts.IsSet("verbose") {
			t.Error("explicitly disabled option should still count as set")
		}
	})
}
