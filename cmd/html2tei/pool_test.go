package main

import (
	"runtime"
	"testing"
)

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	if got := resolvePoolSize(3); got != 3 {
		t.Errorf("resolvePoolSize(3) = %d, want 3", got)
	}

	auto := resolvePoolSize(0)
	if auto < 1 || auto > 8 {
		t.Errorf("resolvePoolSize(0) = %d, want 1..8", auto)
	}
	if want := runtime.GOMAXPROCS(0) / 2; want >= 1 && want <= 8 && auto != want {
		t.Errorf("resolvePoolSize(0) = %d, want GOMAXPROCS/2 = %d", auto, want)
	}
}
