package ui

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuietRunsStep(t *testing.T) {
	called := false
	err := Quiet{}.Do("working", func() error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)
}

func TestSpinnerReturnsStepError(t *testing.T) {
	var buf bytes.Buffer
	want := fmt.Errorf("boom")

	err := NewSpinner(&buf).Do("creating repository", func() error { return want })
	assert.Equal(t, want, err)
}

func TestSpinnerRunsStepOnce(t *testing.T) {
	var buf bytes.Buffer
	calls := 0

	err := NewSpinner(&buf).Do("authenticating", func() error {
		calls++
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestBannerNamesTool(t *testing.T) {
	assert.Contains(t, Banner("ginit"), "ginit")
	assert.Contains(t, RenderError("nope"), "nope")
}
