//go:build unit

package errs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"canteen-reservation/internal/pkg/errs"
)

func TestMarkAndIs(t *testing.T) {
	t.Parallel()

	errSpecific := errs.New("menu not published")

	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{name: "marked error matches its kind", err: errs.Mark(errSpecific, errs.ErrMenuUnavailable), target: errs.ErrMenuUnavailable, want: true},
		{name: "marked error still matches itself", err: errs.Mark(errSpecific, errs.ErrMenuUnavailable), target: errSpecific, want: true},
		{name: "wrapped marked error matches kind", err: errs.Wrap(errs.Mark(errSpecific, errs.ErrMenuUnavailable), "loading menu"), target: errs.ErrMenuUnavailable, want: true},
		{name: "different kind does not match", err: errs.Mark(errSpecific, errs.ErrMenuUnavailable), target: errs.ErrInvalidOption, want: false},
		{name: "mark of nil returns the kind", err: errs.Mark(nil, errs.ErrNotFound), target: errs.ErrNotFound, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, errs.Is(tt.err, tt.target))
		})
	}
}

func TestDetails(t *testing.T) {
	t.Parallel()

	err := errs.WithDetail(errs.Mark(errs.New("option not in menu"), errs.ErrInvalidOption), "option 42 is not a MAIN of 2025-03-10")
	err = errs.Wrap(err, "create reservation")

	assert.Equal(t, []string{"option 42 is not a MAIN of 2025-03-10"}, errs.Details(err))
	assert.True(t, errs.Is(err, errs.ErrInvalidOption))
	assert.Nil(t, errs.Details(nil))
	assert.Nil(t, errs.WithDetail(nil, "ignored"))
}
