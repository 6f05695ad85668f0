// SPDX-License-Identifier: Unlicense OR MIT

package unit_test

import (
	"testing"

	"gioui.org/x/zoom/unit"
)

func TestMetric_Px(t *testing.T) {
	m := unit.Metric{
		PxPerDp: 2,
		PxPerSp: 3,
	}

	for _, tc := range []struct {
		v    unit.Value
		want int
	}{
		{unit.Px(7), 7},
		{unit.Dp(20), 40},
		{unit.Sp(5), 15},
		{unit.Dp(1.3), 3},
	} {
		if got := m.Px(tc.v); got != tc.want {
			t.Errorf("Px(%v) = %d, want %d", tc.v, got, tc.want)
		}
	}
}

func TestMetric_ZeroValue(t *testing.T) {
	var m unit.Metric
	if got, want := m.Dp(20), 20; got != want {
		t.Errorf("zero Metric: Dp(20) = %d, want %d", got, want)
	}
	if got, want := m.PxToDp(m.Dp(5)), unit.Dp(5); got != want {
		t.Errorf("PxToDp conversion mismatch %v != %v", got, want)
	}
}

func TestMetric_PxToDp(t *testing.T) {
	m := unit.Metric{PxPerDp: 2}
	exp := unit.Dp(5)
	got := m.PxToDp(m.Dp(5))
	if got != exp {
		t.Errorf("PxToDp conversion mismatch %v != %v", exp, got)
	}
}
