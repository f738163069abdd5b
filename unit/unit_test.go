// SPDX-License-Identifier: Unlicense OR MIT

package unit

import "testing"

func TestMetric(t *testing.T) {
	for _, tc := range []struct {
		metric Metric
		dp     Dp
		want   float32
	}{
		{Metric{}, 5, 5},
		{Metric{PxPerDp: 1}, 5, 5},
		{Metric{PxPerDp: 2}, 5, 10},
		{Metric{PxPerDp: 1.5}, 3, 4.5},
	} {
		if got := tc.metric.Dp(tc.dp); got != tc.want {
			t.Errorf("%#v.Dp(%g) = %g, want %g", tc.metric, float32(tc.dp), got, tc.want)
		}
	}
}
