package pagination

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name      string
		params    Params
		wantPage  int
		wantLimit int
	}{
		{"zero values fall back", Params{}, 1, DefaultLimit},
		{"explicit values pass through", Params{Page: 3, Limit: 25}, 3, 25},
		{"negative page clamped", Params{Page: -2, Limit: 5}, 1, 5},
		{"negative limit falls back", Params{Page: 2, Limit: -1}, 2, DefaultLimit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, limit := tc.params.Normalize()
			if page != tc.wantPage || limit != tc.wantLimit {
				t.Fatalf("expected (%d, %d), got (%d, %d)", tc.wantPage, tc.wantLimit, page, limit)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	cases := []struct {
		params Params
		want   int
	}{
		{Params{Page: 1, Limit: 10}, 0},
		{Params{Page: 2, Limit: 10}, 10},
		{Params{Page: 5, Limit: 25}, 100},
		{Params{}, 0},
	}
	for _, tc := range cases {
		if got := tc.params.Offset(); got != tc.want {
			t.Errorf("Offset(%+v): expected %d, got %d", tc.params, tc.want, got)
		}
	}
}
