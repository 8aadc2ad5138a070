package singular

import "testing"

func TestSlugify_Basic(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Lower Third", "lower-third"},
		{"Clock  (Top Right)", "clock-top-right"},
		{"UPPER", "upper"},
		{"already-slugged", "already-slugged"},
		{"  Breaking News!  ", "breaking-news"},
		{"Score: 2 - 1", "score-2-1"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugify_EmptyFallsBackToItem(t *testing.T) {
	for _, in := range []string{"", "!!!", "---", "   "} {
		if got := Slugify(in); got != "item" {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, "item")
		}
	}
}
