package companies

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"apple", "apple"},
		{"Apple Computer", "apple-computer"},
		{"already-a-slug", "already-a-slug"},
		{"Under_Score", "under-score"},
		{"  spaced   out  ", "spaced-out"},
		{"--a--b--", "a-b"},
		{"ABC123", "abc123"},
		{"crème brûlée!", "crme-brle"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
