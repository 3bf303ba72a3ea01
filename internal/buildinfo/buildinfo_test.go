package buildinfo

import "testing"

func TestShort(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	tcs := []struct {
		version, commit, want string
	}{
		{version: "v1.2.0", commit: "abcdef0123", want: "v1.2.0"},
		{version: "dev", commit: "abcdef0123", want: "abcdef0"},
		{version: "", commit: "abc", want: "abc"},
		{version: "dev", commit: "unknown", want: "dev"},
	}
	for _, tc := range tcs {
		Version, Commit = tc.version, tc.commit
		if got := Short(); got != tc.want {
			t.Fatalf("Short() with %q/%q = %q, want %q", tc.version, tc.commit, got, tc.want)
		}
	}
}
