package propel

import "testing"

func TestClassName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in  string
		out string
	}{
		{"blog_post", "BlogPost"},
		{"blog", "Blog"},
		{"Blog", "Blog"},
		{"user_ID", "UserID"},
		{"sf_guard_user", "SfGuardUser"},
		{"blogPost", "BlogPost"},
		{"blog post", "BlogPost"},
		{"blog__post", "BlogPost"},
		{"_blog", "Blog"},
		{"2nd_table", "2ndTable"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ClassName(tt.in); got != tt.out {
			t.Errorf("ClassName(%q) = %q, want %q", tt.in, got, tt.out)
		}
	}
}
