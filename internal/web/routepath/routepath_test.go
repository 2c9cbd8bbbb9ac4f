package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Login != "/login" {
		t.Fatalf("Login = %q", Login)
	}
	if Logout != "/logout" {
		t.Fatalf("Logout = %q", Logout)
	}
	if Health != "/up" {
		t.Fatalf("Health = %q", Health)
	}
}

func TestPostPaths(t *testing.T) {
	t.Parallel()

	if got := Post(12); got != "/post/12" {
		t.Fatalf("Post(12) = %q", got)
	}
	if got := EditPost(12); got != "/edit-post/12" {
		t.Fatalf("EditPost(12) = %q", got)
	}
	if got := DeletePost(12); got != "/delete-post/12" {
		t.Fatalf("DeletePost(12) = %q", got)
	}
}

func TestIsSafeRedirect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		target string
		want   bool
	}{
		{"/post/3", true},
		{"/", true},
		{"", false},
		{"post/3", false},
		{"//evil.example.com", false},
		{"https://evil.example.com", false},
		{"/\n", false},
	}
	for _, tc := range tests {
		if got := IsSafeRedirect(tc.target); got != tc.want {
			t.Errorf("IsSafeRedirect(%q) = %v, want %v", tc.target, got, tc.want)
		}
	}
}
