package logger

import "testing"

func TestUpdateMetaRoundTrip(t *testing.T) {
	ctx := WithUpdateMeta(Background(), 42, 7, 9)
	if got := UpdateIDFrom(ctx); got != 42 {
		t.Fatalf("update_id = %d, expected 42", got)
	}
	if got := UserIDFrom(ctx); got != 7 {
		t.Fatalf("user_id = %d, expected 7", got)
	}
	if got := ChatIDFrom(ctx); got != 9 {
		t.Fatalf("chat_id = %d, expected 9", got)
	}
}

func TestRIDRoundTrip(t *testing.T) {
	ctx := WithRID(Background(), "rid-123")
	if got := RIDFrom(ctx); got != "rid-123" {
		t.Fatalf("rid = %q, expected rid-123", got)
	}
	if got := RIDFrom(Background()); got != "" {
		t.Fatalf("rid on empty context = %q, expected empty", got)
	}
}

func TestBuildRID(t *testing.T) {
	if got := BuildRID(1, 2, 3); got != "1:2:3" {
		t.Fatalf("rid = %q, expected 1:2:3", got)
	}
}

func TestSanitizeLimit(t *testing.T) {
	in := "hello\x00world\x7f"
	if got := Sanitize(in); got != "helloworld" {
		t.Fatalf("sanitize = %q", got)
	}
	if got := SanitizeLimit("abcdef", 3); got != "abc" {
		t.Fatalf("sanitize limit = %q, expected abc", got)
	}
	if got := SanitizeLimit("abc", 0); got != "" {
		t.Fatalf("sanitize limit 0 = %q, expected empty", got)
	}
}
