package inbox

import (
	"strings"
	"testing"

	"github.com/shineum/tmpmail/internal/mail"
)

func TestFormat_EmptyInbox(t *testing.T) {
	t.Parallel()

	got := Format("a@b.com", nil)
	want := "[ Inbox for a@b.com ]\n\nNo new mail"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if got := Format("a@b.com", []mail.Summary{}); got != want {
		t.Errorf("empty slice: got %q, want %q", got, want)
	}
}

func TestFormat_SingleRow(t *testing.T) {
	t.Parallel()

	got := Format("a@b.com", []mail.Summary{
		{ID: 1, From: "x@y.com", Subject: "Hi there"},
	})
	want := "[ Inbox for a@b.com ]\n\n1  x@y.com  Hi there"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormat_ColumnsAligned(t *testing.T) {
	t.Parallel()

	got := Format("me@1secmail.com", []mail.Summary{
		{ID: 123456, From: "newsletter@example.com", Subject: "Weekly digest: what you missed"},
		{ID: 7, From: "a@b.io", Subject: "Re: hello   world"},
	})

	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("line count: got %d, want 4\n%s", len(lines), got)
	}
	if lines[0] != "[ Inbox for me@1secmail.com ]" || lines[1] != "" {
		t.Errorf("header: got %q / %q", lines[0], lines[1])
	}

	first, second := lines[2], lines[3]
	if first != "123456  newsletter@example.com  Weekly digest: what you missed" {
		t.Errorf("row 1: got %q", first)
	}
	if second != "7       a@b.io                  Re: hello   world" {
		t.Errorf("row 2: got %q", second)
	}

	if strings.Index(first, "newsletter") != strings.Index(second, "a@b.io") {
		t.Error("from column is not aligned")
	}
	if strings.Index(first, "Weekly") != strings.Index(second, "Re:") {
		t.Error("subject column is not aligned")
	}
}

func TestFormat_WideCharacters(t *testing.T) {
	t.Parallel()

	got := Format("me@1secmail.com", []mail.Summary{
		{ID: 1, From: "日本@example.jp", Subject: "こんにちは"},
		{ID: 2, From: "ab@example.jp", Subject: "hi"},
	})

	lines := strings.Split(got, "\n")
	// "日本" occupies four terminal cells, so the narrow row needs two extra spaces.
	if lines[3] != "2  ab@example.jp    hi" {
		t.Errorf("row 2: got %q", lines[3])
	}
}

func TestEncodeRow_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := [][]string{
		{"1", "a|", "|b"},
		{"1", "x@y.com", "a || b"},
		{"2", `back\slash\`, "|||"},
		{"3", "", "plain subject"},
	}

	for _, fields := range tests {
		row := EncodeRow(fields...)
		got := SplitRow(row)
		if len(got) != len(fields) {
			t.Errorf("SplitRow(%q): got %d cells %q, want %q", row, len(got), got, fields)
			continue
		}
		for i := range fields {
			if got[i] != fields[i] {
				t.Errorf("SplitRow(%q)[%d]: got %q, want %q", row, i, got[i], fields[i])
			}
		}
	}
}

func TestEncodeRow_LineBreaks(t *testing.T) {
	t.Parallel()

	got := SplitRow(EncodeRow("1", "x@y.com", "a\nb\r\nc"))
	if len(got) != 3 || got[2] != "a b c" {
		t.Errorf("got %q, want subject %q", got, "a b c")
	}
}

func TestFormat_PipesAtFieldEdges(t *testing.T) {
	t.Parallel()

	got := Format("me@1secmail.com", []mail.Summary{
		{ID: 1, From: "bob |", Subject: "| News"},
		{ID: 22, From: "x@y.com", Subject: "Hi there"},
	})

	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("line count: got %d, want 4\n%s", len(lines), got)
	}
	if lines[2] != "1   bob |    | News" {
		t.Errorf("row 1: got %q", lines[2])
	}
	if lines[3] != "22  x@y.com  Hi there" {
		t.Errorf("row 2: got %q", lines[3])
	}
}
