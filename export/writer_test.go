package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"yt2alt/profile"
)

func TestWriteJSONFile_PrettyPrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subscriptions.json")

	doc := ToViewTubeSubscriptions(&profile.Profile{
		Channels: []profile.Channel{{ID: "UC1", Name: "A"}},
	})
	if err := WriteJSONFile(path, doc); err != nil {
		t.Fatalf("WriteJSONFile() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "\n    ") {
		t.Error("output is not 4-space indented")
	}
	if !strings.Contains(string(data), `"authorId": "UC1"`) {
		t.Errorf("output missing expected content:\n%s", data)
	}
}

func TestWriteFreeTubeSubscriptionsFile_SingleLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.db")

	subs := ToFreeTubeSubscriptions(&profile.Profile{
		Channels: []profile.Channel{{ID: "UC1", Name: "A"}},
	})
	if err := WriteFreeTubeSubscriptionsFile(path, subs); err != nil {
		t.Fatalf("WriteFreeTubeSubscriptionsFile() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	content := strings.TrimRight(string(data), "\n")
	if strings.Contains(content, "\n") {
		t.Error("subscriptions file must be a single JSON line")
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("subscriptions file must end with a newline")
	}
}

func TestWriteFreeTubeHistoryFile_OneRecordPerLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	entries := ToFreeTubeHistory(&profile.Profile{
		History: []profile.Video{{ID: "v1"}, {ID: "v2"}, {ID: "v3"}},
	})
	if err := WriteFreeTubeHistoryFile(path, entries); err != nil {
		t.Fatalf("WriteFreeTubeHistoryFile() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("history file has %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, `{"videoId":"v`) {
			t.Errorf("line %d = %q, want a compact JSON record", i, line)
		}
	}
}
