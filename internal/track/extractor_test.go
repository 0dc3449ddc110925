package track

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func writeScript(t *testing.T, name, content string) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "athletiq-extractor-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	scriptPath := filepath.Join(tmpDir, name)
	if err := os.WriteFile(scriptPath, []byte(content), 0755); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	return scriptPath
}

func TestExtractor_Extract(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping test on Windows")
	}

	// Create a shell script that echoes two frames of detections
	scriptContent := `#!/bin/sh
cat <<'EOF'
[
  {"frame":0,"persons":[{"track_id":1,"box":{"x1":10,"y1":20,"x2":110,"y2":220},"keypoints":[{"x":0.5,"y":0.2,"confidence":0.9}]}]},
  {"frame":1,"persons":[]}
]
EOF
`
	scriptPath := writeScript(t, "extractor.sh", scriptContent)

	extractor := NewExtractor(scriptPath, 5000) // 5 second timeout
	detections, err := extractor.Extract("/videos/run.mp4")
	if err != nil {
		t.Fatalf("Extract() failed: %v", err)
	}

	if len(detections) != 2 {
		t.Fatalf("expected 2 detections, got %d", len(detections))
	}
	if detections[0].Frame != 0 || detections[1].Frame != 1 {
		t.Errorf("expected frames [0 1], got [%d %d]", detections[0].Frame, detections[1].Frame)
	}
	if len(detections[0].Persons) != 1 {
		t.Fatalf("expected 1 person in frame 0, got %d", len(detections[0].Persons))
	}

	person := detections[0].Persons[0]
	if person.TrackID != 1 {
		t.Errorf("expected track id 1, got %d", person.TrackID)
	}
	if person.Box == nil || person.Box.X1 != 10 {
		t.Errorf("expected box with x1=10, got %+v", person.Box)
	}
	if len(person.Keypoints) != 1 || person.Keypoints[0].X != 0.5 {
		t.Errorf("unexpected keypoints: %+v", person.Keypoints)
	}
}

func TestExtractor_Extract_ReadsStdin(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping test on Windows")
	}

	// Create a shell script that fails unless it receives the video path on stdin
	scriptContent := `#!/bin/sh
INPUT=$(cat)
case "$INPUT" in
  *"/videos/sprint.mp4"*) echo '[]' ;;
  *) echo "unexpected input: $INPUT" >&2; exit 1 ;;
esac
`
	scriptPath := writeScript(t, "stdin-check.sh", scriptContent)

	extractor := NewExtractor(scriptPath, 5000)
	detections, err := extractor.Extract("/videos/sprint.mp4")
	if err != nil {
		t.Fatalf("Extract() failed: %v", err)
	}
	if len(detections) != 0 {
		t.Errorf("expected no detections, got %d", len(detections))
	}
}

func TestExtractor_Timeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping test on Windows")
	}

	// Create a shell script that sleeps longer than the timeout
	scriptContent := `#!/bin/sh
sleep 10
echo '[]'
`
	scriptPath := writeScript(t, "slow.sh", scriptContent)

	extractor := NewExtractor(scriptPath, 100)
	_, err := extractor.Extract("/videos/run.mp4")

	if err == nil {
		t.Fatal("expected timeout error, got nil")
	}
	if !strings.Contains(err.Error(), "timeout") && !strings.Contains(err.Error(), "killed") && !strings.Contains(err.Error(), "context deadline exceeded") {
		t.Errorf("expected timeout-related error, got: %v", err)
	}
}

func TestExtractor_Extract_NonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping test on Windows")
	}

	// Create a shell script that exits with non-zero status
	scriptContent := `#!/bin/sh
echo "Error: model weights missing" >&2
exit 1
`
	scriptPath := writeScript(t, "broken.sh", scriptContent)

	extractor := NewExtractor(scriptPath, 5000)
	_, err := extractor.Extract("/videos/run.mp4")

	if err == nil {
		t.Fatal("expected error for non-zero exit, got nil")
	}
	if !strings.Contains(err.Error(), "model weights missing") {
		t.Errorf("expected stderr in error, got: %v", err)
	}
}

func TestExtractor_Extract_InvalidJSON(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping test on Windows")
	}

	// Create a shell script that outputs invalid JSON
	scriptContent := `#!/bin/sh
echo 'not valid json'
`
	scriptPath := writeScript(t, "bad.sh", scriptContent)

	extractor := NewExtractor(scriptPath, 5000)
	_, err := extractor.Extract("/videos/run.mp4")

	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}
