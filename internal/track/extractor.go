package track

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"
)

// ExtractRequest is sent to the extractor command on stdin.
type ExtractRequest struct {
	VideoPath string `json:"video_path"`
}

// Extractor runs an external pose-estimation command with timeout support.
// The command receives an ExtractRequest as JSON on stdin and writes the
// per-frame detections as a JSON array on stdout.
type Extractor struct {
	command   string
	timeoutMs int
}

// NewExtractor creates a new Extractor for the given command with the
// specified timeout in milliseconds.
func NewExtractor(command string, timeoutMs int) *Extractor {
	return &Extractor{
		command:   command,
		timeoutMs: timeoutMs,
	}
}

// Extract runs the extractor command against a video file and returns the
// detections it produced. It creates a context with the configured timeout,
// sends the request to the command via stdin, and parses the stdout as a
// Detection slice.
func (e *Extractor) Extract(videoPath string) ([]Detection, error) {
	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(e.timeoutMs)*time.Millisecond)
	defer cancel()

	// Create command with context
	cmd := exec.CommandContext(ctx, e.command)

	// Marshal request to JSON
	reqJSON, err := json.Marshal(ExtractRequest{VideoPath: videoPath})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	// Set up stdin with the request JSON
	cmd.Stdin = bytes.NewReader(reqJSON)

	// Capture stdout and stderr
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// Run the command
	err = cmd.Run()

	// Check for context deadline exceeded (timeout)
	if ctx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("extractor timeout after %dms", e.timeoutMs)
	}

	// Check for execution error
	if err != nil {
		stderrStr := stderr.String()
		if stderrStr != "" {
			return nil, fmt.Errorf("extractor failed: %w, stderr: %s", err, stderrStr)
		}
		return nil, fmt.Errorf("extractor failed: %w", err)
	}

	// Parse the detections from stdout
	var detections []Detection
	if err := json.Unmarshal(stdout.Bytes(), &detections); err != nil {
		return nil, fmt.Errorf("failed to parse extractor output: %w, stdout: %s", err, stdout.String())
	}

	return detections, nil
}
