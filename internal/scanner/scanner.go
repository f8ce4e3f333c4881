// Package scanner invokes the external vision-scanning subprocess that turns
// uploaded videos into per-video artifact directories.
package scanner

import (
	"bufio"
	"bytes"
	"fmt"
	"log/slog"
	"os/exec"
	"sync"
)

// Scanner runs the python scanning script over the uploads directory and
// writes artifacts under the detections directory.
type Scanner struct {
	pythonBin     string
	scriptPath    string
	uploadDir     string
	detectionsDir string
	logger        *slog.Logger
}

func NewScanner(pythonBin, scriptPath, uploadDir, detectionsDir string, logger *slog.Logger) *Scanner {
	return &Scanner{
		pythonBin:     pythonBin,
		scriptPath:    scriptPath,
		uploadDir:     uploadDir,
		detectionsDir: detectionsDir,
		logger:        logger,
	}
}

// Run executes the scan subprocess and blocks until it exits, streaming its
// stdout into the returned line buffer as it is produced. A non-zero exit
// fails with the captured stderr.
func (s *Scanner) Run() ([]string, error) {
	cmd := exec.Command(s.pythonBin, s.scriptPath, s.uploadDir, s.detectionsDir)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open stdout pipe: %w", err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start scanner: %w", err)
	}

	var lines []string
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sc := bufio.NewScanner(stdout)
		for sc.Scan() {
			line := sc.Text()
			lines = append(lines, line)
			s.logger.Debug("scanner output", "line", line)
		}
	}()

	wg.Wait()
	if err := cmd.Wait(); err != nil {
		return lines, fmt.Errorf("scanner exited with error: %w: %s", err, stderr.String())
	}

	s.logger.Info("scan finished", "output_lines", len(lines))
	return lines, nil
}
