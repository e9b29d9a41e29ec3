package exporter

import (
	"fmt"
	"os"
	"os/exec"
)

// Textify renders an HTML document to plain text by piping it through
// "w3m -dump", which needs a file to read from.
func Textify(htmlDoc string) (string, error) {
	tmp, err := os.CreateTemp("", "htwctl-*.html")
	if err != nil {
		return "", fmt.Errorf("could not create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(htmlDoc); err != nil {
		tmp.Close()
		return "", fmt.Errorf("could not write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	out, err := exec.Command("w3m", "-dump", tmp.Name()).Output()
	if err != nil {
		return "", fmt.Errorf("w3m -dump failed: %w", err)
	}
	return string(out), nil
}
