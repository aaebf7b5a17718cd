package helpers

import (
	"fmt"
	"os"
	"path/filepath"
)

// SaveFile writes content to outputDir/relPath, creating intermediate
// directories as needed. Existing files are overwritten; existing
// directories are left alone.
func SaveFile(outputDir string, relPath string, content []byte) error {
	fullPath := filepath.Join(outputDir, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("error creating output folder for %s: %w", fullPath, err)
	}

	if err := os.WriteFile(fullPath, content, 0o644); err != nil {
		return fmt.Errorf("error saving file %s: %w", fullPath, err)
	}

	return nil
}

// FormatBytes renders a byte count for status lines.
func FormatBytes(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
