package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const maxFileSize = 1 * 1024 * 1024 // 1MB

// validatePath performs security checks on a file path argument: no
// traversal outside the current working directory, a recognized
// extension, and a bounded file size.
func validatePath(path string) error {
	cleanPath := filepath.Clean(path)
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("invalid path: path traversal detected")
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cannot determine working directory: %w", err)
	}
	relPath, err := filepath.Rel(cwd, absPath)
	if err != nil || strings.HasPrefix(relPath, "..") {
		return fmt.Errorf("invalid path: file must be within current directory")
	}

	ext := strings.ToLower(filepath.Ext(absPath))
	if ext != ".tn" && ext != ".timon" {
		return fmt.Errorf("invalid file extension: expected .tn or .timon")
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("invalid path: expected file, got directory")
	}
	if info.Size() > maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}
	return nil
}
