// Package util holds small helpers shared by the CLIs.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
)

// CalculateFileChecksum returns the hex SHA256 digest of a file's contents.
// Seed imports record it so a rerun can tell whether the file changed.
func CalculateFileChecksum(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	digest := sha256.New()
	if _, err := io.Copy(digest, file); err != nil {
		return "", errors.Wrap(err, "failed to calculate checksum")
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}

// FormatBytes renders a byte count with a binary-prefix unit, e.g. "1.5 KB".
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	value := float64(bytes)
	suffix := 0
	units := []string{"B", "KB", "MB", "GB", "TB", "PB"}
	for value >= unit && suffix < len(units)-1 {
		value /= unit
		suffix++
	}

	return fmt.Sprintf("%.1f %s", value, units[suffix])
}

// FormatDuration renders a duration at second precision, e.g. "1h30m" or "45s".
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	switch {
	case duration < time.Minute:
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	case duration < time.Hour:
		return fmt.Sprintf("%dm%ds", int(duration.Minutes()), int(duration.Seconds())%60)
	default:
		return fmt.Sprintf("%dh%dm", int(duration.Hours()), int(duration.Minutes())%60)
	}
}
