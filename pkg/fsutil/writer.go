package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrEmptyOutputPath is returned when a write is attempted with an empty path.
var ErrEmptyOutputPath = errors.New("output path is empty")

const (
	dirPermUserGroupRX = 0o755
	filePermUserRW     = 0o644
)

// TryWriteFile writes content to a file path, handling force/overwrite logic.
// Parent directories are created as needed. When force is false and the file
// already exists, the write is skipped and skipped=true is returned.
func TryWriteFile(content []byte, output string, force bool) (skipped bool, err error) {
	if output == "" {
		return false, ErrEmptyOutputPath
	}

	output = filepath.Clean(output)

	if !force {
		_, statErr := os.Stat(output)
		if statErr == nil {
			return true, nil
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return false, fmt.Errorf("failed to check file %s: %w", output, statErr)
		}
	}

	dir := filepath.Dir(output)

	err = os.MkdirAll(dir, dirPermUserGroupRX)
	if err != nil {
		return false, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	err = os.WriteFile(output, content, filePermUserRW)
	if err != nil {
		return false, fmt.Errorf("failed to write file %s: %w", output, err)
	}

	return false, nil
}
