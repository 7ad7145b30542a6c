package valuesfile

import (
	"fmt"
	"os"
	"runtime"

	"github.com/devantler-tech/valdedup/pkg/fsutil"
	"github.com/devantler-tech/valdedup/pkg/yamlvalue"
	"golang.org/x/sync/errgroup"
)

// Load reads and decodes a single values file.
func Load(path string) (*yamlvalue.Value, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from CLI arguments.
	if err != nil {
		return nil, fmt.Errorf("read values file %s: %w", path, err)
	}

	value, err := yamlvalue.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode values file %s: %w", path, err)
	}

	return value, nil
}

// LoadAll loads values files concurrently; the result is index-aligned
// with paths.
func LoadAll(paths []string) ([]*yamlvalue.Value, error) {
	values := make([]*yamlvalue.Value, len(paths))

	var group errgroup.Group

	group.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		group.Go(func() error {
			value, err := Load(path)
			if err != nil {
				return err
			}

			values[i] = value

			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, err
	}

	return values, nil
}

// Write encodes value and writes it to path. When force is false an
// existing file is left untouched and skipped=true is returned.
func Write(value *yamlvalue.Value, path string, force bool) (bool, error) {
	data, err := yamlvalue.Encode(value)
	if err != nil {
		return false, fmt.Errorf("encode values file %s: %w", path, err)
	}

	skipped, err := fsutil.TryWriteFile(data, path, force)
	if err != nil {
		return false, fmt.Errorf("write values file: %w", err)
	}

	return skipped, nil
}
