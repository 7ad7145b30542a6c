package cmd

import (
	"io"
	"strings"

	"github.com/devantler-tech/valdedup/pkg/ui/notify"
	"github.com/devantler-tech/valdedup/pkg/yamlvalue"
)

// notifyObserver streams diff diagnostics to the command's output
// writer when --verbose is set.
type notifyObserver struct {
	writer io.Writer
}

func (o notifyObserver) KeyVisited(key string) {
	notify.Activityf(o.writer, "processing key %q", key)
}

func (o notifyObserver) QuorumResolved(count, total int) {
	notify.Activityf(o.writer, "quorum threshold: %d of %d inputs", count, total)
}

func (o notifyObserver) KindMismatch(kinds []yamlvalue.Kind) {
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = kind.String()
	}

	notify.Warningf(o.writer, "value kinds differ: %s", strings.Join(names, ", "))
}
