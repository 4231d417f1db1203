// Package version describes this binary: the build stamped in with -ldflags
// and the snapshot format and generator it can replay.
package version

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Set at link time, e.g. -X moria-kernel/internal/version.Date=2026-02-01.
var (
	Date   string // YYYY-MM-DD (UTC)
	Commit string
	Branch string
)

const (
	// SnapshotFormat is the snapshot encoding written and accepted.
	SnapshotFormat uint32 = 1

	// Generator names the random number algorithm. A snapshot replays the
	// same rolls only under the same generator.
	Generator = "park-miller-16807"
)

// epoch is day zero of the build numbering.
var epoch = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

// Build is what /version reports and what the startup log carries.
type Build struct {
	Number         int    `json:"build"`
	Date           string `json:"date,omitempty"`
	Commit         string `json:"commit"`
	Branch         string `json:"branch"`
	SnapshotFormat uint32 `json:"snapshot_format"`
	Generator      string `json:"generator"`
	Error          string `json:"error,omitempty"`
}

// Number counts the days from the epoch to Date.
func Number() (int, error) {
	if Date == "" {
		return 0, fmt.Errorf("build date not stamped")
	}

	t, err := time.ParseInLocation("2006-01-02", Date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid build date %q: %w", Date, err)
	}
	if t.Before(epoch) {
		return 0, fmt.Errorf("build date %s is before %s", Date, epoch.Format("2006-01-02"))
	}

	// Both ends are UTC midnights, so whole hours divide evenly.
	return int(t.Sub(epoch).Hours() / 24), nil
}

// Current returns the description of the running binary. An unstamped or
// badly stamped build still reports its formats, with Error set.
func Current() Build {
	b := Build{
		Date:           Date,
		Commit:         orUnknown(Commit),
		Branch:         orUnknown(Branch),
		SnapshotFormat: SnapshotFormat,
		Generator:      Generator,
	}
	n, err := Number()
	if err != nil {
		b.Error = err.Error()
		return b
	}
	b.Number = n
	return b
}

// Fields returns b as log fields.
func (b Build) Fields() logrus.Fields {
	return logrus.Fields{
		"build":    b.Number,
		"commit":   b.Commit,
		"branch":   b.Branch,
		"snapshot": b.SnapshotFormat,
	}
}

func (b Build) String() string {
	if b.Error != "" {
		return fmt.Sprintf("cavern dev build, snapshot v%d (%s)", b.SnapshotFormat, b.Error)
	}
	return fmt.Sprintf("cavern build %d (%s) commit[%s] branch[%s] snapshot v%d %s",
		b.Number, b.Date, b.Commit, b.Branch, b.SnapshotFormat, b.Generator)
}

func orUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
