package simlog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for directory-level failures. Both abort the affected
// comparison job; per-file problems never surface as errors (see Collect).
var (
	ErrDirectoryNotFound = errors.New("results directory not found")
	ErrNoTracesFound     = errors.New("no trace files found")
)

// DefaultGlob is the wildcard fallback used when none of the expected
// filenames exist in a directory.
const DefaultGlob = "trace*.txt"

// traceNumber extracts the trace index from a result filename.
var traceNumber = regexp.MustCompile(`trace(\d+)\.txt$`)

// LocatedFile is a result file tagged with its parsed trace number.
type LocatedFile struct {
	Trace int
	Path  string
}

// ExpectedNames returns the conventional result filenames trace1.txt
// through trace<n>.txt.
func ExpectedNames(n int) []string {
	names := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		names = append(names, fmt.Sprintf("trace%d.txt", i))
	}
	return names
}

// Locate finds trace result files in dir. The expected names are tried
// first; if none exist the directory is scanned with the glob pattern.
// Files whose names carry no parseable trace number are skipped with a
// warning. A missing directory is a configuration error; a directory with
// no matching files at all yields ErrNoTracesFound.
func Locate(dir string, names []string, glob string) ([]LocatedFile, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
	}

	var located []LocatedFile
	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		trace, ok := parseTraceNumber(name)
		if !ok {
			logrus.Warnf("skipping %s: no trace number in filename", path)
			continue
		}
		located = append(located, LocatedFile{Trace: trace, Path: path})
	}

	if len(located) == 0 {
		matches, err := filepath.Glob(filepath.Join(dir, glob))
		if err != nil {
			return nil, fmt.Errorf("bad glob pattern %q: %w", glob, err)
		}
		for _, path := range matches {
			trace, ok := parseTraceNumber(filepath.Base(path))
			if !ok {
				logrus.Warnf("skipping %s: no trace number in filename", path)
				continue
			}
			located = append(located, LocatedFile{Trace: trace, Path: path})
		}
	}

	if len(located) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTracesFound, dir)
	}

	sort.Slice(located, func(i, j int) bool { return located[i].Trace < located[j].Trace })
	return located, nil
}

func parseTraceNumber(name string) (int, bool) {
	m := traceNumber.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
