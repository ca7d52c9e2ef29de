package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/kilianp07/timetable/core/timetable"
)

// WriteText writes the timetable to w, one "<provider> <HH:MM> <HH:MM>" line
// per service. Primary services come first; a blank line separates the two
// groups when both are non-empty.
func WriteText(w io.Writer, tt *timetable.Timetable) error {
	bw := bufio.NewWriter(w)
	groups := []*timetable.ServiceSet{tt.Primary, tt.Secondary}
	written := false
	for _, g := range groups {
		if g.Len() == 0 {
			continue
		}
		if written {
			if _, err := bw.WriteString("\n"); err != nil {
				return err
			}
		}
		for svc := range g.All() {
			if _, err := bw.WriteString(svc.String() + "\n"); err != nil {
				return err
			}
		}
		written = true
	}
	return bw.Flush()
}

// OutputPath names the output file inside dir after the generation time.
func OutputPath(dir string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("timetable_%d_%d_%d.txt", now.Hour(), now.Minute(), now.Second()))
}

// WriteFile creates path and writes the timetable into it.
func WriteFile(path string, tt *timetable.Timetable) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return WriteText(f, tt)
}
