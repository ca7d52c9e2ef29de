package scenarios

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/timetable/app"
	"github.com/kilianp07/timetable/config"
	"github.com/kilianp07/timetable/core/model"
)

// RunScenario feeds sc.Input through the full pipeline and checks the
// printed timetable and run statistics against sc.Expected.
func RunScenario(t *testing.T, sc Scenario) {
	t.Helper()
	cfg := config.Default()
	cfg.Log.Level = "error"
	if sc.Prefer != "" {
		cfg.Filter.Prefer = sc.Prefer
	}
	if sc.OnMalformed != "" {
		cfg.Ingest.OnMalformed = sc.OnMalformed
	}
	svc, err := app.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })

	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(sc.Input), 0o644))

	var buf bytes.Buffer
	out, err := svc.Check(context.Background(), path, &buf)
	if sc.Expected.Error != "" {
		require.Error(t, err)
		assert.Contains(t, err.Error(), sc.Expected.Error)
		return
	}
	require.NoError(t, err)
	assert.Equal(t, sc.Expected.Output, buf.String())
	assert.Equal(t, sc.Expected.Dropped, out.Ingest.InvalidDuration)
	for name, n := range sc.Expected.Removed {
		role, err := model.ParseRole(name)
		require.NoError(t, err)
		assert.Equal(t, n, out.Filter.Removed(role), "removed %s", name)
	}
}
