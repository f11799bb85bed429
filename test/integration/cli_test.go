package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/finplan/internal/calculation"
	"github.com/rpgo/finplan/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputGeneration(t *testing.T) {
	cfg := loadExample(t)

	engine := calculation.NewCalculationEngine()
	report, err := engine.RunScenarios(context.Background(), cfg)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, format := range output.AvailableFormatterNames() {
		t.Run(format, func(t *testing.T) {
			dest := filepath.Join(dir, "report."+output.FormatExtension(format))
			path, err := output.GenerateReport(report, format, "en-US", dest)
			require.NoError(t, err)
			assert.Equal(t, dest, path)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}
}

func TestOutputGeneration_ConsoleMentionsEveryScenario(t *testing.T) {
	cfg := loadExample(t)
	report, err := calculation.NewCalculationEngine().RunScenarios(context.Background(), cfg)
	require.NoError(t, err)

	out, err := output.RenderString(report, "console", "en-US")
	require.NoError(t, err)
	for _, sc := range cfg.Scenarios {
		assert.Contains(t, out, sc.Name)
	}
	assert.Contains(t, out, "SCENARIO COMPARISON")
	assert.True(t, strings.Contains(out, "Recommended: "))
}
