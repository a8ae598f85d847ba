package plots

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/sartorproj/gowages/dataset"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func assertPNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected %s to be written: %v", path, err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Errorf("%s is not a PNG file", path)
	}
}

func sampleWages() (logs, wages []float64) {
	logs = make([]float64, 300)
	wages = make([]float64, len(logs))
	for i := range logs {
		logs[i] = 5.5 + 0.6*math.Sin(float64(i)*0.7) + 0.002*float64(i%50)
		wages[i] = math.Exp(logs[i])
	}
	return logs, wages
}

func TestWageDensity(t *testing.T) {
	logs, wages := sampleWages()
	path := filepath.Join(t.TempDir(), DensityFile)

	if err := WageDensity(logs, wages, path); err != nil {
		t.Fatalf("WageDensity failed: %v", err)
	}
	assertPNG(t, path)
}

func TestWageDensityBadPath(t *testing.T) {
	logs, wages := sampleWages()
	path := filepath.Join(t.TempDir(), "missing", DensityFile)

	if err := WageDensity(logs, wages, path); err == nil {
		t.Error("Expected error when the output directory does not exist")
	}
}

func TestEducationMeansRegression(t *testing.T) {
	dir := t.TempDir()
	means := &dataset.GroupMeans{
		Levels: []int{8, 10, 12, 16},
		Means:  []float64{1, 2, 3, 4},
	}

	fit, path, err := EducationMeans(means, true, dir)
	if err != nil {
		t.Fatalf("EducationMeans failed: %v", err)
	}
	if filepath.Base(path) != MeansRegressionFile {
		t.Errorf("Expected %s, got %s", MeansRegressionFile, filepath.Base(path))
	}
	assertPNG(t, path)

	if fit == nil {
		t.Fatal("Expected a fitted line")
	}
	if math.Abs(fit.Slope-1) > 1e-10 || math.Abs(fit.Intercept-1) > 1e-10 {
		t.Errorf("Expected slope 1 and intercept 1, got %+v", *fit)
	}
}

func TestEducationMeansPlain(t *testing.T) {
	dir := t.TempDir()
	means := &dataset.GroupMeans{
		Levels: []int{12, 16},
		Means:  []float64{5.6, 6.2},
	}

	fit, path, err := EducationMeans(means, false, dir)
	if err != nil {
		t.Fatalf("EducationMeans failed: %v", err)
	}
	if fit != nil {
		t.Error("Expected no fitted line without regression")
	}
	if filepath.Base(path) != MeansFile {
		t.Errorf("Expected %s, got %s", MeansFile, filepath.Base(path))
	}
	assertPNG(t, path)
}

func TestEducationMeansSinglePoint(t *testing.T) {
	means := &dataset.GroupMeans{Levels: []int{12}, Means: []float64{5.6}}

	if _, _, err := EducationMeans(means, true, t.TempDir()); err == nil {
		t.Error("Expected error fitting a single mean")
	}
}

func TestRoundLabel(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0.123456, "0.123"},
		{0.1, "0.1"},
		{-0.0716, "-0.072"},
		{2, "2"},
	}

	for _, tt := range tests {
		if got := roundLabel(tt.value, 3); got != tt.expected {
			t.Errorf("roundLabel(%v): expected %s, got %s", tt.value, tt.expected, got)
		}
	}
}

func TestLevelTicks(t *testing.T) {
	ticks := levelTicks([]int{8, 12, 16}).Ticks(0, 2)
	if len(ticks) != 3 {
		t.Fatalf("Expected 3 ticks, got %d", len(ticks))
	}
	if ticks[1].Value != 1 || ticks[1].Label != "12" {
		t.Errorf("Expected tick at 1 labelled 12, got %+v", ticks[1])
	}
}
