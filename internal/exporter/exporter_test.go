package exporter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"gamrycli/internal/signal"
)

func eisSignal(t *testing.T, label string, rows [][3]float64) signal.Signal {
	t.Helper()
	lines := []string{
		"EXPLAIN",
		"TAG\tEISPOT",
		"TITLE\tLABEL\tEIS",
		"DATE\tLABEL\t3/1/2024",
		"TIME\tLABEL\t10:00:00",
		"NOTES\t2",
		"Label : " + label,
		"Plating Voltage : 0.5 V",
		"ZCURVE\tTABLE",
		"\tPt\tFreq\tZreal\tZimag\tZmod\tZphz",
		"\t#\tHz\tohm\tohm\tohm\t°",
	}
	for i, r := range rows {
		mod := r[1]*r[1] + r[2]*r[2]
		lines = append(lines, fmt.Sprintf("\t%d\t%g\t%g\t%g\t%g\t0", i, r[0], r[1], r[2], mod))
	}
	s, err := signal.FromLines(label+".DTA", lines, signal.Options{})
	require.NoError(t, err)
	return s
}

func cvSignal(t *testing.T, label string) signal.Signal {
	t.Helper()
	lines := []string{
		"EXPLAIN",
		"TAG\tCV",
		"TITLE\tLABEL\tCV",
		"DATE\tLABEL\t3/1/2024",
		"TIME\tLABEL\t10:00:00",
		"NOTES\t1",
		"Label : " + label,
		"CURVE1\tTABLE",
		"\tPt\tT\tVf\tIm",
		"\t#\ts\tV\tA",
		"\t0\t1\t0.1\t1e-6",
		"\t1\t2\t0.2\t2e-6",
	}
	s, err := signal.FromLines(label+".DTA", lines, signal.Options{})
	require.NoError(t, err)
	return s
}

func TestZViewWriter_Write(t *testing.T) {
	signals := []signal.Signal{
		eisSignal(t, "Sample 1", [][3]float64{
			{100000, 10, -1},
			{1000, 12, -8},
		}),
		cvSignal(t, "CV run"),
		eisSignal(t, "Sample 2", [][3]float64{
			{500, 20, -5},
		}),
	}

	var buf bytes.Buffer
	require.NoError(t, NewZViewWriter(nil).Write(&buf, signals))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// Two blocks: label + count + rows; the CV signal is ignored.
	require.Len(t, lines, 7)
	assert.Equal(t, "Sample 1", lines[0])
	assert.Equal(t, "2", lines[1])
	assert.Equal(t, "100000\t10\t-1", lines[2])
	assert.Equal(t, "1000\t12\t-8", lines[3])
	assert.Equal(t, "Sample 2", lines[4])
	assert.Equal(t, "1", lines[5])
	assert.Equal(t, "500\t20\t-5", lines[6])
}

func TestZViewWriter_WriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "export.z")
	signals := []signal.Signal{eisSignal(t, "S", [][3]float64{{100, 5, -2}})}

	require.NoError(t, NewZViewWriter(nil).WriteFile(path, signals))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "S\n1\n"))
}

func TestCombinedWriter_Build(t *testing.T) {
	signals := []signal.Signal{
		eisSignal(t, "Sample 1", [][3]float64{
			{100000, 10, -1},
			{1000, 12, -8},
		}),
		cvSignal(t, "CV run"),
	}

	headers, records := NewCombinedWriter(nil).Build(signals, []string{"plating voltage"})

	assert.Equal(t, []string{"Label", "Type", "plating voltage",
		"Freq", "Re(Z)", "Im(Z)", "|Z|", "Phase", "Time", "E", "I", "Curve"}, headers)

	// One record per data row across all signals.
	require.Len(t, records, 4)
	assert.Equal(t, "Sample 1", records[0][0])
	assert.Equal(t, "EISPOT", records[0][1])
	assert.Equal(t, "0.5 V", records[0][2])
	assert.Equal(t, "100000", records[0][3])

	// The CV signal lacks impedance columns and the param key.
	cvRow := records[2]
	assert.Equal(t, "CV run", cvRow[0])
	assert.Equal(t, "CV", cvRow[1])
	assert.Equal(t, "", cvRow[2])
	assert.Equal(t, "", cvRow[3]) // Freq blank
	assert.Equal(t, "0.1", cvRow[9])
}

func TestCombinedWriter_WriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combined.csv")
	signals := []signal.Signal{eisSignal(t, "S", [][3]float64{{100, 5, -2}})}

	require.NoError(t, NewCombinedWriter(nil).WriteCSV(path, signals, nil))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	// BOM prefix then header row.
	assert.True(t, bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}))
	assert.Contains(t, string(content), "Label,Type,Freq")
}

func TestCombinedWriter_WriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combined.xlsx")
	signals := []signal.Signal{eisSignal(t, "S", [][3]float64{{100, 5, -2}})}

	require.NoError(t, NewCombinedWriter(nil).WriteXLSX(path, signals, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Combined")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Label", rows[0][0])
	assert.Equal(t, "S", rows[1][0])
}
