package dta

import (
	"regexp"
	"strconv"
	"strings"

	"gamrycli/internal/errors"
	"gamrycli/pkg/contracts/domain"
)

// LeadingMetadataLines is the fixed number of instrument metadata lines at
// the top of every export file, before the notes region.
const LeadingMetadataLines = 6

// Sections holds the located regions of one export file.
type Sections struct {
	// Notes is the candidate notes region: everything between the leading
	// metadata block and the first data marker.
	Notes []string
	// Table is the extracted numeric data.
	Table domain.Table
}

// dropColumns are bookkeeping columns discarded during extraction.
var dropColumns = map[string]bool{
	"Pt":      true,
	"IERange": true,
	"Over":    true,
}

// renameColumns maps the instrument's header names to their conventional
// display names.
var renameColumns = map[string]string{
	"Zphz":  "Phase",
	"Zimag": "Im(Z)",
	"Zreal": "Re(Z)",
	"Zmod":  "|Z|",
	"T":     "Time",
	"Vf":    "E",
	"Im":    "I",
}

// requiredColumns lists the post-rename columns a technique's table must
// provide.
var requiredColumns = map[domain.SignalType][]string{
	domain.SignalTypeEISPOT: {"Freq", "Re(Z)", "Im(Z)", "|Z|", "Phase"},
	domain.SignalTypeEISMON: {"Freq", "Re(Z)", "Im(Z)", "|Z|", "Phase"},
	domain.SignalTypeCV:     {"E", "I"},
	domain.SignalTypeCPC:    {"Time", "E", "I"},
}

var cvMarkerRe = regexp.MustCompile(`^CURVE\d+$`)

// isMarker reports whether a line introduces a data block for the technique.
func isMarker(typ domain.SignalType, line string) bool {
	field := line
	if i := strings.IndexByte(line, '\t'); i >= 0 {
		field = line[:i]
	}
	switch typ {
	case domain.SignalTypeEISPOT, domain.SignalTypeEISMON:
		return field == "ZCURVE"
	case domain.SignalTypeCV:
		return cvMarkerRe.MatchString(field)
	case domain.SignalTypeCPC:
		return field == "CURVE"
	default:
		return false
	}
}

// isAnyMarker reports whether a line introduces a data block for any
// technique; it terminates the data rows of the previous block.
func isAnyMarker(line string) bool {
	for _, typ := range domain.KnownSignalTypes {
		if isMarker(typ, line) {
			return true
		}
	}
	return false
}

// Extract locates the notes region and the data block(s) for the given
// signal type and extracts the numeric table. A missing marker, missing or
// unexpected header, or malformed data cell is fatal for the file.
func Extract(file string, lines []string, typ domain.SignalType) (*Sections, error) {
	var markers []int
	for i, line := range lines {
		if isMarker(typ, line) {
			markers = append(markers, i)
		}
	}
	if len(markers) == 0 {
		return nil, errors.Formatf(file, 0, "data marker for type %s not found", typ)
	}
	if typ != domain.SignalTypeCV {
		markers = markers[:1]
	}

	notesStart := LeadingMetadataLines
	if notesStart > markers[0] {
		notesStart = markers[0]
	}
	sections := &Sections{Notes: lines[notesStart:markers[0]]}

	required := requiredColumns[typ]
	var first *block
	for _, markerIdx := range markers {
		b, err := extractBlock(file, lines, markerIdx, required)
		if err != nil {
			return nil, err
		}
		if first == nil {
			first = b
			continue
		}
		if !equalNames(first.names, b.names) {
			return nil, errors.Formatf(file, markerIdx+2, "curve block header %v does not match first block %v", b.names, first.names)
		}
		for j := range first.cols {
			first.cols[j] = append(first.cols[j], b.cols[j]...)
		}
		first.curveEnds = append(first.curveEnds, first.curveEnds[len(first.curveEnds)-1]+len(b.cols[0]))
	}

	for j, name := range first.names {
		sections.Table.Columns = append(sections.Table.Columns, domain.Column{
			Name:   name,
			Unit:   first.units[j],
			Values: first.cols[j],
		})
	}

	// CV concatenates one block per voltammetry cycle; tag rows with their
	// 1-based cycle index.
	if typ == domain.SignalTypeCV {
		curve := make([]float64, 0, sections.Table.Rows())
		prev := 0
		for i, end := range first.curveEnds {
			for n := prev; n < end; n++ {
				curve = append(curve, float64(i+1))
			}
			prev = end
		}
		sections.Table.Columns = append(sections.Table.Columns, domain.Column{Name: "Curve", Values: curve})
	}

	return sections, nil
}

// block is one extracted data block.
type block struct {
	names     []string
	units     []string
	cols      [][]float64
	curveEnds []int
}

func extractBlock(file string, lines []string, markerIdx int, required []string) (*block, error) {
	headerIdx := markerIdx + 1
	if headerIdx >= len(lines) || strings.TrimSpace(lines[headerIdx]) == "" {
		return nil, errors.Formatf(file, markerIdx+1, "missing column header after data marker")
	}

	rawHeader := strings.Split(lines[headerIdx], "\t")
	var keep []int
	var names []string
	for i, raw := range rawHeader {
		name := strings.TrimSpace(raw)
		if name == "" || dropColumns[name] {
			continue
		}
		if renamed, ok := renameColumns[name]; ok {
			name = renamed
		}
		keep = append(keep, i)
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, errors.Formatf(file, headerIdx+1, "column header row is empty")
	}
	for _, want := range required {
		if !contains(names, want) {
			return nil, errors.Formatf(file, headerIdx+1, "header %v is missing required column %s", names, want)
		}
	}

	b := &block{
		names: names,
		units: make([]string, len(names)),
		cols:  make([][]float64, len(names)),
	}

	dataStart := headerIdx + 1
	if dataStart < len(lines) && isUnitsRow(lines[dataStart], keep) {
		unitFields := strings.Split(lines[dataStart], "\t")
		for j, idx := range keep {
			if idx < len(unitFields) {
				b.units[j] = strings.TrimSpace(unitFields[idx])
			}
		}
		dataStart++
	}

	for i := dataStart; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" || isAnyMarker(line) {
			break
		}
		fields := strings.Split(line, "\t")
		for j, idx := range keep {
			if idx >= len(fields) {
				return nil, errors.Formatf(file, i+1, "data row has %d cells, column %s expects index %d", len(fields), b.names[j], idx+1)
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(fields[idx]), 64)
			if err != nil {
				return nil, errors.Formatf(file, i+1, "invalid numeric cell %q in column %s", strings.TrimSpace(fields[idx]), b.names[j])
			}
			b.cols[j] = append(b.cols[j], v)
		}
	}
	if len(b.cols[0]) == 0 {
		return nil, errors.Formatf(file, headerIdx+1, "data block contains no rows")
	}
	b.curveEnds = []int{len(b.cols[0])}
	return b, nil
}

// isUnitsRow reports whether the row under the header is the unit subheader
// rather than data: at least one kept cell is non-numeric.
func isUnitsRow(line string, keep []int) bool {
	fields := strings.Split(line, "\t")
	for _, idx := range keep {
		if idx >= len(fields) {
			return true
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(fields[idx]), 64); err != nil {
			return true
		}
	}
	return false
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
