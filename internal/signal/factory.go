package signal

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"

	"gamrycli/internal/dta"
	parseerrors "gamrycli/internal/errors"
	"gamrycli/pkg/contracts/domain"
)

// ErrSkipped reports that a file's intrinsic signal type does not match the
// requested type filter. It is a skip sentinel, not a failure; batch loaders
// drop the file and continue.
var ErrSkipped = errors.New("signal type does not match filter")

// Options configures signal construction.
type Options struct {
	// TypeFilter, when set, restricts construction to files of that
	// technique; other files yield ErrSkipped.
	TypeFilter domain.SignalType
	// SkipNotes disables notes parsing; params come back empty.
	SkipNotes bool
	// Area is the default electrode area in cm2; zero means DefaultArea.
	// A well-formed "area" notes key overrides it.
	Area float64
	// ReferenceCapacitance is the areal capacitance the corner Factor is
	// expressed against; zero means DefaultReferenceCapacitance.
	ReferenceCapacitance float64
	// Logger receives parse diagnostics; nil means slog.Default().
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// FromFile reads and parses one export file into its signal variant.
// The file's own TAG marker decides the variant; a caller-supplied filter
// that disagrees yields ErrSkipped.
func FromFile(path string, opts Options) (Signal, error) {
	lines, err := dta.ReadLines(path)
	if err != nil {
		return nil, err
	}
	return FromLines(path, lines, opts)
}

// FromLines is FromFile over already-read raw lines; file is used for the
// label fallback and error context.
func FromLines(file string, lines []string, opts Options) (Signal, error) {
	typ, ok := dta.DetectType(lines)
	if !ok {
		return nil, parseerrors.UnsupportedType(file)
	}
	if opts.TypeFilter != "" && typ != opts.TypeFilter {
		return nil, ErrSkipped
	}

	sections, err := dta.Extract(file, lines, typ)
	if err != nil {
		return nil, err
	}

	params := domain.NewParams()
	if !opts.SkipNotes {
		params = dta.ParseNotes(sections.Notes)
	}

	b := base{
		id:     uuid.NewString(),
		typ:    typ,
		label:  signalLabel(file, params),
		params: params,
		table:  &sections.Table,
		area:   electrodeArea(params, opts.Area),
	}

	opts.logger().Debug("parsed signal file",
		slog.String("file", file),
		slog.String("type", string(typ)),
		slog.String("label", b.label),
		slog.Int("rows", b.table.Rows()),
		slog.Int("params", params.Len()))

	switch typ {
	case domain.SignalTypeEISPOT:
		s := &EISPOT{base: b, refCap: opts.ReferenceCapacitance}
		if s.refCap <= 0 {
			s.refCap = DefaultReferenceCapacitance
		}
		s.rs = floats.Min(s.table.Column("|Z|"))
		s.recompute()
		return s, nil
	case domain.SignalTypeEISMON:
		return &EISMON{base: b}, nil
	case domain.SignalTypeCV:
		scaleCurrentToMicroamps(b.table)
		return &CV{base: b}, nil
	case domain.SignalTypeCPC:
		scaleCurrentToMicroamps(b.table)
		return &CPC{base: b}, nil
	default:
		return nil, parseerrors.UnsupportedType(file)
	}
}

// signalLabel resolves the display label: the reserved notes key when
// present, else the filename base without its extension.
func signalLabel(file string, params *domain.Params) string {
	if v, ok := params.Get(dta.LabelKey); ok {
		if v.IsText && v.Text != "" {
			return v.Text
		}
		if !v.IsText {
			return strconv.FormatFloat(v.Number, 'g', -1, 64)
		}
	}
	name := filepath.Base(file)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// electrodeArea resolves the area in cm2: a numeric "area" notes key wins,
// then the caller default, then DefaultArea.
func electrodeArea(params *domain.Params, fallback float64) float64 {
	if v, ok := params.Get("area"); ok && !v.IsText && v.Number > 0 {
		return v.Number
	}
	if fallback > 0 {
		return fallback
	}
	return DefaultArea
}

// scaleCurrentToMicroamps converts the I column from amps to microamps, the
// unit voltammetry data is conventionally reported in.
func scaleCurrentToMicroamps(t *domain.Table) {
	for i := range t.Columns {
		if t.Columns[i].Name == "I" {
			floats.Scale(1e6, t.Columns[i].Values)
			t.Columns[i].Unit = "µA"
		}
	}
}
