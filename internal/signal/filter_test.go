package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamrycli/pkg/contracts/domain"
)

func testSignal(typ domain.SignalType, label string, params map[string]domain.ParamValue) Signal {
	p := domain.NewParams()
	for k, v := range params {
		p.Set(k, v)
	}
	b := base{id: label, typ: typ, label: label, params: p, table: &domain.Table{}, area: 1}
	switch typ {
	case domain.SignalTypeEISPOT:
		return &EISPOT{base: b, refCap: DefaultReferenceCapacitance}
	case domain.SignalTypeCV:
		return &CV{base: b}
	default:
		return &EISMON{base: b}
	}
}

func TestFilter(t *testing.T) {
	signals := []Signal{
		testSignal(domain.SignalTypeCV, "S1-0.2mm", map[string]domain.ParamValue{
			"plating voltage": domain.NumberValue(0.5, "V"),
		}),
		testSignal(domain.SignalTypeCV, "S1-0.5mm", map[string]domain.ParamValue{
			"plating voltage": domain.NumberValue(0.7, "V"),
		}),
		testSignal(domain.SignalTypeCV, "S2-0.5mm", map[string]domain.ParamValue{
			"plating voltage": domain.NumberValue(0.9, "V"),
		}),
		testSignal(domain.SignalTypeEISPOT, "S1-0.2mm", map[string]domain.ParamValue{
			"plating voltage": domain.NumberValue(0.5, "V"),
		}),
		testSignal(domain.SignalTypeEISPOT, "S2-1.0mm", nil),
	}

	t.Run("no constraints returns everything", func(t *testing.T) {
		assert.Len(t, Filter(signals, FilterOptions{}), 5)
	})

	t.Run("type only", func(t *testing.T) {
		assert.Len(t, Filter(signals, FilterOptions{Type: domain.SignalTypeCV}), 3)
		assert.Len(t, Filter(signals, FilterOptions{Type: domain.SignalTypeEISPOT}), 2)
	})

	t.Run("label substring", func(t *testing.T) {
		assert.Len(t, Filter(signals, FilterOptions{Label: "S1"}), 3)
		assert.Len(t, Filter(signals, FilterOptions{Label: "0.5mm"}), 2)
	})

	t.Run("type plus param constraint matches exactly one", func(t *testing.T) {
		got := Filter(signals, FilterOptions{
			Type: domain.SignalTypeCV,
			Params: map[string]domain.ParamValue{
				"plating voltage": domain.NumberValue(0.5, "V"),
			},
		})
		require.Len(t, got, 1)
		assert.Equal(t, "S1-0.2mm", got[0].Label())
	})

	t.Run("all params must match", func(t *testing.T) {
		got := Filter(signals, FilterOptions{
			Params: map[string]domain.ParamValue{
				"plating voltage": domain.NumberValue(0.5, "V"),
				"missing key":     domain.TextValue("x"),
			},
		})
		assert.Empty(t, got)
	})

	t.Run("param keys are case-insensitive", func(t *testing.T) {
		got := Filter(signals, FilterOptions{
			Params: map[string]domain.ParamValue{
				"Plating Voltage": domain.NumberValue(0.9, "V"),
			},
		})
		require.Len(t, got, 1)
		assert.Equal(t, "S2-0.5mm", got[0].Label())
	})

	t.Run("input order preserved", func(t *testing.T) {
		got := Filter(signals, FilterOptions{Label: "S1"})
		require.Len(t, got, 3)
		assert.Equal(t, "S1-0.2mm", got[0].Label())
		assert.Equal(t, "S1-0.5mm", got[1].Label())
		assert.Equal(t, "S1-0.2mm", got[2].Label())
	})
}
