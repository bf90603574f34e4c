package tuning

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"

	"github.com/spaced/blackhole2d/common"
)

// LayoutYs computes beam row offsets in metres, centred on the hole, for the
// trail missions. When the spec names a layout script it is run first; an
// even spread between the margins is the fallback.
func LayoutYs(heightM, marginM float64, rows int, script string) []float64 {
	if script != "" {
		ys, err := scriptLayout(heightM, marginM, rows, script)
		if err != nil {
			log.Printf("tuning: layout script %s: %v", script, err)
		} else if len(ys) > 0 {
			return ys
		}
	}
	return common.Linspace(-heightM/2+marginM, heightM/2-marginM, rows)
}

func scriptLayout(heightM, marginM float64, rows int, script string) ([]float64, error) {
	src, err := LoadScript(script)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	s := tengo.NewScript(src)
	if err := s.Add("height", heightM); err != nil {
		return nil, err
	}
	if err := s.Add("margin", marginM); err != nil {
		return nil, err
	}
	if err := s.Add("rows", rows); err != nil {
		return nil, err
	}

	compiled, err := s.Run()
	if err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}

	raw := compiled.Get("ys").Array()
	ys := make([]float64, 0, len(raw))
	for i, v := range raw {
		switch n := v.(type) {
		case float64:
			ys = append(ys, n)
		case int64:
			ys = append(ys, float64(n))
		default:
			return nil, fmt.Errorf("ys[%d] is %T, want a number", i, v)
		}
	}
	return ys, nil
}
