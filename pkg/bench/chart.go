package bench

import (
	"fmt"
	"os"
	"time"

	"github.com/wcharczuk/go-chart/v2"
)

// RenderPNG plots each Result's four stage latencies, in microseconds,
// as grouped continuous series and writes the chart to path.
func RenderPNG(results []Result, path string) error {
	if len(results) == 0 {
		return fmt.Errorf("bench: no results to render")
	}

	names := make([]float64, len(results))
	setup := make([]float64, len(results))
	commit := make([]float64, len(results))
	prove := make([]float64, len(results))
	verify := make([]float64, len(results))
	ticks := make([]chart.Tick, len(results))

	for i, r := range results {
		names[i] = float64(i)
		setup[i] = micros(r.Setup)
		commit[i] = micros(r.Commit)
		prove[i] = micros(r.Prove)
		verify[i] = micros(r.Verify)
		ticks[i] = chart.Tick{Value: float64(i), Label: r.Name}
	}

	graph := chart.Chart{
		Title: "gs proof system stage latency",
		XAxis: chart.XAxis{
			Name:  "scenario",
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "microseconds",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "setup", XValues: names, YValues: setup},
			chart.ContinuousSeries{Name: "commit", XValues: names, YValues: commit},
			chart.ContinuousSeries{Name: "prove", XValues: names, YValues: prove},
			chart.ContinuousSeries{Name: "verify", XValues: names, YValues: verify},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bench: create %s: %w", path, err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("bench: render chart: %w", err)
	}
	return nil
}

func micros(d time.Duration) float64 {
	return float64(d.Microseconds())
}
