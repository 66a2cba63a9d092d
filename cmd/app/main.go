package main

import (
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/0x0FACED/go-sweepline/pkg/logger"
	"github.com/0x0FACED/go-sweepline/pkg/voronoi"
	"github.com/0x0FACED/go-sweepline/static"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Random sites across the canvas. Coordinates are snapped to integers, so
// collisions are possible; duplicates are filtered before the engine sees
// them.
func generateRandSites(n int, width, height int) []voronoi.Point {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	seen := make(map[voronoi.Point]struct{}, n)
	sites := make([]voronoi.Point, 0, n)
	for len(sites) < n {
		p := voronoi.Point{
			X: float64(rng.Intn(width)),
			Y: float64(rng.Intn(height)),
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		sites = append(sites, p)
	}
	return sites
}

func generateFixSites(n int, width, height int) []voronoi.Point {
	sites := make([]voronoi.Point, 0, n)

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := float64(width) / float64(cols)
	yStep := float64(height) / float64(rows)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if len(sites) < n {
				x := xStep/2 + float64(j)*xStep
				y := yStep/2 + float64(i)*yStep
				sites = append(sites, voronoi.Point{X: x, Y: y})
			} else {
				break
			}
		}
	}

	return sites
}

func prepareScatter(scatter *charts.Scatter) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "Voronoi diagram (Fortune sweep)",
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Width",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Height",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// clamp keeps the near-vertical envelope extensions drawable.
func clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

// Map the engine output onto an echarts scatter with one overlapped line
// per edge.
func diagramToEcharts(sites []voronoi.Point, edges []*voronoi.Edge, height float64) *charts.Scatter {
	scatter := charts.NewScatter()

	points := make([]opts.ScatterData, 0)
	for _, site := range sites {
		points = append(points, opts.ScatterData{
			Value: []float64{site.X, site.Y},
		})
	}

	prepareScatter(scatter)

	scatter.AddSeries("Sites", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	for _, edge := range edges {
		a, b := edge.FirstVertex, edge.LastVertex
		if a == nil || b == nil {
			continue
		}

		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
			charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
		)

		line.AddSeries("Edges", []opts.LineData{
			{Value: []float64{a.X, clamp(a.Y, -height, 2*height)}},
			{Value: []float64{b.X, clamp(b.Y, -height, 2*height)}},
		}).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{
				Width: 2,
			}),
		)

		scatter.Overlap(line)
	}

	return scatter
}

func diagramHandler(w http.ResponseWriter, r *http.Request) {
	width := 1000
	height := 1000
	numSites := 12
	var isRandom bool

	if r.Method == http.MethodPost {
		r.ParseForm()
		width, _ = strconv.Atoi(r.FormValue("width"))
		height, _ = strconv.Atoi(r.FormValue("height"))
		numSites, _ = strconv.Atoi(r.FormValue("sites"))
		isRandom = r.FormValue("random") == "true"
	}

	var sites []voronoi.Point
	if isRandom {
		sites = generateRandSites(numSites, width, height)
	} else {
		sites = generateFixSites(numSites, width, height)
	}

	log := logger.New()
	defer log.ClearLogs()

	v, err := voronoi.New(sites,
		voronoi.WithEnvelope(float64(width)+200),
		voronoi.WithTracer(voronoi.NewZapTracer(log.Zap())),
		voronoi.WithDiagnostics(voronoi.NewZapSink(log.Zap())),
	)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	v.Compute()
	log.UpdateLogs()

	scatter := diagramToEcharts(sites, v.Edges(), float64(height))

	fmt.Fprintln(w, static.Part1)

	if err := scatter.Render(w); err != nil {
		fmt.Println("diagram render error:", err)
	}

	fmt.Fprintln(w, static.Part2)

	for _, entry := range log.Logs {
		fmt.Fprintln(w, entry)
	}

	fmt.Fprintln(w, static.Part3)
}

func main() {
	http.HandleFunc("/", diagramHandler)
	fmt.Println("listening on http://localhost:8080")
	if err := http.ListenAndServe(":8080", nil); err != nil {
		fmt.Println("ListenAndServe:", err)
	}
}
