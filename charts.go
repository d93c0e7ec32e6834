package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	paraChartFile     = "paraprofessional_overview.html"
	teacherChartFile  = "teacher_overview.html"
	combinedChartFile = "combined_comparison.html"
)

// renderCharts writes the three standalone chart pages into the
// output directory and returns their file names in render order.
func renderCharts(report Report, outputDir string) ([]string, error) {
	para := report.Para.Metrics
	teacher := report.Teacher.Metrics

	paraBar := overviewBar(
		"Substitute Paraprofessional Renewal Overview",
		[]string{"Total Eligible", "Completed", "Outstanding", "RA Not Complete", "Days Only", "ATAS Only", "Autism Only"},
		[]int{
			para["total_eligible"],
			para["total_complete"],
			para["total_outstanding"],
			para["ra_not_complete"],
			para["days_worked_only"],
			para["atas_only"],
			para["autism_workshop_only"],
		},
	)
	if err := renderChart(paraBar, filepath.Join(outputDir, paraChartFile)); err != nil {
		return nil, err
	}

	teacherBar := overviewBar(
		"Substitute Teacher Renewal Overview",
		[]string{"Total Eligible", "PRC/PRU Eligible", "PRC/PRU Complete", "PRC/PRU Outstanding", "On Leave", "Retirees"},
		[]int{
			teacher["total_eligible"],
			teacher["total_prc_pru_eligible"],
			teacher["total_prc_pru_complete"],
			teacher["total_prc_pru_outstanding"],
			teacher["total_teachers_on_leave"],
			teacher["total_retirees"],
		},
	)
	if err := renderChart(teacherBar, filepath.Join(outputDir, teacherChartFile)); err != nil {
		return nil, err
	}

	combined := comparisonPies(para, teacher)
	if err := renderChart(combined, filepath.Join(outputDir, combinedChartFile)); err != nil {
		return nil, err
	}

	return []string{paraChartFile, teacherChartFile, combinedChartFile}, nil
}

type renderable interface {
	Render(w io.Writer) error
}

func renderChart(chart renderable, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return chart.Render(file)
}

func overviewBar(title string, labels []string, values []int) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "500px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	data := make([]opts.BarData, 0, len(values))
	for _, value := range values {
		data = append(data, opts.BarData{Value: value})
	}
	bar.SetXAxis(labels).AddSeries("Substitutes", data)
	return bar
}

// comparisonPies mirrors the side-by-side completion breakdown of the
// two cohorts on a single page.
func comparisonPies(para, teacher Metrics) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Renewal Status Comparison: Paraprofessionals vs Teachers"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "500px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	pie.AddSeries("Paraprofessionals", []opts.PieData{
		{Name: "Completed", Value: para["total_complete"]},
		{Name: "Outstanding", Value: para["total_outstanding"]},
	}, charts.WithPieChartOpts(opts.PieChart{
		Center: []string{"25%", "55%"},
		Radius: []string{"25%", "50%"},
	}))
	pie.AddSeries("Teachers", []opts.PieData{
		{Name: "PRC/PRU Complete", Value: teacher["total_prc_pru_complete"]},
		{Name: "PRC/PRU Outstanding", Value: teacher["total_prc_pru_outstanding"]},
		{Name: "On Leave", Value: teacher["total_teachers_on_leave"]},
		{Name: "Retirees", Value: teacher["total_retirees"]},
	}, charts.WithPieChartOpts(opts.PieChart{
		Center: []string{"75%", "55%"},
		Radius: []string{"25%", "50%"},
	}))
	return pie
}
