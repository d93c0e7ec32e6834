package main

import (
	"html/template"
	"os"
	"path/filepath"
	"strings"
)

const dashboardFile = "renewal_analytics_report.html"

type metricCard struct {
	Label string
	Value string
	Diff  string // signed delta shown under the value; empty hides the badge
	Up    bool
}

type cardSection struct {
	Title    string
	Subtitle string
	Cards    []metricCard
}

type chartFrame struct {
	Title string
	File  string
}

type dashboardView struct {
	Title       string
	Subtitle    string
	GeneratedAt string
	Comparison  bool
	Sections    []cardSection
	Charts      []chartFrame
}

func countCard(result CohortResult, comparison bool, key, label string) metricCard {
	card := metricCard{Label: label, Value: formatCount(result.Metrics[key])}
	if comparison {
		if diff := result.Diffs[key]; diff != "0" {
			card.Diff = diff
			card.Up = strings.HasPrefix(diff, "+")
		}
	}
	return card
}

func rateCard(result CohortResult, comparison bool, label string) metricCard {
	card := metricCard{Label: label, Value: formatPercent(result.CompletionRate)}
	if comparison && result.RateDiff != "0%" {
		card.Diff = result.RateDiff
		card.Up = strings.HasPrefix(result.RateDiff, "+")
	}
	return card
}

func buildDashboardView(report Report, chartFiles []string) dashboardView {
	para := report.Para
	teacher := report.Teacher
	cmp := report.Comparison

	view := dashboardView{
		Title:       "Substitute Renewal Analytics Dashboard",
		Subtitle:    "Substitute Teacher and Paraprofessional Renewal Data",
		GeneratedAt: report.GeneratedAt.Format("January 2, 2006 at 3:04 PM"),
		Comparison:  cmp,
	}

	view.Sections = []cardSection{
		{
			Title:    "Executive Summary",
			Subtitle: "Key Performance Indicators",
			Cards: []metricCard{
				countCard(para, cmp, "total_eligible", "Total SPAs Eligible for Renewal"),
				rateCard(para, cmp, "SPA Completion Rate"),
				countCard(teacher, cmp, "total_prc_pru_eligible", "Total STEs (PRC/PRU) Eligible"),
				rateCard(teacher, cmp, "STE Completion Rate"),
			},
		},
		{
			Title: "Substitute Paraprofessionals (SPA)",
			Cards: []metricCard{
				countCard(para, cmp, "total_eligible", "Total Eligible for Renewal"),
				countCard(para, cmp, "total_complete", "Total Completed Renewal"),
				countCard(para, cmp, "total_outstanding", "Total Outstanding"),
				countCard(para, cmp, "ra_not_complete", "RA Not Complete"),
				countCard(para, cmp, "ra_complete_other_outstanding", "RA Complete, Other Requirements Outstanding"),
				countCard(para, cmp, "days_worked_only", "Days Worked Only"),
				countCard(para, cmp, "atas_only", "ATAS Only"),
				countCard(para, cmp, "autism_workshop_only", "Autism Workshop Only"),
				countCard(para, cmp, "days_and_other_requirements", "Days & Other Requirements"),
				countCard(para, cmp, "total_suspended_2ss", "Total Suspended 2SS"),
				countCard(para, cmp, "total_suspended_2sr", "Total Suspended 2SR"),
			},
		},
		{
			Title: "Substitute Teachers (STE)",
			Cards: []metricCard{
				countCard(teacher, cmp, "total_eligible", "Total Eligible for Renewal"),
				countCard(teacher, cmp, "total_prc_pru_eligible", "Total Certified (PRC) and Uncertified (PRU) Eligible"),
				countCard(teacher, cmp, "total_prc_pru_complete", "Total PRC & PRU Completed Renewal"),
				countCard(teacher, cmp, "total_prc_pru_outstanding", "Total PRC & PRU Outstanding"),
				countCard(teacher, cmp, "prc_pru_ra_not_complete", "PRC & PRU - RA Not Complete"),
				countCard(teacher, cmp, "prc_pru_met_ra_other_outstanding", "PRC & PRU - Met RA, Other Requirements Outstanding"),
				countCard(teacher, cmp, "prc_pru_days_worked_only", "Days Worked Only"),
				countCard(teacher, cmp, "prc_pru_autism_workshop_only", "Autism Workshop Only"),
				countCard(teacher, cmp, "prc_pru_other_requirements_only", "Other Requirements Only"),
				countCard(teacher, cmp, "prc_pru_days_and_other_requirements", "Days & Other Requirements"),
			},
		},
		{
			Title: "Special Categories",
			Cards: []metricCard{
				countCard(teacher, cmp, "total_teachers_on_leave", "Total Teachers On Leave (PRL)"),
				countCard(teacher, cmp, "total_retirees", "Total Retirees (PRR)"),
				countCard(teacher, cmp, "total_prr_complete", "Total PRR Completed Renewal"),
				countCard(teacher, cmp, "total_prr_outstanding", "Total PRR Outstanding"),
				countCard(teacher, cmp, "total_suspended_2ss", "Total Suspended 2SS"),
				countCard(teacher, cmp, "total_suspended_2sr", "Total Suspended 2SR"),
			},
		},
	}

	chartTitles := map[string]string{
		paraChartFile:     "Paraprofessional Overview",
		teacherChartFile:  "Teacher Overview",
		combinedChartFile: "Comparison Analysis",
	}
	for _, file := range chartFiles {
		view.Charts = append(view.Charts, chartFrame{Title: chartTitles[file], File: file})
	}

	return view
}

var dashboardTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html>
<head>
<title>{{.Title}}</title>
<style>
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; background-color: #f5f5f5; }
.header { background: linear-gradient(135deg, #2C5282, #1A365D); color: white; padding: 20px; }
.header h1 { margin: 0; font-size: 2.2em; }
.header h2 { margin: 8px 0; font-size: 1.2em; font-weight: 600; opacity: 0.9; }
.header .date-info { margin: 8px 0 0 0; opacity: 0.8; }
.content { max-width: 1400px; margin: 0 auto; padding: 20px; }
.section { background: white; margin: 20px 0; padding: 25px; border-radius: 10px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
.section h2 { color: #2C5282; border-bottom: 3px solid #2C5282; padding-bottom: 10px; margin-top: 0; }
.section h3 { color: #2C5282; }
.metrics-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(250px, 1fr)); gap: 20px; margin: 20px 0; }
.metric-card { background: #f8f9fa; padding: 20px; border-left: 5px solid #2C5282; border-radius: 5px; }
.metric-value { font-size: 2em; font-weight: bold; color: #2C5282; }
.metric-label { color: #666; margin-top: 5px; font-weight: 500; }
.diff { font-size: 0.45em; font-weight: bold; display: block; }
.diff.up { color: #28a745; }
.diff.down { color: #dc3545; }
.chart-container { margin: 20px 0; text-align: center; }
.footer { background-color: #2C5282; color: white; text-align: center; padding: 30px 20px; margin-top: 40px; }
</style>
</head>
<body>
<div class="header">
<h1>{{.Title}}</h1>
<h2>{{.Subtitle}}</h2>
<p class="date-info">Generated on: {{.GeneratedAt}}{{if .Comparison}} | Changes from previous data shown with &#9650;/&#9660; indicators{{end}}</p>
</div>
<div class="content">
{{range .Sections}}
<div class="section">
<h2>{{.Title}}</h2>
{{if .Subtitle}}<h3>{{.Subtitle}}</h3>{{end}}
<div class="metrics-grid">
{{range .Cards}}
<div class="metric-card">
<div class="metric-value">{{.Value}}{{if .Diff}}<span class="diff {{if .Up}}up{{else}}down{{end}}">{{if .Up}}&#9650;{{else}}&#9660;{{end}} {{.Diff}}</span>{{end}}</div>
<div class="metric-label">{{.Label}}</div>
</div>
{{end}}
</div>
</div>
{{end}}
{{if .Charts}}
<div class="section">
<h2>Visualizations</h2>
{{range .Charts}}
<div class="chart-container">
<h3>{{.Title}}</h3>
<iframe src="{{.File}}" width="1200" height="520" frameborder="0"></iframe>
</div>
{{end}}
</div>
{{end}}
</div>
<div class="footer">
<p>Substitute Renewal Analytics | HR School Support Analysis</p>
</div>
</body>
</html>
`))

func writeDashboard(report Report, chartFiles []string, outputDir string) (string, error) {
	path := filepath.Join(outputDir, dashboardFile)
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	if err := dashboardTemplate.Execute(file, buildDashboardView(report, chartFiles)); err != nil {
		return "", err
	}
	return path, nil
}
