// Package renderer turns projection reports into markdown documents, ready
// for terminal display or plain-text export.
package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/divcast/divcast"
	md "github.com/nao1215/markdown"
)

// ProjectionMarkdown renders the full report: overview table, monthly income
// cycle, dividend calendar and DRIP summary.
func ProjectionMarkdown(r *divcast.ProjectionReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Dividend Projection on %s", r.AsOf))

	if r.NoHoldings {
		doc.PlainText("No holdings detected after netting buy/sell transactions.")
		return doc.String()
	}

	doc.PlainText(fmt.Sprintf("Total Projected Annual Dividend: %s", r.TotalAnnualIncome))

	doc.H2("Holdings")
	doc.Table(overviewTable(r))

	doc.H2("Monthly Income Projection")
	doc.Table(monthlyTable(r))

	doc.H2("Dividend Calendar - Next 12 Months")
	doc.Table(calendarTable(r))

	if r.AggregateDrip != nil {
		doc.H2(fmt.Sprintf("Portfolio DRIP Growth - %d Years", r.DripYears))
		doc.Table(dripTable(*r.AggregateDrip))
	}

	for _, w := range r.Warnings {
		doc.PlainText("⚠ " + w)
	}

	return doc.String()
}

// MonthlyMarkdown renders only the monthly income cycle.
func MonthlyMarkdown(r *divcast.ProjectionReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Monthly Dividend Income Projection on %s", r.AsOf))
	if r.NoHoldings {
		doc.PlainText("No holdings detected.")
		return doc.String()
	}
	doc.Table(monthlyTable(r))
	return doc.String()
}

// CalendarMarkdown renders only the calendar pivot.
func CalendarMarkdown(r *divcast.ProjectionReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Dividend Calendar on %s", r.AsOf))
	if r.NoHoldings {
		doc.PlainText("No holdings detected.")
		return doc.String()
	}
	doc.Table(calendarTable(r))
	return doc.String()
}

// DripMarkdown renders the year-by-year path of a single DRIP simulation.
func DripMarkdown(path divcast.DripPath, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("DRIP Growth - %s", path.Ticker))
	doc.PlainText(fmt.Sprintf("Income in %s, reinvested at a constant price.", currency))
	doc.Table(dripTable(path))
	return doc.String()
}

func overviewTable(r *divcast.ProjectionReport) md.TableSet {
	rows := make([][]string, 0, len(r.Holdings))
	for _, h := range r.Holdings {
		drip := "-"
		dripIncome := "-"
		if h.DripAvailable {
			drip = h.DripShares.String()
			dripIncome = h.DripIncome.String()
		}
		rows = append(rows, []string{
			h.Ticker,
			h.Shares.String(),
			h.Weight.String(),
			fmt.Sprintf("%.2f", h.AnnualDividendPerShare),
			h.AnnualIncome.String(),
			h.Growth.SignedString(),
			drip,
			dripIncome,
		})
	}
	return md.TableSet{
		Header: []string{"Ticker", "Shares", "Share %", "Annual Div/Share", "Annual Income", "Dividend CAGR", "Shares After DRIP", "Income After DRIP"},
		Rows:   rows,
	}
}

func monthlyTable(r *divcast.ProjectionReport) md.TableSet {
	rows := make([][]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		rows = append(rows, []string{
			divcast.MonthName(m),
			r.MonthlyIncome[m-1].String(),
		})
	}
	return md.TableSet{
		Header: []string{"Month", "Income"},
		Rows:   rows,
	}
}

func calendarTable(r *divcast.ProjectionReport) md.TableSet {
	header := append([]string{"Month"}, r.Calendar.Tickers...)
	rows := make([][]string, 0, len(r.Calendar.Months))
	for i, month := range r.Calendar.Months {
		row := make([]string, 0, len(header))
		row = append(row, month)
		for j := range r.Calendar.Tickers {
			row = append(row, fmt.Sprintf("%.2f", r.Calendar.Cells[i][j]))
		}
		rows = append(rows, row)
	}
	return md.TableSet{Header: header, Rows: rows}
}

func dripTable(path divcast.DripPath) md.TableSet {
	rows := make([][]string, 0, len(path.Shares))
	for year, shares := range path.Shares {
		income := "-"
		if year > 0 {
			income = fmt.Sprintf("%.2f", path.Income[year-1])
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", year),
			fmt.Sprintf("%.2f", shares),
			income,
		})
	}
	return md.TableSet{
		Header: []string{"Year", "Shares", "Income"},
		Rows:   rows,
	}
}
