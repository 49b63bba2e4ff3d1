package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/taxregime-sim/taxengine"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

// renderComputation 以表格形式输出一笔计算结果
func renderComputation(w io.Writer, c *taxengine.Computation) {
	fmt.Fprintf(w, "Gross income:          %s\n", taxengine.FormatRupees(c.GrossIncome))
	fmt.Fprintf(w, "Standard deduction:    %s\n", taxengine.FormatRupees(c.StandardDeduction))
	fmt.Fprintf(w, "Taxable after deduction: %s\n\n", taxengine.FormatRupees(c.NetTaxableIncome))
	for _, r := range []taxengine.RegimeResult{c.New, c.Old} {
		renderRegime(w, r)
	}
	fmt.Fprintln(w, titleStyle.Render(c.Comparison.Message))
	fmt.Fprintln(w)
}

func renderRegime(w io.Writer, r taxengine.RegimeResult) {
	rows := lo.Map(r.Breakdown, func(l taxengine.BreakdownLine, _ int) []string {
		return []string{
			l.Description,
			taxengine.FormatRupees(l.TaxableAmount),
			strconv.FormatInt(l.RatePercent, 10) + "%",
			taxengine.FormatRupees(l.TaxAmount),
		}
	})
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Slab", "Taxable", "Rate", "Tax").
		Rows(rows...)

	fmt.Fprintln(w, titleStyle.Render(r.Label))
	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "Tax before surcharge:  %s\n", taxengine.FormatRupees(r.PreSurchargeTax))
	fmt.Fprintf(w, "Surcharge (%d%%):       %s\n", r.SurchargeRatePercent, taxengine.FormatRupees(r.Surcharge))
	fmt.Fprintf(w, "Cess (4%%):             %s\n", taxengine.FormatRupees(r.Cess))
	fmt.Fprintf(w, "Final tax liability:   %s\n\n", taxengine.FormatRupees(r.FinalLiability))
}
