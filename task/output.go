package task

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/tsinghua-fib-lab/taxregime-sim/taxengine"
	"gopkg.in/yaml.v2"
)

// LineReport 输出用的分档明细，金额保留两位小数
type LineReport struct {
	Description string `yaml:"description"`
	Taxable     string `yaml:"taxable"`
	RatePercent int64  `yaml:"rate_percent"`
	Tax         string `yaml:"tax"`
}

// RegimeReport 输出用的单一税制结果
type RegimeReport struct {
	Label                string       `yaml:"label"`
	Tax                  string       `yaml:"tax"`
	SurchargeRatePercent int64        `yaml:"surcharge_rate_percent"`
	Surcharge            string       `yaml:"surcharge"`
	Cess                 string       `yaml:"cess"`
	Final                string       `yaml:"final"`
	Breakdown            []LineReport `yaml:"breakdown"`
}

// Report 输出用的单笔计算结果
type Report struct {
	Gross   string       `yaml:"gross"`
	Net     string       `yaml:"net"`
	New     RegimeReport `yaml:"new"`
	Old     RegimeReport `yaml:"old"`
	Winner  string       `yaml:"winner"`
	Savings string       `yaml:"savings"`
	Message string       `yaml:"message"`
}

func money(v decimal.Decimal) string {
	return v.StringFixed(2)
}

// NewReport 把计算结果转换为输出结构
func NewReport(c *taxengine.Computation) Report {
	return Report{
		Gross:   money(c.GrossIncome),
		Net:     money(c.NetTaxableIncome),
		New:     newRegimeReport(c.New),
		Old:     newRegimeReport(c.Old),
		Winner:  string(c.Comparison.Winner),
		Savings: money(c.Comparison.Savings),
		Message: c.Comparison.Message,
	}
}

func newRegimeReport(r taxengine.RegimeResult) RegimeReport {
	return RegimeReport{
		Label:                r.Label,
		Tax:                  money(r.PreSurchargeTax),
		SurchargeRatePercent: r.SurchargeRatePercent,
		Surcharge:            money(r.Surcharge),
		Cess:                 money(r.Cess),
		Final:                money(r.FinalLiability),
		Breakdown: lo.Map(r.Breakdown, func(l taxengine.BreakdownLine, _ int) LineReport {
			return LineReport{
				Description: l.Description,
				Taxable:     money(l.TaxableAmount),
				RatePercent: l.RatePercent,
				Tax:         money(l.TaxAmount),
			}
		}),
	}
}

// WriteYAML 以YAML列表写出全部结果
func WriteYAML(w io.Writer, results []*taxengine.Computation) error {
	reports := lo.Map(results, func(c *taxengine.Computation, _ int) Report {
		return NewReport(c)
	})
	data, err := yaml.Marshal(reports)
	if err != nil {
		return errors.Wrap(err, "marshal yaml")
	}
	_, err = w.Write(data)
	return errors.Wrap(err, "write yaml")
}

var csvHeader = []string{
	"gross", "net", "regime", "slab", "taxable", "rate_percent", "slab_tax",
	"tax", "surcharge", "cess", "final", "winner",
}

// WriteCSV 每个分档明细一行，行内附带所属税制的汇总列
func WriteCSV(w io.Writer, results []*taxengine.Computation) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for _, c := range results {
		for _, r := range []taxengine.RegimeResult{c.New, c.Old} {
			for _, l := range r.Breakdown {
				row := []string{
					money(c.GrossIncome),
					money(c.NetTaxableIncome),
					string(r.Regime),
					l.Description,
					money(l.TaxableAmount),
					strconv.FormatInt(l.RatePercent, 10),
					money(l.TaxAmount),
					money(r.PreSurchargeTax),
					money(r.Surcharge),
					money(r.Cess),
					money(r.FinalLiability),
					string(c.Comparison.Winner),
				}
				if err := writer.Write(row); err != nil {
					return errors.Wrap(err, "write csv row")
				}
			}
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "flush csv")
}

// WriteSummary 以YAML写出人口汇总
func WriteSummary(w io.Writer, s *PopulationSummary) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "marshal summary")
	}
	_, err = w.Write(data)
	return errors.Wrap(err, "write summary")
}
