// Package report renders rankings and comparisons as plain text.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"MoneyMarketOptimizer/internal/model"
	"MoneyMarketOptimizer/internal/ranker"
	"MoneyMarketOptimizer/internal/recorder"
)

// FormatProfile summarizes the rates a run used.
func FormatProfile(p model.TaxProfile) string {
	return fmt.Sprintf("Tax profile: %s | federal %s | state %s | combined %s\n",
		p.State, Percent(p.FederalRate), Percent(p.StateRate), Percent(p.CombinedRate()))
}

// FormatRanking lists the ranked funds. When amount is positive each entry
// also shows the after-tax income it would earn over a year.
func FormatRanking(r ranker.Ranking, issuer string, amount decimal.Decimal) string {
	var b strings.Builder

	if r.NoMatchingFunds {
		if issuer != "" {
			b.WriteString(fmt.Sprintf("No funds matched issuer %q. Try a broader issuer filter.\n", issuer))
		} else {
			b.WriteString("No funds matched the filters.\n")
		}
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Top %d money market funds by after-tax yield (%d considered)\n", len(r.Funds), r.Considered))
	b.WriteString("--------------\n")
	for i, f := range r.Funds {
		b.WriteString(fmt.Sprintf("%2d. %-6s %s\n", i+1, f.Fund.Ticker, f.Fund.Name))
		b.WriteString(fmt.Sprintf("    SEC yield %s | after-tax %s | tax-equivalent %s\n",
			Percent(f.Fund.SECYield), Percent(f.AfterTaxYield), Percent(f.TaxEquivalentYield)))
		b.WriteString(fmt.Sprintf("    state exemption %s (%s)\n", Percent(f.Exemption.ExemptFraction), f.Exemption.Rule))
		if amount.IsPositive() {
			income := decimal.NewFromFloat(f.AfterTaxYield).Mul(amount)
			b.WriteString(fmt.Sprintf("    after-tax income on %s over 12 months: %s\n", Money(amount), Money(income)))
		}
	}
	b.WriteString("--------------\n")
	return b.String()
}

// FormatComparison contrasts the best fund with the reference account.
// referenceAfterTax is the reference APY net of the same tax profile.
func FormatComparison(c *model.ComparisonResult, referenceAfterTax float64) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Reference APY: %s (after tax %s)\n", Percent(c.ReferenceAPY), Percent(referenceAfterTax)))
	if c.InvestmentAmount.IsPositive() {
		income := decimal.NewFromFloat(referenceAfterTax).Mul(c.InvestmentAmount)
		b.WriteString(fmt.Sprintf("Reference after-tax income on %s over 12 months: %s\n", Money(c.InvestmentAmount), Money(income)))
	}

	verdict := "better"
	if c.YieldDeltaFraction < 0 {
		verdict = "worse"
	}
	b.WriteString(fmt.Sprintf("%s after-tax yield %s is %s than the reference by %s (%s per year)\n",
		c.BestFund.Fund.Ticker, Percent(c.BestFund.AfterTaxYield), verdict,
		SignedPercent(c.YieldDeltaFraction), Money(c.AnnualDollarDelta)))
	return b.String()
}

// FormatHistory renders recorded runs, newest first.
func FormatHistory(runs []recorder.RunSummary) string {
	if len(runs) == 0 {
		return "No recorded runs.\n"
	}
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(fmt.Sprintf("#%d %s [%s] %s fed %s state %s: %s %s (%d considered)",
			r.ID, r.At.Format(time.DateTime), r.Trigger, r.State,
			Percent(r.FederalRate), Percent(r.StateRate),
			r.TopTicker, Percent(r.TopAfterTaxYield), r.Considered))
		if r.ReferenceAPY != nil {
			delta := r.AnnualDollarDelta
			if d, err := decimal.NewFromString(delta); err == nil {
				delta = Money(d)
			}
			b.WriteString(fmt.Sprintf(" vs %s, %s/yr", Percent(*r.ReferenceAPY), delta))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Percent formats a fraction as a percentage with two decimals.
func Percent(f float64) string {
	return fmt.Sprintf("%.2f%%", f*100)
}

// SignedPercent is Percent with an explicit sign.
func SignedPercent(f float64) string {
	return fmt.Sprintf("%+.2f%%", f*100)
}

// Money formats an amount as dollars with thousands separators.
func Money(d decimal.Decimal) string {
	rounded := d.Round(2)
	whole, frac, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return "$" + rounded.StringFixed(2)
	}

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%s", sign, humanize.Comma(n), frac)
}
