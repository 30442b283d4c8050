package report

import (
	"fmt"
	"strings"

	"max.ks1230/expense-splitter/internal/entity/expense"
	"max.ks1230/expense-splitter/internal/model/settlement"
)

const header = "Sr. No. | Payee | Description | Date | Amount"

// FormatTable renders the numbered expense rows followed by the summary rows.
func FormatTable(records []expense.Record, summary settlement.Summary, pair settlement.Pair, symbol string) string {
	res := make([]string, 0, len(records)+6)
	res = append(res, header)
	for i, rec := range records {
		res = append(res, fmt.Sprintf("%d. %s | %s | %s | %s%s",
			i+1, rec.PayeeName, rec.Product, rec.SetDate, symbol, rec.Price))
	}
	res = append(res, "")
	res = append(res, summaryLines(summary, pair, symbol)...)
	return strings.Join(res, "\n")
}

// FormatSummary renders the totals and the settlement only.
func FormatSummary(summary settlement.Summary, pair settlement.Pair, symbol string) string {
	return strings.Join(summaryLines(summary, pair, symbol), "\n")
}

func summaryLines(summary settlement.Summary, pair settlement.Pair, symbol string) []string {
	return []string{
		fmt.Sprintf("Total: %s%s", symbol, summary.Total),
		fmt.Sprintf("%s Paid: %s%s", pair.First, symbol, summary.FirstPaid),
		fmt.Sprintf("%s Paid: %s%s", pair.Second, symbol, summary.SecondPaid),
		fmt.Sprintf("%s has to pay: %s%s", summary.Settlement.Owing, symbol, summary.Settlement.Amount.StringFixed(2)),
	}
}
