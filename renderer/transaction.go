package renderer

import (
	"bytes"

	"github.com/divcast/divcast"
	md "github.com/nao1215/markdown"
)

// TransactionsMarkdown renders parsed transactions as a markdown table.
func TransactionsMarkdown(txs []divcast.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")

	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{
			tx.Ticker,
			string(tx.Action),
			tx.Quantity.String(),
			tx.Signed().String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Ticker", "Action", "Quantity", "Signed"},
		Rows:   rows,
	})

	return doc.String()
}
