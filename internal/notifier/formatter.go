package notifier

import (
	"fmt"
	"html"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"FundPicker/internal/model"
	"FundPicker/internal/session"
	"FundPicker/internal/table"
)

// Formatter renders session output for one presentation channel.
type Formatter interface {
	Results(snap session.Snapshot) string
	Table(page model.TablePage) string
	Inputs(snap session.Snapshot) string
	Catalog(funds []model.Fund, label table.LabelFunc) string
	Help() string
	Notice(text string) string
}

const resultsTitle = "Top 3 Funds for You"

func inputsLine(snap session.Snapshot) string {
	amount, period := snap.Amount, snap.Period
	if amount == "" {
		amount = "(not set)"
	}
	if period == "" {
		period = "(not set)"
	} else {
		period += " years"
	}
	return fmt.Sprintf("Amount: %s | Risk: %s | Period: %s", amount, snap.Tier, period)
}

func pageLine(page model.TablePage) string {
	return fmt.Sprintf("Page %d of %d", page.PageIndex+1, page.PageCount)
}

// HTMLFormatter renders Telegram HTML messages.
type HTMLFormatter struct {
	Currency string
}

func (f HTMLFormatter) Results(snap session.Snapshot) string {
	var b strings.Builder
	if len(snap.Picks) > 0 {
		b.WriteString(fmt.Sprintf("🏆 <b>%s</b>\n\n", resultsTitle))
		for _, p := range snap.Picks {
			b.WriteString(fmt.Sprintf("%d. <b>%s</b>\n", p.Rank, html.EscapeString(p.Name)))
			b.WriteString(fmt.Sprintf("   Category: %s\n", p.Category))
			b.WriteString(fmt.Sprintf("   Yearly ROI: <b>%s%%</b>\n", FormatROI(p.YearlyROI)))
			b.WriteString(fmt.Sprintf("   Your Allocation: %s\n", FormatMoney(p.Allocation, f.Currency)))
		}
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("📋 <b>%s risk funds</b>\n", snap.Tier))
	b.WriteString(f.Table(snap.Table))
	return b.String()
}

func (f HTMLFormatter) Table(page model.TablePage) string {
	var b strings.Builder
	b.WriteString("<pre>")
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(table.Columns, "\t"))
	if len(page.Rows) == 0 {
		fmt.Fprintln(tw, "No results.")
	}
	for _, r := range page.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", html.EscapeString(r.Name), r.Category, r.Risk, FormatROI(r.YearlyROI))
	}
	tw.Flush()
	b.WriteString("</pre>\n")
	b.WriteString(pageLine(page))
	if page.CanPrev || page.CanNext {
		b.WriteString(" · /prev /next")
	}
	return b.String()
}

func (f HTMLFormatter) Inputs(snap session.Snapshot) string {
	return fmt.Sprintf("📝 %s\nSend /submit when ready.", html.EscapeString(inputsLine(snap)))
}

// catalogBudget leaves room under MaxMessageLength for the header and footer.
const catalogBudget = MaxMessageLength - 256

// Catalog lists as many funds as fit in one Telegram message and counts the rest.
func (f HTMLFormatter) Catalog(funds []model.Fund, label table.LabelFunc) string {
	n := len(funds)
	for {
		out := f.catalog(funds, n, label)
		size := utf8.RuneCountInString(out)
		if size <= catalogBudget || n == 0 {
			return out
		}
		n = min(n-1, n*catalogBudget/size)
	}
}

func (f HTMLFormatter) catalog(funds []model.Fund, shown int, label table.LabelFunc) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📚 <b>Catalog</b> (%d funds)\n<pre>", len(funds)))
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(table.Columns, "\t"))
	for _, fund := range funds[:shown] {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", html.EscapeString(fund.Name), fund.Category, label(fund.Category), FormatROI(fund.YearlyROI))
	}
	tw.Flush()
	b.WriteString("</pre>")
	if rest := len(funds) - shown; rest > 0 {
		b.WriteString(fmt.Sprintf("\n… and %d more. Run <code>fundpicker catalog list</code> for the full list.", rest))
	}
	return b.String()
}

func (f HTMLFormatter) Help() string {
	return "<b>FundPicker</b> commands:\n" +
		"• /recommend &lt;amount&gt; &lt;low|medium|high&gt; &lt;years&gt;\n" +
		"• /amount &lt;amount&gt; · /risk &lt;tier&gt; · /period &lt;years&gt;\n" +
		"• /submit · /show · /clear\n" +
		"• /next · /prev\n" +
		"• /catalog"
}

func (f HTMLFormatter) Notice(text string) string {
	return html.EscapeString(text)
}

// MarkdownFormatter renders Markdown for terminals.
type MarkdownFormatter struct {
	Currency string
}

func mdEscape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func (f MarkdownFormatter) Results(snap session.Snapshot) string {
	var b strings.Builder
	if len(snap.Picks) > 0 {
		b.WriteString("## " + resultsTitle + "\n\n")
		for _, p := range snap.Picks {
			b.WriteString(fmt.Sprintf("%d. **%s** | Category: %s | Yearly ROI: **%s%%** | Your Allocation: %s\n",
				p.Rank, mdEscape(p.Name), p.Category, FormatROI(p.YearlyROI), FormatMoney(p.Allocation, f.Currency)))
		}
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("## %s risk funds\n\n", snap.Tier))
	b.WriteString(f.Table(snap.Table))
	return b.String()
}

func (f MarkdownFormatter) tableHeader(b *strings.Builder) {
	b.WriteString("| " + strings.Join(table.Columns, " | ") + " |\n")
	b.WriteString(strings.Repeat("|---", len(table.Columns)) + "|\n")
}

func (f MarkdownFormatter) Table(page model.TablePage) string {
	var b strings.Builder
	f.tableHeader(&b)
	if len(page.Rows) == 0 {
		b.WriteString("| No results. |" + strings.Repeat("  |", len(table.Columns)-1) + "\n")
	}
	for _, r := range page.Rows {
		b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", mdEscape(r.Name), r.Category, r.Risk, FormatROI(r.YearlyROI)))
	}
	b.WriteString("\n" + pageLine(page) + "\n")
	return b.String()
}

func (f MarkdownFormatter) Inputs(snap session.Snapshot) string {
	return inputsLine(snap) + "\n\nType `submit` when ready.\n"
}

func (f MarkdownFormatter) Catalog(funds []model.Fund, label table.LabelFunc) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("## Catalog (%d funds)\n\n", len(funds)))
	f.tableHeader(&b)
	for _, fund := range funds {
		b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", mdEscape(fund.Name), fund.Category, label(fund.Category), FormatROI(fund.YearlyROI)))
	}
	return b.String()
}

func (f MarkdownFormatter) Help() string {
	return `## FundPicker

- ` + "`recommend <amount> <low|medium|high> <years>`" + `
- ` + "`amount <amount>`, `risk <tier>`, `period <years>`" + `
- ` + "`submit`, `show`, `clear`" + `
- ` + "`next`, `prev`" + `
- ` + "`catalog`" + `
- ` + "`quit`" + `
`
}

func (f MarkdownFormatter) Notice(text string) string {
	return text + "\n"
}
