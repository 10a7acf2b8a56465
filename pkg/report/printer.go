package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrymomot/growbuddy/pkg/analyzer"
	"github.com/dmitrymomot/growbuddy/pkg/garden"
	"github.com/dmitrymomot/growbuddy/pkg/plant"
	"github.com/dmitrymomot/growbuddy/pkg/validator"
)

// Printer writes styled reports to w.
type Printer struct {
	w   io.Writer
	s   styles
	now func() time.Time
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w, s: newStyles(lipgloss.NewRenderer(w)), now: time.Now}
}

// Verdict renders VALID or INVALID.
func (p *Printer) Verdict(ok bool) string {
	if ok {
		return p.s.ok.Render("VALID")
	}
	return p.s.fail.Render("INVALID")
}

// Patterns lists every catalog rule with its description and expression.
func (p *Printer) Patterns(c *validator.Catalog) error {
	var b strings.Builder
	b.WriteString(p.s.title.Render("VALIDATION PATTERNS") + "\n")
	for _, rule := range c.Rules() {
		fmt.Fprintf(&b, "• %s: %s\n  %s\n", rule.Field, rule.Description, p.s.muted.Render(rule.Expr))
	}
	return p.write(b.String())
}

// Check renders the outcome of testing value against field.
func (p *Printer) Check(field validator.Field, value string, ok bool, msg string) error {
	line := fmt.Sprintf("%s %s: %q", p.Verdict(ok), field, value)
	if !ok && msg != "" {
		line += " " + p.s.muted.Render("("+msg+")")
	}
	return p.write(line + "\n")
}

// Plant renders a plant and its validation report.
func (p *Printer) Plant(pl *plant.Plant, r plant.Report) error {
	var b strings.Builder
	b.WriteString(p.s.title.Render("PLANT "+pl.ID) + "\n")
	fmt.Fprintf(&b, "• Name: %s\n• Type: %s\n• Created: %s\n", pl.Name, pl.Type, pl.CreatedAt.Format(time.DateTime))
	fmt.Fprintf(&b, "• Health %.0f  Water %.2f  Nutrients %.0f  Sunlight %.0f\n", pl.Health, pl.WaterLevel, pl.Nutrients, pl.Sunlight)
	if len(pl.Diseases) > 0 {
		names := make([]string, 0, len(pl.Diseases))
		for _, d := range pl.Diseases {
			names = append(names, fmt.Sprintf("%s (severity %d)", d.Name, d.Severity))
		}
		fmt.Fprintf(&b, "• Diseases: %s\n", strings.Join(names, ", "))
	}
	if len(pl.Traits) > 0 {
		fmt.Fprintf(&b, "• Traits: %s\n", strings.Join(pl.Traits, ", "))
	}

	b.WriteString("\n" + p.s.heading.Render("Validation Report") + "\n")
	for _, c := range r.Checks {
		fmt.Fprintf(&b, "• %s: %s\n  Value: '%s'\n  Pattern: %s\n", c.Field, p.Verdict(c.Valid), c.Value, p.s.muted.Render(c.Pattern))
	}
	p.list(&b, "Errors", r.Errors, p.s.fail)
	p.list(&b, "Warnings", r.Warnings, p.s.warn)
	return p.write(b.String())
}

// Stats renders the garden statistics, each table ranked by count.
func (p *Printer) Stats(st analyzer.Stats, c *validator.Catalog) error {
	var b strings.Builder
	b.WriteString(p.s.title.Render("COMPREHENSIVE VALIDATION REPORT") + "\n")
	b.WriteString(p.s.muted.Render("Generated: "+p.now().Format(time.DateTime)) + "\n\n")
	b.WriteString(p.s.heading.Render("GARDEN STATISTICS") + "\n")
	fmt.Fprintf(&b, "• Total Plants: %d\n", st.Total)

	p.table(&b, "PLANTS BY TYPE", st.ByType, "")
	p.table(&b, "MOST COMMON TRAITS", st.Traits, " plants")
	p.table(&b, "DISEASE FREQUENCY", st.Diseases, " cases")
	p.table(&b, "LOCATION DISTRIBUTION", st.Regions, " plants")
	p.table(&b, "EMAIL DOMAINS", st.EmailDomains, " users")

	if c != nil {
		b.WriteString("\n" + p.s.heading.Render("VALIDATION PATTERNS USED") + "\n")
		for _, rule := range c.Rules() {
			fmt.Fprintf(&b, "• %s: %s\n", rule.Field, rule.Expr)
		}
	}
	return p.write(b.String())
}

// Batch renders an audit of a batch of records.
func (p *Printer) Batch(res analyzer.BatchResult) error {
	var b strings.Builder
	b.WriteString(p.s.title.Render("BATCH VALIDATION") + "\n")
	summary := fmt.Sprintf("Total: %d   Valid: %s   Invalid: %s",
		res.Total,
		p.s.ok.Render(fmt.Sprint(res.Valid)),
		p.s.fail.Render(fmt.Sprint(res.Invalid)))
	b.WriteString(p.s.box.Render(summary) + "\n")
	for _, e := range res.Errors {
		name, _ := e.Data.Text(validator.FieldName)
		fmt.Fprintf(&b, "\nRecord %d %s\n", e.Index, p.s.muted.Render(fmt.Sprintf("(%q)", name)))
		for _, msg := range e.Errors {
			fmt.Fprintf(&b, "  • %s\n", msg)
		}
	}
	return p.write(b.String())
}

// Demo renders the outcome of loading the demo data set.
func (p *Printer) Demo(results []garden.DemoResult, total int) error {
	var b strings.Builder
	b.WriteString(p.s.title.Render("LOADING DEMO DATA WITH VALIDATION TESTING") + "\n\n")
	for i, r := range results {
		fmt.Fprintf(&b, "Plant %d: %s\n", i+1, r.Name)
		if r.Failed() {
			fmt.Fprintf(&b, "  %s %s\n\n", p.s.fail.Render("FAILED:"), r.Err)
			continue
		}
		fmt.Fprintf(&b, "  %s %s - Errors: %d, Warnings: %d\n\n", p.s.ok.Render("CREATED"), r.PlantID, r.Errors, r.Warnings)
	}
	fmt.Fprintf(&b, "Demo data loaded! Total plants: %d\n", total)
	return p.write(b.String())
}

func (p *Printer) table(b *strings.Builder, title string, c analyzer.Counts, unit string) {
	if len(c) == 0 {
		return
	}
	b.WriteString("\n" + p.s.heading.Render(title) + "\n")
	for _, e := range analyzer.Ranked(c) {
		fmt.Fprintf(b, "• %s: %d%s\n", e.Key, e.Count, unit)
	}
}

func (p *Printer) list(b *strings.Builder, title string, items []string, style lipgloss.Style) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n" + style.Render(title+":") + "\n")
	for _, item := range items {
		fmt.Fprintf(b, "• %s\n", item)
	}
}

func (p *Printer) write(s string) error {
	_, err := io.WriteString(p.w, s)
	return err
}
