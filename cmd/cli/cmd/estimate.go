// Package cmd - estimate command
package cmd

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ziyabeey1-ai/mysite/core/planner"
	"github.com/ziyabeey1-ai/mysite/core/proposal"
	"github.com/ziyabeey1-ai/mysite/core/terminal"
	"github.com/ziyabeey1-ai/mysite/core/types"
)

var (
	projectPath string
	cycleMonths int
	showMessage bool
	noColor     bool
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Price a project configuration",
	Long: `Price a project configuration described in an HCL file.

The file sets the brand, the billing cycle, the media budget, and one
selection block per configurator step:

  brand     = "Acme"
  cycle     = 12
  ad_budget = 50000

  selection "scale" {
    option = "ecommerce"
  }

  selection "function" {
    options = ["auth", "payment"]
  }

Examples:
  mysite estimate -f project.hcl
  mysite estimate -f project.hcl --cycle 6 --message`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&projectPath, "file", "f", "", "project HCL file (defaults apply when omitted)")
	estimateCmd.Flags().IntVar(&cycleMonths, "cycle", 0, "billing cycle in months (3, 6, 12); overrides the file")
	estimateCmd.Flags().BoolVar(&showMessage, "message", false, "print the composed proposal message")
	estimateCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// projectFile is the HCL estimate request
type projectFile struct {
	Brand    string `hcl:"brand,optional"`
	Cycle    int    `hcl:"cycle,optional"`
	AdBudget int64  `hcl:"ad_budget,optional"`

	Selections []selectionBlock `hcl:"selection,block"`
	Contact    *contactBlock    `hcl:"contact,block"`
}

// selectionBlock assigns options to one step
type selectionBlock struct {
	Step    string   `hcl:"step,label"`
	Option  string   `hcl:"option,optional"`
	Options []string `hcl:"options,optional"`
}

// contactBlock carries the prospect's contact fields
type contactBlock struct {
	Name  string `hcl:"name"`
	Email string `hcl:"email"`
	Phone string `hcl:"phone,optional"`
	Note  string `hcl:"note,optional"`
}

func runEstimate(cmd *cobra.Command, args []string) error {
	var pf projectFile
	if projectPath != "" {
		if err := hclsimple.DecodeFile(projectPath, nil, &pf); err != nil {
			return fmt.Errorf("decode project file: %w", err)
		}
	}

	p := planner.New()
	for _, sel := range pf.Selections {
		stepID := types.StepID(sel.Step)
		if sel.Option != "" {
			p.Select(stepID, sel.Option)
		}
		for _, id := range sel.Options {
			p.Select(stepID, id)
		}
	}
	if pf.AdBudget > 0 {
		p.SetAdBudget(decimal.NewFromInt(pf.AdBudget))
	}

	cycle := types.CycleAnnual
	if pf.Cycle != 0 {
		cycle = types.BillingCycle(pf.Cycle)
	}
	if cycleMonths != 0 {
		cycle = types.BillingCycle(cycleMonths)
	}
	if !cycle.Valid() {
		return fmt.Errorf("invalid cycle: %d (want 3, 6, or 12)", cycle)
	}

	b := p.Finalize()
	totals := proposal.Compute(b, cycle)

	w := terminal.NewWriter(cmd.OutOrStdout(), noColor)
	w.Header("Proje Konfigürasyonu")
	w.Println("%s", b.Summary)

	w.Header("Yatırım Özeti")
	w.Row("Proje Kurulum Bedeli", types.FormatTL(totals.OneTime))
	w.Row(fmt.Sprintf("İndirim (%%10 - %s)", proposal.DiscountCode), "-"+types.FormatTL(totals.DiscountAmount))
	w.Row("Kurulum (İndirimli)", types.FormatTL(totals.DiscountedOneTime))
	w.Row("Altyapı ve Hosting (Yıllık)", types.FormatTL(totals.InfraAnnual))
	w.Note("%s x 12 Ay (Sabit Yıllık)", types.FormatTL(totals.InfraMonthly))
	w.Row(fmt.Sprintf("Hizmet Sözleşmesi (%d Ay)", cycle.Months()), types.FormatTL(totals.ServiceTotal))
	w.Note("%s x %d Ay (Peşin)", types.FormatTL(totals.ServiceMonthly.Round(0)), cycle.Months())
	w.Println("")
	w.Row("TOPLAM NAKİT YATIRIM", types.FormatTL(totals.GrandTotal))
	if totals.MediaBudget.IsPositive() {
		w.Note("Tahmini Medya Bütçesi (Google/Meta'ya): %s/Ay, toplama dahil değil", types.FormatTL(totals.MediaBudget))
	}

	if showMessage {
		form := proposal.ContactForm{}
		if pf.Contact != nil {
			form = proposal.ContactForm{
				Name:  pf.Contact.Name,
				Email: pf.Contact.Email,
				Phone: pf.Contact.Phone,
				Note:  pf.Contact.Note,
			}
		}
		if !form.CanSubmit() {
			w.Note("contact block missing name/email; message not composed")
			return nil
		}
		msg := proposal.Compose(pf.Brand, b, totals, form)
		w.Header("Teklif Mesajı")
		w.Println("Subject: %s", msg.Subject)
		w.Println("")
		w.Println("%s", msg.Body)
	}

	return nil
}
