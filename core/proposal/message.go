// Package proposal - Outbound proposal message
package proposal

import (
	"fmt"
	"strings"

	"github.com/ziyabeey1-ai/mysite/core/types"
)

// brandPlaceholder is used when the prospect leaves the brand field
// blank
const brandPlaceholder = "Belirtilmemiş"

// ContactForm holds the prospect's contact fields
type ContactForm struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Note  string `json:"note"`
}

// CanSubmit gates the submit action: name and email must be non-empty.
// No format validation beyond presence.
func (f ContactForm) CanSubmit() bool {
	return strings.TrimSpace(f.Name) != "" && strings.TrimSpace(f.Email) != ""
}

// Message is the rendered outbound payload handed to the mail
// collaborator
type Message struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Compose renders the deterministic proposal message for a configured
// breakdown. The cycle, brand and totals are baked into the text; the
// collaborator only dispatches it.
func Compose(brand string, b types.Breakdown, t types.ProposalTotals, form ContactForm) Message {
	if strings.TrimSpace(brand) == "" {
		brand = brandPlaceholder
	}

	var body strings.Builder
	body.WriteString("Merhaba Yusuf Bey,\n\n")
	fmt.Fprintf(&body, "Marka Adı: %s\n\n", brand)
	body.WriteString("Web sitenizdeki proje planlayıcı üzerinden aşağıdaki konfigürasyonu oluşturdum:\n\n")
	body.WriteString(b.Summary)
	body.WriteString("\n\n-- YATIRIM ÖZETİ --\n")
	fmt.Fprintf(&body, "Proje Kurulum Bedeli: %s\n", types.FormatTL(t.OneTime))
	fmt.Fprintf(&body, "İndirim Tutarı (%%10 - %s): -%s\n\n", DiscountCode, types.FormatTL(t.DiscountAmount))
	fmt.Fprintf(&body, "Altyapı ve Hosting (Yıllık): %s\n\n", types.FormatTL(t.InfraAnnual))
	fmt.Fprintf(&body, "Hizmet Sözleşmesi (%d Ay): %s\n", t.Cycle.Months(), types.FormatTL(t.ServiceTotal))
	fmt.Fprintf(&body, "(Aylık Ortalama: %s)\n\n", types.FormatTL(t.ServiceMonthly.Round(0)))
	fmt.Fprintf(&body, "TOPLAM NAKİT YATIRIM: %s\n\n", types.FormatTL(t.GrandTotal))
	fmt.Fprintf(&body, "Tahmini Medya Bütçesi (Google/Meta'ya): %s/Ay\n\n", types.FormatTL(t.MediaBudget))
	body.WriteString("-- MÜŞTERİ BİLGİLERİ --\n")
	fmt.Fprintf(&body, "Ad Soyad: %s\n", form.Name)
	fmt.Fprintf(&body, "Email: %s\n", form.Email)
	fmt.Fprintf(&body, "Telefon: %s\n\n", form.Phone)
	fmt.Fprintf(&body, "Proje Notu:\n%s", form.Note)

	return Message{
		Subject: fmt.Sprintf("Yeni Proje Talebi: %s [%d Ay - %s]", brand, t.Cycle.Months(), DiscountCode),
		Body:    body.String(),
	}
}
