// Package vcard renders the downloadable contact card.
package vcard

import (
	"strings"

	"github.com/ziyabeey1-ai/mysite/internal/config"
)

// MIMEType is the vCard content type
const MIMEType = "text/vcard"

// FileName returns the suggested download name for the card
func FileName() string {
	return "yusuf_ziya_terzioglu.vcf"
}

// Render produces a vCard 3.0 document for the agency contact
func Render(site config.SiteConfig) string {
	// N: family;given;additional;;
	parts := strings.Fields(site.Owner)
	family := ""
	given := ""
	additional := ""
	if len(parts) > 0 {
		family = parts[len(parts)-1]
		given = parts[0]
	}
	if len(parts) > 2 {
		additional = strings.Join(parts[1:len(parts)-1], " ")
	}

	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:" + family + ";" + given + ";" + additional + ";;",
		"FN:" + site.Owner,
		"ORG:" + site.Name,
		"TITLE:" + site.Title,
		"TEL;type=CELL;type=VOICE;type=pref:" + site.Phone,
		"EMAIL;type=INTERNET;type=WORK:" + site.Email,
		"URL:" + site.LinkedIn,
		"URL:" + site.Behance,
		"NOTE:Modern Web Çözümleri ve Dijital Mimari Hizmetleri.",
		"END:VCARD",
	}
	return strings.Join(lines, "\n")
}
