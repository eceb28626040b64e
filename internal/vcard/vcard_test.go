// Package vcard_test
package vcard_test

import (
	"strings"
	"testing"

	"github.com/ziyabeey1-ai/mysite/internal/config"
	"github.com/ziyabeey1-ai/mysite/internal/vcard"
)

func TestRender(t *testing.T) {
	site := config.Default().Site
	card := vcard.Render(site)

	if !strings.HasPrefix(card, "BEGIN:VCARD\nVERSION:3.0\n") {
		t.Errorf("card does not open correctly:\n%s", card)
	}
	if !strings.HasSuffix(card, "END:VCARD") {
		t.Errorf("card does not close correctly:\n%s", card)
	}

	for _, want := range []string{
		"N:Terzioğlu;Yusuf;Ziya;;",
		"FN:Yusuf Ziya Terzioğlu",
		"ORG:YZT Digital",
		"TEL;type=CELL;type=VOICE;type=pref:" + site.Phone,
		"EMAIL;type=INTERNET;type=WORK:" + site.Email,
		"URL:" + site.LinkedIn,
		"URL:" + site.Behance,
	} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q:\n%s", want, card)
		}
	}
}

func TestRenderShortName(t *testing.T) {
	site := config.SiteConfig{Owner: "Cher"}
	card := vcard.Render(site)
	if !strings.Contains(card, "N:Cher;Cher;;;") {
		t.Errorf("single-word owner rendered badly:\n%s", card)
	}
}

func TestFileName(t *testing.T) {
	if got := vcard.FileName(); !strings.HasSuffix(got, ".vcf") {
		t.Errorf("file name %q is not a .vcf", got)
	}
}
