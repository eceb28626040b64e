// Package proposal - Line-item detail copy
package proposal

import "strings"

// detail copy keyed on the summary line titles
var detailByKeyword = []struct {
	keyword string
	detail  string
}{
	{"Ölçek", "Next.js 14 altyapısı, SSR/CSR hibrit mimari, Global CDN dağıtımı."},
	{"Altyapı", "Hostinger Enterprise / Google Cloud Premium Partner garantisi ile %99.9 Uptime."},
	{"Yönetim", "İçerik girişleri, görsel optimizasyonları ve CMS entegrasyonu."},
	{"Tasarım", "Figma prototipleme, mobil öncelikli responsive kodlama, marka renk paleti uyumu."},
	{"Modüller", "Güvenlik sertifikaları (SSL), veritabanı kurulumu ve API bağlantıları."},
	{"Kanallar", "Aylık performans raporlaması, ROI takibi ve kitle optimizasyonu."},
	{"Sosyal", "İçerik takvimi oluşturma, video kurgu ve topluluk yönetimi."},
}

// DetailFor returns the expanded service description for a summary
// line title
func DetailFor(key string) string {
	for _, d := range detailByKeyword {
		if strings.Contains(key, d.keyword) {
			return d.detail
		}
	}
	return "Profesyonel dijital hizmet standardı."
}
