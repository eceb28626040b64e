// Package catalog - Static step template
package catalog

import (
	"github.com/ziyabeey1-ai/mysite/core/types"
)

// Infrastructure option ids, referenced by the scale derivation
const (
	InfraHostinger = "hostinger_pro"
	InfraGoogle    = "google_cloud"
	InfraDedicated = "dedicated"
)

// Project scale option ids
const (
	ScaleLanding   = "landing"
	ScaleCorporate = "corporate"
	ScaleEcommerce = "ecommerce"
	ScaleSaaS      = "saas"
)

var template = Catalog{Steps: []Step{
	{
		ID:    types.StepScale,
		Title: "Proje Ölçeği",
		Desc:  "Dijital yapının temel mimarisi ne kadar geniş olacak?",
		Kind:  types.SelectSingle,
		Options: []Option{
			{ID: ScaleLanding, Label: "Tek Sayfa (Landing)", SubLabel: "Yüksek dönüşüm odaklı tanıtım.", Price: types.Lira(15000)},
			{ID: ScaleCorporate, Label: "Kurumsal Web", SubLabel: "5-10 sayfa, hizmet ve blog yapısı.", Price: types.Lira(35000)},
			{ID: ScaleEcommerce, Label: "E-Ticaret", SubLabel: "Ürün, sepet ve ödeme altyapısı.", Price: types.Lira(65000)},
			{ID: ScaleSaaS, Label: "Web Uygulaması / SaaS", SubLabel: "Kullanıcı girişi, dashboard, veri işleme.", Price: types.Lira(90000)},
		},
	},
	{
		ID:    types.StepInfra,
		Title: "Altyapı & Güç (Hosting)",
		Desc:  "Performans ve sunucu maliyetleri.",
		Kind:  types.SelectSingle,
		Options: []Option{
			{ID: InfraHostinger, Label: "Hostinger Cloud", SubLabel: "Başlangıç ve orta ölçek için ideal.", Price: types.Lira(0), MonthlyPrice: monthly(350)},
			{ID: InfraGoogle, Label: "Google Cloud Platform", SubLabel: "Otomatik ölçeklenen Kubernetes mimari.", Price: types.Lira(15000), MonthlyPrice: monthly(800)},
			{ID: InfraDedicated, Label: "Özel Sunucu (Dedicated)", SubLabel: "Size özel fiziksel kaynaklar.", Price: types.Lira(25000), MonthlyPrice: monthly(1500)},
		},
	},
	{
		ID:    types.StepManagement,
		Title: "İçerik Yönetimi",
		Desc:  "Sitenizi ne sıklıkla ve nasıl güncelleyeceksiniz?",
		Kind:  types.SelectSingle,
		Options: []Option{
			{ID: "static", Label: "Statik Kod", SubLabel: "Sadece geliştirici günceller (Maksimum Hız).", Price: types.Lira(0)},
			{ID: "headless", Label: "Headless CMS", SubLabel: "Modern yönetim paneli (Sanity/Strapi).", Price: types.Lira(15000)},
			{ID: "custom", Label: "Özel Yönetim Paneli", SubLabel: "Size özel yazılmış admin paneli.", Price: types.Lira(40000)},
		},
	},
	{
		ID:    types.StepFunction,
		Title: "Fonksiyonel Modüller",
		Desc:  "Sisteme hangi yetenekleri kazandıralım?",
		Kind:  types.SelectMulti,
		Options: []Option{
			{ID: "auth", Label: "Üyelik Sistemi", SubLabel: "Giriş/Kayıt ve Profil yönetimi.", Price: types.Lira(12000)},
			{ID: "payment", Label: "Ödeme Altyapısı", SubLabel: "Iyzico/Stripe entegrasyonu.", Price: types.Lira(8000)},
			{ID: "search", Label: "Gelişmiş Arama", SubLabel: "ElasticSearch / Algolia.", Price: types.Lira(6000)},
			{ID: "booking", Label: "Rezervasyon / Takvim", SubLabel: "Randevu alma modülü.", Price: types.Lira(10000)},
		},
	},
	{
		ID:    types.StepDesign,
		Title: "Tasarım Dili",
		Desc:  "Kullanıcı arayüzü (UI) hangi seviyede olmalı?",
		Kind:  types.SelectSingle,
		Options: []Option{
			{ID: "clean", Label: "Temiz & Kurumsal", SubLabel: "Standart, güven veren, beyaz ağırlıklı.", Price: types.Lira(5000)},
			{ID: "dark", Label: "Dark & Modern", SubLabel: "Karanlık mod, neon detaylar, SaaS havası.", Price: types.Lira(8000)},
			{ID: "luxury", Label: "High-End & Animasyonlu", SubLabel: "WebGL, scrollytelling, mikro-interaksiyonlar.", Price: types.Lira(25000)},
		},
	},
	{
		ID:    types.StepMarketing,
		Title: "Dijital Pazarlama",
		Desc:  "Büyüme stratejileri (Aylık Hizmet).",
		Kind:  types.SelectMulti,
		Options: []Option{
			{ID: "google_ads", Label: "Google Ads Yönetimi", SubLabel: "Arama ağı ve görüntülü reklamlar.", Price: types.Lira(0), MonthlyPrice: monthly(15000)},
			{ID: "meta_ads", Label: "Meta (FB/Insta) Ads", SubLabel: "Hedefli sosyal medya reklamları.", Price: types.Lira(0), MonthlyPrice: monthly(12500)},
			{ID: "email_mkt", Label: "Email Pazarlama", SubLabel: "Klaviyo otomasyonları ve bültenler.", Price: types.Lira(5000), MonthlyPrice: monthly(8000)},
			{ID: "influencer", Label: "Influencer Marketing", SubLabel: "Mikro/Makro influencer iş birlikleri.", Price: types.Lira(10000), MonthlyPrice: monthly(25000)},
		},
	},
	{
		ID:    types.StepSocial,
		Title: "Sosyal Medya",
		Desc:  "Hangi platformlarda aktif olacağız? (Aylık Hizmet).",
		Kind:  types.SelectMulti,
		Options: []Option{
			{ID: "instagram", Label: "Instagram / Reels", SubLabel: "12 Post + 4 Reels / Ay.", Price: types.Lira(0), MonthlyPrice: monthly(20000)},
			{ID: "linkedin", Label: "LinkedIn (B2B)", SubLabel: "Kurumsal itibar yönetimi.", Price: types.Lira(0), MonthlyPrice: monthly(15000)},
			{ID: "tiktok", Label: "TikTok / YouTube Shorts", SubLabel: "Viral video içerik üretimi.", Price: types.Lira(0), MonthlyPrice: monthly(25000)},
			{ID: "youtube", Label: "YouTube Kanalı", SubLabel: "Video prodüksiyon ve SEO.", Price: types.Lira(15000), MonthlyPrice: monthly(35000)},
		},
	},
	{
		ID:    types.StepAddons,
		Title: "Güçlendiriciler",
		Desc:  "Teknik performans ve analiz eklentileri.",
		Kind:  types.SelectMulti,
		Options: []Option{
			{ID: "seo_pro", Label: "SEO Pro Paketi", SubLabel: "Teknik SEO, Schema, Sitemap.", Price: types.Lira(7500)},
			{ID: "ai", Label: "Yapay Zeka Entegrasyonu", SubLabel: "OpenAI/Gemini destekli içerik veya bot.", Price: types.Lira(20000)},
			{ID: "analytics", Label: "İleri Analitik", SubLabel: "Google TM, Hotjar, Event takibi.", Price: types.Lira(5000)},
		},
	},
}}

// Template returns a fresh copy of the static step template with base
// infrastructure rates
func Template() Catalog {
	return template.clone()
}
