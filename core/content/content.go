// Package content - Static site content
// The portfolio, service list, and contact links as typed in-code
// tables.
package content

// Project is a portfolio showcase entry
type Project struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Link        string `json:"link"`
}

// Service is an offered agency service
type Service struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// SocialLinks are the agency's contact coordinates
type SocialLinks struct {
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
	Behance  string `json:"behance"`
	GitHub   string `json:"github"`
	Phone    string `json:"phone"`
}

// PortfolioProjects returns the showcase entries in display order
func PortfolioProjects() []Project {
	return []Project{
		{
			ID:          1,
			Title:       "NOIR | Digital Runway",
			Category:    "Lüks Moda Deneyimi",
			Description: "Sadece kıyafet satmayan, bir yaşam tarzı sunan dijital podyum. Next.js üzerinde kurgulanan akıcı WebGL geçişleri ve editoryal tasarım diliyle, ziyaretçiyi bir moda dergisinin içinde hissettiren e-ticaret deneyimi.",
			ImageURL:    "https://images.unsplash.com/photo-1483985988355-763728e1935b?q=80&w=2070&auto=format&fit=crop",
		},
		{
			ID:          2,
			Title:       "Retansiyon Döngüsü",
			Category:    "Email Pazarlama Otomasyonu",
			Description: "Kullanıcı davranışlarına göre tetiklenen, %65 açılma oranına sahip dinamik email serileri. Klaviyo ve özel HTML şablonları ile kurgulandı.",
			ImageURL:    "https://images.unsplash.com/photo-1563986768609-322da13575f3?q=80&w=1470&auto=format&fit=crop",
		},
		{
			ID:          3,
			Title:       "Finansal Dashboard",
			Category:    "SaaS UI/UX",
			Description: "Karmaşık finansal verileri basitleştiren, karanlık mod (Dark Mode) odaklı ve mikro-animasyonlarla güçlendirilmiş yönetim paneli.",
			ImageURL:    "https://images.unsplash.com/photo-1551288049-bebda4e38f71?q=80&w=2070&auto=format&fit=crop",
		},
		{
			ID:          4,
			Title:       "Mimarhane",
			Category:    "Kurumsal Web",
			Description: "Mimarlık ofisleri için yatay akışlı, fotoğraf odaklı vitrin sitesi. İçerisinde müşteriler için özel giriş paneli barındırır.",
			ImageURL:    "https://images.unsplash.com/photo-1600607686527-6fb886090705?q=80&w=2000&auto=format&fit=crop",
		},
		{
			ID:          5,
			Title:       "Şantiye Günlüğü",
			Category:    "Mimari Proje Yönetimi",
			Description: "Mimarların müşterilerine şeffaf bir süreç sunmasını sağlayan SaaS paneli. Canlı timeline, bütçe takibi, hava durumu ve saha fotoğrafları tek ekranda.",
			ImageURL:    "https://images.unsplash.com/photo-1503387762-592deb58ef4e?q=80&w=2000&auto=format&fit=crop",
		},
		{
			ID:          6,
			Title:       "Gusto",
			Category:    "Gastronomi & Rezervasyon",
			Description: "Fine dining restoranlar için atmosferi dijitale taşıyan, menü odaklı ve entegre rezervasyon sistemli web deneyimi.",
			ImageURL:    "https://images.unsplash.com/photo-1514362545857-3bc16c4c7d1b?q=80&w=2000&auto=format&fit=crop",
		},
	}
}

// Services returns the agency service list
func Services() []Service {
	return []Service{
		{ID: 1, Title: "Web Geliştirme", Description: "Next.js ve React ile ultra hızlı, SEO uyumlu ve ölçeklenebilir dijital varlıklar.", Icon: "code"},
		{ID: 2, Title: "Email Stratejisi", Description: "Spam kutusuna düşmeyen, satış odaklı ve kişiselleştirilmiş email hunileri.", Icon: "mail"},
		{ID: 3, Title: "UX/UI Tasarım", Description: "Kullanıcıyı yormayan, amacına direkt ulaştıran estetik arayüzler.", Icon: "pen"},
	}
}

// DefaultSocialLinks returns the agency contact coordinates
func DefaultSocialLinks() SocialLinks {
	return SocialLinks{
		Email:    "yz.terzioglu@hotmail.com",
		LinkedIn: "https://www.linkedin.com/in/ziyabey",
		Behance:  "https://www.behance.net/ziyaterzi",
		GitHub:   "https://github.com",
		Phone:    "05302149000",
	}
}
