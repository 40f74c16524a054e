package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildAnalysisPrompt creates the CV analysis prompt. The model is asked
// for the structured Turkish-keyed JSON shape the normalization engine
// understands.
func (pb *PromptBuilder) BuildAnalysisPrompt(cvText string) string {
	return fmt.Sprintf(`<GÖREV>
Aşağıdaki CV'yi detaylı olarak analiz et ve belirtilen formatta yapılandırılmış bilgileri çıkar.

ÖNEMLI NOT:
- Cevabınız yalnızca JSON formatında olmalıdır, ek açıklama veya yorum içermemelidir
- İngilizce CV olsa bile açıklamaları Türkçe yap, sadece isimler ve teknik terimler orijinal kalabilir
- Veriler gerçek bilgilere dayanmalıdır, uydurma bilgi ekleme
- Eksik bilgi varsa o alanı boş bırak
</GÖREV>

<CV>
%s
</CV>

<FORMAT>
{
  "kisisel_bilgiler": {
    "isim": "Kişinin tam adı",
    "email": "Email adresi",
    "telefon": "Telefon numarası",
    "adres": "Konum bilgisi",
    "linkedin": "LinkedIn bağlantısı varsa",
    "github": "GitHub bağlantısı varsa"
  },
  "ozet": "CV sahibinin kariyerinin kısa özeti",
  "beceriler": {
    "teknik": ["Teknik beceri"],
    "yazilim": ["Yazılım dili veya araç"],
    "metodolojiler": ["Metodoloji"],
    "profesyonel": ["Profesyonel beceri"]
  },
  "is_deneyimi": [
    {
      "pozisyon": "Pozisyon",
      "sirket": "Şirket adı",
      "tarih": "Çalışma dönemi",
      "baslangic": "Başlangıç yılı",
      "bitis": "Bitiş yılı, devam ediyorsa boş",
      "lokasyon": "Çalışma yeri",
      "gorevler": ["Görev"],
      "teknolojiler": ["Kullanılan teknoloji"],
      "basarilar": ["Başarı"]
    }
  ],
  "egitim": [
    {
      "okul": "Okul adı",
      "derece": "Lisans/Yüksek Lisans/Doktora",
      "alan": "Bölüm",
      "tarih": "Eğitim dönemi",
      "not_ortalamasi": "GPA belirtilmişse",
      "onemli_dersler": ["Önemli ders"]
    }
  ],
  "diller": ["Dil ve seviye"],
  "sertifikalar": ["Sertifika adı"],
  "profil_degerlendirmesi": {
    "guclu_yonler": ["Güçlü yön"],
    "gelistirilmesi_gereken_alanlar": ["Geliştirilmesi gereken alan"],
    "uygun_pozisyonlar": ["Uygun pozisyon"],
    "oneriler": ["Öneri"]
  }
}
</FORMAT>

Yukarıdaki formatı kesinlikle takip et ve sadece JSON formatında cevap ver. JSON dışında açıklama ekleme.`, cvText)
}
