package render

// Region templates. Each renders one display region independently; the
// data may be nil or empty, in which case the localized placeholder is
// emitted instead of omitting the region.

const identityTmpl = `{{if . -}}
<h3>{{orElse .Name "İsim bulunamadı"}}</h3>
<p><i class="fas fa-envelope"></i> {{orElse .Email "E-posta bulunamadı"}}</p>
<p><i class="fas fa-phone"></i> {{orElse .Phone "Telefon bulunamadı"}}</p>
<p><i class="fas fa-map-marker-alt"></i> {{orElse .Address "Adres bulunamadı"}}</p>
<p><i class="fab fa-linkedin"></i> {{orElse .LinkedIn "LinkedIn bulunamadı"}}</p>
{{- if .GitHub}}
<p><i class="fab fa-github"></i> {{.GitHub}}</p>
{{- end}}
{{- else -}}
<p>Kişisel bilgi bulunamadı.</p>
{{- end}}`

const summaryTmpl = `{{if . -}}
<p>{{.}}</p>
{{- else -}}
<p>Özet bilgi bulunamadı.</p>
{{- end}}`

const skillsTmpl = `<h3>Beceriler</h3>
{{- if not . -}}
<p>Beceri bilgisi bulunamadı.</p>
{{- else if .Flat -}}
<ul>{{range .Flat}}<li>{{.}}</li>{{end}}</ul>
{{- else if .Groups -}}
{{range .Groups}}<div class="skill-category"><h4>{{.Name}}</h4><ul>{{range .Items}}<li>{{.}}</li>{{end}}</ul></div>{{end}}
{{- else if .Text -}}
<p>{{.Text}}</p>
{{- else -}}
<p>Beceri bilgisi bulunamadı.</p>
{{- end}}`

const experienceTmpl = `<h3>İş Deneyimi</h3>
{{- if not . -}}
<p>İş deneyimi bilgisi bulunamadı.</p>
{{- else -}}
{{range . -}}
{{if .Raw -}}
<p>{{.Raw}}</p>
{{- else -}}
<div class="experience-item">
<div class="experience-header">
<h4>{{orElse .Position "Pozisyon Belirtilmemiş"}}</h4>
<h5>{{orElse .Company "Şirket Belirtilmemiş"}}</h5>
<span class="date-range">{{.DateRange}}</span>
{{- if .Location}}<span class="location">{{.Location}}</span>{{end}}
</div>
<div class="experience-details">
{{- if .Description}}<p>{{.Description}}</p>{{end}}
{{- if .Tasks}}<h5>Görevler</h5><ul>{{range .Tasks}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{- if .Technologies}}<h5>Kullanılan Teknolojiler</h5><div class="tech-tags">{{range .Technologies}}<span class="tech-tag">{{.}}</span>{{end}}</div>{{end}}
{{- if .Achievements}}<h5>Başarılar</h5><ul>{{range .Achievements}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
</div>
{{- end}}
{{- end}}
{{- end}}`

const educationTmpl = `<h3>Eğitim</h3>
{{- if not . -}}
<p>Eğitim bilgisi bulunamadı.</p>
{{- else -}}
{{range . -}}
{{if .Raw -}}
<p>{{.Raw}}</p>
{{- else -}}
<div class="education-item">
<h4>{{orElse .Institution "Kurum Belirtilmemiş"}}</h4>
<h5>{{orElse .Degree "N/A"}}{{if .Field}}, {{.Field}}{{end}}</h5>
<span class="date-range">{{.DateRange}}</span>
{{- if .GPA}}<p>Not Ortalaması: {{.GPA}}</p>{{end}}
{{- if .Courses}}<h5>Önemli Dersler</h5><ul>{{range .Courses}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{- end}}
{{- end}}
{{- end}}`

const languagesTmpl = `<h3>Dil Becerileri</h3>
{{- if . -}}
<ul>{{range .}}<li>{{.}}</li>{{end}}</ul>
{{- else -}}
<p>Dil becerisi bilgisi bulunamadı.</p>
{{- end}}`

const certificatesTmpl = `<h3>Sertifikalar</h3>
{{- if . -}}
<ul>{{range .}}<li>{{.}}</li>{{end}}</ul>
{{- else -}}
<p>Sertifika bilgisi bulunamadı.</p>
{{- end}}`

// The four evaluation lists share one template; an absent evaluation
// block renders the region-local no-data item.
const evalListTmpl = `{{if . -}}
{{range .}}<li>{{.}}</li>{{end}}
{{- else -}}
<li>Değerlendirme verisi bulunamadı.</li>
{{- end}}`

const errorBannerTmpl = `<div class="error-message">
<h3>{{if .Partial}}📝 Analiz Sonuçları (Hata Düzeltmesi ile){{else}}🔴 Analiz Hatası{{end}}</h3>
<p>{{.Message}}</p>
{{- if .RawText}}
<div class="raw-response"><h4>{{if .Partial}}Model Yanıtı:{{else}}Detaylar:{{end}}</h4><pre>{{.RawText}}</pre></div>
{{- end}}
{{- if .Partial}}
<p class="warning-note">Not: Analiz tam olarak yapılamadı, bazı bilgiler eksik olabilir.</p>
{{- else}}
<p>Tekrar deneyiniz veya farklı bir model seçiniz.</p>
{{- end}}
</div>`

const overviewTmpl = `<div class="cv-summary">
<div class="summary-item"><span class="summary-label">Toplam Deneyim</span><span class="summary-value">{{.TotalYearsLabel}}</span></div>
<div class="summary-item"><span class="summary-label">Eğitim</span><span class="summary-value">{{.LatestDegree}}</span></div>
<div class="summary-item"><span class="summary-label">Beceri Sayısı</span><span class="summary-value">{{.SkillCount}}</span></div>
<div class="summary-item"><span class="summary-label">Eşleşme Puanı</span><span class="summary-value{{if .Tier}} score-{{.Tier}}{{end}}">{{.MatchLabel}}</span></div>
</div>`
