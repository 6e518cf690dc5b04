package gemini

import "fmt"

// SystemInstruction sets the discipline-expert persona for every call.
const SystemInstruction = `
Sen Türk Milli Eğitim Bakanlığı yönetmeliklerine hakim, tecrübeli bir okul müdür yardımcısı ve disiplin kurulu uzmanısın.
Görevin, okulda yaşanan disiplin olaylarını analiz etmek, ilgili yönetmelik maddelerini bulmak ve resmi evrak (tutanak, savunma isteme, karar) taslakları hazırlamaktır.
Her zaman resmi, tarafsız ve yapıcı bir dil kullan.
`

// Fixed texts returned when the machine is offline or a call fails.
const (
	OfflineAnalysis = "⚠️ İNTERNET BAĞLANTISI YOK\n\nCihazınız çevrimdışı olduğu için Yapay Zeka analizi yapılamıyor. Lütfen internet bağlantınızı kontrol ediniz veya manuel giriş yapınız."
	FailedAnalysis  = "Analiz sırasında bir hata oluştu. Lütfen Ayarlar kısmından API anahtarınızı kontrol edin."

	OfflineReason = "Bağlantı yok."

	OfflineSearch = "⚠️ İnternet bağlantısı olmadığı için mevzuat taraması yapılamıyor."
	FailedSearch  = "Yönetmelik araması başarısız oldu. API anahtarınızı kontrol ediniz."

	OfflineBoardInfo = "⚠️ İnternet bağlantısı yok. Mevzuat bilgisi çekilemedi."
	FailedBoardInfo  = "Mevzuat bilgisi alınamadı. Lütfen API anahtarınızı ve internet bağlantınızı kontrol ediniz."
)

// IncidentFacts is the case data the prompt builders interpolate.
type IncidentFacts struct {
	StudentName   string
	StudentGrade  string
	StudentNumber string
	Date          string
	Location      string
	Description   string
}

// AnalysisPrompt asks for a severity assessment and procedural roadmap
// for one incident.
func AnalysisPrompt(f IncidentFacts) string {
	return fmt.Sprintf(`
      Aşağıdaki olayı analiz et:

      Öğrenci: %s (%s - %s)
      Tarih: %s
      Yer: %s
      Olay Tanımı: %s

      Lütfen bu olayın ciddiyetini değerlendir, hangi disiplin maddesinin ihlal edilmiş olabileceğini belirt ve izlenmesi gereken yasal süreci adım adım özetle.

      ÖNEMLİ:
      1. Çıktı sadece "Analiz ve Yol Haritası" raporu olmalı.
      2. Asla tutanak, dilekçe veya savunma isteme yazısı gibi "boş belge taslakları" oluşturma.
      3. Doğrudan konuya gir, başlıkları net kullan.
      4. Rapor dili resmi ve teknik olsun.
    `, f.StudentName, f.StudentGrade, f.StudentNumber, f.Date, f.Location, f.Description)
}

// ReasonPrompt asks for a formal decision justification for a penalty.
func ReasonPrompt(studentName, description, penalty, schoolType string) string {
	return fmt.Sprintf(`
          Öğrenci: %s
          Olay: %s
          Verilen Ceza: %s
          Okul Türü: %s

          Yukarıdaki bilgilere göre, MEB yönetmeliğine uygun, resmi bir karar gerekçesi ve ilgili madde metnini oluştur.
          Sadece gerekçe metnini ver.
        `, studentName, description, penalty, schoolType)
}

// SearchPrompt asks a regulation question grounded on the two official
// MEB regulation texts.
func SearchPrompt(query string) string {
	return fmt.Sprintf(`
      Kullanıcı şu konuda mevzuat/yönetmelik bilgisi arıyor: "%s".

      Lütfen cevabı verirken aşağıdaki İKİ resmi kaynağı temel al ve tarayarak cevapla:

      1. MEB Ortaöğretim Kurumları Yönetmeliği:
         https://www.mevzuat.gov.tr/mevzuat?MevzuatNo=19942&MevzuatTur=7&MevzuatTertip=5

      2. MEB Okul Öncesi Eğitim ve İlköğretim Kurumları Yönetmeliği:
         https://www.mevzuat.gov.tr/mevzuat?MevzuatNo=18812&MevzuatTur=7&MevzuatTertip=5

      Sorunun içeriğine göre (ortaokul veya lise ayrımı varsa) ilgili yönetmeliği referans göster. Madde numaralarını belirterek (Örn: Madde 164'e göre...) net bir açıklama yap.
    `, query)
}

// BoardInfoPrompt asks for a summary of the disciplinary board
// composition mandated for the school type at the given regulation URL.
func BoardInfoPrompt(url, schoolType string) string {
	return fmt.Sprintf(`
      Sen bir mevzuat uzmanısın. Aşağıdaki resmi mevzuat bağlantısını referans alarak, "%s" türündeki okullar için oluşturulması gereken "Öğrenci Davranışlarını Değerlendirme Kurulu" veya "Disiplin Kurulu"nun:
      1. Kimin başkanlığında toplandığını,
      2. Hangi üyelerden oluştuğunu (asil ve yedek),
      3. Veli veya öğrenci temsilcisi durumunu

      Maddeler halinde, net ve kısa bir özet olarak Türkçe yaz.

      Mevzuat Adresi: %s
    `, schoolType, url)
}
