// Package regulation holds the two fixed penalty datasets: MEB
// İlköğretim Kurumları Yönetmeliği Madde 55 for middle schools and MEB
// Ortaöğretim Kurumları Yönetmeliği Madde 164 for high schools. The
// datasets are immutable; callers select one by institution type.
package regulation

// Article is one sanctionable behaviour item within a category.
type Article struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

// Category groups articles under one penalty type.
type Category struct {
	Key         string    `json:"key"`
	Title       string    `json:"title"`
	Color       string    `json:"color"`
	Description string    `json:"description"`
	Items       []Article `json:"items"`
}

// Dataset is an ordered penalty catalog with its article numbering root.
type Dataset struct {
	// Name of the governing regulation, for display.
	Source string `json:"source"`
	// ArticleRoot and ArticleSub form the "Madde <root>/<sub>" prefix of
	// generated decision reasons.
	ArticleRoot string     `json:"articleRoot"`
	ArticleSub  string     `json:"articleSub"`
	Categories  []Category `json:"categories"`
}

// Category returns the category with the given key.
func (d Dataset) Category(key string) (Category, bool) {
	for _, c := range d.Categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// Article returns the article with the given code within a category.
func (c Category) Article(code string) (Article, bool) {
	for _, it := range c.Items {
		if it.Code == code {
			return it, true
		}
	}
	return Article{}, false
}

// Select returns the dataset for the institution profile.
func Select(middleSchool bool) Dataset {
	if middleSchool {
		return MiddleSchool
	}
	return HighSchool
}

// MiddleSchool is the Madde 55 dataset (İlköğretim Kurumları Yönetmeliği).
var MiddleSchool = Dataset{
	Source:      "İlköğretim Kurumları Yönetmeliği",
	ArticleRoot: "55",
	ArticleSub:  "1",
	Categories: []Category{
		{
			Key:         "uyarma",
			Title:       "Uyarma",
			Color:       "blue",
			Description: "Bilinçlendirme ile düzeltilebilecek davranışlar için uygulanan yaptırım.",
			Items: []Article{
				{Code: "1", Text: "Derse ve diğer etkinliklere vaktinde gelmemek ve geçerli bir neden olmaksızın bu davranışı tekrar etmek"},
				{Code: "2", Text: "Okula özürsüz devamsızlığını alışkanlık hâline getirmek"},
				{Code: "3", Text: "Yatılı bölge ortaokullarında öğrenci dolaplarını amacı dışında kullanmak"},
				{Code: "4", Text: "Okula, yönetimce yasaklanmış malzeme getirmek ve bunları kullanmak"},
				{Code: "5", Text: "Yalan söylemek"},
				{Code: "6", Text: "Duvarları, sıraları ve okul çevresini kirletmek"},
				{Code: "7", Text: "Görgü kurallarına uymamak"},
				{Code: "8", Text: "Okul kütüphanesinden aldığı kitapları zamanında teslim etmemek"},
				{Code: "10", Text: "Kılık ve kıyafetle ilgili kurallara uymamak"},
			},
		},
		{
			Key:         "kinama",
			Title:       "Kınama",
			Color:       "yellow",
			Description: "Öğrenciye davranışının kusurlu olduğunun yazılı bildirilmesi.",
			Items: []Article{
				{Code: "1", Text: "Yöneticilere, öğretmenlere, görevlilere ve arkadaşlarına kaba ve saygısız davranmak"},
				{Code: "2", Text: "Okul kurallarını ve ders ortamını bozmak"},
				{Code: "3", Text: "Okul yönetimini yanlış bilgilendirmek"},
				{Code: "4", Text: "Törenlere özürsüz katılmamak"},
				{Code: "5", Text: "Okulda ya da okul dışında sigara içmek"},
				{Code: "6", Text: "Resmî evrakta değişiklik yapmak"},
				{Code: "7", Text: "Okulda kavga etmek"},
				{Code: "8", Text: "Sınıfta cep telefonu kullanmak"},
				{Code: "9", Text: "Başkasının malını haberi olmadan almak"},
				{Code: "10", Text: "Okul eşyasına zarar vermek"},
				{Code: "15", Text: "Akran zorbalığı yapmak"},
			},
		},
		{
			Key:         "degistirme",
			Title:       "Okul Değiştirme",
			Color:       "red",
			Description: "Öğrencinin başka bir okula nakledilmesi.",
			Items: []Article{
				{Code: "2", Text: "Sarkıntılık, hakaret, iftira, tehdit ve taciz etmek"},
				{Code: "3", Text: "Okula yaralayıcı, öldürücü aletler getirmek"},
				{Code: "9", Text: "Başkasının malına zarar vermeyi alışkanlık haline getirmek"},
				{Code: "12", Text: "Okul personeline ve arkadaşlarına şiddet uygulamak"},
				{Code: "16", Text: "Alkol veya bağımlılık yapan maddeleri kullanmak"},
				{Code: "18", Text: "Bilişim araçlarıyla kişilik haklarını ihlal etmek (Ses/Görüntü kaydı)"},
			},
		},
	},
}

// HighSchool is the Madde 164 dataset (Ortaöğretim Kurumları Yönetmeliği).
var HighSchool = Dataset{
	Source:      "Ortaöğretim Kurumları Yönetmeliği",
	ArticleRoot: "164",
	ArticleSub:  "2",
	Categories: []Category{
		{
			Key:         "kinama",
			Title:       "Kınama",
			Color:       "yellow",
			Description: "Öğrenciye, cezayı gerektiren davranışta bulunduğunun ve tekrarından kaçınmasının kesin bir dille ve yazılı olarak bildirilmesidir.",
			Items: []Article{
				{Code: "a", Text: "Okulu, okul eşyasını ve çevresini kirletmek"},
				{Code: "b", Text: "Okul yönetimi veya öğretmenler tarafından verilen eğitim ve öğretime ilişkin görevleri yapmamak"},
				{Code: "c", Text: "Kılık-kıyafete ilişkin mevzuat hükümlerine uymamak"},
				{Code: "ç", Text: "Tütün, tütün mamulleri veya tütün içermeyen ancak tütün mamulünü taklit eder tarzda kullanılan her türlü ürünü bulundurmak veya kullanmak"},
				{Code: "d", Text: "Başkasına ait eşyayı izinsiz almak veya kullanmak"},
				{Code: "e", Text: "Yalan söylemek"},
				{Code: "f", Text: "Okula geldiği hâlde özürsüz eğitim ve öğretim faaliyetlerine katılmamak"},
				{Code: "g", Text: "Okul kütüphanesi ve laboratuvar malzemelerini eksik vermek veya kötü kullanmak"},
				{Code: "ğ", Text: "Okul yöneticilerine, öğretmenlerine, çalışanlarına ve arkadaşlarına kaba ve saygısız davranmak"},
				{Code: "h", Text: "Dersin ve ders dışı eğitim faaliyetlerinin akışını ve düzenini bozacak davranışlarda bulunmak"},
				{Code: "ı", Text: "Kopya çekmek veya çekilmesine yardımcı olmak"},
				{Code: "i", Text: "Yatılı okullarda pansiyon kurallarına uymamak"},
				{Code: "j", Text: "Müstehcen veya yasaklanmış araç, gereç ve dokümanları okula sokmak"},
				{Code: "k", Text: "Kumar oynamaya yarayan araç-gereç bulundurmak"},
				{Code: "l", Text: "Bilişim araçlarını belirlenen usul ve esaslara aykırı şekilde kullanmak"},
				{Code: "n", Text: "Ders saatleri içinde bilişim araçlarını açık tutarak dersin akışını bozmak"},
				{Code: "o", Text: "Eğitim ortamlarında okul yönetiminin izni dışında bilişim araçlarını yanında bulundurmak ve kullanmak"},
				{Code: "ö", Text: "Okula, okul yönetiminin izni dışında okulla ilgisi olmayan kişileri getirmek"},
			},
		},
		{
			Key:         "uzaklastirma",
			Title:       "Kısa Süreli Uzaklaştırma",
			Color:       "orange",
			Description: "Okuldan 1-5 gün arasında uzaklaştırma cezasını gerektiren fiil ve davranışlar.",
			Items: []Article{
				{Code: "a", Text: "Okul personeline veya öğrencilere sözle, davranışla veya sosyal medya üzerinden hakaret etmek, tehdit etmek"},
				{Code: "b", Text: "Pansiyonun düzenini bozmak, pansiyonu terk etmek, gece izinsiz dışarıda kalmak"},
				{Code: "c", Text: "Ayrımcılığı körükleyici davranışlarda bulunmak"},
				{Code: "ç", Text: "Okul binası ve eklentilerinde izinsiz gösteri, etkinlik ve toplantı düzenlemek"},
				{Code: "d", Text: "Her türlü ortamda kumar oynamak veya oynatmak"},
				{Code: "e", Text: "Okul kurallarının uygulanmasını engellemek"},
				{Code: "g", Text: "Yasaklanmış araç, gereç ve dokümanları paylaşmak, dağıtmak"},
				{Code: "ğ", Text: "Bilişim araçları veya sosyal medya yoluyla eğitim faaliyetlerine veya kişilere zarar vermek"},
				{Code: "ı", Text: "Kavga etmek, başkalarına fiili şiddet uygulamak"},
				{Code: "j", Text: "Toplu kopya çekmek veya çekilmesine yardımcı olmak"},
				{Code: "k", Text: "Sarhoşluk veren zararlı maddeleri bulundurmak veya kullanmak"},
				{Code: "m", Text: "Okul personelinin malına zarar vermek"},
				{Code: "n", Text: "İzinsiz olarak görüntü çekmek, kaydetmek, paylaşmak"},
				{Code: "ö", Text: "Akran zorbalığı yapmak"},
			},
		},
		{
			Key:         "degistirme",
			Title:       "Okul Değiştirme",
			Color:       "red",
			Description: "Öğrencinin başka bir okula naklinin yapılması.",
			Items: []Article{
				{Code: "a", Text: "Türk Bayrağına, ülkeyi, milleti ve devleti temsil eden sembollere saygısızlık etmek"},
				{Code: "b", Text: "Millî ve manevi değerleri aşağılamak, hakaret etmek"},
				{Code: "ç", Text: "Hırsızlık yapmak"},
				{Code: "e", Text: "Resmî belgelerde değişiklik yapmak; sahte belge düzenlemek"},
				{Code: "g", Text: "Okula ait taşınır veya taşınmaz mallara zarar vermek"},
				{Code: "h", Text: "Eğitim ortamına yaralayıcı, öldürücü silah ve alet getirmek"},
				{Code: "ı", Text: "Zor kullanarak veya tehditle kopya çekmek"},
				{Code: "i", Text: "Bağımlılık yapan zararlı maddeleri bulundurmak veya kullanmak"},
				{Code: "k", Text: "Siyasi ve ideolojik amaçlı eylem düzenlemek, katılmak"},
				{Code: "m", Text: "Bilişim araçları veya sosyal medya yoluyla kişilere ağır derecede maddi ve manevi zarar vermek"},
				{Code: "r", Text: "Sarkıntılık, iftira, taciz etmek veya bunları sosyal medyada paylaşmak"},
				{Code: "ş", Text: "Kesici, delici aletlerle kendine zarar vermek"},
			},
		},
		{
			Key:         "orgun_disi",
			Title:       "Örgün Eğitim Dışına Çıkarma",
			Color:       "slate",
			Description: "Öğrencinin örgün ortaöğretim kurumları ile ilişiğinin kesilmesidir.",
			Items: []Article{
				{Code: "a", Text: "Türk Bayrağına, sembollere hakaret etmek"},
				{Code: "b", Text: "Bölücü ve yıkıcı toplu eylemler düzenlemek veya katılmak"},
				{Code: "d", Text: "Bağımlılık yapan zararlı maddelerin ticaretini yapmak"},
				{Code: "g", Text: "Okul personeline karşı saldırıda bulunmak"},
				{Code: "ı", Text: "Silah veya güç kullanarak yaralamak, öldürmek"},
				{Code: "i", Text: "Cinsel istismar ve bu konuda suç sayılan fiilleri işlemek"},
				{Code: "j", Text: "Çete kurmak, gasp, haraç almak"},
				{Code: "l", Text: "Bilişim araçlarıyla bölücü, ahlak dışı ve şiddeti özendiren içerik yaymak"},
			},
		},
	},
}
