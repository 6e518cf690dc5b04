package document

// Template bodies. The inline styles are part of the printed layout and
// are kept as-is; each body is a full A4 page fragment rendered into
// the preview container.

var templateBodies = map[Type]string{

	TypeStudentSummons: `
        {{.Header}}
        <br>
        <div style="display:flex; justify-content:space-between; margin-bottom:10px;">
             <div><b>Sayı</b> : ...<br><b>Konu</b> : Çağrı Pusulası</div>
             <div>{{.Today}}</div>
        </div>
        <br><br>
        <div style="text-align:center; font-weight:bold; font-size:12pt; text-decoration:underline; margin-bottom:20px;">ÖĞRENCİ ÇAĞRI PUSULASI</div>
        <br>
        <div style="margin-bottom:20px;">
            <b>Sayın {{.S.Name}},</b><br>
            {{.S.Grade}} Sınıfı / {{.S.Number}} Nolu Öğrencisi
        </div>
        <p style="text-indent:30px; text-align:justify; line-height:1.6;">
           {{.I.Date}} tarihinde {{.I.Location}} yerinde meydana gelen "{{.I.Title}}" olayı ile ilgili olarak, {{if .IsSuspect}}Okul Disiplin Kurulunda görüşülecek olan disiplin dosyanızla ilgili <b>savunmanızı vermek üzere</b>{{else}}Okul Disiplin Kurulunda görüşülecek olan bir olayla ilgili <b>görgü tanığı olarak bilginize başvurulmak üzere</b>{{end}} aşağıda belirtilen gün ve saatte Kurul Toplantı Salonunda hazır bulunmanız gerekmektedir.
        </p>
        <p style="text-indent:30px; text-align:justify; line-height:1.6;">
           Belirtilen gün ve saatte gelmediğiniz takdirde; {{if .IsSuspect}}savunma hakkınızdan vazgeçmiş sayılacağınızı ve dosyanızın mevcut bilgi ve belgelere göre karara bağlanacağını{{else}}ifadenize başvurulamayacağını{{end}} bilmenizi rica ederim.
        </p>
        <br>
        <table style="width:100%; border:1px solid black; margin-top:20px; font-size:10pt;">
            <tr>
                <td style="border:1px solid black; padding:8px; font-weight:bold; width:30%; background-color:#f9f9f9;">Toplantı Tarihi</td>
                <td style="border:1px solid black; padding:8px;">{{.M.Date}}</td>
            </tr>
            <tr>
                <td style="border:1px solid black; padding:8px; font-weight:bold; background-color:#f9f9f9;">Toplantı Saati</td>
                <td style="border:1px solid black; padding:8px;">{{.M.Time}}</td>
            </tr>
            <tr>
                <td style="border:1px solid black; padding:8px; font-weight:bold; background-color:#f9f9f9;">Toplantı Yeri</td>
                <td style="border:1px solid black; padding:8px;">{{.M.Location}}</td>
            </tr>
        </table>

        <div style="text-align:right; margin-top:40px;">
            <b>{{.Inst.ManagerName}}</b><br>Okul Müdürü
        </div>

        <div style="margin-top:50px; border-top:1px dashed black; padding-top:10px; font-size:9pt;">
            <div style="text-align:center; margin-bottom:10px;"><b>TEBLİĞ - TEBELLÜĞ BELGESİ</b></div>
            <p>Yukarıdaki çağrı pusulasını elden teslim aldım. .../.../20...</p>
            <div style="display:flex; justify-content:space-between; margin-top:20px;">
                <div style="text-align:center;">
                    <b>Tebliğ Eden</b><br>
                    (İmza)<br><br>
                    ...................................<br>
                    Müdür Yardımcısı
                </div>
                <div style="text-align:center;">
                    <b>Tebellüğ Eden (Öğrenci)</b><br>
                    (İmza)<br><br>
                    <b>{{.S.Name}}</b>
                </div>
            </div>
        </div>
        `,

	TypeEK10Decision: `
        {{.Header}}
        <div style="text-align:center; font-weight:bold; margin-bottom:5px; margin-top:5px; border:1px solid black; padding:3px; font-size:10pt;">ÖĞRENCİ DAVRANIŞLARINI DEĞERLENDİRME KURULU KARARI<br><span style="font-weight:normal;">(Değişik: 02.05.2006/26156 RG)</span> <span style="float:right;">EK - 10</span></div>
        <table style="width:100%; border-collapse:collapse; border:1px solid black; font-size:9pt; page-break-inside:auto;">
            <tr>
                <td style="border:1px solid black; padding:3px; font-weight:bold; width:15%;">Karar No</td>
                <td style="border:1px solid black; padding:3px; width:35%;">: {{.D.No}}</td>
                <td style="border:1px solid black; padding:3px; font-weight:bold; width:15%;">Karar Tarihi</td>
                <td style="border:1px solid black; padding:3px; width:35%;">: {{.D.Date}}</td>
            </tr>
            <tr>
                <td style="border:1px solid black; padding:3px; font-weight:bold;">Öğrencinin</td>
                <td colspan="3" style="border:1px solid black; padding:0;">
                   <table style="width:100%; border-collapse:collapse; border:none;">
                       <tr><td style="padding:3px; border-bottom:1px solid black;">Adı ve Soyadı</td><td style="padding:3px; border-bottom:1px solid black;">: {{.S.Name}}</td></tr>
                       <tr><td style="padding:3px; border-bottom:1px solid black;">Sınıfı - No</td><td style="padding:3px; border-bottom:1px solid black;">: {{.S.Grade}} - {{.S.Number}} <span style="float:right;">Doğum Tarihi : {{.S.DOB}}</span></td></tr>
                       <tr><td style="padding:3px; border-bottom:1px solid black;">Yarı Yıl</td><td style="padding:3px; border-bottom:1px solid black;">: ... <span style="float:right;">Cinsiyeti : ...</span></td></tr>
                       <tr><td style="padding:3px;">Sağlık durumu</td><td style="padding:3px;">: ... <span style="float:right;">Parasız yatılı ya da gündüzlü olduğu : ...</span></td></tr>
                   </table>
                </td>
            </tr>
            <tr>
                <td style="border:1px solid black; padding:3px; font-weight:bold;">Anne-Babanın</td>
                <td colspan="3" style="border:1px solid black; padding:0;">
                     <table style="width:100%; border-collapse:collapse; border:none; text-align:center;">
                        <tr>
                            <td style="border-right:1px solid black; border-bottom:1px solid black; width:50%; font-weight:bold;">Anne</td>
                            <td style="border-bottom:1px solid black; font-weight:bold;">Baba</td>
                        </tr>
                        <tr>
                            <td style="border-right:1px solid black; padding:3px;">...</td>
                            <td style="padding:3px;">{{.S.ParentFirst}}</td>
                        </tr>
                     </table>
                </td>
            </tr>
             <tr>
                <td colspan="4" style="border:1px solid black; padding:3px;">
                   Yaşı : ......................  Hayatta mı? ( )Evet ( )Hayır ............ ( )Evet ( )Hayır<br>
                   Öz mü? ( )Evet ( )Hayır ............ ( )Evet ( )Hayır<br>
                   Birlikte mi? ( )Evet ( )Hayır ............ ( )Evet ( )Hayır
                </td>
            </tr>
            <tr>
                <td style="border:1px solid black; padding:3px;">Ailenin ekonomik durumu</td>
                <td colspan="3" style="border:1px solid black; padding:3px;">: </td>
            </tr>
             <tr>
                <td style="border:1px solid black; padding:3px;">Kardeş sayısı ve yaşları</td>
                <td colspan="3" style="border:1px solid black; padding:3px;">: </td>
            </tr>
            <tr>
                <td style="border:1px solid black; padding:3px;">Ailesinin oturduğu yer ve açık adresi</td>
                <td colspan="3" style="border:1px solid black; padding:3px;">: {{.S.Address}}</td>
            </tr>
            <tr>
                <td style="border:1px solid black; padding:3px;">Şimdiye kadar aldığı yaptırımlar</td>
                <td colspan="3" style="border:1px solid black; padding:3px;">: </td>
            </tr>
            <tr>
                <td style="border:1px solid black; padding:3px;">Yaptırımı gerektiren davranışın yer ve tarihi</td>
                <td colspan="3" style="border:1px solid black; padding:3px;">: {{.I.Location}} / {{.I.Date}}</td>
            </tr>
            <tr>
                <td style="border:1px solid black; padding:3px;">Yaptırımı gerektiren davranışın çeşidi</td>
                <td colspan="3" style="border:1px solid black; padding:3px;">: {{.I.Title}}</td>
            </tr>
            <tr>
                <td style="border:1px solid black; padding:3px;">Yaptırımı gerektiren davranışın nedeni</td>
                <td colspan="3" style="border:1px solid black; padding:3px;">: </td>
            </tr>
            <tr>
                <td style="border:1px solid black; padding:3px;">Olayla ilgili olarak</td>
                <td colspan="3" style="border:1px solid black; padding:3px; vertical-align:top;">
                    a) Yaptırım uygulanacak öğrencinin ifadesi :<br><br>
                    b) Tanıkların ifadesinin özeti :<br><br>
                    c) Varsa yaptırımı gerektiren diğer deliller :<br><br>
                    d) Olayın Özeti (Geniş Açıklama) : <br>{{.I.Desc}}
                </td>
            </tr>
             <tr>
                <td style="border:1px solid black; padding:3px;">Yaptırımı hafifleten/şiddetlendiren nedenler</td>
                <td colspan="3" style="border:1px solid black; padding:3px;">: </td>
            </tr>
             <tr>
                <td style="border:1px solid black; padding:3px;">Verilen yaptırımın dayandığı yönetmelik mad.</td>
                <td colspan="3" style="border:1px solid black; padding:3px;">: {{.D.ReasonArticle}}</td>
            </tr>
             <tr>
                <td style="border:1px solid black; padding:3px; background-color:#f9f9f9;"><b>Öğr. davranışlarını değ. kurulunun kanaati</b></td>
                <td colspan="3" style="border:1px solid black; padding:3px;">: <b>{{.D.Penalty}}</b> ile cezalandırılmasına karar verilmiştir.</td>
            </tr>
        </table>

        <table style="width:100%; margin-top:20px; border:none; text-align:center; font-size:9pt; page-break-inside:avoid;">
            <tr>
               {{range .Board}}<td style="width:{{$.BoardColWidth}}%">{{.Role}}</td>{{end}}
            </tr>
            <tr>
               {{range .Board}}<td style="padding-top:20px;">{{.MainName}}</td>{{end}}
            </tr>
        </table>
        <div style="margin-top:30px; text-align:center; font-size:10pt; page-break-inside:avoid;">
            Uyğundur<br>..../..../20....<br><br>
            <b>{{.Inst.ManagerName}}</b><br>Okul Müdürü
        </div>
        `,

	TypeEK1StudentInfo: `
        <div style="text-align:right; font-weight:bold; margin-bottom:5px;">EK - 1</div>
        <div style="text-align:center; font-weight:bold; margin-bottom:10px; font-size:12pt;">
            ÖĞRENCİ DAVRANIŞLARINI DEĞERLENDİRME KURULU ÜYELERİNE<br>
            ÖĞRENCİ BİLGİLERİ
        </div>
        <table style="width:100%; border-collapse:collapse; border:1px solid #ccc; font-size:10pt;">
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold; width:200px;">Okul No</td>
                <td style="border:1px solid #ccc; padding:6px;">: {{.S.Number}}</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Sınıfı ve Şubesi</td>
                <td style="border:1px solid #ccc; padding:6px;">: {{.S.Grade}}</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Adı Soyadı</td>
                <td style="border:1px solid #ccc; padding:6px;">: {{.S.Name}}</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">T.C. No</td>
                <td style="border:1px solid #ccc; padding:6px;">: {{.S.TC}}</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Uyruğu</td>
                <td style="border:1px solid #ccc; padding:6px;">: T.C.</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Cinsiyeti</td>
                <td style="border:1px solid #ccc; padding:6px;">:</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Baba Adı</td>
                <td style="border:1px solid #ccc; padding:6px;">: {{.S.ParentFirst}}</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Anne Adı</td>
                <td style="border:1px solid #ccc; padding:6px;">:</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Doğum Yeri</td>
                <td style="border:1px solid #ccc; padding:6px;">: {{.S.DOBPlace}}</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Doğum Tarihi</td>
                <td style="border:1px solid #ccc; padding:6px;">: {{.S.DOB}}</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Yaşı</td>
                <td style="border:1px solid #ccc; padding:6px;">:</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Yatılı/Gündüzlü</td>
                <td style="border:1px solid #ccc; padding:6px;">:</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Baba Telefon No</td>
                <td style="border:1px solid #ccc; padding:6px;">:</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Anne Telefon No</td>
                <td style="border:1px solid #ccc; padding:6px;">:</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Kardeş Sayısı</td>
                <td style="border:1px solid #ccc; padding:6px;">:</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Maddi Durumu</td>
                <td style="border:1px solid #ccc; padding:6px;">:</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Sınıf Reh. Öğretmeni</td>
                <td style="border:1px solid #ccc; padding:6px;">:</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Sözlü Uyarı Sayısı</td>
                <td style="border:1px solid #ccc; padding:6px;">:</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Uyarı Sayısı</td>
                <td style="border:1px solid #ccc; padding:6px;">:</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Kınama Sayısı</td>
                <td style="border:1px solid #ccc; padding:6px;">:</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Uzaklaştırma Say.</td>
                <td style="border:1px solid #ccc; padding:6px;">:</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Okul Değiş. Sayısı</td>
                <td style="border:1px solid #ccc; padding:6px;">:</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Olayın Tarihi</td>
                <td style="border:1px solid #ccc; padding:6px;">: {{.I.Date}}</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Olayın Saati</td>
                <td style="border:1px solid #ccc; padding:6px;">: {{.I.Time}}</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Olayın Tekrar sayısı</td>
                <td style="border:1px solid #ccc; padding:6px;">:</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Tanık Öğretmen</td>
                <td style="border:1px solid #ccc; padding:6px;">:</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Tanık Öğrenci</td>
                <td style="border:1px solid #ccc; padding:6px;">:</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Davranış karşılığı</td>
                <td style="border:1px solid #ccc; padding:6px;">: {{.D.Penalty}}</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Mevzuat karşılığı</td>
                <td style="border:1px solid #ccc; padding:6px;">: {{.D.ReasonShort}}</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Verilen Ceza</td>
                <td style="border:1px solid #ccc; padding:6px;">:</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Adres</td>
                <td style="border:1px solid #ccc; padding:6px;">: {{.S.Address}}</td>
            </tr>
            <tr>
                <td style="border:1px solid #ccc; padding:6px; font-weight:bold;">Davr. Açıklaması</td>
                <td style="border:1px solid #ccc; padding:6px; height:50px; vertical-align:top;">: {{.I.Title}}</td>
            </tr>
        </table>
        `,

	TypeDiziPusulasi: `
        <div style="text-align:center; font-weight:bold; margin-bottom:1rem;">ÖĞRENCİ DAVRANIŞLARINI DEĞERLENDİRME KURULU DOSYASI<br>DİZİ PUSULASI</div>

        <table style="width:100%; border-collapse:collapse; border:1px solid black; font-size:10pt;">
            <tr><td style="border:1px solid black; padding:5px;"><b>OKULU :</b> {{.Inst.Name}}</td><td style="border:1px solid black;"></td></tr>
            <tr><td style="border:1px solid black; padding:5px;"><b>ADI SOYADI :</b> {{.S.Name}}</td><td style="border:1px solid black;"></td></tr>
            <tr><td style="border:1px solid black; padding:5px;"><b>SINIFI :</b> {{.S.Grade}}</td><td style="border:1px solid black; padding:5px;"><b>NUMARASI :</b> {{.S.Number}}</td></tr>
        </table>
        <br>
        <table style="width:100%; border-collapse:collapse; border:1px solid black; font-size:9pt;">
            <tr style="background-color:#f0f0f0; text-align:center; font-weight:bold;">
                <td style="border:1px solid black; padding:5px; width:50%;">GÖNDERİLECEK EVRAKLAR</td>
                <td style="border:1px solid black; padding:5px; width:10%;">VAR</td>
                <td style="border:1px solid black; padding:5px; width:40%;">AÇIKLAMA</td>
            </tr>
            <tr><td style="border:1px solid black; padding:3px;">1) Okul Öğrenci Davranışları Değr. Kurulu Kararının Onaylı Örneği (Yön. 61)</td><td style="border:1px solid black;"></td><td style="border:1px solid black;"></td></tr>
            <tr><td style="border:1px solid black; padding:3px;">2) İtiraz Dilekçesi veya Yazısı (Yön. 61-c) (Sadece itiraz dosyalarında)</td><td style="border:1px solid black;"></td><td style="border:1px solid black;"></td></tr>
            <tr><td style="border:1px solid black; padding:3px;">3) Verilen Cezanın Öğrenci Velisine Tebliği (Yön. 61) (İtiraz dosyalarında)</td><td style="border:1px solid black;"></td><td style="border:1px solid black;"></td></tr>
            <tr><td style="border:1px solid black; padding:3px;">4) Kurula Sevk Edilen Öğrenci ve Tanıkların Yazılı İfadeleri (Yön. 61)</td><td style="border:1px solid black;"></td><td style="border:1px solid black;"></td></tr>
            <tr><td style="border:1px solid black; padding:3px;">5) Yazılı Savunma (Yön. 61)</td><td style="border:1px solid black;"></td><td style="border:1px solid black;"></td></tr>
            <tr><td style="border:1px solid black; padding:3px;">6) Sınıf Rehber Öğretmeninin Öğrenci İle İlgili Görüşü</td><td style="border:1px solid black;"></td><td style="border:1px solid black;"></td></tr>
            <tr><td style="border:1px solid black; padding:3px;">7) Öğrenci Velisinin Öğrenci İle İlgili Görüşü</td><td style="border:1px solid black;"></td><td style="border:1px solid black;"></td></tr>
            <tr><td style="border:1px solid black; padding:3px;">8) Okul Rehberlik Servisinin Öğrenci İle İlgili Görüşü</td><td style="border:1px solid black;"></td><td style="border:1px solid black;"></td></tr>
            <tr><td style="border:1px solid black; padding:3px;">9) E-Okuldan Alınacak Öğrencinin Başarısını Gösterir Çizelge</td><td style="border:1px solid black;"></td><td style="border:1px solid black;"></td></tr>
            <tr><td style="border:1px solid black; padding:3px;">10) E-Okuldan Alınacak Öğrenci Belgesi</td><td style="border:1px solid black;"></td><td style="border:1px solid black;"></td></tr>
            <tr><td style="border:1px solid black; padding:3px;">11) Öğrencinin Adres Bilgisini Gösteren Belge</td><td style="border:1px solid black;"></td><td style="border:1px solid black;"></td></tr>
            <tr><td style="border:1px solid black; padding:3px;">12) Mahkeme Kararı ve/veya Safahatı (Varsa)</td><td style="border:1px solid black;"></td><td style="border:1px solid black;"></td></tr>
            <tr><td style="border:1px solid black; padding:3px;">13) Diğer Evraklar (....... Sayfa)</td><td style="border:1px solid black;"></td><td style="border:1px solid black;"></td></tr>
        </table>
        <div style="margin-top:30px; text-align:right; font-weight:bold;">
             {{.Inst.ManagerName}}<br>Okul Müdürü
        </div>
        `,

	TypeEK1Meeting: `
        {{.Header}}
        <br>
        <div style="display:flex; justify-content:space-between; margin-bottom:10px;">
             <div><b>Sayı</b> : {{.Inst.EBYSCode}}<br><b>Konu</b> : Öğrenci Davranışları Kurulu<br>Toplantısı Çağrısı</div>
             <div>{{.Today}}</div>
        </div>
        <div style="text-align:center; font-weight:bold; margin:20px 0;">ÖĞRENCİ DAVRANIŞLARINI DEĞERLENDİRME KURULU ÜYELERİNE</div>
        <p style="text-indent:30px; text-align:justify; line-height:1.6;">
           Öğrenci Davranışlarını Değerlendirme Kurulu'muz <b>{{.M.Date}}</b> tarihinde saat <b>{{.M.Time}}</b>'da toplanacaktır.
           Kurulda bulunan öğretmenlerimizin aşağıdaki gündem maddelerini görüşmek üzere belirtilen gün ve saatte hazır bulunmaları, Asil üyelerden gelemeyenlerin yerine yedek üyelerin hazır bulunmaları hususunda gereğini rica ederim.
        </p>
        <div style="text-align:right; margin-top:30px; margin-bottom:40px;">
            <b>{{.Inst.ManagerName}}</b><br>Okul Müdürü
        </div>

        <b>GÜNDEM</b>
        <ol style="margin-top:5px;">
            <li>Açılış ve yoklama.</li>
            <li>Öğrenci Davranışları Değerlendirme Kurulu'ndaki dosyaların görüşülmesi.</li>
            <li>Dilek, temenniler ve kapanış.</li>
        </ol>
        <br>
        <table style="width:100%; border-collapse:collapse; border:1px solid black; font-size:10pt; text-align:center;">
             <tr style="background-color:#f0f0f0; font-weight:bold;">
                <td style="border:1px solid black; padding:5px;">ÖĞRETMENİN ADI SOYADI</td>
                <td style="border:1px solid black; padding:5px;">GÖREVİ</td>
                <td style="border:1px solid black; padding:5px;">TARİH</td>
                <td style="border:1px solid black; padding:5px;">İMZA</td>
             </tr>
             {{range .Board}}
             <tr>
                <td style="border:1px solid black; padding:8px;">{{.MainName}}</td>
                <td style="border:1px solid black; padding:8px;">{{.Role}}</td>
                <td style="border:1px solid black; padding:8px;">{{$.M.Date}}</td>
                <td style="border:1px solid black; padding:8px;"></td>
             </tr>{{end}}
        </table>
        `,

	TypeSanctionStudent: `
        {{.Header}}
        <br>
        <table style="width:100%; border:none;">
            <tr>
                <td style="width:10px;">Sayı</td><td>: ...</td>
                <td style="text-align:right;">{{.D.Date}}</td>
            </tr>
            <tr>
                <td>Konu</td><td>: Öğrencimize Uygulanan Yaptırım</td>
            </tr>
        </table>
        <br>
        <div style="text-align:center;"><b>.......<br>.... Sınıfının .... numaralı öğrencisi</b></div>
        <br>
        <p style="text-indent:30px; text-align:justify; line-height:1.5;">
            Aşağıda belirtilen uygunsuz davranışı yapmanız nedeniyle okulumuz Öğrenci Davranışlarını Değerlendirme Kurulu'nca suçlu bulunarak, şahsınıza aşağıdaki yaptırımın uygulanması uygun görülmüştür.
        </p>
        <p style="text-indent:30px; text-align:justify; line-height:1.5;">
             Bilgilerinize sunar, okul içinde ve dışında daha kötü sonuçlar doğurabilecek davranışlara yönelmemenizi, bu konuda okul idaresi, rehberlik servisi ve öğretmenlerinizden destek istemenizi, aksi takdirde bundan sonra yapacağınız her olumsuz davranıştan dolayı yaptırımın ağırlaşabileceğini bilmenizi rica ederim.
        </p>
        <div style="text-align:right; margin-top:30px; margin-bottom:40px;">
            <b>{{.Inst.ManagerName}}</b><br>Okul Müdürü
        </div>
        <div style="text-align:center; font-weight:bold; margin-bottom:5px;">ÖĞRENCİYE UYGULANAN YAPTIRIM TEBLİĞİ</div>
        <table style="width:100%; border-collapse:collapse; border:1px solid black; font-size:10pt;">
            <tr>
                <td style="border:1px solid black; padding:5px; width:40%; font-weight:bold;">Yaptırım Gerektiren Davranış</td>
                <td style="border:1px solid black; padding:5px;">{{.I.Title}}</td>
            </tr>
            <tr>
                <td style="border:1px solid black; padding:5px; font-weight:bold;">Verilen Yaptırım</td>
                <td style="border:1px solid black; padding:5px;">{{.D.Penalty}}</td>
            </tr>
            <tr>
                <td style="border:1px solid black; padding:5px; font-weight:bold;">Yaptırımı Veren</td>
                <td style="border:1px solid black; padding:5px;">Öğrenci Davranışlarını Değerlendirme Kurulu</td>
            </tr>
            <tr>
                <td style="border:1px solid black; padding:5px; font-weight:bold;">Kırılan Davranış Notu</td>
                <td style="border:1px solid black; padding:5px;">{{.D.Score}}</td>
            </tr>
            <tr>
                <td style="border:1px solid black; padding:5px; font-weight:bold; background-color:#e0f2f1;">Kalan Davranış Notu</td>
                <td style="border:1px solid black; padding:5px; background-color:#e0f2f1;">{{.D.Remaining}}</td>
            </tr>
        </table>
        <br><br><br>
        <table style="width:100%; border:none; text-align:center;">
            <tr>
                <td></td>
                <td>Tarih : ..../..../20....<br>Öğrenci İmzası : ........................</td>
            </tr>
            <tr>
                <td></td>
                <td><br>Öğrenci Adı Soyadı : <b>{{.S.Name}}</b></td>
            </tr>
        </table>
        `,

	TypeSanctionParent: `
        {{.Header}}
        <br>
        <table style="width:100%; border:none;">
            <tr>
                <td style="width:10px;">Sayı</td><td>: ...</td>
                <td style="text-align:right;">{{.D.Date}}</td>
            </tr>
            <tr>
                <td>Konu</td><td>: Öğrencimize Uygulanan Yaptırım</td>
            </tr>
        </table>
        <br>
        <div style="text-align:center;"><b>.......<br>Öğrenci Velisi</b></div>
        <br>
        <p style="text-indent:30px; text-align:justify; line-height:1.5;">
            Velisi olduğunuz ................. sınıfından ....... no'lu .............................................................. aşağıda belirtilen kusurlu davranışı yapması nedeniyle okulumuz Öğrenci Davranışlarını Değerlendirme Kurulu'nca suçlu bulunarak, kendisine aşağıdaki yaptırımın uygulanması uygun görülmüştür.
        </p>
        <p style="text-indent:30px; text-align:justify; line-height:1.5;">
             Bilgilerinize sunar, öğrencimizin daha kötü sonuçlar doğurabilecek davranışlara yönelmesini önlemek için okul yönetimi, rehberlik servisi ve öğretmenleri ile işbirliği yapmanızı önerir, bundan sonra yapacağı her olumsuz davranıştan dolayı cezasının ağırlaşabileceğini bilmenizi rica ederim.
        </p>
        <div style="text-align:right; margin-top:30px; margin-bottom:40px;">
            <b>{{.Inst.ManagerName}}</b><br>Okul Müdürü
        </div>
        <div style="text-align:center; font-weight:bold; margin-bottom:5px;">UYGULANAN YAPTIRIMIN ÖĞRENCİ VELİSİNE TEBLİĞİ</div>
        <table style="width:100%; border-collapse:collapse; border:1px solid black; font-size:10pt;">
            <tr>
                <td style="border:1px solid black; padding:5px; width:40%; font-weight:bold;">Yaptırım Gerektiren Davranış</td>
                <td style="border:1px solid black; padding:5px;">{{.I.Title}}</td>
            </tr>
            <tr>
                <td style="border:1px solid black; padding:5px; font-weight:bold;">Verilen Yaptırım</td>
                <td style="border:1px solid black; padding:5px;">{{.D.Penalty}}</td>
            </tr>
            <tr>
                <td style="border:1px solid black; padding:5px; font-weight:bold;">Yaptırımı Veren</td>
                <td style="border:1px solid black; padding:5px;">Öğrenci Davranışlarını Değerlendirme Kurulu</td>
            </tr>
            <tr>
                <td style="border:1px solid black; padding:5px; font-weight:bold;">Kırılan Davranış Notu</td>
                <td style="border:1px solid black; padding:5px;">{{.D.Score}}</td>
            </tr>
            <tr>
                <td style="border:1px solid black; padding:5px; font-weight:bold; background-color:#e0f2f1;">Kalan Davranış Notu</td>
                <td style="border:1px solid black; padding:5px; background-color:#e0f2f1;">{{.D.Remaining}}</td>
            </tr>
        </table>
        <br><br><br>
        <table style="width:100%; border:none; text-align:center;">
            <tr>
                <td></td>
                <td>Tarih : ..../..../20....<br>Öğrenci İmzası : ........................</td>
            </tr>
            <tr>
                <td></td>
                <td><br>Öğrenci Adı Soyadı : <b>{{.S.Name}}</b></td>
            </tr>
        </table>
        `,

	TypeOpinionCounselor: `
        {{.Header}}
        <br>
        <div style="display:flex; justify-content:space-between;">
             <div><b>Sayı</b> : ...<br><b>Konu</b> : Bilgi Talebi</div>
             <div>{{.Today}}</div>
        </div>
        <br><br>
        <div style="text-align:center;"><b>..........<br>Psikolojik Danışman / Rehberlik Öğretmeni</b></div>
        <br>
        <p style="text-indent:30px; text-align:justify;">
            Öğrenci Davranışlarını Değerlendirme Kurulu'nda görüşülmesi için gönderilen <b>{{.S.Grade}}</b> sınıfından <b>{{.S.Name}}</b> adlı öğrenciye ait dosya ile ilgili olarak adı geçen öğrenci ve velisiyle ilgili varsa görüşme tarih ve saatlerini ve öğrenci hakkındaki genel yorumlarınızı belirtmenizi rica ederim.
        </p>
        <div style="text-align:right; margin-top:30px; margin-bottom:30px;">
            <b>{{.ChairName}}</b><br>Öğr. Dav. Değ. Kur. Başkanı
        </div>

        <b>NOT: Öğrenci hakkındaki görüşlerinizi şu başlıklarda sunabilirsiniz:</b>
        <div style="border:1px solid #ddd; padding:10px; margin-top:10px;">
            <ol>
                <li>Öğrenci ile görüşme zamanları</li>
                <li>Veli ile görüşme zamanları</li>
                <li>Öğrencinin kişisel özellikleri</li>
                <li>Davranışın niteliği, önemi ve ne gibi şartlar altında yapıldığı</li>
                <li>Davranışın yapıldığı zamanki öğrencinin psikolojik durumu</li>
                <li>Öğrencinin okul içinde ve dışındaki genel durumu</li>
                <li>Öğrencinin derslerdeki ilgi ve başarısı</li>
                <li>Öğrencinin aynı öğretim yılı içinde daha önce ceza alıp almadığı</li>
                <li>Rehberlik servisinin görüş ve önerileri</li>
                <li>Diğer: ..........</li>
            </ol>
        </div>
        <div style="margin-top:40px; text-align:center;">
             Tarih : ..../..../20....<br>
             İmza : ........................<br><br>
             Adı Soyadı : ........................<br>
             Psikolojik Danışman / Rehberlik Öğretmeni
        </div>
        `,

	TypeWitnessStudent: `
        {{.Header}}
        <br>
        <div style="text-align:center; font-weight:bold; margin:15px 0;">GÖRGÜ TANIĞI İFADE İSTEMİ</div>
        <table style="width:100%; border-collapse:collapse; border:1px solid #ddd;">
            <tr><td style="width:150px; font-weight:bold; padding:5px; border-bottom:1px solid #eee;">Suçlanan Öğrenci</td><td style="border-bottom:1px solid #eee;"></td></tr>
            <tr><td style="padding:5px; border-bottom:1px solid #eee;">Adı</td><td style="padding:5px; border-bottom:1px solid #eee;">: {{.S.FirstName}}</td></tr>
            <tr><td style="padding:5px; border-bottom:1px solid #eee;">Soyadı</td><td style="padding:5px; border-bottom:1px solid #eee;">: {{.S.LastName}}</td></tr>
            <tr><td style="padding:5px; border-bottom:1px solid #eee;">TC No</td><td style="padding:5px; border-bottom:1px solid #eee;">: {{.S.TC}}</td></tr>
            <tr><td style="padding:5px; border-bottom:1px solid #eee;">Sınıfı</td><td style="padding:5px; border-bottom:1px solid #eee;">: {{.S.Grade}}</td></tr>
            <tr><td style="padding:5px; border-bottom:1px solid #eee;">Numarası</td><td style="padding:5px; border-bottom:1px solid #eee;">: {{.S.Number}}</td></tr>
            <tr><td style="padding:5px; font-weight:bold; border-top:2px solid #ccc;">Olay / İddia</td><td style="padding:5px; border-top:2px solid #ccc;">: {{.I.Title}}</td></tr>
        </table>
        <br>
        <table style="width:100%; border-collapse:collapse; border:1px solid #ccc;">
            <tr><td style="border:1px solid #ccc; padding:5px; font-weight:bold; background-color:#f9f9f9;">Tanık Öğrenci / Öğrenciler</td></tr>
            <tr><td style="border:1px solid #ccc; padding:5px; height:25px;">Tanık Öğrenci - 1 :</td></tr>
            <tr><td style="border:1px solid #ccc; padding:5px; height:25px;">Tanık Öğrenci - 2 :</td></tr>
            <tr><td style="border:1px solid #ccc; padding:5px; height:25px;">Tanık Öğrenci - 3 :</td></tr>
            <tr><td style="border:1px solid #ccc; padding:5px; height:25px;">Tanık Öğrenci - 4 :</td></tr>
            <tr><td style="border:1px solid #ccc; padding:5px; height:25px;">Tanık Öğrenci - 5 :</td></tr>
        </table>
        <br>
        <p style="text-indent:30px;">Yukarıda açıkça bilgileri verilen öğrencimizin iddia edilen olumsuz davranışlarıyla ilgili olmak üzere konu hakkında kesin olarak gördüğünüz, bildiğiniz tüm bilgileri en baştan başlayarak ve ayrıntılı olarak aşağıya yazınız ve imzalayınız.</p>
        <div style="border:1px solid black; min-height:300px; margin-top:10px; padding:10px;">
             Buradan başlayabilirsiniz. Ek kağıt kullanabilirsiniz.
        </div>
        `,

	TypeWitnessTeacher: `
        {{.Header}}
        <br>
        <div style="text-align:center; font-weight:bold; margin:15px 0;">TANIK ÖĞRETMEN/ÖĞRETMENLERDEN İFADE İSTEMİ</div>
        <table style="width:100%; border-collapse:collapse; border:1px solid #ddd;">
            <tr><td style="width:150px; font-weight:bold; padding:5px; border-bottom:1px solid #eee;">Suçlanan Öğrenci</td><td style="border-bottom:1px solid #eee;"></td></tr>
            <tr><td style="padding:5px; border-bottom:1px solid #eee;">Adı</td><td style="padding:5px; border-bottom:1px solid #eee;">: {{.S.FirstName}}</td></tr>
            <tr><td style="padding:5px; border-bottom:1px solid #eee;">Soyadı</td><td style="padding:5px; border-bottom:1px solid #eee;">: {{.S.LastName}}</td></tr>
            <tr><td style="padding:5px; border-bottom:1px solid #eee;">TC No</td><td style="padding:5px; border-bottom:1px solid #eee;">: {{.S.TC}}</td></tr>
            <tr><td style="padding:5px; border-bottom:1px solid #eee;">Sınıfı</td><td style="padding:5px; border-bottom:1px solid #eee;">: {{.S.Grade}}</td></tr>
            <tr><td style="padding:5px; border-bottom:1px solid #eee;">Numarası</td><td style="padding:5px; border-bottom:1px solid #eee;">: {{.S.Number}}</td></tr>
            <tr><td style="padding:5px; font-weight:bold; border-top:2px solid #ccc;">Olay / İddia</td><td style="padding:5px; border-top:2px solid #ccc;">: {{.I.Title}}</td></tr>
        </table>
        <br>
        <table style="width:100%; border-collapse:collapse; border:1px solid #ccc;">
            <tr><td style="border:1px solid #ccc; padding:5px; font-weight:bold; background-color:#f9f9f9;">Tanık Öğretmen / Öğretmenler</td></tr>
            <tr><td style="border:1px solid #ccc; padding:5px; height:25px;">Tanık Öğretmen :</td></tr>
            <tr><td style="border:1px solid #ccc; padding:5px; height:25px;">Tanık Öğretmen :</td></tr>
            <tr><td style="border:1px solid #ccc; padding:5px; height:25px;">Tanık Öğretmen :</td></tr>
        </table>
        <br>
        <p style="text-indent:30px;">Yukarıda açıkça bilgileri verilen öğrencimizin iddia edilen olumsuz davranışlarıyla ilgili bilgi, belge ve tutanakların, yaptığınız çalışmalar ve rehberlik faaliyetleri raporlarının Öğrenci Davranışlarını Değerlendirme Kuruluna sevk edilmek üzere dosya halinde Müdürlüğümüze teslim edilmesini rica ederim.</p>
        <div style="border:1px solid black; min-height:400px; margin-top:20px; padding:10px;">
        </div>
        `,

	TypeStatementRequest: `
        {{.Header}}
        <br><br>
        <div style="text-align:center; font-weight:bold; margin-bottom:20px;">İFADE TALEBİ</div>
        <table style="width:100%; border-collapse:collapse; border:1px solid #ddd;">
             <tr><td style="padding:5px; width:150px; font-weight:bold;">Öğrencinin</td><td></td></tr>
             <tr><td style="padding:5px; border:1px solid #ccc;">Adı</td><td style="padding:5px; border:1px solid #ccc;">: {{.S.FirstName}}</td></tr>
             <tr><td style="padding:5px; border:1px solid #ccc;">Soyadı</td><td style="padding:5px; border:1px solid #ccc;">: {{.S.LastName}}</td></tr>
             <tr><td style="padding:5px; border:1px solid #ccc;">TC No</td><td style="padding:5px; border:1px solid #ccc;">: {{.S.TC}}</td></tr>
             <tr><td style="padding:5px; border:1px solid #ccc;">Sınıfı</td><td style="padding:5px; border:1px solid #ccc;">: {{.S.Grade}}</td></tr>
             <tr><td style="padding:5px; border:1px solid #ccc;">Numarası</td><td style="padding:5px; border:1px solid #ccc;">: {{.S.Number}}</td></tr>
             <tr><td style="padding:5px; border:1px solid #ccc;">Velisinin Adresi</td><td style="padding:5px; border:1px solid #ccc;">: {{.S.Address}}</td></tr>
             <tr><td style="padding:5px; font-weight:bold; border-top:2px solid #ccc;">İddia</td><td style="padding:5px; border-top:2px solid #ccc;">: {{.I.Title}}</td></tr>
        </table>
        <br>
        <p style="margin-top:20px; text-indent:30px;">Öğrenci Davranışlarını Değerlendirme Kuruluna intikal eden dosyalarda size isnat edilen yukarıdaki suçlamalar ile ilgili yapacağınız tüm açıklama ve bilgileri içeren ifadenizi aşağıya yazarak imzalayınız.</p>
        <div style="border:1px solid black; min-height:200px; padding:10px; margin-top:10px;">
             Buradan başlayabilirsiniz. Ek kağıt kullanabilirsiniz.
        </div>
        <div style="margin-top:30px; text-align:center;">
             Tarih : ..../..../20....<br>
             İmza : ........................<br><br>
             Adı Soyadı : {{.S.Name}}<br>
             ..... Sınıfının ..... numaralı öğrencisi
        </div>
        `,

	TypeDefenseRequest: `
        {{.Header}}
        <br><br>
        <div style="text-align:center; font-weight:bold; margin-bottom:20px;">SAVUNMA TALEBİ</div>
        <table style="width:100%; border-collapse:collapse; border:1px solid #ddd;">
             <tr><td style="padding:5px; width:150px; font-weight:bold;">Öğrencinin</td><td></td></tr>
             <tr><td style="padding:5px; border:1px solid #ccc;">Adı</td><td style="padding:5px; border:1px solid #ccc;">: {{.S.FirstName}}</td></tr>
             <tr><td style="padding:5px; border:1px solid #ccc;">Soyadı</td><td style="padding:5px; border:1px solid #ccc;">: {{.S.LastName}}</td></tr>
             <tr><td style="padding:5px; border:1px solid #ccc;">TC No</td><td style="padding:5px; border:1px solid #ccc;">: {{.S.TC}}</td></tr>
             <tr><td style="padding:5px; border:1px solid #ccc;">Sınıfı</td><td style="padding:5px; border:1px solid #ccc;">: {{.S.Grade}}</td></tr>
             <tr><td style="padding:5px; border:1px solid #ccc;">Numarası</td><td style="padding:5px; border:1px solid #ccc;">: {{.S.Number}}</td></tr>
             <tr><td style="padding:5px; border:1px solid #ccc;">Velisinin Adresi</td><td style="padding:5px; border:1px solid #ccc;">: {{.S.Address}}</td></tr>
             <tr><td style="padding:5px; font-weight:bold; border-top:2px solid #ccc;">Olay</td><td style="padding:5px; border-top:2px solid #ccc;">: {{.I.Title}}</td></tr>
        </table>
        <br>
        <p style="margin-top:20px; text-indent:30px;">Öğrenci Davranışlarını Değerlendirme Kuruluna intikal eden dosyalarda size isnat edilen ve yukarıda açıkça belirtilen suçlamalar bulunmaktadır. Konuyla ilgili Savunmanızı aşağıya yazarak imzalayınız.</p>
        <div style="border:1px solid black; min-height:200px; padding:10px; margin-top:10px;">
             Buradan başlayabilirsiniz. Ek kağıt kullanabilirsiniz.
        </div>
        <div style="margin-top:30px; text-align:center;">
             Tarih : ..../..../20....<br>
             İmza : ........................<br><br>
             Adı Soyadı : {{.S.Name}}<br>
             ..... Sınıfının ..... numaralı öğrencisi
        </div>
        `,

	TypeVerbalWarning: `
        {{.Header}}
        <br>
        <div style="text-align:center; font-weight:bold; font-size:12pt; margin:15px 0;">SÖZLÜ UYARI TUTANAĞI</div>
        <table style="width:100%; border-collapse:collapse; border:1px solid black;">
            <tr><td style="padding:5px; border:1px solid black; font-weight:bold;">Öğrenci/Öğrencilerin</td><td></td></tr>
            <tr><td style="padding:5px; border:1px solid black;">Adı</td><td style="padding:5px; border:1px solid black;">: {{.S.FirstName}}</td></tr>
            <tr><td style="padding:5px; border:1px solid black;">Soyadı</td><td style="padding:5px; border:1px solid black;">: {{.S.LastName}}</td></tr>
            <tr><td style="padding:5px; border:1px solid black;">TC No</td><td style="padding:5px; border:1px solid black;">: {{.S.TC}}</td></tr>
            <tr><td style="padding:5px; border:1px solid black;">Sınıfı</td><td style="padding:5px; border:1px solid black;">: {{.S.Grade}}</td></tr>
            <tr><td style="padding:5px; border:1px solid black;">Numarası</td><td style="padding:5px; border:1px solid black;">: {{.S.Number}}</td></tr>
        </table>
        <br>
        <p style="line-height:2em;">
            Yukarıda bilgileri bulunan öğrencimiz/öğrencilerimiz ..................................... tarihinde, ........................................................................................................................................................................................................................................................................................................................................................................
        </p>
        <p>Adı geçen öğrenci/öğrenciler tarafımca sözlü uyarılarak bu tutanak imza altına alınmıştır. .../.../20...</p>
        <br><br>
        <div style="display:flex; justify-content:space-between; text-align:center; padding:0 50px;">
            <div>
                <b>...................</b><br>
                ......... Sınıfı Öğrencisi
            </div>
             <div>
                <b>...................</b><br>
                ......... Öğretmeni
            </div>
        </div>
        <br><br>
        <table style="width:100%; border:1px solid black; margin-top:20px;">
            <tr>
                <td style="border:1px solid black; padding:5px; font-weight:bold; width:20%;">Olayın Özeti</td>
                <td style="border:1px solid black; padding:5px; height:60px;">: (Öğrenci tarafından doldurulacaktır)<br><br></td>
            </tr>
        </table>
        `,

	TypeContract: `
        {{.Header}}
        <br>
        <div style="text-align:center; font-weight:bold; font-size:12pt; margin:15px 0;">ÖĞRENCİ SÖZLEŞMESİ</div>
        <table style="width:100%; border-collapse:collapse; border:1px solid black;">
            <tr><td style="padding:5px; border:1px solid black; font-weight:bold;">Öğrencinin</td><td></td></tr>
            <tr><td style="padding:5px; border:1px solid black;">Adı</td><td style="padding:5px; border:1px solid black;">: {{.S.FirstName}}</td></tr>
            <tr><td style="padding:5px; border:1px solid black;">Soyadı</td><td style="padding:5px; border:1px solid black;">: {{.S.LastName}}</td></tr>
            <tr><td style="padding:5px; border:1px solid black;">TC No</td><td style="padding:5px; border:1px solid black;">: {{.S.TC}}</td></tr>
            <tr><td style="padding:5px; border:1px solid black;">Sınıfı</td><td style="padding:5px; border:1px solid black;">: {{.S.Grade}}</td></tr>
            <tr><td style="padding:5px; border:1px solid black;">Numarası</td><td style="padding:5px; border:1px solid black;">: {{.S.Number}}</td></tr>
        </table>
        <br>
        <p style="line-height:2em;">
            Ben ................................................................<br>
            .................................... tarihinde, .............................................................................................................................................................................................................................................. davranışında bulundum.<br>
            Sınıf Rehber Öğretmenim ................................................... tarafından ................................. tarihinde uyarıldım ve hatalı olduğumu anladım. Olumsuz davranışımın yinelenmesi durumunda uygulanabilecek yaptırımlar konusunda bilgilendirildim. Aynı tür davranışı bir kez daha yapmayacağıma söz veriyorum.
        </p>
        <br><br>
        <div style="display:flex; justify-content:space-between; text-align:center;">
             <div>
                <b>.....................................</b><br>
                ..... Sınıfı Öğrencisi
            </div>
            <div>
                <b>.....................................</b><br>
                ..... Öğretmeni
            </div>
        </div>
        <br><br>
        <table style="width:100%; border:1px solid black; margin-top:20px;">
            <tr>
                <td style="border:1px solid black; padding:5px; font-weight:bold; width:20%;">Olayın Özeti</td>
                <td style="border:1px solid black; padding:5px; height:60px;">: (Öğrenci tarafından doldurulacaktır)<br><br></td>
            </tr>
        </table>
        `,

	TypeParentMeeting: `
        {{.Header}}
        <br>
        <div style="display:flex; justify-content:space-between;">
             <div><b>Sayı</b> : ...<br><b>Konu</b> : ................. Hakkında</div>
             <div>{{.Today}}</div>
        </div>
        <br>
        <div style="text-align:center; font-weight:bold; font-size:12pt; margin-bottom:10px;">VELİ GÖRÜŞME TUTANAĞI</div>
        <table style="width:100%; border-collapse:collapse; border:1px solid black;">
            <tr>
                <td style="padding:5px; border:1px solid black; font-weight:bold; width:25%;">Öğrencinin</td>
                <td style="padding:5px; border:1px solid black;"></td>
            </tr>
            <tr>
                <td style="padding:5px; border:1px solid black;">Adı</td>
                <td style="padding:5px; border:1px solid black;">: {{.S.FirstName}}</td>
            </tr>
            <tr>
                <td style="padding:5px; border:1px solid black;">Soyadı</td>
                <td style="padding:5px; border:1px solid black;">: {{.S.LastName}}</td>
            </tr>
            <tr>
                <td style="padding:5px; border:1px solid black;">TC No</td><td style="padding:5px; border:1px solid black;">: {{.S.TC}}</td>
            </tr>
            <tr>
                <td style="padding:5px; border:1px solid black;">Sınıfı</td>
                <td style="padding:5px; border:1px solid black;">: {{.S.Grade}}</td>
            </tr>
             <tr>
                <td style="padding:5px; border:1px solid black;">Numarası</td><td style="padding:5px; border:1px solid black;">: {{.S.Number}}</td>
            </tr>
        </table>
        <br>
        <p>Yukarıda bilgileri bulunan öğrencim ............................................................................ tarafından gerçekleştirilen olumsuz davranışlarla ilgili .......................................................................... tarihinde, Okul Müdür Yardımcısı ...................................................... nezaretinde konu hakkında ve öğrencimin olumsuz davranışının devam etmesi durumunda yapılacak işlemler hakkında da ayrıca bilgilendirildim. .../.../20...</p>
        <br><br>
        <div style="display:flex; justify-content:space-between; text-align:center;">
             <div style="border-top:1px solid black; padding-top:5px; width:40%;">
                <b>................................</b><br>
                Öğrenci Velisi
            </div>
            <div style="border-top:1px solid black; padding-top:5px; width:40%;">
                <b>................................</b><br>
                .............. Öğretmeni
            </div>
        </div>
        <br><br>
        <div style="text-align:center;">
            <b>....................................</b><br>
            Öğr. Dav. Değ. Kur. Başkanı
        </div>
        <br>
        <div style="border-top:1px solid black; padding-top:5px;">
             Veli'nin görüşü (Varsa): (Veli tarafından doldurulacaktır)
        </div>
        `,

	TypeRemovalMeeting: `
        {{.Header}}
        <br>
        <div style="display:flex; justify-content:space-between; margin-bottom:10px;">
             <div><b>Sayı</b> : {{.Inst.EBYSCode}}<br><b>Konu</b> : Disiplin Cezasının Kaldırılması<br>(Kurul Toplantı Çağrısı)</div>
             <div>{{.Today}}</div>
        </div>
        <br>
        <div style="text-align:center; font-weight:bold; margin:20px 0;">ÖĞRENCİ DAVRANIŞLARINI DEĞERLENDİRME KURULU ÜYELERİNE</div>
        <p style="text-indent:30px; text-align:justify; line-height:1.6;">
           Okulumuz <b>{{.S.Grade}}</b> sınıfı, <b>{{.S.Number}}</b> numaralı öğrencisi <b>{{.S.Name}}</b>'in, daha önce almış olduğu <b>"{{.D.Penalty}}"</b> cezasının; öğrencinin ders yılı içerisindeki davranışlarında görülen olumlu gelişmeler nedeniyle kaldırılması (davranış puanının iadesi) hususunu görüşmek üzere toplanılacaktır.
        </p>
        <p style="text-indent:30px; text-align:justify; line-height:1.6;">
           <b>{{.RegulationArticle}}</b> gereğince yapılacak olan toplantıya aşağıda belirtilen gün ve saatte teşriflerinizi rica ederim.
        </p>

        <div style="text-align:right; margin-top:30px; margin-bottom:40px;">
            <b>{{.Inst.ManagerName}}</b><br>Okul Müdürü
        </div>

        <table style="width:100%; border:1px solid black; margin-bottom:20px; font-size:10pt;">
            <tr>
                <td style="border:1px solid black; padding:8px; font-weight:bold; width:30%; background-color:#f9f9f9;">Toplantı Tarihi</td>
                <td style="border:1px solid black; padding:8px;">{{.M.Date}}</td>
            </tr>
            <tr>
                <td style="border:1px solid black; padding:8px; font-weight:bold; background-color:#f9f9f9;">Toplantı Saati</td>
                <td style="border:1px solid black; padding:8px;">{{.M.Time}}</td>
            </tr>
            <tr>
                <td style="border:1px solid black; padding:8px; font-weight:bold; background-color:#f9f9f9;">Toplantı Yeri</td>
                <td style="border:1px solid black; padding:8px;">{{.M.Location}}</td>
            </tr>
             <tr>
                <td style="border:1px solid black; padding:8px; font-weight:bold; background-color:#f9f9f9;">Gündem</td>
                <td style="border:1px solid black; padding:8px;">
                    1. Açılış ve Yoklama<br>
                    2. Disiplin cezası alan öğrencinin durumunun görüşülmesi<br>
                    3. Karar ve Kapanış
                </td>
            </tr>
        </table>

        <br>
        <div style="font-weight:bold; margin-bottom:10px;">TEBLİĞ LİSTESİ</div>
        <table style="width:100%; border-collapse:collapse; border:1px solid black; font-size:9pt; text-align:center;">
             <tr style="background-color:#f0f0f0; font-weight:bold;">
                <td style="border:1px solid black; padding:5px;">ÜYE ADI SOYADI</td>
                <td style="border:1px solid black; padding:5px;">GÖREVİ</td>
                <td style="border:1px solid black; padding:5px;">İMZA</td>
             </tr>
             {{range .Board}}
             <tr>
                <td style="border:1px solid black; padding:8px;">{{.MainName}}</td>
                <td style="border:1px solid black; padding:8px;">{{.Role}}</td>
                <td style="border:1px solid black; padding:8px;"></td>
             </tr>{{end}}
        </table>
        `,

	TypeRemovalObservation: `
        {{.Header}}
        <br>
        <div style="display:flex; justify-content:space-between; margin-bottom:10px;">
             <div><b>Sayı</b> : {{.Inst.EBYSCode}}<br><b>Konu</b> : Öğrenci Davranış Gözlem Raporu</div>
             <div>{{.Today}}</div>
        </div>
        <br><br>
        <div style="text-align:center;"><b>{{.S.Grade}} SINIFI REHBER ÖĞRETMENLİĞİNE</b></div>
        <br>
        <p style="text-indent:30px; text-align:justify; line-height:1.6;">
            Sınıfınız öğrencilerinden <b>{{.S.Number}}</b> numaralı <b>{{.S.Name}}</b> hakkında daha önce uygulanmış olan disiplin cezasının kaldırılıp kaldırılmayacağının değerlendirilmesi amacıyla Öğrenci Davranışlarını Değerlendirme Kurulu toplanacaktır.
        </p>
        <p style="text-indent:30px; text-align:justify; line-height:1.6;">
            İlgili yönetmelik gereği; öğrencinin ceza aldıktan sonraki süreçteki davranışları, ders içi tutumları ve arkadaşlık ilişkilerindeki olumlu/olumsuz değişimler hakkındaki görüşlerinizi içeren raporun hazırlanarak idareye teslim edilmesi hususunda;
        </p>
        <p style="text-indent:30px;">Gereğini rica ederim.</p>

        <div style="text-align:right; margin-top:40px;">
            <b>{{.Inst.ManagerName}}</b><br>Okul Müdürü
        </div>
        `,
}
