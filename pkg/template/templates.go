package template

import (
	"bytes"
	"fmt"
	texttmpl "text/template"
	"time"

	"telegram-relay-service/internal/domain"
)

// Placeholder text used when optional submission fields are absent.
const (
	defaultUnknown  = "غير محدد"
	defaultCurrency = "ريال"
	defaultCategory = "عام"
	defaultPeriod   = "شهري"
	defaultNotes    = "لا توجد ملاحظات"
	defaultMessage  = "لا توجد رسالة"
	defaultProduct  = "المنتج المطلوب"
)

const bookingTemplate = `🎯 **طلب حجز جديد - متجر نابلا** 🎯

👤 **العميل:** {{.Name}}
📱 **الواتساب:** {{.Whatsapp}}
🔢 **الهاتف النظيف:** {{.Phone}}

🛒 **المنتج:** {{.ProductName}}
💰 **السعر:** {{.Price}} {{.Currency}}
📂 **الفئة:** {{.Category}}
⏰ **المدة:** {{.Period}}

📝 **ملاحظات العميل:**
{{.Notes}}

{{if .Features}}✨ **المميزات:**
{{range .Features}}• {{.}}
{{end}}
{{end}}🕐 **وقت الطلب:** {{.Timestamp}}
📌 **معرف الطلب:** {{.RequestID}}

🔗 **رابط التواصل المباشر:** {{.Link}}
`

const contactTemplate = `📩 **رسالة تواصل جديدة - متجر نابلا** 📩

👤 **المرسل:** {{.Name}}
📱 **الواتساب:** {{.Whatsapp}}
🔢 **الهاتف النظيف:** {{.Phone}}

💬 **الرسالة:**
{{.Message}}

🕐 **وقت الإرسال:** {{.Timestamp}}

🔗 **رابط التواصل المباشر:** {{.Link}}
`

type bookingData struct {
	Name        string
	Whatsapp    string
	Phone       string
	ProductName string
	Price       string
	Currency    string
	Category    string
	Period      string
	Notes       string
	Features    []string
	Timestamp   string
	RequestID   int64
	Link        string
}

type contactData struct {
	Name      string
	Whatsapp  string
	Phone     string
	Message   string
	Timestamp string
	Link      string
}

// TemplateService renders the Telegram notification and the WhatsApp welcome
// text for a submission. Rendering is pure: same submission and instant,
// same output.
type TemplateService struct {
	loc     *time.Location
	booking *texttmpl.Template
	contact *texttmpl.Template
}

func NewTemplateService() *TemplateService {
	loc, err := time.LoadLocation("Asia/Riyadh")
	if err != nil {
		// Riyadh has no DST; a fixed UTC+3 offset is equivalent.
		loc = time.FixedZone("AST", 3*60*60)
	}
	return &TemplateService{
		loc:     loc,
		booking: texttmpl.Must(texttmpl.New("booking").Parse(bookingTemplate)),
		contact: texttmpl.Must(texttmpl.New("contact").Parse(contactTemplate)),
	}
}

// Notification renders the message relayed to the store's Telegram chat.
// The submission must already be validated; an unknown type is an error.
func (t *TemplateService) Notification(sub *domain.Submission, phone, link string, at time.Time) (string, error) {
	var (
		tmpl *texttmpl.Template
		data interface{}
	)
	switch sub.Type {
	case domain.TypeBooking:
		tmpl = t.booking
		data = t.bookingData(sub, phone, link, at)
	case domain.TypeContact:
		tmpl = t.contact
		data = t.contactData(sub, phone, link, at)
	default:
		return "", fmt.Errorf("no template for submission type %q", sub.Type)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute %s template: %w", sub.Type, err)
	}
	return buf.String(), nil
}

func (t *TemplateService) bookingData(sub *domain.Submission, phone, link string, at time.Time) bookingData {
	p := sub.Product
	if p == nil {
		p = &domain.Product{}
	}
	period := p.Period
	if period == "" {
		period = p.Duration
	}
	return bookingData{
		Name:        sub.User.Name,
		Whatsapp:    sub.User.Whatsapp,
		Phone:       phone,
		ProductName: orDefault(p.Name, defaultUnknown),
		Price:       orDefault(string(p.Price), defaultUnknown),
		Currency:    orDefault(p.Currency, defaultCurrency),
		Category:    orDefault(p.Category, defaultCategory),
		Period:      orDefault(period, defaultPeriod),
		Notes:       orDefault(p.Notes, defaultNotes),
		Features:    p.Features,
		Timestamp:   t.Timestamp(at),
		RequestID:   at.UnixMilli(),
		Link:        link,
	}
}

func (t *TemplateService) contactData(sub *domain.Submission, phone, link string, at time.Time) contactData {
	return contactData{
		Name:      sub.User.Name,
		Whatsapp:  sub.User.Whatsapp,
		Phone:     phone,
		Message:   orDefault(sub.Message, defaultMessage),
		Timestamp: t.Timestamp(at),
		Link:      link,
	}
}

// Welcome builds the greeting pre-filled into the submitter's WhatsApp link
// after a successful delivery.
func (t *TemplateService) Welcome(sub *domain.Submission) string {
	if sub.Type == domain.TypeBooking {
		product := defaultProduct
		if sub.Product != nil && sub.Product.Name != "" {
			product = sub.Product.Name
		}
		return fmt.Sprintf("السلام عليكم ورحمة الله وبركاته 🌟\n\nأهلاً وسهلاً بك %s!\n\nلقد تلقينا طلبك للحصول على %s.\nسنتواصل معك خلال 24 ساعة لتأكيد الطلب وتنفيذه.\n\nشكراً لثقتك بنا!", sub.User.Name, product)
	}
	return fmt.Sprintf("السلام عليكم ورحمة الله وبركاته 🌟\n\nأهلاً وسهلاً بك %s!\n\nلقد تلقينا رسالتك وسنرد عليك خلال 24 ساعة.\n\nشكراً لتواصلك مع متجر نابلا!", sub.User.Name)
}

var arabicWeekdays = [...]string{"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت"}

var arabicMonths = [...]string{"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو", "يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر"}

// Timestamp renders the dispatch time the way the store staff read it:
// Riyadh wall clock with Arabic weekday and month names.
func (t *TemplateService) Timestamp(at time.Time) string {
	local := at.In(t.loc)
	return fmt.Sprintf("%s، %d %s %d في %02d:%02d:%02d",
		arabicWeekdays[local.Weekday()], local.Day(), arabicMonths[local.Month()-1], local.Year(),
		local.Hour(), local.Minute(), local.Second())
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
