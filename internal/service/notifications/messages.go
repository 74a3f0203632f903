package notifications

import (
	"fmt"

	"github.com/Domenick1991/spacify/internal/domain"
)

// Messages holds the feed texts for one language.
type Messages struct {
	Welcome          string
	RefundNotice     string
	CancelSuccess    string
	DisputeSubmitted string
	spaceSecured     string
}

func (m Messages) SpaceSecured(origin string) string {
	return fmt.Sprintf(m.spaceSecured, origin)
}

var catalog = map[domain.Language]Messages{
	domain.LanguageEnglish: {
		Welcome:          "Welcome to Spacify! Take the quick tour to get started.",
		RefundNotice:     "Refund initiated. The amount will reach your source account within 5-7 working days.",
		CancelSuccess:    "Booking cancelled successfully.",
		DisputeSubmitted: "Dispute submitted. Our support team will contact you within 24 hours.",
		spaceSecured:     "Space Secured: %s Hub Confirmed",
	},
	domain.LanguageHindi: {
		Welcome:          "Spacify में आपका स्वागत है! शुरू करने के लिए टूर लें।",
		RefundNotice:     "रिफंड शुरू हो गया है। राशि 5-7 कार्य दिवसों में आपके खाते में पहुंच जाएगी।",
		CancelSuccess:    "बुकिंग सफलतापूर्वक रद्द की गई।",
		DisputeSubmitted: "विवाद दर्ज किया गया। हमारी सहायता टीम 24 घंटों में संपर्क करेगी।",
		spaceSecured:     "Space Secured: %s Hub Confirmed",
	},
}

// MessagesFor returns the texts for lang, falling back to English.
func MessagesFor(lang domain.Language) Messages {
	if m, ok := catalog[lang]; ok {
		return m
	}
	return catalog[domain.LanguageEnglish]
}

func Welcome(lang domain.Language) domain.Notification {
	return domain.Notification{Message: MessagesFor(lang).Welcome, Severity: domain.SeverityInfo}
}

func RefundNotice(lang domain.Language) domain.Notification {
	return domain.Notification{Message: MessagesFor(lang).RefundNotice, Severity: domain.SeverityAlert}
}

func CancelSuccess(lang domain.Language) domain.Notification {
	return domain.Notification{Message: MessagesFor(lang).CancelSuccess, Severity: domain.SeveritySuccess}
}

func DisputeSubmitted(lang domain.Language) domain.Notification {
	return domain.Notification{Message: MessagesFor(lang).DisputeSubmitted, Severity: domain.SeverityInfo}
}

func SpaceSecured(lang domain.Language, origin string) domain.Notification {
	return domain.Notification{Message: MessagesFor(lang).SpaceSecured(origin), Severity: domain.SeveritySuccess}
}
