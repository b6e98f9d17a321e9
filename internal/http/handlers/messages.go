package handlers

import (
	"context"

	"foundation/internal/middleware"
)

// User-facing flash messages, keyed by message id and locale. Hindi is the
// only translation the site ships today; everything else falls back to
// English.
var flashMessages = map[string]map[string]string{
	"contact_received": {
		"en": "Your message has been sent successfully!",
		"hi": "आपका संदेश सफलतापूर्वक भेज दिया गया है!",
	},
	"volunteer_received": {
		"en": "Thank you for volunteering! We will contact you soon.",
		"hi": "स्वयंसेवा के लिए धन्यवाद! हम जल्द ही आपसे संपर्क करेंगे।",
	},
	"campaign_launched": {
		"en": "Your campaign has been launched successfully!",
		"hi": "आपका अभियान सफलतापूर्वक शुरू हो गया है!",
	},
}

func flash(ctx context.Context, id string) string {
	byLocale, ok := flashMessages[id]
	if !ok {
		return ""
	}
	if msg, ok := byLocale[middleware.LocaleFromContext(ctx)]; ok {
		return msg
	}
	return byLocale["en"]
}
