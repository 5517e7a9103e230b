package http

import (
	"fmt"
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"pickup/internal/core/domain/model/pickup"
)

const (
	keyPageTitle      = "page.title"
	keyPageQuestion   = "page.question"
	keyPageOrder      = "page.order"
	keyPageButton     = "page.button"
	keyPageProcessing = "page.processing"
	keyPageFailed     = "page.failed"
)

var hebrewMessages = map[string]string{
	keyPageTitle:      "אישור איסוף",
	keyPageQuestion:   "האם לאשר את האיסוף?",
	keyPageOrder:      "הזמנה %s",
	keyPageButton:     "אישור איסוף",
	keyPageProcessing: "⏳ מתבצע אישור האיסוף...",
	keyPageFailed:     "❌ שגיאה בביצוע האיסוף. נסה שוב מאוחר יותר.",

	pickup.Fulfilled.String():            "האיסוף אושר בהצלחה!",
	pickup.Ready.String():                "ההזמנה מוכנה לאיסוף",
	pickup.BadRequest.String():           "בקשה לא חוקית: חסר order_id או token",
	pickup.InvalidToken.String():         "הקישור אינו חוקי או פג תוקף",
	pickup.AlreadyConfirmed.String():     "הקישור פג תוקף – האיסוף כבר אושר",
	pickup.OrderNotFound.String():        "ההזמנה לא נמצאה",
	pickup.AlreadyFulfilled.String():     "ההזמנה כבר נאספה",
	pickup.PaymentIncomplete.String():    "לא ניתן לאשר את האיסוף – התשלום לא בוצע",
	pickup.NoFulfillableItems.String():   "אין פריטים זמינים למילוי",
	pickup.LocationUnresolved.String():   "לא ניתן לקבוע את נקודת האיסוף. פנו לשירות הלקוחות",
	pickup.ItemsUnavailable.String():     "חלק מהפריטים אינם זמינים לאיסוף",
	pickup.OrderProcessingError.String(): "לא ניתן לעבד את ההזמנה. פנו לשירות הלקוחות",
	pickup.UpstreamRejected.String():     "מערכת ההזמנות דחתה את האישור. נסה שוב מאוחר יותר",
	pickup.UpstreamError.String():        "שגיאה בביצוע האיסוף",
	pickup.Internal.String():             "שגיאה בשרת. נסה שוב מאוחר יותר.",
	pickup.PickupInProgress.String():     "האיסוף כבר בתהליך אישור. נסה שוב בעוד רגע",
}

var englishMessages = map[string]string{
	keyPageTitle:      "Pickup confirmation",
	keyPageQuestion:   "Confirm that you picked up your order?",
	keyPageOrder:      "Order %s",
	keyPageButton:     "Confirm pickup",
	keyPageProcessing: "⏳ Confirming pickup...",
	keyPageFailed:     "❌ Pickup confirmation failed. Please try again later.",

	pickup.Fulfilled.String():            "Pickup confirmed. Thank you!",
	pickup.Ready.String():                "Your order is ready for pickup",
	pickup.BadRequest.String():           "Invalid request: order_id or token is missing",
	pickup.InvalidToken.String():         "This link is invalid or has expired",
	pickup.AlreadyConfirmed.String():     "This link has already been used. Pickup was confirmed",
	pickup.OrderNotFound.String():        "Order not found",
	pickup.AlreadyFulfilled.String():     "This order has already been picked up",
	pickup.PaymentIncomplete.String():    "Pickup cannot be confirmed: payment has not been completed",
	pickup.NoFulfillableItems.String():   "There are no items left to hand over",
	pickup.LocationUnresolved.String():   "We could not determine the pickup location. Please contact support",
	pickup.ItemsUnavailable.String():     "Some items are not available for pickup",
	pickup.OrderProcessingError.String(): "The order could not be processed. Please contact support",
	pickup.UpstreamRejected.String():     "The order system declined the confirmation. Please try again later",
	pickup.UpstreamError.String():        "Pickup confirmation failed",
	pickup.Internal.String():             "Server error. Please try again later.",
	pickup.PickupInProgress.String():     "This pickup is already being confirmed. Please try again in a moment",
}

// Localizer picks the shopper's language and renders catalog messages in it.
type Localizer struct {
	catalog   *catalog.Builder
	supported []language.Tag
	matcher   language.Matcher
}

// NewLocalizer builds the he/en catalog. fallback ("he" or "en") is served
// when the Accept-Language header matches neither.
func NewLocalizer(fallback string) (*Localizer, error) {
	def, err := language.Parse(fallback)
	if err != nil {
		return nil, fmt.Errorf("pickup language %q: %w", fallback, err)
	}

	var supported []language.Tag
	switch base, _ := def.Base(); base.String() {
	case "he":
		supported = []language.Tag{language.Hebrew, language.English}
	case "en":
		supported = []language.Tag{language.English, language.Hebrew}
	default:
		return nil, fmt.Errorf("pickup language %q is not supported", fallback)
	}

	b := catalog.NewBuilder(catalog.Fallback(supported[0]))
	for tag, messages := range map[language.Tag]map[string]string{
		language.Hebrew:  hebrewMessages,
		language.English: englishMessages,
	} {
		for key, msg := range messages {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, err
			}
		}
	}

	return &Localizer{
		catalog:   b,
		supported: supported,
		matcher:   language.NewMatcher(supported),
	}, nil
}

// Match resolves an Accept-Language header to a supported language.
func (l *Localizer) Match(acceptLanguage string) language.Tag {
	tags, _, _ := language.ParseAcceptLanguage(acceptLanguage)
	_, index, _ := l.matcher.Match(tags...)
	return l.supported[index]
}

func (l *Localizer) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(l.catalog))
}

func (l *Localizer) StatusMessage(tag language.Tag, status pickup.Status) string {
	return l.Printer(tag).Sprintf(status.String())
}

func direction(tag language.Tag) string {
	if base, _ := tag.Base(); base.String() == "he" {
		return "rtl"
	}
	return "ltr"
}

var statusCodes = map[pickup.Status]int{
	pickup.Fulfilled:            http.StatusOK,
	pickup.Ready:                http.StatusOK,
	pickup.BadRequest:           http.StatusBadRequest,
	pickup.InvalidToken:         http.StatusForbidden,
	pickup.AlreadyConfirmed:     http.StatusOK,
	pickup.OrderNotFound:        http.StatusNotFound,
	pickup.AlreadyFulfilled:     http.StatusOK,
	pickup.PaymentIncomplete:    http.StatusForbidden,
	pickup.NoFulfillableItems:   http.StatusBadRequest,
	pickup.LocationUnresolved:   http.StatusInternalServerError,
	pickup.ItemsUnavailable:     http.StatusConflict,
	pickup.OrderProcessingError: http.StatusUnprocessableEntity,
	pickup.UpstreamRejected:     http.StatusBadGateway,
	pickup.UpstreamError:        http.StatusBadGateway,
	pickup.Internal:             http.StatusInternalServerError,
	pickup.PickupInProgress:     http.StatusConflict,
}

// HTTPStatus maps an outcome to the response code shown to the shopper.
func HTTPStatus(status pickup.Status) int {
	if code, ok := statusCodes[status]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// isSuccess reports outcomes shown with a success mark. Repeated confirmations
// are idempotent successes.
func isSuccess(status pickup.Status) bool {
	switch status {
	case pickup.Fulfilled, pickup.AlreadyConfirmed, pickup.AlreadyFulfilled:
		return true
	default:
		return false
	}
}
