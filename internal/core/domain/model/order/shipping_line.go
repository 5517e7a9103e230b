package order

// ShippingLine is the delivery option selected at checkout. Only its title and
// code are kept; they hint at the pickup location.
type ShippingLine struct {
	title string
	code  string
}

func NewShippingLine(title, code string) ShippingLine {
	return ShippingLine{title: title, code: code}
}

func (s ShippingLine) Title() string {
	return s.title
}

func (s ShippingLine) Code() string {
	return s.code
}
