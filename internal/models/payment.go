package models

// PaymentMethod is the closed set of supported payment options.
type PaymentMethod string

const (
	PaymentMethodUPI      PaymentMethod = "upi"
	PaymentMethodRazorpay PaymentMethod = "razorpay"
	PaymentMethodCustom   PaymentMethod = "custom"
)

// ParsePaymentMethod maps a submitted method id to the closed set.
// Anything unrecognized means no payment details.
func ParsePaymentMethod(id string) PaymentMethod {
	switch PaymentMethod(id) {
	case PaymentMethodUPI, PaymentMethodRazorpay, PaymentMethodCustom:
		return PaymentMethod(id)
	default:
		return ""
	}
}

// PaymentInfo describes how the client can pay. An empty Method means no
// payment details were provided and the payment section is not rendered.
type PaymentInfo struct {
	Method PaymentMethod `gorm:"size:20" json:"method,omitempty"`

	UPIID      string `gorm:"column:upi_id;size:255" json:"upi_id,omitempty"`
	RazorpayID string `gorm:"column:razorpay_id;size:255" json:"razorpay_id,omitempty"`
	CustomURL  string `gorm:"column:custom_url;size:500" json:"custom_url,omitempty"`
}

// IsSet reports whether any payment details were provided.
func (p PaymentInfo) IsSet() bool {
	return p.Method != ""
}

// QRPayload returns the scannable payload for the payment section.
// Only UPI payments carry one.
func (p PaymentInfo) QRPayload() string {
	if p.Method == PaymentMethodUPI && p.UPIID != "" {
		return "upi://pay?pa=" + p.UPIID
	}
	return ""
}

// DisplayValue returns the payload field relevant to the selected method.
func (p PaymentInfo) DisplayValue() string {
	switch p.Method {
	case PaymentMethodUPI:
		return p.UPIID
	case PaymentMethodRazorpay:
		return p.RazorpayID
	case PaymentMethodCustom:
		return p.CustomURL
	default:
		return ""
	}
}

// DisplayLabel returns the label shown above the payment payload.
func (p PaymentInfo) DisplayLabel() string {
	switch p.Method {
	case PaymentMethodUPI:
		return "UPI ID"
	case PaymentMethodRazorpay:
		return "Razorpay Link"
	case PaymentMethodCustom:
		return "Payment Link"
	default:
		return ""
	}
}
