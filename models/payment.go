package models

import "strings"

// CashOnDelivery doubles as both a payment method token and a transaction
// reference: no transaction id is required when paying at the restaurant.
const CashOnDelivery = "cash on delivery"

// MinTransactionIDLen is the minimum accepted transaction reference length.
const MinTransactionIDLen = 6

// PaymentChannel is a supported payment method with its receiving account.
type PaymentChannel struct {
	Method  string `json:"method"`
	Account string `json:"account,omitempty"`
}

// PaymentChannels enumerates the supported channels shown in payment
// instructions, in display order.
var PaymentChannels = []PaymentChannel{
	{Method: "easypaisa", Account: "0345-1234567"},
	{Method: "jazzcash", Account: "0300-7654321"},
	{Method: "bank transfer", Account: "PK36SCBL0000001123456702"},
	{Method: CashOnDelivery},
}

// MatchPaymentMethod returns the supported channel token found in the
// (already lower-cased) text, or "" when none is present.
func MatchPaymentMethod(text string) string {
	for _, ch := range PaymentChannels {
		if strings.Contains(text, ch.Method) {
			return ch.Method
		}
	}
	// Common shorthand for the in-person channel.
	if strings.Contains(text, "cash") {
		return CashOnDelivery
	}
	return ""
}
