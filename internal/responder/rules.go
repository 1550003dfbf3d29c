package responder

import "time"

// Intent names the rule that produced a reply.
type Intent string

// Known intents, in table order.
const (
	IntentGreeting       Intent = "greeting"
	IntentOrderStatus    Intent = "order_status"
	IntentDeliveryTime   Intent = "delivery_time"
	IntentMenu           Intent = "menu"
	IntentPaymentMethods Intent = "payment_methods"
	IntentCancelOrder    Intent = "cancel_order"
	IntentDate           Intent = "date"
	IntentTime           Intent = "time"
	IntentThanks         Intent = "thanks"
	IntentSupport        Intent = "support"
	IntentFallback       Intent = "fallback"
)

// FallbackReply is returned when no rule matches.
const FallbackReply = "I'm sorry, I didn't understand that. Can you please rephrase your question?"

// Reply produces the text of a rule's answer.
// Text and Clock are the two variants.
type Reply interface {
	// Render returns the reply for the given instant. Fixed replies ignore it.
	Render(now time.Time) string
	// NeedsClock reports whether Render reads now.
	NeedsClock() bool
}

// Text is a fixed reply.
type Text string

func (t Text) Render(time.Time) string { return string(t) }

func (t Text) NeedsClock() bool { return false }

// Clock is a reply computed from the current instant.
type Clock func(now time.Time) string

func (c Clock) Render(now time.Time) string { return c(now) }

func (c Clock) NeedsClock() bool { return true }

// Rule pairs a set of lowercase trigger substrings with a reply.
type Rule struct {
	Intent   Intent
	Triggers []string
	Reply    Reply
}

// DefaultRules returns the customer-service rule table in priority order.
// A fresh slice is returned on every call.
func DefaultRules() []Rule {
	return []Rule{
		{
			Intent:   IntentGreeting,
			Triggers: []string{"hi", "hello", "hey"},
			Reply:    Text("Hi! Welcome to our food delivery service. How can I assist you today?"),
		},
		{
			Intent:   IntentOrderStatus,
			Triggers: []string{"order status"},
			Reply:    Text(`You can track your order status by visiting the "My Orders" section in your account.`),
		},
		{
			Intent:   IntentDeliveryTime,
			Triggers: []string{"delivery time"},
			Reply:    Text("Delivery typically takes 30-45 minutes. You can check the exact time by going to your orders page."),
		},
		{
			Intent:   IntentMenu,
			Triggers: []string{"menu", "food"},
			Reply:    Text(`You can browse our full menu on the homepage under the "Menu" section.`),
		},
		{
			Intent:   IntentPaymentMethods,
			Triggers: []string{"payment methods", "payment options"},
			Reply:    Text("We accept credit/debit cards, net banking, and popular e-wallets like PayPal."),
		},
		{
			Intent:   IntentCancelOrder,
			Triggers: []string{"cancel order"},
			Reply:    Text(`To cancel your order, please visit the "My Orders" section or contact our customer support.`),
		},
		{
			Intent:   IntentDate,
			Triggers: []string{"date"},
			Reply:    Clock(FormatDate),
		},
		{
			Intent:   IntentTime,
			Triggers: []string{"time"},
			Reply:    Clock(FormatTime),
		},
		{
			Intent:   IntentThanks,
			Triggers: []string{"thank you", "thanks"},
			Reply:    Text("Thank you for choosing us! Have a great day!"),
		},
		{
			Intent:   IntentSupport,
			Triggers: []string{"support", "customer service"},
			Reply:    Text("You can reach our customer support at support@fooddelivery.com or call us at 1-800-FOOD"),
		},
	}
}
