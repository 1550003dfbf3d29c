package responder_test

import (
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/edgard/deliverybot/internal/responder"
)

var fixedInstant = time.Date(2024, time.January, 2, 15, 4, 5, 0, time.UTC)

func newTestResponder(t *testing.T, now time.Time) *responder.Responder {
	t.Helper()
	r, err := responder.New(
		responder.WithClock(func() time.Time { return now }),
		responder.WithLocation(time.UTC),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

// TestMatch covers the rule table with a fixed clock.
// Cases are grouped by behaviour using subtests.
func TestMatch(t *testing.T) {
	t.Parallel()

	r := newTestResponder(t, fixedInstant)

	type matchTestCase struct {
		name   string
		input  string
		intent responder.Intent
		reply  string
	}

	greeting := "Hi! Welcome to our food delivery service. How can I assist you today?"

	testGroups := map[string][]matchTestCase{
		"Single Rules": {
			{name: "greeting hey", input: "Hey there", intent: responder.IntentGreeting, reply: greeting},
			{name: "greeting hello", input: "hello", intent: responder.IntentGreeting, reply: greeting},
			{
				name:   "order status",
				input:  "What's my order status?",
				intent: responder.IntentOrderStatus,
				reply:  `You can track your order status by visiting the "My Orders" section in your account.`,
			},
			{
				name:   "delivery time uppercase",
				input:  "HOW MUCH IS THE delivery time",
				intent: responder.IntentDeliveryTime,
				reply:  "Delivery typically takes 30-45 minutes. You can check the exact time by going to your orders page.",
			},
			{
				name:   "menu",
				input:  "show me the menu",
				intent: responder.IntentMenu,
				reply:  `You can browse our full menu on the homepage under the "Menu" section.`,
			},
			{
				name:   "payment options",
				input:  "payment options?",
				intent: responder.IntentPaymentMethods,
				reply:  "We accept credit/debit cards, net banking, and popular e-wallets like PayPal.",
			},
			{
				name:   "cancel order",
				input:  "I want to CANCEL ORDER",
				intent: responder.IntentCancelOrder,
				reply:  `To cancel your order, please visit the "My Orders" section or contact our customer support.`,
			},
			{name: "date", input: "what's today's date", intent: responder.IntentDate, reply: "Jan 2nd 2024"},
			{name: "time", input: "what time is it", intent: responder.IntentTime, reply: "3:04:05 pm"},
			{
				name:   "thanks",
				input:  "thanks a lot",
				intent: responder.IntentThanks,
				reply:  "Thank you for choosing us! Have a great day!",
			},
			{
				name:   "customer service",
				input:  "customer service please",
				intent: responder.IntentSupport,
				reply:  "You can reach our customer support at support@fooddelivery.com or call us at 1-800-FOOD",
			},
		},
		"Priority": {
			{name: "greeting before menu", input: "hi, what's on the menu", intent: responder.IntentGreeting, reply: greeting},
			{
				name:   "delivery time before date",
				input:  "delivery time update",
				intent: responder.IntentDeliveryTime,
				reply:  "Delivery typically takes 30-45 minutes. You can check the exact time by going to your orders page.",
			},
			{name: "date before time", input: "date and time", intent: responder.IntentDate, reply: "Jan 2nd 2024"},
		},
		"Substring Matching": {
			{name: "hi inside history", input: "history", intent: responder.IntentGreeting, reply: greeting},
			{name: "hey inside they", input: "they said", intent: responder.IntentGreeting, reply: greeting},
		},
		"Fallback": {
			{name: "gibberish", input: "asdkjasd", intent: responder.IntentFallback, reply: responder.FallbackReply},
			{name: "empty", input: "", intent: responder.IntentFallback, reply: responder.FallbackReply},
			{name: "whitespace", input: "   \n\t", intent: responder.IntentFallback, reply: responder.FallbackReply},
		},
	}

	for groupName, cases := range testGroups {
		t.Run(groupName, func(t *testing.T) {
			t.Parallel()
			for _, tc := range cases {
				t.Run(tc.name, func(t *testing.T) {
					t.Parallel()
					got := r.Match(tc.input)
					if got.Intent != tc.intent {
						t.Errorf("Match(%q).Intent = %q, want %q", tc.input, got.Intent, tc.intent)
					}
					if got.Reply != tc.reply {
						t.Errorf("Match(%q).Reply = %q, want %q", tc.input, got.Reply, tc.reply)
					}
					if resp := r.Respond(tc.input); resp != tc.reply {
						t.Errorf("Respond(%q) = %q, want %q", tc.input, resp, tc.reply)
					}
				})
			}
		})
	}
}

func TestRespondDateWithRealClock(t *testing.T) {
	t.Parallel()

	r := responder.Default()
	before := time.Now()
	got := r.Respond("what's today's date")
	after := time.Now()

	pattern := regexp.MustCompile(`^[A-Z][a-z]{2} \d{1,2}(st|nd|rd|th) \d{4}$`)
	if !pattern.MatchString(got) {
		t.Fatalf("Respond(date) = %q, does not match %s", got, pattern)
	}
	// The date may roll over between the two reads.
	if got != responder.FormatDate(before) && got != responder.FormatDate(after) {
		t.Errorf("Respond(date) = %q, want %q or %q", got, responder.FormatDate(before), responder.FormatDate(after))
	}
}

func TestClockOnlyReadForClockRules(t *testing.T) {
	t.Parallel()

	var calls int
	var mu sync.Mutex
	r, err := responder.New(responder.WithClock(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return fixedInstant
	}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	r.Respond("hello")
	r.Respond("asdkjasd")
	r.Respond("thanks")
	if calls != 0 {
		t.Fatalf("clock read %d times for fixed replies, want 0", calls)
	}

	r.Respond("date")
	r.Respond("time")
	if calls != 2 {
		t.Errorf("clock read %d times for clock replies, want 2", calls)
	}
}

func TestWithLocation(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+10", 10*60*60)
	// 2024-01-31 20:30 UTC is Feb 1st 06:30 in UTC+10.
	now := time.Date(2024, time.January, 31, 20, 30, 0, 0, time.UTC)
	r, err := responder.New(
		responder.WithClock(func() time.Time { return now }),
		responder.WithLocation(loc),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := r.Respond("date"); got != "Feb 1st 2024" {
		t.Errorf("Respond(date) = %q, want %q", got, "Feb 1st 2024")
	}
	if got := r.Respond("time"); got != "6:30:00 am" {
		t.Errorf("Respond(time) = %q, want %q", got, "6:30:00 am")
	}
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rules []responder.Rule
	}{
		{name: "empty table", rules: []responder.Rule{}},
		{name: "missing intent", rules: []responder.Rule{{Triggers: []string{"a"}, Reply: responder.Text("a")}}},
		{name: "reserved intent", rules: []responder.Rule{{Intent: responder.IntentFallback, Triggers: []string{"a"}, Reply: responder.Text("a")}}},
		{name: "no triggers", rules: []responder.Rule{{Intent: "x", Reply: responder.Text("a")}}},
		{name: "empty trigger", rules: []responder.Rule{{Intent: "x", Triggers: []string{""}, Reply: responder.Text("a")}}},
		{name: "uppercase trigger", rules: []responder.Rule{{Intent: "x", Triggers: []string{"Menu"}, Reply: responder.Text("a")}}},
		{name: "nil reply", rules: []responder.Rule{{Intent: "x", Triggers: []string{"a"}}}},
		{
			name: "duplicate intent",
			rules: []responder.Rule{
				{Intent: "x", Triggers: []string{"a"}, Reply: responder.Text("a")},
				{Intent: "x", Triggers: []string{"b"}, Reply: responder.Text("b")},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := responder.New(responder.WithRules(tc.rules))
			if !errors.Is(err, responder.ErrInvalidRule) {
				t.Errorf("New() error = %v, want ErrInvalidRule", err)
			}
		})
	}

	if _, err := responder.New(responder.WithFallback("")); !errors.Is(err, responder.ErrInvalidRule) {
		t.Errorf("New(WithFallback(\"\")) error = %v, want ErrInvalidRule", err)
	}
}

func TestRulesIsACopy(t *testing.T) {
	t.Parallel()

	r := newTestResponder(t, fixedInstant)
	rules := r.Rules()
	if len(rules) != 10 {
		t.Fatalf("len(Rules()) = %d, want 10", len(rules))
	}
	if rules[0].Intent != responder.IntentGreeting || rules[9].Intent != responder.IntentSupport {
		t.Errorf("unexpected rule order: first %q, last %q", rules[0].Intent, rules[9].Intent)
	}

	rules[0].Triggers[0] = "zzz"
	rules[0] = responder.Rule{}
	if got := r.Match("hi").Intent; got != responder.IntentGreeting {
		t.Errorf("mutating Rules() result changed matching: got %q", got)
	}
}

func TestCustomRules(t *testing.T) {
	t.Parallel()

	r, err := responder.New(
		responder.WithRules([]responder.Rule{
			{Intent: "refund", Triggers: []string{"refund"}, Reply: responder.Text("Refunds take 5 days.")},
		}),
		responder.WithFallback("?"),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := r.Respond("REFUND please"); got != "Refunds take 5 days." {
		t.Errorf("Respond(refund) = %q", got)
	}
	if got := r.Respond("hello"); got != "?" {
		t.Errorf("Respond(hello) = %q, want fallback", got)
	}
}

func TestConcurrentRespond(t *testing.T) {
	t.Parallel()

	r := newTestResponder(t, fixedInstant)
	inputs := []string{"hi", "order status", "date", "time", "", "asdkjasd", "support"}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := inputs[i%len(inputs)]
			if got := r.Respond(in); got == "" {
				t.Errorf("Respond(%q) returned empty string", in)
			}
		}(i)
	}
	wg.Wait()
}
