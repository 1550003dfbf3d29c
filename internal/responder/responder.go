// Package responder implements the customer chatbot's keyword intent matcher.
// Input is lowercased and checked against an ordered rule table; the first rule
// with a trigger contained in the input wins, otherwise the fallback reply is used.
package responder

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidRule is returned by New when the rule table is malformed.
var ErrInvalidRule = errors.New("invalid rule")

// Match is the outcome of classifying one utterance.
type Match struct {
	Intent Intent
	Reply  string
}

// Responder classifies utterances against an immutable rule table.
// It is safe for concurrent use.
type Responder struct {
	rules    []Rule
	fallback string
	now      func() time.Time
	loc      *time.Location
}

// Option configures a Responder.
type Option func(*Responder)

// WithClock replaces the time source used by clock replies.
func WithClock(now func() time.Time) Option {
	return func(r *Responder) {
		if now != nil {
			r.now = now
		}
	}
}

// WithLocation sets the time zone clock replies are rendered in.
func WithLocation(loc *time.Location) Option {
	return func(r *Responder) {
		if loc != nil {
			r.loc = loc
		}
	}
}

// WithRules replaces the default rule table. The slice is copied.
func WithRules(rules []Rule) Option {
	return func(r *Responder) {
		r.rules = rules
	}
}

// WithFallback replaces the reply used when nothing matches.
func WithFallback(reply string) Option {
	return func(r *Responder) {
		r.fallback = reply
	}
}

// New builds a Responder from DefaultRules unless WithRules is given,
// and validates the resulting table.
func New(opts ...Option) (*Responder, error) {
	r := &Responder{
		rules:    DefaultRules(),
		fallback: FallbackReply,
		now:      time.Now,
		loc:      time.Local,
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := validateRules(r.rules); err != nil {
		return nil, err
	}
	if r.fallback == "" {
		return nil, fmt.Errorf("%w: fallback reply is empty", ErrInvalidRule)
	}

	r.rules = copyRules(r.rules)
	return r, nil
}

// Default returns a Responder over DefaultRules using the local clock.
func Default() *Responder {
	r, err := New()
	if err != nil {
		panic(fmt.Sprintf("default rule table is invalid: %v", err))
	}
	return r
}

// Respond returns the reply for text.
func (r *Responder) Respond(text string) string {
	return r.Match(text).Reply
}

// Match returns the first matching rule's intent and reply, or the fallback.
func (r *Responder) Match(text string) Match {
	normalized := strings.ToLower(text)

	for _, rule := range r.rules {
		if !containsAny(normalized, rule.Triggers) {
			continue
		}
		var now time.Time
		if rule.Reply.NeedsClock() {
			now = r.now().In(r.loc)
		}
		return Match{Intent: rule.Intent, Reply: rule.Reply.Render(now)}
	}

	return Match{Intent: IntentFallback, Reply: r.fallback}
}

// Rules returns a copy of the rule table in evaluation order.
func (r *Responder) Rules() []Rule {
	return copyRules(r.rules)
}

func containsAny(s string, triggers []string) bool {
	for _, t := range triggers {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func copyRules(rules []Rule) []Rule {
	out := make([]Rule, len(rules))
	for i, rule := range rules {
		out[i] = rule
		out[i].Triggers = append([]string(nil), rule.Triggers...)
	}
	return out
}

func validateRules(rules []Rule) error {
	if len(rules) == 0 {
		return fmt.Errorf("%w: rule table is empty", ErrInvalidRule)
	}

	seen := make(map[Intent]bool, len(rules))
	for i, rule := range rules {
		switch {
		case rule.Intent == "":
			return fmt.Errorf("%w: rule %d has no intent", ErrInvalidRule, i)
		case rule.Intent == IntentFallback:
			return fmt.Errorf("%w: rule %d uses reserved intent %q", ErrInvalidRule, i, IntentFallback)
		case seen[rule.Intent]:
			return fmt.Errorf("%w: duplicate intent %q", ErrInvalidRule, rule.Intent)
		case rule.Reply == nil:
			return fmt.Errorf("%w: intent %q has no reply", ErrInvalidRule, rule.Intent)
		case len(rule.Triggers) == 0:
			return fmt.Errorf("%w: intent %q has no triggers", ErrInvalidRule, rule.Intent)
		}
		seen[rule.Intent] = true

		for _, trigger := range rule.Triggers {
			if trigger == "" {
				return fmt.Errorf("%w: intent %q has an empty trigger", ErrInvalidRule, rule.Intent)
			}
			if trigger != strings.ToLower(trigger) {
				return fmt.Errorf("%w: intent %q trigger %q is not lowercase", ErrInvalidRule, rule.Intent, trigger)
			}
		}
	}
	return nil
}
