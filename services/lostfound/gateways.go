package lostfound

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/adipras/campusfound/services/lostfound SMSGateway

// SMSGateway delivers a text message to a phone number. sent reports whether
// a provider actually carried the message; dev mode logs instead and reports
// false with a nil error. Delivery failures must never fail the caller's
// operation beyond the returned error.
type SMSGateway interface {
	Send(ctx context.Context, to, body string) (sent bool, err error)
}
