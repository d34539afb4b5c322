package gateway

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/adipras/campusfound/internal/pkg/logger"
	"github.com/adipras/campusfound/internal/pkg/models"
	nrpkg "github.com/adipras/campusfound/internal/pkg/newrelic"
)

// SMSGateway sends text messages via Twilio. Without credentials it runs in
// dev mode: messages are logged instead of sent, which is a fully supported
// configuration for local development.
type SMSGateway struct {
	client *twilio.RestClient
	from   string
}

// NewSMSGateway creates an SMS gateway from configuration
func NewSMSGateway(cfg models.SMSConfig) *SMSGateway {
	gw := &SMSGateway{from: cfg.From}

	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.From != "" {
		gw.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
		logger.Info("Twilio SMS gateway initialized",
			logger.String("from", cfg.From))
	} else {
		logger.Info("Twilio not configured, SMS gateway running in dev mode")
	}

	return gw
}

// Send delivers the message. In dev mode it logs the message and reports
// sent=false with a nil error; a provider failure returns sent=false and
// the error for the caller to log.
func (g *SMSGateway) Send(ctx context.Context, to, body string) (bool, error) {
	if to == "" {
		return false, fmt.Errorf("recipient phone is required")
	}

	if g.client == nil {
		logger.Info("[DEV SMS]",
			logger.String("to", to),
			logger.String("body", body))
		return false, nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(g.from)
	params.SetTo(to)
	params.SetBody(body)

	var sid string
	err := nrpkg.WithSegment(ctx, "Twilio/CreateMessage", func() error {
		resp, err := g.client.Api.CreateMessage(params)
		if err != nil {
			return err
		}
		if resp.Sid != nil {
			sid = *resp.Sid
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to send sms: %w", err)
	}

	logger.Debug("SMS sent",
		logger.String("to", to),
		logger.String("sid", sid))
	return true, nil
}
