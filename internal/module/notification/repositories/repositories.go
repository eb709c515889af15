package repositories

import (
	"context"
	"fmt"

	"ticketing-service/config"
	"ticketing-service/internal/module/order/models/response"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/log"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"
)

type repositories struct {
	log             log.Logger
	httpClient      *circuit.HTTPClient
	cfgEventService *config.EventServiceConfig
}

type Repositories interface {
	FindEventByID(ctx context.Context, eventID string) (response.Event, error)
}

func New(log log.Logger, httpClient *circuit.HTTPClient, cfgEventService *config.EventServiceConfig) Repositories {
	return &repositories{
		log:             log,
		httpClient:      httpClient,
		cfgEventService: cfgEventService,
	}
}

// FindEventByID implements Repositories. The email only needs title,
// location and schedule, so an uncached read is fine here.
func (r *repositories) FindEventByID(ctx context.Context, eventID string) (response.Event, error) {
	url := fmt.Sprintf("http://%s:%s/api/private/events/%s", r.cfgEventService.Host, r.cfgEventService.Port, eventID)
	resp, err := r.httpClient.Get(url)
	if err != nil {
		return response.Event{}, errors.BadGateway("error reach event service")
	}
	defer resp.Body.Close()

	if resp.StatusCode == 404 {
		return response.Event{}, errors.NotFound("event not found")
	}
	if resp.StatusCode != 200 {
		r.log.Error(ctx, "unexpected event service status", resp.StatusCode)
		return response.Event{}, errors.BadGateway("error get event")
	}

	var event response.Event
	if err := json.NewDecoder(resp.Body).Decode(&event); err != nil {
		return response.Event{}, errors.BadGateway("error decode event response")
	}

	return event, nil
}
