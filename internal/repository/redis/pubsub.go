package redisrepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// BookingsPubSub announces completed bookings to interested consumers
// (dashboards, housekeeping schedules). Published from after-commit hooks
// only, so subscribers never see a booking that later rolled back.
type BookingsPubSub struct {
	rdb     *redis.Client
	channel string
}

func NewBookingsPubSub(rdb *redis.Client) *BookingsPubSub {
	return &BookingsPubSub{
		rdb:     rdb,
		channel: ChannelBookingsCreated(),
	}
}

type bookingCreatedMsg struct {
	Type      string `json:"type"`
	BookingID string `json:"booking_id"`
	Location  string `json:"location"`
	Total     int64  `json:"total"`
	TsUnix    int64  `json:"ts_unix"`
}

func (p *BookingsPubSub) PublishBookingCreated(
	ctx context.Context,
	bookingID, location string,
	total int64,
) error {
	msg := bookingCreatedMsg{
		Type:      "booking_created",
		BookingID: bookingID,
		Location:  location,
		Total:     total,
		TsUnix:    time.Now().Unix(),
	}

	b, _ := json.Marshal(msg)

	return p.rdb.Publish(ctx, p.channel, b).Err()
}

func (p *BookingsPubSub) Subscribe(
	ctx context.Context,
	handler func(ctx context.Context, bookingID string),
) error {
	sub := p.rdb.Subscribe(ctx, p.channel)
	defer sub.Close()

	ch := sub.Channel(redis.WithChannelSize(256))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var ev bookingCreatedMsg
			if err := json.Unmarshal([]byte(m.Payload), &ev); err == nil &&
				ev.BookingID != "" {
				handler(ctx, ev.BookingID)
			}
		}
	}
}
