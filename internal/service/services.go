package service

import (
	"github.com/lushstays/staygo/internal/mail"
	"github.com/lushstays/staygo/internal/pricing"
	postgresrepo "github.com/lushstays/staygo/internal/repository/postgres"
	redisrepo "github.com/lushstays/staygo/internal/repository/redis"
	"github.com/lushstays/staygo/internal/service/booking"
	"github.com/lushstays/staygo/internal/service/catalog"
)

type Services struct {
	Catalog *catalog.Service
	Booking *booking.Service
}

type Config struct {
	Catalog catalog.Config
	Pricing pricing.Config
}

func NewServices(
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	pubsub *redisrepo.BookingsPubSub,
	mailer mail.Sender,
	cfg Config,
) *Services {
	return &Services{
		Catalog: catalog.New(store, cache, cfg.Catalog),
		Booking: booking.New(store, pubsub, mailer, pricing.New(cfg.Pricing)),
	}
}
