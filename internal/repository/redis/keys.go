package redisrepo

import "fmt"

const ns = "staygo:v1"

func KeyLocations() string {
	return ns + ":locations"
}

func KeyRateLimit(scope, id string) string {
	return fmt.Sprintf("%s:rl:%s:%s", ns, scope, id)
}

func ChannelBookingsCreated() string {
	return ns + ":bookings:created"
}
