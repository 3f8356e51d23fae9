package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Mutation is the payload published after a successful write.
type Mutation struct {
	Event string    `json:"event"`
	ID    string    `json:"id"`
	At    time.Time `json:"at"`
}

// Publisher broadcasts entity mutations over redis pub/sub so sibling
// services can react. A nil Publisher is a no-op, which is how the service
// runs when REDIS_ADDR is not configured.
type Publisher struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewPublisher(redisAddr string, logger *zap.Logger) *Publisher {
	if redisAddr == "" {
		return nil
	}
	return &Publisher{
		rdb:    redis.NewClient(&redis.Options{Addr: redisAddr}),
		logger: logger,
	}
}

// Mutated publishes an event like croner.workspace.created. Publishing is
// fire-and-forget: failures are logged and never reach the HTTP caller.
func (p *Publisher) Mutated(ctx context.Context, resource, action, id string) {
	if p == nil {
		return
	}

	channel := "croner." + resource + "." + action
	payload, err := json.Marshal(Mutation{Event: channel, ID: id, At: time.Now().UTC()})
	if err != nil {
		p.log("marshal event", channel, err)
		return
	}
	if err := p.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		p.log("publish event", channel, err)
	}
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.rdb.Close()
}

func (p *Publisher) log(op, channel string, err error) {
	if p.logger != nil {
		p.logger.Warn(op+" failed", zap.String("channel", channel), zap.Error(err))
	}
}
