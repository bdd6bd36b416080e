package middleware

import (
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/m04kA/partizan-booking/internal/api/handlers"
)

const (
	rateLimitPrefix = "partizan:rate_limit"
	msgTooMany      = "слишком много запросов, попробуйте позже"
	msgTooManyForms = "Слишком много заявок. Попробуйте через минуту"
)

// RateLimitConfig параметры ограничения частоты
type RateLimitConfig struct {
	Rate               string // формат limiter: "20-M", "100-H"
	TrustForwardHeader bool   // брать IP из X-Forwarded-For / X-Real-IP
	FormResponse       bool   // отказ как ответ формы: 200 и {success:false, message}
}

// NewRateLimiter ограничивает запросы по IP
// client == nil - счетчики в памяти процесса, иначе общие в Redis
func NewRateLimiter(cfg RateLimitConfig, client *redis.Client) (func(http.Handler) http.Handler, error) {
	rate, err := limiter.NewRateFromFormatted(cfg.Rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", cfg.Rate, err)
	}

	var store limiter.Store
	if client != nil {
		store, err = redisstore.NewStoreWithOptions(client, limiter.StoreOptions{
			Prefix:   rateLimitPrefix,
			MaxRetry: 3,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis store: %w", err)
		}
	} else {
		store = memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          rateLimitPrefix,
			CleanUpInterval: limiter.DefaultCleanUpInterval,
		})
	}

	instance := limiter.New(store, rate, limiter.WithTrustForwardHeader(cfg.TrustForwardHeader))

	limitReached := func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondTooManyRequests(w, msgTooMany)
	}
	if cfg.FormResponse {
		limitReached = func(w http.ResponseWriter, r *http.Request) {
			handlers.RespondFormFailure(w, msgTooManyForms)
		}
	}

	mw := stdlib.NewMiddleware(instance, stdlib.WithLimitReachedHandler(limitReached))
	return mw.Handler, nil
}
