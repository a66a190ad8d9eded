// service/services.go
package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/andreyques41/lyfter-store/audit"
	"github.com/andreyques41/lyfter-store/cache"
	"github.com/andreyques41/lyfter-store/model"
	"github.com/andreyques41/lyfter-store/repository"
	"github.com/andreyques41/lyfter-store/util"
)

// CacheTTLs carries the staleness bounds applied to cached entries.
type CacheTTLs struct {
	Entry time.Duration
	List  time.Duration
}

// EntityChange is the event payload services publish after a durable
// mutation. Handlers see it only once the cache invalidation has run.
type EntityChange struct {
	ActorID  string
	Action   string
	Kind     string
	EntityID string
}

type Services struct {
	Product IProductService
	User    IUserService
	Cart    ICartService
	Order   IOrderService
}

func InitializeServices(
	db *gorm.DB,
	kv cache.KeyValueCache,
	ttls CacheTTLs,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	eventBus *util.EventBus,
) *Services {
	productRepo := repository.NewProductRepository(db)
	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	services := &Services{
		Product: NewProductService(productRepo, kv, ttls, validationUtil, eventBus),
		User:    NewUserService(userRepo, kv, ttls, validationUtil, eventBus),
		Cart:    NewCartService(cartRepo, kv, ttls, validationUtil, eventBus),
		Order:   NewOrderService(orderRepo, kv, ttls, validationUtil, eventBus),
	}

	registerAuditRecorder(eventBus, auditService)

	return services
}

// registerAuditRecorder subscribes one audit handler to every mutation topic
// so the trail cannot drift out of step with the set of entity kinds.
func registerAuditRecorder(eventBus *util.EventBus, auditService audit.Service) {
	kinds := []string{model.KindProduct, model.KindUser, model.KindCart, model.KindOrder}
	actions := []string{util.ActionCreated, util.ActionUpdated, util.ActionDeleted}

	handler := func(ctx context.Context, event util.Event) error {
		change, ok := event.Payload.(EntityChange)
		if !ok {
			return nil
		}
		return auditService.Record(ctx, audit.Entry{
			Timestamp:  time.Now(),
			ActorID:    change.ActorID,
			Action:     change.Action,
			EntityKind: change.Kind,
			EntityID:   change.EntityID,
		})
	}

	for _, kind := range kinds {
		for _, action := range actions {
			eventBus.Subscribe(util.Topic(kind, action), handler)
		}
	}
}
