package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"moving-service/src/internal/entity"
	"moving-service/src/internal/gateway/geo"
	"moving-service/src/internal/gateway/messaging"
	"moving-service/src/internal/model"
	"moving-service/src/internal/model/converter"
	"moving-service/src/internal/pricing"
	"moving-service/src/internal/repository"
	httpError "moving-service/src/pkg/http-error"
	"moving-service/src/pkg/log"
	"moving-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

const (
	TypeOrderReceipt = "order:receipt"

	draftKeyPattern    = "BOOKING:DRAFT:%s"
	finalizeKeyPattern = "BOOKING:FINALIZE:%s"
	finalizeLockTTL    = 30 * time.Second

	msgNoSession            = "no active booking session, please start one"
	msgSubmissionInProgress = "a submission is already in progress for this session"
	msgRouteResolution      = "could not resolve the route for this move, please check the addresses and retry"
	msgStoreUnavailable     = "could not save the order, please retry"
	msgNotReadyForPayment   = "booking is not ready for payment yet"
)

var defaultTimeSlots = []string{"08:00", "10:00", "12:00", "14:00", "16:00"}

// BookingUseCase owns one BookingDraft per user session and walks it through
// vehicle -> schedule -> checklist -> payment -> finalized.
type BookingUseCase struct {
	Log             log.Log
	Validate        *validator.Validate
	OrderRepository repository.OrderRepositoryInterface
	Config          *viper.Viper
	Redis           redis.UniversalClient
	Geocoder        geo.Geocoder
	Router          geo.Router
	Pricing         *pricing.Engine
	OrderProducer   messaging.OrderEventPublisher
	AsynqClient     *asynq.Client

	slotCatalog []string
	singleSlot  bool
	draftTTL    time.Duration
}

func NewBookingUseCase(
	logger log.Log,
	validate *validator.Validate,
	orderRepository repository.OrderRepositoryInterface,
	cfg *viper.Viper,
	redisClient redis.UniversalClient,
	geocoder geo.Geocoder,
	router geo.Router,
	pricingEngine *pricing.Engine,
	orderProducer messaging.OrderEventPublisher,
	asynqClient *asynq.Client,
) *BookingUseCase {
	slots := cfg.GetStringSlice("booking.time_slots")
	if len(slots) == 0 {
		slots = defaultTimeSlots
	}
	ttl := time.Duration(cfg.GetInt("booking.draft_ttl_minutes")) * time.Minute
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}

	return &BookingUseCase{
		Log:             logger,
		Validate:        validate,
		OrderRepository: orderRepository,
		Config:          cfg,
		Redis:           redisClient,
		Geocoder:        geocoder,
		Router:          router,
		Pricing:         pricingEngine,
		OrderProducer:   orderProducer,
		AsynqClient:     asynqClient,
		slotCatalog:     slots,
		singleSlot:      cfg.GetBool("booking.single_slot"),
		draftTTL:        ttl,
	}
}

// StartSession creates a fresh draft for the user, replacing any existing one.
func (c *BookingUseCase) StartSession(ctx context.Context, userID string) utils.Result {
	var result utils.Result

	draft := model.NewBookingDraft(userID)
	if err := c.saveDraft(ctx, draft); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "could not start booking session"
		result.Error = errObj
		c.Log.Error("booking-usecase", err.Error(), "StartSession", userID)
		return result
	}

	c.Log.Info("booking-usecase", "booking session started", "StartSession", userID)
	result.Data = converter.DraftToSession(draft, c.slotCatalog)
	return result
}

func (c *BookingUseCase) GetSession(ctx context.Context, userID string) utils.Result {
	var result utils.Result

	draft, errObj := c.loadDraft(ctx, userID)
	if errObj != nil {
		result.Error = errObj
		return result
	}

	result.Data = converter.DraftToSession(draft, c.slotCatalog)
	return result
}

func (c *BookingUseCase) SelectVehicle(ctx context.Context, request *model.SelectVehicleRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("booking-usecase", err.Error(), "SelectVehicle", utils.ConvertString(request))
		return result
	}

	if _, ok := c.Pricing.Catalog[pricing.VehicleClass(request.Vehicle)]; !ok {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("unknown vehicle class: %s", request.Vehicle)
		result.Error = errObj
		c.Log.Error("booking-usecase", errObj.Message, "SelectVehicle", request.UserID)
		return result
	}

	draft, errObj := c.loadDraft(ctx, request.UserID)
	if errObj != nil {
		result.Error = errObj
		return result
	}

	if err := draft.SelectVehicle(request.Vehicle); err != nil {
		result.Error = c.draftError(err, "SelectVehicle", request.UserID)
		return result
	}

	return c.persist(ctx, draft, "SelectVehicle")
}

func (c *BookingUseCase) SetSchedule(ctx context.Context, request *model.ScheduleRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("booking-usecase", err.Error(), "SetSchedule", utils.ConvertString(request))
		return result
	}

	draft, errObj := c.loadDraft(ctx, request.UserID)
	if errObj != nil {
		result.Error = errObj
		return result
	}

	if err := draft.SetSchedule(request.Date, request.Slots, c.slotCatalog, c.singleSlot); err != nil {
		result.Error = c.draftError(err, "SetSchedule", request.UserID)
		return result
	}

	return c.persist(ctx, draft, "SetSchedule")
}

func (c *BookingUseCase) AddChecklistItem(ctx context.Context, request *model.ChecklistAddRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("booking-usecase", err.Error(), "AddChecklistItem", utils.ConvertString(request))
		return result
	}

	draft, errObj := c.loadDraft(ctx, request.UserID)
	if errObj != nil {
		result.Error = errObj
		return result
	}

	if _, err := draft.AddChecklistItem(request.Name); err != nil {
		result.Error = c.draftError(err, "AddChecklistItem", request.UserID)
		return result
	}

	return c.persist(ctx, draft, "AddChecklistItem")
}

func (c *BookingUseCase) ToggleChecklistItem(ctx context.Context, request *model.ChecklistItemRequest) utils.Result {
	return c.mutateChecklist(ctx, request, "ToggleChecklistItem", func(draft *model.BookingDraft) error {
		return draft.ToggleChecklistItem(request.ItemID)
	})
}

func (c *BookingUseCase) RemoveChecklistItem(ctx context.Context, request *model.ChecklistItemRequest) utils.Result {
	return c.mutateChecklist(ctx, request, "RemoveChecklistItem", func(draft *model.BookingDraft) error {
		return draft.RemoveChecklistItem(request.ItemID)
	})
}

func (c *BookingUseCase) mutateChecklist(ctx context.Context, request *model.ChecklistItemRequest, scope string, mutate func(*model.BookingDraft) error) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("booking-usecase", err.Error(), scope, utils.ConvertString(request))
		return result
	}

	draft, errObj := c.loadDraft(ctx, request.UserID)
	if errObj != nil {
		result.Error = errObj
		return result
	}

	if err := mutate(draft); err != nil {
		result.Error = c.draftError(err, scope, request.UserID)
		return result
	}

	return c.persist(ctx, draft, scope)
}

// ProceedToPayment advances to AWAITING_PAYMENT. An empty checklist is fine.
func (c *BookingUseCase) ProceedToPayment(ctx context.Context, userID string) utils.Result {
	var result utils.Result

	draft, errObj := c.loadDraft(ctx, userID)
	if errObj != nil {
		result.Error = errObj
		return result
	}

	if err := draft.ProceedToPayment(); err != nil {
		result.Error = c.draftError(err, "ProceedToPayment", userID)
		return result
	}

	return c.persist(ctx, draft, "ProceedToPayment")
}

// Finalize resolves the route, prices the move, and writes the order. A
// redis SETNX lock serializes concurrent submits so one session can never
// create two orders; the loser gets a conflict and may retry after the
// winner settles. On any collaborator failure the draft stays in
// AWAITING_PAYMENT untouched.
func (c *BookingUseCase) Finalize(ctx context.Context, request *model.FinalizeRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("booking-usecase", err.Error(), "Finalize", utils.ConvertString(request))
		return result
	}

	lockKey := fmt.Sprintf(finalizeKeyPattern, request.UserID)
	locked, err := c.Redis.SetNX(ctx, lockKey, "1", finalizeLockTTL).Result()
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = msgStoreUnavailable
		result.Error = errObj
		c.Log.Error("booking-usecase", err.Error(), "Finalize-lock", request.UserID)
		return result
	}
	if !locked {
		errObj := httpError.NewConflict()
		errObj.Message = msgSubmissionInProgress
		result.Error = errObj
		c.Log.Error("booking-usecase", msgSubmissionInProgress, "Finalize", request.UserID)
		return result
	}
	defer c.Redis.Del(context.WithoutCancel(ctx), lockKey)

	draft, errObj := c.loadDraft(ctx, request.UserID)
	if errObj != nil {
		result.Error = errObj
		return result
	}
	if draft.State != model.StateAwaitingPayment {
		errObj := httpError.NewConflict()
		errObj.Message = msgNotReadyForPayment
		result.Error = errObj
		c.Log.Error("booking-usecase", errObj.Message, "Finalize", string(draft.State))
		return result
	}

	route, errObj := c.resolveRoute(ctx, request)
	if errObj != nil {
		result.Error = errObj
		return result
	}

	cost, err := c.Pricing.Quote(pricing.VehicleClass(draft.Vehicle), *route)
	if err != nil {
		result.Error = c.pricingError(ctx, err, draft)
		return result
	}

	now := time.Now().UTC()
	order, err := converter.DraftToOrder(draft, request, route, cost, uuid.NewString(), now)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("booking-usecase", err.Error(), "Finalize-assemble", request.UserID)
		return result
	}

	if err := c.OrderRepository.Create(ctx, order); err != nil {
		errObj := httpError.NewBadGateway()
		errObj.Message = msgStoreUnavailable
		result.Error = errObj
		c.Log.Error("booking-usecase", err.Error(), "Finalize-store", order.OrderID)
		return result
	}

	// order is durable from here; the draft is spent
	c.publishOrderCreated(order)
	c.enqueueReceipt(order)

	if err := c.Redis.Del(ctx, fmt.Sprintf(draftKeyPattern, request.UserID)).Err(); err != nil {
		c.Log.Error("booking-usecase", err.Error(), "Finalize-cleanup", request.UserID)
	}

	c.Log.Info("booking-usecase", "order finalized", "Finalize", order.OrderID)
	result.Data = converter.OrderToResponse(order)
	return result
}

// AbandonSession drops the draft; in-flight lookups for it become no-ops.
func (c *BookingUseCase) AbandonSession(ctx context.Context, userID string) utils.Result {
	var result utils.Result

	if err := c.Redis.Del(ctx, fmt.Sprintf(draftKeyPattern, userID)).Err(); err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("booking-usecase", err.Error(), "AbandonSession", userID)
		return result
	}

	c.Log.Info("booking-usecase", "booking session abandoned", "AbandonSession", userID)
	result.Data = map[string]interface{}{"abandoned": true}
	return result
}

// ProcessReceiptTask handles the asynq receipt task enqueued on finalize.
func (c *BookingUseCase) ProcessReceiptTask(ctx context.Context, task *asynq.Task) error {
	var payload model.OrderCreatedEvent
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		c.Log.Error("booking-usecase", err.Error(), "ProcessReceiptTask", "")
		return err
	}

	// receipt delivery itself belongs to the notification service; this
	// task records that the order left the booking pipeline
	c.Log.Info("booking-usecase", "receipt task processed", "ProcessReceiptTask", payload.OrderID)
	return nil
}

// resolveRoute geocodes both endpoints concurrently, then routes between
// them. Both lookups must succeed before pricing runs.
func (c *BookingUseCase) resolveRoute(ctx context.Context, request *model.FinalizeRequest) (*model.RouteEstimate, *httpError.CommonError) {
	var origin, destination model.Coordinate

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		coord, err := c.Geocoder.Resolve(gctx, request.Origin)
		if err != nil {
			return err
		}
		origin = coord
		return nil
	})
	g.Go(func() error {
		coord, err := c.Geocoder.Resolve(gctx, request.Destination)
		if err != nil {
			return err
		}
		destination = coord
		return nil
	})
	if err := g.Wait(); err != nil {
		c.Log.Error("booking-usecase", err.Error(), "Finalize-geocode", request.UserID)
		errObj := httpError.NewBadGateway()
		errObj.Message = msgRouteResolution
		return nil, errObj
	}

	route, err := c.Router.Route(ctx, origin, destination)
	if err != nil {
		c.Log.Error("booking-usecase", err.Error(), "Finalize-route", request.UserID)
		errObj := httpError.NewBadGateway()
		errObj.Message = msgRouteResolution
		return nil, errObj
	}

	return route, nil
}

func (c *BookingUseCase) pricingError(ctx context.Context, err error, draft *model.BookingDraft) *httpError.CommonError {
	switch {
	case errors.Is(err, pricing.ErrInvalidVehicleClass), errors.Is(err, pricing.ErrInvalidRouteEstimate):
		errObj := httpError.NewBadRequest()
		errObj.Message = err.Error()
		c.Log.Error("booking-usecase", err.Error(), "Finalize-quote", draft.UserID)
		return errObj
	default:
		// a negative price means the rate card or route data is corrupt;
		// the session cannot be trusted, discard it
		c.Log.Error("booking-usecase", err.Error(), "Finalize-invariant", draft.UserID)
		if delErr := c.Redis.Del(ctx, fmt.Sprintf(draftKeyPattern, draft.UserID)).Err(); delErr != nil {
			c.Log.Error("booking-usecase", delErr.Error(), "Finalize-invariant-cleanup", draft.UserID)
		}
		return httpError.NewInternalServerError()
	}
}

func (c *BookingUseCase) draftError(err error, scope, userID string) *httpError.CommonError {
	var errObj *httpError.CommonError
	switch {
	case errors.Is(err, model.ErrChecklistItemNotFound):
		errObj = httpError.NewNotFound()
	case errors.Is(err, model.ErrSessionFinalized):
		errObj = httpError.NewConflict()
	default:
		errObj = httpError.NewUnprocessableEntity()
	}
	errObj.Message = err.Error()
	c.Log.Error("booking-usecase", err.Error(), scope, userID)
	return errObj
}

func (c *BookingUseCase) persist(ctx context.Context, draft *model.BookingDraft, scope string) utils.Result {
	var result utils.Result

	if err := c.saveDraft(ctx, draft); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "could not save booking session"
		result.Error = errObj
		c.Log.Error("booking-usecase", err.Error(), scope, draft.UserID)
		return result
	}

	result.Data = converter.DraftToSession(draft, c.slotCatalog)
	return result
}

func (c *BookingUseCase) saveDraft(ctx context.Context, draft *model.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return c.Redis.Set(ctx, fmt.Sprintf(draftKeyPattern, draft.UserID), data, c.draftTTL).Err()
}

func (c *BookingUseCase) loadDraft(ctx context.Context, userID string) (*model.BookingDraft, *httpError.CommonError) {
	data, err := c.Redis.Get(ctx, fmt.Sprintf(draftKeyPattern, userID)).Result()
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = msgNoSession
		c.Log.Error("booking-usecase", utils.ConvertString(err), "loadDraft", userID)
		return nil, errObj
	}

	var draft model.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		errObj := httpError.NewInternalServerError()
		c.Log.Error("booking-usecase", err.Error(), "loadDraft", userID)
		return nil, errObj
	}

	return &draft, nil
}

func (c *BookingUseCase) publishOrderCreated(order *entity.MoveOrder) {
	if c.OrderProducer == nil {
		return
	}
	event := converter.OrderToEvent(order, uuid.NewString())
	if err := c.OrderProducer.SendOrderCreated(event); err != nil {
		c.Log.Error("booking-usecase", fmt.Sprintf("failed to publish order-created event: %v", err), "Finalize", order.OrderID)
	}
}

func (c *BookingUseCase) enqueueReceipt(order *entity.MoveOrder) {
	if c.AsynqClient == nil {
		return
	}
	payload, err := json.Marshal(converter.OrderToEvent(order, uuid.NewString()))
	if err != nil {
		c.Log.Error("booking-usecase", err.Error(), "Finalize-receipt", order.OrderID)
		return
	}
	if _, err := c.AsynqClient.Enqueue(asynq.NewTask(TypeOrderReceipt, payload)); err != nil {
		c.Log.Error("booking-usecase", fmt.Sprintf("failed to enqueue receipt task: %v", err), "Finalize", order.OrderID)
	}
}
