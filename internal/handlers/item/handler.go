package item

import (
	"net/http"
	"shareit/config"
	"shareit/infras/otel"
	"shareit/internal/domains/item/service"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Item
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Item, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

// Router mounts the item read routes. Comment routes share the /items prefix
// and are mounted by the comment handler on the same group.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.GetOwnerItems)
	router.Get("/{id}", handler.GetItem)
}

// GetOwnerItems lists the acting user's items with their last and next bookings.
// @Summary List own items
// @Tags Item
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Param from query int false "Offset of the first item"
// @Param size query int false "Page size"
// @Success 200 {object} response.Data[dto.GetItemsResponse]
// @Failure 404 {object} response.Error
// @Router /v1/items [get]
func (handler *Handler) GetOwnerItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnerItems")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	if err := queryParams.FromOffsetRequest(r, handler.cfg.Booking.DefaultPageSize); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	items, err := handler.service.GetOwnerItems(ctx, user, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get owner items")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, items)
}

// GetItem returns one item.
// @Summary Get an item
// @Tags Item
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Param id path string true "Item ID"
// @Success 200 {object} response.Data[dto.ItemResponse]
// @Failure 404 {object} response.Error
// @Router /v1/items/{id} [get]
func (handler *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	item, err := handler.service.Get(ctx, user, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("item_id", id).Msg("failed to get item")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, item)
}
