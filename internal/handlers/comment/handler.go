package comment

import (
	"net/http"
	"shareit/infras/otel"
	"shareit/internal/domains/comment/model/dto"
	"shareit/internal/domains/comment/service"
	"shareit/shared/constant"
	"shareit/shared/validator"
	"shareit/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Comment
	otel    otel.Otel
}

func New(service service.Comment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router mounts onto the /items group, which already resolves the actor.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/{id}/comment", handler.AddComment)
}

// AddComment posts a comment on an item the acting user has rented.
// @Summary Comment on an item
// @Tags Comment
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Param id path string true "Item ID"
// @Param request body dto.AddCommentRequest true "Add Comment Request"
// @Success 200 {object} response.Data[dto.CommentResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/items/{id}/comment [post]
func (handler *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddComment")
	defer scope.End()

	req := dto.AddCommentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	comment, err := handler.service.AddComment(ctx, user, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("item_id", id).Msg("failed to add comment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, comment)
}
