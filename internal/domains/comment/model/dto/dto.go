package dto

import (
	"shareit/internal/domains/comment/model"
	"shareit/shared/constant"
	gModel "shareit/shared/model"
	"shareit/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

type AddCommentRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

func (a *AddCommentRequest) ToModel(authorID, authorName, itemID string, now time.Time) model.Comment {
	return model.Comment{
		ID:         uuid.NewString(),
		Text:       strings.TrimSpace(a.Text),
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: authorName,
		Created:    now,
		Metadata:   gModel.CreatedBy(authorID),
	}
}

type CommentResponse struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	AuthorName string `json:"author_name"`
	Created    string `json:"created"`
}

func (c *CommentResponse) FromModel(comment model.Comment) {
	c.ID = comment.ID
	c.Text = comment.Text
	c.AuthorName = comment.AuthorName
	c.Created = timezone.Format(comment.Created, constant.DateTimeFormat)
}

type GetCommentsResponse []CommentResponse

func (r *GetCommentsResponse) FromModels(models []model.Comment) {
	res := make(GetCommentsResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	*r = res
}
