package mapper

import (
	"automart-be/internal/entity"
	"automart-be/internal/model"
)

type MessageMapper struct{}

func NewMessageMapper() *MessageMapper {
	return &MessageMapper{}
}

func (m *MessageMapper) ToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}

	return &entity.Message{
		Id:           msg.Id,
		SenderId:     msg.SenderId,
		ReceiverId:   msg.ReceiverId,
		Text:         msg.Text,
		ImageURL:     msg.ImageURL,
		ImageAssetId: msg.ImageAssetId,
		IsRead:       msg.IsRead,
		CreatedAt:    msg.CreatedAt,
	}
}

func (m *MessageMapper) ToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}

	return &model.Message{
		Id:           msg.Id,
		SenderId:     msg.SenderId,
		ReceiverId:   msg.ReceiverId,
		Text:         msg.Text,
		ImageURL:     msg.ImageURL,
		ImageAssetId: msg.ImageAssetId,
		IsRead:       msg.IsRead,
		CreatedAt:    msg.CreatedAt,
	}
}

func (m *MessageMapper) ToEntities(msgs []*model.Message) []*entity.Message {
	entities := make([]*entity.Message, len(msgs))
	for i, msg := range msgs {
		entities[i] = m.ToEntity(msg)
	}
	return entities
}
