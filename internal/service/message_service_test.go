package service

import (
	"context"
	"testing"
	"time"

	"automart-be/internal/dto"
	"automart-be/internal/entity"
	"automart-be/internal/realtime"

	"github.com/google/uuid"
)

func newMessageFixture() (IMessageService, *fakeUow, *fakeRelay, *entity.User, *entity.User) {
	users := newFakeUserRepository()
	buyer := &entity.User{Id: uuid.New(), Email: "buyer@test.local", FullName: "Buyer", Role: entity.UserRoleBuyer, Status: entity.UserStatusActive}
	dealer := &entity.User{Id: uuid.New(), Email: "dealer@test.local", FullName: "Dealer", Role: entity.UserRoleDealer, Status: entity.UserStatusActive}
	users.users[buyer.Id] = buyer
	users.users[dealer.Id] = dealer

	uow := &fakeUow{users: users, messages: &fakeMessageRepository{}}
	relay := &fakeRelay{}
	svc := NewMessageService(&fakeUowFactory{uow: uow}, relay, &fakeBlobStore{}, testLogger{})
	return svc, uow, relay, buyer, dealer
}

func strptr(s string) *string { return &s }

func TestSendPersistsUnreadAndRelays(t *testing.T) {
	svc, uow, relay, buyer, dealer := newMessageFixture()

	res, err := svc.Send(context.Background(), buyer.Id, &dto.SendMessageRequest{
		ReceiverId: dealer.Id,
		Text:       strptr("is the car still available?"),
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	// The message is durable regardless of whether the receiver is online.
	if len(uow.messages.messages) != 1 {
		t.Fatalf("stored messages = %d, want 1", len(uow.messages.messages))
	}
	stored := uow.messages.messages[0]
	if stored.IsRead {
		t.Error("stored message IsRead = true, want false")
	}
	if res.IsRead {
		t.Error("response IsRead = true, want false")
	}

	pushes := relay.callsFor(dealer.Id)
	if len(pushes) != 1 || pushes[0].eventType != realtime.EventNewMessage {
		t.Fatalf("relay calls for receiver = %v, want one %s", pushes, realtime.EventNewMessage)
	}
	if got := relay.callsFor(buyer.Id); len(got) != 0 {
		t.Errorf("relay calls for sender = %d, want 0", len(got))
	}
}

func TestDeleteForbiddenForNonSender(t *testing.T) {
	svc, uow, relay, buyer, dealer := newMessageFixture()

	msg := &entity.Message{
		Id:         uuid.New(),
		SenderId:   buyer.Id,
		ReceiverId: dealer.Id,
		Text:       strptr("hello"),
		CreatedAt:  time.Now(),
	}
	uow.messages.messages = append(uow.messages.messages, msg)

	if err := svc.Delete(context.Background(), dealer.Id, msg.Id); err == nil {
		t.Fatal("Delete by receiver succeeded, want error")
	}

	if len(uow.messages.messages) != 1 {
		t.Errorf("message removed by non-sender delete")
	}
	if len(relay.calls) != 0 {
		t.Errorf("relay calls = %d, want 0 after refused delete", len(relay.calls))
	}
}

func TestDeleteBySenderRemovesAndNotifies(t *testing.T) {
	svc, uow, relay, buyer, dealer := newMessageFixture()

	msg := &entity.Message{
		Id:         uuid.New(),
		SenderId:   buyer.Id,
		ReceiverId: dealer.Id,
		Text:       strptr("typo, ignore"),
		CreatedAt:  time.Now(),
	}
	uow.messages.messages = append(uow.messages.messages, msg)

	if err := svc.Delete(context.Background(), buyer.Id, msg.Id); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if len(uow.messages.messages) != 0 {
		t.Errorf("stored messages = %d, want 0", len(uow.messages.messages))
	}
	pushes := relay.callsFor(dealer.Id)
	if len(pushes) != 1 || pushes[0].eventType != realtime.EventMessageDeleted {
		t.Fatalf("relay calls for receiver = %v, want one %s", pushes, realtime.EventMessageDeleted)
	}
}

func TestGetConversationMarksMessagesRead(t *testing.T) {
	svc, uow, _, buyer, dealer := newMessageFixture()

	for i := 0; i < 3; i++ {
		uow.messages.messages = append(uow.messages.messages, &entity.Message{
			Id:         uuid.New(),
			SenderId:   buyer.Id,
			ReceiverId: dealer.Id,
			Text:       strptr("ping"),
			CreatedAt:  time.Now(),
		})
	}

	res, err := svc.GetConversation(context.Background(), dealer.Id, &dto.ConversationQuery{
		WithUserId: buyer.Id.String(),
	})
	if err != nil {
		t.Fatalf("GetConversation: %v", err)
	}
	if len(res) != 3 {
		t.Fatalf("conversation length = %d, want 3", len(res))
	}

	if len(uow.messages.markReadCalls) != 1 {
		t.Fatalf("MarkConversationRead calls = %d, want 1", len(uow.messages.markReadCalls))
	}
	call := uow.messages.markReadCalls[0]
	if call[0] != dealer.Id || call[1] != buyer.Id {
		t.Errorf("MarkConversationRead(%s, %s), want reader=%s other=%s", call[0], call[1], dealer.Id, buyer.Id)
	}

	for _, m := range uow.messages.messages {
		if !m.IsRead {
			t.Error("message still unread after history fetch")
		}
	}
}
