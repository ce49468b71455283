package message

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"salachat/internal/pkg/errs"
)

// fakeStore is an in-memory Store keeping messages in insertion order.
type fakeStore struct {
	messages []Message
	nextID   int
}

func (f *fakeStore) Insert(ctx context.Context, m Message) (string, error) {
	f.nextID++
	m.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", f.nextID)
	f.messages = append(f.messages, m)
	return m.ID, nil
}

func (f *fakeStore) ListAll(ctx context.Context) ([]Message, error) {
	return append([]Message{}, f.messages...), nil
}

func (f *fakeStore) GetByID(ctx context.Context, id string) (Message, bool, error) {
	for _, m := range f.messages {
		if m.ID == id {
			return m, true, nil
		}
	}
	return Message{}, false, nil
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	for i, m := range f.messages {
		if m.ID == id {
			f.messages = append(f.messages[:i], f.messages[i+1:]...)
			break
		}
	}
	return nil
}

func TestAppend_PersistsAndAssignsID(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	m, customErr := svc.Append(context.Background(), PostInput{
		From: "Alice",
		To:   BroadcastRecipient,
		Text: "hi",
		Type: KindMessage,
	})

	require.Nil(t, customErr)
	require.NotEmpty(t, m.ID)
	require.Regexp(t, `^\d{2}:\d{2}:\d{2}$`, m.Time)
	require.Len(t, store.messages, 1)
	require.Equal(t, "hi", store.messages[0].Text)
}

func TestAppend_ListsEveryViolatedField(t *testing.T) {
	svc := NewService(&fakeStore{})

	_, customErr := svc.Append(context.Background(), PostInput{})

	require.NotNil(t, customErr)
	require.Equal(t, http.StatusUnprocessableEntity, customErr.Status)
	require.ElementsMatch(t, []string{"from", "to", "text", "type"}, customErr.Fields)
}

func TestAppend_RejectsStatusKindFromClients(t *testing.T) {
	svc := NewService(&fakeStore{})

	_, customErr := svc.Append(context.Background(), PostInput{
		From: "Alice",
		To:   BroadcastRecipient,
		Text: "sneaky",
		Type: KindStatus,
	})

	require.NotNil(t, customErr)
	require.Equal(t, []string{"type"}, customErr.Fields)
}

func TestAppendStatus_BroadcastsWithStatusKind(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	customErr := svc.AppendStatus(context.Background(), "Alice", "Alice has left the room...")

	require.Nil(t, customErr)
	require.Len(t, store.messages, 1)
	require.Equal(t, BroadcastRecipient, store.messages[0].To)
	require.Equal(t, KindStatus, store.messages[0].Type)
}

// seedVisibilityLog writes a fixed log exercising every visibility rule.
func seedVisibilityLog(t *testing.T, svc *Service) {
	t.Helper()

	inputs := []PostInput{
		{From: "Alice", To: BroadcastRecipient, Text: "hello everyone", Type: KindMessage},
		{From: "Alice", To: "Bob", Text: "psst bob", Type: KindPrivateMessage},
		{From: "Bob", To: "Carol", Text: "bob to carol", Type: KindPrivateMessage},
		{From: "Carol", To: "Alice", Text: "carol to alice", Type: KindPrivateMessage},
	}
	for _, in := range inputs {
		_, customErr := svc.Append(context.Background(), in)
		require.Nil(t, customErr)
	}
}

func TestListFor_FiltersToVisibleMessages(t *testing.T) {
	svc := NewService(&fakeStore{})
	seedVisibilityLog(t, svc)

	visible, customErr := svc.ListFor(context.Background(), "Bob", 0)
	require.Nil(t, customErr)

	// Bob sees the broadcast, the private message to him, and his own private
	// message to Carol. He never sees Carol's message to Alice.
	texts := []string{}
	for _, m := range visible {
		texts = append(texts, m.Text)
	}
	require.Equal(t, []string{"hello everyone", "psst bob", "bob to carol"}, texts)
}

func TestListFor_TailLimitAppliesAfterFiltering(t *testing.T) {
	svc := NewService(&fakeStore{})
	seedVisibilityLog(t, svc)

	visible, customErr := svc.ListFor(context.Background(), "Bob", 2)
	require.Nil(t, customErr)

	// The last 2 of Bob's 3 visible messages, order preserved. The invisible
	// Carol->Alice message must not consume the limit.
	require.Len(t, visible, 2)
	require.Equal(t, "psst bob", visible[0].Text)
	require.Equal(t, "bob to carol", visible[1].Text)
}

func TestListFor_NonPositiveLimitMeansNoLimit(t *testing.T) {
	svc := NewService(&fakeStore{})
	seedVisibilityLog(t, svc)

	for _, limit := range []int{0, -1, -100} {
		visible, customErr := svc.ListFor(context.Background(), "Bob", limit)
		require.Nil(t, customErr)
		require.Len(t, visible, 3, "limit %d should return everything", limit)
	}
}

func TestListFor_LimitLargerThanResultReturnsEverything(t *testing.T) {
	svc := NewService(&fakeStore{})
	seedVisibilityLog(t, svc)

	visible, customErr := svc.ListFor(context.Background(), "Bob", 50)
	require.Nil(t, customErr)
	require.Len(t, visible, 3)
}

func TestDelete_OwnerRemovesMessage(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	m, customErr := svc.Append(context.Background(), PostInput{
		From: "Alice", To: BroadcastRecipient, Text: "hi", Type: KindMessage,
	})
	require.Nil(t, customErr)

	require.Nil(t, svc.Delete(context.Background(), m.ID, "Alice"))
	require.Empty(t, store.messages)

	// A second delete finds nothing.
	customErr = svc.Delete(context.Background(), m.ID, "Alice")
	require.NotNil(t, customErr)
	require.Equal(t, errs.ErrMessageNotFound, customErr.Code)
}

func TestDelete_NonOwnerIsRejected(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	m, customErr := svc.Append(context.Background(), PostInput{
		From: "Alice", To: BroadcastRecipient, Text: "hi", Type: KindMessage,
	})
	require.Nil(t, customErr)

	customErr = svc.Delete(context.Background(), m.ID, "Bob")
	require.NotNil(t, customErr)
	require.Equal(t, errs.ErrNotMessageOwner, customErr.Code)
	require.Equal(t, http.StatusUnauthorized, customErr.Status)
	require.Len(t, store.messages, 1)
}

func TestDelete_MalformedIDIsClientError(t *testing.T) {
	svc := NewService(&fakeStore{})

	customErr := svc.Delete(context.Background(), "not-a-uuid", "Alice")

	require.NotNil(t, customErr)
	require.Equal(t, errs.ErrInvalidMessageID, customErr.Code)
	require.Equal(t, http.StatusBadRequest, customErr.Status)
}
