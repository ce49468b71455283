package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"salachat/internal/app/message"
	"salachat/internal/app/participant"
	"salachat/internal/configs"
)

// memParticipantStore is an in-memory participant.Store.
type memParticipantStore struct {
	records map[string]participant.Participant
}

func (s *memParticipantStore) Exists(ctx context.Context, name string) (bool, error) {
	_, ok := s.records[name]
	return ok, nil
}

func (s *memParticipantStore) Insert(ctx context.Context, p participant.Participant) error {
	s.records[p.Name] = p
	return nil
}

func (s *memParticipantStore) List(ctx context.Context) ([]participant.Participant, error) {
	participants := []participant.Participant{}
	for _, p := range s.records {
		participants = append(participants, p)
	}
	return participants, nil
}

func (s *memParticipantStore) UpdateLastStatus(ctx context.Context, name string, lastStatus int64) (bool, error) {
	p, ok := s.records[name]
	if !ok {
		return false, nil
	}
	p.LastStatus = lastStatus
	s.records[name] = p
	return true, nil
}

func (s *memParticipantStore) Delete(ctx context.Context, name string) error {
	delete(s.records, name)
	return nil
}

// memMessageStore is an in-memory message.Store.
type memMessageStore struct {
	messages []message.Message
	nextID   int
}

func (s *memMessageStore) Insert(ctx context.Context, m message.Message) (string, error) {
	s.nextID++
	m.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", s.nextID)
	s.messages = append(s.messages, m)
	return m.ID, nil
}

func (s *memMessageStore) ListAll(ctx context.Context) ([]message.Message, error) {
	return append([]message.Message{}, s.messages...), nil
}

func (s *memMessageStore) GetByID(ctx context.Context, id string) (message.Message, bool, error) {
	for _, m := range s.messages {
		if m.ID == id {
			return m, true, nil
		}
	}
	return message.Message{}, false, nil
}

func (s *memMessageStore) Delete(ctx context.Context, id string) error {
	for i, m := range s.messages {
		if m.ID == id {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			break
		}
	}
	return nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	messages := message.NewService(&memMessageStore{})
	participants := participant.NewService(
		&memParticipantStore{records: map[string]participant.Participant{}},
		messages,
	)

	deps := &AppDeps{
		Config:       &configs.AppConfig{Environment: "development"},
		Participants: participants,
		Messages:     messages,
	}

	server := httptest.NewServer(Router(deps))
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url, user, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != "" {
		req.Header.Set("user", user)
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return res
}

func decodeMessages(t *testing.T, res *http.Response) []message.Message {
	t.Helper()
	defer res.Body.Close()

	var messages []message.Message
	require.NoError(t, json.NewDecoder(res.Body).Decode(&messages))
	return messages
}

func TestRegisterListAndConflict(t *testing.T) {
	server := newTestServer(t)

	res := doJSON(t, http.MethodPost, server.URL+"/participants", "", `{"name":"Alice"}`)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	res.Body.Close()

	res = doJSON(t, http.MethodPost, server.URL+"/participants", "", `{"name":"Alice"}`)
	require.Equal(t, http.StatusConflict, res.StatusCode)
	res.Body.Close()

	res = doJSON(t, http.MethodGet, server.URL+"/participants", "", "")
	require.Equal(t, http.StatusOK, res.StatusCode)

	var participants []participant.Participant
	require.NoError(t, json.NewDecoder(res.Body).Decode(&participants))
	res.Body.Close()
	require.Len(t, participants, 1)
	require.Equal(t, "Alice", participants[0].Name)
}

func TestRegisterInvalidBody(t *testing.T) {
	server := newTestServer(t)

	res := doJSON(t, http.MethodPost, server.URL+"/participants", "", `{"name":""}`)
	require.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	res.Body.Close()
}

func TestMessageLifecycleScenario(t *testing.T) {
	server := newTestServer(t)

	res := doJSON(t, http.MethodPost, server.URL+"/participants", "", `{"name":"Alice"}`)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	res.Body.Close()

	res = doJSON(t, http.MethodPost, server.URL+"/messages", "Alice",
		`{"to":"Todos","text":"hi","type":"message"}`)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var posted message.Message
	require.NoError(t, json.NewDecoder(res.Body).Decode(&posted))
	res.Body.Close()
	require.NotEmpty(t, posted.ID)

	// Bob sees the broadcast even though he did not send it.
	res = doJSON(t, http.MethodGet, server.URL+"/messages", "Bob", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	visible := decodeMessages(t, res)

	found := false
	for _, m := range visible {
		if m.Text == "hi" {
			found = true
		}
	}
	require.True(t, found)

	// Bob may not delete Alice's message.
	res = doJSON(t, http.MethodDelete, server.URL+"/messages/"+posted.ID, "Bob", "")
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	res.Body.Close()

	// Alice may.
	res = doJSON(t, http.MethodDelete, server.URL+"/messages/"+posted.ID, "Alice", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	res.Body.Close()

	res = doJSON(t, http.MethodGet, server.URL+"/messages", "Bob", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	for _, m := range decodeMessages(t, res) {
		require.NotEqual(t, "hi", m.Text)
	}
}

func TestPostMessageWithoutUserHeader(t *testing.T) {
	server := newTestServer(t)

	res := doJSON(t, http.MethodPost, server.URL+"/messages", "",
		`{"to":"Todos","text":"hi","type":"message"}`)
	require.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	defer res.Body.Close()

	var body struct {
		Fields []string `json:"fields"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Contains(t, body.Fields, "from")
}

func TestListMessagesLimit(t *testing.T) {
	server := newTestServer(t)

	for i := 1; i <= 4; i++ {
		res := doJSON(t, http.MethodPost, server.URL+"/messages", "Alice",
			fmt.Sprintf(`{"to":"Todos","text":"m%d","type":"message"}`, i))
		require.Equal(t, http.StatusCreated, res.StatusCode)
		res.Body.Close()
	}

	res := doJSON(t, http.MethodGet, server.URL+"/messages?limit=2", "Bob", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	visible := decodeMessages(t, res)

	require.Len(t, visible, 2)
	require.Equal(t, "m3", visible[0].Text)
	require.Equal(t, "m4", visible[1].Text)

	// An unparseable limit means no limit.
	res = doJSON(t, http.MethodGet, server.URL+"/messages?limit=abc", "Bob", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, decodeMessages(t, res), 4)
}

func TestStatusHeartbeat(t *testing.T) {
	server := newTestServer(t)

	res := doJSON(t, http.MethodPost, server.URL+"/participants", "", `{"name":"Alice"}`)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	res.Body.Close()

	res = doJSON(t, http.MethodPost, server.URL+"/status", "Alice", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	res.Body.Close()

	res = doJSON(t, http.MethodPost, server.URL+"/status", "Ghost", "")
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	res.Body.Close()
}

func TestDeleteMessageEdgeCases(t *testing.T) {
	server := newTestServer(t)

	res := doJSON(t, http.MethodDelete, server.URL+"/messages/not-a-uuid", "Alice", "")
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	res.Body.Close()

	res = doJSON(t, http.MethodDelete,
		server.URL+"/messages/11111111-2222-3333-4444-555555555555", "Alice", "")
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	res.Body.Close()
}
