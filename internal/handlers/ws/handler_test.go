package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Mr-Jen/lexifine-server/internal/services/game"
	gamemock "github.com/Mr-Jen/lexifine-server/internal/services/game/mocks"
)

type handlerTestSuite struct {
	suite.Suite

	ctrl        *gomock.Controller
	mockService *gamemock.MockService
	hub         *Hub
	handler     *Handler
	server      *httptest.Server
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerTestSuite))
}

func (s *handlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = gamemock.NewMockService(s.ctrl)
	s.hub = NewHub()

	handler, err := NewHandler(&Config{
		GameService:  s.mockService,
		Hub:          s.hub,
		ShareBaseURL: "https://lexifine.example",
	})
	s.Require().NoError(err)
	s.handler = handler

	router := httprouter.New()
	s.handler.RegisterRoutes(router)
	s.server = httptest.NewServer(router)
}

func (s *handlerTestSuite) TearDownTest() {
	s.server.Close()
	s.ctrl.Finish()
}

func (s *handlerTestSuite) TestNewHandlerValidation() {
	_, err := NewHandler(nil)
	s.Error(err)

	_, err = NewHandler(&Config{Hub: s.hub})
	s.Error(err)

	_, err = NewHandler(&Config{GameService: s.mockService})
	s.Error(err)
}

func (s *handlerTestSuite) TestHealth() {
	s.mockService.EXPECT().
		CountSessions(gomock.Any()).
		Return(7, nil)

	resp, err := http.Get(s.server.URL + "/healthz")
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusOK, resp.StatusCode)

	var body healthData
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("ok", body.Status)
	s.Equal(7, body.Sessions)
}

func (s *handlerTestSuite) TestHealthStoreFailure() {
	s.mockService.EXPECT().
		CountSessions(gomock.Any()).
		Return(0, assert.AnError)

	resp, err := http.Get(s.server.URL + "/healthz")
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusInternalServerError, resp.StatusCode)
}

func (s *handlerTestSuite) TestRoutesUnderPathPrefix() {
	handler, err := NewHandler(&Config{
		GameService: s.mockService,
		Hub:         s.hub,
		PathPrefix:  "/games",
	})
	s.Require().NoError(err)

	router := httprouter.New()
	handler.RegisterRoutes(router)
	server := httptest.NewServer(router)
	defer server.Close()

	s.mockService.EXPECT().
		CountSessions(gomock.Any()).
		Return(0, nil)

	resp, err := http.Get(server.URL + "/games/healthz")
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()
	s.Equal(http.StatusOK, resp.StatusCode)

	resp, err = http.Get(server.URL + "/healthz")
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *handlerTestSuite) TestLobbyProbe() {
	s.mockService.EXPECT().
		SessionExists(gomock.Any(), &game.SessionExistsInput{SessionID: "lobby-1"}).
		Return(&game.SessionExistsOutput{Exists: true}, nil)

	resp, err := http.Get(s.server.URL + "/lobby/lobby-1")
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusOK, resp.StatusCode)

	var body map[string]bool
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.True(body["exists"])
}

func (s *handlerTestSuite) TestLobbyProbeUnknown() {
	s.mockService.EXPECT().
		SessionExists(gomock.Any(), &game.SessionExistsInput{SessionID: "nope"}).
		Return(&game.SessionExistsOutput{Exists: false}, nil)

	resp, err := http.Get(s.server.URL + "/lobby/nope")
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *handlerTestSuite) TestLobbyQR() {
	s.mockService.EXPECT().
		SessionExists(gomock.Any(), &game.SessionExistsInput{SessionID: "lobby-1"}).
		Return(&game.SessionExistsOutput{Exists: true}, nil)

	resp, err := http.Get(s.server.URL + "/lobby/lobby-1/qr")
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("image/png", resp.Header.Get("Content-Type"))
}

func (s *handlerTestSuite) TestLobbyQRUnknown() {
	s.mockService.EXPECT().
		SessionExists(gomock.Any(), &game.SessionExistsInput{SessionID: "nope"}).
		Return(&game.SessionExistsOutput{Exists: false}, nil)

	resp, err := http.Get(s.server.URL + "/lobby/nope/qr")
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusNotFound, resp.StatusCode)
}

// dial opens a websocket connection and consumes the connected handshake,
// returning the connection and the assigned participant id.
func (s *handlerTestSuite) dial() (*websocket.Conn, string) {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)

	msg := s.readMessage(conn)
	s.Require().Equal(eventConnected, msg.Event)

	var data connectedData
	s.Require().NoError(json.Unmarshal(msg.Data, &data))
	s.Require().NotEmpty(data.ParticipantID)

	return conn, data.ParticipantID
}

type receivedMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func (s *handlerTestSuite) readMessage(conn *websocket.Conn) receivedMessage {
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(time.Second)))

	var msg receivedMessage
	s.Require().NoError(conn.ReadJSON(&msg))
	return msg
}

func (s *handlerTestSuite) TestConnectRegistersClient() {
	conn, _ := s.dial()
	defer func() { _ = conn.Close() }()

	s.Equal(1, s.hub.count())
}

func (s *handlerTestSuite) TestCreateLobbyRoundTrip() {
	conn, participantID := s.dial()
	defer func() { _ = conn.Close() }()

	s.mockService.EXPECT().
		CreateSession(gomock.Any(), &game.CreateSessionInput{
			ParticipantID: participantID,
			Name:          "Alice",
		}).
		Return(&game.CreateSessionOutput{
			SessionID: "lobby-1",
			HostID:    participantID,
		}, nil)

	// Leaving the lobby on close is part of the connection teardown
	s.mockService.EXPECT().
		Disconnect(gomock.Any(), &game.DisconnectInput{
			SessionID:     "lobby-1",
			ParticipantID: participantID,
		}).
		Return(&game.DisconnectOutput{}, nil).
		AnyTimes()

	err := conn.WriteJSON(inboundMessage{
		Event: actionCreateLobby,
		Data:  json.RawMessage(`{"name":"Alice"}`),
	})
	s.Require().NoError(err)

	msg := s.readMessage(conn)
	s.Equal(eventLobbyCreated, msg.Event)

	var data lobbyCreatedData
	s.Require().NoError(json.Unmarshal(msg.Data, &data))
	s.Equal("lobby-1", data.LobbyID)
	s.Equal(participantID, data.HostID)
}

func (s *handlerTestSuite) TestEngineEventsReachOnlyAddressedClients() {
	conn1, id1 := s.dial()
	defer func() { _ = conn1.Close() }()
	conn2, _ := s.dial()
	defer func() { _ = conn2.Close() }()

	s.hub.Notify([]string{id1}, "start-define-phase", map[string]string{"term": "petrichor"})

	msg := s.readMessage(conn1)
	s.Equal("start-define-phase", msg.Event)

	// The second client must not have received anything
	s.Require().NoError(conn2.SetReadDeadline(time.Now().Add(100 * time.Millisecond)))
	var stray receivedMessage
	s.Error(conn2.ReadJSON(&stray))
}

func (s *handlerTestSuite) TestUnknownEventGetsError() {
	conn, _ := s.dial()
	defer func() { _ = conn.Close() }()

	err := conn.WriteJSON(inboundMessage{Event: "no-such-event"})
	s.Require().NoError(err)

	msg := s.readMessage(conn)
	s.Equal(eventError, msg.Event)
}

func (s *handlerTestSuite) TestDisconnectLeavesSession() {
	conn, participantID := s.dial()

	s.mockService.EXPECT().
		CreateSession(gomock.Any(), gomock.Any()).
		Return(&game.CreateSessionOutput{SessionID: "lobby-1", HostID: participantID}, nil)

	err := conn.WriteJSON(inboundMessage{
		Event: actionCreateLobby,
		Data:  json.RawMessage(`{"name":"Alice"}`),
	})
	s.Require().NoError(err)
	s.Equal(eventLobbyCreated, s.readMessage(conn).Event)

	left := make(chan struct{})
	s.mockService.EXPECT().
		Disconnect(gomock.Any(), &game.DisconnectInput{
			SessionID:     "lobby-1",
			ParticipantID: participantID,
		}).
		DoAndReturn(func(any, *game.DisconnectInput) (*game.DisconnectOutput, error) {
			close(left)
			return &game.DisconnectOutput{}, nil
		})

	s.Require().NoError(conn.Close())

	select {
	case <-left:
	case <-time.After(time.Second):
		s.Fail("disconnect was never forwarded to the engine")
	}

	s.Eventually(func() bool { return s.hub.count() == 0 }, time.Second, 5*time.Millisecond)
}
