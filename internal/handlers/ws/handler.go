package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/Mr-Jen/lexifine-server/internal/services/game"
)

// Config holds configuration for the websocket handler
type Config struct {
	// GameService handles all session and game operations
	GameService game.Service

	// Hub fans engine events out to connected clients
	Hub *Hub

	// PathPrefix is prepended to every route, for use behind a reverse
	// proxy. Empty or "/foo" form, no trailing slash.
	PathPrefix string

	// ShareBaseURL is the public URL lobbies are shared under, used for
	// the QR code endpoint
	ShareBaseURL string

	// Verbose enables per-event logging
	Verbose bool
}

// Handler terminates websocket connections and translates client events
// into engine operations.
type Handler struct {
	gameService game.Service
	hub         *Hub
	prefix      string
	shareBase   string
	verbose     bool
	upgrader    websocket.Upgrader
}

// NewHandler creates a new websocket handler
func NewHandler(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.Hub == nil {
		return nil, errors.New("hub cannot be nil")
	}

	return &Handler{
		gameService: cfg.GameService,
		hub:         cfg.Hub,
		prefix:      cfg.PathPrefix,
		shareBase:   cfg.ShareBaseURL,
		verbose:     cfg.Verbose,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Lobby ids are unguessable; the game carries no credentials
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}, nil
}

// RegisterRoutes attaches the handler's endpoints to the router
func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.GET(h.prefix+"/ws", h.serveWS)
	router.GET(h.prefix+"/lobby/:lobbyID", h.lobbyProbe)
	router.GET(h.prefix+"/lobby/:lobbyID/qr", h.lobbyQR)
	router.GET(h.prefix+"/healthz", h.health)
}

func (h *Handler) serveWS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	c := newClient(h, conn, uuid.New().String())
	h.hub.add(c)

	h.logf("client %s connected", c.participantID)

	go c.writePump()
	c.reply(eventConnected, connectedData{ParticipantID: c.participantID})
	go c.readPump()
}

func (h *Handler) lobbyProbe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	out, err := h.gameService.SessionExists(r.Context(), &game.SessionExistsInput{
		SessionID: ps.ByName("lobbyID"),
	})
	if err != nil {
		http.Error(w, "lookup failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if !out.Exists {
		w.WriteHeader(http.StatusNotFound)
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"exists": out.Exists})
}

func (h *Handler) lobbyQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	lobbyID := ps.ByName("lobbyID")

	out, err := h.gameService.SessionExists(r.Context(), &game.SessionExistsInput{
		SessionID: lobbyID,
	})
	if err != nil || !out.Exists {
		http.Error(w, "unknown lobby", http.StatusNotFound)
		return
	}

	png, err := qrcode.Encode(fmt.Sprintf("%s/lobby/%s", h.shareBase, lobbyID), qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	count, err := h.gameService.CountSessions(r.Context())
	if err != nil {
		http.Error(w, "unhealthy", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthData{Status: "ok", Sessions: count})
}

// dispatch routes one inbound client event to the engine. Engine-side
// rejections of the quiet kind are logged and otherwise dropped, matching
// how a lagging client's stale actions should be treated.
func (h *Handler) dispatch(c *client, msg inboundMessage) {
	ctx := context.Background()

	h.logf("client %s: %s", c.participantID, msg.Event)

	var err error
	switch msg.Event {
	case actionCreateLobby:
		err = h.createLobby(ctx, c, msg.Data)
	case actionJoinLobby:
		err = h.joinLobby(ctx, c, msg.Data)
	case actionLeaveLobby:
		err = h.leaveLobby(ctx, c)
	case actionInitGame:
		_, err = h.gameService.StartGame(ctx, &game.StartGameInput{
			SessionID:     c.sessionID,
			ParticipantID: c.participantID,
		})
	case actionSkipTerm:
		_, err = h.gameService.SkipTerm(ctx, &game.SkipTermInput{
			SessionID:     c.sessionID,
			ParticipantID: c.participantID,
		})
	case actionDefineSubmit:
		var data defineSubmitData
		if err = json.Unmarshal(msg.Data, &data); err == nil {
			_, err = h.gameService.SubmitAnswer(ctx, &game.SubmitAnswerInput{
				SessionID:     c.sessionID,
				ParticipantID: c.participantID,
				Text:          data.Text,
				LockIn:        data.LockIn,
			})
		}
	case actionTitleSubmit:
		var data titleSubmitData
		if err = json.Unmarshal(msg.Data, &data); err == nil {
			_, err = h.gameService.SubmitAnswerTitle(ctx, &game.SubmitAnswerTitleInput{
				SessionID:     c.sessionID,
				ParticipantID: c.participantID,
				AnswerID:      data.AnswerID,
				Title:         data.Title,
			})
		}
	case actionVoteSubmit:
		var data voteSubmitData
		if err = json.Unmarshal(msg.Data, &data); err == nil {
			_, err = h.gameService.SubmitVote(ctx, &game.SubmitVoteInput{
				SessionID:     c.sessionID,
				ParticipantID: c.participantID,
				AnswerID:      data.AnswerID,
				LockIn:        data.LockIn,
			})
		}
	case actionPresentNext:
		_, err = h.gameService.PresentNext(ctx, &game.PresentNextInput{
			SessionID:     c.sessionID,
			ParticipantID: c.participantID,
		})
	case actionStartScores:
		_, err = h.gameService.StartScoreboard(ctx, &game.StartScoreboardInput{
			SessionID:     c.sessionID,
			ParticipantID: c.participantID,
		})
	case actionUnready:
		_, err = h.gameService.Unready(ctx, &game.UnreadyInput{
			SessionID:     c.sessionID,
			ParticipantID: c.participantID,
		})
	default:
		c.reply(eventError, fmt.Sprintf("unknown event %q", msg.Event))
		return
	}

	if err != nil {
		h.logf("client %s: %s rejected: %v", c.participantID, msg.Event, err)
	}
}

func (h *Handler) createLobby(ctx context.Context, c *client, raw json.RawMessage) error {
	if c.sessionID != "" {
		c.reply(eventError, "already in a lobby")
		return nil
	}

	var data createLobbyData
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}

	out, err := h.gameService.CreateSession(ctx, &game.CreateSessionInput{
		ParticipantID: c.participantID,
		Name:          data.Name,
	})
	if err != nil {
		c.reply(eventError, "could not create lobby")
		return err
	}

	c.sessionID = out.SessionID
	c.reply(eventLobbyCreated, lobbyCreatedData{
		LobbyID: out.SessionID,
		HostID:  out.HostID,
	})
	return nil
}

func (h *Handler) joinLobby(ctx context.Context, c *client, raw json.RawMessage) error {
	if c.sessionID != "" {
		c.reply(eventError, "already in a lobby")
		return nil
	}

	var data joinLobbyData
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}

	out, err := h.gameService.JoinSession(ctx, &game.JoinSessionInput{
		SessionID:     data.LobbyID,
		ParticipantID: c.participantID,
		Name:          data.Name,
	})
	if err != nil {
		c.reply(eventError, "could not join lobby")
		return err
	}

	participants := make([]participantJSON, 0, len(out.Participants))
	for _, p := range out.Participants {
		participants = append(participants, participantJSON{
			ID:     p.ID,
			Name:   p.Name,
			Points: p.Points,
		})
	}

	c.sessionID = data.LobbyID
	c.reply(eventLobbyJoined, lobbyJoinedData{
		LobbyID:        data.LobbyID,
		HostID:         out.HostID,
		Participants:   participants,
		GameInProgress: out.GameInProgress,
	})
	return nil
}

func (h *Handler) leaveLobby(ctx context.Context, c *client) error {
	if c.sessionID == "" {
		return nil
	}

	_, err := h.gameService.Disconnect(ctx, &game.DisconnectInput{
		SessionID:     c.sessionID,
		ParticipantID: c.participantID,
	})
	c.sessionID = ""
	return err
}

// disconnected runs when a client's read pump exits for any reason
func (h *Handler) disconnected(c *client) {
	h.hub.remove(c)
	c.closeSend()

	if c.sessionID == "" {
		return
	}

	h.logf("client %s disconnected from %s", c.participantID, c.sessionID)

	_, err := h.gameService.Disconnect(context.Background(), &game.DisconnectInput{
		SessionID:     c.sessionID,
		ParticipantID: c.participantID,
	})
	if err != nil && !errors.Is(err, game.ErrInvalidSession) {
		log.Printf("disconnect cleanup for %s failed: %v", c.participantID, err)
	}
}

func (h *Handler) logf(format string, args ...any) {
	if h.verbose {
		log.Printf(format, args...)
	}
}
