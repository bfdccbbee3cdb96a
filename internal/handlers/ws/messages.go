package ws

import "encoding/json"

// Client-sent event names
const (
	actionCreateLobby  = "create-lobby"
	actionJoinLobby    = "join-lobby"
	actionLeaveLobby   = "leave-lobby"
	actionInitGame     = "init-game"
	actionSkipTerm     = "skip-term"
	actionDefineSubmit = "define-submit"
	actionTitleSubmit  = "definition-title-submit"
	actionVoteSubmit   = "vote-submit"
	actionPresentNext  = "present-next-player"
	actionStartScores  = "start-scoreboard-phase"
	actionUnready      = "unready"
)

// Server-sent event names owned by the transport; game events pass through
// with the names the engine gives them.
const (
	eventConnected    = "connected"
	eventLobbyCreated = "lobby-created"
	eventLobbyJoined  = "lobby-joined"
	eventError        = "error"
)

// inboundMessage is the envelope for client-sent events
type inboundMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// outboundMessage is the envelope for server-sent events
type outboundMessage struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

type createLobbyData struct {
	Name string `json:"name"`
}

type joinLobbyData struct {
	LobbyID string `json:"lobbyId"`
	Name    string `json:"name"`
}

type defineSubmitData struct {
	Text   string `json:"text"`
	LockIn bool   `json:"lockIn"`
}

type titleSubmitData struct {
	AnswerID string `json:"answerId"`
	Title    string `json:"title"`
}

type voteSubmitData struct {
	AnswerID string `json:"answerId"`
	LockIn   bool   `json:"lockIn"`
}

type connectedData struct {
	ParticipantID string `json:"participantId"`
}

type lobbyCreatedData struct {
	LobbyID string `json:"lobbyId"`
	HostID  string `json:"hostId"`
}

type lobbyJoinedData struct {
	LobbyID        string            `json:"lobbyId"`
	HostID         string            `json:"hostId"`
	Participants   []participantJSON `json:"participants"`
	GameInProgress bool              `json:"gameInProgress"`
}

type healthData struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

type participantJSON struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}
