package websocket

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/triangles-backend/internal/apperror"
	"github.com/rocketscienceinc/triangles-backend/internal/entity"
	"github.com/rocketscienceinc/triangles-backend/internal/service"
	mockedWebsocket "github.com/rocketscienceinc/triangles-backend/mocks/websocket"
)

func dial(t *testing.T) (*websocket.Conn, *mockedWebsocket.MockgamePlayService, string) {
	t.Helper()

	gamePlay := mockedWebsocket.NewMockgamePlayService(t)
	srv := New(slog.New(slog.NewJSONHandler(io.Discard, nil)), gamePlay)

	ctx, cancel := context.WithCancel(context.Background())
	ts := httptest.NewServer(srv.Handler(ctx))

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	t.Cleanup(func() {
		conn.Close()
		ts.Close()
		cancel()
	})

	return conn, gamePlay, resp.Header.Get("Set-Cookie")
}

func send(t *testing.T, conn *websocket.Conn, action string, payload any) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(Message{Action: action, Payload: body}))
}

func receive(t *testing.T, conn *websocket.Conn) (string, ResponsePayload) {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))

	var payload ResponsePayload
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))

	return msg.Action, payload
}

func ongoingGame() *entity.Game {
	return &entity.Game{
		ID:     "game1",
		Type:   entity.WithBotType,
		Status: entity.StatusOngoing,
		Turn:   entity.Player1,
		Players: []*entity.Player{
			{ID: "p1", GameID: "game1", Mark: entity.Player1},
			entity.NewBotPlayer("game1", entity.Player2),
		},
	}
}

func TestServer_Handshake(t *testing.T) {
	// Given: A client without session cookie
	// When: Connecting
	_, _, cookie := dial(t)

	// Then: The handshake hands out a session
	assert.Contains(t, cookie, sessionCookie+"=")
}

func TestServer_Connect(t *testing.T) {
	t.Run("Connects a new player", func(t *testing.T) {
		// Given: A service registering players
		conn, gamePlay, _ := dial(t)
		gamePlay.EXPECT().
			GetOrCreatePlayer(mock.Anything, "").
			Return(&entity.Player{ID: "p1"}, nil).
			Once()

		// When: Sending connect
		send(t, conn, actionConnect, RequestPayload{Player: &PlayerRequest{}})

		// Then: The player is returned without game
		action, payload := receive(t, conn)
		assert.Equal(t, actionConnect, action)
		require.NotNil(t, payload.Player)
		assert.Equal(t, "p1", payload.Player.ID)
		assert.Nil(t, payload.Game)
	})

	t.Run("Restores the running game", func(t *testing.T) {
		// Given: A player seated in a game
		conn, gamePlay, _ := dial(t)
		game := ongoingGame()
		gamePlay.EXPECT().
			GetOrCreatePlayer(mock.Anything, "p1").
			Return(game.Players[0], nil).
			Once()
		gamePlay.EXPECT().GetGameByPlayerID(mock.Anything, "p1").Return(game, nil).Once()

		// When: Reconnecting
		send(t, conn, actionConnect, RequestPayload{Player: &PlayerRequest{ID: "p1"}})

		// Then: The game comes back without the seats
		_, payload := receive(t, conn)
		require.NotNil(t, payload.Game)
		assert.Equal(t, "game1", payload.Game.ID)
		assert.Empty(t, payload.Game.Players)
		assert.Len(t, game.Players, 2)
	})

	t.Run("Requires a player", func(t *testing.T) {
		// Given: A connection
		conn, _, _ := dial(t)

		// When: Sending connect without player
		send(t, conn, actionConnect, RequestPayload{})

		// Then: An error comes back
		action, payload := receive(t, conn)
		assert.Equal(t, actionConnect, action)
		assert.Equal(t, "Player is required", payload.Error)
	})
}

func TestServer_Game(t *testing.T) {
	t.Run("Opens a game with options", func(t *testing.T) {
		// Given: A service opening bot games
		conn, gamePlay, _ := dial(t)
		scoreAgain := false
		gamePlay.EXPECT().
			GetOrCreateGame(mock.Anything, "p1", service.GameOptions{
				Type:       entity.WithBotType,
				Preset:     "tiny",
				ScoreAgain: &scoreAgain,
			}).
			Return(ongoingGame(), nil).
			Once()

		// When: Sending game:new
		send(t, conn, actionGameNew, RequestPayload{
			Player: &PlayerRequest{ID: "p1"},
			Game:   &GameRequest{Type: entity.WithBotType, Preset: "tiny", ScoreAgain: &scoreAgain},
		})

		// Then: The game is pushed to the player
		action, payload := receive(t, conn)
		assert.Equal(t, actionGameNew, action)
		require.NotNil(t, payload.Game)
		assert.Equal(t, entity.StatusOngoing, payload.Game.Status)
		assert.Equal(t, entity.Player1, payload.Player.Mark)
	})

	t.Run("Plays a turn", func(t *testing.T) {
		// Given: A running game
		conn, gamePlay, _ := dial(t)
		game := ongoingGame()
		game.Moves = []entity.Move{{Segments: []string{"0,0_0,1"}}}
		gamePlay.EXPECT().
			MakeTurn(mock.Anything, "p1", entity.Dot{Row: 0, Col: 0}, entity.Dot{Row: 0, Col: 1}).
			Return(game, nil).
			Once()

		// When: Sending game:turn
		send(t, conn, actionGameTurn, RequestPayload{
			Player: &PlayerRequest{ID: "p1"},
			From:   &entity.Dot{Row: 0, Col: 0},
			To:     &entity.Dot{Row: 0, Col: 1},
		})

		// Then: The updated game arrives
		action, payload := receive(t, conn)
		assert.Equal(t, actionGameTurn, action)
		require.NotNil(t, payload.Game)
		assert.Len(t, payload.Game.Moves, 1)
	})

	t.Run("Reports a turn out of order", func(t *testing.T) {
		// Given: A service refusing the turn
		conn, gamePlay, _ := dial(t)
		gamePlay.EXPECT().
			MakeTurn(mock.Anything, "p1", mock.Anything, mock.Anything).
			Return(nil, apperror.ErrNotYourTurn).
			Once()

		// When: Sending game:turn
		send(t, conn, actionGameTurn, RequestPayload{
			Player: &PlayerRequest{ID: "p1"},
			From:   &entity.Dot{Row: 0, Col: 0},
			To:     &entity.Dot{Row: 0, Col: 1},
		})

		// Then: The reason is sent back
		_, payload := receive(t, conn)
		assert.Equal(t, apperror.ErrNotYourTurn.Error(), payload.Error)
	})

	t.Run("Leaves the game", func(t *testing.T) {
		// Given: A running game
		conn, gamePlay, _ := dial(t)
		gamePlay.EXPECT().GetGameByPlayerID(mock.Anything, "p1").Return(ongoingGame(), nil).Once()
		gamePlay.EXPECT().EndGame(mock.Anything, "p1").Return(nil).Once()

		// When: Sending game:leave
		send(t, conn, actionGameLeave, RequestPayload{Player: &PlayerRequest{ID: "p1"}})

		// Then: The player is told the game is left
		action, payload := receive(t, conn)
		assert.Equal(t, actionGameLeave, action)
		require.NotNil(t, payload.Game)
		assert.Equal(t, gameStatusLeave, payload.Game.Status)
	})

	t.Run("Rejects unknown actions", func(t *testing.T) {
		// Given: A connection
		conn, _, _ := dial(t)

		// When: Sending an unknown action
		send(t, conn, "game:undo", RequestPayload{Player: &PlayerRequest{ID: "p1"}})

		// Then: An error comes back
		action, payload := receive(t, conn)
		assert.Equal(t, "game:undo", action)
		assert.Equal(t, "unknown action", payload.Error)
	})
}
