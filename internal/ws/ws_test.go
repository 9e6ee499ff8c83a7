package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labsnomad/pv-storage-optimizer/internal/api/models"
	"github.com/labsnomad/pv-storage-optimizer/internal/calc"
	"github.com/labsnomad/pv-storage-optimizer/internal/catalog"
	"github.com/labsnomad/pv-storage-optimizer/internal/economics"
	"github.com/labsnomad/pv-storage-optimizer/internal/store"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	cat, err := catalog.New()
	require.NoError(t, err)
	calculator := calc.New(cat, economics.New(0), store.New(16), nil)
	return NewHandler(NewHub(), calculator)
}

func dialHandler(t *testing.T, h *Handler) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) Envelope {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(msg, &env))
	return env
}

func sendEnvelope(t *testing.T, conn *websocket.Conn, msgType string, payload any) {
	t.Helper()
	msg, err := NewEnvelope(msgType, payload)
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, msg))
}

func validUpdate() models.EvaluateRequest {
	return models.EvaluateRequest{
		Module:          "Longi Hi-MO 5",
		MonthlyUsageKWh: 500,
		PeakUsagePct:    60,
		BackupHours:     4,

		SunshineHours: 4.5,
		SystemLossPct: 15,
		ModulePowerW:  450,
		ModuleCount:   20,

		BatteryCapacityKWh:   10,
		BatteryEfficiencyPct: 95,
		DepthOfDischargePct:  90,

		InverterPowerKW:       5,
		InverterEfficiencyPct: 98,
		InverterPrice:         10000,

		ElectricityPrice: 0.6,
		Subsidy:          0.3,
		FeedInTariff:     0.2,
	}
}

func TestNewEnvelope_RoundTrip(t *testing.T) {
	msg, err := NewEnvelope(TypeError, ErrorPayload{Code: "X", Message: "boom"})
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(msg, &env))
	assert.Equal(t, TypeError, env.Type)

	var p ErrorPayload
	require.NoError(t, json.Unmarshal(env.Payload, &p))
	assert.Equal(t, "X", p.Code)
	assert.Equal(t, "boom", p.Message)
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()
	c := &Client{hub: hub, send: make(chan []byte, 1)}

	hub.Register(c)
	assert.Equal(t, 1, hub.ClientCount())

	hub.Unregister(c)
	assert.Equal(t, 0, hub.ClientCount())

	// Unregistering twice must not panic or close the channel again.
	hub.Unregister(c)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_Broadcast(t *testing.T) {
	hub := NewHub()
	a := &Client{hub: hub, send: make(chan []byte, 1)}
	b := &Client{hub: hub, send: make(chan []byte, 1)}
	hub.Register(a)
	hub.Register(b)

	hub.Broadcast([]byte("hello"))

	assert.Equal(t, []byte("hello"), <-a.send)
	assert.Equal(t, []byte("hello"), <-b.send)
}

func TestHandler_SendsCatalogOnConnect(t *testing.T) {
	conn := dialHandler(t, newTestHandler(t))

	env := readEnvelope(t, conn)
	require.Equal(t, TypeCatalogLoaded, env.Type)

	var p CatalogLoadedPayload
	require.NoError(t, json.Unmarshal(env.Payload, &p))
	assert.Len(t, p.Modules, 5)
}

func TestHandler_ParamsUpdateBroadcastsResults(t *testing.T) {
	conn := dialHandler(t, newTestHandler(t))
	readEnvelope(t, conn) // catalog:loaded

	sendEnvelope(t, conn, TypeParamsUpdate, validUpdate())

	got := map[string]Envelope{}
	for i := 0; i < 4; i++ {
		env := readEnvelope(t, conn)
		got[env.Type] = env
	}

	require.Contains(t, got, TypeResultSizing)
	require.Contains(t, got, TypeResultBackup)
	require.Contains(t, got, TypeResultEconomics)
	require.Contains(t, got, TypeResultProfile)

	var sizing SizingPayload
	require.NoError(t, json.Unmarshal(got[TypeResultSizing].Payload, &sizing))
	assert.NotEmpty(t, sizing.EvaluationID)
	assert.InDelta(t, 9.0, sizing.Sizing.TotalPVPowerKW, 0.001)

	var backup BackupPayload
	require.NoError(t, json.Unmarshal(got[TypeResultBackup].Payload, &backup))
	assert.Equal(t, sizing.EvaluationID, backup.EvaluationID)
	assert.InDelta(t, 3.6, backup.BackupHours, 0.01)
}

func TestHandler_ResultsReachAllClients(t *testing.T) {
	h := newTestHandler(t)
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	first, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { first.Close() })
	second, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { second.Close() })

	readEnvelope(t, first)
	readEnvelope(t, second)

	sendEnvelope(t, first, TypeParamsUpdate, validUpdate())

	// The passive client sees the same four result messages.
	types := map[string]bool{}
	for i := 0; i < 4; i++ {
		env := readEnvelope(t, second)
		types[env.Type] = true
	}
	assert.True(t, types[TypeResultSizing])
	assert.True(t, types[TypeResultProfile])
}

func TestHandler_InvalidParametersReturnsError(t *testing.T) {
	conn := dialHandler(t, newTestHandler(t))
	readEnvelope(t, conn)

	update := validUpdate()
	update.Module = "No Such Panel"
	sendEnvelope(t, conn, TypeParamsUpdate, update)

	env := readEnvelope(t, conn)
	require.Equal(t, TypeError, env.Type)

	var p ErrorPayload
	require.NoError(t, json.Unmarshal(env.Payload, &p))
	assert.Equal(t, "INVALID_PARAMETERS", p.Code)
}

func TestHandler_UnknownMessageType(t *testing.T) {
	conn := dialHandler(t, newTestHandler(t))
	readEnvelope(t, conn)

	sendEnvelope(t, conn, "bogus:type", nil)

	env := readEnvelope(t, conn)
	require.Equal(t, TypeError, env.Type)

	var p ErrorPayload
	require.NoError(t, json.Unmarshal(env.Payload, &p))
	assert.Equal(t, "UNKNOWN_TYPE", p.Code)
}

func TestHandler_MalformedMessage(t *testing.T) {
	conn := dialHandler(t, newTestHandler(t))
	readEnvelope(t, conn)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))

	env := readEnvelope(t, conn)
	require.Equal(t, TypeError, env.Type)

	var p ErrorPayload
	require.NoError(t, json.Unmarshal(env.Payload, &p))
	assert.Equal(t, "INVALID_MESSAGE", p.Code)
}
