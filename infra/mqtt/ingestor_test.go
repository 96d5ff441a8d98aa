package mqtt

import (
	"encoding/json"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecofleet/carbon-tracker/core/fleet"
	"github.com/ecofleet/carbon-tracker/core/model"
	"github.com/ecofleet/carbon-tracker/infra/logger"
	"github.com/ecofleet/carbon-tracker/internal/eventbus"
)

type fakeToken struct{ err error }

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t *fakeToken) Error() error { return t.err }

type publishedMsg struct {
	topic   string
	payload []byte
}

type fakeClient struct {
	connected  bool
	subscribed []string
	published  []publishedMsg
}

func (c *fakeClient) IsConnected() bool { return c.connected }
func (c *fakeClient) Connect() paho.Token {
	c.connected = true
	return &fakeToken{}
}
func (c *fakeClient) Disconnect(uint) { c.connected = false }
func (c *fakeClient) Publish(topic string, _ byte, _ bool, payload interface{}) paho.Token {
	c.published = append(c.published, publishedMsg{topic: topic, payload: payload.([]byte)})
	return &fakeToken{}
}
func (c *fakeClient) Subscribe(topic string, _ byte, _ paho.MessageHandler) paho.Token {
	c.subscribed = append(c.subscribed, topic)
	return &fakeToken{}
}

type fakeMessage struct{ payload []byte }

func (m *fakeMessage) Duplicate() bool   { return false }
func (m *fakeMessage) Qos() byte         { return 0 }
func (m *fakeMessage) Retained() bool    { return false }
func (m *fakeMessage) Topic() string     { return "fleet/trips/submit" }
func (m *fakeMessage) MessageID() uint16 { return 0 }
func (m *fakeMessage) Payload() []byte   { return m.payload }
func (m *fakeMessage) Ack()              {}

func testIngestor(t *testing.T) (*Ingestor, *fakeClient, *fleet.MemoryStore) {
	t.Helper()
	cli := &fakeClient{}
	orig := newMQTTClient
	newMQTTClient = func(*paho.ClientOptions) pahoClient { return cli }
	t.Cleanup(func() { newMQTTClient = orig })

	store := fleet.NewMemoryStore(nil)
	bus := eventbus.NewTyped[model.Inspection]()
	t.Cleanup(bus.Close)
	manager := fleet.NewManager(store, bus, logger.NopLogger{})

	cfg := Config{Enabled: true, Broker: "tcp://localhost:1883"}
	cfg.SetDefaults()
	ing, err := NewIngestor(cfg, manager)
	require.NoError(t, err)
	return ing, cli, store
}

func TestIngestorRecordsSubmission(t *testing.T) {
	ing, cli, store := testIngestor(t)

	form := model.TripForm{
		Date:         "2026-03-01",
		VehiclePlate: "ABC-123",
		FuelType:     "Diesel",
		FuelEconomy:  "11.5",
		DistanceKm:   100,
	}
	payload, err := json.Marshal(form)
	require.NoError(t, err)
	ing.onSubmit(nil, &fakeMessage{payload: payload})

	stored, err := store.Inspections()
	require.NoError(t, err)
	require.Len(t, stored, 1)

	require.Len(t, cli.published, 1)
	assert.Equal(t, "fleet/trips/result/ABC-123", cli.published[0].topic)
	var res TripResult
	require.NoError(t, json.Unmarshal(cli.published[0].payload, &res))
	assert.Equal(t, stored[0].ID, res.InspectionID)
	assert.InDelta(t, stored[0].Emissions.Total, res.Emissions.Total, 1e-9)
}

func TestIngestorRejectsBadPayloads(t *testing.T) {
	ing, cli, store := testIngestor(t)

	ing.onSubmit(nil, &fakeMessage{payload: []byte("not json")})
	// Valid JSON but missing the plate.
	ing.onSubmit(nil, &fakeMessage{payload: []byte(`{"date":"2026-03-01"}`)})

	stored, err := store.Inspections()
	require.NoError(t, err)
	assert.Empty(t, stored)
	assert.Empty(t, cli.published)
}

func TestIngestorClose(t *testing.T) {
	ing, cli, _ := testIngestor(t)
	require.True(t, cli.connected)
	ing.Close()
	assert.False(t, cli.connected)
}
