package mqtt

import (
	"encoding/json"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/ecofleet/carbon-tracker/core/fleet"
	"github.com/ecofleet/carbon-tracker/core/model"
	"github.com/ecofleet/carbon-tracker/infra/logger"
)

// TripResult is the payload published after a submitted trip has been
// recorded.
type TripResult struct {
	InspectionID int64           `json:"inspection_id"`
	VehiclePlate string          `json:"vehicle_plate"`
	Date         string          `json:"date"`
	Emissions    model.Emissions `json:"emissions"`
}

type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
	Subscribe(topic string, qos byte, callback paho.MessageHandler) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// Ingestor consumes trip forms from the submit topic, records them
// through the fleet manager and publishes the emissions breakdown to the
// per-vehicle result topic.
type Ingestor struct {
	cli     pahoClient
	manager *fleet.Manager
	cfg     Config
	log     logger.Logger
}

// NewIngestor connects to the broker and subscribes to the submit topic.
func NewIngestor(cfg Config, manager *fleet.Manager) (*Ingestor, error) {
	log := logger.New("mqtt-ingestor")
	ing := &Ingestor{manager: manager, cfg: cfg, log: log}

	opts, err := NewClientOptions(cfg, log)
	if err != nil {
		return nil, err
	}
	opts.OnConnect = func(c paho.Client) {
		log.Infof("MQTT connected")
		if token := c.Subscribe(cfg.SubmitTopic, cfg.QoS, ing.onSubmit); token.Wait() && token.Error() != nil {
			log.Errorf("subscribe error: %v", token.Error())
		}
	}

	c := newMQTTClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	ing.cli = c
	return ing, nil
}

func (i *Ingestor) onSubmit(_ paho.Client, msg paho.Message) {
	var form model.TripForm
	if err := json.Unmarshal(msg.Payload(), &form); err != nil {
		i.log.Errorf("failed to decode trip submission: %v", err)
		return
	}
	insp, err := i.manager.RecordTrip(form)
	if err != nil {
		i.log.Warnf("rejected trip submission plate=%s: %v", form.VehiclePlate, err)
		return
	}
	i.publishResult(insp)
}

func (i *Ingestor) publishResult(insp model.Inspection) {
	res := TripResult{
		InspectionID: insp.ID,
		VehiclePlate: insp.VehiclePlate,
		Date:         insp.Date,
		Emissions:    insp.Emissions,
	}
	payload, err := json.Marshal(res)
	if err != nil {
		i.log.Errorf("marshal trip result: %v", err)
		return
	}
	topic := i.cfg.ResultTopic + insp.VehiclePlate
	token := i.cli.Publish(topic, i.cfg.QoS, false, payload)
	token.Wait()
	if err := token.Error(); err != nil {
		i.log.Errorf("publish trip result to %s: %v", topic, err)
		return
	}
	i.log.Debugw("trip result published", map[string]any{
		"topic":    topic,
		"total_kg": insp.Emissions.Total,
	})
}

// Close disconnects from the broker.
func (i *Ingestor) Close() {
	if i.cli != nil && i.cli.IsConnected() {
		i.cli.Disconnect(250)
	}
}
