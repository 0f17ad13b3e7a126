// Package dutyreset adapts an MQTT topic into the engine's duty-reset
// event source: an optional host collaborator that calls
// SafeZoneCalculator.Clear() when notified, external to the core engine.
package dutyreset

import (
	"fmt"
	"log"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/kwv/aoeguard/safezone"
)

// Options configures the MQTT duty-reset listener.
type Options struct {
	Broker   string
	ClientID string
	Username string
	Password string
	Topic    string
}

// Listener subscribes to Options.Topic and calls Clear() on the bound
// calculator for every message received on it, regardless of payload
// content (arrival on the topic is itself the reset signal).
type Listener struct {
	client      mqtt.Client
	calculator  *safezone.SafeZoneCalculator
	topic       string
	isConnected bool
	mu          sync.RWMutex
}

// NewListener builds a Listener bound to calculator but does not connect
// it; call Connect to start listening.
func NewListener(opts Options, calculator *safezone.SafeZoneCalculator) (*Listener, error) {
	if opts.Broker == "" {
		return nil, fmt.Errorf("dutyreset: broker address required")
	}
	if opts.Topic == "" {
		return nil, fmt.Errorf("dutyreset: topic required")
	}

	l := &Listener{calculator: calculator, topic: opts.Topic}

	clientOpts := mqtt.NewClientOptions()
	clientOpts.AddBroker(opts.Broker)

	clientID := opts.ClientID
	if clientID == "" {
		clientID = "aoeguard-dutyreset"
	}
	clientOpts.SetClientID(clientID)

	if opts.Username != "" {
		clientOpts.SetUsername(opts.Username)
		clientOpts.SetPassword(opts.Password)
	}

	clientOpts.SetAutoReconnect(true)
	clientOpts.SetConnectRetry(true)
	clientOpts.SetConnectRetryInterval(5 * time.Second)
	clientOpts.SetKeepAlive(60 * time.Second)
	clientOpts.SetOnConnectHandler(l.onConnect)
	clientOpts.SetConnectionLostHandler(l.onConnectionLost)

	l.client = mqtt.NewClient(clientOpts)
	return l, nil
}

// newListenerWithClient builds a Listener around an already-constructed
// mqtt.Client, bypassing broker configuration. Used by tests to inject a
// mock client.
func newListenerWithClient(client mqtt.Client, topic string, calculator *safezone.SafeZoneCalculator) *Listener {
	return &Listener{client: client, calculator: calculator, topic: topic}
}

// Connect opens the MQTT connection and subscribes to the reset topic.
func (l *Listener) Connect() error {
	token := l.client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return fmt.Errorf("dutyreset: connect timed out")
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("dutyreset: connect failed: %w", err)
	}
	l.setConnected(true)
	return l.subscribe()
}

func (l *Listener) subscribe() error {
	token := l.client.Subscribe(l.topic, 0, l.onMessage)
	if !token.WaitTimeout(5*time.Second) {
		return fmt.Errorf("dutyreset: subscribe to %s timed out", l.topic)
	}
	return token.Error()
}

func (l *Listener) onConnect(client mqtt.Client) {
	l.setConnected(true)
	log.Printf("dutyreset: connected, subscribing to %s", l.topic)
	if err := l.subscribe(); err != nil {
		log.Printf("dutyreset: subscribe error: %v", err)
	}
}

func (l *Listener) onConnectionLost(client mqtt.Client, err error) {
	log.Printf("dutyreset: connection lost (%v), auto-reconnect will retry", err)
	l.setConnected(false)
}

func (l *Listener) onMessage(client mqtt.Client, msg mqtt.Message) {
	log.Printf("dutyreset: reset signal received on %s, clearing zones", msg.Topic())
	l.calculator.Clear()
}

// IsConnected reports whether the underlying MQTT client is connected.
func (l *Listener) IsConnected() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.isConnected
}

func (l *Listener) setConnected(connected bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.isConnected = connected
}

// Disconnect closes the MQTT connection.
func (l *Listener) Disconnect() {
	if l.client != nil && l.client.IsConnected() {
		l.client.Disconnect(250)
		l.setConnected(false)
	}
}
