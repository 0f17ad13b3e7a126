package dutyreset

import (
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/mock"
)

// mockToken implements mqtt.Token for testing.
type mockToken struct {
	err       error
	completed bool
	mu        sync.RWMutex
}

func newMockToken(err error) *mockToken {
	return &mockToken{err: err, completed: true}
}

func (t *mockToken) Wait() bool { return t.WaitTimeout(30 * time.Second) }

func (t *mockToken) WaitTimeout(time.Duration) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.completed
}

func (t *mockToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

func (t *mockToken) Error() error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.err
}

// mockClient implements mqtt.Client using testify/mock, the same shape as
// mesh.MockClient, so onMessage/Subscribe wiring can be exercised without
// a live broker.
type mockClient struct {
	mock.Mock
	mu              sync.RWMutex
	connected       bool
	messageHandlers map[string]mqtt.MessageHandler
}

func newMockClient() *mockClient {
	m := &mockClient{messageHandlers: make(map[string]mqtt.MessageHandler), connected: true}

	m.On("IsConnected").Return(true).Maybe()
	m.On("Connect").Return(newMockToken(nil)).Maybe()
	m.On("Subscribe", mock.Anything, mock.Anything, mock.Anything).Return(newMockToken(nil)).Run(func(args mock.Arguments) {
		topic := args.String(0)
		handler := args.Get(2).(mqtt.MessageHandler)
		m.mu.Lock()
		m.messageHandlers[topic] = handler
		m.mu.Unlock()
	}).Maybe()
	m.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(newMockToken(nil)).Maybe()
	m.On("Disconnect", mock.Anything).Return().Maybe()

	return m
}

func (m *mockClient) Connect() mqtt.Token {
	args := m.Called()
	m.mu.Lock()
	m.connected = true
	m.mu.Unlock()
	if t, ok := args.Get(0).(mqtt.Token); ok {
		return t
	}
	return newMockToken(nil)
}

func (m *mockClient) Disconnect(quiesce uint) {
	m.Called(quiesce)
	m.mu.Lock()
	m.connected = false
	m.mu.Unlock()
}

func (m *mockClient) IsConnected() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *mockClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	args := m.Called(topic, qos, retained, payload)
	if t, ok := args.Get(0).(mqtt.Token); ok {
		return t
	}
	return newMockToken(nil)
}

func (m *mockClient) Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token {
	args := m.Called(topic, qos, callback)
	if t, ok := args.Get(0).(mqtt.Token); ok {
		return t
	}
	return newMockToken(nil)
}

// simulateMessage delivers payload to the handler registered for topic,
// the way a real broker delivery would.
func (m *mockClient) simulateMessage(topic string, payload []byte) {
	m.mu.RLock()
	handler, ok := m.messageHandlers[topic]
	m.mu.RUnlock()
	if ok && handler != nil {
		handler(nil, &mockMessage{topic: topic, payload: payload})
	}
}

// mockMessage implements mqtt.Message for testing.
type mockMessage struct {
	topic   string
	payload []byte
}

func (m *mockMessage) Duplicate() bool     { return false }
func (m *mockMessage) Qos() byte           { return 0 }
func (m *mockMessage) Retained() bool      { return false }
func (m *mockMessage) Topic() string       { return m.topic }
func (m *mockMessage) MessageID() uint16   { return 0 }
func (m *mockMessage) Payload() []byte     { return m.payload }
func (m *mockMessage) Ack()                {}
func (m *mockMessage) AutoAckOff()         {}
func (m *mockMessage) AutoAckOn()          {}
func (m *mockMessage) SetAutoAck(bool)     {}
func (m *mockMessage) SetRetained(bool)    {}
func (m *mockMessage) SetQoS(byte)         {}
func (m *mockMessage) SetDuplicate(bool)   {}
func (m *mockMessage) SetMessageID(uint16) {}
