// Package mock holds hand-maintained test doubles that follow the minimock v3
// layout and plug into minimock.Controller.
package mock

import (
	"sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
)

// MessageSenderMock implements messages.messageSender
type MessageSenderMock struct {
	t minimock.Tester

	SendMessageMock mMessageSenderMockSendMessage
}

// NewMessageSenderMock returns a mock for messages.messageSender
func NewMessageSenderMock(t minimock.Tester) *MessageSenderMock {
	m := &MessageSenderMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.SendMessageMock = mMessageSenderMockSendMessage{mock: m}

	return m
}

type mMessageSenderMockSendMessage struct {
	mock        *MessageSenderMock
	expectation *MessageSenderMockSendMessageParams
	results     *MessageSenderMockSendMessageResults
	fn          func(text string, chatID int64) error

	calls uint64
}

// MessageSenderMockSendMessageParams contains parameters of the messageSender.SendMessage
type MessageSenderMockSendMessageParams struct {
	text   string
	chatID int64
}

// MessageSenderMockSendMessageResults contains results of the messageSender.SendMessage
type MessageSenderMockSendMessageResults struct {
	err error
}

// Expect sets up expected params for messageSender.SendMessage
func (mmSendMessage *mMessageSenderMockSendMessage) Expect(text string, chatID int64) *mMessageSenderMockSendMessage {
	mmSendMessage.expectation = &MessageSenderMockSendMessageParams{text, chatID}
	return mmSendMessage
}

// Return sets up results that will be returned by messageSender.SendMessage
func (mmSendMessage *mMessageSenderMockSendMessage) Return(err error) *MessageSenderMock {
	if mmSendMessage.fn != nil {
		mmSendMessage.mock.t.Fatalf("MessageSenderMock.SendMessage mock is already set by Set")
	}
	mmSendMessage.results = &MessageSenderMockSendMessageResults{err}
	return mmSendMessage.mock
}

// Set uses given function f to mock the messageSender.SendMessage method
func (mmSendMessage *mMessageSenderMockSendMessage) Set(f func(text string, chatID int64) error) *MessageSenderMock {
	if mmSendMessage.results != nil {
		mmSendMessage.mock.t.Fatalf("MessageSenderMock.SendMessage mock is already set by Return")
	}
	mmSendMessage.fn = f
	return mmSendMessage.mock
}

func (mmSendMessage *mMessageSenderMockSendMessage) expected() bool {
	return mmSendMessage.results != nil || mmSendMessage.fn != nil
}

// SendMessage implements messages.messageSender
func (mmSendMessage *MessageSenderMock) SendMessage(text string, chatID int64) error {
	atomic.AddUint64(&mmSendMessage.SendMessageMock.calls, 1)

	if want := mmSendMessage.SendMessageMock.expectation; want != nil {
		got := MessageSenderMockSendMessageParams{text, chatID}
		if *want != got {
			mmSendMessage.t.Errorf("MessageSenderMock.SendMessage got unexpected parameters, want: %#v, got: %#v", *want, got)
		}
	}
	if mmSendMessage.SendMessageMock.fn != nil {
		return mmSendMessage.SendMessageMock.fn(text, chatID)
	}
	if mmSendMessage.SendMessageMock.results == nil {
		mmSendMessage.t.Fatalf("Unexpected call to MessageSenderMock.SendMessage. %v %v", text, chatID)
		return nil
	}
	return mmSendMessage.SendMessageMock.results.err
}

// SendMessageAfterCounter returns a count of finished MessageSenderMock.SendMessage invocations
func (mmSendMessage *MessageSenderMock) SendMessageAfterCounter() uint64 {
	return atomic.LoadUint64(&mmSendMessage.SendMessageMock.calls)
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *MessageSenderMock) MinimockFinish() {
	if m.SendMessageMock.expected() && m.SendMessageAfterCounter() == 0 {
		m.t.Error("Expected call to MessageSenderMock.SendMessage")
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *MessageSenderMock) MinimockWait(timeout time.Duration) {
	timeoutCh := time.After(timeout)
	for {
		if !m.SendMessageMock.expected() || m.SendMessageAfterCounter() > 0 {
			return
		}
		select {
		case <-timeoutCh:
			m.MinimockFinish()
			return
		case <-time.After(10 * time.Millisecond):
		}
	}
}
