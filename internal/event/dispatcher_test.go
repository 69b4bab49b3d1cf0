package event

import (
	"sync"
	"testing"
	"time"

	"github.com/MCalenda/FundMeNow/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectingSubscriber 测试用订阅者
type collectingSubscriber struct {
	mu     sync.Mutex
	events []string
	done   chan struct{}
	expect int
}

func newCollectingSubscriber(expect int) *collectingSubscriber {
	return &collectingSubscriber{
		done:   make(chan struct{}),
		expect: expect,
	}
}

func (s *collectingSubscriber) Handle(event string, projectId int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) == s.expect {
		close(s.done)
	}
}

func (s *collectingSubscriber) wait(t *testing.T) []string {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for events")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.events...)
}

func TestDispatcherFansOutToSubscribers(t *testing.T) {
	first := newCollectingSubscriber(2)
	second := newCollectingSubscriber(2)

	d, err := NewDispatcher(4, first, second)
	require.NoError(t, err)
	defer d.Release()

	d.Emit(model.EventProjectCreated, 1)
	d.Emit(model.EventProjectFunded, 1)

	assert.ElementsMatch(t, []string{model.EventProjectCreated, model.EventProjectFunded}, first.wait(t))
	assert.ElementsMatch(t, []string{model.EventProjectCreated, model.EventProjectFunded}, second.wait(t))
}

func TestDispatcherEmitDoesNotBlock(t *testing.T) {
	// 池子占满时事件被丢弃而不是阻塞调用方
	blocker := make(chan struct{})
	slow := subscriberFunc(func(event string, projectId int64) {
		<-blocker
	})

	d, err := NewDispatcher(1, slow)
	require.NoError(t, err)
	defer d.Release()
	defer close(blocker)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			d.Emit(model.EventProjectFunded, int64(i))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Emit blocked on a saturated pool")
	}
}

// subscriberFunc 函数式订阅者
type subscriberFunc func(event string, projectId int64)

func (f subscriberFunc) Handle(event string, projectId int64) {
	f(event, projectId)
}
