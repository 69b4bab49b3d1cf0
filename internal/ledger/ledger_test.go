package ledger

import (
	"sync"
	"time"
)

const (
	escrowAddr  = "0x00000000000000000000000000000000000000EE"
	ownerAddr   = "0x00000000000000000000000000000000000000A1"
	funderAddr  = "0x00000000000000000000000000000000000000B2"
	funder2Addr = "0x00000000000000000000000000000000000000C3"
)

// fakeBank 测试用转账实现，维护内存余额
type fakeBank struct {
	mu       sync.Mutex
	balances map[string]int64
	failNext error // 非nil时下一次转账失败
}

func newFakeBank(balances map[string]int64) *fakeBank {
	if balances == nil {
		balances = make(map[string]int64)
	}
	return &fakeBank{balances: balances}
}

func (b *fakeBank) Transfer(from, to string, amount int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.failNext != nil {
		err := b.failNext
		b.failNext = nil
		return err
	}
	b.balances[from] -= amount
	b.balances[to] += amount
	return nil
}

func (b *fakeBank) balance(address string) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balances[address]
}

// recordingSink 测试用事件接收器
type recordingSink struct {
	mu     sync.Mutex
	events []recordedEvent
}

type recordedEvent struct {
	event     string
	projectId int64
}

func (s *recordingSink) Emit(event string, projectId int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, recordedEvent{event: event, projectId: projectId})
}

func (s *recordingSink) recorded() []recordedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recordedEvent(nil), s.events...)
}

// newTestLedger 每个用例一套全新的存储、事件接收器和银行
func newTestLedger(bank *fakeBank) (*Ledger, *recordingSink) {
	sink := &recordingSink{}
	return New(NewMemoryStore(), sink, bank, escrowAddr), sink
}

func testEndDate() time.Time {
	return time.Now().Add(15 * 24 * time.Hour)
}
