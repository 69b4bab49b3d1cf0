package event

import (
	"github.com/MCalenda/FundMeNow/internal/logger"
	"github.com/panjf2000/ants/v2"
)

// Subscriber 事件订阅者
type Subscriber interface {
	Handle(event string, projectId int64)
}

// Dispatcher 异步事件分发器，实现账本的Sink接口。
// 通过协程池把事件扇出给订阅者，不阻塞账本操作，不保证投递。
type Dispatcher struct {
	pool        *ants.Pool
	subscribers []Subscriber
}

// NewDispatcher 创建事件分发器
func NewDispatcher(poolSize int, subscribers ...Subscriber) (*Dispatcher, error) {
	if poolSize <= 0 {
		poolSize = 8
	}

	pool, err := ants.NewPool(poolSize, ants.WithNonblocking(true))
	if err != nil {
		return nil, err
	}

	return &Dispatcher{
		pool:        pool,
		subscribers: subscribers,
	}, nil
}

// Emit 分发事件。提交失败只记日志，不影响触发事件的账本变更。
func (d *Dispatcher) Emit(event string, projectId int64) {
	for _, subscriber := range d.subscribers {
		sub := subscriber
		err := d.pool.Submit(func() {
			sub.Handle(event, projectId)
		})
		if err != nil {
			logger.Warn("Dropped event %s for project %d: %v", event, projectId, err)
		}
	}
}

// Release 释放协程池
func (d *Dispatcher) Release() {
	d.pool.Release()
}
