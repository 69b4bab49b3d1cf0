package ledger

// Sink 账本事件接收器。Emit为fire-and-forget：
// 投递失败不回滚触发它的账本变更。
type Sink interface {
	Emit(event string, projectId int64)
}

// NopSink 丢弃所有事件
type NopSink struct{}

func (NopSink) Emit(event string, projectId int64) {}

// SinkFunc 函数式Sink
type SinkFunc func(event string, projectId int64)

func (f SinkFunc) Emit(event string, projectId int64) {
	f(event, projectId)
}
