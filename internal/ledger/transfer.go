package ledger

// Transfer 原子转账能力。实现方必须保证要么全部完成要么全部失败，
// 账本在转账成功之前不提交任何状态变更。
type Transfer interface {
	Transfer(from, to string, amount int64) error
}

// TransferFunc 函数式Transfer
type TransferFunc func(from, to string, amount int64) error

func (f TransferFunc) Transfer(from, to string, amount int64) error {
	return f(from, to, amount)
}
