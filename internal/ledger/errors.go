package ledger

import (
	"errors"
	"fmt"
)

// 错误分类。调用方通过errors.Is判断类别，错误文案面向API调用方。
var (
	ErrNotFound        = errors.New("project not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidState    = errors.New("invalid project state")
	ErrNotAContributor = errors.New("only contributors can do this operation")
	ErrTransferFailed  = errors.New("transfer failed")
)

// 具体失败原因，文案沿用链上合约的revert信息
var (
	errSelfFunding      = fmt.Errorf("%w: owner can't fund the project created by themselves", ErrUnauthorized)
	errNotOwner         = fmt.Errorf("%w: only owner can do this operation", ErrUnauthorized)
	errProjectClosed    = fmt.Errorf("%w: project is closed", ErrInvalidState)
	errAlreadyClosed    = fmt.Errorf("%w: project is already closed", ErrInvalidState)
	errNotClosed        = fmt.Errorf("%w: project is not closed", ErrInvalidState)
	errObjectiveReached = fmt.Errorf("%w: project objective is reached", ErrInvalidState)
	errInvalidAmount    = fmt.Errorf("%w: amount must be positive", ErrTransferFailed)
)

// wrapTransferErr 把转账实现返回的错误归入ErrTransferFailed类别
func wrapTransferErr(err error) error {
	if errors.Is(err, ErrTransferFailed) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrTransferFailed, err)
}
