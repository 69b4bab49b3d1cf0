package ledger

import (
	"github.com/MCalenda/FundMeNow/internal/model"
)

// CloseProject 关闭项目，仅限创建者，且只能关闭一次。
// 已达标的项目在关闭时立即把全部余额支付给创建者。
func (l *Ledger) CloseProject(id int64, caller string) error {
	lock := l.lockProject(id)
	lock.Lock()
	defer lock.Unlock()

	project, err := l.store.Get(id)
	if err != nil {
		return err
	}

	if caller != project.Owner {
		return errNotOwner
	}

	if project.State.Closed() {
		return errAlreadyClosed
	}

	if project.State == model.ProjectStateOpenObjReached {
		// 达标关闭：全额支付给创建者，余额清零
		payout := project.Balance
		if payout > 0 {
			if err := l.transfer.Transfer(l.escrow, project.Owner, payout); err != nil {
				return wrapTransferErr(err)
			}
		}
		project.State = model.ProjectStateClosedObjReached
		project.Balance = 0
	} else {
		// 未达标关闭：余额保留，等待贡献者各自提取
		project.State = model.ProjectStateClosedObjFailed
	}

	if err := l.store.Put(project); err != nil {
		return err
	}

	l.sink.Emit(model.EventProjectClosed, id)
	return nil
}

// Withdraw 贡献者从未达标关闭的项目提取自己的贡献。
// stillFund为true时退款转赠给项目创建者而不是回到贡献者，
// 两种情况下贡献记录都清零，同一贡献者无法二次提取。
func (l *Ledger) Withdraw(id int64, stillFund bool, caller string) error {
	lock := l.lockProject(id)
	lock.Lock()
	defer lock.Unlock()

	project, err := l.store.Get(id)
	if err != nil {
		return err
	}

	contribution, err := l.store.Contribution(id, caller)
	if err != nil {
		return err
	}
	// 贡献已清零视同非贡献者，天然阻止二次提取
	if contribution <= 0 {
		return ErrNotAContributor
	}

	if !project.State.Closed() {
		return errNotClosed
	}

	// 达标关闭的项目已把余额支付给创建者，贡献不可收回
	if project.State == model.ProjectStateClosedObjReached {
		return errObjectiveReached
	}

	destination := caller
	if stillFund {
		destination = project.Owner
	}

	if err := l.transfer.Transfer(l.escrow, destination, contribution); err != nil {
		return wrapTransferErr(err)
	}

	project.Balance -= contribution

	if err := l.store.Put(project); err != nil {
		return err
	}
	if err := l.store.SetContribution(id, caller, 0); err != nil {
		return err
	}
	return nil
}
