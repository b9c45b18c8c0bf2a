package txn

import (
	"errors"
	"strings"

	"github.com/x-xyz/hbarmarket/domain"
)

type Op int

const (
	OpCall Op = iota
	OpDeploy
	OpSign
)

// Classify maps a submission error to a user facing error by its message.
// Unrecognized errors are returned unchanged.
func Classify(err error, op Op) error {
	if err == nil {
		return nil
	}
	var ue *domain.UserError
	if errors.As(err, &ue) {
		return err
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "user rejected"), strings.Contains(msg, "user denied"):
		return domain.NewUserError(domain.ErrUserRejected, "Transaction was rejected by user", err)
	case strings.Contains(msg, "insufficient funds"):
		if op == OpDeploy {
			return domain.NewUserError(domain.ErrInsufficientFunds, "Insufficient funds to deploy contract", err)
		}
		return domain.NewUserError(domain.ErrInsufficientFunds, "Insufficient funds for transaction", err)
	case strings.Contains(msg, "require(false)"):
		return domain.NewUserError(domain.ErrConstructorRequirement, "Contract deployment failed: Constructor requirements not met", err)
	case strings.Contains(msg, "execution reverted"), strings.Contains(msg, "revert"):
		return domain.NewUserError(domain.ErrContractRevert, err.Error(), err)
	}
	return err
}
