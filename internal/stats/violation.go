package stats

import (
	"errors"
	"fmt"
)

// ErrContractViolation marks a caller-side misuse of the registry API.
var ErrContractViolation = errors.New("stats: contract violation")

// ContractViolation describes which accessor was misused and on what record.
// It is the panic value for every violation and unwraps to ErrContractViolation.
type ContractViolation struct {
	Op     string // accessor or lookup name, e.g. "MobType"
	Record string // record name, or the rejected enumerant
	Reason string
}

func (v *ContractViolation) Error() string {
	return fmt.Sprintf("stats: contract violation: %s on %s: %s", v.Op, v.Record, v.Reason)
}

func (v *ContractViolation) Unwrap() error {
	return ErrContractViolation
}

func violate(op, record, reason string) {
	panic(&ContractViolation{Op: op, Record: record, Reason: reason})
}

// Guard runs fn and returns the contract violation it raised, if any.
// Panics that are not contract violations propagate unchanged.
func Guard(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		v, ok := r.(*ContractViolation)
		if !ok {
			panic(r)
		}
		err = v
	}()

	fn()
	return nil
}
