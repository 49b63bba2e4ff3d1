package taxengine

import (
	"errors"
	"fmt"
)

// InvalidIncomeError 收入输入无效（非数字或为负）
type InvalidIncomeError struct {
	Input  string
	Reason string
	Err    error
}

func (e *InvalidIncomeError) Error() string {
	return fmt.Sprintf("invalid income %q: %s", e.Input, e.Reason)
}

func (e *InvalidIncomeError) Unwrap() error {
	return e.Err
}

// IsInvalidIncome 判断错误链中是否包含InvalidIncomeError
func IsInvalidIncome(err error) bool {
	var target *InvalidIncomeError
	return errors.As(err, &target)
}

// BatchError 批量计算中第Index条输入失败
type BatchError struct {
	Index int
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("income #%d: %v", e.Index, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}
