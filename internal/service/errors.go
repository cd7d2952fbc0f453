package service

// InputError 管理员提交的内容不合法，Reason 可直接展示
type InputError struct {
	Reason string
	Err    error
}

func (e *InputError) Error() string {
	return e.Reason
}

func (e *InputError) Unwrap() error {
	return e.Err
}
