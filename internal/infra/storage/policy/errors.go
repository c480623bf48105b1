package policy

import "errors"

var (
	// ErrPolicyNotFound возвращается, когда полис с таким номером отсутствует
	ErrPolicyNotFound = errors.New("policy.repository: policy not found")

	ErrBuildQuery = errors.New("policy.repository: failed to build query")
	ErrScanRow    = errors.New("policy.repository: failed to scan row")
)
