// Package outputmock holds a generated mock of output.Pending for tests
// that need to control exactly when and how a pending value resolves.
package outputmock

//go:generate go tool go.uber.org/mock/mockgen -destination mock.go github.com/vk/outputs/output Pending
