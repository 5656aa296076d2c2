package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockScheduleProviderForTest creates a new mock ScheduleProvider for testing
func NewMockScheduleProviderForTest(t *testing.T) *MockScheduleProvider {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockScheduleProvider(ctrl)
}

// NewMockFeeServiceForTest creates a new mock FeeService for testing
func NewMockFeeServiceForTest(t *testing.T) *MockFeeService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockFeeService(ctrl)
}
