package jira

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockClient is a mock implementation of Client for testing.
//
// Example usage:
//
//	client := new(MockClient)
//	client.On("ServerTime", mock.Anything).Return("2026-01-01T00:00:00.000+0000", nil)
type MockClient struct {
	mock.Mock
}

// ServerTime returns the mocked server time.
func (m *MockClient) ServerTime(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// ProjectStatuses returns the mocked statuses.
func (m *MockClient) ProjectStatuses(ctx context.Context, project string) ([]string, error) {
	args := m.Called(ctx, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// IssueTypes returns the mocked issue types.
func (m *MockClient) IssueTypes(ctx context.Context, project string) ([]string, error) {
	args := m.Called(ctx, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// ListIssues returns the mocked issue list.
func (m *MockClient) ListIssues(ctx context.Context, jql string) ([]IssueRef, error) {
	args := m.Called(ctx, jql)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]IssueRef), args.Error(1)
}

// ViewIssue returns the mocked issue.
func (m *MockClient) ViewIssue(ctx context.Context, id string) (Issue, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Issue), args.Error(1)
}

// WorklogList returns the mocked worklog listing.
func (m *MockClient) WorklogList(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

// Run returns the mocked command output.
func (m *MockClient) Run(ctx context.Context, cmdArgs ...string) (string, string, error) {
	args := m.Called(ctx, cmdArgs)
	return args.String(0), args.String(1), args.Error(2)
}
