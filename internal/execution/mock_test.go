package execution

import (
	"context"

	"fbcheck/internal/domain"
)

// mockManager records every call and returns canned values. errs is keyed by
// method name; a method with an entry returns that error.
type mockManager struct {
	fans     int
	posts    *domain.Posts
	count    int
	insights []domain.Insight
	negative []domain.Comment
	errs     map[string]error

	calls        []string
	postIDs      []string
	filterInputs []domain.Comments
}

func newMockManager() *mockManager {
	return &mockManager{
		fans:     1200,
		posts:    &domain.Posts{Data: []domain.Post{{ID: "page_1"}, {ID: "page_2"}}},
		count:    3,
		insights: []domain.Insight{{Name: "post_impressions"}},
		negative: []domain.Comment{{ID: "1", Message: "terrible"}},
		errs:     map[string]error{},
	}
}

func (m *mockManager) record(method string) error {
	m.calls = append(m.calls, method)
	return m.errs[method]
}

func (m *mockManager) counter(method, postID string) (int, error) {
	m.postIDs = append(m.postIDs, postID)
	if err := m.record(method); err != nil {
		return 0, err
	}
	return m.count, nil
}

func (m *mockManager) GetPageFanCount(context.Context) (int, error) {
	if err := m.record("GetPageFanCount"); err != nil {
		return 0, err
	}
	return m.fans, nil
}

func (m *mockManager) GetPagePosts(context.Context) (*domain.Posts, error) {
	if err := m.record("GetPagePosts"); err != nil {
		return nil, err
	}
	return m.posts, nil
}

func (m *mockManager) GetPostShareCount(_ context.Context, id string) (int, error) {
	return m.counter("GetPostShareCount", id)
}

func (m *mockManager) GetNumberOfLikes(_ context.Context, id string) (int, error) {
	return m.counter("GetNumberOfLikes", id)
}

func (m *mockManager) GetNumberOfComments(_ context.Context, id string) (int, error) {
	return m.counter("GetNumberOfComments", id)
}

func (m *mockManager) GetPostInsights(_ context.Context, id string) ([]domain.Insight, error) {
	m.postIDs = append(m.postIDs, id)
	if err := m.record("GetPostInsights"); err != nil {
		return nil, err
	}
	return m.insights, nil
}

func (m *mockManager) GetPostImpressionsUnique(_ context.Context, id string) (int, error) {
	return m.counter("GetPostImpressionsUnique", id)
}

func (m *mockManager) GetPostClicks(_ context.Context, id string) (int, error) {
	return m.counter("GetPostClicks", id)
}

func (m *mockManager) GetPostReactionsLikeTotal(_ context.Context, id string) (int, error) {
	return m.counter("GetPostReactionsLikeTotal", id)
}

func (m *mockManager) GetPostReactionsLoveTotal(_ context.Context, id string) (int, error) {
	return m.counter("GetPostReactionsLoveTotal", id)
}

func (m *mockManager) GetPostReactionsWowTotal(_ context.Context, id string) (int, error) {
	return m.counter("GetPostReactionsWowTotal", id)
}

func (m *mockManager) GetPostReactionsHahaTotal(_ context.Context, id string) (int, error) {
	return m.counter("GetPostReactionsHahaTotal", id)
}

func (m *mockManager) GetPostReactionsSorryTotal(_ context.Context, id string) (int, error) {
	return m.counter("GetPostReactionsSorryTotal", id)
}

func (m *mockManager) GetPostReactionsAngerTotal(_ context.Context, id string) (int, error) {
	return m.counter("GetPostReactionsAngerTotal", id)
}

func (m *mockManager) FilterNegativeComments(comments domain.Comments) []domain.Comment {
	m.calls = append(m.calls, "FilterNegativeComments")
	m.filterInputs = append(m.filterInputs, comments)
	return m.negative
}

// recordingReporter keeps the events it receives
type recordingReporter struct {
	phases  []string
	passed  []string
	details []string
	failed  []string
	skipped []string
	notices []string
}

func (r *recordingReporter) Phase(title string) { r.phases = append(r.phases, title) }

func (r *recordingReporter) Passed(res domain.TestResult, detail string) {
	r.passed = append(r.passed, res.Tool)
	r.details = append(r.details, detail)
}

func (r *recordingReporter) Failed(res domain.TestResult)  { r.failed = append(r.failed, res.Tool) }
func (r *recordingReporter) Skipped(res domain.TestResult) { r.skipped = append(r.skipped, res.Tool) }
func (r *recordingReporter) Notice(message string)         { r.notices = append(r.notices, message) }
