package execution

import (
	"context"
	"errors"
	"fmt"

	"fbcheck/internal/domain"
	"fbcheck/internal/facebook"
)

// Check names, in battery order
const (
	CheckPageFanCount      = "Page fan count"
	CheckPagePosts         = "Page posts"
	CheckPostShareCount    = "Post share count"
	CheckPostLikes         = "Post likes"
	CheckPostComments      = "Post comments"
	CheckPostInsights      = "Post insights"
	CheckImpressionsUnique = "Post impressions (unique)"
	CheckPostClicks        = "Post clicks"
	CheckFilterNegative    = "Filter negative comments"
)

// ErrNoPostsPayload is returned when the manager yields no posts object at all
var ErrNoPostsPayload = errors.New("page posts returned no payload")

// MockComments is the fixed input for the negative comment filter check
var MockComments = domain.Comments{
	Data: []domain.Comment{{ID: "1", Message: "terrible"}},
}

// counterFunc is a post-scoped Manager method returning a single count
type counterFunc func(m facebook.Manager, ctx context.Context, postID string) (int, error)

// Check is one entry of the battery. Run receives the post id discovered by
// the page posts check; page-level checks ignore it.
type Check struct {
	Name      string
	NeedsPost bool
	Run       func(ctx context.Context, m facebook.Manager, postID string) (string, error)
}

// Phase is a titled group of checks run in order
type Phase struct {
	Title  string
	Checks []Check
}

// reactions lists the reaction totals in the order they are checked
var reactions = []struct {
	Kind  string
	Total counterFunc
}{
	{Kind: "like", Total: facebook.Manager.GetPostReactionsLikeTotal},
	{Kind: "love", Total: facebook.Manager.GetPostReactionsLoveTotal},
	{Kind: "wow", Total: facebook.Manager.GetPostReactionsWowTotal},
	{Kind: "haha", Total: facebook.Manager.GetPostReactionsHahaTotal},
	{Kind: "sorry", Total: facebook.Manager.GetPostReactionsSorryTotal},
	{Kind: "anger", Total: facebook.Manager.GetPostReactionsAngerTotal},
}

// ReactionCheckName returns the check name for a reaction kind
func ReactionCheckName(kind string) string {
	return fmt.Sprintf("Post reactions (%s)", kind)
}

// PagePhase holds the checks that need only the page id
func PagePhase() Phase {
	return Phase{
		Title: "Page",
		Checks: []Check{
			{
				Name: CheckPageFanCount,
				Run: func(ctx context.Context, m facebook.Manager, _ string) (string, error) {
					fans, err := m.GetPageFanCount(ctx)
					if err != nil {
						return "", err
					}
					return fmt.Sprintf("fans: %d", fans), nil
				},
			},
		},
	}
}

// PostPhases holds every phase that runs after a post id is known
func PostPhases() []Phase {
	reactionChecks := make([]Check, 0, len(reactions))
	for _, r := range reactions {
		reactionChecks = append(reactionChecks, counterCheck(ReactionCheckName(r.Kind), r.Kind, r.Total))
	}

	return []Phase{
		{
			Title: "Engagement",
			Checks: []Check{
				counterCheck(CheckPostShareCount, "shares", facebook.Manager.GetPostShareCount),
				counterCheck(CheckPostLikes, "likes", facebook.Manager.GetNumberOfLikes),
				counterCheck(CheckPostComments, "comments", facebook.Manager.GetNumberOfComments),
			},
		},
		{
			Title: "Insights",
			Checks: []Check{
				{
					Name:      CheckPostInsights,
					NeedsPost: true,
					Run: func(ctx context.Context, m facebook.Manager, postID string) (string, error) {
						insights, err := m.GetPostInsights(ctx, postID)
						if err != nil {
							return "", err
						}
						return fmt.Sprintf("metrics: %d", len(insights)), nil
					},
				},
				counterCheck(CheckImpressionsUnique, "unique impressions", facebook.Manager.GetPostImpressionsUnique),
				counterCheck(CheckPostClicks, "clicks", facebook.Manager.GetPostClicks),
			},
		},
		{
			Title:  "Reactions",
			Checks: reactionChecks,
		},
		{
			Title: "Utilities",
			Checks: []Check{
				{
					Name: CheckFilterNegative,
					Run: func(_ context.Context, m facebook.Manager, _ string) (string, error) {
						negative := m.FilterNegativeComments(MockComments)
						return fmt.Sprintf("negative comments: %d", len(negative)), nil
					},
				},
			},
		},
	}
}

// CheckNames lists every check name in battery order, the page posts check included
func CheckNames() []string {
	names := []string{}
	for _, c := range PagePhase().Checks {
		names = append(names, c.Name)
	}
	names = append(names, CheckPagePosts)
	for _, p := range PostPhases() {
		for _, c := range p.Checks {
			names = append(names, c.Name)
		}
	}
	return names
}

func counterCheck(name, label string, fn counterFunc) Check {
	return Check{
		Name:      name,
		NeedsPost: true,
		Run: func(ctx context.Context, m facebook.Manager, postID string) (string, error) {
			count, err := fn(m, ctx, postID)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s: %d", label, count), nil
		},
	}
}

// RunAll runs the full battery in order and returns the summary of the run.
// When the page posts check yields no post id the remaining phases are not
// run at all. A non-nil error means the run was interrupted.
func (r *Runner) RunAll(ctx context.Context) (domain.Summary, error) {
	r.runPhase(ctx, PagePhase())

	r.reporter.Phase("Posts")
	r.RunTest(ctx, CheckPagePosts, r.fetchPosts, r.unselected(CheckPagePosts))

	if r.existingPostID == "" {
		r.reporter.Notice("No posts found, skipping post-dependent checks")
		return r.finish(ctx)
	}

	for _, phase := range PostPhases() {
		r.runPhase(ctx, phase)
	}
	return r.finish(ctx)
}

func (r *Runner) runPhase(ctx context.Context, phase Phase) {
	r.reporter.Phase(phase.Title)
	for _, check := range phase.Checks {
		check := check
		skip := r.unselected(check.Name)
		if check.NeedsPost {
			skip = func() bool {
				return r.existingPostID == "" || !r.isSelected(check.Name)
			}
		}
		r.RunTest(ctx, check.Name, func(ctx context.Context) (string, error) {
			return check.Run(ctx, r.manager, r.existingPostID)
		}, skip)
	}
}

// fetchPosts is the page posts check; it records the first post's id
func (r *Runner) fetchPosts(ctx context.Context) (string, error) {
	posts, err := r.manager.GetPagePosts(ctx)
	if err != nil {
		return "", err
	}
	if posts == nil {
		return "", ErrNoPostsPayload
	}
	if len(posts.Data) == 0 {
		return "posts: 0", nil
	}
	if r.existingPostID == "" {
		r.existingPostID = posts.Data[0].ID
	}
	return fmt.Sprintf("posts: %d, using %s", len(posts.Data), r.existingPostID), nil
}

func (r *Runner) unselected(name string) SkipCondition {
	return func() bool { return !r.isSelected(name) }
}

func (r *Runner) isSelected(name string) bool {
	return r.selector == nil || r.selector(name)
}

func (r *Runner) finish(ctx context.Context) (domain.Summary, error) {
	summary := Summarize(r.results)
	r.logger.Debug("run finished", "total", summary.Total, "passed", summary.Passed, "failed", summary.Failed)
	if err := ctx.Err(); err != nil {
		return summary, fmt.Errorf("run interrupted: %w", err)
	}
	return summary, nil
}
