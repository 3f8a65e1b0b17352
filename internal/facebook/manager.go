// Package facebook defines the Graph API capabilities the check battery
// depends on, and a thin Graph-backed implementation of them.
package facebook

import (
	"context"

	"fbcheck/internal/domain"
)

// Manager is the page/post metrics surface exercised by the check battery.
// Every blocking call takes a context; FilterNegativeComments is pure.
type Manager interface {
	GetPageFanCount(ctx context.Context) (int, error)
	GetPagePosts(ctx context.Context) (*domain.Posts, error)

	GetPostShareCount(ctx context.Context, postID string) (int, error)
	GetNumberOfLikes(ctx context.Context, postID string) (int, error)
	GetNumberOfComments(ctx context.Context, postID string) (int, error)

	GetPostInsights(ctx context.Context, postID string) ([]domain.Insight, error)
	GetPostImpressionsUnique(ctx context.Context, postID string) (int, error)
	GetPostClicks(ctx context.Context, postID string) (int, error)

	GetPostReactionsLikeTotal(ctx context.Context, postID string) (int, error)
	GetPostReactionsLoveTotal(ctx context.Context, postID string) (int, error)
	GetPostReactionsWowTotal(ctx context.Context, postID string) (int, error)
	GetPostReactionsHahaTotal(ctx context.Context, postID string) (int, error)
	GetPostReactionsSorryTotal(ctx context.Context, postID string) (int, error)
	GetPostReactionsAngerTotal(ctx context.Context, postID string) (int, error)

	FilterNegativeComments(comments domain.Comments) []domain.Comment
}
