package facebook

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/valyala/fastjson"

	"fbcheck/internal/config"
	"fbcheck/internal/domain"
	"fbcheck/internal/logging"
)

// maxBodySize caps how much of a Graph response is read
const maxBodySize = 4 << 20

// GraphManager implements Manager with one GET per call against the Graph API.
// It does not follow paging cursors or retry.
type GraphManager struct {
	baseURL     string
	pageID      string
	accessToken string
	httpClient  *http.Client
	parsers     fastjson.ParserPool
	logger      *log.Logger
}

// NewGraphManager creates a GraphManager from the Graph section of the config
func NewGraphManager(cfg *config.Config, httpClient *http.Client) *GraphManager {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &GraphManager{
		baseURL:     cfg.GetBaseURL(),
		pageID:      cfg.PageID,
		accessToken: cfg.AccessToken,
		httpClient:  httpClient,
		logger:      logging.New("graph"),
	}
}

// GetPageFanCount returns the page's fan_count field
func (g *GraphManager) GetPageFanCount(ctx context.Context) (int, error) {
	var count int
	err := g.get(ctx, g.pageID, url.Values{"fields": {"fan_count"}}, func(v *fastjson.Value) error {
		count = v.GetInt("fan_count")
		return nil
	})
	return count, err
}

// GetPagePosts returns the first page of the page's posts
func (g *GraphManager) GetPagePosts(ctx context.Context) (*domain.Posts, error) {
	posts := &domain.Posts{Data: []domain.Post{}}
	query := url.Values{"fields": {"id,message,created_time"}}
	err := g.get(ctx, g.pageID+"/posts", query, func(v *fastjson.Value) error {
		for _, item := range v.GetArray("data") {
			posts.Data = append(posts.Data, domain.Post{
				ID:          string(item.GetStringBytes("id")),
				Message:     string(item.GetStringBytes("message")),
				CreatedTime: string(item.GetStringBytes("created_time")),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPostShareCount returns shares.count, 0 when the post was never shared
func (g *GraphManager) GetPostShareCount(ctx context.Context, postID string) (int, error) {
	return g.getCounter(ctx, postID, "shares", "shares", "count")
}

// GetNumberOfLikes returns the like summary total
func (g *GraphManager) GetNumberOfLikes(ctx context.Context, postID string) (int, error) {
	return g.getCounter(ctx, postID, "likes.summary(true)", "likes", "summary", "total_count")
}

// GetNumberOfComments returns the comment summary total
func (g *GraphManager) GetNumberOfComments(ctx context.Context, postID string) (int, error) {
	return g.getCounter(ctx, postID, "comments.summary(true)", "comments", "summary", "total_count")
}

// GetPostInsights returns every metric on the post's insights edge
func (g *GraphManager) GetPostInsights(ctx context.Context, postID string) ([]domain.Insight, error) {
	insights := []domain.Insight{}
	err := g.get(ctx, postID+"/insights", nil, func(v *fastjson.Value) error {
		for _, item := range v.GetArray("data") {
			insights = append(insights, parseInsight(item))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return insights, nil
}

// GetPostImpressionsUnique returns post_impressions_unique
func (g *GraphManager) GetPostImpressionsUnique(ctx context.Context, postID string) (int, error) {
	return g.getMetric(ctx, postID, "post_impressions_unique")
}

// GetPostClicks returns post_clicks
func (g *GraphManager) GetPostClicks(ctx context.Context, postID string) (int, error) {
	return g.getMetric(ctx, postID, "post_clicks")
}

func (g *GraphManager) GetPostReactionsLikeTotal(ctx context.Context, postID string) (int, error) {
	return g.getMetric(ctx, postID, "post_reactions_like_total")
}

func (g *GraphManager) GetPostReactionsLoveTotal(ctx context.Context, postID string) (int, error) {
	return g.getMetric(ctx, postID, "post_reactions_love_total")
}

func (g *GraphManager) GetPostReactionsWowTotal(ctx context.Context, postID string) (int, error) {
	return g.getMetric(ctx, postID, "post_reactions_wow_total")
}

func (g *GraphManager) GetPostReactionsHahaTotal(ctx context.Context, postID string) (int, error) {
	return g.getMetric(ctx, postID, "post_reactions_haha_total")
}

func (g *GraphManager) GetPostReactionsSorryTotal(ctx context.Context, postID string) (int, error) {
	return g.getMetric(ctx, postID, "post_reactions_sorry_total")
}

func (g *GraphManager) GetPostReactionsAngerTotal(ctx context.Context, postID string) (int, error) {
	return g.getMetric(ctx, postID, "post_reactions_anger_total")
}

// FilterNegativeComments returns the comments that read as negative
func (g *GraphManager) FilterNegativeComments(comments domain.Comments) []domain.Comment {
	return FilterNegativeComments(comments)
}

// getCounter reads a nested integer field requested through ?fields=
func (g *GraphManager) getCounter(ctx context.Context, node, field string, keys ...string) (int, error) {
	var count int
	err := g.get(ctx, node, url.Values{"fields": {field}}, func(v *fastjson.Value) error {
		count = v.GetInt(keys...)
		return nil
	})
	return count, err
}

// getMetric reads the latest value of a single insights metric
func (g *GraphManager) getMetric(ctx context.Context, postID, metric string) (int, error) {
	var value int
	err := g.get(ctx, postID+"/insights/"+metric, nil, func(v *fastjson.Value) error {
		data := v.GetArray("data")
		if len(data) == 0 {
			return fmt.Errorf("metric %s: no data returned", metric)
		}
		values := data[0].GetArray("values")
		if len(values) == 0 {
			return nil
		}
		value = values[len(values)-1].GetInt("value")
		return nil
	})
	return value, err
}

// get performs one Graph GET and hands the parsed body to fn. The parsed
// value is only valid inside fn.
func (g *GraphManager) get(ctx context.Context, path string, query url.Values, fn func(*fastjson.Value) error) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("access_token", g.accessToken)
	endpoint := g.baseURL + "/" + strings.TrimLeft(path, "/") + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}

	g.logger.Debug("graph request", "path", path, "fields", query.Get("fields"))

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("read response %s: %w", path, err)
	}

	p := g.parsers.Get()
	defer g.parsers.Put(p)

	v, err := p.ParseBytes(body)
	if err != nil {
		if resp.StatusCode != http.StatusOK {
			return &GraphError{Status: resp.StatusCode, Message: strings.TrimSpace(string(body))}
		}
		return fmt.Errorf("parse response %s: %w", path, err)
	}

	if e := v.Get("error"); e != nil {
		return &GraphError{
			Status:  resp.StatusCode,
			Message: string(e.GetStringBytes("message")),
			Type:    string(e.GetStringBytes("type")),
			Code:    e.GetInt("code"),
		}
	}
	if resp.StatusCode != http.StatusOK {
		return &GraphError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	g.logger.Debug("graph response", "path", path, "bytes", len(body))
	return fn(v)
}

func parseInsight(item *fastjson.Value) domain.Insight {
	insight := domain.Insight{
		Name:   string(item.GetStringBytes("name")),
		Period: string(item.GetStringBytes("period")),
		Title:  string(item.GetStringBytes("title")),
	}
	for _, val := range item.GetArray("values") {
		insight.Values = append(insight.Values, domain.InsightValue{
			Value:   convertValue(val.Get("value")),
			EndTime: string(val.GetStringBytes("end_time")),
		})
	}
	return insight
}

// convertValue copies a fastjson value out of the parser's arena
func convertValue(v *fastjson.Value) any {
	if v == nil {
		return nil
	}
	switch v.Type() {
	case fastjson.TypeNumber:
		if i, err := v.Int64(); err == nil {
			return i
		}
		return v.GetFloat64()
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeObject:
		out := make(map[string]any)
		obj, _ := v.Object()
		obj.Visit(func(key []byte, child *fastjson.Value) {
			out[string(key)] = convertValue(child)
		})
		return out
	case fastjson.TypeArray:
		items := v.GetArray()
		out := make([]any, 0, len(items))
		for _, child := range items {
			out = append(out, convertValue(child))
		}
		return out
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	default:
		return nil
	}
}
