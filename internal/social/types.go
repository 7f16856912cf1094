package social

// DateRange is an inclusive calendar day range (YYYY-MM-DD).
type DateRange struct {
	StartDate string `json:"startDate" yaml:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"endDate" yaml:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

// Complete reports whether both bounds are set. An incomplete range disables
// filtering.
func (d *DateRange) Complete() bool {
	return d != nil && d.StartDate != "" && d.EndDate != ""
}

// RawResult is what the fetch collaborator hands over for one platform.
type RawResult struct {
	Platform  Platform   `json:"platform" yaml:"platform" validate:"required"`
	Username  string     `json:"username" yaml:"username"`
	Data      Records    `json:"data" yaml:"data"`
	DateRange *DateRange `json:"dateRange,omitempty" yaml:"dateRange,omitempty"`
	Error     string     `json:"error,omitempty" yaml:"error,omitempty"`
}

// Post is the normalized shape every platform maps into. Text is never nil so
// substring work downstream is always safe; Timestamp keeps the raw value.
// A missing id or URL is the empty string.
type Post struct {
	ID        string   `json:"id" yaml:"id"`
	Type      string   `json:"type,omitempty" yaml:"type,omitempty"`
	Text      string   `json:"text" yaml:"text"`
	Likes     int64    `json:"likes" yaml:"likes"`
	Comments  int64    `json:"comments" yaml:"comments"`
	Shares    int64    `json:"shares" yaml:"shares"`
	Views     int64    `json:"views" yaml:"views"`
	Timestamp any      `json:"timestamp" yaml:"timestamp"`
	URL       string   `json:"url" yaml:"url"`
	Hashtags  []string `json:"hashtags" yaml:"hashtags"`
	Mentions  []string `json:"mentions" yaml:"mentions"`
	Music     string   `json:"music,omitempty" yaml:"music,omitempty"`
}

// Engagement is likes/reactions + comments/replies + shares/retweets. Views
// are not engagement.
func (p Post) Engagement() int64 {
	return p.Likes + p.Comments + p.Shares
}

// ProfileMetrics holds account level numbers (Instagram only).
type ProfileMetrics struct {
	FollowersCount int64 `json:"followersCount" yaml:"followersCount"`
	FollowsCount   int64 `json:"followsCount" yaml:"followsCount"`
	PostsCount     int64 `json:"postsCount" yaml:"postsCount"`
	Verified       bool  `json:"verified" yaml:"verified"`
}

// Batch is the output of a platform mapper before filtering.
type Batch struct {
	Username string
	Posts    []Post
	Profile  *ProfileMetrics
	// Error marks the whole fetch as unusable (for example scraper demo data).
	Error string
}

// Summary is the per-platform aggregate. Engagement totals are pointers
// because platforms use different vocabularies and consumers branch on which
// fields are present.
type Summary struct {
	Platform       string          `json:"platform" yaml:"platform"`
	Username       string          `json:"username" yaml:"username"`
	Posts          []Post          `json:"posts" yaml:"posts"`
	TotalPosts     int             `json:"totalPosts" yaml:"totalPosts"`
	TotalLikes     *int64          `json:"totalLikes,omitempty" yaml:"totalLikes,omitempty"`
	TotalComments  *int64          `json:"totalComments,omitempty" yaml:"totalComments,omitempty"`
	TotalReactions *int64          `json:"totalReactions,omitempty" yaml:"totalReactions,omitempty"`
	TotalShares    *int64          `json:"totalShares,omitempty" yaml:"totalShares,omitempty"`
	TotalRetweets  *int64          `json:"totalRetweets,omitempty" yaml:"totalRetweets,omitempty"`
	TotalReplies   *int64          `json:"totalReplies,omitempty" yaml:"totalReplies,omitempty"`
	TotalViews     *int64          `json:"totalViews,omitempty" yaml:"totalViews,omitempty"`
	AvgLikes       *int64          `json:"avgLikes,omitempty" yaml:"avgLikes,omitempty"`
	AvgComments    *int64          `json:"avgComments,omitempty" yaml:"avgComments,omitempty"`
	ProfileMetrics *ProfileMetrics `json:"profileMetrics,omitempty" yaml:"profileMetrics,omitempty"`
	DateRange      *DateRange      `json:"dateRange" yaml:"dateRange"`
	Error          string          `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the summary carries an error annotation.
func (s *Summary) Failed() bool {
	return s != nil && s.Error != ""
}

// Metric names a summary total.
type Metric int

const (
	NoMetric Metric = iota
	Likes
	Comments
	Reactions
	Shares
	Retweets
	Replies
	Views
)

func (s *Summary) field(m Metric) **int64 {
	switch m {
	case Likes:
		return &s.TotalLikes
	case Comments:
		return &s.TotalComments
	case Reactions:
		return &s.TotalReactions
	case Shares:
		return &s.TotalShares
	case Retweets:
		return &s.TotalRetweets
	case Replies:
		return &s.TotalReplies
	case Views:
		return &s.TotalViews
	default:
		return nil
	}
}

// SetTotal records v under m. NoMetric is ignored.
func (s *Summary) SetTotal(m Metric, v int64) {
	if f := s.field(m); f != nil {
		*f = &v
	}
}

// Total returns the value of m and whether the platform reports it.
func (s *Summary) Total(m Metric) (int64, bool) {
	f := s.field(m)
	if f == nil || *f == nil {
		return 0, false
	}
	return **f, true
}

// Vocabulary says under which summary total each post counter is reported.
// LinkedIn reports likes as reactions, Twitter reports shares as retweets and
// comments as replies.
type Vocabulary struct {
	Likes    Metric
	Comments Metric
	Shares   Metric
	Views    Metric
	// Averages enables avgLikes/avgComments.
	Averages bool
}
