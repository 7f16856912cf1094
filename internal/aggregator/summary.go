package aggregator

import (
	"math"

	"github.com/gauthierbraillon/reportmix/internal/social"
)

// Summarize computes the per-platform aggregate of already filtered and
// deduplicated posts. Totals are recorded under the names the platform
// vocabulary uses. It never fails; empty input yields zero totals.
func Summarize(platform social.Platform, vocab social.Vocabulary, batch social.Batch, dr *social.DateRange) *social.Summary {
	posts := batch.Posts
	if posts == nil {
		posts = []social.Post{}
	}

	var likes, comments, shares, views int64
	for _, p := range posts {
		likes += p.Likes
		comments += p.Comments
		shares += p.Shares
		views += p.Views
	}

	s := &social.Summary{
		Platform:       platform.DisplayName(),
		Username:       batch.Username,
		Posts:          posts,
		TotalPosts:     len(posts),
		ProfileMetrics: batch.Profile,
		DateRange:      dr,
		Error:          batch.Error,
	}
	s.SetTotal(vocab.Likes, likes)
	s.SetTotal(vocab.Comments, comments)
	s.SetTotal(vocab.Shares, shares)
	s.SetTotal(vocab.Views, views)

	if vocab.Averages {
		avgLikes := average(likes, len(posts))
		avgComments := average(comments, len(posts))
		s.AvgLikes = &avgLikes
		s.AvgComments = &avgComments
	}
	return s
}

// average rounds half up, 0 when there are no posts.
func average(total int64, n int) int64 {
	if n == 0 {
		return 0
	}
	return int64(math.Floor(float64(total)/float64(n) + 0.5))
}
