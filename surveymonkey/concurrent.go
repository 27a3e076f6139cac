package surveymonkey

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultExportConcurrency bounds the number of surveys fetched in parallel
// during a bulk export.
const DefaultExportConcurrency = 5

// ExportResponses fetches the fully expanded responses of several surveys
// concurrently, keyed by survey id. Each survey's responses are fetched with
// a single bulk call; the shared params are forwarded to every call.
func (c *Client) ExportResponses(ctx context.Context, surveyIDs []string, params url.Values) (map[string]*ResponseList, error) {
	results := make(map[string]*ResponseList, len(surveyIDs))
	if len(surveyIDs) == 0 {
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultExportConcurrency)

	var mu sync.Mutex
	for _, surveyID := range surveyIDs {
		surveyID := surveyID
		g.Go(func() error {
			list, err := c.ListResponsesBulk(ctx, surveyID, params)
			if err != nil {
				return fmt.Errorf("failed to export survey %s: %w", surveyID, err)
			}

			c.logger.Debug().
				Str("survey_id", surveyID).
				Int("count", len(list.Data)).
				Msg("Exported survey responses")

			mu.Lock()
			results[surveyID] = list
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
