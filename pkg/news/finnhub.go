package news

import (
	"context"
	"fmt"
	"strconv"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnHubClient struct {
	client   *finnhub.DefaultApiService
	category string
}

func NewFinnHubClient(apiKey string) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnHubClient{client: client, category: "general"}
}

func (c *FinnHubClient) Name() string {
	return "FinnHub"
}

func (c *FinnHubClient) Fetch(ctx context.Context, limit int) ([]Article, error) {
	res, _, err := c.client.MarketNews(ctx).Category(c.category).Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub market news: %w", err)
	}

	articles := make([]Article, 0, len(res))
	for _, item := range res {
		a := Article{
			Source:     c.Name(),
			ExternalID: strconv.FormatInt(item.GetId(), 10),
			Headline:   item.GetHeadline(),
			Body:       item.GetSummary(),
			URL:        item.GetUrl(),
			Publisher:  item.GetSource(),
		}
		if ts := item.GetDatetime(); ts > 0 {
			a.PublishedAt = time.Unix(ts, 0)
		}
		articles = append(articles, a)
	}

	return finalize(articles, limit), nil
}
