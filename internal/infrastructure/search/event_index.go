package search

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/gatherly/gatherly/internal/application"
	"github.com/gatherly/gatherly/internal/domain/entity"
)

// ESEventIndex backs the event title search with Elasticsearch. All
// operations are no-ops when the client is not configured, so the rest
// of the app degrades instead of failing.
type ESEventIndex struct {
	ES        *elasticsearch.Client
	IndexName string
	Logger    *logrus.Logger
}

func NewESEventIndex(es *elasticsearch.Client, indexName string, logger *logrus.Logger) *ESEventIndex {
	return &ESEventIndex{ES: es, IndexName: indexName, Logger: logger}
}

func (i *ESEventIndex) Index(ctx context.Context, e *entity.Event) error {
	if i.ES == nil || i.IndexName == "" {
		return nil
	}
	doc := map[string]any{
		"id":        e.ID,
		"title":     e.Title,
		"category":  e.Category,
		"location":  e.Location,
		"date":      e.Date,
		"is_public": e.IsPublic,
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: i.IndexName, DocumentID: e.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, i.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && i.Logger != nil {
		i.Logger.WithField("status", res.Status()).WithField("event_id", e.ID).Warn("es index response error")
	}
	return nil
}

func (i *ESEventIndex) Delete(ctx context.Context, id string) error {
	if i.ES == nil || i.IndexName == "" {
		return nil
	}
	req := esapi.DeleteRequest{Index: i.IndexName, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, i.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	return nil
}

// Search matches the query against titles, constrained by exact category
// and location when given, public events only. Returns ids in relevance
// order.
func (i *ESEventIndex) Search(ctx context.Context, query, category, location string) ([]string, error) {
	if i.ES == nil || i.IndexName == "" {
		return []string{}, nil
	}

	filters := []map[string]any{
		{"term": map[string]any{"is_public": true}},
	}
	if category != "" {
		filters = append(filters, map[string]any{"term": map[string]any{"category.keyword": category}})
	}
	if location != "" {
		filters = append(filters, map[string]any{"term": map[string]any{"location.keyword": location}})
	}
	body := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must":   map[string]any{"match": map[string]any{"title": query}},
				"filter": filters,
			},
		},
		"size": 100,
	}
	b, _ := json.Marshal(body)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := i.ES.Search(
		i.ES.Search.WithContext(c),
		i.ES.Search.WithIndex(i.IndexName),
		i.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		ids = append(ids, h.ID)
	}
	return ids, nil
}

var _ application.EventIndex = (*ESEventIndex)(nil)
