package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/customer-search/internal/domain"
	"github.com/DjordjeVuckovic/customer-search/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
)

type Store struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewStore(ctx context.Context, config ClientConfig) (*Store, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	s := &Store{
		client:    client,
		indexName: config.IndexName,
	}

	if err := s.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return s, nil
}

// EnsureIndex creates the customers index with keyword fields when missing.
func (s *Store) EnsureIndex(ctx context.Context) error {
	exists, err := s.client.Indices.Exists(s.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		slog.Info("Index already exists", "index", s.indexName)
		return nil
	}

	if _, err := s.client.Indices.Create(s.indexName).Mappings(buildMapping()).Do(ctx); err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	slog.Info("Index created", "index", s.indexName)
	return nil
}

// Search implements storage.Reader using search_after on the id keyword.
func (s *Store) Search(ctx context.Context, q storage.Query) ([]domain.Customer, error) {
	slog.Debug("Executing es customer search", "after", q.After, "term", q.SearchTerm, "limit", q.Limit)

	asc := sortorder.Asc
	req := s.client.Search().
		Index(s.indexName).
		Query(buildQuery(q.SearchTerm)).
		Size(q.Limit).
		Sort(&types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				"id": {Order: &asc},
			},
		})

	if !q.After.IsZero() {
		req = req.SearchAfter(types.FieldValue(q.After.String()))
	}

	res, err := req.Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch query failed", "error", err, "term", q.SearchTerm)
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	customers := make([]domain.Customer, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc CustomerDocument
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		customers = append(customers, doc.toDomain())
	}

	return customers, nil
}

var wildcardEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)

func buildQuery(term string) *types.Query {
	if term == "" {
		return &types.Query{MatchAll: &types.MatchAllQuery{}}
	}

	pattern := "*" + wildcardEscaper.Replace(term) + "*"
	caseInsensitive := true

	should := make([]types.Query, 0, len(searchFields))
	for _, field := range searchFields {
		should = append(should, types.Query{
			Wildcard: map[string]types.WildcardQuery{
				field: {Value: &pattern, CaseInsensitive: &caseInsensitive},
			},
		})
	}

	return &types.Query{
		Bool: &types.BoolQuery{
			Should:             should,
			MinimumShouldMatch: 1,
		},
	}
}

func (s *Store) Save(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	c, err := storage.WithID(c)
	if err != nil {
		return domain.Customer{}, err
	}

	doc := toDocument(c)
	res, err := s.client.Index(s.indexName).
		Id(doc.ID).
		Document(doc).
		Refresh(refresh.True).
		Do(ctx)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("failed to index document: %w", err)
	}

	slog.Debug("Customer indexed", "id", doc.ID, "index", s.indexName, "result", res.Result)
	return c, nil
}

func (s *Store) SaveBulk(ctx context.Context, customers []domain.Customer) error {
	if len(customers) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:      s.indexName,
		Client:     s.client,
		NumWorkers: 2,
		Refresh:    "true",
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	for _, c := range customers {
		c, err := storage.WithID(c)
		if err != nil {
			return err
		}
		doc := toDocument(c)

		docBytes, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal document %s: %w", doc.ID, err)
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: doc.ID,
			Body:       bytes.NewReader(docBytes),
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				if err != nil {
					slog.Error("bulk index error", "error", err, "id", item.DocumentID)
				} else {
					slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
				}
			},
		})
		if err != nil {
			slog.Error("failed to add document to bulk indexer", "error", err, "id", doc.ID)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	stats := bi.Stats()
	slog.Info("Bulk indexing completed",
		"indexed", stats.NumIndexed,
		"failed", stats.NumFailed,
		"total", len(customers),
		"index", s.indexName)

	if stats.NumFailed > 0 {
		return fmt.Errorf("failed to index %d out of %d customers", stats.NumFailed, len(customers))
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	ok, err := s.client.Ping().Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to ping Elasticsearch: %w", err)
	}
	if !ok {
		return fmt.Errorf("elasticsearch is not reachable")
	}
	return nil
}

func (s *Store) Close() error {
	return nil
}
