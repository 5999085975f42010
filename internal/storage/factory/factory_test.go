package factory

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/customer-search/internal/storage"
	"github.com/DjordjeVuckovic/customer-search/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
		check   func(t *testing.T, cfg *StorageConfig)
	}{
		{
			name: "defaults to in-memory",
			env:  map[string]string{"STORAGE_TYPE": ""},
			check: func(t *testing.T, cfg *StorageConfig) {
				assert.Equal(t, storage.InMem, cfg.Type)
			},
		},
		{
			name:    "rejects unknown type",
			env:     map[string]string{"STORAGE_TYPE": "mongo"},
			wantErr: "invalid STORAGE_TYPE",
		},
		{
			name:    "pg requires connection string",
			env:     map[string]string{"STORAGE_TYPE": "pg", "PG_CONNECTION_STRING": ""},
			wantErr: "connection string",
		},
		{
			name: "pg with pool size",
			env: map[string]string{
				"STORAGE_TYPE":         "pg",
				"PG_CONNECTION_STRING": "postgres://localhost/customers",
				"PG_MAX_CONNS":         "8",
			},
			check: func(t *testing.T, cfg *StorageConfig) {
				require.NotNil(t, cfg.Pg)
				assert.Equal(t, "postgres://localhost/customers", cfg.Pg.ConnStr)
				assert.Equal(t, int32(8), cfg.Pg.MaxConns)
			},
		},
		{
			name:    "es requires addresses",
			env:     map[string]string{"STORAGE_TYPE": "es", "ES_ADDRESSES": ""},
			wantErr: "ES_ADDRESSES",
		},
		{
			name: "es with default index",
			env: map[string]string{
				"STORAGE_TYPE":  "es",
				"ES_ADDRESSES":  "http://es1:9200, ,http://es2:9200",
				"ES_INDEX_NAME": "",
			},
			check: func(t *testing.T, cfg *StorageConfig) {
				require.NotNil(t, cfg.Es)
				assert.Equal(t, "customers", cfg.Es.IndexName)
				assert.Len(t, cfg.Es.Addresses, 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadEnv()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestNewStore_InMem(t *testing.T) {
	s, err := NewStore(context.Background(), &StorageConfig{Type: storage.InMem})
	require.NoError(t, err)
	assert.IsType(t, &in_mem.Store{}, s)
}

func TestNewStore_Unsupported(t *testing.T) {
	_, err := NewStore(context.Background(), &StorageConfig{Type: "mongo"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported storer type: mongo")
}
