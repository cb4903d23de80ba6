package dbmetrics

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCollector struct {
	mu         sync.Mutex
	operations []string
	errors     int
}

func (c *recordingCollector) ObserveDBQuery(operation string, _ time.Duration, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.operations = append(c.operations, operation)
	if err != nil {
		c.errors++
	}
}

func (c *recordingCollector) SetDBConnections(int, int, int) {}

func TestDB_RecordsFailedQueries(t *testing.T) {
	// sql.Open не устанавливает соединение, запрос упадет на порту без сервера
	raw, err := sql.Open("postgres", "host=127.0.0.1 port=1 user=x dbname=x sslmode=disable connect_timeout=1")
	require.NoError(t, err)
	defer raw.Close()

	collector := &recordingCollector{}
	db := Wrap(raw, collector)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err = db.ExecContext(ctx, "SELECT 1")
	require.Error(t, err)

	assert.Equal(t, []string{"exec"}, collector.operations)
	assert.Equal(t, 1, collector.errors)
}
