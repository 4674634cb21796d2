package schema

import (
	"testing"

	"github.com/H4tholdir/archibaldblackant-sub008/pkg/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsResolve(t *testing.T) {
	ordered, err := postgres.Order(Migrations())
	require.NoError(t, err)

	pos := map[string]int{}
	for i, m := range ordered {
		pos[m.Name] = i
	}
	assert.Less(t, pos["sync_counters"], pos["change_log"])
	assert.Less(t, pos["change_log"], pos["pending_orders"])
	assert.Less(t, pos["idempotency_keys"], pos["pending_orders"])
	assert.Less(t, pos["change_log"], pos["warehouse"])
	assert.Less(t, pos["jobs"], pos["job_events"])
}
