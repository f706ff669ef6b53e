package service

import (
	"context"
	"errors"
	"testing"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/repository"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditServiceWritesThroughTransaction(t *testing.T) {
	store := memory.New()
	audit := NewAuditService(newTestLogger())
	ctx := context.Background()

	err := store.Transaction(ctx, func(tx repository.Store) error {
		require.NoError(t, audit.LogCreate(ctx, tx, entity.AuditActionProcessCreate, "process", "p-1", map[string]string{"name": "X-ray"}))
		return audit.LogUpdate(ctx, tx, entity.AuditActionProcessStatus, "process", "p-1", "scheduled", "completed")
	})
	require.NoError(t, err)

	logs, err := store.AuditLogs().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	// newest first
	assert.Equal(t, entity.AuditActionProcessStatus, logs[0].Action)
	assert.Equal(t, "process", logs[0].Metadata["entity"])
	assert.Equal(t, "p-1", logs[0].Metadata["entity_id"])
	assert.Equal(t, "scheduled", logs[0].Metadata["old_value"])
	assert.Equal(t, "completed", logs[0].Metadata["new_value"])

	assert.Equal(t, entity.AuditActionProcessCreate, logs[1].Action)
	assert.Nil(t, logs[1].Metadata["old_value"])
}

func TestAuditEntryRolledBackWithTransaction(t *testing.T) {
	store := memory.New()
	audit := NewAuditService(newTestLogger())
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.Transaction(ctx, func(tx repository.Store) error {
		require.NoError(t, audit.LogCreate(ctx, tx, entity.AuditActionReviewCreate, "review", "r-1", nil))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	logs, err := store.AuditLogs().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
