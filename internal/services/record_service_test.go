package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/kiroku/internal/symptom"
)

func TestRecordService_CreateRecord(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()
	owner := env.signup(t, "owner")

	submitted := time.Date(2024, 6, 1, 9, 0, 0, 0, env.tokyo)
	env.fixClock(submitted)

	record, err := env.recordService.CreateRecord(ctx, CreateRecordInput{
		OwnerID:          owner.ID,
		Date:             "2024-06-01",
		NumbnessStrength: 4,
		NumbnessParts:    []string{"R_Thumb", "R_Index", "R_Thumb"},
		StiffnessParts:   []string{"R_Middle"},
		StiffnessStrength: map[symptom.Region]int{
			symptom.RegionRightHand: 3,
		},
		Memo: "morning",
	})
	require.NoError(t, err)

	assert.NotZero(t, record.ID)
	assert.Equal(t, owner.ID, record.UserID)
	assert.Equal(t, "R_Thumb,R_Index", record.NumbnessParts)
	assert.Equal(t, time.UTC, record.CreatedAt.Location())
	assert.True(t, submitted.Equal(record.CreatedAt))

	stiffness, err := symptom.ParseStiffness(record.Stiffness)
	require.NoError(t, err)
	assert.Equal(t, []string{"R_Middle"}, stiffness.Parts)
	assert.Equal(t, 3, stiffness.StrengthOf(symptom.RegionRightHand))
	assert.Equal(t, 0, stiffness.StrengthOf(symptom.RegionLeftKnee))

	requireCounter(t, env.metrics, "kiroku_records_created_total", "Symptom records created.", 1)
}

func TestRecordService_CreateRecordRejectsMalformedDate(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()
	owner := env.signup(t, "owner")

	for _, date := range []string{"", "2024/06/01", "2024-13-01", "yesterday"} {
		_, err := env.recordService.CreateRecord(ctx, CreateRecordInput{OwnerID: owner.ID, Date: date})
		require.ErrorIs(t, err, ErrInvalidDateFormat, date)
	}

	records, err := env.recordService.ListRecords(ctx, owner.ID)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestRecordService_DeleteRecord(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()
	owner := env.signup(t, "owner")
	other := env.signup(t, "other")
	env.fixClock(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	record, err := env.recordService.CreateRecord(ctx, CreateRecordInput{OwnerID: owner.ID, Date: "2024-06-01"})
	require.NoError(t, err)

	require.ErrorIs(t, env.recordService.DeleteRecord(ctx, other.ID, record.ID), ErrRecordForbidden)
	require.ErrorIs(t, env.recordService.DeleteRecord(ctx, owner.ID, record.ID+100), ErrRecordNotFound)

	require.NoError(t, env.recordService.DeleteRecord(ctx, owner.ID, record.ID))
	require.ErrorIs(t, env.recordService.DeleteRecord(ctx, owner.ID, record.ID), ErrRecordNotFound)

	requireCounter(t, env.metrics, "kiroku_records_deleted_total", "Symptom records deleted individually.", 1)
}

func TestRecordService_CreateRecordKeepsLongPartSelections(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()
	owner := env.signup(t, "owner")

	parts := make([]string, 0, 60)
	for i := 0; i < 60; i++ {
		parts = append(parts, fmt.Sprintf("custom_part_%02d", i))
	}

	record, err := env.recordService.CreateRecord(ctx, CreateRecordInput{OwnerID: owner.ID, Date: "2024-06-01", NumbnessParts: parts})
	require.NoError(t, err)
	require.Greater(t, len(record.NumbnessParts), 200)

	records, err := env.recordService.ListRecords(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, parts, symptom.SplitParts(records[0].NumbnessParts))
}
