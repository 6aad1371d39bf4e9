package services

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/autokey/internal/domain"
	portsmocks "github.com/renato0307/autokey/internal/ports/mocks"
)

func TestHistoryService_Render(t *testing.T) {
	journal := portsmocks.NewMockDispatchJournal(t)
	started := time.Date(2026, 3, 14, 9, 26, 53, 0, time.Local)

	journal.EXPECT().Recent(context.Background(), 5).Return([]domain.DispatchReport{
		{
			ID:         "d-2",
			StartedAt:  started,
			FinishedAt: started.Add(1200 * time.Millisecond),
			Resolution: domain.Resolution{Trigger: domain.NamedTrigger("f2"), Source: domain.SourceFallback},
			Steps:      []domain.StepOutcome{{Index: 1, Kind: domain.ActionActivate}},
		},
		{
			ID:         "d-1",
			StartedAt:  started,
			FinishedAt: started,
			Resolution: domain.Resolution{Trigger: domain.TripletTrigger('g'), Source: domain.SourceConfig, WithUndo: true},
			Steps: []domain.StepOutcome{
				{Undo: true},
				{Index: 1, Kind: domain.ActionBrowserTab, Error: "exit status 1"},
			},
		},
	}, nil)

	var buf bytes.Buffer
	require.NoError(t, NewHistoryService(journal).Render(context.Background(), &buf, 5))
	out := buf.String()

	assert.Contains(t, out, "Last 5 dispatches:")
	assert.Contains(t, out, "2026-03-14 09:26:53 f2         fallback 1 steps in 1.2s ok")
	assert.Contains(t, out, "ggg        config   2 steps in 0s 1 failed")
	assert.Contains(t, out, "    step 1 (browser_tab): exit status 1")
}

func TestHistoryService_Empty(t *testing.T) {
	journal := portsmocks.NewMockDispatchJournal(t)
	journal.EXPECT().Recent(context.Background(), 10).Return(nil, nil)

	var buf bytes.Buffer
	require.NoError(t, NewHistoryService(journal).Render(context.Background(), &buf, 10))
	assert.Contains(t, buf.String(), "(none)")
}

func TestHistoryService_Error(t *testing.T) {
	journal := portsmocks.NewMockDispatchJournal(t)
	journal.EXPECT().Recent(context.Background(), 10).Return(nil, errors.New("no such table"))

	err := NewHistoryService(journal).Render(context.Background(), &bytes.Buffer{}, 10)
	assert.ErrorContains(t, err, "no such table")
}

func TestHistoryService_RenderWithoutJournal(t *testing.T) {
	var out bytes.Buffer

	err := NewHistoryService(nil).Render(context.Background(), &out, 3)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Last 3 dispatches:")
	assert.Contains(t, out.String(), "(none)")
}
