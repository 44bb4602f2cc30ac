package imports

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pasaydan.org/backend/internal/constant"
)

// memWriter persists chunks in memory and can be told to fail a specific
// chunk, emulating a store-level transaction fault.
type memWriter struct {
	persisted   []Record
	chunkSizes  []int
	failAtChunk int // -1 = never fail
	nextID      int64
}

func newMemWriter() *memWriter {
	return &memWriter{failAtChunk: -1}
}

func (w *memWriter) InsertChunk(_ context.Context, records []Record) ([]int64, error) {
	if w.failAtChunk == len(w.chunkSizes) {
		return nil, errors.New("store transaction aborted")
	}

	w.persisted = append(w.persisted, records...)
	w.chunkSizes = append(w.chunkSizes, len(records))

	ids := make([]int64, len(records))
	for i := range ids {
		w.nextID++
		ids[i] = w.nextID
	}
	return ids, nil
}

func testDescriptor() Descriptor {
	return Descriptor{
		Name:    "entries",
		ListKey: "entries",
		Rules: []Rule{
			Required("name", "Name"),
			Required("email", "Email"),
			Email("email"),
		},
		Normalize: func(r Record) Record {
			n := TrimmedCopy(r)
			LowerFields(n, "email")
			return n
		},
	}
}

func validRecords(n int) []Record {
	records := make([]Record, n)
	for i := range records {
		records[i] = Record{
			"name":  fmt.Sprintf("Donor %d", i),
			"email": fmt.Sprintf("donor%d@example.com", i),
		}
	}
	return records
}

func TestPipelineRejectsEmptyInput(t *testing.T) {
	w := newMemWriter()
	p := NewPipeline(testDescriptor(), w)

	_, err := p.Run(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoRecords)

	_, err = p.Run(context.Background(), []Record{})
	assert.ErrorIs(t, err, ErrNoRecords)

	assert.Empty(t, w.persisted)
}

func TestPipelineValidationAtomicity(t *testing.T) {
	w := newMemWriter()
	p := NewPipeline(testDescriptor(), w)

	records := validRecords(3)
	records[1]["email"] = "not-an-email"

	result, err := p.Run(context.Background(), records)
	assert.Nil(t, result)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, map[int][]string{
		1: {"Invalid email format"},
	}, ve.Details)

	// one invalid record means nothing at all is written
	assert.Empty(t, w.persisted)
}

func TestPipelineChunking(t *testing.T) {
	w := newMemWriter()
	p := NewPipeline(testDescriptor(), w)

	result, err := p.Run(context.Background(), validRecords(150))
	require.NoError(t, err)

	assert.Equal(t, 150, result.Total)
	assert.Equal(t, 150, result.Created)
	assert.Len(t, result.IDs, 150)
	assert.Equal(t, []int{100, 50}, w.chunkSizes)
	assert.Len(t, w.persisted, 150)
}

func TestPipelineChunkFaultKeepsCommittedChunks(t *testing.T) {
	w := newMemWriter()
	w.failAtChunk = 2
	p := NewPipeline(testDescriptor(), w)

	result, err := p.Run(context.Background(), validRecords(3*constant.ImportChunkSize))
	require.Error(t, err)

	var ve *ValidationError
	assert.False(t, errors.As(err, &ve), "a write fault is not a validation failure")

	// chunks before the failing one stay committed, nothing after it runs
	assert.Equal(t, 2*constant.ImportChunkSize, result.Created)
	assert.Len(t, w.persisted, 2*constant.ImportChunkSize)
	assert.Equal(t, []int{100, 100}, w.chunkSizes)
}

func TestPipelineNormalizesBeforeWrite(t *testing.T) {
	w := newMemWriter()
	p := NewPipeline(testDescriptor(), w)

	_, err := p.Run(context.Background(), []Record{
		{"name": "  John Doe  ", "email": "John@Example.COM"},
	})
	require.NoError(t, err)

	require.Len(t, w.persisted, 1)
	assert.Equal(t, "John Doe", w.persisted[0].Str("name"))
	assert.Equal(t, "john@example.com", w.persisted[0].Str("email"))
}

func TestPipelinePreservesInputOrder(t *testing.T) {
	w := newMemWriter()
	p := NewPipeline(testDescriptor(), w)

	records := validRecords(120)
	_, err := p.Run(context.Background(), records)
	require.NoError(t, err)

	require.Len(t, w.persisted, 120)
	for i, r := range w.persisted {
		assert.Equal(t, fmt.Sprintf("Donor %d", i), r.Str("name"))
	}
}
